// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package resume

import (
	"sync"

	"github.com/ecodeclub/jobboard/internal/pkg/idgen"
	"github.com/ecodeclub/jobboard/internal/resume/internal/repository"
	"github.com/ecodeclub/jobboard/internal/resume/internal/repository/dao"
	"github.com/ecodeclub/jobboard/internal/resume/internal/repository/storage"
	"github.com/ecodeclub/jobboard/internal/resume/internal/service"
	"github.com/ecodeclub/jobboard/internal/resume/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, idGen idgen.Generator, cfg Config) (*Module, error) {
	wire.Build(
		initDAO,
		initStorage,
		repository.NewResumeRepository,
		service.NewService,
		initHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initDAO(db *egorm.Component) dao.ResumeDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMResumeDAO(db)
}

func initStorage(cfg Config) (storage.Storage, error) {
	return storage.NewLocalStorage(cfg.Dir)
}

func initHandler(svc service.Service, cfg Config) *web.Handler {
	return web.NewHandler(svc, cfg.Dir, cfg.URLPrefix)
}
