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

package application

import (
	"strconv"
	"sync"

	"github.com/ecodeclub/jobboard/internal/application/internal/repository"
	"github.com/ecodeclub/jobboard/internal/application/internal/repository/dao"
	"github.com/ecodeclub/jobboard/internal/application/internal/service"
	"github.com/ecodeclub/jobboard/internal/application/internal/web"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/pkg/idgen"
	"github.com/ecodeclub/jobboard/internal/pkg/mqx"
	"github.com/ecodeclub/jobboard/internal/resume"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	idGen idgen.Generator,
	jm *job.Module,
	rm *resume.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewApplicationRepository,
		wire.FieldsOf(new(*job.Module), "Svc"),
		wire.FieldsOf(new(*resume.Module), "Svc"),
		initProducer,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ApplicationDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMApplicationDAO(db)
}

func initProducer(q mq.MQ) (mqx.Producer[job.ApplicationEvent], error) {
	// 同一个职位的事件按顺序消费
	return mqx.NewGeneralProducer(q, job.ApplicationEventTopic, mqx.WithKey(func(evt job.ApplicationEvent) []byte {
		return []byte(strconv.FormatInt(evt.JobID, 10))
	}))
}
