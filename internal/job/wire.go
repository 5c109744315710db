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

package job

import (
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobboard/internal/company"
	"github.com/ecodeclub/jobboard/internal/job/internal/cronjob"
	"github.com/ecodeclub/jobboard/internal/job/internal/event"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository/cache"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository/dao"
	"github.com/ecodeclub/jobboard/internal/job/internal/service"
	"github.com/ecodeclub/jobboard/internal/job/internal/web"
	"github.com/ecodeclub/jobboard/internal/pkg/idgen"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	idGen idgen.Generator,
	cm *company.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		cache.NewJobCache,
		repository.NewCachedJobRepository,
		wire.FieldsOf(new(*company.Module), "Svc"),
		service.NewService,
		web.NewHandler,
		initConsumer,
		initCloseExpiredJobsJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.JobDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMJobDAO(db)
}

func initConsumer(svc service.Service, q mq.MQ) (*event.ApplicationEventConsumer, error) {
	consumer, err := event.NewApplicationEventConsumer(svc, q)
	if err != nil {
		return nil, err
	}
	consumer.Start(context.Background())
	return consumer, nil
}

func initCloseExpiredJobsJob(svc service.Service) *cronjob.CloseExpiredJobsJob {
	const limit = 100
	return cronjob.NewCloseExpiredJobsJob(svc, limit, 30*time.Second)
}
