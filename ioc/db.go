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

package ioc

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/jobboard/internal/pkg/database"
	"github.com/ego-component/egorm"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
)

func InitDB() *egorm.Component {
	if err := WaitForDBSetup(econf.GetString("mysql.dsn")); err != nil {
		panic(err)
	}
	db := egorm.Load("mysql").Build()
	if err := db.Use(database.NewGormTracingPlugin()); err != nil {
		panic(err)
	}
	return db
}

// WaitForDBSetup 容器一起启动的时候 MySQL 可能还没有就绪，按照指数退避重试 ping
func WaitForDBSetup(dsn string) error {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, 10*time.Second, 10)
	if err != nil {
		return err
	}
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return errors.Join(errors.New("等待 MySQL 就绪超过重试次数"), err)
		}
		time.Sleep(next)
	}
}
