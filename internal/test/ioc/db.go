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

package testioc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/ecodeclub/jobboard/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var (
	db         *egorm.Component
	dbInitOnce sync.Once

	configOnce sync.Once
	configErr  error
)

func InitDB() *egorm.Component {
	dbInitOnce.Do(func() {
		if err := loadConfig(); err != nil {
			panic(err)
		}
		if err := ioc.WaitForDBSetup(econf.GetString("mysql.dsn")); err != nil {
			panic(err)
		}
		db = egorm.Load("mysql").Build()
	})
	return db
}

// loadConfig 从当前目录往上找 config/local.yaml
func loadConfig() error {
	configOnce.Do(func() {
		dir, err := os.Getwd()
		if err != nil {
			configErr = err
			return
		}
		for {
			content, err := os.ReadFile(filepath.Join(dir, "config", "local.yaml"))
			if err == nil {
				configErr = econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
				return
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				configErr = errors.New("没有找到 config/local.yaml")
				return
			}
			dir = parent
		}
	})
	return configErr
}
