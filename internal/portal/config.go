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

package portal

import (
	"os"

	"github.com/gotomicro/ego/core/econf"
	"github.com/joho/godotenv"
)

const (
	EnvBaseURL     = "JOBBOARD_API_BASE_URL"
	EnvSessionFile = "JOBBOARD_SESSION_FILE"
)

type Config struct {
	// BaseURL 带 /api 前缀，例如 http://localhost:8080/api
	BaseURL string `yaml:"baseURL"`
	// SessionFile 为空的时候登录态只保存在内存里面
	SessionFile string `yaml:"sessionFile"`
	Fencing     bool   `yaml:"fencing"`
}

// LoadConfig 先读配置文件里面的 portal，再用环境变量覆盖。
// 当前目录下的 .env 文件会先加载到环境变量里面
func LoadConfig() (Config, error) {
	cfg := Config{BaseURL: "http://localhost:8080/api"}
	if econf.Get("portal") != nil {
		if err := econf.UnmarshalKey("portal", &cfg); err != nil {
			return Config{}, err
		}
	}
	_ = godotenv.Load()
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvSessionFile); v != "" {
		cfg.SessionFile = v
	}
	return cfg, nil
}
