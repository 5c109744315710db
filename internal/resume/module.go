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

package resume

import (
	"github.com/ecodeclub/jobboard/internal/resume/internal/domain"
	"github.com/ecodeclub/jobboard/internal/resume/internal/service"
	"github.com/ecodeclub/jobboard/internal/resume/internal/web"
)

type (
	Handler = web.Handler
	Service = service.Service
	Resume  = domain.Resume
	File    = domain.File
)

type Module struct {
	Hdl *Handler
	Svc Service
}

// Config 对应配置文件里面的 upload
type Config struct {
	// Dir 文件落盘的目录
	Dir string `yaml:"dir"`
	// URLPrefix 对外访问的地址前缀，例如 http://localhost:8080/api/uploads
	URLPrefix string `yaml:"urlPrefix"`
}
