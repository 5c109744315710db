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

//go:build mock

package ioc

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/gin-gonic/gin"
)

type mockLoginReq struct {
	Uid  int64  `json:"uid"`
	Role string `json:"role"`
}

// registerMockLogin 开发测试环境省略登录过程，直接签发 session
func registerMockLogin(server gin.IRouter) {
	server.POST("/users/mock/login", ginx.B[mockLoginReq](func(ctx *ginx.Context, req mockLoginReq) (ginx.Result, error) {
		if req.Role != middleware.RoleEmployer && req.Role != middleware.RoleCandidate {
			return ginx.Result{Code: 400001, Msg: "未知的角色"}, nil
		}
		_, err := session.NewSessionBuilder(ctx, req.Uid).
			SetJwtData(map[string]string{middleware.ClaimRole: req.Role}).
			Build()
		if err != nil {
			return ginx.Result{Code: 500001, Msg: "系统错误"}, err
		}
		return ginx.Result{Msg: "OK"}, nil
	}))
}
