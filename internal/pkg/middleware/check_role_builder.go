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

package middleware

import (
	"net/http"
	"slices"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	RoleEmployer  = "employer"
	RoleCandidate = "candidate"

	// ClaimRole 登录的时候写进 session 的角色
	ClaimRole = "role"
)

type CheckRoleMiddlewareBuilder struct {
	logger *elog.Component
	sp     session.Provider
}

func NewCheckRoleMiddlewareBuilder() *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		logger: elog.DefaultLogger,
	}
}

// Build 没有登录返回 401，角色不匹配返回 403
func (c *CheckRoleMiddlewareBuilder) Build(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sp := c.sp
		if sp == nil {
			sp = session.DefaultProvider()
		}
		gctx := &ginx.Context{Context: ctx}
		sess, err := sp.Get(gctx)
		if err != nil || sess == nil {
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		role := RoleOf(sess)
		if !slices.Contains(roles, role) {
			c.logger.Debug("角色不匹配", elog.Int64("uid", sess.Claims().Uid), elog.String("role", role))
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}
	}
}

func RoleOf(sess session.Session) string {
	return sess.Claims().Get(ClaimRole).StringOrDefault("")
}
