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

// Package webx 放各个模块 handler 共用的小工具：带 HTTP 状态码的错误响应、
// 请求参数校验和路径里的 ID 解析。
package webx

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/go-playground/validator/v10"
	"github.com/gotomicro/ego/core/elog"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Fail 按照 status 返回 {code,msg}，ginx 不再写响应
func Fail(ctx *ginx.Context, status int, code int, msg string) (ginx.Result, error) {
	ctx.AbortWithStatusJSON(status, ginx.Result{Code: code, Msg: msg})
	return ginx.Result{}, ginx.ErrNoResponse
}

// SystemError 记录日志之后返回 500
func SystemError(ctx *ginx.Context, code int, msg string, err error) (ginx.Result, error) {
	elog.Error("处理请求失败",
		elog.String("method", ctx.Request.Method),
		elog.String("path", ctx.FullPath()),
		elog.FieldErr(err))
	return Fail(ctx, http.StatusInternalServerError, code, msg)
}

// Validate 校验请求体上的 validate 标签
func Validate(req any) error {
	return validate.Struct(req)
}

// ValidationMessage 把校验错误转成给前端看的提示
func ValidationMessage(err error) string {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return fe.Field() + " 不满足 " + fe.Tag()
	}
	return err.Error()
}

// ParamID 解析路径上的 :id，不合法的 ID 当成不存在
func ParamID(ctx *ginx.Context) (int64, bool) {
	id, err := ctx.Param("id").AsInt64()
	return id, err == nil && id > 0
}
