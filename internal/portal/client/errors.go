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

package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// 错误分类，调用方用 errors.Is 判断
var (
	ErrValidation   = errors.New("请求参数不合法")
	ErrUnauthorized = errors.New("未登录或登录已过期")
	ErrForbidden    = errors.New("没有权限")
	ErrNotFound     = errors.New("资源不存在")
	ErrConflict     = errors.New("资源冲突")
	ErrServer       = errors.New("服务端错误")
	ErrNetwork      = errors.New("网络错误")

	ErrUnexpectedShape = fmt.Errorf("%w: 响应格式不符合预期", ErrServer)
)

// APIError 归一化之后的错误，Status 为 0 表示请求根本没有拿到响应
type APIError struct {
	Status  int
	Code    int64
	Message string

	kind  error
	cause error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.kind, e.Message)
	}
	if e.Message == "" {
		return fmt.Sprintf("%s: HTTP %d", e.kind, e.Status)
	}
	return fmt.Sprintf("%s: HTTP %d %s", e.kind, e.Status, e.Message)
}

func (e *APIError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

// NewAPIError 按照 HTTP 状态码归类，测试里面构造服务端错误也用它
func NewAPIError(status int, code int64, msg string) *APIError {
	return &APIError{Status: status, Code: code, Message: msg, kind: kindOf(status)}
}

func newNetworkError(err error) *APIError {
	return &APIError{Message: err.Error(), kind: ErrNetwork, cause: err}
}

func newStatusError(status int, body []byte) *APIError {
	res := &APIError{Status: status, kind: kindOf(status)}
	if !gjson.ValidBytes(body) {
		return res
	}
	r := gjson.ParseBytes(body)
	if !r.IsObject() {
		return res
	}
	res.Code = r.Get("code").Int()
	for _, key := range []string{"msg", "message", "error", "detail"} {
		if v := r.Get(key); v.Type == gjson.String && v.Str != "" {
			res.Message = v.Str
			break
		}
	}
	return res
}

func kindOf(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusConflict:
		return ErrConflict
	case status >= http.StatusInternalServerError:
		return ErrServer
	default:
		return ErrValidation
	}
}

// HasCode 判断是不是服务端返回的某个业务错误码
func HasCode(err error, code int64) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}
