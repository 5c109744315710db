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

package errs

var (
	SystemError       = ErrorCode{Code: 522001, Msg: "系统错误"}
	JobNotFound       = ErrorCode{Code: 422001, Msg: "职位不存在"}
	ProfileIncomplete = ErrorCode{Code: 422002, Msg: "请先完善公司资料"}
	InvalidJob        = ErrorCode{Code: 422003, Msg: "职位信息不合法"}
	JobClosed         = ErrorCode{Code: 422004, Msg: "职位已关闭"}
	PermissionDenied  = ErrorCode{Code: 422005, Msg: "没有权限"}
	JobConflict       = ErrorCode{Code: 422006, Msg: "职位状态已经变化，请刷新后重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
