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
	SystemError        = ErrorCode{Code: 523001, Msg: "系统错误"}
	JobNotAccepting    = ErrorCode{Code: 423001, Msg: "职位不再接受投递"}
	Duplicate          = ErrorCode{Code: 423002, Msg: "已经投递过这个职位"}
	NotFound           = ErrorCode{Code: 423003, Msg: "投递不存在"}
	WithdrawNotAllowed = ErrorCode{Code: 423004, Msg: "只有待处理的投递可以撤回"}
	InvalidApplication = ErrorCode{Code: 423005, Msg: "投递信息不合法"}
	JobNotFound        = ErrorCode{Code: 423006, Msg: "职位不存在"}
	PermissionDenied   = ErrorCode{Code: 423007, Msg: "没有权限"}
	ResumeNotOwned     = ErrorCode{Code: 423008, Msg: "简历不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
