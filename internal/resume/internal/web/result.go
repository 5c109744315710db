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

package web

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobboard/internal/pkg/webx"
	"github.com/ecodeclub/jobboard/internal/resume/internal/errs"
)

func systemError(ctx *ginx.Context, err error) (ginx.Result, error) {
	return webx.SystemError(ctx, errs.SystemError.Code, errs.SystemError.Msg, err)
}

func invalidFile(ctx *ginx.Context, msg string) (ginx.Result, error) {
	return webx.Fail(ctx, http.StatusBadRequest, errs.InvalidFile.Code, msg)
}
