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
	"context"
	"net/http"

	"github.com/ecodeclub/jobboard/internal/portal/domain"
)

type ResumeAPI struct {
	c *Client
}

func (api *ResumeAPI) Upload(ctx context.Context, u domain.Upload) (domain.Resume, error) {
	if err := domain.ValidateResume(u); err != nil {
		return domain.Resume{}, err
	}
	req := api.c.R(ctx).SetFileReader("resume", u.Name, u.Reader)
	body, err := api.c.execute(req, http.MethodPost, "/upload/resume")
	if err != nil {
		return domain.Resume{}, err
	}
	return decodeOne[domain.Resume](body)
}

func (api *ResumeAPI) List(ctx context.Context) ([]domain.Resume, error) {
	body, err := api.c.execute(api.c.R(ctx), http.MethodGet, "/upload/resumes")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Resume](body, "resumes", "list")
}
