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
	"strconv"

	"github.com/ecodeclub/jobboard/internal/portal/domain"
)

// JobListParams 交给服务端处理的过滤、排序、分页参数，零值表示不过滤
type JobListParams struct {
	Page            int
	Limit           int
	Search          string
	Status          domain.JobStatus
	JobType         domain.JobType
	ExperienceLevel domain.ExperienceLevel
	Location        string
	MinSalary       *float64
	Remote          *bool
	Sort            string
	// Mine 招聘方只看自己发布的职位
	Mine bool
}

func (p JobListParams) query() map[string]string {
	res := make(map[string]string, 8)
	if p.Page > 0 {
		res["page"] = strconv.Itoa(p.Page)
	}
	if p.Limit > 0 {
		res["limit"] = strconv.Itoa(p.Limit)
	}
	set := func(key, val string) {
		if val != "" {
			res[key] = val
		}
	}
	set("search", p.Search)
	set("status", string(p.Status))
	set("jobType", string(p.JobType))
	set("experienceLevel", string(p.ExperienceLevel))
	set("location", p.Location)
	set("sort", p.Sort)
	if p.MinSalary != nil {
		res["minSalary"] = strconv.FormatFloat(*p.MinSalary, 'f', -1, 64)
	}
	if p.Remote != nil {
		res["remote"] = strconv.FormatBool(*p.Remote)
	}
	if p.Mine {
		res["mine"] = "true"
	}
	return res
}

type JobAPI struct {
	c *Client
}

func (api *JobAPI) List(ctx context.Context, params JobListParams) (domain.JobPage, error) {
	body, err := api.c.execute(api.c.R(ctx).SetQueryParams(params.query()), http.MethodGet, "/jobs")
	if err != nil {
		return domain.JobPage{}, err
	}
	return decodeJobPage(body, params)
}

func (api *JobAPI) Get(ctx context.Context, id string) (domain.Job, error) {
	body, err := api.c.execute(api.c.R(ctx).SetPathParam("id", id), http.MethodGet, "/jobs/{id}")
	if err != nil {
		return domain.Job{}, err
	}
	return decodeOne[domain.Job](body)
}

func (api *JobAPI) Create(ctx context.Context, draft domain.JobDraft) (domain.Job, error) {
	body, err := api.c.execute(api.c.R(ctx).SetBody(draft), http.MethodPost, "/jobs")
	if err != nil {
		return domain.Job{}, err
	}
	return decodeOne[domain.Job](body)
}

// Update 全量更新
func (api *JobAPI) Update(ctx context.Context, id string, draft domain.JobDraft) (domain.Job, error) {
	body, err := api.c.execute(api.c.R(ctx).SetPathParam("id", id).SetBody(draft), http.MethodPut, "/jobs/{id}")
	if err != nil {
		return domain.Job{}, err
	}
	return decodeOne[domain.Job](body)
}

// Patch 局部更新，发布草稿也走这里
func (api *JobAPI) Patch(ctx context.Context, id string, patch domain.JobPatch) (domain.Job, error) {
	body, err := api.c.execute(api.c.R(ctx).SetPathParam("id", id).SetBody(patch), http.MethodPatch, "/jobs/{id}")
	if err != nil {
		return domain.Job{}, err
	}
	return decodeOne[domain.Job](body)
}

func (api *JobAPI) Close(ctx context.Context, id string) error {
	_, err := api.c.execute(api.c.R(ctx).SetPathParam("id", id), http.MethodPatch, "/jobs/{id}/close")
	return err
}

// Applications 招聘方查看某个职位下的投递
func (api *JobAPI) Applications(ctx context.Context, jobID string) ([]domain.Application, error) {
	body, err := api.c.execute(api.c.R(ctx).SetPathParam("id", jobID), http.MethodGet, "/jobs/{id}/applications")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Application](body, "applications", "list")
}
