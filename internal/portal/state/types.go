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

package state

import (
	"context"

	"github.com/ecodeclub/jobboard/internal/portal/client"
	"github.com/ecodeclub/jobboard/internal/portal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/gateway.mock.go -package=statemocks -typed JobAPI,ApplicationAPI,CompanyAPI,ResumeAPI
type JobAPI interface {
	List(ctx context.Context, params client.JobListParams) (domain.JobPage, error)
	Get(ctx context.Context, id string) (domain.Job, error)
	Create(ctx context.Context, draft domain.JobDraft) (domain.Job, error)
	Update(ctx context.Context, id string, draft domain.JobDraft) (domain.Job, error)
	Patch(ctx context.Context, id string, patch domain.JobPatch) (domain.Job, error)
	Close(ctx context.Context, id string) error
	Applications(ctx context.Context, jobID string) ([]domain.Application, error)
}

type ApplicationAPI interface {
	Submit(ctx context.Context, draft domain.ApplicationDraft) (domain.Application, error)
	Mine(ctx context.Context) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (domain.Application, error)
	Withdraw(ctx context.Context, id string) error
}

type CompanyAPI interface {
	Profile(ctx context.Context) (domain.CompanyProfile, error)
	CreateProfile(ctx context.Context, p domain.CompanyProfile) (domain.CompanyProfile, error)
	UpdateProfile(ctx context.Context, p domain.CompanyProfile) (domain.CompanyProfile, error)
	UploadLogo(ctx context.Context, u domain.Upload) (string, error)
}

type ResumeAPI interface {
	Upload(ctx context.Context, u domain.Upload) (domain.Resume, error)
	List(ctx context.Context) ([]domain.Resume, error)
}

// Gateway store 依赖的接口，按照资源拆开，方便测试的时候只替换其中一部分
type Gateway struct {
	Jobs         JobAPI
	Applications ApplicationAPI
	Company      CompanyAPI
	Resumes      ResumeAPI
}

func FromClient(c *client.Client) Gateway {
	return Gateway{
		Jobs:         c.Jobs,
		Applications: c.Applications,
		Company:      c.Company,
		Resumes:      c.Resumes,
	}
}
