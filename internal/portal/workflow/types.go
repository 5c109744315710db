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

package workflow

import (
	"context"

	"github.com/ecodeclub/jobboard/internal/portal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/workflow.mock.go -package=workflowmocks -typed StatusUpdater,ApplicantSource
type StatusUpdater interface {
	UpdateApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) (domain.Application, error)
}

// ApplicantSource 审核页面需要的数据来源，state.Store 实现了它
type ApplicantSource interface {
	StatusUpdater
	LoadJobApplications(ctx context.Context, jobID string) ([]domain.Application, error)
}
