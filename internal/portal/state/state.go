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
	"maps"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/portal/domain"
)

// Resource 每种资源只记录最近一次的错误
type Resource string

const (
	ResourceJobs         Resource = "jobs"
	ResourceApplications Resource = "applications"
	ResourceCompany      Resource = "company"
	ResourceResumes      Resource = "resumes"
)

// Flags 请求在途标记，发起时置为 true，结束时置为 false
type Flags struct {
	IsFetchingJobs            bool
	IsFetchingJob             bool
	IsCreatingJob             bool
	IsUpdatingJob             bool
	IsClosingJob              bool
	IsFetchingApplications    bool
	IsFetchingJobApplications bool
	IsCreatingApplication     bool
	IsUpdatingApplication     bool
	IsWithdrawingApplication  bool
	IsFetchingProfile         bool
	IsSavingProfile           bool
	IsUploadingLogo           bool
	IsFetchingResumes         bool
	IsUploadingResume         bool
}

// State 某一时刻的快照，拿到之后随便改都不会影响 store
type State struct {
	Jobs           domain.JobPage
	CurrentJob     *domain.Job
	MyApplications []domain.Application
	CompanyProfile *domain.CompanyProfile
	Resumes        []domain.Resume
	Flags
	Errors map[Resource]error
}

func (s State) Err(r Resource) error {
	return s.Errors[r]
}

func (s State) clone() State {
	res := s
	res.Jobs = s.Jobs.Clone()
	if s.CurrentJob != nil {
		j := s.CurrentJob.Clone()
		res.CurrentJob = &j
	}
	if s.MyApplications != nil {
		res.MyApplications = slice.Map(s.MyApplications, func(idx int, src domain.Application) domain.Application {
			return src.Clone()
		})
	}
	if s.CompanyProfile != nil {
		p := *s.CompanyProfile
		res.CompanyProfile = &p
	}
	if s.Resumes != nil {
		res.Resumes = append([]domain.Resume{}, s.Resumes...)
	}
	res.Errors = maps.Clone(s.Errors)
	return res
}
