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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
)

type ApplyReq struct {
	JobID       int64  `json:"jobId,string" validate:"required"`
	ResumeID    int64  `json:"resumeId,string" validate:"required"`
	CoverLetter string `json:"coverLetter" validate:"max=5000"`
	FullName    string `json:"fullName" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"max=32"`
	Linkedin    string `json:"linkedin" validate:"omitempty,url"`
	Portfolio   string `json:"portfolio" validate:"omitempty,url"`
}

func (r ApplyReq) toDomain(uid int64) domain.Application {
	return domain.Application{
		JobID:       r.JobID,
		CandidateID: uid,
		ResumeID:    r.ResumeID,
		CoverLetter: r.CoverLetter,
		FullName:    r.FullName,
		Email:       r.Email,
		Phone:       r.Phone,
		Linkedin:    r.Linkedin,
		Portfolio:   r.Portfolio,
	}
}

type UpdateStatusReq struct {
	Status string  `json:"status" validate:"required,oneof=PENDING REVIEWED SHORTLISTED REJECTED"`
	Notes  *string `json:"notes" validate:"omitempty,max=5000"`
}

type ApplicationVO struct {
	ID          int64         `json:"id,string"`
	JobID       int64         `json:"jobId,string"`
	CandidateID int64         `json:"candidateId,string"`
	ResumeID    int64         `json:"resumeId,string"`
	Status      string        `json:"status"`
	CoverLetter string        `json:"coverLetter"`
	FullName    string        `json:"fullName"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Linkedin    string        `json:"linkedin"`
	Portfolio   string        `json:"portfolio"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   int64         `json:"createdAt"`
	UpdatedAt   int64         `json:"updatedAt"`
	Job         *JobSummaryVO `json:"job,omitempty"`
}

type JobSummaryVO struct {
	ID          int64  `json:"id,string"`
	Title       string `json:"title"`
	CompanyName string `json:"companyName"`
	Status      string `json:"status"`
}

func newApplicationVO(app domain.Application) ApplicationVO {
	res := ApplicationVO{
		ID:          app.ID,
		JobID:       app.JobID,
		CandidateID: app.CandidateID,
		ResumeID:    app.ResumeID,
		Status:      string(app.Status),
		CoverLetter: app.CoverLetter,
		FullName:    app.FullName,
		Email:       app.Email,
		Phone:       app.Phone,
		Linkedin:    app.Linkedin,
		Portfolio:   app.Portfolio,
		Notes:       app.Notes,
		CreatedAt:   app.Ctime,
		UpdatedAt:   app.Utime,
	}
	if app.Job != nil {
		res.Job = &JobSummaryVO{
			ID:          app.Job.ID,
			Title:       app.Job.Title,
			CompanyName: app.Job.CompanyName,
			Status:      app.Job.Status,
		}
	}
	return res
}

func newApplicationVOs(apps []domain.Application) []ApplicationVO {
	return slice.Map(apps, func(idx int, src domain.Application) ApplicationVO {
		return newApplicationVO(src)
	})
}
