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

package domain

import "slices"

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "PENDING"
	ApplicationReviewed    ApplicationStatus = "REVIEWED"
	ApplicationShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
)

var ApplicationStatuses = []ApplicationStatus{
	ApplicationPending, ApplicationReviewed, ApplicationShortlisted, ApplicationRejected,
}

func (s ApplicationStatus) Valid() bool {
	return slices.Contains(ApplicationStatuses, s)
}

// Application 投递记录。Notes 只有招聘方能看到
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"jobId"`
	CandidateID string            `json:"candidateId"`
	ResumeID    string            `json:"resumeId"`
	Status      ApplicationStatus `json:"status"`
	CoverLetter string            `json:"coverLetter"`
	FullName    string            `json:"fullName"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Linkedin    string            `json:"linkedin"`
	Portfolio   string            `json:"portfolio"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   int64             `json:"createdAt"`
	Job         *JobSummary       `json:"job,omitempty"`
}

func (a Application) Clone() Application {
	res := a
	res.Job = clonePtr(a.Job)
	return res
}

// ApplicationDraft 候选人提交的投递表单
type ApplicationDraft struct {
	JobID       string `json:"jobId" validate:"required"`
	ResumeID    string `json:"resumeId" validate:"required"`
	CoverLetter string `json:"coverLetter" validate:"max=5000"`
	FullName    string `json:"fullName" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"max=32"`
	Linkedin    string `json:"linkedin" validate:"omitempty,url"`
	Portfolio   string `json:"portfolio" validate:"omitempty,url"`
}

func (d ApplicationDraft) Validate() error {
	return validateStruct(d)
}
