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

import (
	"slices"
	"strings"
)

type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
	JobTypeTemporary  JobType = "Temporary"
	JobTypeVolunteer  JobType = "Volunteer"
	JobTypeRemote     JobType = "Remote"
)

// JobTypes 是表单下拉框的展示顺序
var JobTypes = []JobType{
	JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship,
	JobTypeTemporary, JobTypeVolunteer, JobTypeRemote,
}

func (t JobType) Valid() bool {
	return slices.Contains(JobTypes, t)
}

type ExperienceLevel string

const (
	ExperienceIntern    ExperienceLevel = "Intern"
	ExperienceEntry     ExperienceLevel = "Entry-level"
	ExperienceMid       ExperienceLevel = "Mid-level"
	ExperienceSenior    ExperienceLevel = "Senior"
	ExperienceLead      ExperienceLevel = "Lead"
	ExperienceExecutive ExperienceLevel = "Executive"
)

var ExperienceLevels = []ExperienceLevel{
	ExperienceIntern, ExperienceEntry, ExperienceMid,
	ExperienceSenior, ExperienceLead, ExperienceExecutive,
}

func (l ExperienceLevel) Valid() bool {
	return slices.Contains(ExperienceLevels, l)
}

type JobStatus string

const (
	JobStatusDraft  JobStatus = "DRAFT"
	JobStatusActive JobStatus = "ACTIVE"
	JobStatusClosed JobStatus = "CLOSED"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusDraft, JobStatusActive, JobStatusClosed:
		return true
	}
	return false
}

type Visibility string

const (
	VisibilityPublic   Visibility = "PUBLIC"
	VisibilityUnlisted Visibility = "UNLISTED"
	VisibilityDraft    Visibility = "DRAFT"
)

// InitialStatus 新建职位时由可见性决定的初始状态
func (v Visibility) InitialStatus() JobStatus {
	if v == VisibilityDraft {
		return JobStatusDraft
	}
	return JobStatusActive
}

// Job 职位，所有时间都是毫秒时间戳
type Job struct {
	ID               string          `json:"id"`
	CompanyID        string          `json:"companyId"`
	CompanyName      string          `json:"companyName"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Requirements     string          `json:"requirements"`
	Responsibilities string          `json:"responsibilities"`
	Benefits         string          `json:"benefits"`
	JobType          JobType         `json:"jobType"`
	ExperienceLevel  ExperienceLevel `json:"experienceLevel"`
	Location         string          `json:"location"`
	Remote           bool            `json:"remote"`
	SalaryMin        *float64        `json:"salaryMin"`
	SalaryMax        *float64        `json:"salaryMax"`
	SalaryCurrency   string          `json:"salaryCurrency"`
	Tags             []string        `json:"tags"`
	Deadline         *int64          `json:"deadline"`
	Status           JobStatus       `json:"status"`
	Visibility       Visibility      `json:"visibility"`
	Featured         bool            `json:"featured"`
	Urgent           bool            `json:"urgent"`
	ApplicationCount int64           `json:"applicationCount"`
	PendingCount     int64           `json:"pendingCount"`
	CreatedAt        int64           `json:"createdAt"`
}

func (j Job) Closed() bool {
	return j.Status == JobStatusClosed
}

// Clone 深拷贝，避免调用方修改 store 里面的切片和指针
func (j Job) Clone() Job {
	res := j
	res.Tags = slices.Clone(j.Tags)
	res.SalaryMin = clonePtr(j.SalaryMin)
	res.SalaryMax = clonePtr(j.SalaryMax)
	res.Deadline = clonePtr(j.Deadline)
	return res
}

// JobPage 一页职位，Total 和 TotalPages 由服务端计算
type JobPage struct {
	Items      []Job `json:"jobs"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func (p JobPage) Clone() JobPage {
	res := p
	if p.Items != nil {
		res.Items = make([]Job, len(p.Items))
		for i, j := range p.Items {
			res.Items[i] = j.Clone()
		}
	}
	return res
}

// JobSummary 候选人视角下投递记录里附带的职位摘要
type JobSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"companyName"`
	Status      JobStatus `json:"status"`
}

const MaxTags = 10

// JobDraft 发布和编辑职位的表单
type JobDraft struct {
	Title            string          `json:"title" validate:"required,max=200"`
	Description      string          `json:"description" validate:"required"`
	Requirements     string          `json:"requirements"`
	Responsibilities string          `json:"responsibilities"`
	Benefits         string          `json:"benefits"`
	JobType          JobType         `json:"jobType" validate:"required,jobtype"`
	ExperienceLevel  ExperienceLevel `json:"experienceLevel" validate:"required,experience"`
	Location         string          `json:"location" validate:"required_without=Remote"`
	Remote           bool            `json:"remote"`
	SalaryMin        *float64        `json:"salaryMin" validate:"omitempty,gte=0"`
	SalaryMax        *float64        `json:"salaryMax" validate:"omitempty,gte=0"`
	SalaryCurrency   string          `json:"salaryCurrency" validate:"omitempty,iso4217"`
	Tags             []string        `json:"tags" validate:"max=10,unique,dive,required"`
	Deadline         *int64          `json:"deadline"`
	Visibility       Visibility      `json:"visibility" validate:"required,oneof=PUBLIC UNLISTED DRAFT"`
	Featured         bool            `json:"featured"`
	Urgent           bool            `json:"urgent"`
}

// AddTag 超过上限或者已经存在的时候什么也不做
func (d *JobDraft) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || len(d.Tags) >= MaxTags || slices.Contains(d.Tags, tag) {
		return false
	}
	d.Tags = append(d.Tags, tag)
	return true
}

func (d *JobDraft) RemoveTag(tag string) {
	d.Tags = slices.DeleteFunc(d.Tags, func(t string) bool {
		return t == tag
	})
}

func (d JobDraft) Validate() error {
	return validateStruct(d)
}

// JobPatch 局部更新，nil 表示不修改
type JobPatch struct {
	Title            *string          `json:"title,omitempty"`
	Description      *string          `json:"description,omitempty"`
	Requirements     *string          `json:"requirements,omitempty"`
	Responsibilities *string          `json:"responsibilities,omitempty"`
	Benefits         *string          `json:"benefits,omitempty"`
	JobType          *JobType         `json:"jobType,omitempty"`
	ExperienceLevel  *ExperienceLevel `json:"experienceLevel,omitempty"`
	Location         *string          `json:"location,omitempty"`
	Remote           *bool            `json:"remote,omitempty"`
	SalaryMin        *float64         `json:"salaryMin,omitempty"`
	SalaryMax        *float64         `json:"salaryMax,omitempty"`
	SalaryCurrency   *string          `json:"salaryCurrency,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
	Deadline         *int64           `json:"deadline,omitempty"`
	Status           *JobStatus       `json:"status,omitempty"`
	Visibility       *Visibility      `json:"visibility,omitempty"`
	Featured         *bool            `json:"featured,omitempty"`
	Urgent           *bool            `json:"urgent,omitempty"`
}

// Validate 只能校验补丁自身，和原职位合并之后的薪资区间由服务端兜底
func (p JobPatch) Validate() error {
	if p.SalaryMin != nil && p.SalaryMax != nil && *p.SalaryMin > *p.SalaryMax {
		return ErrSalaryRange
	}
	if len(p.Tags) > MaxTags {
		return ErrTooManyTags
	}
	if p.JobType != nil && !p.JobType.Valid() {
		return invalidf("jobType", string(*p.JobType))
	}
	if p.ExperienceLevel != nil && !p.ExperienceLevel.Valid() {
		return invalidf("experienceLevel", string(*p.ExperienceLevel))
	}
	if p.Status != nil && !p.Status.Valid() {
		return invalidf("status", string(*p.Status))
	}
	return nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
