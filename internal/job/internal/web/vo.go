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
	"math"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
)

const (
	defaultLimit = 10
	maxLimit     = 100
	// 超过这个偏移量的页一定是空的
	maxOffset = math.MaxInt32
)

// SaveJobReq 发布和全量编辑共用
type SaveJobReq struct {
	Title            string   `json:"title" validate:"required,max=200"`
	Description      string   `json:"description" validate:"required"`
	Requirements     string   `json:"requirements"`
	Responsibilities string   `json:"responsibilities"`
	Benefits         string   `json:"benefits"`
	JobType          string   `json:"jobType" validate:"required,oneof=Full-time Part-time Contract Internship Temporary Volunteer Remote"`
	ExperienceLevel  string   `json:"experienceLevel" validate:"required,oneof=Intern Entry-level Mid-level Senior Lead Executive"`
	Location         string   `json:"location" validate:"required_without=Remote,max=256"`
	Remote           bool     `json:"remote"`
	SalaryMin        *float64 `json:"salaryMin" validate:"omitempty,gte=0"`
	SalaryMax        *float64 `json:"salaryMax" validate:"omitempty,gte=0"`
	SalaryCurrency   string   `json:"salaryCurrency" validate:"omitempty,iso4217"`
	Tags             []string `json:"tags" validate:"max=10,unique,dive,required"`
	Deadline         *int64   `json:"deadline"`
	Visibility       string   `json:"visibility" validate:"required,oneof=PUBLIC UNLISTED DRAFT"`
	Featured         bool     `json:"featured"`
	Urgent           bool     `json:"urgent"`
}

func (r SaveJobReq) toDomain(uid, id int64) domain.Job {
	return domain.Job{
		ID:               id,
		CompanyID:        uid,
		Title:            r.Title,
		Description:      r.Description,
		Requirements:     r.Requirements,
		Responsibilities: r.Responsibilities,
		Benefits:         r.Benefits,
		JobType:          r.JobType,
		ExperienceLevel:  r.ExperienceLevel,
		Location:         r.Location,
		Remote:           r.Remote,
		SalaryMin:        r.SalaryMin,
		SalaryMax:        r.SalaryMax,
		SalaryCurrency:   r.SalaryCurrency,
		Tags:             r.Tags,
		Deadline:         r.Deadline,
		Visibility:       domain.Visibility(r.Visibility),
		Featured:         r.Featured,
		Urgent:           r.Urgent,
	}
}

// PatchJobReq nil 表示不修改
type PatchJobReq struct {
	Title            *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Description      *string  `json:"description" validate:"omitempty,min=1"`
	Requirements     *string  `json:"requirements"`
	Responsibilities *string  `json:"responsibilities"`
	Benefits         *string  `json:"benefits"`
	JobType          *string  `json:"jobType" validate:"omitempty,oneof=Full-time Part-time Contract Internship Temporary Volunteer Remote"`
	ExperienceLevel  *string  `json:"experienceLevel" validate:"omitempty,oneof=Intern Entry-level Mid-level Senior Lead Executive"`
	Location         *string  `json:"location" validate:"omitempty,max=256"`
	Remote           *bool    `json:"remote"`
	SalaryMin        *float64 `json:"salaryMin" validate:"omitempty,gte=0"`
	SalaryMax        *float64 `json:"salaryMax" validate:"omitempty,gte=0"`
	SalaryCurrency   *string  `json:"salaryCurrency" validate:"omitempty,iso4217"`
	Tags             []string `json:"tags" validate:"omitempty,max=10,unique,dive,required"`
	Deadline         *int64   `json:"deadline"`
	Status           *string  `json:"status" validate:"omitempty,oneof=DRAFT ACTIVE CLOSED"`
	Visibility       *string  `json:"visibility" validate:"omitempty,oneof=PUBLIC UNLISTED DRAFT"`
	Featured         *bool    `json:"featured"`
	Urgent           *bool    `json:"urgent"`
}

func (r PatchJobReq) toDomain() domain.Patch {
	p := domain.Patch{
		Title:            r.Title,
		Description:      r.Description,
		Requirements:     r.Requirements,
		Responsibilities: r.Responsibilities,
		Benefits:         r.Benefits,
		JobType:          r.JobType,
		ExperienceLevel:  r.ExperienceLevel,
		Location:         r.Location,
		Remote:           r.Remote,
		SalaryMin:        r.SalaryMin,
		SalaryMax:        r.SalaryMax,
		SalaryCurrency:   r.SalaryCurrency,
		Tags:             r.Tags,
		Deadline:         r.Deadline,
		Featured:         r.Featured,
		Urgent:           r.Urgent,
	}
	if r.Status != nil {
		s := domain.Status(*r.Status)
		p.Status = &s
	}
	if r.Visibility != nil {
		v := domain.Visibility(*r.Visibility)
		p.Visibility = &v
	}
	return p
}

// ListReq 查询参数，page 从 1 开始
type ListReq struct {
	Page            int      `form:"page"`
	Limit           int      `form:"limit"`
	Search          string   `form:"search"`
	Status          string   `form:"status" validate:"omitempty,oneof=DRAFT ACTIVE CLOSED"`
	JobType         string   `form:"jobType"`
	ExperienceLevel string   `form:"experienceLevel"`
	Location        string   `form:"location"`
	MinSalary       *float64 `form:"minSalary"`
	Remote          *bool    `form:"remote"`
	Sort            string   `form:"sort" validate:"omitempty,oneof=newest oldest name salary-high salary-low"`
	Mine            bool     `form:"mine"`
}

func (r *ListReq) normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = defaultLimit
	}
	r.Limit = min(r.Limit, maxLimit)
}

// offset 先比较再相乘，page 很大的时候不会溢出
func (r ListReq) offset() int {
	if r.Limit <= 0 || r.Page <= 1 {
		return 0
	}
	if r.Page-1 > maxOffset/r.Limit {
		return maxOffset
	}
	return (r.Page - 1) * r.Limit
}

func (r ListReq) toDomain(owner int64) domain.Query {
	return domain.Query{
		Owner:           owner,
		Search:          r.Search,
		Status:          domain.Status(r.Status),
		JobType:         r.JobType,
		ExperienceLevel: r.ExperienceLevel,
		Location:        r.Location,
		MinSalary:       r.MinSalary,
		Remote:          r.Remote,
		Sort:            domain.Sort(r.Sort),
		Offset:          r.offset(),
		Limit:           r.Limit,
	}
}

type JobVO struct {
	ID               int64    `json:"id,string"`
	CompanyID        int64    `json:"companyId,string"`
	CompanyName      string   `json:"companyName"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Requirements     string   `json:"requirements"`
	Responsibilities string   `json:"responsibilities"`
	Benefits         string   `json:"benefits"`
	JobType          string   `json:"jobType"`
	ExperienceLevel  string   `json:"experienceLevel"`
	Location         string   `json:"location"`
	Remote           bool     `json:"remote"`
	SalaryMin        *float64 `json:"salaryMin"`
	SalaryMax        *float64 `json:"salaryMax"`
	SalaryCurrency   string   `json:"salaryCurrency"`
	Tags             []string `json:"tags"`
	Deadline         *int64   `json:"deadline"`
	Status           string   `json:"status"`
	Visibility       string   `json:"visibility"`
	Featured         bool     `json:"featured"`
	Urgent           bool     `json:"urgent"`
	ApplicationCount int64    `json:"applicationCount"`
	PendingCount     int64    `json:"pendingCount"`
	CreatedAt        int64    `json:"createdAt"`
	UpdatedAt        int64    `json:"updatedAt"`
}

func newJobVO(j domain.Job) JobVO {
	tags := j.Tags
	if tags == nil {
		tags = []string{}
	}
	return JobVO{
		ID:               j.ID,
		CompanyID:        j.CompanyID,
		CompanyName:      j.CompanyName,
		Title:            j.Title,
		Description:      j.Description,
		Requirements:     j.Requirements,
		Responsibilities: j.Responsibilities,
		Benefits:         j.Benefits,
		JobType:          j.JobType,
		ExperienceLevel:  j.ExperienceLevel,
		Location:         j.Location,
		Remote:           j.Remote,
		SalaryMin:        j.SalaryMin,
		SalaryMax:        j.SalaryMax,
		SalaryCurrency:   j.SalaryCurrency,
		Tags:             tags,
		Deadline:         j.Deadline,
		Status:           string(j.Status),
		Visibility:       string(j.Visibility),
		Featured:         j.Featured,
		Urgent:           j.Urgent,
		ApplicationCount: j.ApplicationCount,
		PendingCount:     j.PendingCount,
		CreatedAt:        j.Ctime,
		UpdatedAt:        j.Utime,
	}
}

type JobListVO struct {
	Jobs       []JobVO `json:"jobs"`
	Total      int64   `json:"total"`
	TotalPages int     `json:"totalPages"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

func newJobListVO(jobs []domain.Job, total int64, req ListReq) JobListVO {
	return JobListVO{
		Jobs: slice.Map(jobs, func(idx int, src domain.Job) JobVO {
			return newJobVO(src)
		}),
		Total:      total,
		TotalPages: int((total + int64(req.Limit) - 1) / int64(req.Limit)),
		Page:       req.Page,
		Limit:      req.Limit,
	}
}
