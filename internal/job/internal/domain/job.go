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
	"errors"
	"fmt"
	"time"
)

type Status string

const (
	StatusDraft  Status = "DRAFT"
	StatusActive Status = "ACTIVE"
	StatusClosed Status = "CLOSED"
)

type Visibility string

const (
	VisibilityPublic   Visibility = "PUBLIC"
	VisibilityUnlisted Visibility = "UNLISTED"
	VisibilityDraft    Visibility = "DRAFT"
)

// InitialStatus 草稿可见性创建出来就是草稿，其余直接发布
func (v Visibility) InitialStatus() Status {
	if v == VisibilityDraft {
		return StatusDraft
	}
	return StatusActive
}

var (
	ErrJobClosed         = errors.New("职位已关闭，不能重新开启")
	ErrIllegalTransition = errors.New("不支持的职位状态变更")
)

type Job struct {
	ID int64
	// CompanyID 就是发布职位的招聘方 uid
	CompanyID        int64
	CompanyName      string
	Title            string
	Description      string
	Requirements     string
	Responsibilities string
	Benefits         string
	JobType          string
	ExperienceLevel  string
	Location         string
	Remote           bool
	SalaryMin        *float64
	SalaryMax        *float64
	SalaryCurrency   string
	Tags             []string
	// Deadline 毫秒，nil 表示长期有效
	Deadline         *int64
	Status           Status
	Visibility       Visibility
	Featured         bool
	Urgent           bool
	ApplicationCount int64
	PendingCount     int64
	Ctime            int64
	Utime            int64
}

// AcceptsApplications 只有发布中并且没有过截止时间的职位可以投递
func (j Job) AcceptsApplications(now time.Time) bool {
	if j.Status != StatusActive {
		return false
	}
	return j.Deadline == nil || *j.Deadline >= now.UnixMilli()
}

// VisibleTo 草稿只有自己能看到
func (j Job) VisibleTo(uid int64) bool {
	return j.Status != StatusDraft || j.CompanyID == uid
}

// ValidateTransition 关闭之后不能再改状态，草稿可以发布，任何状态都可以关闭
func ValidateTransition(from, to Status) error {
	if from == to {
		return nil
	}
	switch {
	case from == StatusClosed:
		return ErrJobClosed
	case to == StatusClosed:
		return nil
	case from == StatusDraft && to == StatusActive:
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
}

// Patch 部分更新，nil 表示不修改
type Patch struct {
	Title            *string
	Description      *string
	Requirements     *string
	Responsibilities *string
	Benefits         *string
	JobType          *string
	ExperienceLevel  *string
	Location         *string
	Remote           *bool
	SalaryMin        *float64
	SalaryMax        *float64
	SalaryCurrency   *string
	Tags             []string
	Deadline         *int64
	Status           *Status
	Visibility       *Visibility
	Featured         *bool
	Urgent           *bool
}

// Apply 返回修改之后的职位，不检查状态变更
func (p Patch) Apply(j Job) Job {
	set(&j.Title, p.Title)
	set(&j.Description, p.Description)
	set(&j.Requirements, p.Requirements)
	set(&j.Responsibilities, p.Responsibilities)
	set(&j.Benefits, p.Benefits)
	set(&j.JobType, p.JobType)
	set(&j.ExperienceLevel, p.ExperienceLevel)
	set(&j.Location, p.Location)
	set(&j.Remote, p.Remote)
	set(&j.SalaryCurrency, p.SalaryCurrency)
	set(&j.Status, p.Status)
	set(&j.Visibility, p.Visibility)
	set(&j.Featured, p.Featured)
	set(&j.Urgent, p.Urgent)
	if p.SalaryMin != nil {
		j.SalaryMin = p.SalaryMin
	}
	if p.SalaryMax != nil {
		j.SalaryMax = p.SalaryMax
	}
	if p.Deadline != nil {
		j.Deadline = p.Deadline
	}
	if p.Tags != nil {
		j.Tags = p.Tags
	}
	return j
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// SalaryRangeValid 两个都填了的时候最低不能高于最高
func SalaryRangeValid(min, max *float64) bool {
	return min == nil || max == nil || *min <= *max
}
