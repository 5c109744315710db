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

package query

import (
	"cmp"
	"strings"

	"github.com/ecodeclub/jobboard/internal/portal/client"
	"github.com/ecodeclub/jobboard/internal/portal/domain"
)

// JobFilter 零值字段表示不过滤
type JobFilter struct {
	// Search 匹配标题和公司名
	Search          string
	Status          domain.JobStatus
	JobType         domain.JobType
	ExperienceLevel domain.ExperienceLevel
	// Location 子串匹配
	Location string
	// MinSalary 和 salaryMin 比较，没有填写薪资的职位不满足
	MinSalary *float64
	Remote    *bool
}

func (f JobFilter) Match(j domain.Job) bool {
	if !containsFold(f.Search, j.Title, j.CompanyName) {
		return false
	}
	if f.Status != "" && j.Status != f.Status {
		return false
	}
	if f.JobType != "" && j.JobType != f.JobType {
		return false
	}
	if f.ExperienceLevel != "" && j.ExperienceLevel != f.ExperienceLevel {
		return false
	}
	if !containsFold(f.Location, j.Location) {
		return false
	}
	if f.MinSalary != nil && (j.SalaryMin == nil || *j.SalaryMin < *f.MinSalary) {
		return false
	}
	if f.Remote != nil && j.Remote != *f.Remote {
		return false
	}
	return true
}

type JobDescriptor struct {
	JobFilter
	Sort  Sort
	Page  int
	Limit int
}

// Params 转成交给服务端处理的查询参数
func (d JobDescriptor) Params() client.JobListParams {
	return client.JobListParams{
		Page:            d.Page,
		Limit:           d.Limit,
		Search:          strings.TrimSpace(d.Search),
		Status:          d.Status,
		JobType:         d.JobType,
		ExperienceLevel: d.ExperienceLevel,
		Location:        strings.TrimSpace(d.Location),
		MinSalary:       d.MinSalary,
		Remote:          d.Remote,
		Sort:            string(d.Sort),
	}
}

// Jobs 默认按照最新排序
func Jobs(items []domain.Job, d JobDescriptor) Result[domain.Job] {
	return run(items, d.Match, jobComparator(d.Sort), d.Page, d.Limit)
}

func jobComparator(s Sort) func(a, b domain.Job) int {
	switch s {
	case SortOldest:
		return func(a, b domain.Job) int {
			return compareTime(false, a.CreatedAt, b.CreatedAt, a.ID, b.ID)
		}
	case SortName:
		byName := nameComparator()
		return func(a, b domain.Job) int {
			return byName(a.CompanyName, b.CompanyName, a.ID, b.ID)
		}
	case SortSalaryHigh, SortSalaryLow:
		desc := s == SortSalaryHigh
		return func(a, b domain.Job) int {
			return compareSalary(desc, a, b)
		}
	default:
		return func(a, b domain.Job) int {
			return compareTime(true, a.CreatedAt, b.CreatedAt, a.ID, b.ID)
		}
	}
}

// compareSalary 不管升序还是降序，没有薪资的都排在最后
func compareSalary(desc bool, a, b domain.Job) int {
	switch {
	case a.SalaryMin == nil && b.SalaryMin == nil:
		return compareID(a.ID, b.ID)
	case a.SalaryMin == nil:
		return 1
	case b.SalaryMin == nil:
		return -1
	}
	c := cmp.Compare(*a.SalaryMin, *b.SalaryMin)
	if desc {
		c = -c
	}
	if c != 0 {
		return c
	}
	return compareID(a.ID, b.ID)
}
