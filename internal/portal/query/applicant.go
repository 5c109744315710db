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
	"github.com/ecodeclub/jobboard/internal/portal/domain"
)

type ApplicantFilter struct {
	// Search 匹配姓名和邮箱
	Search string
	Status domain.ApplicationStatus
}

func (f ApplicantFilter) Match(a domain.Application) bool {
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	return containsFold(f.Search, a.FullName, a.Email)
}

type ApplicantDescriptor struct {
	ApplicantFilter
	Sort  Sort
	Page  int
	Limit int
}

// Applicants 投递列表没有薪资，按薪资排序的时候退化成按最新排序
func Applicants(items []domain.Application, d ApplicantDescriptor) Result[domain.Application] {
	return run(items, d.Match, applicantComparator(d.Sort), d.Page, d.Limit)
}

func applicantComparator(s Sort) func(a, b domain.Application) int {
	switch s {
	case SortOldest:
		return func(a, b domain.Application) int {
			return compareTime(false, a.CreatedAt, b.CreatedAt, a.ID, b.ID)
		}
	case SortName:
		byName := nameComparator()
		return func(a, b domain.Application) int {
			return byName(a.FullName, b.FullName, a.ID, b.ID)
		}
	default:
		return func(a, b domain.Application) int {
			return compareTime(true, a.CreatedAt, b.CreatedAt, a.ID, b.ID)
		}
	}
}
