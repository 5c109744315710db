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

package dao

import (
	"strings"

	"gorm.io/gorm"
)

// Query 列表查询条件，零值字段表示不过滤
type Query struct {
	// Owner 大于 0 的时候只查这个招聘方的职位，不限状态和可见性
	Owner           int64
	Search          string
	Status          string
	JobType         string
	ExperienceLevel string
	Location        string
	MinSalary       *float64
	Remote          *bool
	Sort            string
	Offset          int
	Limit           int
}

func (q Query) where(db *gorm.DB) *gorm.DB {
	if q.Owner > 0 {
		db = db.Where("company_id = ?", q.Owner)
	} else {
		// 其他人只能看到公开并且发布中的职位
		db = db.Where("visibility = ? AND status = ?", "PUBLIC", StatusActive)
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		kw := likePattern(search)
		db = db.Where("(title LIKE ? ESCAPE '!' OR company_name LIKE ? ESCAPE '!')", kw, kw)
	}
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	if q.JobType != "" {
		db = db.Where("job_type = ?", q.JobType)
	}
	if q.ExperienceLevel != "" {
		db = db.Where("experience_level = ?", q.ExperienceLevel)
	}
	if location := strings.TrimSpace(q.Location); location != "" {
		db = db.Where("location LIKE ? ESCAPE '!'", likePattern(location))
	}
	if q.MinSalary != nil {
		// salary_min 为 NULL 的时候比较结果也是 NULL，不会被查出来
		db = db.Where("salary_min >= ?", *q.MinSalary)
	}
	if q.Remote != nil {
		db = db.Where("remote = ?", *q.Remote)
	}
	return db
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// likePattern 子串匹配，用户输入里的通配符按照字面量处理
func likePattern(kw string) string {
	return "%" + likeEscaper.Replace(kw) + "%"
}

// order 排序字段相同的时候按照 id 排，保证翻页稳定
func (q Query) order() []string {
	switch q.Sort {
	case "oldest":
		return []string{"ctime ASC", "id ASC"}
	case "name":
		return []string{"company_name ASC", "id ASC"}
	case "salary-high":
		return []string{"salary_min IS NULL", "salary_min DESC", "id ASC"}
	case "salary-low":
		return []string{"salary_min IS NULL", "salary_min ASC", "id ASC"}
	default:
		return []string{"ctime DESC", "id DESC"}
	}
}
