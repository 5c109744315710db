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

type Sort string

const (
	SortNewest     Sort = "newest"
	SortOldest     Sort = "oldest"
	SortName       Sort = "name"
	SortSalaryHigh Sort = "salary-high"
	SortSalaryLow  Sort = "salary-low"
)

// Query 列表查询条件，零值字段表示不过滤
type Query struct {
	// Owner 大于 0 的时候只查这个招聘方的职位，并且不限状态
	Owner           int64
	Search          string
	Status          Status
	JobType         string
	ExperienceLevel string
	Location        string
	MinSalary       *float64
	Remote          *bool
	Sort            Sort
	Offset          int
	Limit           int
}
