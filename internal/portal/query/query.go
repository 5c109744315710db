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

// Package query 对已经加载到内存里面的列表做过滤、排序、分页。
// 所有函数都不会修改入参，同样的输入一定得到同样的输出。
package query

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Sort string

const (
	SortNewest     Sort = "newest"
	SortOldest     Sort = "oldest"
	SortName       Sort = "name"
	SortSalaryHigh Sort = "salary-high"
	SortSalaryLow  Sort = "salary-low"
)

func (s Sort) Valid() bool {
	switch s {
	case SortNewest, SortOldest, SortName, SortSalaryHigh, SortSalaryLow:
		return true
	}
	return false
}

// Result 过滤排序之后的一页数据，Total 是过滤之后、分页之前的条数
type Result[T any] struct {
	Items      []T
	Total      int
	TotalPages int
	Page       int
	Limit      int
}

// Paginate 纯粹的切片操作，page 从 1 开始，limit <= 0 表示不分页
func Paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		return slices.Clone(items)
	}
	if page < 1 {
		page = 1
	}
	// 先比较页号再相乘，page 很大的时候乘法会溢出
	if len(items) == 0 || page-1 > (len(items)-1)/limit {
		return []T{}
	}
	start := (page - 1) * limit
	end := start + min(limit, len(items)-start)
	return slices.Clone(items[start:end])
}

func TotalPages(total, limit int) int {
	if total <= 0 {
		return 0
	}
	if limit <= 0 {
		return 1
	}
	return (total-1)/limit + 1
}

func run[T any](items []T, match func(T) bool, compare func(a, b T) int, page, limit int) Result[T] {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if match(item) {
			filtered = append(filtered, item)
		}
	}
	slices.SortStableFunc(filtered, compare)
	if page < 1 {
		page = 1
	}
	return Result[T]{
		Items:      Paginate(filtered, page, limit),
		Total:      len(filtered),
		TotalPages: TotalPages(len(filtered), limit),
		Page:       page,
		Limit:      limit,
	}
}

// containsFold 大小写不敏感的子串匹配，空的关键字匹配所有
func containsFold(keyword string, fields ...string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), keyword) {
			return true
		}
	}
	return false
}

// compareTime createdAt 相同的时候按照 id 排，方向和时间一致，和服务端的排序保持一样
func compareTime(desc bool, ta, tb int64, ida, idb string) int {
	c := cmp.Compare(ta, tb)
	if c == 0 {
		c = compareID(ida, idb)
	}
	if desc {
		c = -c
	}
	return c
}

// compareID 两边都是数字的时候按照数值比较，雪花 ID 的长度不一定相同
func compareID(a, b string) int {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return cmp.Compare(na, nb)
	}
	return cmp.Compare(a, b)
}

// nameComparator 按照英文习惯排序并且忽略大小写。
// collate.Collator 不是并发安全的，所以每次排序都新建一个
func nameComparator() func(a, b, ida, idb string) int {
	col := collate.New(language.English, collate.IgnoreCase)
	return func(a, b, ida, idb string) int {
		if c := col.CompareString(a, b); c != 0 {
			return c
		}
		return compareID(ida, idb)
	}
}
