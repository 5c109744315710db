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

package workflow

import (
	"context"
	"slices"
	"sync"

	"github.com/ecodeclub/jobboard/internal/portal/domain"
	"github.com/ecodeclub/jobboard/internal/portal/query"
)

// ReviewBoard 招聘方审核某个职位投递的页面状态。
// 投递列表由页面自己持有，不进全局的 store
type ReviewBoard struct {
	jobID string
	src   ApplicantSource

	mu       sync.Mutex
	items    []domain.Application
	selected map[string]struct{}
}

func NewReviewBoard(src ApplicantSource, jobID string) *ReviewBoard {
	return &ReviewBoard{
		jobID:    jobID,
		src:      src,
		selected: make(map[string]struct{}),
	}
}

// Load 整体替换列表，已经不存在的投递从选中里面去掉
func (b *ReviewBoard) Load(ctx context.Context) error {
	items, err := b.src.LoadJobApplications(ctx, b.jobID)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = items
	for id := range b.selected {
		if !b.containsLocked(id) {
			delete(b.selected, id)
		}
	}
	return nil
}

func (b *ReviewBoard) Items() []domain.Application {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.items)
}

// View 在页面持有的列表上过滤、排序、分页，不请求服务端
func (b *ReviewBoard) View(d query.ApplicantDescriptor) query.Result[domain.Application] {
	return query.Applicants(b.Items(), d)
}

// Counts 每个状态的投递数量
func (b *ReviewBoard) Counts() map[domain.ApplicationStatus]int {
	b.mu.Lock()
	defer b.mu.Unlock()
	res := make(map[domain.ApplicationStatus]int, len(domain.ApplicationStatuses))
	for _, app := range b.items {
		res[app.Status]++
	}
	return res
}

func (b *ReviewBoard) Select(ids ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, id := range ids {
		if b.containsLocked(id) {
			b.selected[id] = struct{}{}
		}
	}
}

func (b *ReviewBoard) Deselect(ids ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, id := range ids {
		delete(b.selected, id)
	}
}

func (b *ReviewBoard) SelectAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, app := range b.items {
		b.selected[app.ID] = struct{}{}
	}
}

func (b *ReviewBoard) ClearSelection() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.selected)
}

// Selected 按照列表顺序返回
func (b *ReviewBoard) Selected() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	res := make([]string, 0, len(b.selected))
	for _, app := range b.items {
		if _, ok := b.selected[app.ID]; ok {
			res = append(res, app.ID)
		}
	}
	return res
}

// SetStatus 服务端成功之后才替换本地的那一条
func (b *ReviewBoard) SetStatus(ctx context.Context, id string, status domain.ApplicationStatus) (domain.Application, error) {
	if !status.Valid() {
		return domain.Application{}, ErrInvalidStatus
	}
	app, err := b.src.UpdateApplicationStatus(ctx, id, status)
	if err != nil {
		return domain.Application{}, err
	}
	b.mu.Lock()
	b.items = ReplaceByID(b.items, app)
	b.mu.Unlock()
	return app, nil
}

// BulkSetStatus 对选中的投递批量操作。成功的取消选中，失败的保持原状态并继续选中
func (b *ReviewBoard) BulkSetStatus(ctx context.Context, status domain.ApplicationStatus) BulkResult {
	if !status.Valid() {
		return BulkResult{Failed: b.Selected()}
	}
	res := Bulk(ctx, b.src, b.Selected(), status)
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, app := range res.Updated {
		b.items = ReplaceByID(b.items, app)
		delete(b.selected, app.ID)
	}
	return res
}

func (b *ReviewBoard) containsLocked(id string) bool {
	return slices.ContainsFunc(b.items, func(app domain.Application) bool {
		return app.ID == id
	})
}
