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

package state

import (
	"context"
	"fmt"

	"github.com/ecodeclub/jobboard/internal/portal/client"
	"github.com/ecodeclub/jobboard/internal/portal/domain"
	"github.com/ecodeclub/jobboard/internal/portal/workflow"
)

var (
	opLoadJobs  = op{name: "loadJobs", resource: ResourceJobs, flag: func(f *Flags) *bool { return &f.IsFetchingJobs }}
	opLoadJob   = op{name: "loadJob", resource: ResourceJobs, flag: func(f *Flags) *bool { return &f.IsFetchingJob }}
	opCreateJob = op{name: "createJob", resource: ResourceJobs, flag: func(f *Flags) *bool { return &f.IsCreatingJob }}
	opUpdateJob = op{name: "updateJob", resource: ResourceJobs, flag: func(f *Flags) *bool { return &f.IsUpdatingJob }}
	opCloseJob  = op{name: "closeJob", resource: ResourceJobs, flag: func(f *Flags) *bool { return &f.IsClosingJob }}
)

// LoadJobs 用服务端返回的这一页整体替换，不和之前的页合并
func (s *Store) LoadJobs(ctx context.Context, params client.JobListParams) (domain.JobPage, error) {
	token := s.pending(opLoadJobs)
	page, err := s.gw.Jobs.List(ctx, params)
	s.settle(opLoadJobs, token, err, func(st *State) {
		st.Jobs = page.Clone()
	})
	return page, err
}

// LoadJobByID 只替换 CurrentJob，不动列表
func (s *Store) LoadJobByID(ctx context.Context, id string) (domain.Job, error) {
	token := s.pending(opLoadJob)
	job, err := s.gw.Jobs.Get(ctx, id)
	s.settle(opLoadJob, token, err, func(st *State) {
		j := job.Clone()
		st.CurrentJob = &j
	})
	return job, err
}

// CreateJob 成功之后放到当前列表的最前面，不重新拉取
func (s *Store) CreateJob(ctx context.Context, draft domain.JobDraft) (domain.Job, error) {
	if err := draft.Validate(); err != nil {
		return domain.Job{}, s.reject(opCreateJob, err)
	}
	if p := s.State().CompanyProfile; p != nil && !p.Completed {
		return domain.Job{}, s.reject(opCreateJob, ErrProfileIncomplete)
	}
	token := s.pending(opCreateJob)
	job, err := s.gw.Jobs.Create(ctx, draft)
	if client.HasCode(err, client.CodeProfileIncomplete) {
		err = fmt.Errorf("%w: %w", ErrProfileIncomplete, err)
	}
	s.settle(opCreateJob, token, err, func(st *State) {
		st.Jobs.Items = append([]domain.Job{job.Clone()}, st.Jobs.Items...)
	})
	return job, err
}

// UpdateJob 只有 CurrentJob 的 id 相同时才替换它，列表里面的那一条要重新拉取才会更新
func (s *Store) UpdateJob(ctx context.Context, id string, patch domain.JobPatch) (domain.Job, error) {
	if err := patch.Validate(); err != nil {
		return domain.Job{}, s.reject(opUpdateJob, err)
	}
	if patch.Status != nil {
		if cur := s.State().CurrentJob; cur != nil && cur.ID == id {
			if err := workflow.ValidateJobTransition(cur.Status, *patch.Status); err != nil {
				return domain.Job{}, s.reject(opUpdateJob, err)
			}
		}
	}
	token := s.pending(opUpdateJob)
	job, err := s.gw.Jobs.Patch(ctx, id, patch)
	s.settle(opUpdateJob, token, err, replaceCurrentJob(id, job))
	return job, err
}

// EditJob 全量更新，对 store 的影响和 UpdateJob 一样
func (s *Store) EditJob(ctx context.Context, id string, draft domain.JobDraft) (domain.Job, error) {
	if err := draft.Validate(); err != nil {
		return domain.Job{}, s.reject(opUpdateJob, err)
	}
	token := s.pending(opUpdateJob)
	job, err := s.gw.Jobs.Update(ctx, id, draft)
	s.settle(opUpdateJob, token, err, replaceCurrentJob(id, job))
	return job, err
}

// PublishJob 把草稿发布成 ACTIVE
func (s *Store) PublishJob(ctx context.Context, id string) (domain.Job, error) {
	active := domain.JobStatusActive
	return s.UpdateJob(ctx, id, domain.JobPatch{Status: &active})
}

// CloseJob 服务端确认之后才把列表里面的那一条改成 CLOSED，没有回滚逻辑
func (s *Store) CloseJob(ctx context.Context, id string) error {
	token := s.pending(opCloseJob)
	err := s.gw.Jobs.Close(ctx, id)
	s.settle(opCloseJob, token, err, func(st *State) {
		for i := range st.Jobs.Items {
			if st.Jobs.Items[i].ID == id {
				st.Jobs.Items[i].Status = domain.JobStatusClosed
			}
		}
		if st.CurrentJob != nil && st.CurrentJob.ID == id {
			st.CurrentJob.Status = domain.JobStatusClosed
		}
	})
	return err
}

func replaceCurrentJob(id string, job domain.Job) func(st *State) {
	return func(st *State) {
		if st.CurrentJob != nil && st.CurrentJob.ID == id {
			j := job.Clone()
			st.CurrentJob = &j
		}
	}
}
