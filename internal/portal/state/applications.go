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
	"errors"
	"fmt"

	"github.com/ecodeclub/jobboard/internal/portal/client"
	"github.com/ecodeclub/jobboard/internal/portal/domain"
	"github.com/ecodeclub/jobboard/internal/portal/workflow"
)

var (
	opLoadMyApplications  = op{name: "loadMyApplications", resource: ResourceApplications, flag: func(f *Flags) *bool { return &f.IsFetchingApplications }}
	opLoadJobApplications = op{name: "loadJobApplications", resource: ResourceApplications, flag: func(f *Flags) *bool { return &f.IsFetchingJobApplications }}
	opApply               = op{name: "apply", resource: ResourceApplications, flag: func(f *Flags) *bool { return &f.IsCreatingApplication }}
	opUpdateApplication   = op{name: "updateApplicationStatus", resource: ResourceApplications, flag: func(f *Flags) *bool { return &f.IsUpdatingApplication }}
	opWithdraw            = op{name: "withdrawApplication", resource: ResourceApplications, flag: func(f *Flags) *bool { return &f.IsWithdrawingApplication }}
)

var _ workflow.ApplicantSource = (*Store)(nil)

// LoadMyApplications 整体替换候选人的投递列表
func (s *Store) LoadMyApplications(ctx context.Context) ([]domain.Application, error) {
	token := s.pending(opLoadMyApplications)
	apps, err := s.gw.Applications.Mine(ctx)
	s.settle(opLoadMyApplications, token, err, func(st *State) {
		st.MyApplications = cloneApplications(apps)
	})
	return apps, err
}

// Apply 成功之后放到最前面。重复投递的 409 不会改动列表
func (s *Store) Apply(ctx context.Context, draft domain.ApplicationDraft) (domain.Application, error) {
	if err := draft.Validate(); err != nil {
		return domain.Application{}, s.reject(opApply, err)
	}
	token := s.pending(opApply)
	app, err := s.gw.Applications.Submit(ctx, draft)
	switch {
	case err == nil:
	case errors.Is(err, client.ErrConflict):
		err = fmt.Errorf("%w: %w", ErrAlreadyApplied, err)
	case client.HasCode(err, client.CodeJobNotAccepting):
		err = fmt.Errorf("%w: %w", ErrJobNotAccepting, err)
	}
	s.settle(opApply, token, err, func(st *State) {
		for i := range st.MyApplications {
			if st.MyApplications[i].ID == app.ID {
				st.MyApplications[i] = app.Clone()
				return
			}
		}
		st.MyApplications = append([]domain.Application{app.Clone()}, st.MyApplications...)
	})
	return app, err
}

// WithdrawApplication 已知状态不是 PENDING 的时候直接拒绝，不发请求。
// 列表里面没有这一条的时候交给服务端判断
func (s *Store) WithdrawApplication(ctx context.Context, id string) error {
	for _, app := range s.State().MyApplications {
		if app.ID == id && !workflow.CanWithdraw(app.Status) {
			return s.reject(opWithdraw, workflow.ErrWithdrawNotAllowed)
		}
	}
	token := s.pending(opWithdraw)
	err := s.gw.Applications.Withdraw(ctx, id)
	if client.HasCode(err, client.CodeWithdrawNotAllowed) {
		err = fmt.Errorf("%w: %w", workflow.ErrWithdrawNotAllowed, err)
	}
	s.settle(opWithdraw, token, err, func(st *State) {
		res := st.MyApplications[:0:0]
		for _, app := range st.MyApplications {
			if app.ID != id {
				res = append(res, app)
			}
		}
		st.MyApplications = res
	})
	return err
}

// UpdateApplicationStatus 只负责调用服务端，store 不保存某个职位的投递列表，
// 调用方自己用 workflow.ReplaceByID 更新
func (s *Store) UpdateApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) (domain.Application, error) {
	if !status.Valid() {
		return domain.Application{}, s.reject(opUpdateApplication, fmt.Errorf("%w: %q", workflow.ErrInvalidStatus, status))
	}
	token := s.pending(opUpdateApplication)
	app, err := s.gw.Applications.UpdateStatus(ctx, id, status)
	s.settle(opUpdateApplication, token, err, nil)
	return app, err
}

// LoadJobApplications 返回的列表归调用方所有，不进 store
func (s *Store) LoadJobApplications(ctx context.Context, jobID string) ([]domain.Application, error) {
	token := s.pending(opLoadJobApplications)
	apps, err := s.gw.Jobs.Applications(ctx, jobID)
	s.settle(opLoadJobApplications, token, err, nil)
	return apps, err
}

func cloneApplications(apps []domain.Application) []domain.Application {
	res := make([]domain.Application, 0, len(apps))
	for _, app := range apps {
		res = append(res, app.Clone())
	}
	return res
}
