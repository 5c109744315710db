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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/application/internal/repository"
	"github.com/ecodeclub/jobboard/internal/application/internal/repository/dao"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/pkg/idgen"
	"github.com/ecodeclub/jobboard/internal/pkg/mqx"
	"github.com/ecodeclub/jobboard/internal/resume"
	"github.com/gotomicro/ego/core/elog"
)

// 状态被并发修改的时候最多重试的次数
const maxStatusRetries = 3

var (
	ErrApplicationNotFound = dao.ErrRecordNotFound
	ErrDuplicated          = dao.ErrDuplicated
	ErrJobNotFound         = job.ErrJobNotFound
	ErrJobNotAccepting     = job.ErrJobNotAccepting
	ErrPermissionDenied    = errors.New("不是自己职位下的投递")
	ErrResumeNotOwned      = errors.New("简历不属于当前候选人")
	ErrWithdrawNotAllowed  = errors.New("只有待处理的投递可以撤回")
	ErrInvalidStatus       = errors.New("非法的投递状态")
)

//go:generate mockgen -source=./application.go -destination=../../mocks/application.mock.go -package=applicationmocks -typed Service
type Service interface {
	// Apply 依次检查职位存在、职位接受投递、简历归属、重复投递
	Apply(ctx context.Context, app domain.Application) (domain.Application, error)
	// Mine 候选人自己的投递，最新的在前面，附带职位摘要，不包含备注
	Mine(ctx context.Context, uid int64) ([]domain.Application, error)
	// JobApplications 招聘方查看自己职位下的投递
	JobApplications(ctx context.Context, uid, jobID int64) ([]domain.Application, error)
	// UpdateStatus 设置成相同的状态也是成功，notes 为 nil 表示不修改备注
	UpdateStatus(ctx context.Context, uid, id int64, status domain.Status, notes *string) (domain.Application, error)
	// Withdraw 候选人撤回待处理的投递
	Withdraw(ctx context.Context, uid, id int64) error
}

type service struct {
	repo      repository.ApplicationRepository
	jobSvc    job.Service
	resumeSvc resume.Service
	producer  mqx.Producer[job.ApplicationEvent]
	idgen     idgen.Generator
	logger    *elog.Component
}

func NewService(repo repository.ApplicationRepository,
	jobSvc job.Service,
	resumeSvc resume.Service,
	producer mqx.Producer[job.ApplicationEvent],
	idgen idgen.Generator) Service {
	return &service{
		repo:      repo,
		jobSvc:    jobSvc,
		resumeSvc: resumeSvc,
		producer:  producer,
		idgen:     idgen,
		logger:    elog.DefaultLogger,
	}
}

func (s *service) Apply(ctx context.Context, app domain.Application) (domain.Application, error) {
	if _, err := s.jobSvc.Accepting(ctx, app.JobID); err != nil {
		return domain.Application{}, err
	}
	ok, err := s.resumeSvc.Owns(ctx, app.CandidateID, app.ResumeID)
	if err != nil {
		return domain.Application{}, err
	}
	if !ok {
		return domain.Application{}, ErrResumeNotOwned
	}
	app.ID, err = s.idgen.Next(idgen.BizApplication)
	if err != nil {
		return domain.Application{}, err
	}
	app.Status = domain.StatusPending
	app.Notes = ""
	if err = s.repo.Create(ctx, app); err != nil {
		return domain.Application{}, err
	}
	s.produce(ctx, job.ApplicationEvent{
		Type:          job.ApplicationCreated,
		JobID:         app.JobID,
		ApplicationID: app.ID,
		NewStatus:     string(app.Status),
	})
	res, err := s.repo.FindByID(ctx, app.ID)
	if err != nil {
		return domain.Application{}, err
	}
	return s.candidateView(ctx, res), nil
}

func (s *service) Mine(ctx context.Context, uid int64) ([]domain.Application, error) {
	apps, err := s.repo.FindByCandidate(ctx, uid)
	if err != nil {
		return nil, err
	}
	for i := range apps {
		apps[i] = s.candidateView(ctx, apps[i])
	}
	return apps, nil
}

// candidateView 去掉备注，附带职位摘要。职位查不到的时候不附带
func (s *service) candidateView(ctx context.Context, app domain.Application) domain.Application {
	app.Notes = ""
	j, err := s.jobSvc.FindByID(ctx, app.JobID)
	if err != nil {
		if !errors.Is(err, job.ErrJobNotFound) {
			s.logger.Warn("查询投递的职位失败", elog.Int64("jid", app.JobID), elog.FieldErr(err))
		}
		return app
	}
	app.Job = &domain.JobSummary{
		ID:          j.ID,
		Title:       j.Title,
		CompanyName: j.CompanyName,
		Status:      string(j.Status),
	}
	return app
}

func (s *service) JobApplications(ctx context.Context, uid, jobID int64) ([]domain.Application, error) {
	if _, err := s.jobSvc.Owned(ctx, uid, jobID); err != nil {
		return nil, s.ownedErr(err)
	}
	return s.repo.FindByJob(ctx, jobID)
}

func (s *service) UpdateStatus(ctx context.Context, uid, id int64, status domain.Status, notes *string) (domain.Application, error) {
	if !status.Valid() {
		return domain.Application{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	if _, err = s.jobSvc.Owned(ctx, uid, app.JobID); err != nil {
		err = s.ownedErr(err)
		if errors.Is(err, ErrJobNotFound) {
			err = ErrPermissionDenied
		}
		return domain.Application{}, err
	}
	for i := 0; ; i++ {
		err = s.repo.UpdateStatus(ctx, id, app.Status, status, notes)
		if !errors.Is(err, dao.ErrStatusChanged) || i >= maxStatusRetries {
			break
		}
		if app, err = s.repo.FindByID(ctx, id); err != nil {
			return domain.Application{}, err
		}
	}
	if err != nil {
		return domain.Application{}, err
	}
	if app.Status != status {
		s.produce(ctx, job.ApplicationEvent{
			Type:          job.ApplicationStatusChanged,
			JobID:         app.JobID,
			ApplicationID: id,
			OldStatus:     string(app.Status),
			NewStatus:     string(status),
		})
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) Withdraw(ctx context.Context, uid, id int64) error {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if app.CandidateID != uid {
		return ErrApplicationNotFound
	}
	if !app.Status.Withdrawable() {
		return ErrWithdrawNotAllowed
	}
	ok, err := s.repo.DeletePending(ctx, id, uid)
	if err != nil {
		return err
	}
	if !ok {
		// 删除之前状态被招聘方改掉了
		return ErrWithdrawNotAllowed
	}
	s.produce(ctx, job.ApplicationEvent{
		Type:          job.ApplicationWithdrawn,
		JobID:         app.JobID,
		ApplicationID: id,
		OldStatus:     string(app.Status),
	})
	return nil
}

func (s *service) ownedErr(err error) error {
	if errors.Is(err, job.ErrPermissionDenied) {
		return ErrPermissionDenied
	}
	return err
}

// produce 计数是最终一致的，发送失败只记录日志
func (s *service) produce(ctx context.Context, evt job.ApplicationEvent) {
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送投递事件失败", elog.FieldErr(err), elog.Any("event", evt))
	}
}
