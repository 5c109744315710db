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
	"time"

	"github.com/ecodeclub/jobboard/internal/company"
	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository"
	"github.com/ecodeclub/jobboard/internal/pkg/idgen"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrJobNotFound       = repository.ErrJobNotFound
	ErrStatusChanged     = repository.ErrStatusChanged
	ErrJobClosed         = domain.ErrJobClosed
	ErrIllegalTransition = domain.ErrIllegalTransition
	ErrProfileIncomplete = errors.New("公司资料没有完善")
	ErrPermissionDenied  = errors.New("不是自己的职位")
	ErrSalaryRange       = errors.New("最低薪资不能高于最高薪资")
	ErrJobNotAccepting   = errors.New("职位不接受投递")
)

// 并发修改状态的时候最多重试几次
const maxUpdateRetries = 3

//go:generate mockgen -source=./job.go -destination=../../mocks/job.mock.go -package=jobmocks -typed Service
type Service interface {
	// Create 公司资料完善之后才能发布，初始状态由可见性决定
	Create(ctx context.Context, j domain.Job) (domain.Job, error)
	// Update 全量更新，状态保持不变
	Update(ctx context.Context, j domain.Job) (domain.Job, error)
	// Patch 部分更新，状态变化按照职位生命周期校验
	Patch(ctx context.Context, uid, id int64, p domain.Patch) (domain.Job, error)
	// Close 重复关闭也是成功
	Close(ctx context.Context, uid, id int64) error
	// Detail 草稿只有发布者能看到，其余人看到的是 ErrJobNotFound
	Detail(ctx context.Context, uid, id int64) (domain.Job, error)
	List(ctx context.Context, q domain.Query) ([]domain.Job, int64, error)
	FindByID(ctx context.Context, id int64) (domain.Job, error)
	// Owned 查询 uid 发布的职位
	Owned(ctx context.Context, uid, id int64) (domain.Job, error)
	// Accepting 投递之前的检查
	Accepting(ctx context.Context, id int64) (domain.Job, error)
	// AdjustCounters 投递数量变化
	AdjustCounters(ctx context.Context, id int64, total, pending int64) error
	// CloseExpired 关闭已经过了截止时间的职位
	CloseExpired(ctx context.Context, now time.Time, limit int) (int, error)
}

type service struct {
	repo       repository.JobRepository
	companySvc company.Service
	idgen      idgen.Generator
	logger     *elog.Component
	now        func() time.Time
}

func NewService(repo repository.JobRepository, companySvc company.Service, idgen idgen.Generator) Service {
	return &service{
		repo:       repo,
		companySvc: companySvc,
		idgen:      idgen,
		logger:     elog.DefaultLogger,
		now:        time.Now,
	}
}

func (s *service) Create(ctx context.Context, j domain.Job) (domain.Job, error) {
	if !domain.SalaryRangeValid(j.SalaryMin, j.SalaryMax) {
		return domain.Job{}, ErrSalaryRange
	}
	p, err := s.companySvc.Profile(ctx, j.CompanyID)
	switch {
	case errors.Is(err, company.ErrProfileNotFound):
		return domain.Job{}, ErrProfileIncomplete
	case err != nil:
		return domain.Job{}, err
	case !p.Completed():
		return domain.Job{}, ErrProfileIncomplete
	}
	j.ID, err = s.idgen.Next(idgen.BizJob)
	if err != nil {
		return domain.Job{}, err
	}
	j.CompanyName = p.CompanyName
	j.Status = j.Visibility.InitialStatus()
	j.ApplicationCount, j.PendingCount = 0, 0
	if err = s.repo.Create(ctx, j); err != nil {
		return domain.Job{}, err
	}
	return s.repo.FindByID(ctx, j.ID)
}

func (s *service) Update(ctx context.Context, j domain.Job) (domain.Job, error) {
	if !domain.SalaryRangeValid(j.SalaryMin, j.SalaryMax) {
		return domain.Job{}, ErrSalaryRange
	}
	old, err := s.Owned(ctx, j.CompanyID, j.ID)
	if err != nil {
		return domain.Job{}, err
	}
	for i := 0; ; i++ {
		j.Status = old.Status
		err = s.repo.Update(ctx, j, old.Status)
		if !errors.Is(err, ErrStatusChanged) || i >= maxUpdateRetries {
			break
		}
		if old, err = s.Owned(ctx, j.CompanyID, j.ID); err != nil {
			return domain.Job{}, err
		}
	}
	if err != nil {
		return domain.Job{}, err
	}
	return s.repo.FindByID(ctx, j.ID)
}

// Patch 每次重试都基于最新的状态重新校验
func (s *service) Patch(ctx context.Context, uid, id int64, p domain.Patch) (domain.Job, error) {
	for i := 0; ; i++ {
		old, err := s.Owned(ctx, uid, id)
		if err != nil {
			return domain.Job{}, err
		}
		if p.Status != nil {
			if err = domain.ValidateTransition(old.Status, *p.Status); err != nil {
				return domain.Job{}, err
			}
		}
		j := p.Apply(old)
		if !domain.SalaryRangeValid(j.SalaryMin, j.SalaryMax) {
			return domain.Job{}, ErrSalaryRange
		}
		err = s.repo.Update(ctx, j, old.Status)
		switch {
		case err == nil:
			return s.repo.FindByID(ctx, id)
		case !errors.Is(err, ErrStatusChanged) || i >= maxUpdateRetries:
			return domain.Job{}, err
		}
	}
}

func (s *service) Close(ctx context.Context, uid, id int64) error {
	j, err := s.Owned(ctx, uid, id)
	if err != nil {
		return err
	}
	if j.Status == domain.StatusClosed {
		return nil
	}
	return s.repo.Close(ctx, id)
}

func (s *service) Detail(ctx context.Context, uid, id int64) (domain.Job, error) {
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	if !j.VisibleTo(uid) {
		return domain.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (s *service) List(ctx context.Context, q domain.Query) ([]domain.Job, int64, error) {
	var (
		eg    errgroup.Group
		jobs  []domain.Job
		total int64
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.List(ctx, q)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, q)
		return err
	})
	return jobs, total, eg.Wait()
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Owned(ctx context.Context, uid, id int64) (domain.Job, error) {
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	if j.CompanyID != uid {
		return domain.Job{}, ErrPermissionDenied
	}
	return j, nil
}

func (s *service) Accepting(ctx context.Context, id int64) (domain.Job, error) {
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	if !j.AcceptsApplications(s.now()) {
		return domain.Job{}, ErrJobNotAccepting
	}
	return j, nil
}

func (s *service) AdjustCounters(ctx context.Context, id int64, total, pending int64) error {
	if total == 0 && pending == 0 {
		return nil
	}
	return s.repo.IncrCounters(ctx, id, total, pending)
}

func (s *service) CloseExpired(ctx context.Context, now time.Time, limit int) (int, error) {
	ids, err := s.repo.CloseExpired(ctx, now.UnixMilli(), limit)
	if len(ids) > 0 {
		s.logger.Info("关闭过期职位", elog.Any("ids", ids))
	}
	return len(ids), err
}
