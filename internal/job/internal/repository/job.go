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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository/cache"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrJobNotFound   = dao.ErrRecordNotFound
	ErrStatusChanged = dao.ErrStatusChanged
)

type JobRepository interface {
	Create(ctx context.Context, j domain.Job) error
	// Update 覆盖可编辑字段，状态已经不是 from 的时候返回 ErrStatusChanged
	Update(ctx context.Context, j domain.Job, from domain.Status) error
	Close(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (domain.Job, error)
	List(ctx context.Context, q domain.Query) ([]domain.Job, error)
	Count(ctx context.Context, q domain.Query) (int64, error)
	IncrCounters(ctx context.Context, id int64, total, pending int64) error
	CloseExpired(ctx context.Context, now int64, limit int) ([]int64, error)
}

// CachedJobRepository 详情走缓存，列表直接查库
type CachedJobRepository struct {
	dao    dao.JobDAO
	cache  cache.JobCache
	logger *elog.Component
}

func NewCachedJobRepository(d dao.JobDAO, c cache.JobCache) JobRepository {
	return &CachedJobRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedJobRepository) Create(ctx context.Context, j domain.Job) error {
	return repo.dao.Insert(ctx, repo.toEntity(j))
}

func (repo *CachedJobRepository) Update(ctx context.Context, j domain.Job, from domain.Status) error {
	err := repo.dao.Update(ctx, repo.toEntity(j), string(from))
	// 状态冲突说明缓存可能是旧的，也要删掉
	if err == nil || errors.Is(err, dao.ErrStatusChanged) {
		repo.evict(ctx, j.ID)
	}
	return err
}

func (repo *CachedJobRepository) Close(ctx context.Context, id int64) error {
	err := repo.dao.Close(ctx, id)
	if err != nil {
		return err
	}
	repo.evict(ctx, id)
	return nil
}

func (repo *CachedJobRepository) FindByID(ctx context.Context, id int64) (domain.Job, error) {
	j, err := repo.cache.GetJob(ctx, id)
	if err == nil {
		return j, nil
	}
	entity, err := repo.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	j = repo.toDomain(entity)
	// 忽略掉这里的错误
	_ = repo.cache.SetJob(ctx, j)
	return j, nil
}

func (repo *CachedJobRepository) List(ctx context.Context, q domain.Query) ([]domain.Job, error) {
	jobs, err := repo.dao.List(ctx, repo.toDAOQuery(q))
	if err != nil {
		return nil, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedJobRepository) Count(ctx context.Context, q domain.Query) (int64, error) {
	return repo.dao.Count(ctx, repo.toDAOQuery(q))
}

func (repo *CachedJobRepository) IncrCounters(ctx context.Context, id int64, total, pending int64) error {
	err := repo.dao.IncrCounters(ctx, id, total, pending)
	if err != nil {
		return err
	}
	repo.evict(ctx, id)
	return nil
}

func (repo *CachedJobRepository) CloseExpired(ctx context.Context, now int64, limit int) ([]int64, error) {
	ids, err := repo.dao.CloseExpired(ctx, now, limit)
	for _, id := range ids {
		repo.evict(ctx, id)
	}
	return ids, err
}

func (repo *CachedJobRepository) evict(ctx context.Context, id int64) {
	if err := repo.cache.DelJob(ctx, id); err != nil {
		repo.logger.Error("删除职位缓存失败", elog.Int64("jid", id), elog.FieldErr(err))
	}
}

func (repo *CachedJobRepository) toDAOQuery(q domain.Query) dao.Query {
	return dao.Query{
		Owner:           q.Owner,
		Search:          q.Search,
		Status:          string(q.Status),
		JobType:         q.JobType,
		ExperienceLevel: q.ExperienceLevel,
		Location:        q.Location,
		MinSalary:       q.MinSalary,
		Remote:          q.Remote,
		Sort:            string(q.Sort),
		Offset:          q.Offset,
		Limit:           q.Limit,
	}
}

func (repo *CachedJobRepository) toEntity(j domain.Job) dao.Job {
	return dao.Job{
		Id:               j.ID,
		CompanyId:        j.CompanyID,
		CompanyName:      j.CompanyName,
		Title:            j.Title,
		Description:      j.Description,
		Requirements:     j.Requirements,
		Responsibilities: j.Responsibilities,
		Benefits:         j.Benefits,
		JobType:          j.JobType,
		ExperienceLevel:  j.ExperienceLevel,
		Location:         j.Location,
		Remote:           j.Remote,
		SalaryMin:        j.SalaryMin,
		SalaryMax:        j.SalaryMax,
		SalaryCurrency:   j.SalaryCurrency,
		Tags:             j.Tags,
		Deadline:         j.Deadline,
		Status:           string(j.Status),
		Visibility:       string(j.Visibility),
		Featured:         j.Featured,
		Urgent:           j.Urgent,
		ApplicationCount: j.ApplicationCount,
		PendingCount:     j.PendingCount,
	}
}

func (repo *CachedJobRepository) toDomain(j dao.Job) domain.Job {
	return domain.Job{
		ID:               j.Id,
		CompanyID:        j.CompanyId,
		CompanyName:      j.CompanyName,
		Title:            j.Title,
		Description:      j.Description,
		Requirements:     j.Requirements,
		Responsibilities: j.Responsibilities,
		Benefits:         j.Benefits,
		JobType:          j.JobType,
		ExperienceLevel:  j.ExperienceLevel,
		Location:         j.Location,
		Remote:           j.Remote,
		SalaryMin:        j.SalaryMin,
		SalaryMax:        j.SalaryMax,
		SalaryCurrency:   j.SalaryCurrency,
		Tags:             j.Tags,
		Deadline:         j.Deadline,
		Status:           domain.Status(j.Status),
		Visibility:       domain.Visibility(j.Visibility),
		Featured:         j.Featured,
		Urgent:           j.Urgent,
		ApplicationCount: j.ApplicationCount,
		PendingCount:     j.PendingCount,
		Ctime:            j.Ctime,
		Utime:            j.Utime,
	}
}
