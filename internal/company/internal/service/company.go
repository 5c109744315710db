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

	"github.com/ecodeclub/jobboard/internal/company/internal/domain"
	"github.com/ecodeclub/jobboard/internal/company/internal/repository"
	"github.com/ecodeclub/jobboard/internal/company/internal/repository/dao"
)

var (
	ErrProfileNotFound = dao.ErrRecordNotFound
	ErrProfileExists   = dao.ErrDuplicated
)

//go:generate mockgen -source=./company.go -destination=../../mocks/company.mock.go -package=companymocks -typed Service
type Service interface {
	// Profile 没有创建过返回 ErrProfileNotFound
	Profile(ctx context.Context, uid int64) (domain.Profile, error)
	Create(ctx context.Context, p domain.Profile) (domain.Profile, error)
	Update(ctx context.Context, p domain.Profile) (domain.Profile, error)
	// ProfileCompleted 发布职位之前的检查，没有资料也算没有完善
	ProfileCompleted(ctx context.Context, uid int64) (bool, error)
}

type service struct {
	repo repository.ProfileRepository
}

func NewService(repo repository.ProfileRepository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Profile(ctx context.Context, uid int64) (domain.Profile, error) {
	return s.repo.FindByUid(ctx, uid)
}

func (s *service) Create(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	if err := s.repo.Create(ctx, p); err != nil {
		return domain.Profile{}, err
	}
	return s.repo.FindByUid(ctx, p.Uid)
}

func (s *service) Update(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	if err := s.repo.Update(ctx, p); err != nil {
		return domain.Profile{}, err
	}
	return s.repo.FindByUid(ctx, p.Uid)
}

func (s *service) ProfileCompleted(ctx context.Context, uid int64) (bool, error) {
	p, err := s.repo.FindByUid(ctx, uid)
	switch {
	case errors.Is(err, ErrProfileNotFound):
		return false, nil
	case err != nil:
		return false, err
	default:
		return p.Completed(), nil
	}
}
