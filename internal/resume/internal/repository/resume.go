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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/resume/internal/domain"
	"github.com/ecodeclub/jobboard/internal/resume/internal/repository/dao"
)

type ResumeRepository interface {
	Create(ctx context.Context, r domain.Resume) error
	FindByUid(ctx context.Context, uid int64) ([]domain.Resume, error)
	FindByID(ctx context.Context, id int64) (domain.Resume, error)
}

type resumeRepository struct {
	dao dao.ResumeDAO
}

func NewResumeRepository(dao dao.ResumeDAO) ResumeRepository {
	return &resumeRepository{dao: dao}
}

func (r *resumeRepository) Create(ctx context.Context, res domain.Resume) error {
	return r.dao.Create(ctx, dao.Resume{
		Id:           res.ID,
		Uid:          res.Uid,
		OriginalName: res.OriginalName,
		StoredName:   res.StoredName,
		MimeType:     res.MimeType,
		Size:         res.Size,
	})
}

func (r *resumeRepository) FindByUid(ctx context.Context, uid int64) ([]domain.Resume, error) {
	res, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Resume) domain.Resume {
		return r.toDomain(src)
	}), nil
}

func (r *resumeRepository) FindByID(ctx context.Context, id int64) (domain.Resume, error) {
	res, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Resume{}, err
	}
	return r.toDomain(res), nil
}

func (r *resumeRepository) toDomain(res dao.Resume) domain.Resume {
	return domain.Resume{
		ID:           res.Id,
		Uid:          res.Uid,
		OriginalName: res.OriginalName,
		StoredName:   res.StoredName,
		MimeType:     res.MimeType,
		Size:         res.Size,
		Ctime:        res.Ctime,
	}
}
