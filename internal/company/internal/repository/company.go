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

	"github.com/ecodeclub/jobboard/internal/company/internal/domain"
	"github.com/ecodeclub/jobboard/internal/company/internal/repository/dao"
)

type ProfileRepository interface {
	Create(ctx context.Context, p domain.Profile) error
	Update(ctx context.Context, p domain.Profile) error
	FindByUid(ctx context.Context, uid int64) (domain.Profile, error)
}

type profileRepository struct {
	dao dao.ProfileDAO
}

func NewProfileRepository(dao dao.ProfileDAO) ProfileRepository {
	return &profileRepository{
		dao: dao,
	}
}

func (r *profileRepository) Create(ctx context.Context, p domain.Profile) error {
	return r.dao.Create(ctx, r.toEntity(p))
}

func (r *profileRepository) Update(ctx context.Context, p domain.Profile) error {
	return r.dao.Update(ctx, r.toEntity(p))
}

func (r *profileRepository) FindByUid(ctx context.Context, uid int64) (domain.Profile, error) {
	entity, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return domain.Profile{}, err
	}
	return r.toDomain(entity), nil
}

func (r *profileRepository) toEntity(p domain.Profile) dao.Profile {
	return dao.Profile{
		Uid:          p.Uid,
		CompanyName:  p.CompanyName,
		Description:  p.Description,
		Website:      p.Website,
		Industry:     p.Industry,
		Size:         p.Size,
		Location:     p.Location,
		ContactEmail: p.ContactEmail,
		ContactPhone: p.ContactPhone,
		Logo:         p.Logo,
	}
}

func (r *profileRepository) toDomain(p dao.Profile) domain.Profile {
	return domain.Profile{
		Uid:          p.Uid,
		CompanyName:  p.CompanyName,
		Description:  p.Description,
		Website:      p.Website,
		Industry:     p.Industry,
		Size:         p.Size,
		Location:     p.Location,
		ContactEmail: p.ContactEmail,
		ContactPhone: p.ContactPhone,
		Logo:         p.Logo,
		Ctime:        p.Ctime,
		Utime:        p.Utime,
	}
}
