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
	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/application/internal/repository/dao"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application) error
	FindByID(ctx context.Context, id int64) (domain.Application, error)
	FindByCandidate(ctx context.Context, candidateID int64) ([]domain.Application, error)
	FindByJob(ctx context.Context, jobID int64) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.Status, notes *string) error
	DeletePending(ctx context.Context, id, candidateID int64) (bool, error)
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{dao: d}
}

func (repo *applicationRepository) Create(ctx context.Context, app domain.Application) error {
	return repo.dao.Insert(ctx, repo.toEntity(app))
}

func (repo *applicationRepository) FindByID(ctx context.Context, id int64) (domain.Application, error) {
	app, err := repo.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	return repo.toDomain(app), nil
}

func (repo *applicationRepository) FindByCandidate(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	apps, err := repo.dao.FindByCandidate(ctx, candidateID)
	return repo.toDomains(apps), err
}

func (repo *applicationRepository) FindByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	apps, err := repo.dao.FindByJob(ctx, jobID)
	return repo.toDomains(apps), err
}

func (repo *applicationRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.Status, notes *string) error {
	return repo.dao.UpdateStatus(ctx, id, string(from), string(to), notes)
}

func (repo *applicationRepository) DeletePending(ctx context.Context, id, candidateID int64) (bool, error) {
	return repo.dao.DeletePending(ctx, id, candidateID)
}

func (repo *applicationRepository) toDomains(apps []dao.Application) []domain.Application {
	return slice.Map(apps, func(idx int, src dao.Application) domain.Application {
		return repo.toDomain(src)
	})
}

func (repo *applicationRepository) toEntity(app domain.Application) dao.Application {
	return dao.Application{
		Id:          app.ID,
		JobId:       app.JobID,
		CandidateId: app.CandidateID,
		ResumeId:    app.ResumeID,
		Status:      string(app.Status),
		CoverLetter: app.CoverLetter,
		FullName:    app.FullName,
		Email:       app.Email,
		Phone:       app.Phone,
		Linkedin:    app.Linkedin,
		Portfolio:   app.Portfolio,
		Notes:       app.Notes,
	}
}

func (repo *applicationRepository) toDomain(app dao.Application) domain.Application {
	return domain.Application{
		ID:          app.Id,
		JobID:       app.JobId,
		CandidateID: app.CandidateId,
		ResumeID:    app.ResumeId,
		Status:      domain.Status(app.Status),
		CoverLetter: app.CoverLetter,
		FullName:    app.FullName,
		Email:       app.Email,
		Phone:       app.Phone,
		Linkedin:    app.Linkedin,
		Portfolio:   app.Portfolio,
		Notes:       app.Notes,
		Ctime:       app.Ctime,
		Utime:       app.Utime,
	}
}
