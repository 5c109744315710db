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

	"github.com/ecodeclub/jobboard/internal/portal/client"
	"github.com/ecodeclub/jobboard/internal/portal/domain"
)

var (
	opLoadProfile  = op{name: "loadProfile", resource: ResourceCompany, flag: func(f *Flags) *bool { return &f.IsFetchingProfile }}
	opSaveProfile  = op{name: "saveProfile", resource: ResourceCompany, flag: func(f *Flags) *bool { return &f.IsSavingProfile }}
	opUploadLogo   = op{name: "uploadLogo", resource: ResourceCompany, flag: func(f *Flags) *bool { return &f.IsUploadingLogo }}
	opLoadResumes  = op{name: "loadResumes", resource: ResourceResumes, flag: func(f *Flags) *bool { return &f.IsFetchingResumes }}
	opUploadResume = op{name: "uploadResume", resource: ResourceResumes, flag: func(f *Flags) *bool { return &f.IsUploadingResume }}
)

// LoadCompanyProfile 还没有创建过公司资料的时候返回 nil, nil
func (s *Store) LoadCompanyProfile(ctx context.Context) (*domain.CompanyProfile, error) {
	token := s.pending(opLoadProfile)
	p, err := s.gw.Company.Profile(ctx)
	if errors.Is(err, client.ErrNotFound) {
		s.settle(opLoadProfile, token, nil, func(st *State) {
			st.CompanyProfile = nil
		})
		return nil, nil
	}
	s.settle(opLoadProfile, token, err, func(st *State) {
		st.CompanyProfile = &p
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveCompanyProfile 没有加载到公司资料的时候创建，否则更新
func (s *Store) SaveCompanyProfile(ctx context.Context, p domain.CompanyProfile) (domain.CompanyProfile, error) {
	if err := p.Validate(); err != nil {
		return domain.CompanyProfile{}, s.reject(opSaveProfile, err)
	}
	save := s.gw.Company.UpdateProfile
	if s.State().CompanyProfile == nil {
		save = s.gw.Company.CreateProfile
	}
	token := s.pending(opSaveProfile)
	res, err := save(ctx, p)
	s.settle(opSaveProfile, token, err, func(st *State) {
		st.CompanyProfile = &res
	})
	return res, err
}

// UploadLogo 只返回地址，调用方把它放到 Logo 字段里面再保存公司资料
func (s *Store) UploadLogo(ctx context.Context, u domain.Upload) (string, error) {
	u, err := domain.ValidateLogo(u)
	if err != nil {
		return "", s.reject(opUploadLogo, err)
	}
	token := s.pending(opUploadLogo)
	url, err := s.gw.Company.UploadLogo(ctx, u)
	s.settle(opUploadLogo, token, err, nil)
	return url, err
}

func (s *Store) LoadResumes(ctx context.Context) ([]domain.Resume, error) {
	token := s.pending(opLoadResumes)
	resumes, err := s.gw.Resumes.List(ctx)
	s.settle(opLoadResumes, token, err, func(st *State) {
		st.Resumes = append([]domain.Resume{}, resumes...)
	})
	return resumes, err
}

// UploadResume 成功之后放到最前面
func (s *Store) UploadResume(ctx context.Context, u domain.Upload) (domain.Resume, error) {
	if err := domain.ValidateResume(u); err != nil {
		return domain.Resume{}, s.reject(opUploadResume, err)
	}
	token := s.pending(opUploadResume)
	r, err := s.gw.Resumes.Upload(ctx, u)
	s.settle(opUploadResume, token, err, func(st *State) {
		st.Resumes = append([]domain.Resume{r}, st.Resumes...)
	})
	return r, err
}
