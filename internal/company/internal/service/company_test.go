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
	"testing"

	"github.com/ecodeclub/jobboard/internal/company/internal/domain"
	"github.com/ecodeclub/jobboard/internal/company/internal/repository"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	repository.ProfileRepository
	p   domain.Profile
	err error
}

func (f fakeRepo) FindByUid(ctx context.Context, uid int64) (domain.Profile, error) {
	return f.p, f.err
}

func TestService_ProfileCompleted(t *testing.T) {
	complete := domain.Profile{
		Uid: 1, CompanyName: "ecode", Description: "做开源", Industry: "互联网",
		Size: "10-50", Location: "上海", ContactEmail: "hr@ecode.dev",
	}
	testCases := []struct {
		name    string
		repo    fakeRepo
		want    bool
		wantErr error
	}{
		{
			name: "没有资料",
			repo: fakeRepo{err: ErrProfileNotFound},
		},
		{
			name: "资料不完整",
			repo: fakeRepo{p: domain.Profile{Uid: 1, CompanyName: "ecode"}},
		},
		{
			name: "只有空白也算没填",
			repo: fakeRepo{p: func() domain.Profile {
				p := complete
				p.Location = "  "
				return p
			}()},
		},
		{
			name: "资料完整",
			repo: fakeRepo{p: complete},
			want: true,
		},
		{
			name:    "数据库错误",
			repo:    fakeRepo{err: errors.New("mock db error")},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(tc.repo)
			ok, err := svc.ProfileCompleted(context.Background(), 1)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}
