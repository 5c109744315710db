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
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ecodeclub/jobboard/internal/pkg/idgen"
	idgenmocks "github.com/ecodeclub/jobboard/internal/pkg/idgen/mocks"
	"github.com/ecodeclub/jobboard/internal/resume/internal/domain"
	"github.com/ecodeclub/jobboard/internal/resume/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type memStorage struct {
	files map[string][]byte
}

func (m *memStorage) Save(ctx context.Context, name string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.files[name] = data
	return nil
}

func (m *memStorage) Dir() string {
	return ""
}

type memRepo struct {
	repository.ResumeRepository
	saved map[int64]domain.Resume
}

func (m *memRepo) Create(ctx context.Context, r domain.Resume) error {
	m.saved[r.ID] = r
	return nil
}

func (m *memRepo) FindByID(ctx context.Context, id int64) (domain.Resume, error) {
	return m.saved[id], nil
}

var pngHead = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestService_Upload(t *testing.T) {
	testCases := []struct {
		name    string
		file    domain.File
		mock    func(ctrl *gomock.Controller) idgen.Generator
		wantErr error
		wantExt string
	}{
		{
			name: "pdf",
			file: domain.File{Name: "CV.PDF", Size: 8, Reader: strings.NewReader("%PDF-1.4")},
			mock: func(ctrl *gomock.Controller) idgen.Generator {
				g := idgenmocks.NewMockGenerator(ctrl)
				g.EXPECT().Next(idgen.BizResume).Return(int64(100), nil)
				return g
			},
			wantExt: ".pdf",
		},
		{
			name: "扩展名不支持",
			file: domain.File{Name: "cv.txt", Size: 5, Reader: strings.NewReader("hello")},
			mock: func(ctrl *gomock.Controller) idgen.Generator {
				return idgenmocks.NewMockGenerator(ctrl)
			},
			wantErr: ErrInvalidFile,
		},
		{
			name: "内容和扩展名不一致",
			file: domain.File{Name: "cv.pdf", Size: int64(len(pngHead)), Reader: bytes.NewReader(pngHead)},
			mock: func(ctrl *gomock.Controller) idgen.Generator {
				return idgenmocks.NewMockGenerator(ctrl)
			},
			wantErr: ErrInvalidFile,
		},
		{
			name: "超过5MB",
			file: domain.File{Name: "cv.pdf", Size: domain.MaxFileSize + 1, Reader: strings.NewReader("%PDF-1.4")},
			mock: func(ctrl *gomock.Controller) idgen.Generator {
				return idgenmocks.NewMockGenerator(ctrl)
			},
			wantErr: ErrInvalidFile,
		},
		{
			name: "空文件",
			file: domain.File{Name: "cv.pdf", Size: 0, Reader: strings.NewReader("")},
			mock: func(ctrl *gomock.Controller) idgen.Generator {
				return idgenmocks.NewMockGenerator(ctrl)
			},
			wantErr: ErrInvalidFile,
		},
		{
			name: "生成ID失败",
			file: domain.File{Name: "cv.pdf", Size: 8, Reader: strings.NewReader("%PDF-1.4")},
			mock: func(ctrl *gomock.Controller) idgen.Generator {
				g := idgenmocks.NewMockGenerator(ctrl)
				g.EXPECT().Next(idgen.BizResume).Return(int64(0), errors.New("mock idgen error"))
				return g
			},
			wantErr: errors.New("mock idgen error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			st := &memStorage{files: map[string][]byte{}}
			repo := &memRepo{saved: map[int64]domain.Resume{}}
			svc := NewService(repo, st, tc.mock(ctrl))
			res, err := svc.Upload(context.Background(), 1, tc.file)
			if tc.wantErr != nil {
				if errors.Is(tc.wantErr, ErrInvalidFile) {
					assert.ErrorIs(t, err, tc.wantErr)
				} else {
					assert.Equal(t, tc.wantErr, err)
				}
				assert.Empty(t, st.files)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(100), res.ID)
			assert.Equal(t, "application/pdf", res.MimeType)
			assert.True(t, strings.HasSuffix(res.StoredName, tc.wantExt))
			assert.Equal(t, "%PDF-1.4", string(st.files[res.StoredName]))
		})
	}
}

func TestService_UploadLogo(t *testing.T) {
	st := &memStorage{files: map[string][]byte{}}
	svc := NewService(&memRepo{}, st, nil)

	name, err := svc.UploadLogo(context.Background(), domain.File{
		Name: "logo.bin", Size: int64(len(pngHead)), Reader: bytes.NewReader(pngHead),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.Equal(t, pngHead, st.files[name])

	_, err = svc.UploadLogo(context.Background(), domain.File{
		Name: "logo.png", Size: 8, Reader: strings.NewReader("%PDF-1.4"),
	})
	assert.ErrorIs(t, err, ErrInvalidFile)
}
