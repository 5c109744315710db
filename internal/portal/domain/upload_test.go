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

package domain

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestValidateResume(t *testing.T) {
	testCases := []struct {
		name    string
		upload  Upload
		wantErr error
	}{
		{
			name:   "pdf",
			upload: Upload{Name: "cv.pdf", Size: 1024, Reader: strings.NewReader("x")},
		},
		{
			name:   "大写扩展名",
			upload: Upload{Name: "CV.DOCX", Size: 1024, Reader: strings.NewReader("x")},
		},
		{
			name:    "不支持的类型",
			upload:  Upload{Name: "cv.txt", Size: 1024, Reader: strings.NewReader("x")},
			wantErr: ErrFileType,
		},
		{
			name:    "超过 5MB",
			upload:  Upload{Name: "cv.pdf", Size: MaxUploadSize + 1, Reader: strings.NewReader("x")},
			wantErr: ErrFileTooLarge,
		},
		{
			name:   "刚好 5MB",
			upload: Upload{Name: "cv.doc", Size: MaxUploadSize, Reader: strings.NewReader("x")},
		},
		{
			name:    "空文件",
			upload:  Upload{Name: "cv.pdf"},
			wantErr: ErrEmptyFile,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateResume(tc.upload), tc.wantErr)
		})
	}
}

func TestValidateLogo(t *testing.T) {
	t.Run("png 图片", func(t *testing.T) {
		u, err := ValidateLogo(Upload{Name: "logo.png", Size: int64(len(pngHeader)), Reader: bytes.NewReader(pngHeader)})
		require.NoError(t, err)
		// 嗅探之后内容不能丢
		data, err := io.ReadAll(u.Reader)
		require.NoError(t, err)
		assert.Equal(t, pngHeader, data)
	})
	t.Run("伪装成图片的文本", func(t *testing.T) {
		_, err := ValidateLogo(Upload{Name: "logo.png", Size: 5, Reader: strings.NewReader("hello")})
		assert.ErrorIs(t, err, ErrFileType)
	})
	t.Run("过大", func(t *testing.T) {
		_, err := ValidateLogo(Upload{Name: "logo.png", Size: MaxUploadSize + 1, Reader: bytes.NewReader(pngHeader)})
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})
}

func TestCompanyProfile_IsComplete(t *testing.T) {
	p := CompanyProfile{
		CompanyName:  "ecodeclub",
		Description:  "开源社区",
		Industry:     "Software",
		Size:         "11-50",
		Location:     "Shanghai",
		ContactEmail: "hr@ecodeclub.com",
	}
	assert.True(t, p.IsComplete())
	p.Industry = "  "
	assert.False(t, p.IsComplete())
	assert.False(t, CompanyProfile{}.IsComplete())
}

func TestApplicationDraft_Validate(t *testing.T) {
	d := ApplicationDraft{JobID: "1", ResumeID: "2", FullName: "Tom", Email: "tom@example.com"}
	assert.NoError(t, d.Validate())
	d.Email = "tom"
	assert.ErrorIs(t, d.Validate(), ErrInvalid)
	d.Email = "tom@example.com"
	d.Linkedin = "not a url"
	assert.ErrorIs(t, d.Validate(), ErrInvalid)
}
