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
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxUploadSize 简历和 logo 的大小上限
const MaxUploadSize int64 = 5 << 20

// sniffLen 和 mimetype 默认读取的长度一致
const sniffLen = 3072

var (
	ErrFileTooLarge  = errors.New("文件不能超过 5MB")
	ErrFileType      = errors.New("文件类型不支持")
	ErrEmptyFile     = errors.New("文件为空")
	resumeExtensions = []string{".pdf", ".doc", ".docx"}
)

// Upload 待上传的文件，Size 由调用方从文件信息里面拿到
type Upload struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// ValidateResume 只允许 pdf、doc、docx
func ValidateResume(u Upload) error {
	if err := checkSize(u); err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(u.Name))
	if !slices.Contains(resumeExtensions, ext) {
		return fmt.Errorf("%w: 简历只支持 pdf、doc、docx，当前 %q", ErrFileType, ext)
	}
	return nil
}

// ValidateLogo 会嗅探文件头，所以会替换 u.Reader，调用方要用返回的 Upload 继续上传
func ValidateLogo(u Upload) (Upload, error) {
	if err := checkSize(u); err != nil {
		return u, err
	}
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(u.Reader, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return u, fmt.Errorf("读取文件失败: %w", err)
	}
	head = head[:n]
	u.Reader = io.MultiReader(bytes.NewReader(head), u.Reader)
	if n == 0 {
		return u, ErrEmptyFile
	}
	if !IsImage(mimetype.Detect(head)) {
		return u, fmt.Errorf("%w: logo 必须是图片", ErrFileType)
	}
	return u, nil
}

// IsImage 沿着 mimetype 的父类型往上找
func IsImage(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return true
		}
	}
	return false
}

func checkSize(u Upload) error {
	if u.Reader == nil || u.Size == 0 {
		return ErrEmptyFile
	}
	if u.Size > MaxUploadSize {
		return ErrFileTooLarge
	}
	return nil
}
