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
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ecodeclub/jobboard/internal/pkg/idgen"
	"github.com/ecodeclub/jobboard/internal/resume/internal/domain"
	"github.com/ecodeclub/jobboard/internal/resume/internal/repository"
	"github.com/ecodeclub/jobboard/internal/resume/internal/repository/dao"
	"github.com/ecodeclub/jobboard/internal/resume/internal/repository/storage"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

// sniffLen 和 mimetype 默认读取的长度一致
const sniffLen = 3072

var (
	ErrInvalidFile = errors.New("文件不合法")

	// 扩展名和嗅探出来的类型要对得上，docx 有时候只能识别成 zip
	resumeTypes = map[string][]string{
		".pdf":  {"application/pdf"},
		".doc":  {"application/msword", "application/x-ole-storage"},
		".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
	}
)

//go:generate mockgen -source=./resume.go -destination=../../mocks/resume.mock.go -package=resumemocks -typed Service
type Service interface {
	Upload(ctx context.Context, uid int64, f domain.File) (domain.Resume, error)
	List(ctx context.Context, uid int64) ([]domain.Resume, error)
	// Owns 投递的时候检查简历是不是候选人自己的
	Owns(ctx context.Context, uid int64, resumeID int64) (bool, error)
	// UploadLogo 返回落盘的文件名
	UploadLogo(ctx context.Context, f domain.File) (string, error)
}

type service struct {
	repo    repository.ResumeRepository
	storage storage.Storage
	idgen   idgen.Generator
	logger  *elog.Component
}

func NewService(repo repository.ResumeRepository, storage storage.Storage, idgen idgen.Generator) Service {
	return &service{
		repo:    repo,
		storage: storage,
		idgen:   idgen,
		logger:  elog.DefaultLogger,
	}
}

func (s *service) Upload(ctx context.Context, uid int64, f domain.File) (domain.Resume, error) {
	allowed, ok := resumeTypes[f.Ext()]
	if !ok {
		return domain.Resume{}, fmt.Errorf("%w: 简历只支持 pdf、doc、docx", ErrInvalidFile)
	}
	m, r, err := sniff(f)
	if err != nil {
		return domain.Resume{}, err
	}
	if !slices.ContainsFunc(allowed, m.Is) {
		return domain.Resume{}, fmt.Errorf("%w: 文件内容是 %s，和扩展名 %s 不一致", ErrInvalidFile, m.String(), f.Ext())
	}
	id, err := s.idgen.Next(idgen.BizResume)
	if err != nil {
		return domain.Resume{}, err
	}
	res := domain.Resume{
		ID:           id,
		Uid:          uid,
		OriginalName: f.Name,
		StoredName:   shortuuid.New() + f.Ext(),
		MimeType:     m.String(),
		Size:         f.Size,
	}
	if err = s.storage.Save(ctx, res.StoredName, r); err != nil {
		return domain.Resume{}, err
	}
	if err = s.repo.Create(ctx, res); err != nil {
		s.logger.Error("保存简历记录失败，文件已经落盘",
			elog.String("file", res.StoredName), elog.FieldErr(err))
		return domain.Resume{}, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.Resume, error) {
	return s.repo.FindByUid(ctx, uid)
}

func (s *service) Owns(ctx context.Context, uid int64, resumeID int64) (bool, error) {
	r, err := s.repo.FindByID(ctx, resumeID)
	switch {
	case errors.Is(err, dao.ErrRecordNotFound):
		return false, nil
	case err != nil:
		return false, err
	default:
		return r.Uid == uid, nil
	}
}

func (s *service) UploadLogo(ctx context.Context, f domain.File) (string, error) {
	m, r, err := sniff(f)
	if err != nil {
		return "", err
	}
	if !isImage(m) {
		return "", fmt.Errorf("%w: logo 必须是图片，当前是 %s", ErrInvalidFile, m.String())
	}
	name := shortuuid.New() + m.Extension()
	if err = s.storage.Save(ctx, name, r); err != nil {
		return "", err
	}
	return name, nil
}

// sniff 读出文件头判断类型，返回的 reader 从头开始，并且最多读到 MaxFileSize
func sniff(f domain.File) (*mimetype.MIME, io.Reader, error) {
	if f.Reader == nil || f.Size <= 0 {
		return nil, nil, fmt.Errorf("%w: 文件为空", ErrInvalidFile)
	}
	if f.Size > domain.MaxFileSize {
		return nil, nil, fmt.Errorf("%w: 文件不能超过 5MB", ErrInvalidFile)
	}
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f.Reader, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("读取文件失败: %w", err)
	}
	head = head[:n]
	r := io.LimitReader(io.MultiReader(bytes.NewReader(head), f.Reader), domain.MaxFileSize)
	return mimetype.Detect(head), r, nil
}

func isImage(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return true
		}
	}
	return false
}
