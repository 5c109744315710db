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

package portaltest

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ecodeclub/jobboard/internal/portal/domain"
	"github.com/gin-gonic/gin"
	"github.com/lithammer/shortuuid/v4"
)

// profile 没有创建过的时候返回 404
func (s *Server) profile(ctx *gin.Context) {
	u, _ := currentUser(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[u.uid]
	if !ok {
		abort(ctx, http.StatusNotFound, codeProfileNotFound, "公司资料不存在")
		return
	}
	ctx.JSON(http.StatusOK, p)
}

func (s *Server) createProfile(ctx *gin.Context) {
	s.saveProfile(ctx, true)
}

func (s *Server) updateProfile(ctx *gin.Context) {
	s.saveProfile(ctx, false)
}

// saveProfile 返回 {success,data}，completed 由服务端计算
func (s *Server) saveProfile(ctx *gin.Context, create bool) {
	u, _ := currentUser(ctx)
	var p domain.CompanyProfile
	if err := ctx.ShouldBindJSON(&p); err != nil {
		abort(ctx, http.StatusBadRequest, codeInvalidProfile, err.Error())
		return
	}
	if err := p.Validate(); err != nil {
		abort(ctx, http.StatusBadRequest, codeInvalidProfile, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.profiles[u.uid]
	switch {
	case create && exists:
		abort(ctx, http.StatusConflict, codeProfileExists, "公司资料已经存在")
		return
	case !create && !exists:
		abort(ctx, http.StatusNotFound, codeProfileNotFound, "公司资料不存在")
		return
	}
	p.Completed = p.IsComplete()
	s.profiles[u.uid] = p
	for _, j := range s.jobs {
		if j.CompanyID == u.uid {
			j.CompanyName = p.CompanyName
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

// uploadResume 返回 {success,data}
func (s *Server) uploadResume(ctx *gin.Context) {
	u, _ := currentUser(ctx)
	fh, data, ok := readUpload(ctx, "resume")
	if !ok {
		return
	}
	if err := domain.ValidateResume(domain.Upload{Name: fh.Filename, Size: fh.Size, Reader: bytes.NewReader(data)}); err != nil {
		abort(ctx, http.StatusBadRequest, codeInvalidFile, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := domain.Resume{
		ID:           shortuuid.New(),
		OriginalName: fh.Filename,
		Size:         fh.Size,
		CreatedAt:    s.now(),
	}
	r.URL = s.store(r.ID+strings.ToLower(filepath.Ext(fh.Filename)), data)
	s.resumes[u.uid] = append([]domain.Resume{r}, s.resumes[u.uid]...)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": r})
}

// listResumes 返回 {resumes}
func (s *Server) listResumes(ctx *gin.Context) {
	u, _ := currentUser(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	res := append([]domain.Resume{}, s.resumes[u.uid]...)
	ctx.JSON(http.StatusOK, gin.H{"resumes": res})
}

// uploadLogo 返回 {url}
func (s *Server) uploadLogo(ctx *gin.Context) {
	fh, data, ok := readUpload(ctx, "logo")
	if !ok {
		return
	}
	if _, err := domain.ValidateLogo(domain.Upload{Name: fh.Filename, Size: fh.Size, Reader: bytes.NewReader(data)}); err != nil {
		abort(ctx, http.StatusBadRequest, codeInvalidFile, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	url := s.store(shortuuid.New()+strings.ToLower(filepath.Ext(fh.Filename)), data)
	ctx.JSON(http.StatusOK, gin.H{"url": url})
}

func (s *Server) file(ctx *gin.Context) {
	s.mu.Lock()
	data, ok := s.files[ctx.Param("name")]
	s.mu.Unlock()
	if !ok {
		abort(ctx, http.StatusNotFound, 0, "文件不存在")
		return
	}
	ctx.Data(http.StatusOK, http.DetectContentType(data), data)
}

func (s *Server) store(name string, data []byte) string {
	s.files[name] = data
	return s.BaseURL() + "/uploads/" + name
}

func readUpload(ctx *gin.Context, field string) (*multipart.FileHeader, []byte, bool) {
	fh, err := ctx.FormFile(field)
	if err != nil {
		abort(ctx, http.StatusBadRequest, codeInvalidFile, "缺少文件")
		return nil, nil, false
	}
	f, err := fh.Open()
	if err != nil {
		abort(ctx, http.StatusBadRequest, codeInvalidFile, err.Error())
		return nil, nil, false
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, domain.MaxUploadSize+1))
	if err != nil {
		abort(ctx, http.StatusBadRequest, codeInvalidFile, err.Error())
		return nil, nil, false
	}
	return fh, data, true
}
