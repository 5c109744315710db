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

package web

import (
	"errors"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/resume/internal/domain"
	"github.com/ecodeclub/jobboard/internal/resume/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc  service.Service
	role *middleware.CheckRoleMiddlewareBuilder
	// dir 静态文件目录，urlPrefix 拼接对外的访问地址
	dir       string
	urlPrefix string
}

func NewHandler(svc service.Service, dir string, urlPrefix string) *Handler {
	return &Handler{
		svc:       svc,
		role:      middleware.NewCheckRoleMiddlewareBuilder(),
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}
}

// PublicRoutes 上传之后的文件不需要登录就能访问
func (h *Handler) PublicRoutes(server gin.IRouter) {
	server.Static("/uploads", h.dir)
}

func (h *Handler) PrivateRoutes(server gin.IRouter) {
	g := server.Group("/upload")
	candidate := h.role.Build(middleware.RoleCandidate)
	g.POST("/resume", candidate, ginx.S(h.UploadResume))
	g.GET("/resumes", candidate, ginx.S(h.List))
	g.POST("/logo", h.role.Build(middleware.RoleEmployer), ginx.S(h.UploadLogo))
}

func (h *Handler) UploadResume(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	f, closeFn, ok := h.formFile(ctx, "resume")
	if !ok {
		return invalidFile(ctx, "缺少文件 resume")
	}
	defer closeFn()
	r, err := h.svc.Upload(ctx, sess.Claims().Uid, f)
	switch {
	case errors.Is(err, service.ErrInvalidFile):
		return invalidFile(ctx, err.Error())
	case err != nil:
		return systemError(ctx, err)
	}
	return ginx.Result{Data: h.toVO(r)}, nil
}

// List 最新上传的在前面
func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	rs, err := h.svc.List(ctx, sess.Claims().Uid)
	if err != nil {
		return systemError(ctx, err)
	}
	return ginx.Result{Data: ResumeList{
		Resumes: slice.Map(rs, func(idx int, src domain.Resume) ResumeVO {
			return h.toVO(src)
		}),
	}}, nil
}

func (h *Handler) UploadLogo(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	f, closeFn, ok := h.formFile(ctx, "logo")
	if !ok {
		return invalidFile(ctx, "缺少文件 logo")
	}
	defer closeFn()
	name, err := h.svc.UploadLogo(ctx, f)
	switch {
	case errors.Is(err, service.ErrInvalidFile):
		return invalidFile(ctx, err.Error())
	case err != nil:
		return systemError(ctx, err)
	}
	return ginx.Result{Data: LogoVO{URL: h.url(name)}}, nil
}

func (h *Handler) formFile(ctx *ginx.Context, field string) (domain.File, func(), bool) {
	fh, err := ctx.FormFile(field)
	if err != nil {
		return domain.File{}, nil, false
	}
	file, err := fh.Open()
	if err != nil {
		return domain.File{}, nil, false
	}
	return domain.File{
		Name:   fh.Filename,
		Size:   fh.Size,
		Reader: file,
	}, func() { _ = file.Close() }, true
}

func (h *Handler) toVO(r domain.Resume) ResumeVO {
	return ResumeVO{
		ID:           r.ID,
		OriginalName: r.OriginalName,
		Size:         r.Size,
		URL:          h.url(r.StoredName),
		CreatedAt:    r.Ctime,
	}
}

func (h *Handler) url(name string) string {
	return h.urlPrefix + "/" + name
}
