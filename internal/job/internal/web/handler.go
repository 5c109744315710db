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
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/job/internal/errs"
	"github.com/ecodeclub/jobboard/internal/job/internal/service"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/pkg/webx"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc  service.Service
	role *middleware.CheckRoleMiddlewareBuilder
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:  svc,
		role: middleware.NewCheckRoleMiddlewareBuilder(),
	}
}

// PublicRoutes 不登录也能访问，登录了的话会识别出招聘方自己
func (h *Handler) PublicRoutes(server gin.IRouter) {
	server.GET("/jobs", ginx.W(h.List))
	server.GET("/jobs/:id", ginx.W(h.Detail))
}

func (h *Handler) PrivateRoutes(server gin.IRouter) {
	g := server.Group("/jobs", h.role.Build(middleware.RoleEmployer))
	g.POST("", ginx.BS[SaveJobReq](h.Create))
	g.PUT("/:id", ginx.BS[SaveJobReq](h.Update))
	g.PATCH("/:id", ginx.BS[PatchJobReq](h.Patch))
	g.PATCH("/:id/close", ginx.S(h.Close))
}

// List 带上 mine=true 的时候招聘方只看自己的职位，并且包括草稿和已关闭的
func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	var req ListReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		return invalid(ctx, err)
	}
	if err := webx.Validate(req); err != nil {
		return invalid(ctx, err)
	}
	req.normalize()
	var owner int64
	if req.Mine {
		uid, ok := h.employer(ctx)
		if !ok {
			return fail(ctx, http.StatusUnauthorized, errs.PermissionDenied)
		}
		owner = uid
	}
	jobs, total, err := h.svc.List(ctx, req.toDomain(owner))
	if err != nil {
		return systemError(ctx, err)
	}
	return ginx.Result{Data: newJobListVO(jobs, total, req)}, nil
}

// Detail 草稿只有发布者自己能看到
func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	id, ok := webx.ParamID(ctx)
	if !ok {
		return fail(ctx, http.StatusNotFound, errs.JobNotFound)
	}
	uid, _ := h.employer(ctx)
	j, err := h.svc.Detail(ctx, uid, id)
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return fail(ctx, http.StatusNotFound, errs.JobNotFound)
	case err != nil:
		return systemError(ctx, err)
	}
	return ginx.Result{Data: newJobVO(j)}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req SaveJobReq, sess session.Session) (ginx.Result, error) {
	if err := webx.Validate(req); err != nil {
		return invalid(ctx, err)
	}
	j, err := h.svc.Create(ctx, req.toDomain(sess.Claims().Uid, 0))
	if err != nil {
		return h.error(ctx, err)
	}
	return ginx.Result{Msg: "OK", Data: newJobVO(j)}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req SaveJobReq, sess session.Session) (ginx.Result, error) {
	id, ok := webx.ParamID(ctx)
	if !ok {
		return fail(ctx, http.StatusNotFound, errs.JobNotFound)
	}
	if err := webx.Validate(req); err != nil {
		return invalid(ctx, err)
	}
	j, err := h.svc.Update(ctx, req.toDomain(sess.Claims().Uid, id))
	if err != nil {
		return h.error(ctx, err)
	}
	return ginx.Result{Data: newJobVO(j)}, nil
}

func (h *Handler) Patch(ctx *ginx.Context, req PatchJobReq, sess session.Session) (ginx.Result, error) {
	id, ok := webx.ParamID(ctx)
	if !ok {
		return fail(ctx, http.StatusNotFound, errs.JobNotFound)
	}
	if err := webx.Validate(req); err != nil {
		return invalid(ctx, err)
	}
	j, err := h.svc.Patch(ctx, sess.Claims().Uid, id, req.toDomain())
	if err != nil {
		return h.error(ctx, err)
	}
	return ginx.Result{Data: newJobVO(j)}, nil
}

// Close 重复关闭也返回成功
func (h *Handler) Close(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, ok := webx.ParamID(ctx)
	if !ok {
		return fail(ctx, http.StatusNotFound, errs.JobNotFound)
	}
	if err := h.svc.Close(ctx, sess.Claims().Uid, id); err != nil {
		return h.error(ctx, err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) error(ctx *ginx.Context, err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return fail(ctx, http.StatusNotFound, errs.JobNotFound)
	case errors.Is(err, service.ErrPermissionDenied):
		return fail(ctx, http.StatusForbidden, errs.PermissionDenied)
	case errors.Is(err, service.ErrProfileIncomplete):
		return fail(ctx, http.StatusForbidden, errs.ProfileIncomplete)
	case errors.Is(err, service.ErrJobClosed):
		return fail(ctx, http.StatusBadRequest, errs.JobClosed)
	case errors.Is(err, service.ErrStatusChanged):
		return fail(ctx, http.StatusConflict, errs.JobConflict)
	case errors.Is(err, service.ErrIllegalTransition), errors.Is(err, service.ErrSalaryRange):
		return webx.Fail(ctx, http.StatusBadRequest, errs.InvalidJob.Code, err.Error())
	default:
		return systemError(ctx, err)
	}
}

// employer 公开接口上识别当前登录的招聘方，没有登录返回 false
func (h *Handler) employer(ctx *ginx.Context) (int64, bool) {
	sess, err := session.Get(ctx)
	if err != nil || sess == nil {
		return 0, false
	}
	return sess.Claims().Uid, middleware.RoleOf(sess) == middleware.RoleEmployer
}
