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
	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/application/internal/errs"
	"github.com/ecodeclub/jobboard/internal/application/internal/service"
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

func (h *Handler) PrivateRoutes(server gin.IRouter) {
	candidate := h.role.Build(middleware.RoleCandidate)
	employer := h.role.Build(middleware.RoleEmployer)

	g := server.Group("/applications")
	g.POST("", candidate, ginx.BS[ApplyReq](h.Apply))
	g.GET("/my", candidate, ginx.S(h.Mine))
	g.DELETE("/:id", candidate, ginx.S(h.Withdraw))
	g.PATCH("/:id/status", employer, ginx.BS[UpdateStatusReq](h.UpdateStatus))

	server.GET("/jobs/:id/applications", employer, ginx.S(h.JobApplications))
}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyReq, sess session.Session) (ginx.Result, error) {
	if err := webx.Validate(req); err != nil {
		return invalid(ctx, err)
	}
	app, err := h.svc.Apply(ctx, req.toDomain(sess.Claims().Uid))
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return fail(ctx, http.StatusNotFound, errs.JobNotFound)
	case errors.Is(err, service.ErrJobNotAccepting):
		return fail(ctx, http.StatusBadRequest, errs.JobNotAccepting)
	case errors.Is(err, service.ErrResumeNotOwned):
		return fail(ctx, http.StatusBadRequest, errs.ResumeNotOwned)
	case errors.Is(err, service.ErrDuplicated):
		return fail(ctx, http.StatusConflict, errs.Duplicate)
	case err != nil:
		return systemError(ctx, err)
	}
	return ginx.Result{Data: newApplicationVO(app)}, nil
}

// Mine 最新的在前面
func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	apps, err := h.svc.Mine(ctx, sess.Claims().Uid)
	if err != nil {
		return systemError(ctx, err)
	}
	return ginx.Result{Data: newApplicationVOs(apps)}, nil
}

func (h *Handler) JobApplications(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	jobID, ok := webx.ParamID(ctx)
	if !ok {
		return fail(ctx, http.StatusNotFound, errs.JobNotFound)
	}
	apps, err := h.svc.JobApplications(ctx, sess.Claims().Uid, jobID)
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return fail(ctx, http.StatusNotFound, errs.JobNotFound)
	case errors.Is(err, service.ErrPermissionDenied):
		return fail(ctx, http.StatusForbidden, errs.PermissionDenied)
	case err != nil:
		return systemError(ctx, err)
	}
	return ginx.Result{Data: newApplicationVOs(apps)}, nil
}

// UpdateStatus 相同状态也返回成功
func (h *Handler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq, sess session.Session) (ginx.Result, error) {
	id, ok := webx.ParamID(ctx)
	if !ok {
		return fail(ctx, http.StatusNotFound, errs.NotFound)
	}
	if err := webx.Validate(req); err != nil {
		return invalid(ctx, err)
	}
	app, err := h.svc.UpdateStatus(ctx, sess.Claims().Uid, id, domain.Status(req.Status), req.Notes)
	switch {
	case errors.Is(err, service.ErrApplicationNotFound):
		return fail(ctx, http.StatusNotFound, errs.NotFound)
	case errors.Is(err, service.ErrPermissionDenied):
		return fail(ctx, http.StatusForbidden, errs.PermissionDenied)
	case errors.Is(err, service.ErrInvalidStatus):
		return fail(ctx, http.StatusBadRequest, errs.InvalidApplication)
	case err != nil:
		return systemError(ctx, err)
	}
	return ginx.Result{Data: newApplicationVO(app)}, nil
}

// Withdraw 成功返回 204
func (h *Handler) Withdraw(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, ok := webx.ParamID(ctx)
	if !ok {
		return fail(ctx, http.StatusNotFound, errs.NotFound)
	}
	err := h.svc.Withdraw(ctx, sess.Claims().Uid, id)
	switch {
	case errors.Is(err, service.ErrApplicationNotFound):
		return fail(ctx, http.StatusNotFound, errs.NotFound)
	case errors.Is(err, service.ErrWithdrawNotAllowed):
		return fail(ctx, http.StatusBadRequest, errs.WithdrawNotAllowed)
	case err != nil:
		return systemError(ctx, err)
	}
	ctx.Status(http.StatusNoContent)
	return ginx.Result{}, ginx.ErrNoResponse
}
