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
	"github.com/ecodeclub/jobboard/internal/company/internal/errs"
	"github.com/ecodeclub/jobboard/internal/company/internal/service"
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
	g := server.Group("/companies", h.role.Build(middleware.RoleEmployer))
	g.GET("/profile", ginx.S(h.Profile))
	g.POST("/profile", ginx.BS[SaveProfileReq](h.Create))
	g.PUT("/profile", ginx.BS[SaveProfileReq](h.Update))
}

// Profile 没有创建过的时候返回 404，前端据此展示创建表单
func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Profile(ctx, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		return fail(ctx, http.StatusNotFound, errs.ProfileNotFound)
	case err != nil:
		return systemError(ctx, err)
	}
	return ginx.Result{Data: newProfileVO(p)}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req SaveProfileReq, sess session.Session) (ginx.Result, error) {
	if err := webx.Validate(req); err != nil {
		return invalid(ctx, err)
	}
	p, err := h.svc.Create(ctx, req.toDomain(sess.Claims().Uid))
	switch {
	case errors.Is(err, service.ErrProfileExists):
		return fail(ctx, http.StatusConflict, errs.ProfileExists)
	case err != nil:
		return systemError(ctx, err)
	}
	return ginx.Result{Data: newProfileVO(p)}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req SaveProfileReq, sess session.Session) (ginx.Result, error) {
	if err := webx.Validate(req); err != nil {
		return invalid(ctx, err)
	}
	p, err := h.svc.Update(ctx, req.toDomain(sess.Claims().Uid))
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		return fail(ctx, http.StatusNotFound, errs.ProfileNotFound)
	case err != nil:
		return systemError(ctx, err)
	}
	return ginx.Result{Data: newProfileVO(p)}, nil
}
