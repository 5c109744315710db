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
	"net/http"
	"slices"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/portal/domain"
	"github.com/ecodeclub/jobboard/internal/portal/workflow"
	"github.com/gin-gonic/gin"
	"github.com/lithammer/shortuuid/v4"
)

// apply 返回 {success,data}
func (s *Server) apply(ctx *gin.Context) {
	u, _ := currentUser(ctx)
	var draft domain.ApplicationDraft
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		abort(ctx, http.StatusBadRequest, codeInvalidApplication, err.Error())
		return
	}
	if err := draft.Validate(); err != nil {
		abort(ctx, http.StatusBadRequest, codeInvalidApplication, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.findJob(draft.JobID)
	if !ok {
		abort(ctx, http.StatusNotFound, codeApplicationJob, "职位不存在")
		return
	}
	if !workflow.AcceptsApplications(*j, time.Now()) {
		abort(ctx, http.StatusBadRequest, codeJobNotAccepting, "职位不再接受投递")
		return
	}
	if !slices.ContainsFunc(s.resumes[u.uid], func(r domain.Resume) bool { return r.ID == draft.ResumeID }) {
		abort(ctx, http.StatusBadRequest, codeResumeNotOwned, "简历不存在")
		return
	}
	if slices.ContainsFunc(s.apps, func(a *domain.Application) bool {
		return a.JobID == j.ID && a.CandidateID == u.uid
	}) {
		abort(ctx, http.StatusConflict, codeDuplicateApplication, "已经投递过这个职位")
		return
	}
	app := &domain.Application{
		ID:          shortuuid.New(),
		JobID:       j.ID,
		CandidateID: u.uid,
		ResumeID:    draft.ResumeID,
		Status:      domain.ApplicationPending,
		CoverLetter: draft.CoverLetter,
		FullName:    draft.FullName,
		Email:       draft.Email,
		Phone:       draft.Phone,
		Linkedin:    draft.Linkedin,
		Portfolio:   draft.Portfolio,
		CreatedAt:   s.now(),
	}
	s.apps = append(s.apps, app)
	s.adjustCounters(j.ID, 1, 1)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": s.candidateView(app)})
}

// myApplications 返回 {code,data}，最新的在前面
func (s *Server) myApplications(ctx *gin.Context) {
	u, _ := currentUser(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	mine := slice.FindAll(s.apps, func(src *domain.Application) bool {
		return src.CandidateID == u.uid
	})
	slices.Reverse(mine)
	res := slice.Map(mine, func(idx int, src *domain.Application) domain.Application {
		return s.candidateView(src)
	})
	ctx.JSON(http.StatusOK, gin.H{"code": 0, "data": res})
}

type statusReq struct {
	Status domain.ApplicationStatus `json:"status"`
	Notes  *string                  `json:"notes"`
}

// updateApplicationStatus 相同状态也返回成功
func (s *Server) updateApplicationStatus(ctx *gin.Context) {
	u, _ := currentUser(ctx)
	var req statusReq
	if err := ctx.ShouldBindJSON(&req); err != nil || !req.Status.Valid() {
		abort(ctx, http.StatusBadRequest, codeInvalidApplication, "非法的状态")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.findApplication(ctx.Param("id"))
	if !ok {
		abort(ctx, http.StatusNotFound, codeApplicationNotFound, "投递不存在")
		return
	}
	if j, ok := s.findJob(app.JobID); !ok || j.CompanyID != u.uid {
		abort(ctx, http.StatusForbidden, codeApplicationDenied, "没有权限")
		return
	}
	next, changed, _ := workflow.Transition(*app, req.Status)
	if changed {
		s.adjustCounters(app.JobID, 0, pendingDelta(app.Status, next.Status))
	}
	if req.Notes != nil {
		next.Notes = *req.Notes
	}
	*app = next
	ctx.JSON(http.StatusOK, app.Clone())
}

// withdraw 只能撤回待处理的投递，成功返回 204
func (s *Server) withdraw(ctx *gin.Context) {
	u, _ := currentUser(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.findApplication(ctx.Param("id"))
	if !ok || app.CandidateID != u.uid {
		abort(ctx, http.StatusNotFound, codeApplicationNotFound, "投递不存在")
		return
	}
	if !workflow.CanWithdraw(app.Status) {
		abort(ctx, http.StatusBadRequest, codeWithdrawNotAllowed, "只有待处理的投递可以撤回")
		return
	}
	s.apps = slices.DeleteFunc(s.apps, func(a *domain.Application) bool {
		return a.ID == app.ID
	})
	s.adjustCounters(app.JobID, -1, -1)
	ctx.Status(http.StatusNoContent)
}

func (s *Server) findApplication(id string) (*domain.Application, bool) {
	return slice.Find(s.apps, func(src *domain.Application) bool {
		return src.ID == id
	})
}

// candidateView 隐藏备注，附带职位摘要
func (s *Server) candidateView(app *domain.Application) domain.Application {
	res := app.Clone()
	res.Notes = ""
	if j, ok := s.findJob(app.JobID); ok {
		res.Job = &domain.JobSummary{ID: j.ID, Title: j.Title, CompanyName: j.CompanyName, Status: j.Status}
	}
	return res
}

func pendingDelta(from, to domain.ApplicationStatus) int64 {
	switch {
	case from == domain.ApplicationPending && to != domain.ApplicationPending:
		return -1
	case from != domain.ApplicationPending && to == domain.ApplicationPending:
		return 1
	default:
		return 0
	}
}
