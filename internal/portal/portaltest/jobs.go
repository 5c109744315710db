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
	"errors"
	"net/http"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/portal/domain"
	"github.com/ecodeclub/jobboard/internal/portal/query"
	"github.com/ecodeclub/jobboard/internal/portal/workflow"
	"github.com/gin-gonic/gin"
	"github.com/lithammer/shortuuid/v4"
)

const defaultLimit = 10

// listJobs 返回 {jobs,total,totalPages,page,limit}
func (s *Server) listJobs(ctx *gin.Context) {
	u, _ := currentUser(ctx)
	desc := query.JobDescriptor{
		JobFilter: query.JobFilter{
			Search:          ctx.Query("search"),
			Status:          domain.JobStatus(ctx.Query("status")),
			JobType:         domain.JobType(ctx.Query("jobType")),
			ExperienceLevel: domain.ExperienceLevel(ctx.Query("experienceLevel")),
			Location:        ctx.Query("location"),
		},
		Sort:  query.Sort(ctx.Query("sort")),
		Page:  atoi(ctx.Query("page"), 1),
		Limit: atoi(ctx.Query("limit"), defaultLimit),
	}
	if v, err := strconv.ParseFloat(ctx.Query("minSalary"), 64); err == nil {
		desc.MinSalary = &v
	}
	if v, err := strconv.ParseBool(ctx.Query("remote")); err == nil {
		desc.Remote = &v
	}
	mine := ctx.Query("mine") == "true" && u.role == RoleEmployer

	s.mu.Lock()
	visible := make([]domain.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if mine && j.CompanyID == u.uid ||
			!mine && j.Status == domain.JobStatusActive && j.Visibility == domain.VisibilityPublic {
			visible = append(visible, j.Clone())
		}
	}
	s.mu.Unlock()

	res := query.Jobs(visible, desc)
	ctx.JSON(http.StatusOK, gin.H{
		"jobs":       res.Items,
		"total":      res.Total,
		"totalPages": res.TotalPages,
		"page":       res.Page,
		"limit":      res.Limit,
	})
}

// jobDetail 返回 {success,data}，草稿只有发布者能看到
func (s *Server) jobDetail(ctx *gin.Context) {
	u, _ := currentUser(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.findJob(ctx.Param("id"))
	if !ok || j.Status == domain.JobStatusDraft && j.CompanyID != u.uid {
		abort(ctx, http.StatusNotFound, codeJobNotFound, "职位不存在")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": j.Clone()})
}

// createJob 返回 {code,msg,data}
func (s *Server) createJob(ctx *gin.Context) {
	u, _ := currentUser(ctx)
	var draft domain.JobDraft
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		abort(ctx, http.StatusBadRequest, codeInvalidJob, err.Error())
		return
	}
	if err := draft.Validate(); err != nil {
		abort(ctx, http.StatusBadRequest, codeInvalidJob, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[u.uid]
	if !ok || !p.Completed {
		abort(ctx, http.StatusForbidden, codeProfileIncomplete, "请先完善公司资料")
		return
	}
	j := &domain.Job{
		ID:          shortuuid.New(),
		CompanyID:   u.uid,
		CompanyName: p.CompanyName,
		Status:      draft.Visibility.InitialStatus(),
		CreatedAt:   s.now(),
	}
	applyDraft(j, draft)
	s.jobs = append(s.jobs, j)
	ctx.JSON(http.StatusOK, gin.H{"code": 0, "msg": "OK", "data": j.Clone()})
}

// editJob 全量更新，返回职位本身
func (s *Server) editJob(ctx *gin.Context) {
	var draft domain.JobDraft
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		abort(ctx, http.StatusBadRequest, codeInvalidJob, err.Error())
		return
	}
	if err := draft.Validate(); err != nil {
		abort(ctx, http.StatusBadRequest, codeInvalidJob, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.ownedJob(ctx)
	if !ok {
		return
	}
	applyDraft(j, draft)
	ctx.JSON(http.StatusOK, j.Clone())
}

// patchJob 局部更新，状态变化按照职位生命周期校验
func (s *Server) patchJob(ctx *gin.Context) {
	var patch domain.JobPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		abort(ctx, http.StatusBadRequest, codeInvalidJob, err.Error())
		return
	}
	if err := patch.Validate(); err != nil {
		abort(ctx, http.StatusBadRequest, codeInvalidJob, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.ownedJob(ctx)
	if !ok {
		return
	}
	if patch.Status != nil {
		err := workflow.ValidateJobTransition(j.Status, *patch.Status)
		switch {
		case errors.Is(err, workflow.ErrJobClosed):
			abort(ctx, http.StatusBadRequest, codeJobClosed, err.Error())
			return
		case err != nil:
			abort(ctx, http.StatusBadRequest, codeInvalidJob, err.Error())
			return
		}
	}
	next := j.Clone()
	applyPatch(&next, patch)
	if next.SalaryMin != nil && next.SalaryMax != nil && *next.SalaryMin > *next.SalaryMax {
		abort(ctx, http.StatusBadRequest, codeInvalidJob, domain.ErrSalaryRange.Error())
		return
	}
	*j = next
	ctx.JSON(http.StatusOK, j.Clone())
}

// closeJob 重复关闭也是成功，返回 {success}
func (s *Server) closeJob(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.ownedJob(ctx)
	if !ok {
		return
	}
	j.Status = domain.JobStatusClosed
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// jobApplications 返回数组，最新的在前面
func (s *Server) jobApplications(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.ownedJob(ctx)
	if !ok {
		return
	}
	apps := slice.FindAll(s.apps, func(src *domain.Application) bool {
		return src.JobID == j.ID
	})
	res := make([]domain.Application, 0, len(apps))
	for i := len(apps) - 1; i >= 0; i-- {
		res = append(res, apps[i].Clone())
	}
	ctx.JSON(http.StatusOK, res)
}

func (s *Server) findJob(id string) (*domain.Job, bool) {
	return slice.Find(s.jobs, func(src *domain.Job) bool {
		return src.ID == id
	})
}

// ownedJob 找不到或者不是自己的职位时直接写响应
func (s *Server) ownedJob(ctx *gin.Context) (*domain.Job, bool) {
	u, _ := currentUser(ctx)
	j, ok := s.findJob(ctx.Param("id"))
	if !ok {
		abort(ctx, http.StatusNotFound, codeJobNotFound, "职位不存在")
		return nil, false
	}
	if j.CompanyID != u.uid {
		abort(ctx, http.StatusForbidden, codeJobPermission, "不是你的职位")
		return nil, false
	}
	return j, true
}

func (s *Server) adjustCounters(jobID string, total, pending int64) {
	if j, ok := s.findJob(jobID); ok {
		j.ApplicationCount += total
		j.PendingCount += pending
	}
}

func applyDraft(j *domain.Job, d domain.JobDraft) {
	j.Title = d.Title
	j.Description = d.Description
	j.Requirements = d.Requirements
	j.Responsibilities = d.Responsibilities
	j.Benefits = d.Benefits
	j.JobType = d.JobType
	j.ExperienceLevel = d.ExperienceLevel
	j.Location = d.Location
	j.Remote = d.Remote
	j.SalaryMin = d.SalaryMin
	j.SalaryMax = d.SalaryMax
	j.SalaryCurrency = d.SalaryCurrency
	j.Tags = d.Tags
	j.Deadline = d.Deadline
	j.Visibility = d.Visibility
	j.Featured = d.Featured
	j.Urgent = d.Urgent
}

func applyPatch(j *domain.Job, p domain.JobPatch) {
	set(&j.Title, p.Title)
	set(&j.Description, p.Description)
	set(&j.Requirements, p.Requirements)
	set(&j.Responsibilities, p.Responsibilities)
	set(&j.Benefits, p.Benefits)
	set(&j.JobType, p.JobType)
	set(&j.ExperienceLevel, p.ExperienceLevel)
	set(&j.Location, p.Location)
	set(&j.Remote, p.Remote)
	set(&j.SalaryCurrency, p.SalaryCurrency)
	set(&j.Status, p.Status)
	set(&j.Visibility, p.Visibility)
	set(&j.Featured, p.Featured)
	set(&j.Urgent, p.Urgent)
	if p.SalaryMin != nil {
		j.SalaryMin = p.SalaryMin
	}
	if p.SalaryMax != nil {
		j.SalaryMax = p.SalaryMax
	}
	if p.Deadline != nil {
		j.Deadline = p.Deadline
	}
	if p.Tags != nil {
		j.Tags = p.Tags
	}
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func atoi(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
