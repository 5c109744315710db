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

//go:build e2e

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/application/internal/integration/startup"
	"github.com/ecodeclub/jobboard/internal/application/internal/web"
	"github.com/ecodeclub/jobboard/internal/company"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/resume"
	"github.com/ecodeclub/jobboard/internal/test"
	testioc "github.com/ecodeclub/jobboard/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	employer      = 123
	otherEmployer = 456
	candidate     = 789
)

type ApplicationTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	cm     *company.Module
	jm     *job.Module
	rm     *resume.Module
}

func TestApplication(t *testing.T) {
	suite.Run(t, new(ApplicationTestSuite))
}

func (s *ApplicationTestSuite) SetupSuite() {
	t := s.T()
	s.db = testioc.InitDB()
	var err error
	s.cm, err = company.InitModule(s.db)
	require.NoError(t, err)
	s.jm, err = job.InitModule(s.db, testioc.InitCache(), testioc.InitMQ(), testioc.InitIDGenerator(), s.cm)
	require.NoError(t, err)
	s.rm, err = resume.InitModule(s.db, testioc.InitIDGenerator(), resume.Config{
		Dir:       t.TempDir(),
		URLPrefix: "/api/uploads",
	})
	require.NoError(t, err)
	module, err := startup.InitModule(s.jm, s.rm)
	require.NoError(t, err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		uid, err := strconv.ParseInt(ctx.GetHeader("X-Uid"), 10, 64)
		if err != nil {
			return
		}
		role := middleware.RoleEmployer
		if uid == candidate {
			role = middleware.RoleCandidate
		}
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{middleware.ClaimRole: role},
		}))
	})
	module.Hdl.PrivateRoutes(server.Group("/api"))
	s.server = server
}

func (s *ApplicationTestSuite) TearDownSuite() {
	_ = s.jm.Consumer.Stop(context.Background())
}

func (s *ApplicationTestSuite) TearDownTest() {
	for _, table := range []string{"applications", "jobs", "resumes", "company_profiles"} {
		require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `"+table+"`").Error)
	}
}

// prepare 招聘方发布一个职位，候选人上传一份简历
func (s *ApplicationTestSuite) prepare(visibility job.Visibility) (job.Job, resume.Resume) {
	t := s.T()
	ctx := context.Background()
	_, err := s.cm.Svc.Create(ctx, company.Profile{
		Uid:          employer,
		CompanyName:  "ecode",
		Description:  "做开源",
		Industry:     "互联网",
		Size:         "10-50",
		Location:     "上海",
		ContactEmail: "hr@ecode.dev",
	})
	require.NoError(t, err)
	j, err := s.jm.Svc.Create(ctx, job.Job{
		CompanyID:       employer,
		Title:           "Go 开发",
		Description:     "写 Go",
		JobType:         "Full-time",
		ExperienceLevel: "Senior",
		Location:        "上海",
		Visibility:      visibility,
	})
	require.NoError(t, err)
	r, err := s.rm.Svc.Upload(ctx, candidate, resume.File{
		Name:   "cv.pdf",
		Size:   8,
		Reader: strings.NewReader("%PDF-1.4"),
	})
	require.NoError(t, err)
	return j, r
}

func (s *ApplicationTestSuite) applyReq(j job.Job, r resume.Resume) web.ApplyReq {
	return web.ApplyReq{JobID: j.ID, ResumeID: r.ID, FullName: "Amy", Email: "amy@example.com"}
}

func do[T any](s *ApplicationTestSuite, method, path string, uid int64, body any) (int, test.Result[T]) {
	t := s.T()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	if body == nil {
		data = nil
	}
	req, err := http.NewRequest(method, path, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Uid", strconv.FormatInt(uid, 10))
	recorder := test.NewJSONResponseRecorder[T]()
	s.server.ServeHTTP(recorder, req)
	if recorder.Body.Len() == 0 {
		return recorder.Code, test.Result[T]{}
	}
	return recorder.Code, recorder.MustScan()
}

func (s *ApplicationTestSuite) TestApply() {
	t := s.T()
	j, r := s.prepare(job.VisibilityPublic)

	code, res := do[web.ApplicationVO](s, http.MethodPost, "/api/applications", candidate, s.applyReq(j, r))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "PENDING", res.Data.Status)
	require.NotNil(t, res.Data.Job)
	assert.Equal(t, "Go 开发", res.Data.Job.Title)

	code, res = do[web.ApplicationVO](s, http.MethodPost, "/api/applications", candidate, s.applyReq(j, r))
	require.Equal(t, http.StatusConflict, code)
	assert.Equal(t, 423002, res.Code)

	// 简历不是自己的
	req := s.applyReq(j, r)
	req.ResumeID = 10086
	code, res = do[web.ApplicationVO](s, http.MethodPost, "/api/applications", candidate, req)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, 423008, res.Code)

	req = s.applyReq(j, r)
	req.JobID = 10086
	code, res = do[web.ApplicationVO](s, http.MethodPost, "/api/applications", candidate, req)
	require.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, 423006, res.Code)

	code, _ = do[web.ApplicationVO](s, http.MethodPost, "/api/applications", employer, s.applyReq(j, r))
	require.Equal(t, http.StatusForbidden, code)

	assert.Eventually(t, func() bool {
		res, err := s.jm.Svc.FindByID(context.Background(), j.ID)
		return err == nil && res.ApplicationCount == 1 && res.PendingCount == 1
	}, 5*time.Second, 100*time.Millisecond)
}

func (s *ApplicationTestSuite) TestApply_DraftJob() {
	t := s.T()
	j, r := s.prepare(job.VisibilityDraft)
	code, res := do[web.ApplicationVO](s, http.MethodPost, "/api/applications", candidate, s.applyReq(j, r))
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, 423001, res.Code)

	code, _ = do[[]web.ApplicationVO](s, http.MethodGet, "/api/applications/my", candidate, nil)
	require.Equal(t, http.StatusOK, code)
}

func (s *ApplicationTestSuite) TestReview() {
	t := s.T()
	j, r := s.prepare(job.VisibilityPublic)
	code, applied := do[web.ApplicationVO](s, http.MethodPost, "/api/applications", candidate, s.applyReq(j, r))
	require.Equal(t, http.StatusOK, code)
	statusPath := "/api/applications/" + strconv.FormatInt(applied.Data.ID, 10) + "/status"

	code, res := do[web.ApplicationVO](s, http.MethodPatch, statusPath, otherEmployer, map[string]any{"status": "SHORTLISTED"})
	require.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, 423007, res.Code)

	// 重复设置同一个状态
	for i := 0; i < 2; i++ {
		code, res = do[web.ApplicationVO](s, http.MethodPatch, statusPath, employer,
			map[string]any{"status": "SHORTLISTED", "notes": "可以约面试"})
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "SHORTLISTED", res.Data.Status)
		assert.Equal(t, "可以约面试", res.Data.Notes)
	}

	code, list := do[[]web.ApplicationVO](s, http.MethodGet,
		"/api/jobs/"+strconv.FormatInt(j.ID, 10)+"/applications", employer, nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "可以约面试", list.Data[0].Notes)

	code, _ = do[[]web.ApplicationVO](s, http.MethodGet,
		"/api/jobs/"+strconv.FormatInt(j.ID, 10)+"/applications", otherEmployer, nil)
	require.Equal(t, http.StatusForbidden, code)

	// 候选人看不到备注
	code, mine := do[[]web.ApplicationVO](s, http.MethodGet, "/api/applications/my", candidate, nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, mine.Data, 1)
	assert.Equal(t, "SHORTLISTED", mine.Data[0].Status)
	assert.Empty(t, mine.Data[0].Notes)

	// 已经处理过的不能撤回
	code, res = do[web.ApplicationVO](s, http.MethodDelete,
		"/api/applications/"+strconv.FormatInt(applied.Data.ID, 10), candidate, nil)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, 423004, res.Code)

	assert.Eventually(t, func() bool {
		res, err := s.jm.Svc.FindByID(context.Background(), j.ID)
		return err == nil && res.ApplicationCount == 1 && res.PendingCount == 0
	}, 5*time.Second, 100*time.Millisecond)
}

func (s *ApplicationTestSuite) TestWithdraw() {
	t := s.T()
	j, r := s.prepare(job.VisibilityPublic)
	code, applied := do[web.ApplicationVO](s, http.MethodPost, "/api/applications", candidate, s.applyReq(j, r))
	require.Equal(t, http.StatusOK, code)
	path := "/api/applications/" + strconv.FormatInt(applied.Data.ID, 10)

	code, _ = do[web.ApplicationVO](s, http.MethodDelete, path, candidate, nil)
	require.Equal(t, http.StatusNoContent, code)
	code, res := do[web.ApplicationVO](s, http.MethodDelete, path, candidate, nil)
	require.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, 423003, res.Code)

	code, mine := do[[]web.ApplicationVO](s, http.MethodGet, "/api/applications/my", candidate, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, mine.Data)

	assert.Eventually(t, func() bool {
		res, err := s.jm.Svc.FindByID(context.Background(), j.ID)
		return err == nil && res.ApplicationCount == 0 && res.PendingCount == 0
	}, 5*time.Second, 100*time.Millisecond)
}
