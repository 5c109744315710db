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
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/company"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/portal/client"
	"github.com/ecodeclub/jobboard/internal/portal/domain"
	"github.com/ecodeclub/jobboard/internal/portal/state"
	"github.com/ecodeclub/jobboard/internal/portal/workflow"
	"github.com/ecodeclub/jobboard/internal/resume"
	_ "github.com/ecodeclub/jobboard/internal/test"
	testioc "github.com/ecodeclub/jobboard/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type staticToken string

func (t staticToken) Token() string {
	return string(t)
}

// 测试里面用固定的 token 代替登录
var users = map[string]session.Claims{
	"employer-token": {
		Uid:  1001,
		Data: map[string]string{middleware.ClaimRole: middleware.RoleEmployer},
	},
	"candidate-token": {
		Uid:  2001,
		Data: map[string]string{middleware.ClaimRole: middleware.RoleCandidate},
	},
}

type PortalTestSuite struct {
	suite.Suite
	db        *egorm.Component
	jm        *job.Module
	server    *httptest.Server
	employer  *state.Store
	candidate *state.Store
}

func TestPortal(t *testing.T) {
	suite.Run(t, new(PortalTestSuite))
}

func (s *PortalTestSuite) SetupSuite() {
	t := s.T()
	s.db = testioc.InitDB()
	cm, err := company.InitModule(s.db)
	require.NoError(t, err)
	s.jm, err = job.InitModule(s.db, testioc.InitCache(), testioc.InitMQ(), testioc.InitIDGenerator(), cm)
	require.NoError(t, err)
	rm, err := resume.InitModule(s.db, testioc.InitIDGenerator(), resume.Config{
		Dir:       t.TempDir(),
		URLPrefix: "/api/uploads",
	})
	require.NoError(t, err)
	am, err := application.InitModule(s.db, testioc.InitMQ(), testioc.InitIDGenerator(), s.jm, rm)
	require.NoError(t, err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		token := strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")
		if claims, ok := users[token]; ok {
			ctx.Set("_session", session.NewMemorySession(claims))
		}
	})
	api := server.Group("/api")
	s.jm.Hdl.PublicRoutes(api)
	rm.Hdl.PublicRoutes(api)
	cm.Hdl.PrivateRoutes(api)
	s.jm.Hdl.PrivateRoutes(api)
	am.Hdl.PrivateRoutes(api)
	rm.Hdl.PrivateRoutes(api)
	s.server = httptest.NewServer(server)

	baseURL := s.server.URL + "/api"
	s.employer = state.NewStore(state.FromClient(client.New(baseURL, staticToken("employer-token"))))
	s.candidate = state.NewStore(state.FromClient(client.New(baseURL, staticToken("candidate-token"))))
}

func (s *PortalTestSuite) TearDownSuite() {
	s.server.Close()
	_ = s.jm.Consumer.Stop(context.Background())
	for _, table := range []string{"applications", "jobs", "resumes", "company_profiles"} {
		require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `"+table+"`").Error)
	}
}

// TestScenario 草稿不能投递，发布之后投递，招聘方入围，候选人看到新的状态
func (s *PortalTestSuite) TestScenario() {
	t := s.T()
	ctx := context.Background()

	_, err := s.employer.CreateJob(ctx, s.draft(domain.VisibilityPublic))
	assert.ErrorIs(t, err, state.ErrProfileIncomplete)
	assert.ErrorIs(t, err, client.ErrForbidden)

	profile, err := s.employer.SaveCompanyProfile(ctx, domain.CompanyProfile{
		CompanyName:  "ecode",
		Description:  "做开源",
		Industry:     "互联网",
		Size:         "10-50",
		Location:     "上海",
		ContactEmail: "hr@ecode.dev",
	})
	require.NoError(t, err)
	assert.True(t, profile.Completed)

	jobA, err := s.employer.CreateJob(ctx, s.draft(domain.VisibilityDraft))
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusDraft, jobA.Status)

	r, err := s.candidate.UploadResume(ctx, domain.Upload{
		Name:   "cv.pdf",
		Size:   8,
		Reader: bytes.NewReader([]byte("%PDF-1.4")),
	})
	require.NoError(t, err)

	appDraft := domain.ApplicationDraft{JobID: jobA.ID, ResumeID: r.ID, FullName: "Amy", Email: "amy@example.com"}
	_, err = s.candidate.Apply(ctx, appDraft)
	assert.ErrorIs(t, err, state.ErrJobNotAccepting)
	assert.Empty(t, s.candidate.State().MyApplications)

	_, err = s.employer.LoadJobByID(ctx, jobA.ID)
	require.NoError(t, err)
	jobA, err = s.employer.PublishJob(ctx, jobA.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusActive, jobA.Status)

	app, err := s.candidate.Apply(ctx, appDraft)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationPending, app.Status)
	_, err = s.candidate.Apply(ctx, appDraft)
	assert.ErrorIs(t, err, state.ErrAlreadyApplied)

	// 计数是异步更新的
	assert.Eventually(t, func() bool {
		j, err := s.employer.LoadJobByID(ctx, jobA.ID)
		return err == nil && j.ApplicationCount == 1 && j.PendingCount == 1
	}, 5*time.Second, 100*time.Millisecond)

	board := workflow.NewReviewBoard(s.employer, jobA.ID)
	require.NoError(t, board.Load(ctx))
	require.Len(t, board.Items(), 1)
	target, ok := workflow.Target(workflow.ActionShortlist)
	require.True(t, ok)
	for i := 0; i < 2; i++ {
		updated, err := board.SetStatus(ctx, app.ID, target)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationShortlisted, updated.Status)
	}

	mine, err := s.candidate.LoadMyApplications(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, domain.ApplicationShortlisted, mine[0].Status)
	require.NotNil(t, mine[0].Job)
	assert.Equal(t, jobA.Title, mine[0].Job.Title)
	assert.False(t, workflow.CanWithdraw(mine[0].Status))
	assert.Error(t, s.candidate.WithdrawApplication(ctx, app.ID))

	require.NoError(t, s.employer.CloseJob(ctx, jobA.ID))
	assert.Eventually(t, func() bool {
		j, err := s.employer.LoadJobByID(ctx, jobA.ID)
		return err == nil && j.Status == domain.JobStatusClosed &&
			j.ApplicationCount == 1 && j.PendingCount == 0
	}, 5*time.Second, 100*time.Millisecond)
}

func (s *PortalTestSuite) draft(v domain.Visibility) domain.JobDraft {
	return domain.JobDraft{
		Title:           "Go 开发",
		Description:     "写 Go",
		JobType:         domain.JobTypeFullTime,
		ExperienceLevel: domain.ExperienceSenior,
		Location:        "上海",
		Visibility:      v,
	}
}
