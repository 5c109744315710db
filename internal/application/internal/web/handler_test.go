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
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/application/internal/service"
	applicationmocks "github.com/ecodeclub/jobboard/internal/application/mocks"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T, svc service.Service, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  7,
			Data: map[string]string{middleware.ClaimRole: role},
		}))
	})
	NewHandler(svc).PrivateRoutes(server.Group("/api"))
	return server
}

func TestHandler_Apply(t *testing.T) {
	body := `{"jobId":"1","resumeId":"9","fullName":"Amy","email":"amy@example.com"}`
	testCases := []struct {
		name     string
		body     string
		mock     func(ctrl *gomock.Controller) service.Service
		wantCode int
		wantBiz  int
	}{
		{
			name: "投递成功",
			body: body,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := applicationmocks.NewMockService(ctrl)
				svc.EXPECT().Apply(gomock.Any(), domain.Application{
					JobID: 1, ResumeID: 9, CandidateID: 7, FullName: "Amy", Email: "amy@example.com",
				}).Return(domain.Application{ID: 100, JobID: 1, Status: domain.StatusPending}, nil)
				return svc
			},
			wantCode: http.StatusOK,
		},
		{
			name: "职位不存在",
			body: body,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := applicationmocks.NewMockService(ctrl)
				svc.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(domain.Application{}, service.ErrJobNotFound)
				return svc
			},
			wantCode: http.StatusNotFound,
			wantBiz:  423006,
		},
		{
			name: "职位不接受投递",
			body: body,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := applicationmocks.NewMockService(ctrl)
				svc.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(domain.Application{}, service.ErrJobNotAccepting)
				return svc
			},
			wantCode: http.StatusBadRequest,
			wantBiz:  423001,
		},
		{
			name: "重复投递",
			body: body,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := applicationmocks.NewMockService(ctrl)
				svc.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(domain.Application{}, service.ErrDuplicated)
				return svc
			},
			wantCode: http.StatusConflict,
			wantBiz:  423002,
		},
		{
			name: "系统错误",
			body: body,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := applicationmocks.NewMockService(ctrl)
				svc.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(domain.Application{}, errors.New("mock db error"))
				return svc
			},
			wantCode: http.StatusInternalServerError,
			wantBiz:  523001,
		},
		{
			name: "邮箱不合法",
			body: `{"jobId":"1","resumeId":"9","fullName":"Amy","email":"amy"}`,
			mock: func(ctrl *gomock.Controller) service.Service {
				return applicationmocks.NewMockService(ctrl)
			},
			wantCode: http.StatusBadRequest,
			wantBiz:  423005,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(t, tc.mock(ctrl), middleware.RoleCandidate)
			req, err := http.NewRequest(http.MethodPost, "/api/applications", bytes.NewBufferString(tc.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[ApplicationVO]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantBiz, res.Code)
			if tc.wantCode == http.StatusOK {
				assert.Equal(t, int64(100), res.Data.ID)
				assert.Equal(t, "PENDING", res.Data.Status)
			}
		})
	}
}

func TestHandler_Withdraw(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "撤回成功", wantCode: http.StatusNoContent},
		{name: "不存在", err: service.ErrApplicationNotFound, wantCode: http.StatusNotFound},
		{name: "已经处理过", err: service.ErrWithdrawNotAllowed, wantCode: http.StatusBadRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := applicationmocks.NewMockService(ctrl)
			svc.EXPECT().Withdraw(gomock.Any(), int64(7), int64(100)).Return(tc.err)
			server := newServer(t, svc, middleware.RoleCandidate)
			req, err := http.NewRequest(http.MethodDelete, "/api/applications/100", nil)
			require.NoError(t, err)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}

func TestHandler_RoleCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	// 候选人不能修改状态，招聘方不能投递
	server := newServer(t, applicationmocks.NewMockService(ctrl), middleware.RoleCandidate)
	req, err := http.NewRequest(http.MethodPatch, "/api/applications/100/status", bytes.NewBufferString(`{"status":"REVIEWED"}`))
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	server = newServer(t, applicationmocks.NewMockService(ctrl), middleware.RoleEmployer)
	req, err = http.NewRequest(http.MethodGet, "/api/applications/my", nil)
	require.NoError(t, err)
	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
