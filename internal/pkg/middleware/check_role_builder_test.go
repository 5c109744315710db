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

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	session.Provider
	sess session.Session
	err  error
}

func (p *stubProvider) Get(ctx *gctx.Context) (session.Session, error) {
	return p.sess, p.err
}

func TestCheckRoleMiddlewareBuilder(t *testing.T) {
	testCases := []struct {
		name     string
		sp       session.Provider
		roles    []string
		wantCode int
	}{
		{
			name:     "没有登录",
			sp:       &stubProvider{err: errors.New("mock no jwt")},
			roles:    []string{RoleEmployer},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "角色不匹配",
			sp: &stubProvider{sess: session.NewMemorySession(session.Claims{
				Uid:  1,
				Data: map[string]string{ClaimRole: RoleCandidate},
			})},
			roles:    []string{RoleEmployer},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "没有角色",
			sp:       &stubProvider{sess: session.NewMemorySession(session.Claims{Uid: 1})},
			roles:    []string{RoleEmployer},
			wantCode: http.StatusForbidden,
		},
		{
			name: "通过",
			sp: &stubProvider{sess: session.NewMemorySession(session.Claims{
				Uid:  1,
				Data: map[string]string{ClaimRole: RoleEmployer},
			})},
			roles:    []string{RoleEmployer, RoleCandidate},
			wantCode: http.StatusOK,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			builder := NewCheckRoleMiddlewareBuilder()
			builder.sp = tc.sp
			server := gin.New()
			server.GET("/", builder.Build(tc.roles...), func(ctx *gin.Context) {
				ctx.Status(http.StatusOK)
			})
			recorder := httptest.NewRecorder()
			req, err := http.NewRequest(http.MethodGet, "/", nil)
			require.NoError(t, err)
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}
