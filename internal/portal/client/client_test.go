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

package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ecodeclub/jobboard/internal/portal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string {
	return string(s)
}

func newTestServer(t *testing.T, register func(server *gin.Engine)) *httptest.Server {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	register(server)
	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)
	return ts
}

func TestClient_BearerToken(t *testing.T) {
	var got []string
	ts := newTestServer(t, func(server *gin.Engine) {
		server.GET("/api/jobs/:id", func(ctx *gin.Context) {
			got = append(got, ctx.GetHeader("Authorization"))
			ctx.JSON(http.StatusOK, gin.H{"id": ctx.Param("id")})
		})
	})

	testCases := []struct {
		name   string
		tokens TokenSource
		want   string
	}{
		{name: "有 token", tokens: staticToken("abc"), want: "Bearer abc"},
		{name: "空 token", tokens: staticToken(""), want: ""},
		{name: "没有 TokenSource", tokens: nil, want: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got = got[:0]
			c := New(ts.URL+"/api/", tc.tokens)
			job, err := c.Jobs.Get(context.Background(), "42")
			require.NoError(t, err)
			assert.Equal(t, "42", job.ID)
			require.Len(t, got, 1)
			assert.Equal(t, tc.want, got[0])
		})
	}
}

func TestJobAPI_ListEnvelopes(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		params   JobListParams
		wantPage domain.JobPage
		wantErr  error
	}{
		{
			name:   "分页对象",
			body:   `{"jobs":[{"id":"1"},{"id":"2"}],"total":12,"totalPages":6}`,
			params: JobListParams{Page: 2, Limit: 2},
			wantPage: domain.JobPage{
				Items: []domain.Job{{ID: "1"}, {ID: "2"}},
				Page:  2, Limit: 2, Total: 12, TotalPages: 6,
			},
		},
		{
			name:   "ginx 信封包着分页对象",
			body:   `{"code":0,"msg":"","data":{"jobs":[{"id":"1"}],"total":1,"totalPages":1,"page":1,"limit":10}}`,
			params: JobListParams{Page: 1, Limit: 10},
			wantPage: domain.JobPage{
				Items: []domain.Job{{ID: "1"}},
				Page:  1, Limit: 10, Total: 1, TotalPages: 1,
			},
		},
		{
			name:   "success 信封包着数组",
			body:   `{"success":true,"data":[{"id":"3"}]}`,
			params: JobListParams{Page: 1, Limit: 10},
			wantPage: domain.JobPage{
				Items: []domain.Job{{ID: "3"}},
				Page:  1, Limit: 10, Total: 1, TotalPages: 1,
			},
		},
		{
			name:   "裸数组",
			body:   `[]`,
			params: JobListParams{Page: 1, Limit: 10},
			wantPage: domain.JobPage{
				Items: []domain.Job{},
				Page:  1, Limit: 10,
			},
		},
		{
			name:    "未知格式",
			body:    `{"items":[]}`,
			wantErr: ErrUnexpectedShape,
		},
		{
			name:    "success 为 false",
			body:    `{"success":false,"message":"boom"}`,
			wantErr: ErrServer,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t, func(server *gin.Engine) {
				server.GET("/jobs", func(ctx *gin.Context) {
					ctx.Data(http.StatusOK, "application/json", []byte(tc.body))
				})
			})
			page, err := New(ts.URL, nil).Jobs.List(context.Background(), tc.params)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantPage, page)
		})
	}
}

func TestJobAPI_ListQuery(t *testing.T) {
	var query map[string][]string
	ts := newTestServer(t, func(server *gin.Engine) {
		server.GET("/jobs", func(ctx *gin.Context) {
			query = ctx.Request.URL.Query()
			ctx.JSON(http.StatusOK, gin.H{"jobs": []any{}, "total": 0, "totalPages": 0})
		})
	})
	minSalary, remote := 3000.5, true
	_, err := New(ts.URL, nil).Jobs.List(context.Background(), JobListParams{
		Page:      3,
		Limit:     10,
		Search:    "go",
		JobType:   domain.JobTypeContract,
		MinSalary: &minSalary,
		Remote:    &remote,
		Mine:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"page":      {"3"},
		"limit":     {"10"},
		"search":    {"go"},
		"jobType":   {"Contract"},
		"minSalary": {"3000.5"},
		"remote":    {"true"},
		"mine":      {"true"},
	}, query)
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		body     string
		wantKind error
		wantMsg  string
		wantCode int64
	}{
		{name: "400", status: 400, body: `{"code":423001,"msg":"职位不再接受投递"}`, wantKind: ErrValidation, wantMsg: "职位不再接受投递", wantCode: CodeJobNotAccepting},
		{name: "401", status: 401, body: ``, wantKind: ErrUnauthorized},
		{name: "403", status: 403, body: `{"code":422002,"msg":"请先完善公司资料"}`, wantKind: ErrForbidden, wantMsg: "请先完善公司资料", wantCode: CodeProfileIncomplete},
		{name: "404", status: 404, body: `{"message":"not found"}`, wantKind: ErrNotFound, wantMsg: "not found"},
		{name: "409", status: 409, body: `{"success":false,"error":"already applied"}`, wantKind: ErrConflict, wantMsg: "already applied"},
		{name: "422", status: 422, body: `{"detail":"bad"}`, wantKind: ErrValidation, wantMsg: "bad"},
		{name: "502", status: 502, body: `<html>bad gateway</html>`, wantKind: ErrServer},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t, func(server *gin.Engine) {
				server.POST("/applications", func(ctx *gin.Context) {
					ctx.Data(tc.status, "application/json", []byte(tc.body))
				})
			})
			_, err := New(ts.URL, nil).Applications.Submit(context.Background(), domain.ApplicationDraft{JobID: "1"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantKind)
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.wantMsg, apiErr.Message)
			assert.Equal(t, tc.wantCode, apiErr.Code)
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	ts := newTestServer(t, func(server *gin.Engine) {})
	url := ts.URL
	ts.Close()
	_, err := New(url, nil).Applications.Mine(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.Status)
}

func TestApplicationAPI_MineEnvelopes(t *testing.T) {
	bodies := []string{
		`[{"id":"1","status":"PENDING"}]`,
		`{"success":true,"data":[{"id":"1","status":"PENDING"}]}`,
		`{"code":0,"msg":"","data":{"applications":[{"id":"1","status":"PENDING"}]}}`,
	}
	for _, body := range bodies {
		ts := newTestServer(t, func(server *gin.Engine) {
			server.GET("/applications/my", func(ctx *gin.Context) {
				ctx.Data(http.StatusOK, "application/json", []byte(body))
			})
		})
		apps, err := New(ts.URL, nil).Applications.Mine(context.Background())
		require.NoError(t, err, body)
		assert.Equal(t, []domain.Application{{ID: "1", Status: domain.ApplicationPending}}, apps)
	}
}

func TestApplicationAPI_UpdateStatus(t *testing.T) {
	ts := newTestServer(t, func(server *gin.Engine) {
		server.PATCH("/applications/:id/status", func(ctx *gin.Context) {
			var req struct {
				Status string `json:"status"`
			}
			if err := ctx.BindJSON(&req); err != nil {
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"id": ctx.Param("id"), "status": req.Status}})
		})
	})
	app, err := New(ts.URL, nil).Applications.UpdateStatus(context.Background(), "7", domain.ApplicationShortlisted)
	require.NoError(t, err)
	assert.Equal(t, domain.Application{ID: "7", Status: domain.ApplicationShortlisted}, app)
}

func TestResumeAPI_Upload(t *testing.T) {
	ts := newTestServer(t, func(server *gin.Engine) {
		server.POST("/upload/resume", func(ctx *gin.Context) {
			fh, err := ctx.FormFile("resume")
			if err != nil {
				ctx.AbortWithStatus(http.StatusBadRequest)
				return
			}
			f, _ := fh.Open()
			data, _ := io.ReadAll(f)
			_ = f.Close()
			ctx.JSON(http.StatusOK, gin.H{"id": "r1", "originalName": fh.Filename, "size": len(data)})
		})
	})
	c := New(ts.URL, nil)

	res, err := c.Resumes.Upload(context.Background(), domain.Upload{
		Name: "cv.pdf", Size: 7, Reader: strings.NewReader("%PDF-1."),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Resume{ID: "r1", OriginalName: "cv.pdf", Size: 7}, res)

	// 本地校验失败不会发请求
	_, err = c.Resumes.Upload(context.Background(), domain.Upload{
		Name: "cv.exe", Size: 7, Reader: strings.NewReader("MZ"),
	})
	assert.ErrorIs(t, err, domain.ErrFileType)
}

func TestHasCode(t *testing.T) {
	err := newStatusError(http.StatusConflict, []byte(`{"code":423002,"msg":"重复投递"}`))
	assert.True(t, HasCode(err, CodeDuplicateApplication))
	assert.False(t, HasCode(err, CodeJobNotAccepting))
	assert.False(t, HasCode(errors.New("x"), CodeJobNotAccepting))
}
