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

// Package portaltest 在内存里面实现招聘门户的 REST 接口，给客户端测试用。
// 业务规则和真实服务保持一致，不同接口故意返回不同的响应格式。
package portaltest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/ecodeclub/ekit/syncx"
	"github.com/ecodeclub/jobboard/internal/portal/domain"
	"github.com/gin-gonic/gin"
)

const (
	RoleEmployer  = "employer"
	RoleCandidate = "candidate"
)

const (
	codeProfileNotFound      = 421001
	codeProfileExists        = 421002
	codeInvalidProfile       = 421003
	codeJobNotFound          = 422001
	codeProfileIncomplete    = 422002
	codeInvalidJob           = 422003
	codeJobClosed            = 422004
	codeJobPermission        = 422005
	codeJobNotAccepting      = 423001
	codeDuplicateApplication = 423002
	codeApplicationNotFound  = 423003
	codeWithdrawNotAllowed   = 423004
	codeInvalidApplication   = 423005
	codeApplicationJob       = 423006
	codeApplicationDenied    = 423007
	codeResumeNotOwned       = 423008
	codeInvalidFile          = 424001
)

type user struct {
	uid  string
	role string
}

type hold struct {
	arrived chan struct{}
	release chan struct{}
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	users    map[string]user
	profiles map[string]domain.CompanyProfile
	jobs     []*domain.Job
	apps     []*domain.Application
	resumes  map[string][]domain.Resume
	files    map[string][]byte
	clock    int64

	holds syncx.Map[string, *hold]
}

// NewServer 启动服务，用完之后调用 Close
func NewServer() *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		users:    make(map[string]user),
		profiles: make(map[string]domain.CompanyProfile),
		resumes:  make(map[string][]domain.Resume),
		files:    make(map[string][]byte),
	}
	s.Server = httptest.NewServer(s.routes())
	return s
}

// BaseURL 客户端使用的地址，带 /api 前缀
func (s *Server) BaseURL() string {
	return s.URL + "/api"
}

// AddUser 注册一个 token，请求头里面带上它就是这个用户
func (s *Server) AddUser(token, uid, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[token] = user{uid: uid, role: role}
}

// Hold 挂起下一个匹配的请求，直到调用 release。
// path 是不带 /api 前缀的路由，例如 /jobs/:id
func (s *Server) Hold(method, path string) (arrived <-chan struct{}, release func()) {
	h := &hold{arrived: make(chan struct{}), release: make(chan struct{})}
	s.holds.Store(method+" "+path, h)
	var once sync.Once
	return h.arrived, func() {
		once.Do(func() { close(h.release) })
	}
}

func (s *Server) routes() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), s.holdMiddleware(), s.authMiddleware())
	api := engine.Group("/api")

	api.GET("/jobs", s.listJobs)
	api.GET("/jobs/:id", s.jobDetail)
	api.POST("/jobs", s.requireRole(RoleEmployer), s.createJob)
	api.PUT("/jobs/:id", s.requireRole(RoleEmployer), s.editJob)
	api.PATCH("/jobs/:id", s.requireRole(RoleEmployer), s.patchJob)
	api.PATCH("/jobs/:id/close", s.requireRole(RoleEmployer), s.closeJob)
	api.GET("/jobs/:id/applications", s.requireRole(RoleEmployer), s.jobApplications)

	api.POST("/applications", s.requireRole(RoleCandidate), s.apply)
	api.GET("/applications/my", s.requireRole(RoleCandidate), s.myApplications)
	api.PATCH("/applications/:id/status", s.requireRole(RoleEmployer), s.updateApplicationStatus)
	api.DELETE("/applications/:id", s.requireRole(RoleCandidate), s.withdraw)

	api.GET("/companies/profile", s.requireRole(RoleEmployer), s.profile)
	api.POST("/companies/profile", s.requireRole(RoleEmployer), s.createProfile)
	api.PUT("/companies/profile", s.requireRole(RoleEmployer), s.updateProfile)

	api.POST("/upload/resume", s.requireRole(RoleCandidate), s.uploadResume)
	api.GET("/upload/resumes", s.requireRole(RoleCandidate), s.listResumes)
	api.POST("/upload/logo", s.requireRole(RoleEmployer), s.uploadLogo)
	api.GET("/uploads/:name", s.file)
	return engine
}

func (s *Server) holdMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := ctx.Request.Method + " " + strings.TrimPrefix(ctx.FullPath(), "/api")
		if h, ok := s.holds.LoadAndDelete(key); ok {
			close(h.arrived)
			<-h.release
		}
		ctx.Next()
	}
}

// authMiddleware 只解析身份，是否必须登录由 requireRole 判断
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := strings.CutPrefix(ctx.GetHeader("Authorization"), "Bearer ")
		if ok {
			s.mu.Lock()
			u, found := s.users[token]
			s.mu.Unlock()
			if found {
				ctx.Set("user", u)
			}
		}
		ctx.Next()
	}
}

func (s *Server) requireRole(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		u, ok := currentUser(ctx)
		if !ok {
			abort(ctx, http.StatusUnauthorized, 0, "未登录")
			return
		}
		if u.role != role {
			abort(ctx, http.StatusForbidden, 0, "没有权限")
			return
		}
		ctx.Next()
	}
}

func currentUser(ctx *gin.Context) (user, bool) {
	val, ok := ctx.Get("user")
	if !ok {
		return user{}, false
	}
	u, ok := val.(user)
	return u, ok
}

func abort(ctx *gin.Context, status int, code int64, msg string) {
	ctx.AbortWithStatusJSON(status, gin.H{"code": code, "msg": msg})
}

// now 保证创建时间严格递增，按时间排序的结果才稳定
func (s *Server) now() int64 {
	t := time.Now().UnixMilli()
	if t <= s.clock {
		t = s.clock + 1
	}
	s.clock = t
	return t
}
