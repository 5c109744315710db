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

package session

import (
	"context"
	"errors"
	"sync"

	"github.com/gotomicro/ego/core/elog"
)

type Role string

const (
	RoleEmployer  Role = "employer"
	RoleCandidate Role = "candidate"
)

// User 持久化的最少用户信息
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type Snapshot struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (s Snapshot) LoggedIn() bool {
	return s.Token != ""
}

var ErrEmptyToken = errors.New("token 不能为空")

// Service 进程内唯一的登录态，启动时 Init 读取持久化数据，登出时清空
type Service struct {
	storage Storage
	logger  *elog.Component

	mu   sync.RWMutex
	snap Snapshot
}

func NewService(storage Storage) *Service {
	return &Service{
		storage: storage,
		logger:  elog.DefaultLogger,
	}
}

func (s *Service) Init(_ context.Context) error {
	snap, err := s.storage.Load()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return nil
}

func (s *Service) Login(token string, user User) error {
	if token == "" {
		return ErrEmptyToken
	}
	snap := Snapshot{Token: token, User: user}
	if err := s.storage.Save(snap); err != nil {
		return err
	}
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return nil
}

// Logout 内存里面的登录态总是会被清掉，持久化失败只返回错误
func (s *Service) Logout() error {
	s.mu.Lock()
	s.snap = Snapshot{}
	s.mu.Unlock()
	err := s.storage.Clear()
	if err != nil {
		s.logger.Error("清理持久化登录态失败", elog.FieldErr(err))
	}
	return err
}

func (s *Service) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Token
}

func (s *Service) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
