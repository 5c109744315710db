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

package portal

import (
	"context"

	"github.com/ecodeclub/jobboard/internal/portal/client"
	"github.com/ecodeclub/jobboard/internal/portal/session"
	"github.com/ecodeclub/jobboard/internal/portal/state"
)

type (
	Store  = state.Store
	Client = client.Client
)

type Module struct {
	Session *session.Service
	Client  *Client
	Store   *Store
}

// Init 恢复上次保存的登录态
func (m *Module) Init(ctx context.Context) error {
	return m.Session.Init(ctx)
}

// Login 保存登录凭证，之后的请求都会带上
func (m *Module) Login(token string, user session.User) error {
	return m.Session.Login(token, user)
}

// Logout 清掉登录态和 store 里面的数据
func (m *Module) Logout() error {
	err := m.Session.Logout()
	m.Store.Reset()
	return err
}
