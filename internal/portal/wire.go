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

//go:build wireinject

package portal

import (
	"github.com/ecodeclub/jobboard/internal/portal/client"
	"github.com/ecodeclub/jobboard/internal/portal/session"
	"github.com/ecodeclub/jobboard/internal/portal/state"
	"github.com/google/wire"
)

func InitModule(cfg Config) (*Module, error) {
	wire.Build(
		initStorage,
		session.NewService,
		initClient,
		initStore,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initStorage(cfg Config) session.Storage {
	if cfg.SessionFile == "" {
		return session.NewMemoryStorage()
	}
	return session.NewFileStorage(cfg.SessionFile)
}

func initClient(cfg Config, sess *session.Service) *client.Client {
	return client.New(cfg.BaseURL, sess)
}

func initStore(cfg Config, c *client.Client) *state.Store {
	var opts []state.Option
	if cfg.Fencing {
		opts = append(opts, state.WithRequestFencing())
	}
	return state.NewStore(state.FromClient(c), opts...)
}
