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
	"net/http"

	"github.com/ecodeclub/jobboard/internal/portal/domain"
)

type ApplicationAPI struct {
	c *Client
}

func (api *ApplicationAPI) Submit(ctx context.Context, draft domain.ApplicationDraft) (domain.Application, error) {
	body, err := api.c.execute(api.c.R(ctx).SetBody(draft), http.MethodPost, "/applications")
	if err != nil {
		return domain.Application{}, err
	}
	return decodeOne[domain.Application](body)
}

func (api *ApplicationAPI) Mine(ctx context.Context) ([]domain.Application, error) {
	body, err := api.c.execute(api.c.R(ctx), http.MethodGet, "/applications/my")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Application](body, "applications", "list")
}

func (api *ApplicationAPI) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (domain.Application, error) {
	req := api.c.R(ctx).
		SetPathParam("id", id).
		SetBody(map[string]any{"status": status})
	body, err := api.c.execute(req, http.MethodPatch, "/applications/{id}/status")
	if err != nil {
		return domain.Application{}, err
	}
	return decodeOne[domain.Application](body)
}

// Withdraw 候选人撤回，只有 PENDING 状态才可以
func (api *ApplicationAPI) Withdraw(ctx context.Context, id string) error {
	_, err := api.c.execute(api.c.R(ctx).SetPathParam("id", id), http.MethodDelete, "/applications/{id}")
	return err
}
