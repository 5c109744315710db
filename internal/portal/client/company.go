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

type CompanyAPI struct {
	c *Client
}

func (api *CompanyAPI) Profile(ctx context.Context) (domain.CompanyProfile, error) {
	body, err := api.c.execute(api.c.R(ctx), http.MethodGet, "/companies/profile")
	if err != nil {
		return domain.CompanyProfile{}, err
	}
	return decodeOne[domain.CompanyProfile](body)
}

func (api *CompanyAPI) CreateProfile(ctx context.Context, p domain.CompanyProfile) (domain.CompanyProfile, error) {
	return api.save(ctx, http.MethodPost, p)
}

func (api *CompanyAPI) UpdateProfile(ctx context.Context, p domain.CompanyProfile) (domain.CompanyProfile, error) {
	return api.save(ctx, http.MethodPut, p)
}

func (api *CompanyAPI) save(ctx context.Context, method string, p domain.CompanyProfile) (domain.CompanyProfile, error) {
	body, err := api.c.execute(api.c.R(ctx).SetBody(p), method, "/companies/profile")
	if err != nil {
		return domain.CompanyProfile{}, err
	}
	return decodeOne[domain.CompanyProfile](body)
}

// UploadLogo 返回 logo 的访问地址
func (api *CompanyAPI) UploadLogo(ctx context.Context, u domain.Upload) (string, error) {
	u, err := domain.ValidateLogo(u)
	if err != nil {
		return "", err
	}
	req := api.c.R(ctx).SetFileReader("logo", u.Name, u.Reader)
	body, err := api.c.execute(req, http.MethodPost, "/upload/logo")
	if err != nil {
		return "", err
	}
	type logoResp struct {
		URL string `json:"url"`
	}
	res, err := decodeOne[logoResp](body)
	return res.URL, err
}
