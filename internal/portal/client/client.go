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
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/elog"
)

// 和服务端约定好的业务错误码
const (
	CodeProfileIncomplete    int64 = 422002
	CodeJobNotAccepting      int64 = 423001
	CodeDuplicateApplication int64 = 423002
	CodeWithdrawNotAllowed   int64 = 423004
)

// TokenSource 提供登录凭证，没有登录的时候返回空字符串
type TokenSource interface {
	Token() string
}

// Client 只负责发请求和归一化响应，不重试，不缓存，也不设置超时
type Client struct {
	rc     *resty.Client
	logger *elog.Component

	Company      *CompanyAPI
	Jobs         *JobAPI
	Applications *ApplicationAPI
	Resumes      *ResumeAPI
}

type Option func(rc *resty.Client)

// WithTransport 替换底层的 RoundTripper
func WithTransport(rt http.RoundTripper) Option {
	return func(rc *resty.Client) {
		rc.SetTransport(rt)
	}
}

func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	for _, opt := range opts {
		opt(rc)
	}
	rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if tokens == nil {
			return nil
		}
		if token := tokens.Token(); token != "" {
			req.SetAuthToken(token)
		}
		return nil
	})
	c := &Client{
		rc:     rc,
		logger: elog.DefaultLogger,
	}
	c.Company = &CompanyAPI{c: c}
	c.Jobs = &JobAPI{c: c}
	c.Applications = &ApplicationAPI{c: c}
	c.Resumes = &ResumeAPI{c: c}
	return c
}

func (c *Client) R(ctx context.Context) *resty.Request {
	return c.rc.R().SetContext(ctx)
}

// execute 发送请求，非 2xx 的响应统一转成 *APIError
func (c *Client) execute(req *resty.Request, method, url string) ([]byte, error) {
	resp, err := req.Execute(method, url)
	if err != nil {
		c.logger.Debug("请求失败", elog.String("method", method), elog.String("url", url), elog.FieldErr(err))
		return nil, newNetworkError(err)
	}
	if resp.IsError() {
		apiErr := newStatusError(resp.StatusCode(), resp.Body())
		c.logger.Debug("请求返回错误",
			elog.String("method", method),
			elog.String("url", url),
			elog.Int("status", resp.StatusCode()),
			elog.FieldErr(apiErr))
		return nil, apiErr
	}
	return resp.Body(), nil
}
