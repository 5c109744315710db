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
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/jobboard/internal/portal/domain"
	"github.com/tidwall/gjson"
)

// 服务端几种响应格式：
//   - 裸资源或者裸数组
//   - {success, data}
//   - {code, msg, data}
//   - {jobs, total, totalPages}，也可能被包在 data 里面
// 在这里统一拆掉外层，调用方只拿到具体类型

func payloadOf(body []byte) (gjson.Result, error) {
	if len(body) == 0 {
		return gjson.Result{}, nil
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, ErrUnexpectedShape
	}
	r := gjson.ParseBytes(body)
	if !r.IsObject() {
		return r, nil
	}
	success := r.Get("success")
	if success.Exists() && !success.Bool() {
		msg := r.Get("message").String()
		if msg == "" {
			msg = r.Get("msg").String()
		}
		return gjson.Result{}, fmt.Errorf("%w: %s", ErrServer, msg)
	}
	data := r.Get("data")
	if data.Exists() && (success.Exists() || r.Get("code").Exists()) {
		return data, nil
	}
	return r, nil
}

func decodeOne[T any](body []byte) (T, error) {
	var res T
	p, err := payloadOf(body)
	if err != nil {
		return res, err
	}
	if !p.IsObject() {
		return res, ErrUnexpectedShape
	}
	if err = json.Unmarshal([]byte(p.Raw), &res); err != nil {
		return res, fmt.Errorf("%w: %w", ErrUnexpectedShape, err)
	}
	return res, nil
}

// decodeList 兼容裸数组和 {keys: [...]} 两种格式
func decodeList[T any](body []byte, keys ...string) ([]T, error) {
	p, err := payloadOf(body)
	if err != nil {
		return nil, err
	}
	switch {
	case !p.Exists() || p.Type == gjson.Null:
		return []T{}, nil
	case p.IsArray():
	case p.IsObject():
		found := false
		for _, key := range keys {
			if v := p.Get(key); v.IsArray() {
				p, found = v, true
				break
			}
		}
		if !found {
			return nil, ErrUnexpectedShape
		}
	default:
		return nil, ErrUnexpectedShape
	}
	res := make([]T, 0, len(p.Array()))
	if err = json.Unmarshal([]byte(p.Raw), &res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedShape, err)
	}
	return res, nil
}

// decodeJobPage 列表接口可能返回分页对象，也可能直接返回数组
func decodeJobPage(body []byte, params JobListParams) (domain.JobPage, error) {
	p, err := payloadOf(body)
	if err != nil {
		return domain.JobPage{}, err
	}
	var page domain.JobPage
	switch {
	case p.IsArray():
		if err = json.Unmarshal([]byte(p.Raw), &page.Items); err != nil {
			return domain.JobPage{}, fmt.Errorf("%w: %w", ErrUnexpectedShape, err)
		}
		page.Total = int64(len(page.Items))
		page.TotalPages = 1
		if page.Total == 0 {
			page.TotalPages = 0
		}
	case p.IsObject() && p.Get("jobs").Exists():
		if err = json.Unmarshal([]byte(p.Raw), &page); err != nil {
			return domain.JobPage{}, fmt.Errorf("%w: %w", ErrUnexpectedShape, err)
		}
	default:
		return domain.JobPage{}, ErrUnexpectedShape
	}
	if page.Items == nil {
		page.Items = []domain.Job{}
	}
	if page.Page == 0 {
		page.Page = params.Page
	}
	if page.Limit == 0 {
		page.Limit = params.Limit
	}
	return page, nil
}
