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

package domain

import "strings"

// CompanyProfile 招聘方的公司资料，每个招聘方一份
type CompanyProfile struct {
	CompanyName  string `json:"companyName" validate:"required,max=200"`
	Description  string `json:"description"`
	Website      string `json:"website" validate:"omitempty,url"`
	Industry     string `json:"industry"`
	Size         string `json:"size"`
	Location     string `json:"location"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`
	Logo         string `json:"logo"`
	Completed    bool   `json:"completed"`
}

// IsComplete 必填字段都不为空才算完善，和服务端的判定保持一致
func (p CompanyProfile) IsComplete() bool {
	for _, f := range []string{p.CompanyName, p.Description, p.Industry, p.Size, p.Location, p.ContactEmail} {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}

func (p CompanyProfile) Validate() error {
	return validateStruct(p)
}

type Resume struct {
	ID           string `json:"id"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
	CreatedAt    int64  `json:"createdAt"`
}
