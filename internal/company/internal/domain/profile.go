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

// Profile 招聘方的公司资料，一个招聘方只有一份
type Profile struct {
	Uid          int64
	CompanyName  string
	Description  string
	Website      string
	Industry     string
	Size         string
	Location     string
	ContactEmail string
	ContactPhone string
	Logo         string
	Ctime        int64
	Utime        int64
}

// Completed 发布职位之前这些字段都要填
func (p Profile) Completed() bool {
	for _, f := range []string{p.CompanyName, p.Description, p.Industry,
		p.Size, p.Location, p.ContactEmail} {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}
