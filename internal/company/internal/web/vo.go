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

package web

import "github.com/ecodeclub/jobboard/internal/company/internal/domain"

type SaveProfileReq struct {
	CompanyName  string `json:"companyName" validate:"required,max=200"`
	Description  string `json:"description"`
	Website      string `json:"website" validate:"omitempty,url"`
	Industry     string `json:"industry"`
	Size         string `json:"size"`
	Location     string `json:"location"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone string `json:"contactPhone" validate:"max=64"`
	Logo         string `json:"logo"`
}

func (r SaveProfileReq) toDomain(uid int64) domain.Profile {
	return domain.Profile{
		Uid:          uid,
		CompanyName:  r.CompanyName,
		Description:  r.Description,
		Website:      r.Website,
		Industry:     r.Industry,
		Size:         r.Size,
		Location:     r.Location,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Logo:         r.Logo,
	}
}

type ProfileVO struct {
	CompanyName  string `json:"companyName"`
	Description  string `json:"description"`
	Website      string `json:"website"`
	Industry     string `json:"industry"`
	Size         string `json:"size"`
	Location     string `json:"location"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Logo         string `json:"logo"`
	Completed    bool   `json:"completed"`
	Ctime        int64  `json:"ctime"`
	Utime        int64  `json:"utime"`
}

func newProfileVO(p domain.Profile) ProfileVO {
	return ProfileVO{
		CompanyName:  p.CompanyName,
		Description:  p.Description,
		Website:      p.Website,
		Industry:     p.Industry,
		Size:         p.Size,
		Location:     p.Location,
		ContactEmail: p.ContactEmail,
		ContactPhone: p.ContactPhone,
		Logo:         p.Logo,
		Completed:    p.Completed(),
		Ctime:        p.Ctime,
		Utime:        p.Utime,
	}
}
