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

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobDraft_Validate(t *testing.T) {
	validDraft := func() JobDraft {
		return JobDraft{
			Title:           "Go 后端工程师",
			Description:     "负责招聘系统",
			JobType:         JobTypeFullTime,
			ExperienceLevel: ExperienceMid,
			Location:        "Shanghai",
			SalaryCurrency:  "CNY",
			Visibility:      VisibilityPublic,
		}
	}
	testCases := []struct {
		name    string
		draft   func() JobDraft
		wantErr error
	}{
		{
			name:  "合法",
			draft: validDraft,
		},
		{
			name: "最低薪资高于最高薪资",
			draft: func() JobDraft {
				d := validDraft()
				d.SalaryMin = ptr(5000.0)
				d.SalaryMax = ptr(3000.0)
				return d
			},
			wantErr: ErrSalaryRange,
		},
		{
			name: "薪资相等",
			draft: func() JobDraft {
				d := validDraft()
				d.SalaryMin = ptr(3000.0)
				d.SalaryMax = ptr(3000.0)
				return d
			},
		},
		{
			name: "只有最低薪资",
			draft: func() JobDraft {
				d := validDraft()
				d.SalaryMin = ptr(5000.0)
				return d
			},
		},
		{
			name: "负数薪资",
			draft: func() JobDraft {
				d := validDraft()
				d.SalaryMax = ptr(-1.0)
				return d
			},
			wantErr: ErrInvalid,
		},
		{
			name: "缺少标题",
			draft: func() JobDraft {
				d := validDraft()
				d.Title = ""
				return d
			},
			wantErr: ErrInvalid,
		},
		{
			name: "非法职位类型",
			draft: func() JobDraft {
				d := validDraft()
				d.JobType = "Gig"
				return d
			},
			wantErr: ErrInvalid,
		},
		{
			name: "远程职位可以不填地点",
			draft: func() JobDraft {
				d := validDraft()
				d.Location = ""
				d.Remote = true
				return d
			},
		},
		{
			name: "非远程职位必须填地点",
			draft: func() JobDraft {
				d := validDraft()
				d.Location = ""
				return d
			},
			wantErr: ErrInvalid,
		},
		{
			name: "标签超过上限",
			draft: func() JobDraft {
				d := validDraft()
				for i := 0; i < 11; i++ {
					d.Tags = append(d.Tags, fmt.Sprintf("tag-%d", i))
				}
				return d
			},
			wantErr: ErrTooManyTags,
		},
		{
			name: "非法币种",
			draft: func() JobDraft {
				d := validDraft()
				d.SalaryCurrency = "XXXX"
				return d
			},
			wantErr: ErrInvalid,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.draft().Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestJobDraft_AddTag(t *testing.T) {
	var d JobDraft
	for i := 0; i < MaxTags; i++ {
		require.True(t, d.AddTag(fmt.Sprintf("tag-%d", i)))
	}
	assert.False(t, d.AddTag("tag-11"))
	assert.Len(t, d.Tags, MaxTags)
	assert.Equal(t, "tag-0", d.Tags[0])
	assert.Equal(t, "tag-9", d.Tags[9])

	d.RemoveTag("tag-3")
	assert.Len(t, d.Tags, MaxTags-1)
	assert.False(t, d.AddTag("tag-4"), "重复的标签")
	assert.False(t, d.AddTag("  "), "空标签")
	assert.True(t, d.AddTag(" go "))
	assert.Equal(t, "go", d.Tags[len(d.Tags)-1])
}

func TestJobPatch_Validate(t *testing.T) {
	closed := JobStatusClosed
	unknown := JobStatus("OPEN")
	assert.NoError(t, JobPatch{Status: &closed}.Validate())
	assert.ErrorIs(t, JobPatch{Status: &unknown}.Validate(), ErrInvalid)
	assert.ErrorIs(t, JobPatch{SalaryMin: ptr(10.0), SalaryMax: ptr(1.0)}.Validate(), ErrSalaryRange)
}

func TestVisibility_InitialStatus(t *testing.T) {
	assert.Equal(t, JobStatusDraft, VisibilityDraft.InitialStatus())
	assert.Equal(t, JobStatusActive, VisibilityPublic.InitialStatus())
	assert.Equal(t, JobStatusActive, VisibilityUnlisted.InitialStatus())
}

func TestJob_Clone(t *testing.T) {
	j := Job{ID: "1", Tags: []string{"go"}, SalaryMin: ptr(1.0)}
	c := j.Clone()
	c.Tags[0] = "java"
	*c.SalaryMin = 2
	assert.Equal(t, "go", j.Tags[0])
	assert.Equal(t, 1.0, *j.SalaryMin)
}

func ptr[T any](v T) *T {
	return &v
}
