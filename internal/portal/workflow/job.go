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

package workflow

import (
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/jobboard/internal/portal/domain"
)

var (
	ErrJobClosed         = errors.New("职位已关闭，不能重新开启")
	ErrIllegalTransition = errors.New("不支持的职位状态变更")
)

// ValidateJobTransition DRAFT -> ACTIVE，DRAFT/ACTIVE -> CLOSED，关闭之后不可逆
func ValidateJobTransition(from, to domain.JobStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	if from == to {
		return nil
	}
	switch {
	case from == domain.JobStatusClosed:
		return ErrJobClosed
	case to == domain.JobStatusClosed:
		return nil
	case from == domain.JobStatusDraft && to == domain.JobStatusActive:
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
}

func CanClose(j domain.Job) bool {
	return j.Status != domain.JobStatusClosed
}

// AcceptsApplications 只有 ACTIVE 并且没有过截止日期的职位可以投递
func AcceptsApplications(j domain.Job, now time.Time) bool {
	if j.Status != domain.JobStatusActive {
		return false
	}
	return j.Deadline == nil || *j.Deadline >= now.UnixMilli()
}
