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

package cronjob

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/jobboard/internal/job/internal/service"
)

// CloseExpiredJobsJob 过了截止时间的职位自动关闭
type CloseExpiredJobsJob struct {
	svc     service.Service
	limit   int
	timeout time.Duration
}

func NewCloseExpiredJobsJob(svc service.Service, limit int, timeout time.Duration) *CloseExpiredJobsJob {
	return &CloseExpiredJobsJob{svc: svc, limit: limit, timeout: timeout}
}

func (c *CloseExpiredJobsJob) Name() string {
	return "CloseExpiredJobsJob"
}

func (c *CloseExpiredJobsJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	now := time.Now()
	for {
		n, err := c.svc.CloseExpired(ctx, now, c.limit)
		if err != nil {
			return fmt.Errorf("关闭过期职位失败: %w", err)
		}
		if n < c.limit {
			return nil
		}
	}
}
