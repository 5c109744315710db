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
	"context"

	"github.com/ecodeclub/jobboard/internal/portal/domain"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// bulkConcurrency 批量操作同时在途的请求数
const bulkConcurrency = 4

// BulkResult Updated 和 Failed 都按照入参顺序排列
type BulkResult struct {
	Updated []domain.Application
	Failed  []string
}

// Bulk 每个 id 单独发一次请求，互不影响，部分失败也不回滚
func Bulk(ctx context.Context, u StatusUpdater, ids []string, status domain.ApplicationStatus) BulkResult {
	apps := make([]domain.Application, len(ids))
	errs := make([]error, len(ids))
	var eg errgroup.Group
	eg.SetLimit(bulkConcurrency)
	for i, id := range ids {
		eg.Go(func() error {
			apps[i], errs[i] = u.UpdateApplicationStatus(ctx, id, status)
			return nil
		})
	}
	_ = eg.Wait()

	var res BulkResult
	for i, id := range ids {
		if errs[i] != nil {
			elog.DefaultLogger.Debug("批量更新投递状态失败",
				elog.String("id", id),
				elog.String("status", string(status)),
				elog.FieldErr(errs[i]))
			res.Failed = append(res.Failed, id)
			continue
		}
		res.Updated = append(res.Updated, apps[i])
	}
	return res
}
