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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/jobboard/internal/job/internal/service"
	jobmocks "github.com/ecodeclub/jobboard/internal/job/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCloseExpiredJobsJob_Run(t *testing.T) {
	const limit = 2
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) service.Service
		wantErr error
	}{
		{
			name: "不足一批就结束",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := jobmocks.NewMockService(ctrl)
				svc.EXPECT().CloseExpired(gomock.Any(), gomock.Any(), limit).Return(1, nil)
				return svc
			},
		},
		{
			name: "满一批继续关闭",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := jobmocks.NewMockService(ctrl)
				gomock.InOrder(
					svc.EXPECT().CloseExpired(gomock.Any(), gomock.Any(), limit).Return(limit, nil),
					svc.EXPECT().CloseExpired(gomock.Any(), gomock.Any(), limit).Return(limit, nil),
					svc.EXPECT().CloseExpired(gomock.Any(), gomock.Any(), limit).Return(0, nil),
				)
				return svc
			},
		},
		{
			name: "出错直接返回",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := jobmocks.NewMockService(ctrl)
				svc.EXPECT().CloseExpired(gomock.Any(), gomock.Any(), limit).Return(0, errors.New("mock db error"))
				return svc
			},
			wantErr: errors.New("关闭过期职位失败: mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			job := NewCloseExpiredJobsJob(tc.mock(ctrl), limit, time.Second)
			err := job.Run(context.Background())
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
