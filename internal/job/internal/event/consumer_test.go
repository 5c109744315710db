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

package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	jobmocks "github.com/ecodeclub/jobboard/internal/job/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestApplicationEvent_Deltas(t *testing.T) {
	testCases := []struct {
		name        string
		evt         ApplicationEvent
		wantTotal   int64
		wantPending int64
	}{
		{
			name:        "新投递",
			evt:         ApplicationEvent{Type: ApplicationCreated, NewStatus: "PENDING"},
			wantTotal:   1,
			wantPending: 1,
		},
		{
			name:        "撤回",
			evt:         ApplicationEvent{Type: ApplicationWithdrawn, OldStatus: "PENDING"},
			wantTotal:   -1,
			wantPending: -1,
		},
		{
			name:        "开始处理",
			evt:         ApplicationEvent{Type: ApplicationStatusChanged, OldStatus: "PENDING", NewStatus: "REVIEWED"},
			wantPending: -1,
		},
		{
			name:        "退回待处理",
			evt:         ApplicationEvent{Type: ApplicationStatusChanged, OldStatus: "REJECTED", NewStatus: "PENDING"},
			wantPending: 1,
		},
		{
			name: "处理中之间流转",
			evt:  ApplicationEvent{Type: ApplicationStatusChanged, OldStatus: "REVIEWED", NewStatus: "SHORTLISTED"},
		},
		{
			name: "未知类型",
			evt:  ApplicationEvent{Type: "unknown"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			total, pending := tc.evt.Deltas()
			assert.Equal(t, tc.wantTotal, total)
			assert.Equal(t, tc.wantPending, pending)
		})
	}
}

func TestApplicationEventConsumer_Consume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), ApplicationEventTopic, 1))
	svc := jobmocks.NewMockService(ctrl)
	svc.EXPECT().AdjustCounters(gomock.Any(), int64(11), int64(1), int64(1)).Return(nil)

	consumer, err := NewApplicationEventConsumer(svc, q)
	require.NoError(t, err)
	defer consumer.Stop(context.Background())

	producer, err := q.Producer(ApplicationEventTopic)
	require.NoError(t, err)
	data, err := json.Marshal(ApplicationEvent{Type: ApplicationCreated, JobID: 11, ApplicationID: 21, NewStatus: "PENDING"})
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))
}
