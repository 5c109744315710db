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
	"fmt"

	"github.com/ecodeclub/jobboard/internal/job/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type ApplicationEventConsumer struct {
	consumer mq.Consumer
	svc      service.Service
	logger   *elog.Component
	cancel   context.CancelFunc
}

func NewApplicationEventConsumer(svc service.Service, q mq.MQ) (*ApplicationEventConsumer, error) {
	const groupID = "job_counter"
	consumer, err := q.Consumer(ApplicationEventTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &ApplicationEventConsumer{
		consumer: consumer,
		svc:      svc,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *ApplicationEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt ApplicationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	total, pending := evt.Deltas()
	err = c.svc.AdjustCounters(ctx, evt.JobID, total, pending)
	if err != nil {
		c.logger.Error("更新职位投递计数失败", elog.Any("application_event", evt))
	}
	return err
}

func (c *ApplicationEventConsumer) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费投递事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *ApplicationEventConsumer) Stop(_ context.Context) error {
	if c.cancel != nil {
		c.cancel()
	}
	return c.consumer.Close()
}
