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

package ioc

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/jobboard/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/gotomicro/ego/core/econf"
)

type topicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

// InitMQ 生产环境用 kafka，启动的时候创建好 topic，发送和消费都带上 trace
func InitMQ() mq.MQ {
	type Config struct {
		Network   string        `yaml:"network"`
		Addresses []string      `yaml:"addresses"`
		Topics    []topicConfig `yaml:"topics"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("kafka", &cfg); err != nil {
		panic(err)
	}
	q, err := kafka.NewMQ(cfg.Network, cfg.Addresses)
	if err != nil {
		panic(err)
	}
	if err = createTopics(q, cfg.Topics); err != nil {
		panic(err)
	}
	return mqx.NewTraceMQ(q)
}

func createTopics(q mq.MQ, topics []topicConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, t := range topics {
		if err := q.CreateTopic(ctx, t.Name, t.Partitions); err != nil {
			return fmt.Errorf("创建Topic失败: Topic = %s, Partitions = %d: %w", t.Name, t.Partitions, err)
		}
	}
	return nil
}
