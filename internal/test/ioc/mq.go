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

package testioc

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
)

var (
	q          mq.MQ
	mqInitOnce sync.Once
)

// InitMQ 测试用内存实现，所有模块共用同一个实例
func InitMQ() mq.MQ {
	mqInitOnce.Do(func() {
		mem := memory.NewMQ()
		// 和 config 里面 kafka.topics 保持一致
		for name, partitions := range map[string]int{
			"application_events": 1,
		} {
			if err := mem.CreateTopic(context.Background(), name, partitions); err != nil {
				panic(err)
			}
		}
		q = mem
	})
	return q
}
