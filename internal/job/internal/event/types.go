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

const ApplicationEventTopic = "application_events"

const (
	ApplicationCreated       = "created"
	ApplicationStatusChanged = "status_changed"
	ApplicationWithdrawn     = "withdrawn"
)

const statusPending = "PENDING"

// ApplicationEvent 投递变化之后由投递模块发出，用来维护职位上的计数
type ApplicationEvent struct {
	Type          string `json:"type"`
	JobID         int64  `json:"jobId"`
	ApplicationID int64  `json:"applicationId"`
	OldStatus     string `json:"oldStatus"`
	NewStatus     string `json:"newStatus"`
}

// Deltas 返回投递总数和待处理数量的变化
func (evt ApplicationEvent) Deltas() (total int64, pending int64) {
	switch evt.Type {
	case ApplicationCreated:
		return 1, pendingOf(evt.NewStatus)
	case ApplicationWithdrawn:
		return -1, -pendingOf(evt.OldStatus)
	case ApplicationStatusChanged:
		return 0, pendingOf(evt.NewStatus) - pendingOf(evt.OldStatus)
	}
	return 0, 0
}

func pendingOf(status string) int64 {
	if status == statusPending {
		return 1
	}
	return 0
}
