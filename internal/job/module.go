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

package job

import (
	"github.com/ecodeclub/jobboard/internal/job/internal/cronjob"
	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/job/internal/event"
	"github.com/ecodeclub/jobboard/internal/job/internal/service"
	"github.com/ecodeclub/jobboard/internal/job/internal/web"
)

const ApplicationEventTopic = event.ApplicationEventTopic

const (
	ApplicationCreated       = event.ApplicationCreated
	ApplicationStatusChanged = event.ApplicationStatusChanged
	ApplicationWithdrawn     = event.ApplicationWithdrawn
)

var (
	ErrJobNotFound      = service.ErrJobNotFound
	ErrJobNotAccepting  = service.ErrJobNotAccepting
	ErrPermissionDenied = service.ErrPermissionDenied
)

type (
	Handler                  = web.Handler
	Service                  = service.Service
	Job                      = domain.Job
	Status                   = domain.Status
	Visibility               = domain.Visibility
	ApplicationEvent         = event.ApplicationEvent
	ApplicationEventConsumer = event.ApplicationEventConsumer
	CloseExpiredJobsJob      = cronjob.CloseExpiredJobsJob
)

const (
	StatusDraft  = domain.StatusDraft
	StatusActive = domain.StatusActive
	StatusClosed = domain.StatusClosed

	VisibilityPublic   = domain.VisibilityPublic
	VisibilityUnlisted = domain.VisibilityUnlisted
	VisibilityDraft    = domain.VisibilityDraft
)

type Module struct {
	Hdl                 *Handler
	Svc                 Service
	Consumer            *ApplicationEventConsumer
	CloseExpiredJobsJob *CloseExpiredJobsJob
}
