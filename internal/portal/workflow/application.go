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

// Package workflow 投递状态机和职位生命周期。
// 投递状态机是宽松的：只要是合法的状态就接受，是否合理由服务端决定，
// 这里只决定界面上提供哪些操作。
package workflow

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ecodeclub/jobboard/internal/portal/domain"
)

var (
	ErrInvalidStatus      = errors.New("非法的状态")
	ErrWithdrawNotAllowed = errors.New("只有待处理的投递可以撤回")
)

// Action 招聘方在界面上的操作
type Action string

const (
	ActionReview    Action = "review"
	ActionShortlist Action = "shortlist"
	ActionReject    Action = "reject"
)

var actionTargets = map[Action]domain.ApplicationStatus{
	ActionReview:    domain.ApplicationReviewed,
	ActionShortlist: domain.ApplicationShortlisted,
	ActionReject:    domain.ApplicationRejected,
}

func Target(a Action) (domain.ApplicationStatus, bool) {
	s, ok := actionTargets[a]
	return s, ok
}

// Actions 只提供往前走的操作，当前状态对应的操作不会出现
func Actions(s domain.ApplicationStatus) []Action {
	switch s {
	case domain.ApplicationPending:
		return []Action{ActionReview, ActionShortlist, ActionReject}
	case domain.ApplicationReviewed:
		return []Action{ActionShortlist, ActionReject}
	default:
		return nil
	}
}

// Offers 判断界面上是否提供从 from 到 to 的操作
func Offers(from, to domain.ApplicationStatus) bool {
	return slices.ContainsFunc(Actions(from), func(a Action) bool {
		return actionTargets[a] == to
	})
}

// IsTerminal 只是约定，服务端依旧可以把状态改回去
func IsTerminal(s domain.ApplicationStatus) bool {
	return s == domain.ApplicationShortlisted || s == domain.ApplicationRejected
}

func CanWithdraw(s domain.ApplicationStatus) bool {
	return s == domain.ApplicationPending
}

// Transition 不校验迁移是否合理，相同状态返回 changed=false
func Transition(app domain.Application, to domain.ApplicationStatus) (domain.Application, bool, error) {
	if !to.Valid() {
		return app, false, fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	if app.Status == to {
		return app, false, nil
	}
	app.Status = to
	return app, true, nil
}

// ReplaceByID 返回新的切片，入参不变
func ReplaceByID(list []domain.Application, app domain.Application) []domain.Application {
	res := slices.Clone(list)
	for i := range res {
		if res[i].ID == app.ID {
			res[i] = app
		}
	}
	return res
}
