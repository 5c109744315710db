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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/jobboard/internal/portal/domain"
	"github.com/ecodeclub/jobboard/internal/portal/query"
	workflowmocks "github.com/ecodeclub/jobboard/internal/portal/workflow/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestActions(t *testing.T) {
	testCases := []struct {
		status       domain.ApplicationStatus
		want         []Action
		terminal     bool
		canWithdraw  bool
		offersSelf   bool
		offersReject bool
	}{
		{status: domain.ApplicationPending, want: []Action{ActionReview, ActionShortlist, ActionReject}, canWithdraw: true, offersReject: true},
		{status: domain.ApplicationReviewed, want: []Action{ActionShortlist, ActionReject}, offersReject: true},
		{status: domain.ApplicationShortlisted, terminal: true},
		{status: domain.ApplicationRejected, terminal: true},
	}
	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.want, Actions(tc.status))
			assert.Equal(t, tc.terminal, IsTerminal(tc.status))
			assert.Equal(t, tc.canWithdraw, CanWithdraw(tc.status))
			assert.False(t, Offers(tc.status, tc.status), "不提供当前状态对应的操作")
			assert.Equal(t, tc.offersReject, Offers(tc.status, domain.ApplicationRejected))
		})
	}
}

func TestTransition(t *testing.T) {
	app := domain.Application{ID: "1", Status: domain.ApplicationShortlisted}

	res, changed, err := Transition(app, domain.ApplicationShortlisted)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, app, res)

	// 宽松状态机：终态也可以被改回去
	res, changed, err = Transition(app, domain.ApplicationPending)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, domain.ApplicationPending, res.Status)
	assert.Equal(t, domain.ApplicationShortlisted, app.Status)

	_, _, err = Transition(app, "ARCHIVED")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestValidateJobTransition(t *testing.T) {
	testCases := []struct {
		name    string
		from    domain.JobStatus
		to      domain.JobStatus
		wantErr error
	}{
		{name: "发布草稿", from: domain.JobStatusDraft, to: domain.JobStatusActive},
		{name: "关闭草稿", from: domain.JobStatusDraft, to: domain.JobStatusClosed},
		{name: "关闭职位", from: domain.JobStatusActive, to: domain.JobStatusClosed},
		{name: "重复关闭", from: domain.JobStatusClosed, to: domain.JobStatusClosed},
		{name: "重新开启", from: domain.JobStatusClosed, to: domain.JobStatusActive, wantErr: ErrJobClosed},
		{name: "退回草稿", from: domain.JobStatusActive, to: domain.JobStatusDraft, wantErr: ErrIllegalTransition},
		{name: "未知状态", from: domain.JobStatusActive, to: "OPEN", wantErr: ErrInvalidStatus},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateJobTransition(tc.from, tc.to), tc.wantErr)
		})
	}
}

func TestAcceptsApplications(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	past, future := now.Add(-time.Hour).UnixMilli(), now.Add(time.Hour).UnixMilli()
	assert.True(t, AcceptsApplications(domain.Job{Status: domain.JobStatusActive}, now))
	assert.True(t, AcceptsApplications(domain.Job{Status: domain.JobStatusActive, Deadline: &future}, now))
	assert.False(t, AcceptsApplications(domain.Job{Status: domain.JobStatusActive, Deadline: &past}, now))
	assert.False(t, AcceptsApplications(domain.Job{Status: domain.JobStatusDraft}, now))
	assert.False(t, AcceptsApplications(domain.Job{Status: domain.JobStatusClosed}, now))
}

func TestBulk_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	updater := workflowmocks.NewMockStatusUpdater(ctrl)
	updater.EXPECT().UpdateApplicationStatus(gomock.Any(), "1", domain.ApplicationShortlisted).
		Return(domain.Application{ID: "1", Status: domain.ApplicationShortlisted}, nil)
	updater.EXPECT().UpdateApplicationStatus(gomock.Any(), "2", domain.ApplicationShortlisted).
		Return(domain.Application{}, errors.New("mock error"))
	updater.EXPECT().UpdateApplicationStatus(gomock.Any(), "3", domain.ApplicationShortlisted).
		Return(domain.Application{ID: "3", Status: domain.ApplicationShortlisted}, nil)

	res := Bulk(context.Background(), updater, []string{"1", "2", "3"}, domain.ApplicationShortlisted)
	assert.Equal(t, []string{"2"}, res.Failed)
	assert.Equal(t, []domain.Application{
		{ID: "1", Status: domain.ApplicationShortlisted},
		{ID: "3", Status: domain.ApplicationShortlisted},
	}, res.Updated)
}

func TestReviewBoard(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := workflowmocks.NewMockApplicantSource(ctrl)
	src.EXPECT().LoadJobApplications(gomock.Any(), "job-1").Return([]domain.Application{
		{ID: "1", FullName: "Amy", Status: domain.ApplicationPending, CreatedAt: 1},
		{ID: "2", FullName: "Bob", Status: domain.ApplicationPending, CreatedAt: 2},
		{ID: "3", FullName: "Cat", Status: domain.ApplicationReviewed, CreatedAt: 3},
	}, nil)
	board := NewReviewBoard(src, "job-1")
	require.NoError(t, board.Load(context.Background()))
	assert.Equal(t, map[domain.ApplicationStatus]int{
		domain.ApplicationPending:  2,
		domain.ApplicationReviewed: 1,
	}, board.Counts())

	// 单个操作
	src.EXPECT().UpdateApplicationStatus(gomock.Any(), "3", domain.ApplicationRejected).
		Return(domain.Application{ID: "3", FullName: "Cat", Status: domain.ApplicationRejected, CreatedAt: 3}, nil)
	_, err := board.SetStatus(context.Background(), "3", domain.ApplicationRejected)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationRejected, board.Items()[2].Status)

	// 失败不改本地
	src.EXPECT().UpdateApplicationStatus(gomock.Any(), "1", domain.ApplicationReviewed).
		Return(domain.Application{}, errors.New("mock error"))
	_, err = board.SetStatus(context.Background(), "1", domain.ApplicationReviewed)
	assert.Error(t, err)
	assert.Equal(t, domain.ApplicationPending, board.Items()[0].Status)

	// 批量入围，部分失败
	board.Select("2", "1", "unknown")
	assert.Equal(t, []string{"1", "2"}, board.Selected())
	src.EXPECT().UpdateApplicationStatus(gomock.Any(), "1", domain.ApplicationShortlisted).
		Return(domain.Application{}, errors.New("mock error"))
	src.EXPECT().UpdateApplicationStatus(gomock.Any(), "2", domain.ApplicationShortlisted).
		Return(domain.Application{ID: "2", FullName: "Bob", Status: domain.ApplicationShortlisted, CreatedAt: 2}, nil)
	res := board.BulkSetStatus(context.Background(), domain.ApplicationShortlisted)
	assert.Equal(t, []string{"1"}, res.Failed)
	assert.Equal(t, []string{"1"}, board.Selected())
	items := board.Items()
	assert.Equal(t, domain.ApplicationPending, items[0].Status)
	assert.Equal(t, domain.ApplicationShortlisted, items[1].Status)

	view := board.View(query.ApplicantDescriptor{
		ApplicantFilter: query.ApplicantFilter{Status: domain.ApplicationShortlisted},
	})
	require.Len(t, view.Items, 1)
	assert.Equal(t, "2", view.Items[0].ID)

	board.ClearSelection()
	assert.Empty(t, board.Selected())
	board.SelectAll()
	assert.Equal(t, []string{"1", "2", "3"}, board.Selected())
	board.Deselect("2")
	assert.Equal(t, []string{"1", "3"}, board.Selected())
}

func TestReplaceByID(t *testing.T) {
	list := []domain.Application{{ID: "1"}, {ID: "2"}}
	res := ReplaceByID(list, domain.Application{ID: "2", Status: domain.ApplicationReviewed})
	assert.Equal(t, domain.ApplicationReviewed, res[1].Status)
	assert.Equal(t, domain.ApplicationStatus(""), list[1].Status)
	assert.Equal(t, list, ReplaceByID(list, domain.Application{ID: "404"}))
}
