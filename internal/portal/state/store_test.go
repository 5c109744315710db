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

package state

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/ecodeclub/jobboard/internal/portal/client"
	"github.com/ecodeclub/jobboard/internal/portal/domain"
	statemocks "github.com/ecodeclub/jobboard/internal/portal/state/mocks"
	"github.com/ecodeclub/jobboard/internal/portal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	jobs    *statemocks.MockJobAPI
	apps    *statemocks.MockApplicationAPI
	company *statemocks.MockCompanyAPI
	resumes *statemocks.MockResumeAPI
}

func newMockStore(t *testing.T, opts ...Option) (*Store, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		jobs:    statemocks.NewMockJobAPI(ctrl),
		apps:    statemocks.NewMockApplicationAPI(ctrl),
		company: statemocks.NewMockCompanyAPI(ctrl),
		resumes: statemocks.NewMockResumeAPI(ctrl),
	}
	return NewStore(Gateway{Jobs: m.jobs, Applications: m.apps, Company: m.company, Resumes: m.resumes}, opts...), m
}

func validDraft() domain.JobDraft {
	return domain.JobDraft{
		Title:           "Go 工程师",
		Description:     "写 Go",
		JobType:         domain.JobTypeFullTime,
		ExperienceLevel: domain.ExperienceMid,
		Location:        "上海",
		Visibility:      domain.VisibilityPublic,
	}
}

func TestStore_LastSettledWins(t *testing.T) {
	testCases := []struct {
		name     string
		opts     []Option
		wantPage int
	}{
		{
			name:     "默认后返回的覆盖先返回的",
			wantPage: 1,
		},
		{
			name:     "开启序号之后丢弃过期响应",
			opts:     []Option{WithRequestFencing()},
			wantPage: 2,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, m := newMockStore(t, tc.opts...)
			started, release := make(chan struct{}), make(chan struct{})
			m.jobs.EXPECT().List(gomock.Any(), client.JobListParams{Page: 1}).
				DoAndReturn(func(ctx context.Context, params client.JobListParams) (domain.JobPage, error) {
					close(started)
					<-release
					return domain.JobPage{Items: []domain.Job{{ID: "1"}}, Page: 1}, nil
				})
			m.jobs.EXPECT().List(gomock.Any(), client.JobListParams{Page: 2}).
				Return(domain.JobPage{Items: []domain.Job{{ID: "2"}}, Page: 2}, nil)

			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.LoadJobs(context.Background(), client.JobListParams{Page: 1})
				assert.NoError(t, err)
			}()
			<-started
			_, err := store.LoadJobs(context.Background(), client.JobListParams{Page: 2})
			require.NoError(t, err)
			assert.Equal(t, 2, store.State().Jobs.Page)

			close(release)
			wg.Wait()
			assert.Equal(t, tc.wantPage, store.State().Jobs.Page)
		})
	}
}

func TestStore_LoadJobs(t *testing.T) {
	store, m := newMockStore(t)
	m.jobs.EXPECT().List(gomock.Any(), client.JobListParams{Page: 1}).Return(domain.JobPage{
		Items: []domain.Job{{ID: "1"}, {ID: "2"}}, Page: 1, Limit: 2, Total: 3, TotalPages: 2,
	}, nil)
	m.jobs.EXPECT().List(gomock.Any(), client.JobListParams{Page: 2}).Return(domain.JobPage{
		Items: []domain.Job{{ID: "3"}}, Page: 2, Limit: 2, Total: 3, TotalPages: 2,
	}, nil)

	_, err := store.LoadJobs(context.Background(), client.JobListParams{Page: 1})
	require.NoError(t, err)
	_, err = store.LoadJobs(context.Background(), client.JobListParams{Page: 2})
	require.NoError(t, err)

	// 整体替换，不合并
	st := store.State()
	assert.Equal(t, []domain.Job{{ID: "3"}}, st.Jobs.Items)
	assert.Equal(t, 2, st.Jobs.Page)
	assert.False(t, st.IsFetchingJobs)
}

func TestStore_CloseJob(t *testing.T) {
	t.Run("服务端确认之前不修改", func(t *testing.T) {
		store, m := newMockStore(t)
		m.jobs.EXPECT().List(gomock.Any(), gomock.Any()).Return(domain.JobPage{
			Items: []domain.Job{{ID: "1", Status: domain.JobStatusActive}, {ID: "2", Status: domain.JobStatusActive}},
		}, nil)
		_, err := store.LoadJobs(context.Background(), client.JobListParams{})
		require.NoError(t, err)

		m.jobs.EXPECT().Close(gomock.Any(), "1").DoAndReturn(func(ctx context.Context, id string) error {
			st := store.State()
			assert.True(t, st.IsClosingJob)
			assert.Equal(t, domain.JobStatusActive, st.Jobs.Items[0].Status)
			return nil
		})
		require.NoError(t, store.CloseJob(context.Background(), "1"))
		st := store.State()
		assert.False(t, st.IsClosingJob)
		assert.Equal(t, domain.JobStatusClosed, st.Jobs.Items[0].Status)
		assert.Equal(t, domain.JobStatusActive, st.Jobs.Items[1].Status)
	})

	t.Run("失败保持原样", func(t *testing.T) {
		store, m := newMockStore(t)
		m.jobs.EXPECT().Get(gomock.Any(), "1").Return(domain.Job{ID: "1", Status: domain.JobStatusActive}, nil)
		_, err := store.LoadJobByID(context.Background(), "1")
		require.NoError(t, err)

		m.jobs.EXPECT().Close(gomock.Any(), "1").Return(client.NewAPIError(http.StatusInternalServerError, 522001, "系统错误"))
		err = store.CloseJob(context.Background(), "1")
		assert.ErrorIs(t, err, client.ErrServer)
		st := store.State()
		assert.Equal(t, domain.JobStatusActive, st.CurrentJob.Status)
		assert.ErrorIs(t, st.Err(ResourceJobs), client.ErrServer)
		assert.False(t, st.IsClosingJob)
	})
}

func TestStore_CreateJob(t *testing.T) {
	testCases := []struct {
		name    string
		before  func(t *testing.T, store *Store, m mocks)
		draft   domain.JobDraft
		wantErr error
		wantIDs []string
	}{
		{
			name: "成功之后放到最前面",
			before: func(t *testing.T, store *Store, m mocks) {
				m.jobs.EXPECT().List(gomock.Any(), gomock.Any()).Return(domain.JobPage{Items: []domain.Job{{ID: "1"}}}, nil)
				_, err := store.LoadJobs(context.Background(), client.JobListParams{})
				require.NoError(t, err)
				m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.Job{ID: "2", Status: domain.JobStatusActive}, nil)
			},
			draft:   validDraft(),
			wantIDs: []string{"2", "1"},
		},
		{
			name:   "薪资区间不合法，不发请求",
			before: func(t *testing.T, store *Store, m mocks) {},
			draft: func() domain.JobDraft {
				d := validDraft()
				lo, hi := 200.0, 100.0
				d.SalaryMin, d.SalaryMax = &lo, &hi
				return d
			}(),
			wantErr: domain.ErrSalaryRange,
		},
		{
			name: "已加载的公司资料不完整，不发请求",
			before: func(t *testing.T, store *Store, m mocks) {
				m.company.EXPECT().Profile(gomock.Any()).Return(domain.CompanyProfile{CompanyName: "ecode"}, nil)
				_, err := store.LoadCompanyProfile(context.Background())
				require.NoError(t, err)
			},
			draft:   validDraft(),
			wantErr: ErrProfileIncomplete,
		},
		{
			name: "服务端判定公司资料不完整",
			before: func(t *testing.T, store *Store, m mocks) {
				m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.Job{}, client.NewAPIError(http.StatusForbidden, client.CodeProfileIncomplete, "请先完善公司资料"))
			},
			draft:   validDraft(),
			wantErr: ErrProfileIncomplete,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, m := newMockStore(t)
			tc.before(t, store, m)
			_, err := store.CreateJob(context.Background(), tc.draft)
			assert.ErrorIs(t, err, tc.wantErr)
			st := store.State()
			assert.ErrorIs(t, st.Err(ResourceJobs), tc.wantErr)
			assert.False(t, st.IsCreatingJob)
			if tc.wantErr != nil {
				return
			}
			ids := make([]string, 0, len(st.Jobs.Items))
			for _, j := range st.Jobs.Items {
				ids = append(ids, j.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestStore_UpdateJob(t *testing.T) {
	store, m := newMockStore(t)
	m.jobs.EXPECT().List(gomock.Any(), gomock.Any()).Return(domain.JobPage{
		Items: []domain.Job{{ID: "1", Title: "旧", Status: domain.JobStatusDraft}},
	}, nil)
	m.jobs.EXPECT().Get(gomock.Any(), "1").Return(domain.Job{ID: "1", Title: "旧", Status: domain.JobStatusDraft}, nil)
	_, err := store.LoadJobs(context.Background(), client.JobListParams{})
	require.NoError(t, err)
	_, err = store.LoadJobByID(context.Background(), "1")
	require.NoError(t, err)

	m.jobs.EXPECT().Patch(gomock.Any(), "1", gomock.Any()).Return(domain.Job{ID: "1", Title: "旧", Status: domain.JobStatusActive}, nil)
	_, err = store.PublishJob(context.Background(), "1")
	require.NoError(t, err)
	st := store.State()
	assert.Equal(t, domain.JobStatusActive, st.CurrentJob.Status)
	// 列表不跟着更新
	assert.Equal(t, domain.JobStatusDraft, st.Jobs.Items[0].Status)

	// 其他职位的更新不影响 CurrentJob
	title := "新"
	m.jobs.EXPECT().Patch(gomock.Any(), "2", gomock.Any()).Return(domain.Job{ID: "2", Title: title}, nil)
	_, err = store.UpdateJob(context.Background(), "2", domain.JobPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "1", store.State().CurrentJob.ID)

	// 退回草稿在本地就被拒绝
	draft := domain.JobStatusDraft
	_, err = store.UpdateJob(context.Background(), "1", domain.JobPatch{Status: &draft})
	assert.ErrorIs(t, err, workflow.ErrIllegalTransition)
}

func TestStore_Apply(t *testing.T) {
	draft := domain.ApplicationDraft{JobID: "j1", ResumeID: "r1", FullName: "Amy", Email: "amy@example.com"}
	store, m := newMockStore(t)
	m.apps.EXPECT().Mine(gomock.Any()).Return([]domain.Application{{ID: "a0", JobID: "j0", Status: domain.ApplicationReviewed}}, nil)
	_, err := store.LoadMyApplications(context.Background())
	require.NoError(t, err)

	m.apps.EXPECT().Submit(gomock.Any(), draft).Return(domain.Application{ID: "a1", JobID: "j1", Status: domain.ApplicationPending}, nil)
	_, err = store.Apply(context.Background(), draft)
	require.NoError(t, err)
	apps := store.State().MyApplications
	require.Len(t, apps, 2)
	assert.Equal(t, "a1", apps[0].ID)

	m.apps.EXPECT().Submit(gomock.Any(), draft).Return(domain.Application{}, client.NewAPIError(http.StatusConflict, 423002, "已经投递过"))
	_, err = store.Apply(context.Background(), draft)
	assert.ErrorIs(t, err, ErrAlreadyApplied)
	assert.ErrorIs(t, err, client.ErrConflict)
	st := store.State()
	assert.Len(t, st.MyApplications, 2)
	assert.ErrorIs(t, st.Err(ResourceApplications), ErrAlreadyApplied)

	m.apps.EXPECT().Submit(gomock.Any(), draft).Return(domain.Application{}, client.NewAPIError(http.StatusBadRequest, client.CodeJobNotAccepting, "职位已关闭"))
	_, err = store.Apply(context.Background(), draft)
	assert.ErrorIs(t, err, ErrJobNotAccepting)
	assert.ErrorIs(t, err, client.ErrValidation)

	_, err = store.Apply(context.Background(), domain.ApplicationDraft{JobID: "j1"})
	assert.ErrorIs(t, err, domain.ErrInvalid)
}

func TestStore_WithdrawApplication(t *testing.T) {
	store, m := newMockStore(t)
	m.apps.EXPECT().Mine(gomock.Any()).Return([]domain.Application{
		{ID: "a1", Status: domain.ApplicationPending},
		{ID: "a2", Status: domain.ApplicationReviewed},
	}, nil)
	_, err := store.LoadMyApplications(context.Background())
	require.NoError(t, err)

	err = store.WithdrawApplication(context.Background(), "a2")
	assert.ErrorIs(t, err, workflow.ErrWithdrawNotAllowed)

	m.apps.EXPECT().Withdraw(gomock.Any(), "a1").Return(nil)
	require.NoError(t, store.WithdrawApplication(context.Background(), "a1"))
	st := store.State()
	assert.Equal(t, []domain.Application{{ID: "a2", Status: domain.ApplicationReviewed}}, st.MyApplications)
	assert.NoError(t, st.Err(ResourceApplications))
}

func TestStore_UpdateApplicationStatus(t *testing.T) {
	store, m := newMockStore(t)
	m.jobs.EXPECT().Applications(gomock.Any(), "j1").Return([]domain.Application{{ID: "a1", Status: domain.ApplicationPending}}, nil)
	apps, err := store.LoadJobApplications(context.Background(), "j1")
	require.NoError(t, err)

	m.apps.EXPECT().UpdateStatus(gomock.Any(), "a1", domain.ApplicationReviewed).
		Return(domain.Application{ID: "a1", Status: domain.ApplicationReviewed}, nil).Times(2)
	for i := 0; i < 2; i++ {
		app, err := store.UpdateApplicationStatus(context.Background(), "a1", domain.ApplicationReviewed)
		require.NoError(t, err)
		apps = workflow.ReplaceByID(apps, app)
	}
	assert.Equal(t, []domain.Application{{ID: "a1", Status: domain.ApplicationReviewed}}, apps)
	assert.Empty(t, store.State().MyApplications)

	_, err = store.UpdateApplicationStatus(context.Background(), "a1", "HIRED")
	assert.ErrorIs(t, err, workflow.ErrInvalidStatus)
}

func TestStore_ErrorClearedAtPending(t *testing.T) {
	store, m := newMockStore(t)
	m.resumes.EXPECT().List(gomock.Any()).Return(nil, client.NewAPIError(http.StatusUnauthorized, 0, ""))
	_, err := store.LoadResumes(context.Background())
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.ErrorIs(t, store.State().Err(ResourceResumes), client.ErrUnauthorized)

	m.resumes.EXPECT().List(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.Resume, error) {
		st := store.State()
		assert.NoError(t, st.Err(ResourceResumes))
		assert.True(t, st.IsFetchingResumes)
		return []domain.Resume{{ID: "r1"}}, nil
	})
	_, err = store.LoadResumes(context.Background())
	require.NoError(t, err)
	st := store.State()
	assert.NoError(t, st.Err(ResourceResumes))
	assert.Equal(t, []domain.Resume{{ID: "r1"}}, st.Resumes)
}

func TestStore_CompanyProfile(t *testing.T) {
	store, m := newMockStore(t)
	m.company.EXPECT().Profile(gomock.Any()).Return(domain.CompanyProfile{}, client.NewAPIError(http.StatusNotFound, 421001, ""))
	p, err := store.LoadCompanyProfile(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)

	profile := domain.CompanyProfile{CompanyName: "ecode"}
	m.company.EXPECT().CreateProfile(gomock.Any(), profile).Return(profile, nil)
	_, err = store.SaveCompanyProfile(context.Background(), profile)
	require.NoError(t, err)

	profile.Description = "招人"
	m.company.EXPECT().UpdateProfile(gomock.Any(), profile).Return(profile, nil)
	_, err = store.SaveCompanyProfile(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, "招人", store.State().CompanyProfile.Description)

	_, err = store.UploadLogo(context.Background(), domain.Upload{Name: "logo.txt", Size: 5, Reader: bytes.NewReader([]byte("hello"))})
	assert.ErrorIs(t, err, domain.ErrFileType)
}

func TestStore_SubscribeOrder(t *testing.T) {
	store, _ := newMockStore(t)
	var (
		mu  sync.Mutex
		got []int
	)
	store.Subscribe(func(st State) {
		mu.Lock()
		got = append(got, st.Jobs.Page)
		mu.Unlock()
	})

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.update(func(st *State) {
				st.Jobs.Page++
			})
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, n)
	for i, page := range got {
		assert.Equal(t, i+1, page)
	}
	assert.Equal(t, n, store.State().Jobs.Page)
}

func TestStore_SubscribeReentrant(t *testing.T) {
	store, _ := newMockStore(t)
	var got []int
	store.Subscribe(func(st State) {
		got = append(got, st.Jobs.Page)
		if st.Jobs.Page == 1 {
			// 回调里继续修改，新的快照排在后面送达
			store.update(func(st *State) {
				st.Jobs.Page = 100
			})
		}
	})
	store.update(func(st *State) {
		st.Jobs.Page = 1
	})
	assert.Equal(t, []int{1, 100}, got)
}

func TestStore_SubscribeAndReset(t *testing.T) {
	store, m := newMockStore(t)
	var got []bool
	unsubscribe := store.Subscribe(func(st State) {
		got = append(got, st.IsFetchingResumes)
	})
	m.resumes.EXPECT().List(gomock.Any()).Return([]domain.Resume{{ID: "r1"}}, nil)
	_, err := store.LoadResumes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, got)

	unsubscribe()
	store.Reset()
	assert.Len(t, got, 2)
	assert.Empty(t, store.State().Resumes)

	// 快照改了也不影响 store
	st := store.State()
	st.Errors[ResourceJobs] = errors.New("mock error")
	assert.NoError(t, store.State().Err(ResourceJobs))
}
