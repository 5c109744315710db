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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGORMApplicationDAO_Insert(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "重复投递",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `applications` .*").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				return mockDB
			},
			wantErr: ErrDuplicated,
		},
		{
			name: "数据库错误",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `applications` .*").
					WillReturnError(errors.New("mock db error"))
				return mockDB
			},
			wantErr: errors.New("mock db error"),
		},
		{
			name: "投递成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `applications` .*").
					WillReturnResult(sqlmock.NewResult(1, 1))
				return mockDB
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMApplicationDAO(newMockGORM(t, tc.mock(t)))
			err := d.Insert(context.Background(), Application{Id: 1, JobId: 2, CandidateId: 3, Status: statusPending})
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestGORMApplicationDAO_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name     string
		from, to string
		mock     func(t *testing.T) *sql.DB
		wantErr  error
	}{
		{
			name: "更新成功",
			from: "PENDING",
			to:   "REVIEWED",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `applications` SET .* WHERE id = \\? AND status = \\?").
					WithArgs("REVIEWED", sqlmock.AnyArg(), int64(1), "PENDING").
					WillReturnResult(sqlmock.NewResult(0, 1))
				return mockDB
			},
		},
		{
			name: "状态已经被改掉",
			from: "PENDING",
			to:   "REVIEWED",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `applications` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				return mockDB
			},
			wantErr: ErrStatusChanged,
		},
		{
			name: "状态相同",
			from: "SHORTLISTED",
			to:   "SHORTLISTED",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `applications` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				return mockDB
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMApplicationDAO(newMockGORM(t, tc.mock(t)))
			err := d.UpdateStatus(context.Background(), 1, tc.from, tc.to, nil)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestGORMApplicationDAO_DeletePending(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("DELETE FROM `applications` WHERE id = \\? AND candidate_id = \\? AND status = \\?").
		WithArgs(int64(1), int64(3), "PENDING").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `applications` .*").
		WillReturnResult(sqlmock.NewResult(0, 0))

	d := NewGORMApplicationDAO(newMockGORM(t, mockDB))
	ok, err := d.DeletePending(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = d.DeletePending(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func newMockGORM(t *testing.T, mockDB *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}
