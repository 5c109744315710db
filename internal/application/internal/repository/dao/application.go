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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const statusPending = "PENDING"

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicated     = errors.New("已经投递过这个职位")
	// ErrStatusChanged 更新的时候状态已经被别人改掉了
	ErrStatusChanged = errors.New("投递状态已经变化")
)

type ApplicationDAO interface {
	// Insert 同一个候选人对同一个职位重复投递返回 ErrDuplicated
	Insert(ctx context.Context, app Application) error
	FindByID(ctx context.Context, id int64) (Application, error)
	FindByCandidate(ctx context.Context, candidateID int64) ([]Application, error)
	FindByJob(ctx context.Context, jobID int64) ([]Application, error)
	// UpdateStatus 只有当前状态还是 from 的时候才会更新，notes 为 nil 表示不修改备注
	UpdateStatus(ctx context.Context, id int64, from, to string, notes *string) error
	// DeletePending 删除候选人自己的待处理投递，返回是否删除成功
	DeletePending(ctx context.Context, id, candidateID int64) (bool, error)
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (dao *GORMApplicationDAO) Insert(ctx context.Context, app Application) error {
	now := time.Now().UnixMilli()
	app.Ctime = now
	app.Utime = now
	err := dao.db.WithContext(ctx).Create(&app).Error
	if e, ok := err.(*mysql.MySQLError); ok && e.Number == 1062 {
		return ErrDuplicated
	}
	return err
}

func (dao *GORMApplicationDAO) FindByID(ctx context.Context, id int64) (Application, error) {
	var res Application
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMApplicationDAO) FindByCandidate(ctx context.Context, candidateID int64) ([]Application, error) {
	var res []Application
	err := dao.db.WithContext(ctx).Where("candidate_id = ?", candidateID).
		Order("ctime DESC").Order("id DESC").
		Find(&res).Error
	return res, err
}

func (dao *GORMApplicationDAO) FindByJob(ctx context.Context, jobID int64) ([]Application, error) {
	var res []Application
	err := dao.db.WithContext(ctx).Where("job_id = ?", jobID).
		Order("ctime DESC").Order("id DESC").
		Find(&res).Error
	return res, err
}

func (dao *GORMApplicationDAO) UpdateStatus(ctx context.Context, id int64, from, to string, notes *string) error {
	updates := map[string]any{
		"status": to,
		"utime":  time.Now().UnixMilli(),
	}
	if notes != nil {
		updates["notes"] = *notes
	}
	res := dao.db.WithContext(ctx).Model(&Application{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 && from != to {
		return ErrStatusChanged
	}
	return nil
}

func (dao *GORMApplicationDAO) DeletePending(ctx context.Context, id, candidateID int64) (bool, error) {
	res := dao.db.WithContext(ctx).
		Where("id = ? AND candidate_id = ? AND status = ?", id, candidateID, statusPending).
		Delete(&Application{})
	return res.RowsAffected > 0, res.Error
}

type Application struct {
	Id          int64  `gorm:"primaryKey,autoIncrement:false"`
	JobId       int64  `gorm:"uniqueIndex:idx_job_candidate"`
	CandidateId int64  `gorm:"uniqueIndex:idx_job_candidate;index"`
	ResumeId    int64
	Status      string `gorm:"type:varchar(16)"`
	CoverLetter string `gorm:"type:text"`
	FullName    string `gorm:"type:varchar(128)"`
	Email       string `gorm:"type:varchar(256)"`
	Phone       string `gorm:"type:varchar(64)"`
	Linkedin    string `gorm:"type:varchar(512)"`
	Portfolio   string `gorm:"type:varchar(512)"`
	Notes       string `gorm:"type:text"`
	Ctime       int64
	Utime       int64
}
