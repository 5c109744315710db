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
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrStatusChanged 更新的时候状态已经被别人改掉了
	ErrStatusChanged = errors.New("职位状态已经变化")
)

type JobDAO interface {
	Insert(ctx context.Context, j Job) error
	// Update 覆盖可编辑的字段，计数和创建时间不动。
	// 只有当前状态还是 from 的时候才会更新，否则返回 ErrStatusChanged
	Update(ctx context.Context, j Job, from string) error
	// Close 只改状态，已经关闭的不动
	Close(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (Job, error)
	List(ctx context.Context, q Query) ([]Job, error)
	Count(ctx context.Context, q Query) (int64, error)
	// IncrCounters 调整投递计数，不会减到负数
	IncrCounters(ctx context.Context, id int64, total, pending int64) error
	// CloseExpired 关闭已经过了截止时间的职位，返回关闭的 id
	CloseExpired(ctx context.Context, now int64, limit int) ([]int64, error)
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewGORMJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{db: db}
}

func (dao *GORMJobDAO) Insert(ctx context.Context, j Job) error {
	now := time.Now().UnixMilli()
	j.Ctime = now
	j.Utime = now
	return dao.db.WithContext(ctx).Create(&j).Error
}

func (dao *GORMJobDAO) Update(ctx context.Context, j Job, from string) error {
	j.Utime = time.Now().UnixMilli()
	res := dao.db.WithContext(ctx).Model(&Job{}).
		Select("title", "description", "requirements", "responsibilities", "benefits",
			"job_type", "experience_level", "location", "remote", "salary_min", "salary_max",
			"salary_currency", "tags", "deadline", "status", "visibility", "featured", "urgent", "utime").
		Where("id = ? AND status = ?", j.Id, from).
		Updates(&j)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	// 内容完全没变的时候 MySQL 也会返回 0
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&Job{}).
		Where("id = ? AND status = ?", j.Id, from).Count(&cnt).Error
	if err != nil {
		return err
	}
	if cnt == 0 {
		return ErrStatusChanged
	}
	return nil
}

func (dao *GORMJobDAO) Close(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Model(&Job{}).
		Where("id = ? AND status <> ?", id, StatusClosed).
		Updates(map[string]any{
			"status": StatusClosed,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (dao *GORMJobDAO) FindByID(ctx context.Context, id int64) (Job, error) {
	var res Job
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMJobDAO) List(ctx context.Context, q Query) ([]Job, error) {
	var res []Job
	db := q.where(dao.db.WithContext(ctx).Model(&Job{}))
	for _, o := range q.order() {
		db = db.Order(o)
	}
	err := db.Offset(q.Offset).Limit(q.Limit).Find(&res).Error
	return res, err
}

func (dao *GORMJobDAO) Count(ctx context.Context, q Query) (int64, error) {
	var res int64
	err := q.where(dao.db.WithContext(ctx).Model(&Job{})).Count(&res).Error
	return res, err
}

func (dao *GORMJobDAO) IncrCounters(ctx context.Context, id int64, total, pending int64) error {
	return dao.db.WithContext(ctx).Model(&Job{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"application_count": gorm.Expr("GREATEST(application_count + ?, 0)", total),
			"pending_count":     gorm.Expr("GREATEST(pending_count + ?, 0)", pending),
			"utime":             time.Now().UnixMilli(),
		}).Error
}

func (dao *GORMJobDAO) CloseExpired(ctx context.Context, now int64, limit int) ([]int64, error) {
	var ids []int64
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Job{}).
			Where("status = ? AND deadline IS NOT NULL AND deadline < ?", StatusActive, now).
			Limit(limit).Pluck("id", &ids).Error
		if err != nil || len(ids) == 0 {
			return err
		}
		return tx.Model(&Job{}).
			Where("id IN ? AND status = ?", ids, StatusActive).
			Updates(map[string]any{
				"status": StatusClosed,
				"utime":  now,
			}).Error
	})
	return ids, err
}

const (
	StatusActive = "ACTIVE"
	StatusClosed = "CLOSED"
)

type Job struct {
	// 用 idgen 生成，不用自增
	Id               int64  `gorm:"primaryKey,autoIncrement:false"`
	CompanyId        int64  `gorm:"index"`
	CompanyName      string `gorm:"type:varchar(256)"`
	Title            string `gorm:"type:varchar(256)"`
	Description      string `gorm:"type:text"`
	Requirements     string `gorm:"type:text"`
	Responsibilities string `gorm:"type:text"`
	Benefits         string `gorm:"type:text"`
	JobType          string `gorm:"type:varchar(32)"`
	ExperienceLevel  string `gorm:"type:varchar(32)"`
	Location         string `gorm:"type:varchar(256)"`
	Remote           bool
	SalaryMin        *float64
	SalaryMax        *float64
	SalaryCurrency   string   `gorm:"type:varchar(8)"`
	Tags             []string `gorm:"type:varchar(1024);serializer:json"`
	Deadline         *int64
	Status           string `gorm:"type:varchar(16);index:idx_status_visibility"`
	Visibility       string `gorm:"type:varchar(16);index:idx_status_visibility"`
	Featured         bool
	Urgent           bool
	ApplicationCount int64
	PendingCount     int64
	Ctime            int64
	Utime            int64
}
