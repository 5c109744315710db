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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ResumeDAO interface {
	Create(ctx context.Context, r Resume) error
	FindByUid(ctx context.Context, uid int64) ([]Resume, error)
	FindByID(ctx context.Context, id int64) (Resume, error)
}

type GORMResumeDAO struct {
	db *egorm.Component
}

func NewGORMResumeDAO(db *egorm.Component) ResumeDAO {
	return &GORMResumeDAO{db: db}
}

func (dao *GORMResumeDAO) Create(ctx context.Context, r Resume) error {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	return dao.db.WithContext(ctx).Create(&r).Error
}

// FindByUid 最新上传的在前面
func (dao *GORMResumeDAO) FindByUid(ctx context.Context, uid int64) ([]Resume, error) {
	var res []Resume
	err := dao.db.WithContext(ctx).Where("uid = ?", uid).
		Order("ctime DESC, id DESC").Find(&res).Error
	return res, err
}

func (dao *GORMResumeDAO) FindByID(ctx context.Context, id int64) (Resume, error) {
	var res Resume
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

type Resume struct {
	// 用 idgen 生成，不用自增
	Id           int64  `gorm:"primaryKey,autoIncrement:false"`
	Uid          int64  `gorm:"index"`
	OriginalName string `gorm:"type:varchar(256)"`
	StoredName   string `gorm:"type:varchar(128);uniqueIndex"`
	MimeType     string `gorm:"type:varchar(128)"`
	Size         int64
	Ctime        int64
	Utime        int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Resume{})
}
