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

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicated     = errors.New("公司资料已经存在")
)

type ProfileDAO interface {
	Create(ctx context.Context, p Profile) error
	// Update 还没有创建过的时候返回 ErrRecordNotFound
	Update(ctx context.Context, p Profile) error
	FindByUid(ctx context.Context, uid int64) (Profile, error)
}

type GORMProfileDAO struct {
	db *egorm.Component
}

func NewGORMProfileDAO(db *egorm.Component) ProfileDAO {
	return &GORMProfileDAO{
		db: db,
	}
}

func (dao *GORMProfileDAO) Create(ctx context.Context, p Profile) error {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := dao.db.WithContext(ctx).Create(&p).Error
	if e, ok := err.(*mysql.MySQLError); ok && e.Number == 1062 {
		return ErrDuplicated
	}
	return err
}

func (dao *GORMProfileDAO) Update(ctx context.Context, p Profile) error {
	res := dao.db.WithContext(ctx).Model(&Profile{}).
		Where("uid = ?", p.Uid).
		Updates(map[string]any{
			"company_name":  p.CompanyName,
			"description":   p.Description,
			"website":       p.Website,
			"industry":      p.Industry,
			"size":          p.Size,
			"location":      p.Location,
			"contact_email": p.ContactEmail,
			"contact_phone": p.ContactPhone,
			"logo":          p.Logo,
			"utime":         time.Now().UnixMilli(),
		})
	if res.Error != nil || res.RowsAffected > 0 {
		return res.Error
	}
	// 数据没有变化的时候 MySQL 也会返回 0
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&Profile{}).Where("uid = ?", p.Uid).Count(&cnt).Error
	if err == nil && cnt == 0 {
		return ErrRecordNotFound
	}
	return err
}

func (dao *GORMProfileDAO) FindByUid(ctx context.Context, uid int64) (Profile, error) {
	var res Profile
	err := dao.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	return res, err
}

type Profile struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	Uid          int64  `gorm:"uniqueIndex"`
	CompanyName  string `gorm:"type:varchar(256);not null"`
	Description  string `gorm:"type:text"`
	Website      string `gorm:"type:varchar(512)"`
	Industry     string `gorm:"type:varchar(128)"`
	Size         string `gorm:"type:varchar(64)"`
	Location     string `gorm:"type:varchar(256)"`
	ContactEmail string `gorm:"type:varchar(256)"`
	ContactPhone string `gorm:"type:varchar(64)"`
	Logo         string `gorm:"type:varchar(512)"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}

func (Profile) TableName() string {
	return "company_profiles"
}
