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
	"gorm.io/gorm/clause"
)

var (
	ErrDuplicatedGrant = errors.New("该订单已经发放过额度")
	ErrRecordNotFound  = gorm.ErrRecordNotFound
)

type QuotaDAO interface {
	// Grant 在同一个事务里写入发放记录并累加额度
	Grant(ctx context.Context, g QuotaGrant) error
	FindByUserID(ctx context.Context, userID string) (Quota, error)
}

type quotaDAO struct {
	db *egorm.Component
}

func NewQuotaGORMDAO(db *egorm.Component) QuotaDAO {
	return &quotaDAO{db: db}
}

func (d *quotaDAO) Grant(ctx context.Context, g QuotaGrant) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		g.Ctime, g.Utime = now, now
		if err := tx.Create(&g).Error; err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) {
				const uniqueIndexErrNo uint16 = 1062
				if me.Number == uniqueIndexErrNo {
					return ErrDuplicatedGrant
				}
			}
			return err
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"total": gorm.Expr("`total` + ?", g.Amount),
				"utime": now,
			}),
		}).Create(&Quota{
			UserId: g.UserId,
			Total:  g.Amount,
			Ctime:  now,
			Utime:  now,
		}).Error
	})
}

func (d *quotaDAO) FindByUserID(ctx context.Context, userID string) (Quota, error) {
	var res Quota
	err := d.db.WithContext(ctx).Where("user_id = ?", userID).First(&res).Error
	return res, err
}

type Quota struct {
	Id     int64  `gorm:"primaryKey;autoIncrement;comment:额度账户自增ID"`
	UserId string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_user_id;comment:用户ID"`
	Total  int64  `gorm:"not null;default:0;comment:累计获得的额度"`
	Used   int64  `gorm:"not null;default:0;comment:已使用的额度"`
	Ctime  int64
	Utime  int64
}

// TableName GORM 会把 quota 当成复数, 这里显式指定
func (Quota) TableName() string {
	return "quotas"
}

type QuotaGrant struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:发放记录自增ID"`
	OrderNo    string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_order_no;comment:订单号"`
	UserId     string `gorm:"type:varchar(64);not null;index:idx_user_id;comment:用户ID"`
	PackageKey string `gorm:"type:varchar(64);not null;comment:套餐标识"`
	Amount     int64  `gorm:"not null;comment:发放的额度"`
	Ctime      int64
	Utime      int64
}
