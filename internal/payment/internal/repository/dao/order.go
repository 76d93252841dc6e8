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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrDuplicatedOrderNo = errors.New("订单号重复")
	ErrRecordNotFound    = gorm.ErrRecordNotFound
)

const (
	statusPending = "pending"
	statusPaid    = "paid"
	statusFailed  = "failed"
	statusExpired = "expired"
)

//go:generate mockgen -source=./order.go -package=daomocks -destination=./mocks/order.mock.go -typed OrderDAO
type OrderDAO interface {
	Create(ctx context.Context, o Order) (int64, error)
	FindByOrderNo(ctx context.Context, orderNo string) (Order, error)
	// MarkPaid 只有待支付或者已过期的订单才会被标记为已支付, 返回是否真的修改了
	MarkPaid(ctx context.Context, orderNo, tradeNo string, paidAt int64) (bool, error)
	// MarkFailed 只有待支付的订单才会被标记为失败
	MarkFailed(ctx context.Context, orderNo string) (bool, error)
	FindExpiredPending(ctx context.Context, offset, limit int, before int64) ([]Order, error)
	CountExpiredPending(ctx context.Context, before int64) (int64, error)
	CloseExpired(ctx context.Context, ids []int64, before int64) (int64, error)
}

type orderDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &orderDAO{db: db}
}

func (d *orderDAO) Create(ctx context.Context, o Order) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	err := d.db.WithContext(ctx).Create(&o).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicatedOrderNo
			}
		}
		return 0, err
	}
	return o.Id, nil
}

func (d *orderDAO) FindByOrderNo(ctx context.Context, orderNo string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("order_no = ?", orderNo).First(&res).Error
	return res, err
}

func (d *orderDAO) MarkPaid(ctx context.Context, orderNo, tradeNo string, paidAt int64) (bool, error) {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("order_no = ? AND status IN ?", orderNo, []string{statusPending, statusExpired}).
		Updates(map[string]any{
			"status":   statusPaid,
			"trade_no": tradeNo,
			"paid_at":  paidAt,
			"utime":    time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (d *orderDAO) MarkFailed(ctx context.Context, orderNo string) (bool, error) {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("order_no = ? AND status = ?", orderNo, statusPending).
		Updates(map[string]any{
			"status": statusFailed,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (d *orderDAO) FindExpiredPending(ctx context.Context, offset, limit int, before int64) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("status = ? AND expired_at < ?", statusPending, before).
		Order("expired_at ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *orderDAO) CountExpiredPending(ctx context.Context, before int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("status = ? AND expired_at < ?", statusPending, before).
		Count(&res).Error
	return res, err
}

func (d *orderDAO) CloseExpired(ctx context.Context, ids []int64, before int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id IN ? AND status = ? AND expired_at < ?", ids, statusPending, before).
		Updates(map[string]any{
			"status": statusExpired,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

type Order struct {
	Id          int64           `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	OrderNo     string          `gorm:"type:varchar(64);not null;uniqueIndex:uniq_order_no;comment:订单号"`
	UserId      string          `gorm:"type:varchar(64);not null;index:idx_user_id;comment:用户ID"`
	PackageKey  string          `gorm:"type:varchar(64);not null;comment:套餐标识"`
	PackageName string          `gorm:"type:varchar(255);not null;comment:套餐名称"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:订单金额,单位为元"`
	Status      string          `gorm:"type:varchar(16);not null;index:idx_status_expired_at,priority:1;comment:订单状态 pending/paid/failed/expired"`
	PayType     string          `gorm:"type:varchar(16);not null;comment:支付方式 h5/native"`
	QrCodeUrl   string          `gorm:"column:qr_code_url;type:varchar(1024);comment:支付链接,H5为跳转链接,Native为二维码链接"`
	TradeNo     string          `gorm:"type:varchar(64);comment:微信支付订单号"`
	ExpiredAt   int64           `gorm:"not null;index:idx_status_expired_at,priority:2;comment:过期时间,Unix毫秒数"`
	PaidAt      int64           `gorm:"comment:支付时间,Unix毫秒数"`
	Ctime       int64
	Utime       int64
}
