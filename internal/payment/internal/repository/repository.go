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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/youjin-ai/youjin/internal/payment/internal/domain"
	"github.com/youjin-ai/youjin/internal/payment/internal/repository/cache"
	"github.com/youjin-ai/youjin/internal/payment/internal/repository/dao"
)

var (
	ErrDuplicatedOrderNo = dao.ErrDuplicatedOrderNo
	ErrOrderNotFound     = dao.ErrRecordNotFound
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/repository.mock.go -typed OrderRepository
type OrderRepository interface {
	ReserveOrderNo(ctx context.Context, orderNo string) (bool, error)
	CreateOrder(ctx context.Context, o domain.Order) (int64, error)
	FindByOrderNo(ctx context.Context, orderNo string) (domain.Order, error)
	MarkPaid(ctx context.Context, orderNo, tradeNo string, paidAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, orderNo string) (bool, error)
	FindExpiredPending(ctx context.Context, offset, limit int, before time.Time) ([]domain.Order, int64, error)
	CloseExpired(ctx context.Context, ids []int64, before time.Time) (int64, error)
}

type orderRepository struct {
	dao   dao.OrderDAO
	cache cache.OrderCache
	l     *elog.Component
}

func NewOrderRepository(d dao.OrderDAO, c cache.OrderCache) OrderRepository {
	return &orderRepository{
		dao:   d,
		cache: c,
		l:     elog.DefaultLogger,
	}
}

func (r *orderRepository) ReserveOrderNo(ctx context.Context, orderNo string) (bool, error) {
	return r.cache.ReserveOrderNo(ctx, orderNo)
}

func (r *orderRepository) CreateOrder(ctx context.Context, o domain.Order) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(o))
}

func (r *orderRepository) FindByOrderNo(ctx context.Context, orderNo string) (domain.Order, error) {
	o, err := r.cache.GetOrder(ctx, orderNo)
	if err == nil {
		return o, nil
	}
	entity, err := r.dao.FindByOrderNo(ctx, orderNo)
	if err != nil {
		return domain.Order{}, err
	}
	o = r.toDomain(entity)
	// 待支付和已过期的订单还会变成已支付, 只缓存不会再变化的订单
	if o.Status == domain.StatusPaid || o.Status == domain.StatusFailed {
		if er := r.cache.SetOrder(ctx, o); er != nil {
			r.l.Warn("缓存订单失败", elog.String("orderNo", orderNo), elog.FieldErr(er))
		}
	}
	return o, nil
}

func (r *orderRepository) MarkPaid(ctx context.Context, orderNo, tradeNo string, paidAt time.Time) (bool, error) {
	ok, err := r.dao.MarkPaid(ctx, orderNo, tradeNo, paidAt.UnixMilli())
	if err == nil && ok {
		r.evict(ctx, orderNo)
	}
	return ok, err
}

func (r *orderRepository) MarkFailed(ctx context.Context, orderNo string) (bool, error) {
	ok, err := r.dao.MarkFailed(ctx, orderNo)
	if err == nil && ok {
		r.evict(ctx, orderNo)
	}
	return ok, err
}

func (r *orderRepository) FindExpiredPending(ctx context.Context, offset, limit int, before time.Time) ([]domain.Order, int64, error) {
	total, err := r.dao.CountExpiredPending(ctx, before.UnixMilli())
	if err != nil {
		return nil, 0, err
	}
	orders, err := r.dao.FindExpiredPending(ctx, offset, limit, before.UnixMilli())
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), total, nil
}

func (r *orderRepository) CloseExpired(ctx context.Context, ids []int64, before time.Time) (int64, error) {
	return r.dao.CloseExpired(ctx, ids, before.UnixMilli())
}

func (r *orderRepository) evict(ctx context.Context, orderNo string) {
	if err := r.cache.DelOrder(ctx, orderNo); err != nil {
		r.l.Warn("删除订单缓存失败", elog.String("orderNo", orderNo), elog.FieldErr(err))
	}
}

func (r *orderRepository) toEntity(o domain.Order) dao.Order {
	return dao.Order{
		Id:          o.ID,
		OrderNo:     o.OrderNo,
		UserId:      o.UserID,
		PackageKey:  o.PackageKey,
		PackageName: o.PackageName,
		Amount:      o.Amount,
		Status:      o.Status.String(),
		PayType:     o.PayType.String(),
		QrCodeUrl:   o.PayURL,
		TradeNo:     o.TradeNo,
		ExpiredAt:   toMilli(o.ExpiredAt),
		PaidAt:      toMilli(o.PaidAt),
	}
}

func (r *orderRepository) toDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:          o.Id,
		OrderNo:     o.OrderNo,
		UserID:      o.UserId,
		PackageKey:  o.PackageKey,
		PackageName: o.PackageName,
		Amount:      o.Amount,
		Status:      domain.OrderStatus(o.Status),
		PayType:     domain.PayType(o.PayType),
		PayURL:      o.QrCodeUrl,
		TradeNo:     o.TradeNo,
		ExpiredAt:   fromMilli(o.ExpiredAt),
		PaidAt:      fromMilli(o.PaidAt),
		Ctime:       fromMilli(o.Ctime),
		Utime:       fromMilli(o.Utime),
	}
}

func toMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMilli(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).In(domain.Location)
}
