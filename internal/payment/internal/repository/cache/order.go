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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
	"github.com/youjin-ai/youjin/internal/payment/internal/domain"
)

const (
	// 订单号预占时间, 超过这个时间订单号早已落库, 唯一索引兜底
	orderNoReservation = 24 * time.Hour
	orderExpiration    = 10 * time.Minute
)

var ErrOrderNotFound = errors.New("订单没找到")

//go:generate mockgen -source=./order.go -package=cachemocks -destination=./mocks/order.mock.go -typed OrderCache
type OrderCache interface {
	// ReserveOrderNo 预占订单号, 返回 false 说明订单号已经被占用
	ReserveOrderNo(ctx context.Context, orderNo string) (bool, error)
	SetOrder(ctx context.Context, o domain.Order) error
	GetOrder(ctx context.Context, orderNo string) (domain.Order, error)
	DelOrder(ctx context.Context, orderNo string) error
}

type orderCache struct {
	ec ecache.Cache
}

func NewOrderCache(ec ecache.Cache) OrderCache {
	return &orderCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "payment:",
		},
	}
}

func (c *orderCache) ReserveOrderNo(ctx context.Context, orderNo string) (bool, error) {
	ok, err := c.ec.SetNX(ctx, c.orderNoKey(orderNo), 1, orderNoReservation)
	return ok, errors.Wrap(err, "预占订单号失败")
}

func (c *orderCache) SetOrder(ctx context.Context, o domain.Order) error {
	data, err := json.Marshal(o)
	if err != nil {
		return errors.Wrap(err, "序列化订单失败")
	}
	return c.ec.Set(ctx, c.orderKey(o.OrderNo), string(data), orderExpiration)
}

func (c *orderCache) GetOrder(ctx context.Context, orderNo string) (domain.Order, error) {
	val := c.ec.Get(ctx, c.orderKey(orderNo))
	if val.KeyNotFound() {
		return domain.Order{}, ErrOrderNotFound
	}
	if val.Err != nil {
		return domain.Order{}, val.Err
	}
	str, err := val.String()
	if err != nil {
		return domain.Order{}, err
	}
	var res domain.Order
	err = json.Unmarshal([]byte(str), &res)
	return res, errors.Wrap(err, "反序列化订单失败")
}

func (c *orderCache) DelOrder(ctx context.Context, orderNo string) error {
	_, err := c.ec.Delete(ctx, c.orderKey(orderNo))
	return err
}

// 注意 Namespace 设置
func (c *orderCache) orderNoKey(orderNo string) string {
	return "order_no:" + orderNo
}

func (c *orderCache) orderKey(orderNo string) string {
	return "order:" + orderNo
}
