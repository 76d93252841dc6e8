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

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Location 订单号、过期时间等全部按照北京时间渲染
var Location = time.FixedZone("CST", 8*3600)

type OrderStatus string

func (s OrderStatus) String() string {
	return string(s)
}

const (
	StatusPending OrderStatus = "pending"
	StatusPaid    OrderStatus = "paid"
	StatusFailed  OrderStatus = "failed"
	StatusExpired OrderStatus = "expired"
)

type PayType string

func (p PayType) String() string {
	return string(p)
}

func (p PayType) Valid() bool {
	return p == PayTypeH5 || p == PayTypeNative
}

const (
	PayTypeH5     PayType = "h5"
	PayTypeNative PayType = "native"
)

type Order struct {
	ID          int64
	OrderNo     string
	UserID      string
	PackageKey  string
	PackageName string
	Amount      decimal.Decimal
	Status      OrderStatus
	PayType     PayType
	// H5 为跳转链接, Native 为二维码链接
	PayURL    string
	TradeNo   string
	ExpiredAt time.Time
	PaidAt    time.Time
	Ctime     time.Time
	Utime     time.Time
}

// EffectiveStatus 待支付订单过了有效期按照已过期处理, 不依赖定时任务是否已经关单
func (o Order) EffectiveStatus(now time.Time) OrderStatus {
	if o.Status == StatusPending && !o.ExpiredAt.IsZero() && now.After(o.ExpiredAt) {
		return StatusExpired
	}
	return o.Status
}

// CreateOrderRequest 下单请求
type CreateOrderRequest struct {
	UserID      string
	PackageKey  string
	PackageName string
	// 未传金额时 Valid 为 false
	Amount   decimal.NullDecimal
	PayType  PayType
	ClientIP string
}

// Prepay 一次预下单所需的全部信息, H5 与 Native 共用
type Prepay struct {
	OrderNo     string
	Description string
	AmountFen   int64
	ExpiredAt   time.Time
	ClientIP    string
}

// PrepayResult 预下单结果
type PrepayResult struct {
	// 实际使用的支付方式, 发生降级时与请求的不同
	PayType        PayType
	PayURL         string
	FallbackReason string
}

// CreateOrderResult 下单结果
type CreateOrderResult struct {
	OrderNo        string
	PayType        PayType
	PayURL         string
	FallbackReason string
	ExpiredAt      time.Time
}

// Notification 微信支付结果通知中与订单相关的部分
type Notification struct {
	OrderNo    string
	TradeNo    string
	TradeState string
	PaidAt     time.Time
}
