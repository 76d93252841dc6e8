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

package web

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/youjin-ai/youjin/internal/payment/internal/domain"
)

type CreateOrderReq struct {
	PackageKey  string `json:"packageKey"`
	PackageName string `json:"packageName"`
	// 单位为元, 数字和字符串都可以
	Amount  decimal.NullDecimal `json:"amount"`
	UserID  string              `json:"userId"`
	PayType string              `json:"payType"`
}

// CreateOrderResp 下单接口的响应, 无论成功失败 HTTP 状态码都是 200
type CreateOrderResp struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	OrderNo string `json:"orderNo,omitempty"`
	PayURL  string `json:"payUrl,omitempty"`
	// 兼容老版本前端
	QrCodeURL      string `json:"qrCodeUrl,omitempty"`
	H5URL          string `json:"h5Url,omitempty"`
	PayType        string `json:"payType,omitempty"`
	FallbackReason string `json:"fallbackReason,omitempty"`
	ExpiredAt      string `json:"expiredAt,omitempty"`
}

func newCreateOrderResp(res domain.CreateOrderResult) CreateOrderResp {
	resp := CreateOrderResp{
		Success:        true,
		OrderNo:        res.OrderNo,
		PayURL:         res.PayURL,
		PayType:        res.PayType.String(),
		FallbackReason: res.FallbackReason,
		ExpiredAt:      res.ExpiredAt.In(domain.Location).Format(time.RFC3339),
	}
	switch res.PayType {
	case domain.PayTypeNative:
		resp.QrCodeURL = res.PayURL
	case domain.PayTypeH5:
		resp.H5URL = res.PayURL
	}
	return resp
}

type OrderNoReq struct {
	OrderNo string `json:"orderNo"`
}

type Order struct {
	OrderNo     string `json:"orderNo"`
	UserID      string `json:"userId"`
	PackageKey  string `json:"packageKey"`
	PackageName string `json:"packageName"`
	Amount      string `json:"amount"`
	Status      string `json:"status"`
	PayType     string `json:"payType"`
	PayURL      string `json:"payUrl"`
	ExpiredAt   string `json:"expiredAt"`
	PaidAt      string `json:"paidAt,omitempty"`
}

func newOrder(o domain.Order) Order {
	res := Order{
		OrderNo:     o.OrderNo,
		UserID:      o.UserID,
		PackageKey:  o.PackageKey,
		PackageName: o.PackageName,
		Amount:      o.Amount.StringFixed(2),
		Status:      o.Status.String(),
		PayType:     o.PayType.String(),
		PayURL:      o.PayURL,
		ExpiredAt:   o.ExpiredAt.In(domain.Location).Format(time.RFC3339),
	}
	if !o.PaidAt.IsZero() {
		res.PaidAt = o.PaidAt.In(domain.Location).Format(time.RFC3339)
	}
	return res
}

// NotifyResp 微信支付要求的通知应答格式
type NotifyResp struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
