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

package event

const OrderPaidEventName = "youjin_order_paid_events"

// OrderPaidEvent 订单支付成功后发送, 同一个订单可能发送多次, 消费方需要按照订单号幂等
type OrderPaidEvent struct {
	OrderNo    string `json:"orderNo"`
	UserID     string `json:"userId"`
	PackageKey string `json:"packageKey"`
	// 单位为分
	AmountFen int64 `json:"amountFen"`
	TradeNo   string `json:"tradeNo"`
	PaidAt    int64  `json:"paidAt"`
}
