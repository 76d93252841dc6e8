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

package wechat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/wechatpay-apiv3/wechatpay-go/core/notify"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
	"github.com/youjin-ai/youjin/internal/payment/internal/domain"
)

var errMissingOutTradeNo = errors.New("支付通知缺少商户订单号")

//go:generate mockgen -source=./notify.go -package=wechatmocks -destination=./mocks/notify.mock.go -typed NotifyHandler
type NotifyHandler interface {
	ParseNotifyRequest(ctx context.Context, request *http.Request, content interface{}) (*notify.Request, error)
}

// NotifyParser 验签并解密支付结果通知
type NotifyParser struct {
	handler NotifyHandler
}

func NewNotifyParser(handler NotifyHandler) *NotifyParser {
	return &NotifyParser{handler: handler}
}

func (n *NotifyParser) Parse(ctx context.Context, req *http.Request) (domain.Notification, error) {
	if n.handler == nil {
		// 商户配置不完整时不会初始化验签器
		return domain.Notification{}, ErrConfigIncomplete
	}
	var txn payments.Transaction
	_, err := n.handler.ParseNotifyRequest(ctx, req, &txn)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("验签或解密支付通知失败: %w", err)
	}
	if deref(txn.OutTradeNo) == "" {
		return domain.Notification{}, errMissingOutTradeNo
	}
	res := domain.Notification{
		OrderNo:    deref(txn.OutTradeNo),
		TradeNo:    deref(txn.TransactionId),
		TradeState: deref(txn.TradeState),
	}
	if t, er := time.Parse(time.RFC3339, deref(txn.SuccessTime)); er == nil {
		res.PaidAt = t.In(domain.Location)
	}
	return res, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
