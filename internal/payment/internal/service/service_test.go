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

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/youjin-ai/youjin/internal/payment/internal/domain"
	"github.com/youjin-ai/youjin/internal/payment/internal/errs"
	"github.com/youjin-ai/youjin/internal/payment/internal/event"
	evtmocks "github.com/youjin-ai/youjin/internal/payment/internal/event/mocks"
	"github.com/youjin-ai/youjin/internal/payment/internal/repository"
	repomocks "github.com/youjin-ai/youjin/internal/payment/internal/repository/mocks"
	svcmocks "github.com/youjin-ai/youjin/internal/payment/internal/service/mocks"
	"github.com/youjin-ai/youjin/internal/payment/internal/service/wechat"
	"github.com/youjin-ai/youjin/internal/pkg/sngenerator"
	"go.uber.org/mock/gomock"
)

var (
	fixedNow  = time.Date(2025, 3, 5, 12, 0, 0, 123456789, domain.Location)
	expiredAt = time.Date(2025, 3, 5, 12, 5, 0, 0, domain.Location)
)

// sequenceGenerator 依次返回给定的随机后缀
func sequenceGenerator(suffixes ...string) OrderNoGenerator {
	i := 0
	return sngenerator.NewGeneratorWith("YJ", domain.Location, func() (string, error) {
		if i >= len(suffixes) {
			return "", errors.New("随机源耗尽")
		}
		s := suffixes[i]
		i++
		return s, nil
	})
}

func validRequest() domain.CreateOrderRequest {
	return domain.CreateOrderRequest{
		UserID:      "u1",
		PackageKey:  "basic",
		PackageName: "基础版",
		Amount:      decimal.NewNullDecimal(decimal.RequireFromString("9.9")),
		PayType:     domain.PayTypeH5,
		ClientIP:    "1.2.3.4",
	}
}

func TestService_CreateOrder(t *testing.T) {
	prepayErr := &wechat.VendorError{StatusCode: 500, Code: "SYSTEM_ERROR", Message: "系统繁忙"}

	testCases := []struct {
		name        string
		req         func() domain.CreateOrderRequest
		suffixes    []string
		checkConfig ConfigChecker
		mock        func(ctrl *gomock.Controller) (repository.OrderRepository, Prepayer)
		wantRes     domain.CreateOrderResult
		wantErr     error
	}{
		{
			name: "缺少用户ID不发起任何调用",
			req: func() domain.CreateOrderRequest {
				req := validRequest()
				req.UserID = ""
				return req
			},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, Prepayer) {
				return repomocks.NewMockOrderRepository(ctrl), svcmocks.NewMockPrepayer(ctrl)
			},
			wantErr: errs.ErrMissingParams,
		},
		{
			name: "缺少套餐名称",
			req: func() domain.CreateOrderRequest {
				req := validRequest()
				req.PackageName = "  "
				return req
			},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, Prepayer) {
				return repomocks.NewMockOrderRepository(ctrl), svcmocks.NewMockPrepayer(ctrl)
			},
			wantErr: errs.ErrMissingParams,
		},
		{
			name: "缺少金额",
			req: func() domain.CreateOrderRequest {
				req := validRequest()
				req.Amount = decimal.NullDecimal{}
				return req
			},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, Prepayer) {
				return repomocks.NewMockOrderRepository(ctrl), svcmocks.NewMockPrepayer(ctrl)
			},
			wantErr: errs.ErrMissingParams,
		},
		{
			name: "不支持的支付方式",
			req: func() domain.CreateOrderRequest {
				req := validRequest()
				req.PayType = "jsapi"
				return req
			},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, Prepayer) {
				return repomocks.NewMockOrderRepository(ctrl), svcmocks.NewMockPrepayer(ctrl)
			},
			wantErr: errs.ErrUnsupportedPayType,
		},
		{
			name: "金额不足一分",
			req: func() domain.CreateOrderRequest {
				req := validRequest()
				req.Amount = decimal.NewNullDecimal(decimal.RequireFromString("9.999"))
				return req
			},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, Prepayer) {
				return repomocks.NewMockOrderRepository(ctrl), svcmocks.NewMockPrepayer(ctrl)
			},
			wantErr: errs.ErrInvalidAmount,
		},
		{
			name: "金额为零",
			req: func() domain.CreateOrderRequest {
				req := validRequest()
				req.Amount = decimal.NewNullDecimal(decimal.Zero)
				return req
			},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, Prepayer) {
				return repomocks.NewMockOrderRepository(ctrl), svcmocks.NewMockPrepayer(ctrl)
			},
			wantErr: errs.ErrInvalidAmount,
		},
		{
			name:        "商户配置不完整",
			req:         validRequest,
			checkConfig: func() error { return wechat.ErrConfigIncomplete },
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, Prepayer) {
				return repomocks.NewMockOrderRepository(ctrl), svcmocks.NewMockPrepayer(ctrl)
			},
			wantErr: wechat.ErrConfigIncomplete,
		},
		{
			name:     "H5下单成功",
			req:      validRequest,
			suffixes: []string{"ABCDEF"},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, Prepayer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				p := svcmocks.NewMockPrepayer(ctrl)
				repo.EXPECT().ReserveOrderNo(gomock.Any(), "YJ20250305120000ABCDEF").Return(true, nil)
				p.EXPECT().Prepay(gomock.Any(), domain.PayTypeH5, domain.Prepay{
					OrderNo:     "YJ20250305120000ABCDEF",
					Description: "基础版",
					AmountFen:   990,
					ExpiredAt:   expiredAt,
					ClientIP:    "1.2.3.4",
				}).Return(domain.PrepayResult{PayType: domain.PayTypeH5, PayURL: "https://wx.tenpay.com/h5"}, nil)
				repo.EXPECT().CreateOrder(gomock.Any(), domain.Order{
					OrderNo:     "YJ20250305120000ABCDEF",
					UserID:      "u1",
					PackageKey:  "basic",
					PackageName: "基础版",
					Amount:      decimal.RequireFromString("9.9"),
					Status:      domain.StatusPending,
					PayType:     domain.PayTypeH5,
					PayURL:      "https://wx.tenpay.com/h5",
					ExpiredAt:   expiredAt,
				}).Return(int64(1), nil)
				return repo, p
			},
			wantRes: domain.CreateOrderResult{
				OrderNo:   "YJ20250305120000ABCDEF",
				PayType:   domain.PayTypeH5,
				PayURL:    "https://wx.tenpay.com/h5",
				ExpiredAt: expiredAt,
			},
		},
		{
			name: "未传支付方式默认H5",
			req: func() domain.CreateOrderRequest {
				req := validRequest()
				req.PayType = ""
				return req
			},
			suffixes: []string{"ABCDEF"},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, Prepayer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				p := svcmocks.NewMockPrepayer(ctrl)
				repo.EXPECT().ReserveOrderNo(gomock.Any(), gomock.Any()).Return(true, nil)
				p.EXPECT().Prepay(gomock.Any(), domain.PayTypeH5, gomock.Any()).
					Return(domain.PrepayResult{PayType: domain.PayTypeH5, PayURL: "https://wx.tenpay.com/h5"}, nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				return repo, p
			},
			wantRes: domain.CreateOrderResult{
				OrderNo:   "YJ20250305120000ABCDEF",
				PayType:   domain.PayTypeH5,
				PayURL:    "https://wx.tenpay.com/h5",
				ExpiredAt: expiredAt,
			},
		},
		{
			name:     "降级为Native后保存实际支付方式",
			req:      validRequest,
			suffixes: []string{"ABCDEF"},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, Prepayer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				p := svcmocks.NewMockPrepayer(ctrl)
				repo.EXPECT().ReserveOrderNo(gomock.Any(), gomock.Any()).Return(true, nil)
				p.EXPECT().Prepay(gomock.Any(), domain.PayTypeH5, gomock.Any()).Return(domain.PrepayResult{
					PayType:        domain.PayTypeNative,
					PayURL:         "weixin://wxpay/bizpayurl?pr=abc",
					FallbackReason: "商户号该产品权限未开通",
				}, nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, o domain.Order) (int64, error) {
						assert.Equal(t, domain.PayTypeNative, o.PayType)
						assert.Equal(t, "weixin://wxpay/bizpayurl?pr=abc", o.PayURL)
						assert.Equal(t, domain.StatusPending, o.Status)
						return 1, nil
					})
				return repo, p
			},
			wantRes: domain.CreateOrderResult{
				OrderNo:        "YJ20250305120000ABCDEF",
				PayType:        domain.PayTypeNative,
				PayURL:         "weixin://wxpay/bizpayurl?pr=abc",
				FallbackReason: "商户号该产品权限未开通",
				ExpiredAt:      expiredAt,
			},
		},
		{
			name:     "订单号冲突后重新生成",
			req:      validRequest,
			suffixes: []string{"AAAAAA", "BBBBBB", "CCCCCC"},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, Prepayer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				p := svcmocks.NewMockPrepayer(ctrl)
				gomock.InOrder(
					repo.EXPECT().ReserveOrderNo(gomock.Any(), "YJ20250305120000AAAAAA").Return(false, nil),
					repo.EXPECT().ReserveOrderNo(gomock.Any(), "YJ20250305120000BBBBBB").Return(false, nil),
					repo.EXPECT().ReserveOrderNo(gomock.Any(), "YJ20250305120000CCCCCC").Return(true, nil),
				)
				p.EXPECT().Prepay(gomock.Any(), domain.PayTypeH5, gomock.Any()).
					Return(domain.PrepayResult{PayType: domain.PayTypeH5, PayURL: "https://wx.tenpay.com/h5"}, nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				return repo, p
			},
			wantRes: domain.CreateOrderResult{
				OrderNo:   "YJ20250305120000CCCCCC",
				PayType:   domain.PayTypeH5,
				PayURL:    "https://wx.tenpay.com/h5",
				ExpiredAt: expiredAt,
			},
		},
		{
			name:     "订单号连续冲突三次",
			req:      validRequest,
			suffixes: []string{"AAAAAA", "BBBBBB", "CCCCCC", "DDDDDD"},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, Prepayer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().ReserveOrderNo(gomock.Any(), gomock.Any()).Return(false, nil).Times(3)
				return repo, svcmocks.NewMockPrepayer(ctrl)
			},
			wantErr: errs.ErrGenerateOrderNo,
		},
		{
			name:     "Redis不可用时依赖唯一索引",
			req:      validRequest,
			suffixes: []string{"ABCDEF"},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, Prepayer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				p := svcmocks.NewMockPrepayer(ctrl)
				repo.EXPECT().ReserveOrderNo(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
				p.EXPECT().Prepay(gomock.Any(), domain.PayTypeH5, gomock.Any()).
					Return(domain.PrepayResult{PayType: domain.PayTypeH5, PayURL: "https://wx.tenpay.com/h5"}, nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				return repo, p
			},
			wantRes: domain.CreateOrderResult{
				OrderNo:   "YJ20250305120000ABCDEF",
				PayType:   domain.PayTypeH5,
				PayURL:    "https://wx.tenpay.com/h5",
				ExpiredAt: expiredAt,
			},
		},
		{
			name:     "预下单失败记录失败订单",
			req:      validRequest,
			suffixes: []string{"ABCDEF"},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, Prepayer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				p := svcmocks.NewMockPrepayer(ctrl)
				repo.EXPECT().ReserveOrderNo(gomock.Any(), gomock.Any()).Return(true, nil)
				p.EXPECT().Prepay(gomock.Any(), domain.PayTypeH5, gomock.Any()).Return(domain.PrepayResult{}, prepayErr)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, o domain.Order) (int64, error) {
						assert.Equal(t, domain.StatusFailed, o.Status)
						assert.Equal(t, "YJ20250305120000ABCDEF", o.OrderNo)
						assert.Equal(t, "", o.PayURL)
						return 1, nil
					})
				return repo, p
			},
			wantErr: prepayErr,
		},
		{
			name:     "预下单失败且失败订单写入失败",
			req:      validRequest,
			suffixes: []string{"ABCDEF"},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, Prepayer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				p := svcmocks.NewMockPrepayer(ctrl)
				repo.EXPECT().ReserveOrderNo(gomock.Any(), gomock.Any()).Return(true, nil)
				p.EXPECT().Prepay(gomock.Any(), domain.PayTypeH5, gomock.Any()).Return(domain.PrepayResult{}, prepayErr)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db error"))
				return repo, p
			},
			wantErr: prepayErr,
		},
		{
			name:     "保存订单失败",
			req:      validRequest,
			suffixes: []string{"ABCDEF"},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, Prepayer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				p := svcmocks.NewMockPrepayer(ctrl)
				repo.EXPECT().ReserveOrderNo(gomock.Any(), gomock.Any()).Return(true, nil)
				p.EXPECT().Prepay(gomock.Any(), domain.PayTypeH5, gomock.Any()).
					Return(domain.PrepayResult{PayType: domain.PayTypeH5, PayURL: "https://wx.tenpay.com/h5"}, nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db error"))
				return repo, p
			},
			wantErr: errs.ErrCreateOrderFailed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo, p := tc.mock(ctrl)
			checkConfig := tc.checkConfig
			if checkConfig == nil {
				checkConfig = func() error { return nil }
			}
			svc := NewService(repo, p, sequenceGenerator(tc.suffixes...),
				evtmocks.NewMockOrderPaidEventProducer(ctrl), checkConfig, 0).(*service)
			svc.now = func() time.Time { return fixedNow }

			res, err := svc.CreateOrder(context.Background(), tc.req())
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestService_HandleNotification(t *testing.T) {
	paidAt := time.Date(2025, 3, 5, 12, 1, 0, 0, domain.Location)
	paidOrder := domain.Order{
		OrderNo:    "YJ20250305120000ABCDEF",
		UserID:     "u1",
		PackageKey: "basic",
		Amount:     decimal.RequireFromString("9.9"),
		Status:     domain.StatusPaid,
	}
	wantEvt := event.OrderPaidEvent{
		OrderNo:    "YJ20250305120000ABCDEF",
		UserID:     "u1",
		PackageKey: "basic",
		AmountFen:  990,
		TradeNo:    "4200001",
		PaidAt:     paidAt.UnixMilli(),
	}
	success := domain.Notification{
		OrderNo:    "YJ20250305120000ABCDEF",
		TradeNo:    "4200001",
		TradeState: "SUCCESS",
		PaidAt:     paidAt,
	}

	testCases := []struct {
		name    string
		n       domain.Notification
		mock    func(ctrl *gomock.Controller) (repository.OrderRepository, event.OrderPaidEventProducer)
		wantErr error
	}{
		{
			name: "支付成功",
			n:    success,
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, event.OrderPaidEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				p := evtmocks.NewMockOrderPaidEventProducer(ctrl)
				repo.EXPECT().MarkPaid(gomock.Any(), "YJ20250305120000ABCDEF", "4200001", paidAt).Return(true, nil)
				repo.EXPECT().FindByOrderNo(gomock.Any(), "YJ20250305120000ABCDEF").Return(paidOrder, nil)
				p.EXPECT().Produce(gomock.Any(), wantEvt).Return(nil)
				return repo, p
			},
		},
		{
			name: "重复通知仍然发送事件",
			n:    success,
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, event.OrderPaidEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				p := evtmocks.NewMockOrderPaidEventProducer(ctrl)
				repo.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().FindByOrderNo(gomock.Any(), gomock.Any()).Return(paidOrder, nil)
				p.EXPECT().Produce(gomock.Any(), wantEvt).Return(nil)
				return repo, p
			},
		},
		{
			name: "订单不存在",
			n:    success,
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, event.OrderPaidEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().FindByOrderNo(gomock.Any(), gomock.Any()).Return(domain.Order{}, repository.ErrOrderNotFound)
				return repo, evtmocks.NewMockOrderPaidEventProducer(ctrl)
			},
		},
		{
			name: "失败订单不发送事件",
			n:    success,
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, event.OrderPaidEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().FindByOrderNo(gomock.Any(), gomock.Any()).Return(domain.Order{Status: domain.StatusFailed}, nil)
				return repo, evtmocks.NewMockOrderPaidEventProducer(ctrl)
			},
		},
		{
			name: "没有支付时间使用当前时间",
			n: domain.Notification{
				OrderNo:    "YJ20250305120000ABCDEF",
				TradeNo:    "4200001",
				TradeState: "SUCCESS",
			},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, event.OrderPaidEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				p := evtmocks.NewMockOrderPaidEventProducer(ctrl)
				repo.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), gomock.Any(), fixedNow).Return(true, nil)
				repo.EXPECT().FindByOrderNo(gomock.Any(), gomock.Any()).Return(paidOrder, nil)
				p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				return repo, p
			},
		},
		{
			name: "更新订单失败",
			n:    success,
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, event.OrderPaidEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("db error"))
				return repo, evtmocks.NewMockOrderPaidEventProducer(ctrl)
			},
			wantErr: fmt.Errorf("标记订单已支付失败: %w", errors.New("db error")),
		},
		{
			name: "发送事件失败",
			n:    success,
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, event.OrderPaidEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				p := evtmocks.NewMockOrderPaidEventProducer(ctrl)
				repo.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().FindByOrderNo(gomock.Any(), gomock.Any()).Return(paidOrder, nil)
				p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq error"))
				return repo, p
			},
			wantErr: fmt.Errorf("发送订单支付成功事件失败: %w", errors.New("mq error")),
		},
		{
			name: "订单已关闭",
			n: domain.Notification{
				OrderNo:    "YJ20250305120000ABCDEF",
				TradeState: "CLOSED",
			},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, event.OrderPaidEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().MarkFailed(gomock.Any(), "YJ20250305120000ABCDEF").Return(true, nil)
				return repo, evtmocks.NewMockOrderPaidEventProducer(ctrl)
			},
		},
		{
			name: "支付失败",
			n: domain.Notification{
				OrderNo:    "YJ20250305120000ABCDEF",
				TradeState: "PAYERROR",
			},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, event.OrderPaidEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().MarkFailed(gomock.Any(), "YJ20250305120000ABCDEF").Return(false, nil)
				return repo, evtmocks.NewMockOrderPaidEventProducer(ctrl)
			},
		},
		{
			name: "未支付状态忽略",
			n: domain.Notification{
				OrderNo:    "YJ20250305120000ABCDEF",
				TradeState: "NOTPAY",
			},
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, event.OrderPaidEventProducer) {
				return repomocks.NewMockOrderRepository(ctrl), evtmocks.NewMockOrderPaidEventProducer(ctrl)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo, p := tc.mock(ctrl)
			svc := NewService(repo, svcmocks.NewMockPrepayer(ctrl), sequenceGenerator(), p,
				func() error { return nil }, 0).(*service)
			svc.now = func() time.Time { return fixedNow }

			err := svc.HandleNotification(context.Background(), tc.n)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestService_FindOrder(t *testing.T) {
	testCases := []struct {
		name       string
		order      domain.Order
		findErr    error
		wantStatus domain.OrderStatus
		wantErr    error
	}{
		{
			name:       "待支付",
			order:      domain.Order{Status: domain.StatusPending, ExpiredAt: fixedNow.Add(time.Minute)},
			wantStatus: domain.StatusPending,
		},
		{
			name:       "过期未关单按已过期返回",
			order:      domain.Order{Status: domain.StatusPending, ExpiredAt: fixedNow.Add(-time.Minute)},
			wantStatus: domain.StatusExpired,
		},
		{
			name:       "已支付",
			order:      domain.Order{Status: domain.StatusPaid, ExpiredAt: fixedNow.Add(-time.Minute)},
			wantStatus: domain.StatusPaid,
		},
		{
			name:    "订单不存在",
			findErr: repository.ErrOrderNotFound,
			wantErr: repository.ErrOrderNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repomocks.NewMockOrderRepository(ctrl)
			repo.EXPECT().FindByOrderNo(gomock.Any(), "YJ1").Return(tc.order, tc.findErr)
			svc := NewService(repo, svcmocks.NewMockPrepayer(ctrl), sequenceGenerator(),
				evtmocks.NewMockOrderPaidEventProducer(ctrl), func() error { return nil }, 0).(*service)
			svc.now = func() time.Time { return fixedNow }

			o, err := svc.FindOrder(context.Background(), "YJ1")
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantStatus, o.Status)
		})
	}
}
