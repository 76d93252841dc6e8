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

package wechat_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/h5"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
	"github.com/youjin-ai/youjin/internal/payment/internal/domain"
	"github.com/youjin-ai/youjin/internal/payment/internal/service/wechat"
	wechatmocks "github.com/youjin-ai/youjin/internal/payment/internal/service/wechat/mocks"
	"go.uber.org/mock/gomock"
)

func TestPrepayer_Prepay(t *testing.T) {
	cfg := wechat.Config{
		AppID:     "wx123",
		MchID:     "1900000001",
		NotifyURL: "https://example.com/pay/callback",
	}
	pp := domain.Prepay{
		OrderNo:     "YJ20250305120000ABCDEF",
		Description: "基础版",
		AmountFen:   990,
		ExpiredAt:   time.Date(2025, 3, 5, 12, 5, 0, 0, domain.Location),
		ClientIP:    "1.2.3.4",
	}
	noAuth := wechat.Reply{Kind: wechat.ReplyKindError, Code: "NO_AUTH", Message: "商户号该产品权限未开通"}
	noAuthErr := &wechat.VendorError{StatusCode: 403, Code: "NO_AUTH", Message: "商户号该产品权限未开通"}

	testCases := []struct {
		name    string
		payType domain.PayType
		mock    func(ctrl *gomock.Controller) wechat.Gateway
		wantRes domain.PrepayResult
		wantErr error
	}{
		{
			name:    "H5下单成功",
			payType: domain.PayTypeH5,
			mock: func(ctrl *gomock.Controller) wechat.Gateway {
				gw := wechatmocks.NewMockGateway(ctrl)
				gw.EXPECT().Do(gomock.Any(), wechat.H5PrepayPath, gomock.Any()).
					DoAndReturn(func(ctx context.Context, path string, body any) (wechat.Reply, error) {
						req := body.(h5.PrepayRequest)
						assert.Equal(t, "YJ20250305120000ABCDEF", *req.OutTradeNo)
						assert.Equal(t, int64(990), *req.Amount.Total)
						assert.Equal(t, "1.2.3.4", *req.SceneInfo.PayerClientIp)
						assert.Equal(t, "Wap", *req.SceneInfo.H5Info.Type)
						return wechat.Reply{Kind: wechat.ReplyKindH5, URL: "https://wx.tenpay.com/h5"}, nil
					})
				return gw
			},
			wantRes: domain.PrepayResult{PayType: domain.PayTypeH5, PayURL: "https://wx.tenpay.com/h5"},
		},
		{
			name:    "直接Native下单不降级",
			payType: domain.PayTypeNative,
			mock: func(ctrl *gomock.Controller) wechat.Gateway {
				gw := wechatmocks.NewMockGateway(ctrl)
				gw.EXPECT().Do(gomock.Any(), wechat.NativePrepayPath, gomock.Any()).
					Return(wechat.Reply{Kind: wechat.ReplyKindNative, URL: "weixin://wxpay/bizpayurl?pr=abc"}, nil)
				return gw
			},
			wantRes: domain.PrepayResult{PayType: domain.PayTypeNative, PayURL: "weixin://wxpay/bizpayurl?pr=abc"},
		},
		{
			name:    "直接Native下单失败只请求一次",
			payType: domain.PayTypeNative,
			mock: func(ctrl *gomock.Controller) wechat.Gateway {
				gw := wechatmocks.NewMockGateway(ctrl)
				gw.EXPECT().Do(gomock.Any(), wechat.NativePrepayPath, gomock.Any()).Return(noAuth, noAuthErr).Times(1)
				return gw
			},
			wantErr: noAuthErr,
		},
		{
			name:    "NO_AUTH降级为Native",
			payType: domain.PayTypeH5,
			mock: func(ctrl *gomock.Controller) wechat.Gateway {
				gw := wechatmocks.NewMockGateway(ctrl)
				gomock.InOrder(
					gw.EXPECT().Do(gomock.Any(), wechat.H5PrepayPath, gomock.Any()).Return(noAuth, noAuthErr),
					gw.EXPECT().Do(gomock.Any(), wechat.NativePrepayPath, gomock.Any()).
						DoAndReturn(func(ctx context.Context, path string, body any) (wechat.Reply, error) {
							req := body.(native.PrepayRequest)
							assert.Equal(t, "YJ20250305120000ABCDEF", *req.OutTradeNo)
							assert.Equal(t, "基础版", *req.Description)
							assert.Equal(t, "https://example.com/pay/callback", *req.NotifyUrl)
							assert.True(t, req.TimeExpire.Equal(pp.ExpiredAt))
							return wechat.Reply{Kind: wechat.ReplyKindNative, URL: "weixin://wxpay/bizpayurl?pr=abc"}, nil
						}),
				)
				return gw
			},
			wantRes: domain.PrepayResult{
				PayType:        domain.PayTypeNative,
				PayURL:         "weixin://wxpay/bizpayurl?pr=abc",
				FallbackReason: "商户号该产品权限未开通",
			},
		},
		{
			name:    "错误信息提示权限未开通时降级",
			payType: domain.PayTypeH5,
			mock: func(ctrl *gomock.Controller) wechat.Gateway {
				gw := wechatmocks.NewMockGateway(ctrl)
				reply := wechat.Reply{Kind: wechat.ReplyKindError, Code: "PARAM_ERROR", Message: "H5支付权限未开通"}
				gw.EXPECT().Do(gomock.Any(), wechat.H5PrepayPath, gomock.Any()).
					Return(reply, &wechat.VendorError{StatusCode: 400, Code: reply.Code, Message: reply.Message})
				gw.EXPECT().Do(gomock.Any(), wechat.NativePrepayPath, gomock.Any()).
					Return(wechat.Reply{Kind: wechat.ReplyKindNative, URL: "weixin://wxpay/bizpayurl?pr=abc"}, nil)
				return gw
			},
			wantRes: domain.PrepayResult{
				PayType:        domain.PayTypeNative,
				PayURL:         "weixin://wxpay/bizpayurl?pr=abc",
				FallbackReason: "H5支付权限未开通",
			},
		},
		{
			name:    "没有错误信息时使用默认降级原因",
			payType: domain.PayTypeH5,
			mock: func(ctrl *gomock.Controller) wechat.Gateway {
				gw := wechatmocks.NewMockGateway(ctrl)
				gw.EXPECT().Do(gomock.Any(), wechat.H5PrepayPath, gomock.Any()).
					Return(wechat.Reply{Kind: wechat.ReplyKindError, Code: "NO_AUTH"}, &wechat.VendorError{StatusCode: 403, Code: "NO_AUTH"})
				gw.EXPECT().Do(gomock.Any(), wechat.NativePrepayPath, gomock.Any()).
					Return(wechat.Reply{Kind: wechat.ReplyKindNative, URL: "weixin://wxpay/bizpayurl?pr=abc"}, nil)
				return gw
			},
			wantRes: domain.PrepayResult{
				PayType:        domain.PayTypeNative,
				PayURL:         "weixin://wxpay/bizpayurl?pr=abc",
				FallbackReason: "H5支付不可用，已自动切换为扫码支付",
			},
		},
		{
			name:    "其他错误码不降级",
			payType: domain.PayTypeH5,
			mock: func(ctrl *gomock.Controller) wechat.Gateway {
				gw := wechatmocks.NewMockGateway(ctrl)
				gw.EXPECT().Do(gomock.Any(), wechat.H5PrepayPath, gomock.Any()).
					Return(wechat.Reply{Kind: wechat.ReplyKindError, Code: "SYSTEM_ERROR", Message: "系统繁忙"},
						&wechat.VendorError{StatusCode: 500, Code: "SYSTEM_ERROR", Message: "系统繁忙"}).Times(1)
				return gw
			},
			wantErr: &wechat.VendorError{StatusCode: 500, Code: "SYSTEM_ERROR", Message: "系统繁忙"},
		},
		{
			name:    "网络错误不降级",
			payType: domain.PayTypeH5,
			mock: func(ctrl *gomock.Controller) wechat.Gateway {
				gw := wechatmocks.NewMockGateway(ctrl)
				gw.EXPECT().Do(gomock.Any(), wechat.H5PrepayPath, gomock.Any()).
					Return(wechat.Reply{Kind: wechat.ReplyKindError}, &wechat.TransportError{Err: context.DeadlineExceeded}).Times(1)
				return gw
			},
			wantErr: &wechat.TransportError{Err: context.DeadlineExceeded},
		},
		{
			name:    "降级后Native也失败使用Native错误信息",
			payType: domain.PayTypeH5,
			mock: func(ctrl *gomock.Controller) wechat.Gateway {
				gw := wechatmocks.NewMockGateway(ctrl)
				gw.EXPECT().Do(gomock.Any(), wechat.H5PrepayPath, gomock.Any()).Return(noAuth, noAuthErr)
				gw.EXPECT().Do(gomock.Any(), wechat.NativePrepayPath, gomock.Any()).
					Return(wechat.Reply{Kind: wechat.ReplyKindError, Code: "NO_AUTH", Message: "Native支付权限未开通"},
						&wechat.VendorError{StatusCode: 403, Code: "NO_AUTH", Message: "Native支付权限未开通"}).Times(1)
				return gw
			},
			wantErr: &wechat.VendorError{StatusCode: 403, Code: "NO_AUTH", Message: "Native支付权限未开通"},
		},
		{
			name:    "降级后Native失败且没有信息时使用H5错误信息",
			payType: domain.PayTypeH5,
			mock: func(ctrl *gomock.Controller) wechat.Gateway {
				gw := wechatmocks.NewMockGateway(ctrl)
				gw.EXPECT().Do(gomock.Any(), wechat.H5PrepayPath, gomock.Any()).Return(noAuth, noAuthErr)
				gw.EXPECT().Do(gomock.Any(), wechat.NativePrepayPath, gomock.Any()).
					Return(wechat.Reply{Kind: wechat.ReplyKindError}, &wechat.VendorError{StatusCode: 500})
				return gw
			},
			wantErr: &wechat.VendorError{StatusCode: 500, Code: "NO_AUTH", Message: "商户号该产品权限未开通"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			p := wechat.NewPrepayer(tc.mock(ctrl), cfg)
			res, err := p.Prepay(context.Background(), tc.payType, pp)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestVendorError_Error(t *testing.T) {
	assert.Equal(t, "系统繁忙", (&wechat.VendorError{Code: "SYSTEM_ERROR", Message: "系统繁忙"}).Error())
	assert.Equal(t, "SYSTEM_ERROR", (&wechat.VendorError{Code: "SYSTEM_ERROR"}).Error())
	assert.Equal(t, "微信支付接口调用失败", (&wechat.VendorError{}).Error())
	assert.Equal(t, "未获取到H5支付链接", (&wechat.MissingURLError{PayType: domain.PayTypeH5}).Error())
	assert.Equal(t, "未获取到支付二维码", (&wechat.MissingURLError{PayType: domain.PayTypeNative}).Error())
	assert.Equal(t, "中转服务调用失败", (&wechat.RelayError{}).Error())
	assert.True(t, errors.Is(&wechat.TransportError{Err: context.Canceled}, context.Canceled))
}
