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
	"strings"

	"github.com/gotomicro/ego/core/elog"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/h5"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
	"github.com/youjin-ai/youjin/internal/payment/internal/domain"
)

const (
	codeNoAuth            = "NO_AUTH"
	defaultFallbackReason = "H5支付不可用，已自动切换为扫码支付"
	currencyCNY           = "CNY"
)

// 商户未开通 H5 支付时微信返回的提示
var permissionPhrases = []string{
	"权限",
	"未开通",
	"not authorized",
	"no auth",
}

// Prepayer 预下单, H5 未开通时自动降级为 Native, 最多降级一次
type Prepayer struct {
	gw  Gateway
	cfg Config
	l   *elog.Component
}

func NewPrepayer(gw Gateway, cfg Config) *Prepayer {
	return &Prepayer{
		gw:  gw,
		cfg: cfg,
		l:   elog.DefaultLogger,
	}
}

func (p *Prepayer) Prepay(ctx context.Context, payType domain.PayType, pp domain.Prepay) (domain.PrepayResult, error) {
	if payType == domain.PayTypeNative {
		reply, err := p.gw.Do(ctx, NativePrepayPath, p.nativeRequest(pp))
		if err != nil {
			p.l.Error("Native预下单失败",
				elog.String("orderNo", pp.OrderNo),
				elog.FieldErr(err))
			return domain.PrepayResult{}, err
		}
		return domain.PrepayResult{PayType: domain.PayTypeNative, PayURL: reply.URL}, nil
	}

	h5Reply, h5Err := p.gw.Do(ctx, H5PrepayPath, p.h5Request(pp))
	if h5Err == nil {
		return domain.PrepayResult{PayType: domain.PayTypeH5, PayURL: h5Reply.URL}, nil
	}
	if !shouldFallback(h5Reply) {
		p.l.Error("H5预下单失败",
			elog.String("orderNo", pp.OrderNo),
			elog.FieldErr(h5Err))
		return domain.PrepayResult{}, h5Err
	}

	reason := h5Reply.Message
	if reason == "" {
		reason = defaultFallbackReason
	}
	p.l.Warn("H5支付未开通, 降级为Native支付",
		elog.String("orderNo", pp.OrderNo),
		elog.String("code", h5Reply.Code),
		elog.String("reason", reason))

	nativeReply, nativeErr := p.gw.Do(ctx, NativePrepayPath, p.nativeRequest(pp))
	if nativeErr != nil {
		err := bestError(h5Reply, nativeErr)
		p.l.Error("降级后Native预下单失败",
			elog.String("orderNo", pp.OrderNo),
			elog.FieldErr(nativeErr))
		return domain.PrepayResult{}, err
	}
	return domain.PrepayResult{
		PayType:        domain.PayTypeNative,
		PayURL:         nativeReply.URL,
		FallbackReason: reason,
	}, nil
}

func (p *Prepayer) h5Request(pp domain.Prepay) h5.PrepayRequest {
	return h5.PrepayRequest{
		Appid:       core.String(p.cfg.AppID),
		Mchid:       core.String(p.cfg.MchID),
		Description: core.String(pp.Description),
		OutTradeNo:  core.String(pp.OrderNo),
		TimeExpire:  core.Time(pp.ExpiredAt),
		NotifyUrl:   core.String(p.cfg.NotifyURL),
		Amount: &h5.Amount{
			Currency: core.String(currencyCNY),
			Total:    core.Int64(pp.AmountFen),
		},
		SceneInfo: &h5.SceneInfo{
			PayerClientIp: core.String(pp.ClientIP),
			H5Info: &h5.H5Info{
				Type: core.String(p.cfg.h5Type()),
			},
		},
	}
}

// nativeRequest 与 H5 相同的订单号、金额、描述、回调地址和过期时间, 不带 scene_info
func (p *Prepayer) nativeRequest(pp domain.Prepay) native.PrepayRequest {
	return native.PrepayRequest{
		Appid:       core.String(p.cfg.AppID),
		Mchid:       core.String(p.cfg.MchID),
		Description: core.String(pp.Description),
		OutTradeNo:  core.String(pp.OrderNo),
		TimeExpire:  core.Time(pp.ExpiredAt),
		NotifyUrl:   core.String(p.cfg.NotifyURL),
		Amount: &native.Amount{
			Currency: core.String(currencyCNY),
			Total:    core.Int64(pp.AmountFen),
		},
	}
}

// shouldFallback 没有拿到 h5_url, 并且错误码或者错误信息表明 H5 权限未开通
func shouldFallback(reply Reply) bool {
	if reply.URL != "" {
		return false
	}
	if reply.Code == codeNoAuth {
		return true
	}
	msg := strings.ToLower(reply.Message)
	for _, phrase := range permissionPhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}

// bestError 降级后仍然失败, 优先使用 Native 的错误信息, 其次 Native 错误码, 最后是 H5 的错误信息
func bestError(h5Reply Reply, nativeErr error) error {
	var ve *VendorError
	if errors.As(nativeErr, &ve) && ve.Message == "" && ve.Code == "" && h5Reply.Message != "" {
		return &VendorError{StatusCode: ve.StatusCode, Code: h5Reply.Code, Message: h5Reply.Message}
	}
	return nativeErr
}
