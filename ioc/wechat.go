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

package ioc

import (
	"context"
	"os"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/core/auth/verifiers"
	"github.com/wechatpay-apiv3/wechatpay-go/core/downloader"
	"github.com/wechatpay-apiv3/wechatpay-go/core/notify"
	"github.com/wechatpay-apiv3/wechatpay-go/core/option"
	"github.com/wechatpay-apiv3/wechatpay-go/utils"
	"github.com/youjin-ai/youjin/internal/payment"
)

func InitPaymentConfig() payment.Config {
	var cfg payment.Config
	if err := econf.UnmarshalKey("payment", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

// InitWechatConfig 私钥优先取配置中的内容, 为空时读取 keyPath 指向的文件
func InitWechatConfig() payment.WechatConfig {
	var cfg payment.WechatConfig
	if err := econf.UnmarshalKey("wechat.payment", &cfg); err != nil {
		panic(err)
	}
	if cfg.PrivateKey == "" && cfg.KeyPath != "" {
		data, err := os.ReadFile(cfg.KeyPath)
		if err != nil {
			elog.DefaultLogger.Error("读取商户私钥文件失败",
				elog.String("keyPath", cfg.KeyPath),
				elog.FieldErr(err))
		} else {
			cfg.PrivateKey = string(data)
		}
	}
	if err := cfg.Validate(); err != nil {
		elog.DefaultLogger.Warn("微信支付配置不完整, 下单与支付通知都会被拒绝",
			elog.Any("mchIdSet", cfg.MchID != ""),
			elog.Any("appIdSet", cfg.AppID != ""),
			elog.Any("serialSet", cfg.MchSerialNum != ""),
			elog.Any("privateKeySet", cfg.PrivateKey != ""),
			elog.Any("apiV3KeySet", cfg.MchKey != ""))
	}
	return cfg
}

// InitWechatNotifyHandler 注册平台证书自动下载, 之后用下载到的证书验证通知签名
func InitWechatNotifyHandler(cfg payment.WechatConfig) payment.NotifyHandler {
	if cfg.Validate() != nil {
		return nil
	}
	key, err := utils.LoadPrivateKey(payment.NormalizePrivateKey(cfg.PrivateKey))
	if err != nil {
		panic(err)
	}
	_, err = core.NewClient(context.Background(),
		option.WithWechatPayAutoAuthCipher(cfg.MchID, cfg.MchSerialNum, key, cfg.MchKey))
	if err != nil {
		panic(err)
	}
	visitor := downloader.MgrInstance().GetCertificateVisitor(cfg.MchID)
	handler, err := notify.NewRSANotifyHandler(cfg.MchKey, verifiers.NewSHA256WithRSAVerifier(visitor))
	if err != nil {
		panic(err)
	}
	return handler
}
