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
	"errors"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.mch.weixin.qq.com"
	DefaultTimeout = 15 * time.Second
	defaultH5Type  = "Wap"
)

// ErrConfigIncomplete 不暴露具体缺了哪一项
var ErrConfigIncomplete = errors.New("微信支付配置不完整")

// Config 商户配置, 启动后只读
type Config struct {
	AppID string
	MchID string
	// APIv3 密钥, 用于解密支付通知
	MchKey       string
	MchSerialNum string
	// 商户私钥 PEM, 为空时从 KeyPath 读取
	PrivateKey string
	KeyPath    string

	NotifyURL string
	// 中转服务, 两项都配置时所有请求都经过中转
	RelayURL   string
	RelayToken string

	BaseURL string
	Timeout time.Duration
	H5Type  string
}

func (c Config) Validate() error {
	if c.MchID == "" || c.AppID == "" || c.MchSerialNum == "" ||
		strings.TrimSpace(c.PrivateKey) == "" || c.MchKey == "" {
		return ErrConfigIncomplete
	}
	return nil
}

func (c Config) UseRelay() bool {
	return c.RelayURL != "" && c.RelayToken != ""
}

func (c Config) baseURL() string {
	if c.BaseURL == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(c.BaseURL, "/")
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

func (c Config) h5Type() string {
	if c.H5Type == "" {
		return defaultH5Type
	}
	return c.H5Type
}
