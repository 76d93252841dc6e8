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
	"github.com/youjin-ai/youjin/internal/payment/internal/domain"
)

const (
	genericVendorMessage = "微信支付接口调用失败"
	genericRelayMessage  = "中转服务调用失败"
)

// 下面这些错误的 Error() 都可以直接展示给用户

// RelayError 中转服务返回了 error 字段, 或者中转服务本身调用失败
type RelayError struct {
	StatusCode int
	Message    string
}

func (e *RelayError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return genericRelayMessage
}

// VendorError 微信支付返回了错误码
type VendorError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *VendorError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Code != "":
		return e.Code
	default:
		return genericVendorMessage
	}
}

// MissingURLError 调用成功但是没有拿到支付链接
type MissingURLError struct {
	PayType domain.PayType
}

func (e *MissingURLError) Error() string {
	if e.PayType == domain.PayTypeH5 {
		return "未获取到H5支付链接"
	}
	return "未获取到支付二维码"
}

// TransportError 网络错误、超时等, 原始错误里带有请求地址, 只写日志不展示
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return genericVendorMessage
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
