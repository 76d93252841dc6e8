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

package errs

import "errors"

var (
	SystemError   = ErrorCode{Code: 516001, Msg: "系统错误"}
	OrderNotFound = ErrorCode{Code: 516002, Msg: "订单不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

// 下单接口直接把下面的错误信息返回给前端
var (
	ErrMissingParams      = errors.New("缺少必要参数")
	ErrUnsupportedPayType = errors.New("不支持的支付方式")
	ErrInvalidAmount      = errors.New("金额不合法")
	ErrCreateOrderFailed  = errors.New("订单创建失败")
	ErrGenerateOrderNo    = errors.New("订单号生成失败")
	ErrUnknown            = errors.New("创建订单失败")
)
