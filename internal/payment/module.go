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

package payment

import (
	"time"

	"github.com/youjin-ai/youjin/internal/payment/internal/domain"
	"github.com/youjin-ai/youjin/internal/payment/internal/event"
	"github.com/youjin-ai/youjin/internal/payment/internal/job"
	"github.com/youjin-ai/youjin/internal/payment/internal/service"
	"github.com/youjin-ai/youjin/internal/payment/internal/service/wechat"
	"github.com/youjin-ai/youjin/internal/payment/internal/web"
)

type (
	Handler               = web.Handler
	Service               = service.Service
	CloseExpiredOrdersJob = job.CloseExpiredOrdersJob
	WechatConfig          = wechat.Config
	NotifyHandler         = wechat.NotifyHandler
	Order                 = domain.Order
	OrderPaidEvent        = event.OrderPaidEvent
)

const OrderPaidEventName = event.OrderPaidEventName

// Config 对应配置文件中的 payment
type Config struct {
	OrderNoPrefix string
	OrderTTL      time.Duration
	// 关闭过期订单任务每批处理的数量, 以及过期之后额外等待的时间
	CloseBatchSize int
	CloseGrace     time.Duration
}

type Module struct {
	Hdl                   *Handler
	Svc                   Service
	CloseExpiredOrdersJob *CloseExpiredOrdersJob
}

// NormalizePrivateKey 兼容完整 PEM、只有 base64 主体以及带字面量 \n 的商户私钥
func NormalizePrivateKey(raw string) string {
	return wechat.NormalizePrivateKey(raw)
}
