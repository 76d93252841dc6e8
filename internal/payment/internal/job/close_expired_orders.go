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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/youjin-ai/youjin/internal/payment/internal/domain"
	"github.com/youjin-ai/youjin/internal/payment/internal/service"
)

var _ ecron.NamedJob = (*CloseExpiredOrdersJob)(nil)

// CloseExpiredOrdersJob 把过了有效期仍未支付的订单标记为已过期
type CloseExpiredOrdersJob struct {
	svc   service.Service
	limit int
	// 过期之后再等一段时间, 给迟到的支付通知留出余量
	grace time.Duration
	now   func() time.Time
	l     *elog.Component
}

func NewCloseExpiredOrdersJob(svc service.Service, limit int, grace time.Duration) *CloseExpiredOrdersJob {
	return &CloseExpiredOrdersJob{
		svc:   svc,
		limit: limit,
		grace: grace,
		now:   time.Now,
		l:     elog.DefaultLogger,
	}
}

func (c *CloseExpiredOrdersJob) Name() string {
	return "CloseExpiredOrdersJob"
}

func (c *CloseExpiredOrdersJob) Run(ctx context.Context) error {
	before := c.now().Add(-c.grace)
	var closed int64
	for {
		orders, total, err := c.svc.FindExpiredPendingOrders(ctx, 0, c.limit, before)
		if err != nil {
			return fmt.Errorf("获取过期订单失败: %w", err)
		}
		if len(orders) == 0 {
			break
		}

		ids := slice.Map(orders, func(idx int, src domain.Order) int64 {
			return src.ID
		})
		n, err := c.svc.CloseExpiredOrders(ctx, ids, before)
		if err != nil {
			return fmt.Errorf("关闭过期订单失败: %w", err)
		}
		closed += n

		if len(orders) < c.limit || int64(c.limit) >= total {
			break
		}
		// 一条都没有关闭时停止, 避免反复查到同一批订单
		if n == 0 {
			break
		}
	}
	if closed > 0 {
		c.l.Info("关闭过期订单", elog.Int64("closed", closed))
	}
	return nil
}
