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

package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/youjin-ai/youjin/internal/quota/internal/service"
)

type OrderPaidConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	l        *elog.Component
}

func NewOrderPaidConsumer(svc service.Service, q mq.MQ) (*OrderPaidConsumer, error) {
	const groupID = "quota"
	consumer, err := q.Consumer(orderPaidEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &OrderPaidConsumer{
		svc:      svc,
		consumer: consumer,
		l:        elog.DefaultLogger,
	}, nil
}

// Start ctx 被取消后退出
func (c *OrderPaidConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.l.Error("消费订单支付成功事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *OrderPaidConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt OrderPaidEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if evt.OrderNo == "" || evt.UserID == "" {
		return errors.New("订单支付成功事件缺少订单号或用户ID")
	}

	granted, err := c.svc.GrantByOrder(ctx, evt.OrderNo, evt.UserID, evt.PackageKey)
	if err != nil {
		return err
	}
	if !granted {
		c.l.Info("订单没有发放额度",
			elog.String("orderNo", evt.OrderNo),
			elog.String("packageKey", evt.PackageKey))
	}
	return nil
}

func (c *OrderPaidConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
