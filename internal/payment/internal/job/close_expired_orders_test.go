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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	svcmocks "github.com/youjin-ai/youjin/internal/payment/mocks"
	"github.com/youjin-ai/youjin/internal/payment/internal/domain"
	"github.com/youjin-ai/youjin/internal/payment/internal/service"
	"go.uber.org/mock/gomock"
)

func TestCloseExpiredOrdersJob_Run(t *testing.T) {
	now := time.Date(2025, 3, 5, 12, 0, 0, 0, domain.Location)
	before := now.Add(-time.Minute)
	page := func(ids ...int64) []domain.Order {
		res := make([]domain.Order, 0, len(ids))
		for _, id := range ids {
			res = append(res, domain.Order{ID: id, Status: domain.StatusPending})
		}
		return res
	}

	testCases := []struct {
		name    string
		limit   int
		mock    func(ctrl *gomock.Controller) service.Service
		wantErr error
	}{
		{
			name:  "没有过期订单",
			limit: 2,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().FindExpiredPendingOrders(gomock.Any(), 0, 2, before).Return(nil, int64(0), nil)
				return svc
			},
		},
		{
			name:  "一批关闭完成",
			limit: 2,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().FindExpiredPendingOrders(gomock.Any(), 0, 2, before).Return(page(1), int64(1), nil)
				svc.EXPECT().CloseExpiredOrders(gomock.Any(), []int64{1}, before).Return(int64(1), nil)
				return svc
			},
		},
		{
			name:  "分多批关闭",
			limit: 2,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				gomock.InOrder(
					svc.EXPECT().FindExpiredPendingOrders(gomock.Any(), 0, 2, before).Return(page(1, 2), int64(5), nil),
					svc.EXPECT().CloseExpiredOrders(gomock.Any(), []int64{1, 2}, before).Return(int64(2), nil),
					svc.EXPECT().FindExpiredPendingOrders(gomock.Any(), 0, 2, before).Return(page(3, 4), int64(3), nil),
					svc.EXPECT().CloseExpiredOrders(gomock.Any(), []int64{3, 4}, before).Return(int64(2), nil),
					svc.EXPECT().FindExpiredPendingOrders(gomock.Any(), 0, 2, before).Return(page(5), int64(1), nil),
					svc.EXPECT().CloseExpiredOrders(gomock.Any(), []int64{5}, before).Return(int64(1), nil),
				)
				return svc
			},
		},
		{
			name:  "一条都没有关闭时停止",
			limit: 2,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().FindExpiredPendingOrders(gomock.Any(), 0, 2, before).Return(page(1, 2), int64(4), nil)
				svc.EXPECT().CloseExpiredOrders(gomock.Any(), []int64{1, 2}, before).Return(int64(0), nil)
				return svc
			},
		},
		{
			name:  "查询失败",
			limit: 2,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().FindExpiredPendingOrders(gomock.Any(), 0, 2, before).Return(nil, int64(0), errors.New("db error"))
				return svc
			},
			wantErr: errors.New("获取过期订单失败: db error"),
		},
		{
			name:  "关闭失败",
			limit: 2,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().FindExpiredPendingOrders(gomock.Any(), 0, 2, before).Return(page(1), int64(1), nil)
				svc.EXPECT().CloseExpiredOrders(gomock.Any(), []int64{1}, before).Return(int64(0), errors.New("db error"))
				return svc
			},
			wantErr: errors.New("关闭过期订单失败: db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			j := NewCloseExpiredOrdersJob(tc.mock(ctrl), tc.limit, time.Minute)
			j.now = func() time.Time { return now }
			err := j.Run(context.Background())
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
