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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/youjin-ai/youjin/internal/quota/internal/domain"
	"github.com/youjin-ai/youjin/internal/quota/internal/repository"
	repomocks "github.com/youjin-ai/youjin/internal/quota/internal/repository/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_GrantByOrder(t *testing.T) {
	testCases := []struct {
		name       string
		packageKey string
		mock       func(ctrl *gomock.Controller) repository.QuotaRepository
		wantOK     bool
		wantErr    error
	}{
		{
			name:       "基础套餐",
			packageKey: "basic",
			mock: func(ctrl *gomock.Controller) repository.QuotaRepository {
				repo := repomocks.NewMockQuotaRepository(ctrl)
				repo.EXPECT().Grant(gomock.Any(), domain.Grant{
					OrderNo:    "YJ1",
					UserID:     "u1",
					PackageKey: "basic",
					Amount:     50,
				}).Return(nil)
				return repo
			},
			wantOK: true,
		},
		{
			name:       "合伙人套餐",
			packageKey: "partner",
			mock: func(ctrl *gomock.Controller) repository.QuotaRepository {
				repo := repomocks.NewMockQuotaRepository(ctrl)
				repo.EXPECT().Grant(gomock.Any(), domain.Grant{
					OrderNo:    "YJ1",
					UserID:     "u1",
					PackageKey: "partner",
					Amount:     domain.Unlimited,
				}).Return(nil)
				return repo
			},
			wantOK: true,
		},
		{
			name:       "未知套餐不发放",
			packageKey: "camp_21days",
			mock: func(ctrl *gomock.Controller) repository.QuotaRepository {
				return repomocks.NewMockQuotaRepository(ctrl)
			},
		},
		{
			name:       "重复发放",
			packageKey: "member365",
			mock: func(ctrl *gomock.Controller) repository.QuotaRepository {
				repo := repomocks.NewMockQuotaRepository(ctrl)
				repo.EXPECT().Grant(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicatedGrant)
				return repo
			},
		},
		{
			name:       "发放失败",
			packageKey: "member365",
			mock: func(ctrl *gomock.Controller) repository.QuotaRepository {
				repo := repomocks.NewMockQuotaRepository(ctrl)
				repo.EXPECT().Grant(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
				return repo
			},
			wantErr: errors.New("db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ok, err := NewService(tc.mock(ctrl)).GrantByOrder(context.Background(), "YJ1", "u1", tc.packageKey)
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestService_GetQuota(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockQuotaRepository(ctrl)
	repo.EXPECT().FindByUserID(gomock.Any(), "u1").Return(domain.Quota{UserID: "u1", Total: 50, Used: 10}, nil)
	q, err := NewService(repo).GetQuota(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, int64(40), q.Remaining())
}
