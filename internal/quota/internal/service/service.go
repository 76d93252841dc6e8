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
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"github.com/youjin-ai/youjin/internal/quota/internal/domain"
	"github.com/youjin-ai/youjin/internal/quota/internal/repository"
)

//go:generate mockgen -source=./service.go -package=quotamocks -destination=../../mocks/quota.mock.go -typed Service
type Service interface {
	// GrantByOrder 按照套餐发放额度, 同一订单只发放一次, 返回这次是否真的发放了
	GrantByOrder(ctx context.Context, orderNo, userID, packageKey string) (bool, error)
	GetQuota(ctx context.Context, userID string) (domain.Quota, error)
}

type service struct {
	repo repository.QuotaRepository
	l    *elog.Component
}

func NewService(repo repository.QuotaRepository) Service {
	return &service{
		repo: repo,
		l:    elog.DefaultLogger,
	}
}

func (s *service) GrantByOrder(ctx context.Context, orderNo, userID, packageKey string) (bool, error) {
	amount, ok := domain.QuotaOf(packageKey)
	if !ok {
		s.l.Warn("套餐没有对应的额度",
			elog.String("orderNo", orderNo),
			elog.String("packageKey", packageKey))
		return false, nil
	}
	err := s.repo.Grant(ctx, domain.Grant{
		OrderNo:    orderNo,
		UserID:     userID,
		PackageKey: packageKey,
		Amount:     amount,
	})
	if errors.Is(err, repository.ErrDuplicatedGrant) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("发放额度失败 orderNo: %s: %w", orderNo, err)
	}
	s.l.Info("发放额度成功",
		elog.String("orderNo", orderNo),
		elog.String("userId", userID),
		elog.Int64("amount", amount))
	return true, nil
}

func (s *service) GetQuota(ctx context.Context, userID string) (domain.Quota, error) {
	return s.repo.FindByUserID(ctx, userID)
}
