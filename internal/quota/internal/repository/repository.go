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

package repository

import (
	"context"
	"errors"

	"github.com/youjin-ai/youjin/internal/quota/internal/domain"
	"github.com/youjin-ai/youjin/internal/quota/internal/repository/dao"
)

var ErrDuplicatedGrant = dao.ErrDuplicatedGrant

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/repository.mock.go -typed QuotaRepository
type QuotaRepository interface {
	Grant(ctx context.Context, g domain.Grant) error
	// FindByUserID 没有额度账户时返回零值
	FindByUserID(ctx context.Context, userID string) (domain.Quota, error)
}

type quotaRepository struct {
	dao dao.QuotaDAO
}

func NewQuotaRepository(d dao.QuotaDAO) QuotaRepository {
	return &quotaRepository{dao: d}
}

func (r *quotaRepository) Grant(ctx context.Context, g domain.Grant) error {
	return r.dao.Grant(ctx, dao.QuotaGrant{
		OrderNo:    g.OrderNo,
		UserId:     g.UserID,
		PackageKey: g.PackageKey,
		Amount:     g.Amount,
	})
}

func (r *quotaRepository) FindByUserID(ctx context.Context, userID string) (domain.Quota, error) {
	q, err := r.dao.FindByUserID(ctx, userID)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Quota{UserID: userID}, nil
	}
	if err != nil {
		return domain.Quota{}, err
	}
	return domain.Quota{
		UserID: q.UserId,
		Total:  q.Total,
		Used:   q.Used,
	}, nil
}
