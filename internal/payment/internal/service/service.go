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
	"strings"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/youjin-ai/youjin/internal/payment/internal/domain"
	"github.com/youjin-ai/youjin/internal/payment/internal/errs"
	"github.com/youjin-ai/youjin/internal/payment/internal/event"
	"github.com/youjin-ai/youjin/internal/payment/internal/repository"
)

const (
	DefaultOrderTTL = 5 * time.Minute
	// 订单号在 Redis 中被占用时最多重新生成的次数
	maxOrderNoAttempts = 3
)

// 微信支付 trade_state
const (
	tradeStateSuccess = "SUCCESS"
	tradeStateClosed  = "CLOSED"
	tradeStatePayErr  = "PAYERROR"
	tradeStateRevoked = "REVOKED"
)

//go:generate mockgen -source=./service.go -package=svcmocks -destination=../../mocks/payment.mock.go -typed Service
type Service interface {
	// CreateOrder 下单, 返回的错误信息可以直接展示给用户
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.CreateOrderResult, error)
	// FindOrder 查询订单, 待支付订单过了有效期按照已过期返回
	FindOrder(ctx context.Context, orderNo string) (domain.Order, error)
	// HandleNotification 处理支付结果通知, 返回错误时微信会重试
	HandleNotification(ctx context.Context, n domain.Notification) error
	FindExpiredPendingOrders(ctx context.Context, offset, limit int, before time.Time) ([]domain.Order, int64, error)
	CloseExpiredOrders(ctx context.Context, ids []int64, before time.Time) (int64, error)
}

//go:generate mockgen -source=./service.go -package=svcmocks -destination=./mocks/prepayer.mock.go -typed Prepayer
type Prepayer interface {
	Prepay(ctx context.Context, payType domain.PayType, pp domain.Prepay) (domain.PrepayResult, error)
}

type OrderNoGenerator interface {
	Generate(now time.Time) (string, error)
}

// ConfigChecker 在发起任何网络请求之前检查商户配置
type ConfigChecker func() error

type service struct {
	repo        repository.OrderRepository
	prepayer    Prepayer
	generator   OrderNoGenerator
	producer    event.OrderPaidEventProducer
	checkConfig ConfigChecker
	orderTTL    time.Duration
	now         func() time.Time
	l           *elog.Component
}

func NewService(repo repository.OrderRepository,
	prepayer Prepayer,
	generator OrderNoGenerator,
	producer event.OrderPaidEventProducer,
	checkConfig ConfigChecker,
	orderTTL time.Duration) Service {
	if orderTTL <= 0 {
		orderTTL = DefaultOrderTTL
	}
	return &service{
		repo:        repo,
		prepayer:    prepayer,
		generator:   generator,
		producer:    producer,
		checkConfig: checkConfig,
		orderTTL:    orderTTL,
		now:         time.Now,
		l:           elog.DefaultLogger,
	}
}

func (s *service) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.CreateOrderResult, error) {
	if strings.TrimSpace(req.PackageKey) == "" ||
		strings.TrimSpace(req.PackageName) == "" ||
		strings.TrimSpace(req.UserID) == "" ||
		!req.Amount.Valid {
		return domain.CreateOrderResult{}, errs.ErrMissingParams
	}
	if req.PayType == "" {
		req.PayType = domain.PayTypeH5
	}
	if !req.PayType.Valid() {
		return domain.CreateOrderResult{}, errs.ErrUnsupportedPayType
	}
	fen, ok := domain.ToFen(req.Amount.Decimal)
	if !ok {
		return domain.CreateOrderResult{}, errs.ErrInvalidAmount
	}
	if err := s.checkConfig(); err != nil {
		return domain.CreateOrderResult{}, err
	}

	now := s.now()
	orderNo, err := s.mintOrderNo(ctx, now)
	if err != nil {
		return domain.CreateOrderResult{}, err
	}
	// 微信要求 time_expire 精确到秒
	expiredAt := now.Add(s.orderTTL).In(domain.Location).Truncate(time.Second)
	order := domain.Order{
		OrderNo:     orderNo,
		UserID:      req.UserID,
		PackageKey:  req.PackageKey,
		PackageName: req.PackageName,
		Amount:      req.Amount.Decimal,
		PayType:     req.PayType,
		ExpiredAt:   expiredAt,
	}

	res, err := s.prepayer.Prepay(ctx, req.PayType, domain.Prepay{
		OrderNo:     orderNo,
		Description: req.PackageName,
		AmountFen:   fen,
		ExpiredAt:   expiredAt,
		ClientIP:    req.ClientIP,
	})
	if err != nil {
		s.recordFailedOrder(ctx, order)
		return domain.CreateOrderResult{}, err
	}

	order.Status = domain.StatusPending
	order.PayType = res.PayType
	order.PayURL = res.PayURL
	if _, err = s.repo.CreateOrder(ctx, order); err != nil {
		// 微信侧的预支付单不撤销, 到期后自然失效
		s.l.Error("保存订单失败",
			elog.String("orderNo", orderNo),
			elog.String("payType", res.PayType.String()),
			elog.FieldErr(err))
		return domain.CreateOrderResult{}, errs.ErrCreateOrderFailed
	}
	s.l.Info("订单创建成功",
		elog.String("orderNo", orderNo),
		elog.String("userId", req.UserID),
		elog.String("payType", res.PayType.String()),
		elog.String("fallbackReason", res.FallbackReason))
	return domain.CreateOrderResult{
		OrderNo:        orderNo,
		PayType:        res.PayType,
		PayURL:         res.PayURL,
		FallbackReason: res.FallbackReason,
		ExpiredAt:      expiredAt,
	}, nil
}

// mintOrderNo 生成订单号并在 Redis 中预占, 被占用时重新生成
// Redis 不可用时直接使用生成的订单号, 由数据库唯一索引兜底
func (s *service) mintOrderNo(ctx context.Context, now time.Time) (string, error) {
	for i := 0; i < maxOrderNoAttempts; i++ {
		orderNo, err := s.generator.Generate(now)
		if err != nil {
			s.l.Error("生成订单号失败", elog.FieldErr(err))
			return "", errs.ErrGenerateOrderNo
		}
		ok, err := s.repo.ReserveOrderNo(ctx, orderNo)
		if err != nil {
			s.l.Warn("预占订单号失败", elog.String("orderNo", orderNo), elog.FieldErr(err))
			return orderNo, nil
		}
		if ok {
			return orderNo, nil
		}
		s.l.Warn("订单号冲突, 重新生成", elog.String("orderNo", orderNo), elog.Int64("attempt", int64(i+1)))
	}
	return "", errs.ErrGenerateOrderNo
}

// recordFailedOrder 预下单失败时尽量留下一条失败记录, 写入失败只记日志
func (s *service) recordFailedOrder(ctx context.Context, order domain.Order) {
	order.Status = domain.StatusFailed
	if _, err := s.repo.CreateOrder(ctx, order); err != nil {
		s.l.Error("保存失败订单失败",
			elog.String("orderNo", order.OrderNo),
			elog.FieldErr(err))
	}
}

func (s *service) FindOrder(ctx context.Context, orderNo string) (domain.Order, error) {
	o, err := s.repo.FindByOrderNo(ctx, orderNo)
	if err != nil {
		return domain.Order{}, err
	}
	o.Status = o.EffectiveStatus(s.now())
	return o, nil
}

func (s *service) HandleNotification(ctx context.Context, n domain.Notification) error {
	switch n.TradeState {
	case tradeStateSuccess:
		return s.handlePaid(ctx, n)
	case tradeStateClosed, tradeStatePayErr, tradeStateRevoked:
		changed, err := s.repo.MarkFailed(ctx, n.OrderNo)
		if err != nil {
			return fmt.Errorf("标记订单支付失败出错: %w", err)
		}
		s.l.Info("订单支付失败",
			elog.String("orderNo", n.OrderNo),
			elog.String("tradeState", n.TradeState),
			elog.Any("changed", changed))
		return nil
	default:
		s.l.Warn("忽略的微信支付通知状态",
			elog.String("orderNo", n.OrderNo),
			elog.String("tradeState", n.TradeState))
		return nil
	}
}

func (s *service) handlePaid(ctx context.Context, n domain.Notification) error {
	paidAt := n.PaidAt
	if paidAt.IsZero() {
		paidAt = s.now()
	}
	changed, err := s.repo.MarkPaid(ctx, n.OrderNo, n.TradeNo, paidAt)
	if err != nil {
		return fmt.Errorf("标记订单已支付失败: %w", err)
	}
	o, err := s.repo.FindByOrderNo(ctx, n.OrderNo)
	if errors.Is(err, repository.ErrOrderNotFound) {
		s.l.Warn("支付通知对应的订单不存在", elog.String("orderNo", n.OrderNo))
		return nil
	}
	if err != nil {
		return fmt.Errorf("查询订单失败: %w", err)
	}
	if o.Status != domain.StatusPaid {
		s.l.Warn("订单状态不允许标记为已支付",
			elog.String("orderNo", n.OrderNo),
			elog.String("status", o.Status.String()))
		return nil
	}
	if !changed {
		s.l.Info("重复的支付成功通知", elog.String("orderNo", n.OrderNo))
	}
	// 重复通知也再发一次, 消费方按订单号幂等, 避免上一次发送失败后丢失
	fen, _ := domain.ToFen(o.Amount)
	err = s.producer.Produce(ctx, event.OrderPaidEvent{
		OrderNo:    o.OrderNo,
		UserID:     o.UserID,
		PackageKey: o.PackageKey,
		AmountFen:  fen,
		TradeNo:    n.TradeNo,
		PaidAt:     paidAt.UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("发送订单支付成功事件失败: %w", err)
	}
	return nil
}

func (s *service) FindExpiredPendingOrders(ctx context.Context, offset, limit int, before time.Time) ([]domain.Order, int64, error) {
	return s.repo.FindExpiredPending(ctx, offset, limit, before)
}

func (s *service) CloseExpiredOrders(ctx context.Context, ids []int64, before time.Time) (int64, error) {
	return s.repo.CloseExpired(ctx, ids, before)
}
