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

package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/youjin-ai/youjin/internal/payment/internal/domain"
	"github.com/youjin-ai/youjin/internal/payment/internal/errs"
	"github.com/youjin-ai/youjin/internal/payment/internal/repository"
	"github.com/youjin-ai/youjin/internal/payment/internal/service"
	"github.com/youjin-ai/youjin/internal/payment/internal/service/wechat"
)

const defaultClientIP = "127.0.0.1"

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.Service
	parser *wechat.NotifyParser
	l      *elog.Component
}

func NewHandler(svc service.Service, parser *wechat.NotifyParser) *Handler {
	return &Handler{
		svc:    svc,
		parser: parser,
		l:      elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/pay")
	g.POST("/order", ginx.W(h.CreateOrder))
	g.POST("/order/status", ginx.B[OrderNoReq](h.RetrieveOrderStatus))
	g.POST("/callback", ginx.W(h.HandleNotification))
}

// CreateOrder 下单并返回支付链接, 失败时同样返回 200 和错误信息
func (h *Handler) CreateOrder(ctx *ginx.Context) (ginx.Result, error) {
	var req CreateOrderReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.l.Warn("下单请求解析失败", elog.FieldErr(err))
		ctx.JSON(http.StatusOK, CreateOrderResp{Error: errs.ErrUnknown.Error()})
		return ginx.Result{}, ginx.ErrNoResponse
	}
	clientIP := ctx.ClientIP()
	if clientIP == "" {
		clientIP = defaultClientIP
	}
	res, err := h.svc.CreateOrder(ctx.Request.Context(), domain.CreateOrderRequest{
		UserID:      req.UserID,
		PackageKey:  req.PackageKey,
		PackageName: req.PackageName,
		Amount:      req.Amount,
		PayType:     domain.PayType(req.PayType),
		ClientIP:    clientIP,
	})
	if err != nil {
		h.l.Error("下单失败",
			elog.String("userId", req.UserID),
			elog.String("packageKey", req.PackageKey),
			elog.FieldErr(err))
		ctx.JSON(http.StatusOK, CreateOrderResp{Error: err.Error()})
		return ginx.Result{}, ginx.ErrNoResponse
	}
	ctx.JSON(http.StatusOK, newCreateOrderResp(res))
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *Handler) RetrieveOrderStatus(ctx *ginx.Context, req OrderNoReq) (ginx.Result, error) {
	o, err := h.svc.FindOrder(ctx.Request.Context(), req.OrderNo)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询订单失败 orderNo: %s: %w", req.OrderNo, err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

// HandleNotification 微信支付结果通知, 应答非 2xx 时微信会按策略重新通知
func (h *Handler) HandleNotification(ctx *ginx.Context) (ginx.Result, error) {
	n, err := h.parser.Parse(ctx.Request.Context(), ctx.Request)
	if err != nil {
		h.l.Warn("解析支付通知失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, NotifyResp{Code: "FAIL", Message: "通知解析失败"})
		return ginx.Result{}, ginx.ErrNoResponse
	}
	if err = h.svc.HandleNotification(ctx.Request.Context(), n); err != nil {
		h.l.Error("处理支付通知失败",
			elog.String("orderNo", n.OrderNo),
			elog.String("tradeState", n.TradeState),
			elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, NotifyResp{Code: "FAIL", Message: "处理失败"})
		return ginx.Result{}, ginx.ErrNoResponse
	}
	ctx.JSON(http.StatusOK, NotifyResp{Code: "SUCCESS", Message: "成功"})
	return ginx.Result{}, ginx.ErrNoResponse
}
