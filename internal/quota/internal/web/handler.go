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
	"fmt"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/youjin-ai/youjin/internal/quota/internal/service"
)

var (
	_ ginx.Handler = &Handler{}

	systemErrorResult = ginx.Result{Code: 517001, Msg: "系统错误"}
	paramErrorResult  = ginx.Result{Code: 417001, Msg: "缺少用户ID"}
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/quota/detail", ginx.B[UserReq](h.Detail))
}

func (h *Handler) Detail(ctx *ginx.Context, req UserReq) (ginx.Result, error) {
	if req.UserID == "" {
		return paramErrorResult, nil
	}
	q, err := h.svc.GetQuota(ctx.Request.Context(), req.UserID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询额度失败 userId: %s: %w", req.UserID, err)
	}
	return ginx.Result{
		Data: Quota{
			Total:     q.Total,
			Used:      q.Used,
			Remaining: q.Remaining(),
		},
	}, nil
}
