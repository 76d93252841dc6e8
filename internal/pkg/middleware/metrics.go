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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 统计下单、支付通知等接口的耗时与次数
type MetricsBuilder struct {
	namespace  string
	registerer prometheus.Registerer
}

func NewMetricsBuilder(namespace string) *MetricsBuilder {
	return &MetricsBuilder{
		namespace:  namespace,
		registerer: prometheus.DefaultRegisterer,
	}
}

func (b *MetricsBuilder) Registerer(r prometheus.Registerer) *MetricsBuilder {
	b.registerer = r
	return b
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	factory := promauto.With(b.registerer)
	labels := []string{"method", "path", "status_code"}
	summaryVec := factory.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: b.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.95: 0.005,
			0.99: 0.001,
		},
	}, labels)
	counterVec := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: b.namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, labels)

	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			// 未匹配路由统一归类, 避免标签基数失控
			path = "unmatched"
		}
		method := ctx.Request.Method
		statusCode := strconv.Itoa(ctx.Writer.Status())
		summaryVec.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		counterVec.WithLabelValues(method, path, statusCode).Inc()
	}
}
