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

package wechat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/youjin-ai/youjin/internal/payment/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	H5PrepayPath     = "/v3/pay/transactions/h5"
	NativePrepayPath = "/v3/pay/transactions/native"

	relayPath           = "/wechat-proxy"
	instrumentationName = "internal/payment/wechat"
)

var prepayRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "wechat_prepay_requests_total",
		Help: "Total number of wechat pay prepay requests",
	},
	[]string{"pay_type", "via", "result"},
)

type ReplyKind uint8

const (
	ReplyKindError ReplyKind = iota
	ReplyKindH5
	ReplyKindNative
)

// Reply 预下单响应, Kind 决定哪些字段有意义
type Reply struct {
	Kind    ReplyKind
	URL     string
	Code    string
	Message string
}

//go:generate mockgen -source=./client.go -package=wechatmocks -destination=./mocks/client.mock.go -typed Gateway
type Gateway interface {
	// Do 签名并提交预下单请求, 失败时 Reply.Kind 为 ReplyKindError 且 error 不为 nil
	Do(ctx context.Context, path string, body any) (Reply, error)
}

type Client struct {
	cfg    Config
	signer *Signer
	client *resty.Client
	tracer trace.Tracer
	l      *elog.Component

	now   func() time.Time
	nonce func() (string, error)
}

func NewClient(cfg Config, signer *Signer) *Client {
	return &Client{
		cfg:    cfg,
		signer: signer,
		client: resty.New().SetTimeout(cfg.timeout()),
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
		l:      elog.DefaultLogger,
		now:    time.Now,
		nonce:  Nonce,
	}
}

func (c *Client) Do(ctx context.Context, path string, body any) (Reply, error) {
	payType := payTypeOf(path)
	via := "direct"
	if c.cfg.UseRelay() {
		via = "relay"
	}
	ctx, span := c.tracer.Start(ctx, "wechat.prepay", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("wechat.path", path),
		attribute.String("wechat.via", via),
	)

	reply, err := c.do(ctx, path, payType, body)
	if err != nil {
		var te *TransportError
		if errors.As(err, &te) {
			c.l.Error("调用微信支付网络失败",
				elog.String("path", path),
				elog.String("via", via),
				elog.FieldErr(te.Err))
		}
		span.SetStatus(codes.Error, err.Error())
		prepayRequests.WithLabelValues(payType.String(), via, "fail").Inc()
		return Reply{Kind: ReplyKindError, Code: reply.Code, Message: reply.Message}, err
	}
	span.SetStatus(codes.Ok, "")
	prepayRequests.WithLabelValues(payType.String(), via, "success").Inc()
	return reply, nil
}

func (c *Client) do(ctx context.Context, path string, payType domain.PayType, body any) (Reply, error) {
	data, err := marshalBody(body)
	if err != nil {
		return Reply{}, fmt.Errorf("序列化预下单请求失败: %w", err)
	}
	nonce, err := c.nonce()
	if err != nil {
		return Reply{}, fmt.Errorf("生成随机串失败: %w", err)
	}
	auth, err := c.signer.Authorization(ctx, http.MethodPost, path, Timestamp(c.now()), nonce, string(data))
	if err != nil {
		return Reply{}, err
	}

	if c.cfg.UseRelay() {
		return c.viaRelay(ctx, path, payType, auth, data)
	}
	return c.direct(ctx, path, payType, auth, data)
}

// marshalBody 不转义 & < >, 签名的内容与最终发给微信的内容逐字节一致
func marshalBody(body any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (c *Client) direct(ctx context.Context, path string, payType domain.PayType, auth string, data []byte) (Reply, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("Authorization", auth).
		SetBody(data).
		Post(c.cfg.baseURL() + path)
	if err != nil {
		return Reply{}, &TransportError{Err: err}
	}
	return c.evaluate(payType, resp.StatusCode(), resp.Body())
}

type relayRequest struct {
	TargetURL string            `json:"target_url"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers"`
	// 中转服务原样转发字符串, 保证微信收到的就是签名时的内容
	Body string `json:"body"`
}

type relayResponse struct {
	Error any             `json:"error"`
	Data  json.RawMessage `json:"data"`
}

func (c *Client) viaRelay(ctx context.Context, path string, payType domain.PayType, auth string, data []byte) (Reply, error) {
	envelope := relayRequest{
		TargetURL: c.cfg.baseURL() + path,
		Method:    http.MethodPost,
		Headers: map[string]string{
			"Content-Type":  "application/json",
			"Accept":        "application/json",
			"Authorization": auth,
		},
		Body: string(data),
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+c.cfg.RelayToken).
		SetBody(envelope).
		Post(c.cfg.RelayURL + relayPath)
	if err != nil {
		return Reply{}, &TransportError{Err: err}
	}

	var rr relayResponse
	if err = json.Unmarshal(resp.Body(), &rr); err != nil {
		c.l.Error("解析中转服务响应失败",
			elog.FieldErr(err),
			elog.Int64("status", int64(resp.StatusCode())))
		return Reply{}, &RelayError{StatusCode: resp.StatusCode()}
	}
	if msg := relayErrorMessage(rr.Error); msg != "" {
		return Reply{}, &RelayError{StatusCode: resp.StatusCode(), Message: msg}
	}
	payload := resp.Body()
	if len(rr.Data) > 0 && !bytes.Equal(rr.Data, []byte("null")) {
		payload = rr.Data
	}
	if !resp.IsSuccess() && len(rr.Data) == 0 {
		return c.evaluate(payType, resp.StatusCode(), payload)
	}
	// 中转服务成功转发后, 微信的错误体现在 payload 的 code 上
	return c.evaluate(payType, http.StatusOK, payload)
}

type prepayPayload struct {
	H5URL   string `json:"h5_url"`
	CodeURL string `json:"code_url"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *Client) evaluate(payType domain.PayType, status int, body []byte) (Reply, error) {
	var p prepayPayload
	if err := json.Unmarshal(body, &p); err != nil {
		c.l.Warn("解析微信支付响应失败",
			elog.FieldErr(err),
			elog.Int64("status", int64(status)))
	}
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		// 只接受与请求的支付方式对应的链接
		switch {
		case payType == domain.PayTypeH5 && p.H5URL != "":
			return Reply{Kind: ReplyKindH5, URL: p.H5URL}, nil
		case payType == domain.PayTypeNative && p.CodeURL != "":
			return Reply{Kind: ReplyKindNative, URL: p.CodeURL}, nil
		}
		if p.Code == "" && p.Message == "" {
			return Reply{}, &MissingURLError{PayType: payType}
		}
	}
	reply := Reply{Kind: ReplyKindError, Code: p.Code, Message: p.Message}
	return reply, &VendorError{StatusCode: status, Code: p.Code, Message: p.Message}
}

func relayErrorMessage(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return genericRelayMessage
		}
		return ""
	default:
		data, _ := json.Marshal(val)
		return string(data)
	}
}

func payTypeOf(path string) domain.PayType {
	if path == H5PrepayPath {
		return domain.PayTypeH5
	}
	return domain.PayTypeNative
}
