// Package llm 提供上游多模态模型的 chat completions 客户端
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"virtual-tryon-api/internal/config"
	"virtual-tryon-api/pkg/metrics"
	"virtual-tryon-api/pkg/tracer"
)

const defaultChatPath = "/v1/chat/completions"

// UpstreamError 上游返回非 2xx
type UpstreamError struct {
	StatusCode int
	Body       string
}

// Error 实现 error 接口
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// Client 基于 Resty 的 chat completions 客户端
type Client struct {
	http     *resty.Client
	chatPath string
}

// NewClient 根据配置创建客户端
func NewClient(cfg *config.LLMConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}
	if cfg.APIKey != "" {
		httpClient.SetAuthToken(cfg.APIKey)
	}

	chatPath := cfg.ChatPath
	if chatPath == "" {
		chatPath = defaultChatPath
	}

	return &Client{
		http:     httpClient,
		chatPath: chatPath,
	}
}

// Close 释放空闲连接
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
}

// CreateChatCompletion 同步调用一次上游，不做重试
func (c *Client) CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	ctx, span := tracer.Start(ctx, "llm.CreateChatCompletion",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("llm.model", req.Model),
			attribute.Int("llm.max_tokens", req.MaxTokens),
		))
	defer span.End()

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post(c.chatPath)
	metrics.LLMCallDuration.WithLabelValues(req.Model).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.LLMCallTotal.WithLabelValues(req.Model, "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, fmt.Errorf("call chat completions: %w", err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))
	if !resp.IsSuccess() {
		metrics.LLMCallTotal.WithLabelValues(req.Model, strconv.Itoa(resp.StatusCode())).Inc()
		span.SetStatus(codes.Error, "upstream error")
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	var completion ChatCompletionResponse
	if err := json.Unmarshal(resp.Body(), &completion); err != nil {
		metrics.LLMCallTotal.WithLabelValues(req.Model, "decode_error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return nil, fmt.Errorf("decode chat completions response: %w", err)
	}

	metrics.LLMCallTotal.WithLabelValues(req.Model, "ok").Inc()
	if completion.Usage != nil {
		span.SetAttributes(attribute.Int("llm.total_tokens", completion.Usage.TotalTokens))
	}
	return &completion, nil
}

// AsUpstreamError 提取错误链中的 UpstreamError
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
