// Package tryon 实现虚拟换装的核心流程：校验、构造提示词、调用上游、归一化结果
package tryon

import (
	"context"
	"net/http"
	"time"

	"virtual-tryon-api/internal/config"
	"virtual-tryon-api/internal/domain/entity"
	"virtual-tryon-api/internal/infrastructure/llm"
	"virtual-tryon-api/pkg/errors"
	"virtual-tryon-api/pkg/logger"
	"virtual-tryon-api/pkg/metrics"
)

// 面向客户端的错误文案
const (
	MsgMissingPersonImage = "please upload a person photo"
	MsgMissingClothing    = "please select a clothing style"
	MsgRateLimited        = "too many requests, please try again later"
	MsgQuotaExhausted     = "AI service quota exhausted"
	MsgProcessingFailed   = "AI processing failed: "
)

// ChatCompleter 上游 chat completions 调用方
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error)
}

// Service 换装服务，无跨请求状态
type Service struct {
	client      ChatCompleter
	model       string
	temperature float64
	maxTokens   int
}

// NewService 创建换装服务
func NewService(client ChatCompleter, cfg *config.LLMConfig) *Service {
	return &Service{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// Model 返回固定的上游模型 ID
func (s *Service) Model() string {
	return s.model
}

// Validate 按顺序校验必填字段，人物照片优先
func Validate(req entity.TryOnRequest) error {
	if req.PersonImage == "" {
		return errors.New(errors.CodeInvalidParam, MsgMissingPersonImage)
	}
	if req.ClothingDescription == "" {
		return errors.New(errors.CodeInvalidParam, MsgMissingClothing)
	}
	return nil
}

// TryOn 执行一次换装；上游调用成功即返回结果，即使未提取到图片
func (s *Service) TryOn(ctx context.Context, req entity.TryOnRequest) (*entity.TryOnResult, error) {
	if err := Validate(req); err != nil {
		metrics.TryOnTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	logger.Info(ctx, "processing virtual try-on request",
		"model", s.model,
		"person_image_bytes", len(req.PersonImage),
		"clothing_description", req.ClothingDescription,
	)

	start := time.Now()
	resp, err := s.client.CreateChatCompletion(ctx, s.buildRequest(req))
	if err != nil {
		return nil, s.mapUpstreamError(ctx, err)
	}

	content := resp.FirstContent()
	extracted := Normalize(content)
	metrics.TryOnImageSource.WithLabelValues(string(extracted.Source)).Inc()

	status := "success"
	if extracted.Image == nil {
		status = "no_image"
	}
	metrics.TryOnTotal.WithLabelValues(status).Inc()

	logger.Info(ctx, "virtual try-on completed",
		"content_kind", content.Kind.String(),
		"image_source", string(extracted.Source),
		"has_image", extracted.Image != nil,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &entity.TryOnResult{
		Image: extracted.Image,
		Text:  extracted.Text,
		Model: s.model,
	}, nil
}

// buildRequest 组装单条用户消息：提示词 + 人物图片
func (s *Service) buildRequest(req entity.TryOnRequest) *llm.ChatCompletionRequest {
	return &llm.ChatCompletionRequest{
		Model:      s.model,
		Modalities: []string{"text", "image"},
		Messages: []llm.ChatMessage{
			{
				Role: "user",
				Content: []llm.ContentPart{
					llm.TextPart(BuildPrompt(req.ClothingDescription)),
					llm.ImagePart(req.PersonImage),
				},
			},
		},
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	}
}

// mapUpstreamError 上游状态码映射：429、402 透传，其余归为 500
func (s *Service) mapUpstreamError(ctx context.Context, err error) error {
	upErr, ok := llm.AsUpstreamError(err)
	if !ok {
		logger.Error(ctx, "AI service call failed", err, "model", s.model)
		metrics.TryOnTotal.WithLabelValues("failed").Inc()
		return errors.Wrap(err, errors.CodeLLMCallFailed, MsgProcessingFailed+err.Error())
	}

	logger.Error(ctx, "AI service error", err,
		"status", upErr.StatusCode,
		"body", upErr.Body,
	)

	switch upErr.StatusCode {
	case http.StatusTooManyRequests:
		metrics.TryOnTotal.WithLabelValues("rate_limited").Inc()
		return errors.Wrap(err, errors.CodeTooManyRequests, MsgRateLimited)
	case http.StatusPaymentRequired:
		metrics.TryOnTotal.WithLabelValues("quota_exhausted").Inc()
		return errors.Wrap(err, errors.CodeQuotaExhausted, MsgQuotaExhausted)
	default:
		metrics.TryOnTotal.WithLabelValues("failed").Inc()
		return errors.Wrap(err, errors.CodeLLMCallFailed, MsgProcessingFailed+upErr.Body)
	}
}
