// Package app 组装应用依赖
package app

import (
	"context"

	"virtual-tryon-api/internal/application/tryon"
	"virtual-tryon-api/internal/config"
	"virtual-tryon-api/internal/infrastructure/llm"
	"virtual-tryon-api/internal/interfaces/http/handler"
	"virtual-tryon-api/internal/interfaces/http/router"
	"virtual-tryon-api/pkg/logger"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	llmClient := llm.NewClient(&cfg.LLM)
	tryOnService := tryon.NewService(llmClient, &cfg.LLM)

	r := router.New(cfg, router.Handlers{
		TryOn:  handler.NewTryOnHandler(tryOnService, cfg.Server.HTTP.MaxBodyBytes),
		Style:  handler.NewStyleHandler(),
		Health: handler.NewHealthHandler(cfg),
	})

	logger.Info(ctx, "application initialized",
		"llm_base_url", cfg.LLM.BaseURL,
		"llm_model", tryOnService.Model(),
		"llm_timeout", cfg.LLM.Timeout.String(),
	)

	return r, llmClient.Close, nil
}
