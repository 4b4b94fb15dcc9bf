// Package handler 提供 HTTP 请求处理器
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"virtual-tryon-api/internal/domain/entity"
	"virtual-tryon-api/internal/interfaces/http/dto"
	"virtual-tryon-api/pkg/errors"
	"virtual-tryon-api/pkg/logger"
)

// TryOnService 换装服务
type TryOnService interface {
	TryOn(ctx context.Context, req entity.TryOnRequest) (*entity.TryOnResult, error)
}

// TryOnHandler 换装处理器
type TryOnHandler struct {
	svc          TryOnService
	maxBodyBytes int64
}

// NewTryOnHandler 创建换装处理器
func NewTryOnHandler(svc TryOnService, maxBodyBytes int64) *TryOnHandler {
	return &TryOnHandler{
		svc:          svc,
		maxBodyBytes: maxBodyBytes,
	}
}

// Create 生成换装图片
// @Summary 虚拟换装
// @Description 上传人物照片并选择穿搭风格，返回 AI 生成的换装图片
// @Tags TryOn
// @Accept json
// @Produce json
// @Param body body dto.TryOnRequest true "人物照片与服装描述"
// @Success 200 {object} dto.TryOnResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 402 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/virtual-try-on [post]
func (h *TryOnHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}

	var req dto.TryOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// 请求体无法解析走通用失败路径，返回 500
		appErr := errors.Wrap(err, errors.CodeMalformedRequest, "invalid request body: "+err.Error())
		logger.Error(ctx, "virtual try-on error", err)
		dto.AppError(c, appErr)
		return
	}

	result, err := h.svc.TryOn(ctx, req.ToEntity())
	if err != nil {
		dto.AppError(c, err)
		return
	}

	dto.JSON(c, http.StatusOK, dto.ToTryOnResponse(result))
}
