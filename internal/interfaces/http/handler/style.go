package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"virtual-tryon-api/internal/application/tryon"
	"virtual-tryon-api/internal/interfaces/http/dto"
	"virtual-tryon-api/pkg/errors"
)

// StyleHandler 穿搭风格目录处理器
type StyleHandler struct{}

// NewStyleHandler 创建风格目录处理器
func NewStyleHandler() *StyleHandler {
	return &StyleHandler{}
}

// ListStyles 获取风格目录
// @Summary 穿搭风格目录
// @Tags Styles
// @Produce json
// @Success 200 {object} dto.StyleListResponse
// @Router /v1/styles [get]
func (h *StyleHandler) ListStyles(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToStyleListResponse(tryon.Styles()))
}

// GetStyle 获取单个风格
// @Summary 穿搭风格详情
// @Tags Styles
// @Produce json
// @Param id path string true "风格 ID"
// @Success 200 {object} dto.StyleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/styles/{id} [get]
func (h *StyleHandler) GetStyle(c *gin.Context) {
	style, ok := tryon.FindStyle(c.Param("id"))
	if !ok {
		dto.AppError(c, errors.New(errors.CodeNotFound, "style not found"))
		return
	}
	c.JSON(http.StatusOK, dto.ToStyleResponse(style))
}
