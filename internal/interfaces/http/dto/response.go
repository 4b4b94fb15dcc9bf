// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"virtual-tryon-api/pkg/errors"
)

// ErrorResponse 错误响应结构，客户端直接展示 error 文案
type ErrorResponse struct {
	Error string `json:"error"`
}

// ContentTypeJSON 响应体类型，不带 charset
const ContentTypeJSON = "application/json"

// JSON 以 application/json 返回响应体
// gin 的 JSON 渲染仅在未设置 Content-Type 时写入带 charset 的默认值
func JSON(c *gin.Context, httpCode int, obj any) {
	c.Header("Content-Type", ContentTypeJSON)
	c.JSON(httpCode, obj)
}

// Error 返回错误响应
func Error(c *gin.Context, httpCode int, message string) {
	JSON(c, httpCode, ErrorResponse{Error: message})
}

// AbortWithError 中止请求并返回错误响应
func AbortWithError(c *gin.Context, httpCode int, message string) {
	c.Header("Content-Type", ContentTypeJSON)
	c.AbortWithStatusJSON(httpCode, ErrorResponse{Error: message})
}

// AppError 将应用错误转换为对应状态码的错误响应
func AppError(c *gin.Context, err error) {
	appErr := errors.AsAppError(err)
	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	Error(c, status, appErr.Message)
}
