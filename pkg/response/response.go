package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse 成功提示响应 {"message": "..."}
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse 错误响应 {"detail": "..."}
// 与前端约定的字段名保持一致，不使用 code/message 包装
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ── 成功响应 ──

// OK 200，直接输出 data 本身
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message 200 提示信息
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, detail string) {
	c.AbortWithStatusJSON(httpStatus, ErrorResponse{Detail: detail})
}

// BadRequest 400
func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

// NotFound 404
func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

// UnprocessableEntity 422 请求参数缺失或格式错误
func UnprocessableEntity(c *gin.Context, detail string) {
	Error(c, http.StatusUnprocessableEntity, detail)
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context, detail string) {
	Error(c, http.StatusTooManyRequests, detail)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal Server Error")
}
