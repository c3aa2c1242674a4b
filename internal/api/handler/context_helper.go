package handler

import (
	"github.com/gin-gonic/gin"

	"mergington-api/internal/i18n"
)

// RequestLang 从查询参数 lang 解析请求语言，缺失或无法识别时为英文
func RequestLang(c *gin.Context) i18n.Lang {
	return i18n.ParseLang(c.Query("lang"))
}
