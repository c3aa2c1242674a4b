package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mergington-api/internal/dto"
	"mergington-api/internal/i18n"
	"mergington-api/internal/service"
	apperrors "mergington-api/pkg/errors"
	"mergington-api/pkg/response"
)

// IndexPath 静态前端入口页
const IndexPath = "/static/index.html"

// ActivityHandler 活动模块 HTTP 处理器
type ActivityHandler struct {
	activitySvc service.ActivityService
}

// NewActivityHandler 创建 ActivityHandler
func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

// RedirectToIndex 根路径跳转到前端页面
// GET /
func (h *ActivityHandler) RedirectToIndex(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, IndexPath)
}

// ListActivities 获取活动列表
// GET /activities?lang=zh
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	var req dto.ActivityListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.UnprocessableEntity(c, invalidRequest(RequestLang(c), "lang"))
		return
	}

	response.OK(c, h.activitySvc.List(c.Request.Context(), i18n.ParseLang(req.Lang)))
}

// Signup 报名活动
// POST /activities/:activity_name/signup?email=xxx&lang=zh
func (h *ActivityHandler) Signup(c *gin.Context) {
	lang := RequestLang(c)

	// email 只要求出现，空字符串同样放行
	var req dto.SignupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.UnprocessableEntity(c, invalidRequest(lang, "email"))
		return
	}
	if _, ok := c.GetQuery("email"); !ok {
		response.UnprocessableEntity(c, invalidRequest(lang, "email"))
		return
	}

	resp, err := h.activitySvc.Signup(c.Request.Context(), c.Param("activity_name"), req.Email, lang)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.Message(c, resp.Message)
}

// handleActivityError 统一处理活动模块业务错误
func (h *ActivityHandler) handleActivityError(c *gin.Context, err error) {
	detail := apperrors.DetailOf(err, err.Error())
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		response.NotFound(c, detail)
	case apperrors.KindInvalidRequest, apperrors.KindCapacityExceeded:
		response.BadRequest(c, detail)
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}

func invalidRequest(lang i18n.Lang, field string) string {
	return i18n.T(lang, i18n.InvalidRequest, map[string]string{"field": field})
}
