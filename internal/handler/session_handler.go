package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/osidou/osidou-web/internal/common"
	"github.com/osidou/osidou-web/internal/middleware"
	"github.com/osidou/osidou-web/internal/service"
)

// SessionHandler stores and clears the backend token of the browser session
type SessionHandler struct {
	service service.SessionService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// SetTokenRequest body of PUT /api/session/token
type SetTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// SetToken handles PUT /api/session/token
// @Summary トークン保存
// @Tags session
// @Accept json
// @Produce json
// @Param body body SetTokenRequest true "アクセストークン"
// @Success 200 {object} common.APIResponse{data=domain.SessionInfo}
// @Router /session/token [put]
func (h *SessionHandler) SetToken(c *gin.Context) {
	var req SetTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "トークンが必要です", err)
		return
	}

	sessionID := middleware.GetSessionID(c)
	if err := h.service.SetToken(c.Request.Context(), sessionID, req.Token); err != nil {
		respondError(c, err, "トークンを保存できませんでした")
		return
	}

	info, err := h.service.Describe(c.Request.Context(), sessionID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "セッションを読み込めませんでした", err)
		return
	}
	common.SuccessResponse(c, info)
}

// Describe handles GET /api/session
// @Summary セッション状態
// @Tags session
// @Produce json
// @Success 200 {object} common.APIResponse{data=domain.SessionInfo}
// @Router /session [get]
func (h *SessionHandler) Describe(c *gin.Context) {
	info, err := h.service.Describe(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "セッションを読み込めませんでした", err)
		return
	}
	common.SuccessResponse(c, info)
}

// Clear handles DELETE /api/session
// @Summary ログアウト
// @Tags session
// @Success 204
// @Router /session [delete]
func (h *SessionHandler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		respondError(c, err, "ログアウトできませんでした")
		return
	}
	c.Status(http.StatusNoContent)
}
