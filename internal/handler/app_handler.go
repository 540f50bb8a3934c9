package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/osidou/osidou-web/internal/common"
	"github.com/osidou/osidou-web/internal/domain"
	"github.com/osidou/osidou-web/internal/service"
	"github.com/osidou/osidou-web/internal/upstream"
)

// AppHandler serves the application bootstrap
type AppHandler struct {
	profileService service.ProfileService
}

// NewAppHandler creates a new AppHandler
func NewAppHandler(profileService service.ProfileService) *AppHandler {
	return &AppHandler{profileService: profileService}
}

// Bootstrap handles GET /api/app
// The browser renders the application only on success; any error body is
// shown as a full-page error instead.
// @Summary アプリ起動（自分のプロフィール）
// @Tags app
// @Produce json
// @Success 200 {object} common.APIResponse{data=domain.AppView}
// @Failure 401 {object} common.APIResponse
// @Failure 502 {object} common.APIResponse
// @Router /app [get]
func (h *AppHandler) Bootstrap(c *gin.Context) {
	me, err := h.profileService.Me(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		var apiErr *upstream.APIError
		switch {
		case upstream.IsUnauthorized(err), errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden:
			common.ErrorResponse(c, http.StatusUnauthorized, "ログインしてください", err)
		default:
			common.ErrorResponse(c, http.StatusBadGateway, "プロフィールを読み込めませんでした", err)
		}
		return
	}

	common.SuccessResponse(c, domain.AppView{Profile: me, DisplayName: me.DisplayName()})
}
