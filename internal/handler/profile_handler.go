package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/osidou/osidou-web/internal/common"
	"github.com/osidou/osidou-web/internal/service"
)

// ProfileHandler profile page and editor
type ProfileHandler struct {
	service service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// MyProfile handles GET /api/profile/me
// @Summary 自分のプロフィール
// @Tags profile
// @Produce json
// @Success 200 {object} common.APIResponse{data=domain.ProfileView}
// @Router /profile/me [get]
func (h *ProfileHandler) MyProfile(c *gin.Context) {
	view, err := h.service.View(c.Request.Context(), 0)
	if err != nil {
		respondError(c, err, "プロフィールを読み込めませんでした")
		return
	}
	common.SuccessResponse(c, view)
}

// UserProfile handles GET /api/profile/:id
// @Summary ユーザーのプロフィール
// @Tags profile
// @Produce json
// @Param id path int true "ユーザーID"
// @Success 200 {object} common.APIResponse{data=domain.ProfileView}
// @Router /profile/{id} [get]
func (h *ProfileHandler) UserProfile(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.service.View(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "ユーザーが見つかりません")
		return
	}
	common.SuccessResponse(c, view)
}

// Update handles PUT /api/profile/me
// The body is the whole edit form; null and read-only fields are dropped.
// @Summary プロフィール更新
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} common.APIResponse{data=domain.UserProfile}
// @Router /profile/me [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	var form map[string]interface{}
	if err := c.ShouldBindJSON(&form); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "入力内容を確認してください", err)
		return
	}
	profile, err := h.service.Save(c.Request.Context(), form)
	if err != nil {
		respondError(c, err, "プロフィールの更新に失敗しました")
		return
	}
	common.SuccessResponse(c, profile)
}

// MoodVisibilityRequest body of PATCH /api/profile/me/mood-visibility
type MoodVisibilityRequest struct {
	IsMoodVisible *bool `json:"is_mood_visible" binding:"required"`
}

// SetMoodVisibility handles PATCH /api/profile/me/mood-visibility
// @Summary 気分の公開設定
// @Tags profile
// @Accept json
// @Produce json
// @Param body body MoodVisibilityRequest true "公開設定"
// @Success 200 {object} common.APIResponse{data=domain.UserProfile}
// @Router /profile/me/mood-visibility [patch]
func (h *ProfileHandler) SetMoodVisibility(c *gin.Context) {
	var req MoodVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "入力内容を確認してください", err)
		return
	}
	profile, err := h.service.SetMoodVisibility(c.Request.Context(), *req.IsMoodVisible)
	if err != nil {
		respondError(c, err, "公開設定を変更できませんでした")
		return
	}
	common.SuccessResponse(c, profile)
}

// Follow handles POST /api/profile/:id/follow
// The backend toggles, so calling it on a followed user unfollows.
// @Summary フォロー切り替え
// @Tags profile
// @Produce json
// @Param id path int true "ユーザーID"
// @Success 200 {object} common.APIResponse{data=domain.FollowResult}
// @Router /profile/{id}/follow [post]
func (h *ProfileHandler) Follow(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	result, err := h.service.Follow(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "フォロー操作に失敗しました")
		return
	}
	common.SuccessResponse(c, result)
}
