package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/osidou/osidou-web/internal/common"
	"github.com/osidou/osidou-web/internal/domain"
	"github.com/osidou/osidou-web/internal/service"
	"github.com/osidou/osidou-web/pkg/ginutil"
)

// FriendHandler friend manager tabs
type FriendHandler struct {
	service service.FriendService
}

// NewFriendHandler creates a new FriendHandler
func NewFriendHandler(service service.FriendService) *FriendHandler {
	return &FriendHandler{service: service}
}

// Search handles GET /api/friends/search
// @Summary ユーザー検索
// @Tags friends
// @Produce json
// @Param q query string false "検索語"
// @Success 200 {object} common.APIResponse{data=[]domain.UserSearchResult}
// @Router /friends/search [get]
func (h *FriendHandler) Search(c *gin.Context) {
	res, err := h.service.Search(c.Request.Context(), ginutil.QueryTrimmed(c, "q"))
	if err != nil {
		respondError(c, err, "検索に失敗しました")
		return
	}
	common.SuccessResponse(c, res)
}

// SendRequestBody body of POST /api/friends/requests
type SendRequestBody struct {
	UserID int64 `json:"user_id" binding:"required,gt=0"`
}

// SendRequest handles POST /api/friends/requests
// @Summary フレンド申請
// @Tags friends
// @Accept json
// @Produce json
// @Param body body SendRequestBody true "申請先"
// @Success 201 {object} common.APIResponse{data=domain.FriendRequest}
// @Router /friends/requests [post]
func (h *FriendHandler) SendRequest(c *gin.Context) {
	var body SendRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ユーザーIDが必要です", err)
		return
	}
	req, err := h.service.SendRequest(c.Request.Context(), body.UserID)
	if err != nil {
		respondError(c, err, "送信に失敗しました")
		return
	}
	common.CreatedResponse(c, req)
}

// Incoming handles GET /api/friends/requests/incoming
// @Summary 承認待ちの申請
// @Tags friends
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.IncomingRequestRow}
// @Router /friends/requests/incoming [get]
func (h *FriendHandler) Incoming(c *gin.Context) {
	rows, err := h.service.Incoming(c.Request.Context())
	if err != nil {
		respondError(c, err, "申請を読み込めませんでした")
		return
	}
	common.SuccessResponse(c, rows)
}

// Sent handles GET /api/friends/requests/sent
// @Summary 送信済みの申請
// @Tags friends
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.FriendRequest}
// @Router /friends/requests/sent [get]
func (h *FriendHandler) Sent(c *gin.Context) {
	reqs, err := h.service.Sent(c.Request.Context())
	if err != nil {
		respondError(c, err, "申請を読み込めませんでした")
		return
	}
	common.SuccessResponse(c, reqs)
}

// Accept handles POST /api/friends/requests/:id/accept
// @Summary 申請を承認
// @Tags friends
// @Produce json
// @Param id path int true "申請ID"
// @Success 200 {object} common.APIResponse{data=[]domain.IncomingRequestRow}
// @Router /friends/requests/{id}/accept [post]
func (h *FriendHandler) Accept(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	rows, err := h.service.Accept(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "承認に失敗しました")
		return
	}
	common.SuccessResponse(c, rows)
}

// Reject handles POST /api/friends/requests/:id/reject
// @Summary 申請を拒否
// @Tags friends
// @Produce json
// @Param id path int true "申請ID"
// @Success 200 {object} common.APIResponse{data=[]domain.IncomingRequestRow}
// @Router /friends/requests/{id}/reject [post]
func (h *FriendHandler) Reject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	rows, err := h.service.Reject(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "拒否に失敗しました")
		return
	}
	common.SuccessResponse(c, rows)
}

// Friends handles GET /api/friends
// @Summary フレンド一覧
// @Tags friends
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.FriendRow}
// @Router /friends [get]
func (h *FriendHandler) Friends(c *gin.Context) {
	rows, err := h.service.Friends(c.Request.Context())
	if err != nil {
		respondError(c, err, "フレンドを読み込めませんでした")
		return
	}
	common.SuccessResponse(c, rows)
}

// ToggleMuteBody body of PATCH /api/friends/:id/mute
type ToggleMuteBody struct {
	IsMuted bool `json:"is_muted"` // state shown to the user before the toggle
}

// ToggleMute handles PATCH /api/friends/:id/mute
// @Summary ミュート切り替え
// @Tags friends
// @Accept json
// @Produce json
// @Param id path int true "フレンドシップID"
// @Param body body ToggleMuteBody true "現在の状態"
// @Success 200 {object} common.APIResponse{data=[]domain.FriendRow}
// @Router /friends/{id}/mute [patch]
func (h *FriendHandler) ToggleMute(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var body ToggleMuteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "入力内容を確認してください", err)
		return
	}
	rows, err := h.service.ToggleMute(c.Request.Context(), id, body.IsMuted)
	if err != nil {
		respondError(c, err, "更新に失敗しました")
		return
	}
	common.SuccessResponse(c, rows)
}

// SaveNoteBody body of PUT /api/friends/:id/note
type SaveNoteBody struct {
	Note string `json:"note" binding:"max=255"`
}

// SaveNote handles PUT /api/friends/:id/note
// @Summary フレンドメモ保存
// @Tags friends
// @Accept json
// @Produce json
// @Param id path int true "フレンドシップID"
// @Param body body SaveNoteBody true "メモ"
// @Success 200 {object} common.APIResponse{data=[]domain.FriendRow}
// @Router /friends/{id}/note [put]
func (h *FriendHandler) SaveNote(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var body SaveNoteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "メモは255文字以内で入力してください", err)
		return
	}
	rows, err := h.service.SaveNote(c.Request.Context(), id, body.Note)
	if err != nil {
		respondError(c, err, "メモを保存できませんでした")
		return
	}
	common.SuccessResponse(c, rows)
}

// SetStatusBody body of PATCH /api/friends/users/:user_id/status
type SetStatusBody struct {
	Action domain.FriendAction `json:"action" binding:"required,oneof=hide show mute unmute"`
}

// SetStatus handles PATCH /api/friends/users/:user_id/status
// @Summary 非表示・ミュート設定
// @Tags friends
// @Accept json
// @Param user_id path int true "ユーザーID"
// @Param body body SetStatusBody true "操作"
// @Success 204
// @Router /friends/users/{user_id}/status [patch]
func (h *FriendHandler) SetStatus(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	var body SetStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "操作が不正です", err)
		return
	}
	if err := h.service.SetStatus(c.Request.Context(), userID, body.Action); err != nil {
		respondError(c, err, "設定を変更できませんでした")
		return
	}
	c.Status(http.StatusNoContent)
}
