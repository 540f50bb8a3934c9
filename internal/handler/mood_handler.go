package handler

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/osidou/osidou-web/internal/common"
	"github.com/osidou/osidou-web/internal/domain"
	"github.com/osidou/osidou-web/internal/service"
)

// MoodHandler mood input and feed
type MoodHandler struct {
	service service.MoodService
}

// NewMoodHandler creates a new MoodHandler
func NewMoodHandler(service service.MoodService) *MoodHandler {
	return &MoodHandler{service: service}
}

// Catalog handles GET /api/moods/catalog
// @Summary 気分タイプ一覧
// @Tags moods
// @Produce json
// @Success 200 {object} common.APIResponse
// @Router /moods/catalog [get]
func (h *MoodHandler) Catalog(c *gin.Context) {
	common.SuccessResponse(c, gin.H{
		"moods":           domain.MoodCatalog,
		"comment_max_len": domain.MoodCommentMaxLen,
	})
}

// Feed handles GET /api/moods/feed
// @Summary フレンドの気分
// @Tags moods
// @Produce json
// @Success 200 {object} common.APIResponse{data=domain.MoodFeedView}
// @Router /moods/feed [get]
func (h *MoodHandler) Feed(c *gin.Context) {
	feed, err := h.service.Feed(c.Request.Context())
	if err != nil {
		respondError(c, err, "気分ログの読み込みに失敗しました。")
		return
	}
	common.SuccessResponse(c, feed)
}

// History handles GET /api/moods/history
// @Summary 自分の気分履歴
// @Tags moods
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.MoodLog}
// @Router /moods/history [get]
func (h *MoodHandler) History(c *gin.Context) {
	history, err := h.service.History(c.Request.Context())
	if err != nil {
		respondError(c, err, "履歴を読み込めませんでした")
		return
	}
	common.SuccessResponse(c, history)
}

// Post handles POST /api/moods
// Responds with the created log and the refreshed feed.
// @Summary 気分を投稿
// @Tags moods
// @Accept json
// @Produce json
// @Param body body domain.MoodPostRequest true "気分"
// @Success 201 {object} common.APIResponse{data=domain.MoodPostResult}
// @Router /moods [post]
func (h *MoodHandler) Post(c *gin.Context) {
	var req domain.MoodPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "入力内容を確認してください", err)
		return
	}
	if req.Comment != nil && utf8.RuneCountInString(*req.Comment) > domain.MoodCommentMaxLen {
		msg := fmt.Sprintf("コメントは%d文字以内で入力してください（%s）", domain.MoodCommentMaxLen, service.CommentCounter(*req.Comment))
		common.ErrorResponse(c, http.StatusBadRequest, msg, common.ErrInvalidInput)
		return
	}

	result, err := h.service.Post(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			common.ErrorResponse(c, http.StatusBadRequest, "気分タイプを選択してください", err)
			return
		}
		respondError(c, err, "気分の投稿に失敗しました。")
		return
	}
	common.CreatedResponse(c, result)
}
