package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/osidou/osidou-web/internal/chat"
	"github.com/osidou/osidou-web/internal/common"
	"github.com/osidou/osidou-web/internal/service"
	"github.com/osidou/osidou-web/pkg/ginutil"
)

// CommunityHandler community list, detail, membership and board
type CommunityHandler struct {
	service service.CommunityService
	board   *chat.Board
}

// NewCommunityHandler creates a new CommunityHandler
func NewCommunityHandler(service service.CommunityService, board *chat.Board) *CommunityHandler {
	return &CommunityHandler{service: service, board: board}
}

// List handles GET /api/community
// @Summary コミュニティ一覧・検索
// @Tags community
// @Produce json
// @Param q query string false "名前またはコード"
// @Success 200 {object} common.APIResponse{data=domain.CommunityListView}
// @Router /community [get]
func (h *CommunityHandler) List(c *gin.Context) {
	view, err := h.service.List(c.Request.Context(), ginutil.QueryTrimmed(c, "q"))
	if err != nil {
		respondError(c, err, "カテゴリの取得に失敗しました")
		return
	}
	common.SuccessResponse(c, view)
}

// Mine handles GET /api/community/mine
// @Summary 参加中のコミュニティ
// @Tags community
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.CategoryCard}
// @Router /community/mine [get]
func (h *CommunityHandler) Mine(c *gin.Context) {
	cards, err := h.service.Mine(c.Request.Context())
	if err != nil {
		respondError(c, err, "参加中のコミュニティを取得できませんでした")
		return
	}
	common.SuccessResponse(c, cards)
}

// Detail handles GET /api/community/:id
// @Summary コミュニティ詳細
// @Tags community
// @Produce json
// @Param id path int true "カテゴリID"
// @Success 200 {object} common.APIResponse{data=domain.CommunityDetailView}
// @Router /community/{id} [get]
func (h *CommunityHandler) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "カテゴリが見つかりません")
		return
	}
	common.SuccessResponse(c, view)
}

// Join handles POST /api/community/:id/join
// Joining an already joined community succeeds with the backend's message.
// @Summary コミュニティに参加
// @Tags community
// @Produce json
// @Param id path int true "カテゴリID"
// @Success 200 {object} common.APIResponse{data=domain.JoinResult}
// @Router /community/{id}/join [post]
func (h *CommunityHandler) Join(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	res, err := h.service.Join(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "参加できませんでした")
		return
	}
	common.SuccessResponse(c, res)
}

// Leave handles DELETE /api/community/:id/leave
// @Summary コミュニティから退出
// @Tags community
// @Produce json
// @Param id path int true "カテゴリID"
// @Success 200 {object} common.APIResponse{data=domain.JoinResult}
// @Router /community/{id}/leave [delete]
func (h *CommunityHandler) Leave(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	res, err := h.service.Leave(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "退出できませんでした")
		return
	}
	common.SuccessResponse(c, res)
}

// Board handles GET /api/community/:id/board
// @Summary 掲示板スナップショット
// @Tags board
// @Produce json
// @Param id path int true "カテゴリID"
// @Success 200 {object} common.APIResponse{data=domain.ChatBoard}
// @Router /community/{id}/board [get]
func (h *CommunityHandler) Board(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	board, err := h.board.Fetch(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "投稿の取得に失敗しました")
		return
	}
	common.SuccessResponse(c, board)
}

// SendMessage handles POST /api/community/:id/board/messages
// @Summary メッセージ投稿
// @Tags board
// @Accept json
// @Produce json
// @Param id path int true "カテゴリID"
// @Param body body chat.MessageForm true "メッセージ"
// @Success 201 {object} common.APIResponse{data=domain.ChatBoard}
// @Router /community/{id}/board/messages [post]
func (h *CommunityHandler) SendMessage(c *gin.Context) {
	h.send(c, &chat.MessageForm{})
}

// SendMeetup handles POST /api/community/:id/board/meetups
// @Summary オフ会を投稿
// @Description meetup_date は RFC3339 か datetime-local 形式 (2026-10-20T19:00, JST)
// @Tags board
// @Accept json
// @Produce json
// @Param id path int true "カテゴリID"
// @Param body body chat.MeetupForm true "オフ会"
// @Success 201 {object} common.APIResponse{data=domain.ChatBoard}
// @Router /community/{id}/board/meetups [post]
func (h *CommunityHandler) SendMeetup(c *gin.Context) {
	h.send(c, &chat.MeetupForm{})
}

// SendAd handles POST /api/community/:id/board/ads
// @Summary 広告を投稿
// @Description ad_end_date は RFC3339 か datetime-local 形式 (JST)
// @Tags board
// @Accept json
// @Produce json
// @Param id path int true "カテゴリID"
// @Param body body chat.AdForm true "広告"
// @Success 201 {object} common.APIResponse{data=domain.ChatBoard}
// @Router /community/{id}/board/ads [post]
func (h *CommunityHandler) SendAd(c *gin.Context) {
	h.send(c, &chat.AdForm{})
}

func (h *CommunityHandler) send(c *gin.Context, form chat.Form) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := c.ShouldBindJSON(form); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "入力内容を確認してください", err)
		return
	}
	board, err := h.board.Send(c.Request.Context(), id, form)
	if err != nil {
		respondError(c, err, "送信に失敗しました")
		return
	}
	common.CreatedResponse(c, board)
}

// JoinMeetup handles POST /api/community/:id/board/posts/:post_id/participate
// @Summary オフ会に参加
// @Tags board
// @Produce json
// @Param id path int true "カテゴリID"
// @Param post_id path int true "投稿ID"
// @Success 200 {object} common.APIResponse{data=domain.ChatBoard}
// @Router /community/{id}/board/posts/{post_id}/participate [post]
func (h *CommunityHandler) JoinMeetup(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	postID, ok := parseID(c, "post_id")
	if !ok {
		return
	}
	board, err := h.board.JoinMeetup(c.Request.Context(), id, postID)
	if err != nil {
		respondError(c, err, "参加登録に失敗しました")
		return
	}
	common.SuccessResponse(c, board)
}
