package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/osidou/osidou-web/internal/chat"
	"github.com/osidou/osidou-web/internal/common"
	"github.com/osidou/osidou-web/internal/domain"
	"github.com/osidou/osidou-web/internal/middleware"
	"github.com/osidou/osidou-web/internal/ws"
	"github.com/osidou/osidou-web/pkg/logger"
)

// WSHandler streams live board snapshots over WebSocket
type WSHandler struct {
	hub            *ws.Hub
	board          *chat.Board
	poller         *chat.Poller
	allowedOrigins []string
	upgrader       websocket.Upgrader
}

// NewWSHandler creates a new WSHandler
func NewWSHandler(hub *ws.Hub, board *chat.Board, poller *chat.Poller, allowedOrigins string) *WSHandler {
	h := &WSHandler{
		hub:            hub,
		board:          board,
		poller:         poller,
		allowedOrigins: parseOrigins(allowedOrigins),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// parseOrigins parses comma-separated origins string
func parseOrigins(origins string) []string {
	if origins == "" {
		return nil
	}
	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// checkOrigin validates the request origin against allowed origins
func (h *WSHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	// nothing configured: development
	if len(h.allowedOrigins) == 0 {
		return true
	}
	for _, allowed := range h.allowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

// clientSink forwards poll results to one socket
type clientSink struct {
	client *ws.Client
}

func (s clientSink) Snapshot(board *domain.ChatBoard) {
	s.client.Deliver(&ws.Event{Type: ws.EventSnapshot, Payload: board})
}

func (s clientSink) PollFailed(err error) {
	s.client.Deliver(&ws.Event{
		Type:    ws.EventError,
		Payload: common.ErrorInfo{Code: "BAD_GATEWAY", Message: "投稿の取得に失敗しました", Details: err.Error()},
	})
}

// Board handles GET /ws/community/:id
// The view polls the board for as long as the socket stays open.
// @Summary 掲示板ライブ更新 WebSocket
// @Tags board
// @Param id path int true "カテゴリID"
// @Router /ws/community/{id} [get]
func (h *WSHandler) Board(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := ws.NewClient(h.hub, conn, ws.BoardTopic(id))

	// the request context ends when this handler returns; keep its session only
	ctx, cancel := context.WithCancel(context.WithoutCancel(c.Request.Context()))
	client.OnClose(cancel)
	h.hub.Register(client)

	if cached, ok := h.board.Cached(ctx, id); ok {
		client.Deliver(&ws.Event{Type: ws.EventSnapshot, Payload: cached})
	}

	log := logger.WithSessionID(middleware.GetSessionID(c))
	log.Debug().Int64("category_id", id).Msg("board view opened")

	go client.WritePump()
	go client.ReadPump()
	go func() {
		h.poller.Run(ctx, id, clientSink{client: client}, client.Wake())
		log.Debug().Int64("category_id", id).Msg("board view closed")
	}()
}
