package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/osidou/osidou-web/internal/chat"
	"github.com/osidou/osidou-web/internal/upstream"
	"github.com/osidou/osidou-web/internal/ws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWSBoard_ClosingSocketStopsPolling(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var fetches atomic.Int64
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/posts/category/5" {
			fetches.Add(1)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":1,"user_id":2,"content":"こんにちは","hobby_category_id":5,"created_at":"2026-10-01T09:00:00Z"}]`)
	}))
	defer backend.Close()

	hub := ws.NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	board := chat.NewBoard(upstream.NewClient(backend.URL, time.Second, nil), nil, hub)
	h := NewWSHandler(hub, board, chat.NewPoller(board, 20*time.Millisecond), "")
	router := gin.New()
	router.GET("/ws/community/:id", h.Board)
	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/community/5"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev ws.Event
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, ws.EventSnapshot, ev.Type)
	require.Eventually(t, func() bool { return fetches.Load() >= 3 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Subscribers(ws.BoardTopic(5)) == 0 }, 2*time.Second, 10*time.Millisecond)

	// an in-flight fetch may still land
	time.Sleep(50 * time.Millisecond)
	settled := fetches.Load()
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, settled, fetches.Load(), "poller kept fetching after the socket closed")
}

func TestWSBoard_InvalidCategory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := ws.NewHub(nil)
	board := chat.NewBoard(upstream.NewClient("http://127.0.0.1:1", time.Second, nil), nil, hub)
	h := NewWSHandler(hub, board, chat.NewPoller(board, time.Second), "")
	router := gin.New()
	router.GET("/ws/community/:id", h.Board)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws/community/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
