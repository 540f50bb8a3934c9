// Package chat serves the community board of a leaf category: fetching,
// threading, composing and the per-view polling loop.
package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/osidou/osidou-web/internal/common"
	"github.com/osidou/osidou-web/internal/domain"
	"github.com/osidou/osidou-web/internal/ws"
	"github.com/osidou/osidou-web/pkg/cache"
	"github.com/osidou/osidou-web/pkg/logger"
)

// API backend calls used by the board
type API interface {
	CategoryPosts(ctx context.Context, categoryID int64) ([]domain.Post, error)
	CreatePost(ctx context.Context, req *domain.PostCreate) (*domain.Post, error)
	CreateResponse(ctx context.Context, postID int64, req *domain.PostResponseCreate) (*domain.PostResponse, error)
}

// Publisher fans an event out to a topic's subscribers
type Publisher interface {
	Publish(topic string, event *ws.Event)
}

// Board fetches and mutates category boards
type Board struct {
	api       API
	cache     cache.Service
	publisher Publisher
	now       func() time.Time
}

// NewBoard creates a Board. cache and publisher may be nil.
func NewBoard(api API, c cache.Service, publisher Publisher) *Board {
	if c == nil {
		c = cache.NewService(nil)
	}
	return &Board{api: api, cache: c, publisher: publisher, now: time.Now}
}

// Fetch loads the full board and replaces the cached snapshot
func (b *Board) Fetch(ctx context.Context, categoryID int64) (*domain.ChatBoard, error) {
	if categoryID <= 0 {
		return nil, fmt.Errorf("%w: category id", common.ErrInvalidInput)
	}
	posts, err := b.api.CategoryPosts(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	board := &domain.ChatBoard{
		CategoryID: categoryID,
		Threads:    BuildThreads(posts),
		FetchedAt:  b.now(),
	}
	if err := b.cache.SetBoard(ctx, categoryID, board); err != nil {
		logger.GetLogger().Warn().Err(err).Int64("category_id", categoryID).Msg("board snapshot cache write failed")
	}
	return board, nil
}

// Cached returns the last snapshot written by any poller, if still fresh
func (b *Board) Cached(ctx context.Context, categoryID int64) (*domain.ChatBoard, bool) {
	var board domain.ChatBoard
	if err := b.cache.GetBoard(ctx, categoryID, &board); err != nil {
		return nil, false
	}
	return &board, true
}

// Send validates and posts a compose form, then re-fetches the board
func (b *Board) Send(ctx context.Context, categoryID int64, form Form) (*domain.ChatBoard, error) {
	if categoryID <= 0 {
		return nil, fmt.Errorf("%w: category id", common.ErrInvalidInput)
	}
	if err := Validate(form); err != nil {
		return nil, err
	}
	post, err := b.api.CreatePost(ctx, form.PostCreate(categoryID))
	if err != nil {
		return nil, err
	}
	postsCreated.WithLabelValues(string(post.Kind())).Inc()
	b.invalidate(ctx, categoryID)

	if b.publisher != nil {
		b.publisher.Publish(ws.BoardTopic(categoryID), &ws.Event{Type: ws.EventPostCreated, Payload: Render(*post)})
	}
	return b.Fetch(ctx, categoryID)
}

// JoinMeetup registers participation in a meetup post, then re-fetches the board
func (b *Board) JoinMeetup(ctx context.Context, categoryID, postID int64) (*domain.ChatBoard, error) {
	if postID <= 0 {
		return nil, fmt.Errorf("%w: post id", common.ErrInvalidInput)
	}
	if _, err := b.api.CreateResponse(ctx, postID, &domain.PostResponseCreate{IsParticipation: true}); err != nil {
		return nil, err
	}
	b.invalidate(ctx, categoryID)
	return b.Fetch(ctx, categoryID)
}

// invalidate drops the snapshot after a write so a failed re-fetch never
// leaves new sockets reading a board without the write.
func (b *Board) invalidate(ctx context.Context, categoryID int64) {
	if err := b.cache.InvalidateBoard(ctx, categoryID); err != nil {
		logger.GetLogger().Warn().Err(err).Int64("category_id", categoryID).Msg("board snapshot invalidation failed")
	}
}
