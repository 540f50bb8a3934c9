package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardKey(t *testing.T) {
	assert.Equal(t, "board:42", BoardKey(42))
}

func TestNilClientIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil)

	assert.False(t, svc.IsAvailable())
	assert.ErrorIs(t, svc.Ping(ctx), ErrUnavailable)
	assert.NoError(t, svc.Set(ctx, "k", map[string]int{"a": 1}, time.Minute))
	assert.NoError(t, svc.SetBoard(ctx, 1, []string{"x"}))
	assert.NoError(t, svc.InvalidateBoard(ctx, 1))

	var out []string
	assert.ErrorIs(t, svc.GetBoard(ctx, 1, &out), ErrUnavailable)
}

func TestBoardSnapshotLifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	ctx := context.Background()
	svc := NewService(rdb)

	require.NoError(t, svc.Ping(ctx))
	require.NoError(t, svc.SetBoard(ctx, 7, []string{"a", "b"}))
	assert.Equal(t, TTLBoard, mr.TTL(BoardKey(7)))

	var out []string
	require.NoError(t, svc.GetBoard(ctx, 7, &out))
	assert.Equal(t, []string{"a", "b"}, out)

	require.NoError(t, svc.InvalidateBoard(ctx, 7))
	assert.False(t, mr.Exists(BoardKey(7)))
	assert.Error(t, svc.GetBoard(ctx, 7, &out))
}
