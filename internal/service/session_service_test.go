package service

import (
	"context"
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/osidou/osidou-web/internal/common"
	"github.com/osidou/osidou-web/internal/domain"
	"github.com/osidou/osidou-web/internal/repository"
	"github.com/osidou/osidou-web/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSessionService(t *testing.T) SessionService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every :memory: connection is a separate database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.Session{}))
	return NewSessionService(repository.NewSessionRepository(db))
}

func signedToken(t *testing.T, sub string, exp time.Time) string {
	t.Helper()
	tok := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: gojwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return s
}

func TestSessionToken_NoSession(t *testing.T) {
	svc := setupSessionService(t)

	_, err := svc.Token(context.Background())
	assert.True(t, errors.Is(err, upstream.ErrNoToken))

	_, err = svc.Token(upstream.WithSession(context.Background(), "unknown"))
	assert.True(t, errors.Is(err, upstream.ErrNoToken))
}

func TestSessionToken_SetThenRead(t *testing.T) {
	svc := setupSessionService(t)
	ctx := upstream.WithSession(context.Background(), "sid")

	require.NoError(t, svc.SetToken(ctx, "sid", "Bearer abc.def.ghi"))
	tok, err := svc.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	// replaced token is visible on the next read
	require.NoError(t, svc.SetToken(ctx, "sid", "zzz"))
	tok, err = svc.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "zzz", tok)
}

func TestSessionSetToken_Invalid(t *testing.T) {
	svc := setupSessionService(t)

	assert.True(t, errors.Is(svc.SetToken(context.Background(), "", "abc"), common.ErrNoSession))
	assert.True(t, errors.Is(svc.SetToken(context.Background(), "sid", "  "), common.ErrInvalidInput))
}

func TestSessionClear(t *testing.T) {
	svc := setupSessionService(t)
	ctx := upstream.WithSession(context.Background(), "sid")

	require.NoError(t, svc.SetToken(ctx, "sid", "abc"))
	require.NoError(t, svc.Clear(ctx, "sid"))

	_, err := svc.Token(ctx)
	assert.True(t, errors.Is(err, upstream.ErrNoToken))
}

func TestSessionDescribe(t *testing.T) {
	svc := setupSessionService(t)
	ctx := context.Background()

	info, err := svc.Describe(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, info.Authenticated)

	exp := time.Now().Add(-time.Minute).Truncate(time.Second)
	require.NoError(t, svc.SetToken(ctx, "sid", signedToken(t, "taro@example.com", exp)))

	info, err = svc.Describe(ctx, "sid")
	require.NoError(t, err)
	assert.True(t, info.Authenticated)
	assert.Equal(t, "taro@example.com", info.Subject)
	require.NotNil(t, info.ExpiresAt)
	assert.True(t, info.ExpiresAt.Equal(exp))
	assert.True(t, info.Expired)
}

func TestSessionDescribe_OpaqueToken(t *testing.T) {
	svc := setupSessionService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetToken(ctx, "sid", "not-a-jwt"))
	info, err := svc.Describe(ctx, "sid")
	require.NoError(t, err)
	assert.True(t, info.Authenticated)
	assert.Empty(t, info.Subject)
	assert.Nil(t, info.ExpiresAt)
}
