package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osidou/osidou-web/internal/common"
	"github.com/osidou/osidou-web/internal/domain"
	"github.com/osidou/osidou-web/internal/repository"
	"github.com/osidou/osidou-web/internal/upstream"
	"github.com/osidou/osidou-web/pkg/jwt"
)

// SessionService per-browser token store. It is the TokenSource of the upstream client.
type SessionService interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, sessionID, token string) error
	Clear(ctx context.Context, sessionID string) error
	Describe(ctx context.Context, sessionID string) (*domain.SessionInfo, error)
}

type sessionService struct {
	repo repository.SessionRepository
	now  func() time.Time
}

// NewSessionService creates a new SessionService
func NewSessionService(repo repository.SessionRepository) SessionService {
	return &sessionService{repo: repo, now: time.Now}
}

// Token reads the stored token of the session carried by ctx.
// It is called once per upstream request; nothing is cached.
func (s *sessionService) Token(ctx context.Context) (string, error) {
	sessionID := upstream.SessionID(ctx)
	if sessionID == "" {
		return "", upstream.ErrNoToken
	}
	sess, err := s.repo.FindByID(sessionID)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if sess == nil || sess.AccessToken == "" {
		return "", upstream.ErrNoToken
	}
	return sess.AccessToken, nil
}

// SetToken stores token for the session, replacing any previous one
func (s *sessionService) SetToken(_ context.Context, sessionID, token string) error {
	if sessionID == "" {
		return common.ErrNoSession
	}
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return fmt.Errorf("%w: empty token", common.ErrInvalidInput)
	}
	return s.repo.SaveToken(sessionID, token)
}

// Clear forgets the session's token (logout)
func (s *sessionService) Clear(_ context.Context, sessionID string) error {
	if sessionID == "" {
		return common.ErrNoSession
	}
	return s.repo.Delete(sessionID)
}

// Describe reports whether a token is stored and, when it is a JWT, its
// subject and expiry. The signature is not checked here.
func (s *sessionService) Describe(_ context.Context, sessionID string) (*domain.SessionInfo, error) {
	info := &domain.SessionInfo{SessionID: sessionID}
	if sessionID == "" {
		return info, nil
	}
	sess, err := s.repo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.AccessToken == "" {
		return info, nil
	}

	info.Authenticated = true
	claims, err := jwt.Inspect(sess.AccessToken)
	if err != nil {
		// opaque token
		return info, nil
	}
	info.Subject = claims.Email()
	if exp := claims.Expiry(); !exp.IsZero() {
		info.ExpiresAt = &exp
		info.Expired = claims.Expired(s.now())
	}
	return info, nil
}
