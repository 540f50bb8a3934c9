package repository

import (
	"errors"
	"time"

	"github.com/osidou/osidou-web/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepository browser session token store
type SessionRepository interface {
	FindByID(id string) (*domain.Session, error)
	SaveToken(id, token string) error
	Delete(id string) error
	DeleteIdleSince(cutoff time.Time) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// FindByID returns nil, nil when the session has never stored a token
func (r *sessionRepository) FindByID(id string) (*domain.Session, error) {
	var s domain.Session
	err := r.db.Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveToken upserts the token of a session
func (r *sessionRepository) SaveToken(id, token string) error {
	now := time.Now()
	s := &domain.Session{ID: id, AccessToken: token, CreatedAt: now, UpdatedAt: now}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"access_token", "updated_at"}),
	}).Create(s).Error
}

// Delete removes the session row. Deleting a missing session is not an error.
func (r *sessionRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Session{}).Error
}

// DeleteIdleSince removes sessions not updated since cutoff
func (r *sessionRepository) DeleteIdleSince(cutoff time.Time) (int64, error) {
	res := r.db.Where("updated_at < ?", cutoff).Delete(&domain.Session{})
	return res.RowsAffected, res.Error
}
