package domain

import "time"

// Session browser session holding the backend bearer token
type Session struct {
	ID          string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	AccessToken string    `gorm:"column:access_token;type:text" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Session) TableName() string {
	return "web_sessions"
}

// SessionInfo describes the stored token without exposing it
type SessionInfo struct {
	SessionID     string     `json:"session_id"`
	Authenticated bool       `json:"authenticated"`
	Subject       string     `json:"subject,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	Expired       bool       `json:"expired"`
}
