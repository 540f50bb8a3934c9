package domain

import "time"

// FriendRequestStatus フレンド申請の状態
type FriendRequestStatus string

// Request states; transitions happen on the backend
const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	FriendRequestRejected FriendRequestStatus = "rejected"
)

// FriendAction relation settings applied after acceptance
type FriendAction string

// Friend actions
const (
	FriendActionHide   FriendAction = "hide"
	FriendActionShow   FriendAction = "show"
	FriendActionMute   FriendAction = "mute"
	FriendActionUnmute FriendAction = "unmute"
)

// Valid reports whether a is one of the four known actions
func (a FriendAction) Valid() bool {
	switch a {
	case FriendActionHide, FriendActionShow, FriendActionMute, FriendActionUnmute:
		return true
	}
	return false
}

// UserSimple minimal user reference
type UserSimple struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Nickname *string `json:"nickname"`
	Email    *string `json:"email,omitempty"`
}

// DisplayName nickname → email local part → username
func (u *UserSimple) DisplayName() string {
	if u.Nickname != nil && *u.Nickname != "" {
		return *u.Nickname
	}
	email := ""
	if u.Email != nil {
		email = *u.Email
	}
	return displayFallback(email, u.Username)
}

// FriendRequest a pending/processed request
type FriendRequest struct {
	ID          int64               `json:"id"`
	RequesterID int64               `json:"requester_id"`
	ReceiverID  int64               `json:"receiver_id"`
	Status      FriendRequestStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Requester   *UserSimple         `json:"requester,omitempty"`
	Receiver    *UserSimple         `json:"receiver,omitempty"`
}

// Friendship one side of an accepted relation
type Friendship struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	FriendID   int64      `json:"friend_id"`
	FriendNote *string    `json:"friend_note"`
	IsMuted    bool       `json:"is_muted"`
	IsHidden   bool       `json:"is_hidden"`
	Friend     UserSimple `json:"friend"`
}

// FriendshipUpdate body of PUT /friends/friendships/{id}
type FriendshipUpdate struct {
	FriendNote *string `json:"friend_note,omitempty"`
	IsMuted    *bool   `json:"is_muted,omitempty"`
}

// UserSearchResult a search tab row
type UserSearchResult struct {
	ID          int64   `json:"id"`
	DisplayName string  `json:"display_name"`
	Nickname    *string `json:"nickname"`
	Bio         *string `json:"bio"`
}

// IncomingRequestRow a requests tab row
type IncomingRequestRow struct {
	ID            int64  `json:"id"`
	RequesterID   int64  `json:"requester_id"`
	RequesterName string `json:"requester_name"`
	ProfileURL    string `json:"profile_url"`
}

// FriendRow a friends tab row
type FriendRow struct {
	FriendshipID int64  `json:"friendship_id"`
	FriendID     int64  `json:"friend_id"`
	Name         string `json:"name"`
	Note         string `json:"note"`
	IsMuted      bool   `json:"is_muted"`
	IsHidden     bool   `json:"is_hidden"`
}
