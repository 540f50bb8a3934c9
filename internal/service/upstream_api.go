package service

import (
	"context"

	"github.com/osidou/osidou-web/internal/domain"
)

// The interfaces below are the slices of *upstream.Client each service calls.

// ProfileAPI backend calls behind the profile view
type ProfileAPI interface {
	Me(ctx context.Context) (*domain.UserProfile, error)
	User(ctx context.Context, id int64) (*domain.UserProfile, error)
	UpdateMe(ctx context.Context, fields map[string]interface{}) (*domain.UserProfile, error)
	MyMoodHistory(ctx context.Context) ([]domain.MoodLog, error)
	MoodHistory(ctx context.Context, userID int64) ([]domain.MoodLog, error)
	MyCategories(ctx context.Context) ([]domain.HobbyCategory, error)
	SetMoodVisibility(ctx context.Context, visible bool) (*domain.UserProfile, error)
	Follow(ctx context.Context, userID int64) (*domain.FollowResult, error)
	FollowStatus(ctx context.Context, userID int64) (bool, error)
}

// MoodAPI backend calls behind the mood feed
type MoodAPI interface {
	PostMood(ctx context.Context, req *domain.MoodPostRequest) (*domain.MoodLog, error)
	FollowingMoods(ctx context.Context) ([]domain.UserMoodResponse, error)
	MyMoodHistory(ctx context.Context) ([]domain.MoodLog, error)
}

// CommunityAPI backend calls behind the community views
type CommunityAPI interface {
	Categories(ctx context.Context) ([]domain.HobbyCategory, error)
	Category(ctx context.Context, id int64) (*domain.HobbyCategory, error)
	JoinCategory(ctx context.Context, id int64) (*domain.JoinResult, error)
	LeaveCategory(ctx context.Context, id int64) (*domain.JoinResult, error)
	MyCategories(ctx context.Context) ([]domain.HobbyCategory, error)
}

// FriendAPI backend calls behind the friend manager
type FriendAPI interface {
	SearchUsers(ctx context.Context, query string, limit int) ([]domain.UserProfile, error)
	SendFriendRequest(ctx context.Context, userID int64) (*domain.FriendRequest, error)
	IncomingRequests(ctx context.Context) ([]domain.FriendRequest, error)
	SentRequests(ctx context.Context) ([]domain.FriendRequest, error)
	SetRequestStatus(ctx context.Context, requestID int64, status domain.FriendRequestStatus) (*domain.FriendRequest, error)
	Friends(ctx context.Context) ([]domain.Friendship, error)
	SetFriendStatus(ctx context.Context, userID int64, action domain.FriendAction) error
	UpdateFriendship(ctx context.Context, friendshipID int64, upd *domain.FriendshipUpdate) (*domain.Friendship, error)
}
