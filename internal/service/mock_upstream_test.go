package service

import (
	"context"

	"github.com/osidou/osidou-web/internal/domain"
	"github.com/stretchr/testify/mock"
)

// mockUpstream implements every *API interface of this package
type mockUpstream struct {
	mock.Mock
}

func (m *mockUpstream) Me(ctx context.Context) (*domain.UserProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *mockUpstream) User(ctx context.Context, id int64) (*domain.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *mockUpstream) UpdateMe(ctx context.Context, fields map[string]interface{}) (*domain.UserProfile, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *mockUpstream) MyMoodHistory(ctx context.Context) ([]domain.MoodLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MoodLog), args.Error(1)
}

func (m *mockUpstream) MoodHistory(ctx context.Context, userID int64) ([]domain.MoodLog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MoodLog), args.Error(1)
}

func (m *mockUpstream) MyCategories(ctx context.Context) ([]domain.HobbyCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HobbyCategory), args.Error(1)
}

func (m *mockUpstream) SetMoodVisibility(ctx context.Context, visible bool) (*domain.UserProfile, error) {
	args := m.Called(ctx, visible)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *mockUpstream) Follow(ctx context.Context, userID int64) (*domain.FollowResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FollowResult), args.Error(1)
}

func (m *mockUpstream) FollowStatus(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUpstream) PostMood(ctx context.Context, req *domain.MoodPostRequest) (*domain.MoodLog, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoodLog), args.Error(1)
}

func (m *mockUpstream) FollowingMoods(ctx context.Context) ([]domain.UserMoodResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserMoodResponse), args.Error(1)
}

func (m *mockUpstream) Categories(ctx context.Context) ([]domain.HobbyCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HobbyCategory), args.Error(1)
}

func (m *mockUpstream) Category(ctx context.Context, id int64) (*domain.HobbyCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HobbyCategory), args.Error(1)
}

func (m *mockUpstream) JoinCategory(ctx context.Context, id int64) (*domain.JoinResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinResult), args.Error(1)
}

func (m *mockUpstream) LeaveCategory(ctx context.Context, id int64) (*domain.JoinResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinResult), args.Error(1)
}

func (m *mockUpstream) SearchUsers(ctx context.Context, query string, limit int) ([]domain.UserProfile, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserProfile), args.Error(1)
}

func (m *mockUpstream) SendFriendRequest(ctx context.Context, userID int64) (*domain.FriendRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FriendRequest), args.Error(1)
}

func (m *mockUpstream) IncomingRequests(ctx context.Context) ([]domain.FriendRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FriendRequest), args.Error(1)
}

func (m *mockUpstream) SentRequests(ctx context.Context) ([]domain.FriendRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FriendRequest), args.Error(1)
}

func (m *mockUpstream) SetRequestStatus(ctx context.Context, requestID int64, status domain.FriendRequestStatus) (*domain.FriendRequest, error) {
	args := m.Called(ctx, requestID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FriendRequest), args.Error(1)
}

func (m *mockUpstream) Friends(ctx context.Context) ([]domain.Friendship, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Friendship), args.Error(1)
}

func (m *mockUpstream) SetFriendStatus(ctx context.Context, userID int64, action domain.FriendAction) error {
	return m.Called(ctx, userID, action).Error(0)
}

func (m *mockUpstream) UpdateFriendship(ctx context.Context, friendshipID int64, upd *domain.FriendshipUpdate) (*domain.Friendship, error) {
	args := m.Called(ctx, friendshipID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Friendship), args.Error(1)
}

var (
	_ ProfileAPI   = (*mockUpstream)(nil)
	_ MoodAPI      = (*mockUpstream)(nil)
	_ CommunityAPI = (*mockUpstream)(nil)
	_ FriendAPI    = (*mockUpstream)(nil)
)

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64  { return &v }
func boolPtr(v bool) *bool    { return &v }
