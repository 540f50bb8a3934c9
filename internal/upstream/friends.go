package upstream

import (
	"context"
	"net/http"

	"github.com/osidou/osidou-web/internal/domain"
)

// SendFriendRequest POST /friends/{id}/friend_request
func (c *Client) SendFriendRequest(ctx context.Context, userID int64) (*domain.FriendRequest, error) {
	var out domain.FriendRequest
	err := c.do(ctx, call{method: http.MethodPost, endpoint: "friends.request", path: idPath("/friends/%s/friend_request", userID)}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// IncomingRequests GET /friends/me/friend-requests
func (c *Client) IncomingRequests(ctx context.Context) ([]domain.FriendRequest, error) {
	var out []domain.FriendRequest
	err := c.do(ctx, call{method: http.MethodGet, endpoint: "friends.incoming", path: "/friends/me/friend-requests"}, &out)
	return out, err
}

// SentRequests GET /friends/me/sent-friend-requests
func (c *Client) SentRequests(ctx context.Context) ([]domain.FriendRequest, error) {
	var out []domain.FriendRequest
	err := c.do(ctx, call{method: http.MethodGet, endpoint: "friends.sent", path: "/friends/me/sent-friend-requests"}, &out)
	return out, err
}

// SetRequestStatus PUT /friends/friend_requests/{id}/status
func (c *Client) SetRequestStatus(ctx context.Context, requestID int64, status domain.FriendRequestStatus) (*domain.FriendRequest, error) {
	var out domain.FriendRequest
	err := c.do(ctx, call{
		method:   http.MethodPut,
		endpoint: "friends.request_status",
		path:     idPath("/friends/friend_requests/%s/status", requestID),
		body:     map[string]domain.FriendRequestStatus{"status": status},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Friends GET /friends/me/friends
func (c *Client) Friends(ctx context.Context) ([]domain.Friendship, error) {
	var out []domain.Friendship
	err := c.do(ctx, call{method: http.MethodGet, endpoint: "friends.list", path: "/friends/me/friends"}, &out)
	return out, err
}

// SetFriendStatus PATCH /friends/friends/{user_id}/status
func (c *Client) SetFriendStatus(ctx context.Context, userID int64, action domain.FriendAction) error {
	return c.do(ctx, call{
		method:   http.MethodPatch,
		endpoint: "friends.status",
		path:     idPath("/friends/friends/%s/status", userID),
		body:     map[string]domain.FriendAction{"action": action},
	}, nil)
}

// UpdateFriendship PUT /friends/friendships/{id}
func (c *Client) UpdateFriendship(ctx context.Context, friendshipID int64, upd *domain.FriendshipUpdate) (*domain.Friendship, error) {
	var out domain.Friendship
	err := c.do(ctx, call{
		method:   http.MethodPut,
		endpoint: "friends.update",
		path:     idPath("/friends/friendships/%s", friendshipID),
		body:     upd,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
