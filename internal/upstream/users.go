package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/osidou/osidou-web/internal/domain"
)

// Me GET /users/me
func (c *Client) Me(ctx context.Context) (*domain.UserProfile, error) {
	var out domain.UserProfile
	if err := c.do(ctx, call{method: http.MethodGet, endpoint: "users.me", path: "/users/me"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMe PUT /users/me with a partial field map
func (c *Client) UpdateMe(ctx context.Context, fields map[string]interface{}) (*domain.UserProfile, error) {
	var out domain.UserProfile
	err := c.do(ctx, call{method: http.MethodPut, endpoint: "users.update_me", path: "/users/me", body: fields}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// User GET /users/{id}
func (c *Client) User(ctx context.Context, id int64) (*domain.UserProfile, error) {
	var out domain.UserProfile
	err := c.do(ctx, call{method: http.MethodGet, endpoint: "users.get", path: idPath("/users/%s", id)}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Follow POST /users/{id}/follow. The backend toggles: a second call unfollows.
func (c *Client) Follow(ctx context.Context, userID int64) (*domain.FollowResult, error) {
	var out domain.FollowResult
	err := c.do(ctx, call{method: http.MethodPost, endpoint: "users.follow", path: idPath("/users/%s/follow", userID)}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// FollowStatus GET /users/{id}/follow-status
func (c *Client) FollowStatus(ctx context.Context, userID int64) (bool, error) {
	var out struct {
		IsFollowing bool `json:"is_following"`
	}
	err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "users.follow_status",
		path:     idPath("/users/%s/follow-status", userID),
	}, &out)
	return out.IsFollowing, err
}

// SearchUsers GET /users/search
func (c *Client) SearchUsers(ctx context.Context, query string, limit int) ([]domain.UserProfile, error) {
	q := url.Values{}
	q.Set("query", query)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []domain.UserProfile
	err := c.do(ctx, call{method: http.MethodGet, endpoint: "users.search", path: "/users/search", query: q}, &out)
	return out, err
}

// MyMoodHistory GET /users/me/mood-history
func (c *Client) MyMoodHistory(ctx context.Context) ([]domain.MoodLog, error) {
	var out []domain.MoodLog
	err := c.do(ctx, call{method: http.MethodGet, endpoint: "users.my_mood_history", path: "/users/me/mood-history"}, &out)
	return out, err
}

// MoodHistory GET /users/{id}/mood-history
func (c *Client) MoodHistory(ctx context.Context, userID int64) ([]domain.MoodLog, error) {
	var out []domain.MoodLog
	err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "users.mood_history",
		path:     idPath("/users/%s/mood-history", userID),
	}, &out)
	return out, err
}

// FollowingMoods GET /users/following/moods
func (c *Client) FollowingMoods(ctx context.Context) ([]domain.UserMoodResponse, error) {
	var out []domain.UserMoodResponse
	err := c.do(ctx, call{method: http.MethodGet, endpoint: "users.following_moods", path: "/users/following/moods"}, &out)
	return out, err
}

// SetMoodVisibility PATCH /users/me/mood-visibility
func (c *Client) SetMoodVisibility(ctx context.Context, visible bool) (*domain.UserProfile, error) {
	var out domain.UserProfile
	err := c.do(ctx, call{
		method:   http.MethodPatch,
		endpoint: "users.mood_visibility",
		path:     "/users/me/mood-visibility",
		body:     map[string]bool{"is_mood_visible": visible},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PostMood POST /users/moods
func (c *Client) PostMood(ctx context.Context, req *domain.MoodPostRequest) (*domain.MoodLog, error) {
	var out domain.MoodLog
	if err := c.do(ctx, call{method: http.MethodPost, endpoint: "moods.create", path: "/users/moods", body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
