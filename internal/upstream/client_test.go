package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/osidou/osidou-web/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc, tokens TokenSource) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 2*time.Second, tokens)
}

func staticToken(token string) TokenSource {
	return TokenSourceFunc(func(ctx context.Context) (string, error) { return token, nil })
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/users/me", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":7,"username":"taro","email":"taro@example.com","nickname":null}`))
	}, staticToken("abc"))

	me, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Equal(t, int64(7), me.ID)
	assert.Equal(t, "taro", me.DisplayName())
}

func TestClient_ReadsTokenOnEveryCall(t *testing.T) {
	token := "first"
	var seen []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}, TokenSourceFunc(func(ctx context.Context) (string, error) { return token, nil }))

	_, err := c.FollowingMoods(context.Background())
	require.NoError(t, err)
	token = "second"
	_, err = c.FollowingMoods(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer first", "Bearer second"}, seen)
}

func TestClient_NoTokenSendsAnonymous(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Not authenticated"}`))
	}, TokenSourceFunc(func(ctx context.Context) (string, error) { return "", ErrNoToken }))

	_, err := c.Me(context.Background())
	require.Error(t, err)
	assert.Empty(t, gotAuth)
	assert.True(t, IsUnauthorized(err))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Not authenticated", apiErr.Detail)
}

func TestClient_TokenSourceFailure(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}, TokenSourceFunc(func(ctx context.Context) (string, error) { return "", errors.New("db down") }))

	_, err := c.Me(context.Background())
	require.Error(t, err)
	assert.False(t, called)
	assert.Equal(t, 0, StatusOf(err))
}

func TestClient_ValidationDetailList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"loc":["body","mood_type"],"msg":"invalid"}]}`))
	}, nil)

	_, err := c.PostMood(context.Background(), &domain.MoodPostRequest{MoodType: "bogus"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, StatusOf(err))
	assert.Contains(t, err.Error(), "mood_type")
}

func TestClient_PostMoodBody(t *testing.T) {
	var body map[string]interface{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/moods", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"id":1,"mood_type":"happy","comment":null,"is_visible":true,"created_at":"2024-05-01T10:00:00Z"}`))
	}, staticToken("t"))

	visible := true
	log, err := c.PostMood(context.Background(), &domain.MoodPostRequest{MoodType: domain.MoodHappy, IsVisible: &visible})
	require.NoError(t, err)
	assert.Equal(t, "happy", log.MoodType)
	assert.Equal(t, "happy", body["mood_type"])
	assert.Nil(t, body["comment"])
	assert.Equal(t, true, body["is_visible"])
}

func TestClient_SearchUsersQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/search", r.URL.Path)
		assert.Equal(t, "山田", r.URL.Query().Get("query"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[{"id":3,"nickname":"やまだ"}]`))
	}, nil)

	users, err := c.SearchUsers(context.Background(), "山田", 20)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(3), users[0].ID)
}

func TestClient_FriendEndpoints(t *testing.T) {
	var calls []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		switch r.URL.Path {
		case "/friends/friend_requests/5/status":
			assert.Equal(t, "accepted", body["status"])
			_, _ = w.Write([]byte(`{"id":5,"status":"accepted"}`))
		case "/friends/friends/9/status":
			assert.Equal(t, "mute", body["action"])
			_, _ = w.Write([]byte(`{"message":"ok"}`))
		case "/friends/friendships/4":
			assert.Equal(t, "同僚", body["friend_note"])
			_, hasMuted := body["is_muted"]
			assert.False(t, hasMuted)
			_, _ = w.Write([]byte(`{"id":4,"friend_note":"同僚"}`))
		}
	}, staticToken("t"))

	ctx := context.Background()
	req, err := c.SetRequestStatus(ctx, 5, domain.FriendRequestAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.FriendRequestAccepted, req.Status)

	require.NoError(t, c.SetFriendStatus(ctx, 9, domain.FriendActionMute))

	note := "同僚"
	fs, err := c.UpdateFriendship(ctx, 4, &domain.FriendshipUpdate{FriendNote: &note})
	require.NoError(t, err)
	assert.Equal(t, "同僚", *fs.FriendNote)

	assert.Equal(t, []string{
		"PUT /friends/friend_requests/5/status",
		"PATCH /friends/friends/9/status",
		"PUT /friends/friendships/4",
	}, calls)
}

func TestClient_JoinFillsCategoryID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hobbies/categories/12/join", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"Already a member of this category"}`))
	}, staticToken("t"))

	res, err := c.JoinCategory(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.CategoryID)
	assert.NotEmpty(t, res.Message)
}

func TestClient_NetworkFailure(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 500*time.Millisecond, nil)
	_, err := c.Categories(context.Background())
	require.Error(t, err)
	assert.False(t, IsUnauthorized(err))
}

func TestSessionContext(t *testing.T) {
	ctx := WithSession(context.Background(), "sid-1")
	assert.Equal(t, "sid-1", SessionID(ctx))
	assert.Equal(t, "", SessionID(context.Background()))
}

func TestClient_FollowToggle(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/5/follow", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"アンフォローしました","status":"unfollowed"}`))
	}, staticToken("t"))

	res, err := c.Follow(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.FollowStatusUnfollowed, res.Status)
	assert.False(t, res.Following())
}

func TestClient_FollowStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/5/follow-status", r.URL.Path)
		_, _ = w.Write([]byte(`{"is_following":true}`))
	}, staticToken("t"))

	following, err := c.FollowStatus(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, following)
}

func TestClient_FollowStatusNotServed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not Found"}`))
	}, staticToken("t"))

	following, err := c.FollowStatus(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthorized(err))
	assert.False(t, following)
}
