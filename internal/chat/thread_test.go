package chat

import (
	"testing"

	"github.com/osidou/osidou-web/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestBuildThreads_NestsReplies(t *testing.T) {
	posts := []domain.Post{
		{ID: 1, UserID: 10, Content: "こんにちは"},
		{ID: 2, UserID: 11, Content: "返信", ParentID: ptr(int64(1))},
		{ID: 3, UserID: 12, Content: "別の話題"},
		{ID: 4, UserID: 13, Content: "返信2", ParentID: ptr(int64(1))},
	}

	threads := BuildThreads(posts)

	require.Len(t, threads, 2)
	assert.Equal(t, int64(1), threads[0].ID)
	require.Len(t, threads[0].Replies, 2)
	assert.Equal(t, int64(2), threads[0].Replies[0].ID)
	assert.Equal(t, int64(4), threads[0].Replies[1].ID)
	assert.Equal(t, int64(3), threads[1].ID)
	assert.Empty(t, threads[1].Replies)

	for _, th := range threads {
		assert.Nil(t, th.ParentID, "reply rendered at top level")
	}
}

func TestBuildThreads_OrphanReplyDropped(t *testing.T) {
	threads := BuildThreads([]domain.Post{
		{ID: 5, Content: "親なし", ParentID: ptr(int64(99))},
		{ID: 6, Content: "トップ"},
	})
	require.Len(t, threads, 1)
	assert.Equal(t, int64(6), threads[0].ID)
}

func TestRender_KindsAndAuthor(t *testing.T) {
	meetup := Render(domain.Post{ID: 1, UserID: 7, IsMeetup: true, MeetupLocation: ptr("渋谷駅 ハチ公口")})
	assert.Equal(t, domain.PostKindMeetup, meetup.Kind)
	assert.Equal(t, "ユーザー7", meetup.AuthorName)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=%E6%B8%8B%E8%B0%B7%E9%A7%85%20%E3%83%8F%E3%83%81%E5%85%AC%E5%8F%A3", meetup.MapURL)

	ad := Render(domain.Post{ID: 2, IsAd: true, IsMeetup: true, AuthorNickname: ptr("店長")})
	assert.Equal(t, domain.PostKindAd, ad.Kind)
	assert.Equal(t, "店長", ad.AuthorName)

	sys := Render(domain.Post{ID: 3, IsSystem: true, IsAd: true})
	assert.Equal(t, domain.PostKindSystem, sys.Kind)

	msg := Render(domain.Post{ID: 4})
	assert.Equal(t, domain.PostKindMessage, msg.Kind)
	assert.Empty(t, msg.MapURL)
}

func TestMapURL(t *testing.T) {
	assert.Equal(t, "", MapURL("  "))
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=A%26B%20Cafe", MapURL("A&B Cafe"))
}
