package chat

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/osidou/osidou-web/internal/domain"
)

const mapSearchURL = "https://www.google.com/maps/search/?api=1&query="

// MapURL returns the Google Maps search link of a meetup location
func MapURL(location string) string {
	location = strings.TrimSpace(location)
	if location == "" {
		return ""
	}
	// encodeURIComponent style: spaces as %20
	return mapSearchURL + strings.ReplaceAll(url.QueryEscape(location), "+", "%20")
}

// AuthorName is the nickname, else "ユーザー<id>"
func AuthorName(p *domain.Post) string {
	if p.AuthorNickname != nil && *p.AuthorNickname != "" {
		return *p.AuthorNickname
	}
	return fmt.Sprintf("ユーザー%d", p.UserID)
}

// Render decorates a post for display
func Render(p domain.Post) domain.ChatPost {
	cp := domain.ChatPost{Post: p, Kind: p.Kind(), AuthorName: AuthorName(&p)}
	if p.IsMeetup && p.MeetupLocation != nil {
		cp.MapURL = MapURL(*p.MeetupLocation)
	}
	return cp
}

// BuildThreads nests replies one level under their parent, keeping the
// backend order. A post with parent_id never appears at the top level;
// replies whose parent is not in posts are dropped.
func BuildThreads(posts []domain.Post) []domain.ChatThread {
	replies := make(map[int64][]domain.ChatPost)
	for _, p := range posts {
		if p.ParentID != nil {
			replies[*p.ParentID] = append(replies[*p.ParentID], Render(p))
		}
	}

	threads := make([]domain.ChatThread, 0, len(posts))
	for _, p := range posts {
		if p.ParentID != nil {
			continue
		}
		t := domain.ChatThread{ChatPost: Render(p), Replies: replies[p.ID]}
		if t.Replies == nil {
			t.Replies = []domain.ChatPost{}
		}
		threads = append(threads, t)
	}
	return threads
}
