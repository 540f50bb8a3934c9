package domain

import (
	"strings"
	"time"
)

// MoodType 気分タイプ
type MoodType string

// Mood types accepted by the backend
const (
	MoodMotivated MoodType = "motivated"
	MoodExcited   MoodType = "excited"
	MoodHappy     MoodType = "happy"
	MoodCalm      MoodType = "calm"
	MoodNeutral   MoodType = "neutral"
	MoodAnxious   MoodType = "anxious"
	MoodTired     MoodType = "tired"
	MoodSad       MoodType = "sad"
	MoodAngry     MoodType = "angry"
	MoodGrateful  MoodType = "grateful"
)

// MoodCommentMaxLen maximum comment length in characters
const MoodCommentMaxLen = 200

// MoodInfo rendering metadata of a mood type
type MoodInfo struct {
	Type  MoodType `json:"type"`
	Label string   `json:"label"`
	Emoji string   `json:"emoji"`
}

// MoodCatalog in picker order
var MoodCatalog = []MoodInfo{
	{MoodMotivated, "やる気", "🔥"},
	{MoodExcited, "ワクワク", "🤩"},
	{MoodHappy, "ハッピー", "😊"},
	{MoodCalm, "落ち着き", "😌"},
	{MoodNeutral, "普通", "😐"},
	{MoodAnxious, "不安", "😟"},
	{MoodTired, "疲労困憊", "😥"},
	{MoodSad, "悲しい", "😭"},
	{MoodAngry, "イライラ", "😠"},
	{MoodGrateful, "感謝", "🙏"},
}

// UnknownMood is rendered for types missing from the catalog
var UnknownMood = MoodInfo{Type: "", Label: "不明", Emoji: "🤔"}

// LookupMood returns the catalog entry of t
func LookupMood(t string) MoodInfo {
	for _, m := range MoodCatalog {
		if string(m.Type) == t {
			return m
		}
	}
	return UnknownMood
}

// MoodLog one mood history entry
type MoodLog struct {
	ID        int64     `json:"id"`
	MoodType  string    `json:"mood_type"`
	Comment   *string   `json:"comment"`
	IsVisible bool      `json:"is_visible"`
	CreatedAt time.Time `json:"created_at"`
}

// MoodPostRequest body of POST /users/moods
type MoodPostRequest struct {
	MoodType  MoodType `json:"mood_type" validate:"required,oneof=motivated excited happy calm neutral anxious tired sad angry grateful"`
	Comment   *string  `json:"comment" validate:"omitempty,max=200"`
	// IsVisible defaults to true when omitted
	IsVisible *bool `json:"is_visible"`
}

// UserMoodResponse a followed user's current mood
type UserMoodResponse struct {
	UserID             int64      `json:"user_id"`
	Nickname           *string    `json:"nickname"`
	Email              *string    `json:"email"`
	CurrentMood        string     `json:"current_mood"`
	CurrentMoodComment *string    `json:"current_mood_comment"`
	MoodUpdatedAt      *time.Time `json:"mood_updated_at"`
	IsMoodVisible      bool       `json:"is_mood_visible"`
	FriendNote         *string    `json:"friend_note"`
}

// MoodFeedItem one rendered row of the friends' mood feed
type MoodFeedItem struct {
	UserID    int64      `json:"user_id"`
	Name      string     `json:"name"`
	Mood      MoodInfo   `json:"mood"`
	Comment   string     `json:"comment,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// MoodFeedView the home feed
type MoodFeedView struct {
	Moods []MoodInfo     `json:"moods"`
	Items []MoodFeedItem `json:"items"`
}

// displayFallback returns the email local part, else fallback
func displayFallback(email, fallback string) string {
	if email != "" {
		if i := strings.Index(email, "@"); i > 0 {
			return email[:i]
		}
		return email
	}
	return fallback
}

// FeedName renders "name（note）"
func (m *UserMoodResponse) FeedName() string {
	name := ""
	if m.Nickname != nil && *m.Nickname != "" {
		name = *m.Nickname
	} else {
		email := ""
		if m.Email != nil {
			email = *m.Email
		}
		name = displayFallback(email, "ユーザー")
	}
	if m.FriendNote != nil && *m.FriendNote != "" {
		name += "（" + *m.FriendNote + "）"
	}
	return name
}

// MoodPostResult the created log and the feed re-fetched after it
type MoodPostResult struct {
	Mood *MoodLog      `json:"mood"`
	Feed *MoodFeedView `json:"feed"`
}
