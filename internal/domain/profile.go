package domain

import "time"

// UserProfile is the profile shape served by GET /users/me and GET /users/{id}.
// Other users' profiles omit email, username and address fields.
type UserProfile struct {
	ID       int64   `json:"id"`
	Username string  `json:"username,omitempty"`
	Email    string  `json:"email,omitempty"`
	Nickname *string `json:"nickname"`
	Bio      *string `json:"bio"`
	IsActive bool    `json:"is_active,omitempty"`

	Prefecture     *string `json:"prefecture,omitempty"`
	City           *string `json:"city,omitempty"`
	Town           *string `json:"town,omitempty"`
	BirthYearMonth *string `json:"birth_year_month,omitempty"`
	Gender         *string `json:"gender,omitempty"`

	OshiPageURL  *string `json:"oshi_page_url"`
	FacebookURL  *string `json:"facebook_url"`
	XURL         *string `json:"x_url"`
	InstagramURL *string `json:"instagram_url"`
	NoteURL      *string `json:"note_url"`
	ThreadsURL   *string `json:"threads_url"`

	CurrentMood        *string    `json:"current_mood"`
	CurrentMoodComment *string    `json:"current_mood_comment"`
	MoodUpdatedAt      *time.Time `json:"mood_updated_at"`

	IsMoodVisible        bool `json:"is_mood_visible"`
	IsMemberCountVisible bool `json:"is_member_count_visible"`
	IsPrefVisible        bool `json:"is_pref_visible"`
	IsCityVisible        bool `json:"is_city_visible"`
	IsTownVisible        bool `json:"is_town_visible"`
}

// DisplayName returns nickname, else the email local part, else username
func (p *UserProfile) DisplayName() string {
	if p.Nickname != nil && *p.Nickname != "" {
		return *p.Nickname
	}
	return displayFallback(p.Email, p.Username)
}

// ImmutableProfileFields are never sent back on profile update
var ImmutableProfileFields = []string{"id", "username", "email"}

// SNSLink is one rendered social link on the profile page
type SNSLink struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// SNSLinks returns the non-empty social links in display order
func (p *UserProfile) SNSLinks() []SNSLink {
	fields := []struct {
		key, label string
		val        *string
	}{
		{"x_url", "X (Twitter)", p.XURL},
		{"instagram_url", "Instagram", p.InstagramURL},
		{"facebook_url", "Facebook", p.FacebookURL},
		{"note_url", "note", p.NoteURL},
		{"threads_url", "Threads", p.ThreadsURL},
	}
	links := make([]SNSLink, 0, len(fields))
	for _, f := range fields {
		if f.val != nil && *f.val != "" {
			links = append(links, SNSLink{Key: f.key, Label: f.label, URL: *f.val})
		}
	}
	return links
}

// ProfileView is the profile page: display data plus the edit baseline
type ProfileView struct {
	Profile     *UserProfile    `json:"profile"`
	IsMe        bool            `json:"is_me"`
	IsFollowing bool            `json:"is_following"`
	SNSLinks    []SNSLink       `json:"sns_links"`
	MoodHistory []MoodLog       `json:"mood_history"`
	Categories  []HobbyCategory `json:"categories,omitempty"`
}

// Follow toggle outcomes reported by POST /users/{id}/follow
const (
	FollowStatusFollowed   = "followed"
	FollowStatusUnfollowed = "unfollowed"
)

// FollowResult response of the follow toggle
type FollowResult struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Following reports whether the toggle left the caller following the user
func (r *FollowResult) Following() bool {
	return r != nil && r.Status == FollowStatusFollowed
}

// AppView is the bootstrap payload that gates the rest of the application
type AppView struct {
	Profile     *UserProfile `json:"profile"`
	DisplayName string       `json:"display_name"`
}
