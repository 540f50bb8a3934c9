package domain

import "time"

// Post a community chat post as served by GET /posts/category/{id}
type Post struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Content         string    `json:"content"`
	HobbyCategoryID int64     `json:"hobby_category_id"`
	ParentID        *int64    `json:"parent_id"`
	CreatedAt       time.Time `json:"created_at"`

	IsMeetup       bool       `json:"is_meetup"`
	MeetupDate     *time.Time `json:"meetup_date"`
	MeetupLocation *string    `json:"meetup_location"`
	MeetupCapacity *int       `json:"meetup_capacity"`
	MeetupFeeInfo  *string    `json:"meetup_fee_info"`
	MeetupStatus   *string    `json:"meetup_status"`
	RegionTagCity  *string    `json:"region_tag_city"`

	IsAd           bool       `json:"is_ad"`
	AdEndDate      *time.Time `json:"ad_end_date"`
	OriginalPostID *int64     `json:"original_post_id"`
	IsSystem       bool       `json:"is_system"`

	AuthorNickname     *string `json:"author_nickname"`
	PublicCode         *string `json:"public_code"`
	ResponseCount      int     `json:"response_count"`
	ParticipationCount int     `json:"participation_count"`
}

// PostKind rendering variant of a post
type PostKind string

// Post kinds
const (
	PostKindMessage PostKind = "message"
	PostKindMeetup  PostKind = "meetup"
	PostKindAd      PostKind = "ad"
	PostKindSystem  PostKind = "system"
)

// Kind classifies the post; system wins over ad, ad over meetup
func (p *Post) Kind() PostKind {
	switch {
	case p.IsSystem:
		return PostKindSystem
	case p.IsAd:
		return PostKindAd
	case p.IsMeetup:
		return PostKindMeetup
	default:
		return PostKindMessage
	}
}

// PostCreate body of POST /posts. Every compose form funnels into it.
type PostCreate struct {
	Content         string     `json:"content"`
	HobbyCategoryID int64      `json:"hobby_category_id"`
	ParentID        *int64     `json:"parent_id,omitempty"`
	IsMeetup        bool       `json:"is_meetup"`
	MeetupDate      *time.Time `json:"meetup_date,omitempty"`
	MeetupLocation  *string    `json:"meetup_location,omitempty"`
	MeetupCapacity  *int       `json:"meetup_capacity,omitempty"`
	MeetupFeeInfo   *string    `json:"meetup_fee_info,omitempty"`
	MeetupStatus    *string    `json:"meetup_status,omitempty"`
	IsAd            bool       `json:"is_ad"`
	AdEndDate       *time.Time `json:"ad_end_date,omitempty"`
}

// PostResponseCreate body of POST /posts/{id}/responses
type PostResponseCreate struct {
	Content         *string `json:"content"`
	IsParticipation bool    `json:"is_participation"`
}

// PostResponse a reply / participation record
type PostResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	PostID          int64     `json:"post_id"`
	Content         *string   `json:"content"`
	IsParticipation bool      `json:"is_participation"`
	CreatedAt       time.Time `json:"created_at"`
	AuthorNickname  *string   `json:"author_nickname"`
}

// ChatPost a rendered post
type ChatPost struct {
	Post
	Kind       PostKind `json:"kind"`
	AuthorName string   `json:"author_name"`
	MapURL     string   `json:"map_url,omitempty"`
}

// ChatThread a top-level post with its one level of replies
type ChatThread struct {
	ChatPost
	Replies []ChatPost `json:"replies"`
}

// ChatBoard one wholesale snapshot of a category's board
type ChatBoard struct {
	CategoryID int64        `json:"category_id"`
	Threads    []ChatThread `json:"threads"`
	FetchedAt  time.Time    `json:"fetched_at"`
}
