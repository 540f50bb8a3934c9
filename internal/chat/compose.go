package chat

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/osidou/osidou-web/internal/common"
	"github.com/osidou/osidou-web/internal/domain"
)

var composeValidator = validator.New()

// FormLocation is the zone of date inputs that carry no offset
var FormLocation = time.FixedZone("JST", 9*60*60)

// formTimeLayouts accepted for meetup and ad dates: RFC3339 plus the
// browser's datetime-local values, with and without seconds.
var formTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

// ParseFormTime parses a compose form date. Values without an offset are
// read in FormLocation.
func ParseFormTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	for _, layout := range formTimeLayouts {
		if t, err := time.ParseInLocation(layout, v, FormLocation); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %q must be RFC3339 or YYYY-MM-DDTHH:MM", common.ErrInvalidInput, v)
}

// Form is any compose form; every form becomes a POST /posts body
type Form interface {
	PostCreate(categoryID int64) *domain.PostCreate
}

// MessageForm plain chat message, optionally a reply
type MessageForm struct {
	Content  string `json:"content" validate:"required"`
	ParentID *int64 `json:"parent_id" validate:"omitempty,gt=0"`
}

// PostCreate implements Form
func (f *MessageForm) PostCreate(categoryID int64) *domain.PostCreate {
	return &domain.PostCreate{
		Content:         f.Content,
		HobbyCategoryID: categoryID,
		ParentID:        f.ParentID,
	}
}

// MeetupForm meetup announcement
type MeetupForm struct {
	Content  string    `json:"content" validate:"required"`
	Date     time.Time `json:"meetup_date" validate:"required"`
	Location string    `json:"meetup_location" validate:"required,max=255"`
	Capacity *int      `json:"meetup_capacity" validate:"omitempty,gte=1"`
	FeeInfo  string    `json:"meetup_fee_info" validate:"max=255"`
}

// UnmarshalJSON accepts any layout ParseFormTime does for meetup_date
func (f *MeetupForm) UnmarshalJSON(data []byte) error {
	type plain MeetupForm
	aux := struct {
		*plain
		Date string `json:"meetup_date"`
	}{plain: (*plain)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	date, err := ParseFormTime(aux.Date)
	if err != nil {
		return err
	}
	f.Date = date
	return nil
}

// PostCreate implements Form
func (f *MeetupForm) PostCreate(categoryID int64) *domain.PostCreate {
	date := f.Date
	location := f.Location
	status := "open"
	pc := &domain.PostCreate{
		Content:         f.Content,
		HobbyCategoryID: categoryID,
		IsMeetup:        true,
		MeetupDate:      &date,
		MeetupLocation:  &location,
		MeetupCapacity:  f.Capacity,
		MeetupStatus:    &status,
	}
	if f.FeeInfo != "" {
		fee := f.FeeInfo
		pc.MeetupFeeInfo = &fee
	}
	return pc
}

// AdForm promotional post shown until EndDate
type AdForm struct {
	Content string    `json:"content" validate:"required"`
	EndDate time.Time `json:"ad_end_date" validate:"required"`
}

// UnmarshalJSON accepts any layout ParseFormTime does for ad_end_date
func (f *AdForm) UnmarshalJSON(data []byte) error {
	type plain AdForm
	aux := struct {
		*plain
		EndDate string `json:"ad_end_date"`
	}{plain: (*plain)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	end, err := ParseFormTime(aux.EndDate)
	if err != nil {
		return err
	}
	f.EndDate = end
	return nil
}

// PostCreate implements Form
func (f *AdForm) PostCreate(categoryID int64) *domain.PostCreate {
	end := f.EndDate
	return &domain.PostCreate{
		Content:         f.Content,
		HobbyCategoryID: categoryID,
		IsAd:            true,
		AdEndDate:       &end,
	}
}

// Validate trims the content and checks the form's tags.
// Whitespace-only content is rejected.
func Validate(form Form) error {
	switch f := form.(type) {
	case *MessageForm:
		f.Content = strings.TrimSpace(f.Content)
	case *MeetupForm:
		f.Content = strings.TrimSpace(f.Content)
		f.Location = strings.TrimSpace(f.Location)
	case *AdForm:
		f.Content = strings.TrimSpace(f.Content)
	case nil:
		return fmt.Errorf("%w: empty form", common.ErrInvalidInput)
	}
	if err := composeValidator.Struct(form); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}
	return nil
}
