package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/osidou/osidou-web/internal/common"
	"github.com/osidou/osidou-web/internal/domain"
	"github.com/osidou/osidou-web/internal/upstream"
	"github.com/osidou/osidou-web/pkg/logger"
)

// ProfileService profile page and editor
type ProfileService interface {
	Me(ctx context.Context) (*domain.UserProfile, error)
	User(ctx context.Context, id int64) (*domain.UserProfile, error)
	// View builds the profile page; userID 0 means the caller's own page
	View(ctx context.Context, userID int64) (*domain.ProfileView, error)
	Save(ctx context.Context, form map[string]interface{}) (*domain.UserProfile, error)
	SetMoodVisibility(ctx context.Context, visible bool) (*domain.UserProfile, error)
	// Follow toggles following userID and reports the new state
	Follow(ctx context.Context, userID int64) (*domain.FollowResult, error)
}

type profileService struct {
	api ProfileAPI
}

// NewProfileService creates a new ProfileService
func NewProfileService(api ProfileAPI) ProfileService {
	return &profileService{api: api}
}

func (s *profileService) Me(ctx context.Context) (*domain.UserProfile, error) {
	return s.api.Me(ctx)
}

func (s *profileService) User(ctx context.Context, id int64) (*domain.UserProfile, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: user id", common.ErrInvalidInput)
	}
	return s.api.User(ctx, id)
}

// View loads the profile, then history and joined communities.
// History and community failures leave those sections empty; a failed
// follow-status lookup reads as not following.
func (s *profileService) View(ctx context.Context, userID int64) (*domain.ProfileView, error) {
	me, err := s.api.Me(ctx)
	if err != nil {
		return nil, err
	}

	view := &domain.ProfileView{Profile: me, IsMe: userID == 0 || userID == me.ID}
	if !view.IsMe {
		other, err := s.api.User(ctx, userID)
		if err != nil {
			return nil, err
		}
		view.Profile = other
	}
	view.SNSLinks = view.Profile.SNSLinks()

	log := logger.GetLogger()
	if !view.IsMe {
		following, err := s.api.FollowStatus(ctx, view.Profile.ID)
		switch {
		case upstream.IsNotFound(err):
			// backends without the lookup route
			log.Debug().Int64("user_id", view.Profile.ID).Msg("follow status lookup not served")
		case err != nil:
			log.Warn().Err(err).Int64("user_id", view.Profile.ID).Msg("follow status unavailable")
		}
		view.IsFollowing = err == nil && following
	}
	var history []domain.MoodLog
	if view.IsMe {
		history, err = s.api.MyMoodHistory(ctx)
	} else {
		history, err = s.api.MoodHistory(ctx, view.Profile.ID)
	}
	if err != nil {
		log.Warn().Err(err).Int64("user_id", view.Profile.ID).Msg("mood history unavailable")
		history = nil
	}
	view.MoodHistory = SortMoodHistory(history)

	if view.IsMe {
		cats, err := s.api.MyCategories(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("joined categories unavailable")
		}
		view.Categories = cats
	}
	return view, nil
}

// Save strips nulls and immutable fields, sends the update and re-fetches
// the profile. Concurrent edits are last-write-wins.
func (s *profileService) Save(ctx context.Context, form map[string]interface{}) (*domain.UserProfile, error) {
	update := BuildProfileUpdate(form)
	if len(update) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", common.ErrInvalidInput)
	}
	if _, err := s.api.UpdateMe(ctx, update); err != nil {
		return nil, err
	}
	return s.api.Me(ctx)
}

func (s *profileService) SetMoodVisibility(ctx context.Context, visible bool) (*domain.UserProfile, error) {
	return s.api.SetMoodVisibility(ctx, visible)
}

func (s *profileService) Follow(ctx context.Context, userID int64) (*domain.FollowResult, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id", common.ErrInvalidInput)
	}
	me, err := s.api.Me(ctx)
	if err != nil {
		return nil, err
	}
	if me.ID == userID {
		return nil, fmt.Errorf("%w: cannot follow yourself", common.ErrInvalidInput)
	}
	return s.api.Follow(ctx, userID)
}

// BuildProfileUpdate returns the PUT /users/me payload of an edit form
func BuildProfileUpdate(form map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(form))
	for k, v := range form {
		if v == nil || isImmutableField(k) {
			continue
		}
		out[k] = v
	}
	return out
}

func isImmutableField(key string) bool {
	for _, f := range domain.ImmutableProfileFields {
		if f == key {
			return true
		}
	}
	return false
}

// SortMoodHistory orders entries newest first. The input slice is not modified.
func SortMoodHistory(history []domain.MoodLog) []domain.MoodLog {
	out := make([]domain.MoodLog, len(history))
	copy(out, history)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
