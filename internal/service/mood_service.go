package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/osidou/osidou-web/internal/common"
	"github.com/osidou/osidou-web/internal/domain"
	"github.com/osidou/osidou-web/pkg/logger"
)

var moodValidator = validator.New()

// MoodService mood input and the friends' mood feed
type MoodService interface {
	// Post creates a mood log then refreshes the feed. Each call creates a
	// new log; resubmits are not deduplicated.
	Post(ctx context.Context, req *domain.MoodPostRequest) (*domain.MoodPostResult, error)
	Feed(ctx context.Context) (*domain.MoodFeedView, error)
	History(ctx context.Context) ([]domain.MoodLog, error)
}

type moodService struct {
	api MoodAPI
}

// NewMoodService creates a new MoodService
func NewMoodService(api MoodAPI) MoodService {
	return &moodService{api: api}
}

func (s *moodService) Post(ctx context.Context, req *domain.MoodPostRequest) (*domain.MoodPostResult, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", common.ErrInvalidInput)
	}
	if req.Comment != nil && *req.Comment == "" {
		req.Comment = nil
	}
	if req.IsVisible == nil {
		visible := true
		req.IsVisible = &visible
	}
	if err := moodValidator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}

	created, err := s.api.PostMood(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &domain.MoodPostResult{Mood: created}
	feed, err := s.Feed(ctx)
	if err != nil {
		logger.GetLogger().Warn().Err(err).Msg("feed refresh after mood post failed")
		feed = &domain.MoodFeedView{Moods: domain.MoodCatalog, Items: []domain.MoodFeedItem{}}
	}
	result.Feed = feed
	return result, nil
}

func (s *moodService) Feed(ctx context.Context) (*domain.MoodFeedView, error) {
	moods, err := s.api.FollowingMoods(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]domain.MoodFeedItem, 0, len(moods))
	for i := range moods {
		m := &moods[i]
		item := domain.MoodFeedItem{
			UserID:    m.UserID,
			Name:      m.FeedName(),
			Mood:      domain.LookupMood(m.CurrentMood),
			UpdatedAt: m.MoodUpdatedAt,
		}
		if m.CurrentMoodComment != nil {
			item.Comment = *m.CurrentMoodComment
		}
		items = append(items, item)
	}
	return &domain.MoodFeedView{Moods: domain.MoodCatalog, Items: items}, nil
}

func (s *moodService) History(ctx context.Context) ([]domain.MoodLog, error) {
	history, err := s.api.MyMoodHistory(ctx)
	if err != nil {
		return nil, err
	}
	return SortMoodHistory(history), nil
}

// CommentCounter renders the "n/200" counter shown under the comment box
func CommentCounter(comment string) string {
	return fmt.Sprintf("%d/%d", utf8.RuneCountInString(comment), domain.MoodCommentMaxLen)
}
