package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/osidou/osidou-web/internal/common"
	"github.com/osidou/osidou-web/internal/domain"
)

// UserSearchLimit page size of the user search tab
const UserSearchLimit = 20

// FriendService friend manager. Each tab owns its data; a mutation re-fetches
// only the tab it came from. Request and relation states are decided upstream.
type FriendService interface {
	Search(ctx context.Context, query string) ([]domain.UserSearchResult, error)
	SendRequest(ctx context.Context, userID int64) (*domain.FriendRequest, error)

	Incoming(ctx context.Context) ([]domain.IncomingRequestRow, error)
	Sent(ctx context.Context) ([]domain.FriendRequest, error)
	Accept(ctx context.Context, requestID int64) ([]domain.IncomingRequestRow, error)
	Reject(ctx context.Context, requestID int64) ([]domain.IncomingRequestRow, error)

	Friends(ctx context.Context) ([]domain.FriendRow, error)
	ToggleMute(ctx context.Context, friendshipID int64, currentlyMuted bool) ([]domain.FriendRow, error)
	SaveNote(ctx context.Context, friendshipID int64, note string) ([]domain.FriendRow, error)
	SetStatus(ctx context.Context, userID int64, action domain.FriendAction) error
}

type friendService struct {
	api FriendAPI
}

// NewFriendService creates a new FriendService
func NewFriendService(api FriendAPI) FriendService {
	return &friendService{api: api}
}

// Search returns nothing without calling the backend for a blank query
func (s *friendService) Search(ctx context.Context, query string) ([]domain.UserSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.UserSearchResult{}, nil
	}
	users, err := s.api.SearchUsers(ctx, query, UserSearchLimit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.UserSearchResult, 0, len(users))
	for _, u := range users {
		name := u.Username
		if u.Nickname != nil && *u.Nickname != "" {
			name = *u.Nickname
		}
		out = append(out, domain.UserSearchResult{ID: u.ID, DisplayName: name, Nickname: u.Nickname, Bio: u.Bio})
	}
	return out, nil
}

func (s *friendService) SendRequest(ctx context.Context, userID int64) (*domain.FriendRequest, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id", common.ErrInvalidInput)
	}
	return s.api.SendFriendRequest(ctx, userID)
}

func (s *friendService) Incoming(ctx context.Context) ([]domain.IncomingRequestRow, error) {
	reqs, err := s.api.IncomingRequests(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.IncomingRequestRow, 0, len(reqs))
	for _, r := range reqs {
		row := domain.IncomingRequestRow{ID: r.ID, RequesterID: r.RequesterID}
		if r.Requester != nil {
			row.RequesterID = r.Requester.ID
			row.RequesterName = r.Requester.Username
			if r.Requester.Nickname != nil && *r.Requester.Nickname != "" {
				row.RequesterName = *r.Requester.Nickname
			}
		}
		row.ProfileURL = fmt.Sprintf("/profile/%d", row.RequesterID)
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *friendService) Sent(ctx context.Context) ([]domain.FriendRequest, error) {
	return s.api.SentRequests(ctx)
}

func (s *friendService) Accept(ctx context.Context, requestID int64) ([]domain.IncomingRequestRow, error) {
	return s.answer(ctx, requestID, domain.FriendRequestAccepted)
}

func (s *friendService) Reject(ctx context.Context, requestID int64) ([]domain.IncomingRequestRow, error) {
	return s.answer(ctx, requestID, domain.FriendRequestRejected)
}

func (s *friendService) answer(ctx context.Context, requestID int64, status domain.FriendRequestStatus) ([]domain.IncomingRequestRow, error) {
	if requestID <= 0 {
		return nil, fmt.Errorf("%w: request id", common.ErrInvalidInput)
	}
	if _, err := s.api.SetRequestStatus(ctx, requestID, status); err != nil {
		return nil, err
	}
	return s.Incoming(ctx)
}

func (s *friendService) Friends(ctx context.Context) ([]domain.FriendRow, error) {
	friends, err := s.api.Friends(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.FriendRow, 0, len(friends))
	for i := range friends {
		f := &friends[i]
		row := domain.FriendRow{
			FriendshipID: f.ID,
			FriendID:     f.FriendID,
			Name:         f.Friend.DisplayName(),
			IsMuted:      f.IsMuted,
			IsHidden:     f.IsHidden,
		}
		if f.FriendNote != nil {
			row.Note = *f.FriendNote
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *friendService) ToggleMute(ctx context.Context, friendshipID int64, currentlyMuted bool) ([]domain.FriendRow, error) {
	muted := !currentlyMuted
	return s.updateFriendship(ctx, friendshipID, &domain.FriendshipUpdate{IsMuted: &muted})
}

func (s *friendService) SaveNote(ctx context.Context, friendshipID int64, note string) ([]domain.FriendRow, error) {
	return s.updateFriendship(ctx, friendshipID, &domain.FriendshipUpdate{FriendNote: &note})
}

func (s *friendService) updateFriendship(ctx context.Context, friendshipID int64, upd *domain.FriendshipUpdate) ([]domain.FriendRow, error) {
	if friendshipID <= 0 {
		return nil, fmt.Errorf("%w: friendship id", common.ErrInvalidInput)
	}
	if _, err := s.api.UpdateFriendship(ctx, friendshipID, upd); err != nil {
		return nil, err
	}
	return s.Friends(ctx)
}

func (s *friendService) SetStatus(ctx context.Context, userID int64, action domain.FriendAction) error {
	if userID <= 0 {
		return fmt.Errorf("%w: user id", common.ErrInvalidInput)
	}
	if !action.Valid() {
		return fmt.Errorf("%w: unknown action %q", common.ErrInvalidInput, action)
	}
	return s.api.SetFriendStatus(ctx, userID, action)
}
