package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/osidou/osidou-web/internal/common"
	"github.com/osidou/osidou-web/internal/domain"
)

// CategorySearchLimit caps the number of search hits shown
const CategorySearchLimit = 20

// CommunityService community list, detail and membership
type CommunityService interface {
	List(ctx context.Context, query string) (*domain.CommunityListView, error)
	Detail(ctx context.Context, id int64) (*domain.CommunityDetailView, error)
	// Join is the explicit gate in front of a leaf category's board
	Join(ctx context.Context, id int64) (*domain.JoinResult, error)
	Leave(ctx context.Context, id int64) (*domain.JoinResult, error)
	Mine(ctx context.Context) ([]domain.CategoryCard, error)
}

type communityService struct {
	api CommunityAPI
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(api CommunityAPI) CommunityService {
	return &communityService{api: api}
}

func (s *communityService) List(ctx context.Context, query string) (*domain.CommunityListView, error) {
	tree, err := s.api.Categories(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	cats := FilterCategories(DedupeByMaster(FlattenCategories(tree)), query)

	cards := make([]domain.CategoryCard, 0, len(cats))
	for i := range cats {
		cards = append(cards, ToCard(&cats[i]))
	}
	return &domain.CommunityListView{Query: query, Categories: cards}, nil
}

func (s *communityService) Detail(ctx context.Context, id int64) (*domain.CommunityDetailView, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: category id", common.ErrInvalidInput)
	}
	cat, err := s.api.Category(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &domain.CommunityDetailView{
		Category: ToCard(cat),
		Children: make([]domain.CategoryCard, 0, len(cat.Children)),
		IsLeaf:   cat.IsLeaf(),
	}
	for i := range cat.Children {
		view.Children = append(view.Children, ToCard(&cat.Children[i]))
	}
	if view.IsLeaf {
		view.BoardURL = fmt.Sprintf("/api/community/%d/board", cat.ID)
	}
	return view, nil
}

func (s *communityService) Join(ctx context.Context, id int64) (*domain.JoinResult, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: category id", common.ErrInvalidInput)
	}
	return s.api.JoinCategory(ctx, id)
}

func (s *communityService) Leave(ctx context.Context, id int64) (*domain.JoinResult, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: category id", common.ErrInvalidInput)
	}
	return s.api.LeaveCategory(ctx, id)
}

func (s *communityService) Mine(ctx context.Context) ([]domain.CategoryCard, error) {
	cats, err := s.api.MyCategories(ctx)
	if err != nil {
		return nil, err
	}
	cards := make([]domain.CategoryCard, 0, len(cats))
	for i := range cats {
		cards = append(cards, ToCard(&cats[i]))
	}
	return cards, nil
}

// FlattenCategories walks the tree depth-first, parents before children
func FlattenCategories(tree []domain.HobbyCategory) []domain.HobbyCategory {
	var out []domain.HobbyCategory
	var walk func([]domain.HobbyCategory)
	walk = func(nodes []domain.HobbyCategory) {
		for _, n := range nodes {
			out = append(out, n)
			walk(n.Children)
		}
	}
	walk(tree)
	return out
}

// DedupeByMaster keeps the first category seen per master key
func DedupeByMaster(cats []domain.HobbyCategory) []domain.HobbyCategory {
	seen := make(map[int64]struct{}, len(cats))
	out := make([]domain.HobbyCategory, 0, len(cats))
	for _, c := range cats {
		key := c.MasterKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

// FilterCategories returns the depth-0 categories for an empty query, else
// case-insensitive substring matches on name or unique code, capped.
func FilterCategories(cats []domain.HobbyCategory, query string) []domain.HobbyCategory {
	out := make([]domain.HobbyCategory, 0)
	if query == "" {
		for _, c := range cats {
			if c.Depth == 0 {
				out = append(out, c)
			}
		}
		return out
	}

	q := strings.ToLower(query)
	for _, c := range cats {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Code()), q) {
			out = append(out, c)
			if len(out) == CategorySearchLimit {
				break
			}
		}
	}
	return out
}

// CategoryIcon picks the list icon from the category name
func CategoryIcon(name string) string {
	switch {
	case strings.Contains(name, "MUSIC"):
		return "music"
	case strings.Contains(name, "REGIONS"):
		return "region"
	case strings.Contains(name, "SPORT"):
		return "sport"
	default:
		return "users"
	}
}

// ToCard renders a category for list and detail pages
func ToCard(c *domain.HobbyCategory) domain.CategoryCard {
	return domain.CategoryCard{
		ID:          c.ID,
		Name:        c.Name,
		UniqueCode:  c.Code(),
		Icon:        CategoryIcon(c.Name),
		MemberCount: c.MemberCount,
		Tier:        domain.TierFor(c.MemberCount),
	}
}
