package domain

import "time"

// HobbyCategory a node of the community tree. Leaf nodes host a chat board.
type HobbyCategory struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	ParentID    *int64          `json:"parent_id"`
	MasterID    *int64          `json:"master_id"`
	Depth       int             `json:"depth"`
	RoleType    *string         `json:"role_type"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	MemberCount int             `json:"member_count"`
	UniqueCode  *string         `json:"unique_code"`
	Children    []HobbyCategory `json:"children"`
}

// IsLeaf reports whether the category has no children
func (c *HobbyCategory) IsLeaf() bool {
	return len(c.Children) == 0
}

// MasterKey identifies duplicate records: master_id when set, else id
func (c *HobbyCategory) MasterKey() int64 {
	if c.MasterID != nil && *c.MasterID != 0 {
		return *c.MasterID
	}
	return c.ID
}

// Code returns unique_code or ""
func (c *HobbyCategory) Code() string {
	if c.UniqueCode == nil {
		return ""
	}
	return *c.UniqueCode
}

// MemberTier member-count rank of a community
type MemberTier string

// Tiers
const (
	TierGold   MemberTier = "gold"
	TierSilver MemberTier = "silver"
	TierBronze MemberTier = "bronze"
	TierNormal MemberTier = "normal"
)

// TierFor ranks a member count: >=100 gold, >=50 silver, >=10 bronze
func TierFor(memberCount int) MemberTier {
	switch {
	case memberCount >= 100:
		return TierGold
	case memberCount >= 50:
		return TierSilver
	case memberCount >= 10:
		return TierBronze
	default:
		return TierNormal
	}
}

// CategoryCard list/detail entry
type CategoryCard struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	UniqueCode  string     `json:"unique_code,omitempty"`
	Icon        string     `json:"icon"`
	MemberCount int        `json:"member_count"`
	Tier        MemberTier `json:"tier"`
}

// CommunityListView the community exploration page
type CommunityListView struct {
	Query      string         `json:"query"`
	Categories []CategoryCard `json:"categories"`
}

// CommunityDetailView a category page. Leaf categories expose a board behind join.
type CommunityDetailView struct {
	Category CategoryCard   `json:"category"`
	Children []CategoryCard `json:"children"`
	IsLeaf   bool           `json:"is_leaf"`
	// BoardURL is set for leaves; opening it requires the join action first
	BoardURL string `json:"board_url,omitempty"`
}

// JoinResult body returned by join/leave
type JoinResult struct {
	Message    string `json:"message"`
	CategoryID int64  `json:"category_id"`
}
