package upstream

import (
	"context"
	"net/http"

	"github.com/osidou/osidou-web/internal/domain"
)

// Categories GET /hobbies/categories (tree)
func (c *Client) Categories(ctx context.Context) ([]domain.HobbyCategory, error) {
	var out []domain.HobbyCategory
	err := c.do(ctx, call{method: http.MethodGet, endpoint: "hobbies.categories", path: "/hobbies/categories"}, &out)
	return out, err
}

// Category GET /hobbies/categories/{id}
func (c *Client) Category(ctx context.Context, id int64) (*domain.HobbyCategory, error) {
	var out domain.HobbyCategory
	err := c.do(ctx, call{method: http.MethodGet, endpoint: "hobbies.category", path: idPath("/hobbies/categories/%s", id)}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// JoinCategory POST /hobbies/categories/{id}/join. Joining twice is not an error.
func (c *Client) JoinCategory(ctx context.Context, id int64) (*domain.JoinResult, error) {
	var out domain.JoinResult
	err := c.do(ctx, call{method: http.MethodPost, endpoint: "hobbies.join", path: idPath("/hobbies/categories/%s/join", id)}, &out)
	if err != nil {
		return nil, err
	}
	if out.CategoryID == 0 {
		out.CategoryID = id
	}
	return &out, nil
}

// LeaveCategory DELETE /hobbies/categories/{id}/leave
func (c *Client) LeaveCategory(ctx context.Context, id int64) (*domain.JoinResult, error) {
	var out domain.JoinResult
	err := c.do(ctx, call{method: http.MethodDelete, endpoint: "hobbies.leave", path: idPath("/hobbies/categories/%s/leave", id)}, &out)
	if err != nil {
		return nil, err
	}
	if out.CategoryID == 0 {
		out.CategoryID = id
	}
	return &out, nil
}

// MyCategories GET /hobbies/my-categories
func (c *Client) MyCategories(ctx context.Context) ([]domain.HobbyCategory, error) {
	var out []domain.HobbyCategory
	err := c.do(ctx, call{method: http.MethodGet, endpoint: "hobbies.mine", path: "/hobbies/my-categories"}, &out)
	return out, err
}
