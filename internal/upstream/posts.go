package upstream

import (
	"context"
	"net/http"

	"github.com/osidou/osidou-web/internal/domain"
)

// CreatePost POST /posts
func (c *Client) CreatePost(ctx context.Context, req *domain.PostCreate) (*domain.Post, error) {
	var out domain.Post
	if err := c.do(ctx, call{method: http.MethodPost, endpoint: "posts.create", path: "/posts", body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CategoryPosts GET /posts/category/{id}
func (c *Client) CategoryPosts(ctx context.Context, categoryID int64) ([]domain.Post, error) {
	var out []domain.Post
	err := c.do(ctx, call{method: http.MethodGet, endpoint: "posts.by_category", path: idPath("/posts/category/%s", categoryID)}, &out)
	return out, err
}

// CreateResponse POST /posts/{id}/responses
func (c *Client) CreateResponse(ctx context.Context, postID int64, req *domain.PostResponseCreate) (*domain.PostResponse, error) {
	var out domain.PostResponse
	err := c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "posts.respond",
		path:     idPath("/posts/%s/responses", postID),
		body:     req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
