package remote

import (
	"context"
	"fmt"
	"net/http"

	"newsroom/internal/domain"
)

// PostsClient talks to the posts service.
type PostsClient struct {
	c *client
}

// NewPostsClient creates a posts service client.
func NewPostsClient(cfg Config) *PostsClient {
	return &PostsClient{c: newClient("posts", cfg)}
}

// List fetches the full article collection.
func (p *PostsClient) List(ctx context.Context) ([]domain.Article, error) {
	var articles []domain.Article
	if err := p.c.do(ctx, http.MethodGet, "/posts", nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// Get fetches a single article by id.
func (p *PostsClient) Get(ctx context.Context, id int64) (*domain.Article, error) {
	var article domain.Article
	if err := p.c.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d", id), nil, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// Create stores a new article; id and timestamps are server-assigned.
func (p *PostsClient) Create(ctx context.Context, article domain.Article) (*domain.Article, error) {
	var created domain.Article
	if err := p.c.do(ctx, http.MethodPost, "/posts", article, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces an article's mutable fields.
func (p *PostsClient) Update(ctx context.Context, id int64, article domain.Article) (*domain.Article, error) {
	var updated domain.Article
	if err := p.c.do(ctx, http.MethodPut, fmt.Sprintf("/posts/%d", id), article, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateStatus sets the denormalized status field on an article record.
func (p *PostsClient) UpdateStatus(ctx context.Context, id int64, status domain.ArticleStatus) error {
	return p.c.do(ctx, http.MethodPut, fmt.Sprintf("/posts/%d/updateStatus", id), string(status), nil)
}

// Delete removes an article.
func (p *PostsClient) Delete(ctx context.Context, id int64) error {
	return p.c.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d", id), nil, nil)
}
