package remote

import (
	"context"
	"fmt"
	"net/http"

	"newsroom/internal/domain"
)

// CommentsClient talks to the comments service.
type CommentsClient struct {
	c *client
}

// NewCommentsClient creates a comments service client.
func NewCommentsClient(cfg Config) *CommentsClient {
	return &CommentsClient{c: newClient("comments", cfg)}
}

// ListByPost fetches all comments attached to one article.
func (cc *CommentsClient) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	var comments []domain.Comment
	if err := cc.c.do(ctx, http.MethodGet, fmt.Sprintf("/comments/post/%d", postID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Create stores a new comment.
func (cc *CommentsClient) Create(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	var created domain.Comment
	if err := cc.c.do(ctx, http.MethodPost, "/comments", comment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a comment's content. The service responds with the
// updated comment list for the article; callers re-read through the
// cache instead, so the body is discarded.
func (cc *CommentsClient) Update(ctx context.Context, id int64, content string) error {
	return cc.c.do(ctx, http.MethodPut, fmt.Sprintf("/comments/%d", id), content, nil)
}

// Delete removes a comment. Deleting a comment never affects the
// article it is attached to.
func (cc *CommentsClient) Delete(ctx context.Context, id int64) error {
	return cc.c.do(ctx, http.MethodDelete, fmt.Sprintf("/comments/%d", id), nil, nil)
}
