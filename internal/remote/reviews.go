package remote

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"newsroom/internal/domain"
)

// ReviewsClient talks to the reviews service.
type ReviewsClient struct {
	c *client
}

// NewReviewsClient creates a reviews service client.
func NewReviewsClient(cfg Config) *ReviewsClient {
	return &ReviewsClient{c: newClient("reviews", cfg)}
}

// reviewDTO carries the raw status string so legacy "APPROVED" values
// can be normalized on decode.
type reviewDTO struct {
	ID         int64  `json:"id"`
	PostID     int64  `json:"postId"`
	ReviewerID string `json:"reviewerId"`
	Status     string `json:"status"`
	Comment    string `json:"comment"`
	ReviewedAt string `json:"reviewedAt"`
}

func (d reviewDTO) toDomain() domain.Review {
	r := domain.Review{
		ID:         d.ID,
		PostID:     d.PostID,
		ReviewerID: d.ReviewerID,
		Status:     domain.NormalizeReviewStatus(d.Status),
		Comment:    d.Comment,
	}
	if t, err := parseTime(d.ReviewedAt); err == nil {
		r.ReviewedAt = t
	}
	return r
}

// List fetches the full review log.
func (r *ReviewsClient) List(ctx context.Context) ([]domain.Review, error) {
	var dtos []reviewDTO
	if err := r.c.do(ctx, http.MethodGet, "/reviews", nil, &dtos); err != nil {
		return nil, err
	}
	reviews := make([]domain.Review, 0, len(dtos))
	for _, d := range dtos {
		reviews = append(reviews, d.toDomain())
	}
	return reviews, nil
}

// Get fetches a single review by id.
func (r *ReviewsClient) Get(ctx context.Context, id int64) (*domain.Review, error) {
	var dto reviewDTO
	if err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("/reviews/%d", id), nil, &dto); err != nil {
		return nil, err
	}
	review := dto.toDomain()
	return &review, nil
}

// Create appends a review record to the decision log.
func (r *ReviewsClient) Create(ctx context.Context, review domain.Review) (*domain.Review, error) {
	var dto reviewDTO
	if err := r.c.do(ctx, http.MethodPost, "/reviews", review, &dto); err != nil {
		return nil, err
	}
	created := dto.toDomain()
	return &created, nil
}

// Delete removes a review record. Used only to compensate a failed
// status propagation; the log is otherwise append-only.
func (r *ReviewsClient) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/reviews/%d", id), nil, nil)
}

// DeleteByPost removes all reviews for an article, as part of deleting
// the article itself.
func (r *ReviewsClient) DeleteByPost(ctx context.Context, postID int64) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/reviews/post/%d", postID), nil, nil)
}

// parseTime accepts RFC3339 as well as the zone-less timestamps the
// review service historically emitted.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}
