package service

import (
	"context"

	"newsroom/internal/domain"
	"newsroom/internal/filter"
)

// PostStore is the slice of the posts service the workflow consumes.
type PostStore interface {
	List(ctx context.Context) ([]domain.Article, error)
	Get(ctx context.Context, id int64) (*domain.Article, error)
	Create(ctx context.Context, article domain.Article) (*domain.Article, error)
	Update(ctx context.Context, id int64, article domain.Article) (*domain.Article, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ArticleStatus) error
	Delete(ctx context.Context, id int64) error
}

// ReviewStore is the slice of the reviews service the protocol consumes.
type ReviewStore interface {
	List(ctx context.Context) ([]domain.Review, error)
	Create(ctx context.Context, review domain.Review) (*domain.Review, error)
	Delete(ctx context.Context, id int64) error
	DeleteByPost(ctx context.Context, postID int64) error
}

// CommentStore is the slice of the comments service the comment service consumes.
type CommentStore interface {
	ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error)
	Create(ctx context.Context, comment domain.Comment) (*domain.Comment, error)
	Update(ctx context.Context, id int64, content string) error
	Delete(ctx context.Context, id int64) error
}

// ArticleWorkflowInterface defines the workflow operations exposed to
// handlers. Used for dependency injection and mocking in tests.
type ArticleWorkflowInterface interface {
	// Articles returns the cached article collection without I/O.
	Articles() []domain.Article
	// Filtered applies a filter spec to the cached collection.
	Filtered(spec filter.Spec) []domain.Article
	// ArticleByID returns one article, falling back to the remote
	// store when the cache does not hold it.
	ArticleByID(ctx context.Context, id int64) (*domain.Article, error)
	// Create stores a new draft owned by the acting identity.
	Create(ctx context.Context, who domain.Identity, article domain.Article) (*domain.Article, error)
	// Update edits a draft or rejected article owned by the actor.
	Update(ctx context.Context, who domain.Identity, id int64, article domain.Article) (*domain.Article, error)
	// Submit moves a draft or rejected article into review.
	Submit(ctx context.Context, who domain.Identity, id int64) error
	// Delete removes an article and its review log.
	Delete(ctx context.Context, who domain.Identity, id int64, confirmPublished bool) error
	// Drafts returns the actor's draft and rejected articles.
	Drafts(who domain.Identity) []domain.Article
	// Pending returns the review queue; reviewer-only.
	Pending(who domain.Identity) ([]domain.Article, error)
	// Rejected returns the actor's rejected articles with reasons.
	Rejected(who domain.Identity) []domain.RejectedArticle
	// Authors returns the distinct authors in the cached collection.
	Authors() []string
}

// ReviewProtocolInterface defines the decision operations exposed to
// handlers. Used for dependency injection and mocking in tests.
type ReviewProtocolInterface interface {
	// Decide records a reviewer decision and propagates the article status.
	Decide(ctx context.Context, who domain.Identity, articleID int64, outcome domain.Outcome, comment string) (*domain.Review, error)
	// Reviews returns the cached review log without I/O.
	Reviews() []domain.Review
	// PendingReviews returns reviews awaiting a decision.
	PendingReviews() []domain.Review
	// ReviewsByPost returns the decision log for one article.
	ReviewsByPost(postID int64) []domain.Review
}

// CommentServiceInterface defines comment operations exposed to
// handlers. Used for dependency injection and mocking in tests.
type CommentServiceInterface interface {
	// ListByPost returns the comments for one article.
	ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error)
	// Add posts a new comment as the acting identity.
	Add(ctx context.Context, who domain.Identity, postID int64, content string) (*domain.Comment, error)
	// Edit changes a comment's content; comment author only.
	Edit(ctx context.Context, who domain.Identity, commentID int64, content string) error
	// Delete removes a comment; comment author only.
	Delete(ctx context.Context, who domain.Identity, commentID int64) error
}
