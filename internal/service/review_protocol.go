package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newsroom/internal/cache"
	"newsroom/internal/domain"
	"newsroom/internal/metrics"
	"newsroom/internal/validator"
)

// ReviewProtocol records review decisions and keeps the denormalized
// article status in step with the review log. The review write is
// authoritative: the article status update is a projection of it, and a
// failed projection is compensated by deleting the just-written review
// so neither side is left half-applied.
type ReviewProtocol struct {
	posts        PostStore
	reviews      ReviewStore
	articleCache *cache.Cache[domain.Article]
	reviewCache  *cache.Cache[domain.Review]
	validate     *validator.Validator
	logger       *slog.Logger
}

// NewReviewProtocol creates a ReviewProtocol.
func NewReviewProtocol(
	posts PostStore,
	reviews ReviewStore,
	articleCache *cache.Cache[domain.Article],
	reviewCache *cache.Cache[domain.Review],
	validate *validator.Validator,
	logger *slog.Logger,
) *ReviewProtocol {
	return &ReviewProtocol{
		posts:        posts,
		reviews:      reviews,
		articleCache: articleCache,
		reviewCache:  reviewCache,
		validate:     validate,
		logger:       logger,
	}
}

// Decide records a reviewer decision on a pending article. Policy is
// enforced locally before any remote call: only a chief editor may
// decide, and only on an article currently pending review.
func (p *ReviewProtocol) Decide(ctx context.Context, who domain.Identity, articleID int64, outcome domain.Outcome, comment string) (*domain.Review, error) {
	if !who.CanReview() {
		return nil, domain.PolicyViolationf("%s may not review articles", who.Name)
	}
	if err := p.validate.ValidateDecision(outcome); err != nil {
		return nil, domain.ValidationError(err)
	}

	article, err := lookupArticle(ctx, p.articleCache, p.posts, articleID)
	if err != nil {
		return nil, err
	}
	if article.Status != domain.StatusPending {
		return nil, domain.PolicyViolationf("article %d is %s, not pending review", articleID, article.Status)
	}

	review := domain.Review{
		PostID:     articleID,
		ReviewerID: who.Name,
		Status:     domain.ReviewStatusFor(outcome),
		Comment:    comment,
		ReviewedAt: time.Now().UTC(),
	}

	created, err := p.Record(ctx, review, domain.ArticleStatusFor(outcome))
	if err != nil {
		return nil, err
	}

	metrics.DecisionsTotal.WithLabelValues(string(outcome)).Inc()
	metrics.WorkflowTransitionsTotal.
		WithLabelValues(string(domain.StatusPending), string(domain.ArticleStatusFor(outcome))).Inc()

	p.logger.Info("decision recorded",
		slog.Int64("article_id", articleID),
		slog.String("outcome", string(outcome)),
		slog.String("reviewer", who.Name),
	)

	return created, nil
}

// Record appends a review and propagates the matching article status.
// Both dependent caches are refreshed before the call reports success,
// so consumers reading Current() immediately afterwards observe the
// effect of the operation.
func (p *ReviewProtocol) Record(ctx context.Context, review domain.Review, status domain.ArticleStatus) (*domain.Review, error) {
	created, err := p.reviews.Create(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	if err := p.posts.UpdateStatus(ctx, review.PostID, status); err != nil {
		// Compensate: without the status projection the review must not
		// stand, or the two records drift apart permanently.
		if delErr := p.reviews.Delete(ctx, created.ID); delErr != nil {
			p.logger.Error("compensation failed, review log and article status diverge",
				slog.Int64("review_id", created.ID),
				slog.Int64("article_id", review.PostID),
				slog.String("error", delErr.Error()),
			)
		}
		return nil, fmt.Errorf("propagate status: %w", err)
	}

	if err := p.reviewCache.Refresh(ctx); err != nil {
		return created, err
	}
	if err := p.articleCache.Refresh(ctx); err != nil {
		return created, err
	}

	return created, nil
}

// Refresh re-fetches the review log.
func (p *ReviewProtocol) Refresh(ctx context.Context) error {
	return p.reviewCache.Refresh(ctx)
}

// Reviews returns the cached review log.
func (p *ReviewProtocol) Reviews() []domain.Review {
	return p.reviewCache.Current()
}

// PendingReviews returns reviews still awaiting a decision.
func (p *ReviewProtocol) PendingReviews() []domain.Review {
	var out []domain.Review
	for _, r := range p.reviewCache.Current() {
		if r.Status == domain.ReviewPending {
			out = append(out, r)
		}
	}
	return out
}

// ReviewsByPost returns the append-only decision log for one article,
// in store order.
func (p *ReviewProtocol) ReviewsByPost(postID int64) []domain.Review {
	var out []domain.Review
	for _, r := range p.reviewCache.Current() {
		if r.PostID == postID {
			out = append(out, r)
		}
	}
	return out
}

// latestReviewFor returns the newest review for an article, by id.
// Review ids are serial, so the highest id is the latest entry in the
// append-only log.
func latestReviewFor(reviews []domain.Review, postID int64) *domain.Review {
	var latest *domain.Review
	for i := range reviews {
		r := &reviews[i]
		if r.PostID != postID {
			continue
		}
		if latest == nil || r.ID > latest.ID {
			latest = r
		}
	}
	return latest
}

// lookupArticle resolves an article from the cache, falling back to the
// remote store for ids the cache has not seen yet.
func lookupArticle(ctx context.Context, articles *cache.Cache[domain.Article], posts PostStore, id int64) (*domain.Article, error) {
	for _, a := range articles.Current() {
		if a.ID == id {
			return &a, nil
		}
	}

	article, err := posts.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("article %d: %w", id, err)
	}
	return article, nil
}
