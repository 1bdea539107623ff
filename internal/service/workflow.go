package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newsroom/internal/cache"
	"newsroom/internal/domain"
	"newsroom/internal/filter"
	"newsroom/internal/metrics"
	"newsroom/internal/validator"
)

// ArticleWorkflow owns the article status machine and the policy on who
// may drive it. Legal transitions:
//
//	DRAFT    -> PENDING   (submit, author only)
//	REJECTED -> PENDING   (resubmit, author only)
//	PENDING  -> PUBLISHED (accept, via ReviewProtocol)
//	PENDING  -> REJECTED  (reject, via ReviewProtocol)
//
// PUBLISHED is terminal. Everything else is rejected locally with a
// policy violation before any remote call.
type ArticleWorkflow struct {
	posts        PostStore
	reviews      ReviewStore
	protocol     *ReviewProtocol
	articleCache *cache.Cache[domain.Article]
	reviewCache  *cache.Cache[domain.Review]
	validate     *validator.Validator
	logger       *slog.Logger
}

// NewArticleWorkflow creates an ArticleWorkflow.
func NewArticleWorkflow(
	posts PostStore,
	reviews ReviewStore,
	protocol *ReviewProtocol,
	articleCache *cache.Cache[domain.Article],
	reviewCache *cache.Cache[domain.Review],
	validate *validator.Validator,
	logger *slog.Logger,
) *ArticleWorkflow {
	return &ArticleWorkflow{
		posts:        posts,
		reviews:      reviews,
		protocol:     protocol,
		articleCache: articleCache,
		reviewCache:  reviewCache,
		validate:     validate,
		logger:       logger,
	}
}

// Refresh re-fetches both the article collection and the review log.
func (w *ArticleWorkflow) Refresh(ctx context.Context) error {
	if err := w.articleCache.Refresh(ctx); err != nil {
		return err
	}
	return w.reviewCache.Refresh(ctx)
}

// Articles returns the cached article collection.
func (w *ArticleWorkflow) Articles() []domain.Article {
	return w.articleCache.Current()
}

// Filtered applies a filter spec to the cached collection.
func (w *ArticleWorkflow) Filtered(spec filter.Spec) []domain.Article {
	return filter.Apply(w.articleCache.Current(), spec)
}

// ArticleByID resolves one article.
func (w *ArticleWorkflow) ArticleByID(ctx context.Context, id int64) (*domain.Article, error) {
	return lookupArticle(ctx, w.articleCache, w.posts, id)
}

// Create stores a new draft. The article is always created in DRAFT and
// owned by the acting identity regardless of what the caller supplied.
func (w *ArticleWorkflow) Create(ctx context.Context, who domain.Identity, article domain.Article) (*domain.Article, error) {
	if !who.CanAuthor() {
		return nil, domain.PolicyViolationf("%s may not create articles", who.Name)
	}

	article.ID = 0
	article.Author = who.Name
	article.Status = domain.StatusDraft

	if err := w.validate.ValidateArticle(&article); err != nil {
		return nil, domain.ValidationError(err)
	}

	var created *domain.Article
	err := w.articleCache.Mutate(ctx, func(ctx context.Context) error {
		var err error
		created, err = w.posts.Create(ctx, article)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	w.logger.Info("article created",
		slog.Int64("article_id", created.ID),
		slog.String("author", who.Name),
	)
	return created, nil
}

// Update edits title, content and category of a draft or rejected
// article. Author and status are preserved; status only ever moves
// through submit or a review decision.
func (w *ArticleWorkflow) Update(ctx context.Context, who domain.Identity, id int64, article domain.Article) (*domain.Article, error) {
	existing, err := w.ArticleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !who.IsAuthorOf(*existing) {
		return nil, domain.PolicyViolationf("%s does not own article %d", who.Name, id)
	}
	if !existing.Editable() {
		return nil, domain.PolicyViolationf("article %d is %s and can no longer be edited", id, existing.Status)
	}

	merged := *existing
	merged.Title = article.Title
	merged.Content = article.Content
	merged.Category = article.Category

	if err := w.validate.ValidateArticle(&merged); err != nil {
		return nil, domain.ValidationError(err)
	}

	var updated *domain.Article
	err = w.articleCache.Mutate(ctx, func(ctx context.Context) error {
		var err error
		updated, err = w.posts.Update(ctx, id, merged)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return updated, nil
}

// Submit moves a draft or rejected article into review. The article's
// status becomes PENDING only as an effect of the pending review being
// recorded, never as a free-form status write.
func (w *ArticleWorkflow) Submit(ctx context.Context, who domain.Identity, id int64) error {
	article, err := w.ArticleByID(ctx, id)
	if err != nil {
		return err
	}

	if !who.CanAuthor() || !who.IsAuthorOf(*article) {
		return domain.PolicyViolationf("%s may not submit article %d", who.Name, id)
	}
	if !article.Editable() {
		return domain.PolicyViolationf("article %d is %s and cannot be submitted", id, article.Status)
	}
	if article.Title == "" || article.Content == "" {
		return domain.ValidationError(fmt.Errorf("title and content are required before submission"))
	}

	// One outstanding review per article: resubmission is only legal
	// once the previous submission has been settled.
	if latest := latestReviewFor(w.reviewCache.Current(), id); latest != nil && !latest.Terminal() {
		return domain.PolicyViolationf("article %d already has an open review", id)
	}

	review := domain.Review{
		PostID:     id,
		Status:     domain.ReviewPending,
		ReviewedAt: time.Now().UTC(),
	}
	if _, err := w.protocol.Record(ctx, review, domain.StatusPending); err != nil {
		return err
	}

	metrics.WorkflowTransitionsTotal.
		WithLabelValues(string(article.Status), string(domain.StatusPending)).Inc()

	w.logger.Info("article submitted for review",
		slog.Int64("article_id", id),
		slog.String("author", who.Name),
	)
	return nil
}

// Delete removes an article together with its review log. Authors may
// delete their own unpublished articles; removing a published article
// is a chief-editor action that must be explicitly confirmed.
func (w *ArticleWorkflow) Delete(ctx context.Context, who domain.Identity, id int64, confirmPublished bool) error {
	article, err := w.ArticleByID(ctx, id)
	if err != nil {
		return err
	}

	if article.Status == domain.StatusPublished {
		if !who.CanReview() {
			return domain.PolicyViolationf("%s may not delete a published article", who.Name)
		}
		if !confirmPublished {
			return domain.PolicyViolationf("deleting published article %d requires confirmation", id)
		}
	} else if !who.IsAuthorOf(*article) {
		return domain.PolicyViolationf("%s does not own article %d", who.Name, id)
	}

	err = w.articleCache.Mutate(ctx, func(ctx context.Context) error {
		// Reviews go first; a dangling review log for a deleted article
		// would resurface it as pending after a refresh.
		if err := w.reviews.DeleteByPost(ctx, id); err != nil {
			return fmt.Errorf("delete reviews: %w", err)
		}
		return w.posts.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	// Deletion affects the drafts, pending and rejected views at once;
	// the review log must be re-read along with the articles.
	if err := w.reviewCache.Refresh(ctx); err != nil {
		return err
	}

	w.logger.Info("article deleted",
		slog.Int64("article_id", id),
		slog.String("by", who.Name),
	)
	return nil
}

// Drafts returns the actor's articles still in their hands: drafts and
// rejected pieces awaiting rework.
func (w *ArticleWorkflow) Drafts(who domain.Identity) []domain.Article {
	scoped := filter.Apply(w.articleCache.Current(), filter.Spec{AuthorScope: who.Name})
	out := make([]domain.Article, 0, len(scoped))
	for _, a := range scoped {
		if a.Status == domain.StatusDraft || a.Status == domain.StatusRejected {
			out = append(out, a)
		}
	}
	return out
}

// Pending returns the review queue. Reviewer-only.
func (w *ArticleWorkflow) Pending(who domain.Identity) ([]domain.Article, error) {
	if !who.CanReview() {
		return nil, domain.PolicyViolationf("%s may not view the review queue", who.Name)
	}

	var out []domain.Article
	for _, a := range w.articleCache.Current() {
		if a.Status == domain.StatusPending {
			out = append(out, a)
		}
	}
	return out, nil
}

// Rejected returns the actor's rejected articles, each carrying the
// reviewer's reason from the latest terminal review.
func (w *ArticleWorkflow) Rejected(who domain.Identity) []domain.RejectedArticle {
	reviews := w.reviewCache.Current()

	var out []domain.RejectedArticle
	for _, a := range filter.Apply(w.articleCache.Current(), filter.Spec{AuthorScope: who.Name}) {
		if a.Status != domain.StatusRejected {
			continue
		}

		reason := domain.NoReasonProvided
		if latest := latestReviewFor(reviews, a.ID); latest != nil && latest.Status == domain.ReviewRejected {
			reason = latest.Reason()
		}
		out = append(out, domain.RejectedArticle{Article: a, Reason: reason})
	}
	return out
}

// Authors returns the distinct authors present in the cached collection.
func (w *ArticleWorkflow) Authors() []string {
	return filter.UniqueAuthors(w.articleCache.Current())
}
