package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"newsroom/internal/cache"
	"newsroom/internal/domain"
	"newsroom/internal/validator"
)

// CommentService manages comments, one refresh-on-write cache per
// article. Any signed-in identity may post; editing and deleting
// require the comment's author.
type CommentService struct {
	store    CommentStore
	validate *validator.Validator
	logger   *slog.Logger

	mu     sync.Mutex
	byPost map[int64]*cache.Cache[domain.Comment]
}

// NewCommentService creates a CommentService.
func NewCommentService(store CommentStore, validate *validator.Validator, logger *slog.Logger) *CommentService {
	return &CommentService{
		store:    store,
		validate: validate,
		logger:   logger,
		byPost:   make(map[int64]*cache.Cache[domain.Comment]),
	}
}

func (s *CommentService) cacheFor(postID int64) *cache.Cache[domain.Comment] {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byPost[postID]
	if !ok {
		c = cache.New(fmt.Sprintf("comments:%d", postID), func(ctx context.Context) ([]domain.Comment, error) {
			return s.store.ListByPost(ctx, postID)
		})
		s.byPost[postID] = c
	}
	return c
}

// ListByPost returns the comments for one article, fetching once on
// first access and serving from the cache afterwards.
func (s *CommentService) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	c := s.cacheFor(postID)
	if !c.Loaded() {
		if err := c.Refresh(ctx); err != nil {
			return nil, err
		}
	}
	return c.Current(), nil
}

// Add posts a new comment on an article as the acting identity.
func (s *CommentService) Add(ctx context.Context, who domain.Identity, postID int64, content string) (*domain.Comment, error) {
	if who.Anonymous() {
		return nil, domain.PolicyViolationf("sign in to comment")
	}

	comment := domain.Comment{
		PostID:    postID,
		Content:   content,
		PostedBy:  who.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.validate.ValidateComment(&comment); err != nil {
		return nil, domain.ValidationError(err)
	}

	var created *domain.Comment
	err := s.cacheFor(postID).Mutate(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.store.Create(ctx, comment)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	return created, nil
}

// Edit changes a comment's content. Only the comment's author may edit.
func (s *CommentService) Edit(ctx context.Context, who domain.Identity, commentID int64, content string) error {
	comment, postCache, err := s.findComment(commentID)
	if err != nil {
		return err
	}
	if comment.PostedBy != who.Name {
		return domain.PolicyViolationf("%s does not own comment %d", who.Name, commentID)
	}

	check := *comment
	check.Content = content
	if err := s.validate.ValidateComment(&check); err != nil {
		return domain.ValidationError(err)
	}

	err = postCache.Mutate(ctx, func(ctx context.Context) error {
		return s.store.Update(ctx, commentID, content)
	})
	if err != nil {
		return fmt.Errorf("edit comment: %w", err)
	}
	return nil
}

// Delete removes a comment. Only the comment's author may delete.
// Deleting a comment never affects the article it is attached to.
func (s *CommentService) Delete(ctx context.Context, who domain.Identity, commentID int64) error {
	comment, postCache, err := s.findComment(commentID)
	if err != nil {
		return err
	}
	if comment.PostedBy != who.Name {
		return domain.PolicyViolationf("%s does not own comment %d", who.Name, commentID)
	}

	err = postCache.Mutate(ctx, func(ctx context.Context) error {
		return s.store.Delete(ctx, commentID)
	})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	s.logger.Info("comment deleted",
		slog.Int64("comment_id", commentID),
		slog.String("by", who.Name),
	)
	return nil
}

// findComment locates a comment in the loaded per-article caches.
// Comments are always reached through their article, so an id that no
// loaded cache holds is treated as not found.
func (s *CommentService) findComment(commentID int64) (*domain.Comment, *cache.Cache[domain.Comment], error) {
	s.mu.Lock()
	caches := make([]*cache.Cache[domain.Comment], 0, len(s.byPost))
	for _, c := range s.byPost {
		caches = append(caches, c)
	}
	s.mu.Unlock()

	for _, c := range caches {
		for _, comment := range c.Current() {
			if comment.ID == commentID {
				return &comment, c, nil
			}
		}
	}
	return nil, nil, domain.NotFoundf("comment %d", commentID)
}
