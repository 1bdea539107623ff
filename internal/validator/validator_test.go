package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsroom/internal/domain"
)

func validArticle() domain.Article {
	return domain.Article{
		Title:    "City Budget 2024",
		Content:  "The council voted on the budget.",
		Author:   "alice",
		Category: "news",
		Status:   domain.StatusDraft,
	}
}

func TestValidateArticle(t *testing.T) {
	v := NewValidator()

	t.Run("valid article passes", func(t *testing.T) {
		a := validArticle()
		assert.NoError(t, v.ValidateArticle(&a))
	})

	tests := []struct {
		name    string
		mutate  func(*domain.Article)
		wantErr string
	}{
		{"missing title", func(a *domain.Article) { a.Title = "" }, "title_required"},
		{"missing content", func(a *domain.Article) { a.Content = "" }, "content_required"},
		{"missing author", func(a *domain.Article) { a.Author = "" }, "author_required"},
		{"missing category", func(a *domain.Article) { a.Category = "" }, "category_required"},
		{"unknown category", func(a *domain.Article) { a.Category = "sports" }, "invalid_category"},
		{"unknown status", func(a *domain.Article) { a.Status = "ARCHIVED" }, "invalid_status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validArticle()
			tt.mutate(&a)
			err := v.ValidateArticle(&a)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateComment(t *testing.T) {
	v := NewValidator()

	t.Run("valid comment passes", func(t *testing.T) {
		c := domain.Comment{PostID: 1, Content: "Well researched.", PostedBy: "dave"}
		assert.NoError(t, v.ValidateComment(&c))
	})

	t.Run("empty content rejected", func(t *testing.T) {
		c := domain.Comment{PostID: 1, PostedBy: "dave"}
		err := v.ValidateComment(&c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "content_required")
	})

	t.Run("overlong content rejected", func(t *testing.T) {
		c := domain.Comment{
			PostID:   1,
			PostedBy: "dave",
			Content:  strings.Repeat("word ", 501),
		}
		err := v.ValidateComment(&c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "content_exceeds_500_words")
	})
}

func TestValidateDecision(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateDecision(domain.OutcomeAccept))
	assert.NoError(t, v.ValidateDecision(domain.OutcomeReject))

	err := v.ValidateDecision("PUBLISH")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_outcome")
}
