package validator

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"newsroom/internal/domain"
)

var (
	validCategories = []interface{}{"news", "updates", "announcements"}
	validStatuses   = []interface{}{
		domain.StatusDraft,
		domain.StatusPending,
		domain.StatusPublished,
		domain.StatusRejected,
	}
)

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateArticle validates an Article entity.
func (v *Validator) ValidateArticle(a *domain.Article) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&a.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&a.Author,
			validation.Required.Error("author_required"),
		),
		validation.Field(&a.Category,
			validation.Required.Error("category_required"),
			validation.In(validCategories...).Error("invalid_category"),
		),
		validation.Field(&a.Status,
			validation.Required.Error("status_required"),
			validation.In(validStatuses...).Error("invalid_status"),
		),
	)
}

// ValidateComment validates a Comment entity.
func (v *Validator) ValidateComment(c *domain.Comment) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Content,
			validation.Required.Error("content_required"),
			validation.By(wordCountRule(500)),
		),
		validation.Field(&c.PostID,
			validation.Required.Error("post_id_required"),
		),
		validation.Field(&c.PostedBy,
			validation.Required.Error("posted_by_required"),
		),
	)
}

// ValidateDecision validates a reviewer decision payload. The comment
// is optional even on rejection; its absence is a displayable state,
// not an error.
func (v *Validator) ValidateDecision(outcome domain.Outcome) error {
	if !domain.IsValidOutcome(outcome) {
		return validation.Errors{
			"outcome": validation.NewError("invalid_outcome", "outcome must be ACCEPT or REJECT"),
		}
	}
	return nil
}

// wordCountRule creates a validation rule for max word count.
func wordCountRule(maxWords int) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		if len(strings.Fields(strings.TrimSpace(s))) > maxWords {
			return validation.NewError("content_exceeds_500_words", "content exceeds 500 words")
		}
		return nil
	}
}
