package domain

import "time"

// ArticleStatus is the lifecycle state of an article.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "DRAFT"
	StatusPending   ArticleStatus = "PENDING"
	StatusPublished ArticleStatus = "PUBLISHED"
	StatusRejected  ArticleStatus = "REJECTED"
)

// Article represents an article as held by the posts service.
// ID and timestamps are assigned remotely on create/update.
type Article struct {
	ID        int64         `json:"id,omitempty"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Author    string        `json:"author"`
	Category  string        `json:"category"`
	Status    ArticleStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []ArticleStatus{StatusDraft, StatusPending, StatusPublished, StatusRejected}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status ArticleStatus) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ValidCategories contains the fixed category set.
var ValidCategories = []string{"news", "updates", "announcements"}

// IsValidCategory checks if a category is valid.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Editable reports whether the article may still be changed by its author.
// Pending and published articles are only moved by the review protocol.
func (a Article) Editable() bool {
	return a.Status == StatusDraft || a.Status == StatusRejected
}

// RejectedArticle pairs a rejected article with the reviewer's reason,
// taken from the latest terminal review for the article.
type RejectedArticle struct {
	Article
	Reason string `json:"reason"`
}
