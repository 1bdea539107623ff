package domain

import "time"

// Comment represents a comment attached to exactly one article.
type Comment struct {
	ID        int64      `json:"id,omitempty"`
	PostID    int64      `json:"postId"`
	Content   string     `json:"content"`
	PostedBy  string     `json:"postedBy"`
	CreatedAt time.Time  `json:"createdAt"`
	EditedAt  *time.Time `json:"editedAt,omitempty"`
}
