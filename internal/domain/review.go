package domain

import "time"

// ReviewStatus is the state of a single review record.
type ReviewStatus string

const (
	ReviewPending   ReviewStatus = "PENDING"
	ReviewPublished ReviewStatus = "PUBLISHED"
	ReviewRejected  ReviewStatus = "REJECTED"
)

// NormalizeReviewStatus maps the legacy "APPROVED" wire value onto
// ReviewPublished. Older deployments of the review service used the two
// names interchangeably for the accepted decision.
func NormalizeReviewStatus(s string) ReviewStatus {
	if s == "APPROVED" {
		return ReviewPublished
	}
	return ReviewStatus(s)
}

// NoReasonProvided is shown to authors when a rejection carries no comment.
const NoReasonProvided = "No reason provided"

// Review is one entry in the append-only decision log for an article.
// A PENDING review is created on (re)submission; a terminal review is
// created by a reviewer decision.
type Review struct {
	ID         int64        `json:"id,omitempty"`
	PostID     int64        `json:"postId"`
	ReviewerID string       `json:"reviewerId,omitempty"`
	Status     ReviewStatus `json:"status"`
	Comment    string       `json:"comment,omitempty"`
	ReviewedAt time.Time    `json:"reviewedAt"`
}

// Terminal reports whether the review settles the submission.
func (r Review) Terminal() bool {
	return r.Status == ReviewPublished || r.Status == ReviewRejected
}

// Reason returns the review comment, substituting a displayable
// placeholder when the reviewer left it empty.
func (r Review) Reason() string {
	if r.Comment == "" {
		return NoReasonProvided
	}
	return r.Comment
}

// Outcome is a reviewer's decision on a pending article.
type Outcome string

const (
	OutcomeAccept Outcome = "ACCEPT"
	OutcomeReject Outcome = "REJECT"
)

// IsValidOutcome checks if an outcome is valid.
func IsValidOutcome(o Outcome) bool {
	return o == OutcomeAccept || o == OutcomeReject
}

// ReviewStatusFor translates a decision outcome into the review status
// recorded for it.
func ReviewStatusFor(o Outcome) ReviewStatus {
	if o == OutcomeAccept {
		return ReviewPublished
	}
	return ReviewRejected
}

// ArticleStatusFor translates a decision outcome into the article status
// it propagates.
func ArticleStatusFor(o Outcome) ArticleStatus {
	if o == OutcomeAccept {
		return StatusPublished
	}
	return StatusRejected
}
