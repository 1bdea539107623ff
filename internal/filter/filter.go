// Package filter derives visible article subsets from the full cached
// collection. The same predicate composition serves the public listing
// and the author-scoped dashboards.
package filter

import (
	"strings"
	"time"

	"newsroom/internal/domain"
)

// Spec describes one filtered view. Every zero-valued field is
// inactive and matches everything; active predicates combine with
// logical AND.
//
// PublishedOnly and AuthorScope are view scoping, fixed by the hosting
// view, and are therefore excluded from HasActiveFilters/Clear, which
// cover only the user-adjustable filters.
type Spec struct {
	PublishedOnly bool
	AuthorScope   string

	SearchTerm string
	Category   string
	Author     string
	StartDate  *time.Time
	EndDate    *time.Time
}

// HasActiveFilters reports whether any user-adjustable filter deviates
// from its default.
func (s Spec) HasActiveFilters() bool {
	return s.SearchTerm != "" ||
		s.Category != "" ||
		s.Author != "" ||
		s.StartDate != nil ||
		s.EndDate != nil
}

// Clear resets every user-adjustable filter to its default atomically.
func (s *Spec) Clear() {
	s.SearchTerm = ""
	s.Category = ""
	s.Author = ""
	s.StartDate = nil
	s.EndDate = nil
}

// Apply returns the articles matching the spec, preserving input order.
// It never reorders and never mutates the input.
func Apply(articles []domain.Article, spec Spec) []domain.Article {
	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if matches(a, spec) {
			out = append(out, a)
		}
	}
	return out
}

func matches(a domain.Article, spec Spec) bool {
	if spec.PublishedOnly && a.Status != domain.StatusPublished {
		return false
	}

	if spec.AuthorScope != "" && a.Author != spec.AuthorScope {
		return false
	}

	if spec.SearchTerm != "" {
		term := strings.ToLower(spec.SearchTerm)
		if !strings.Contains(strings.ToLower(a.Title), term) &&
			!strings.Contains(strings.ToLower(a.Content), term) &&
			!strings.Contains(strings.ToLower(a.Author), term) {
			return false
		}
	}

	if spec.Category != "" && a.Category != spec.Category {
		return false
	}

	if spec.Author != "" && a.Author != spec.Author {
		return false
	}

	if spec.StartDate != nil || spec.EndDate != nil {
		day := truncateToDay(a.UpdatedAt)

		if spec.StartDate != nil && day.Before(truncateToDay(*spec.StartDate)) {
			return false
		}
		if spec.EndDate != nil {
			// End date is inclusive of the entire calendar day.
			endExclusive := truncateToDay(*spec.EndDate).AddDate(0, 0, 1)
			if !day.Before(endExclusive) {
				return false
			}
		}
	}

	return true
}

func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// UniqueAuthors returns the distinct article authors in first-seen order.
func UniqueAuthors(articles []domain.Article) []string {
	seen := make(map[string]struct{}, len(articles))
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		if _, ok := seen[a.Author]; ok {
			continue
		}
		seen[a.Author] = struct{}{}
		out = append(out, a.Author)
	}
	return out
}
