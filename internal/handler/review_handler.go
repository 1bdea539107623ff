package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom/internal/domain"
	"newsroom/internal/middleware"
	"newsroom/internal/service"
)

// ReviewHandler handles review-related HTTP requests.
type ReviewHandler struct {
	protocol service.ReviewProtocolInterface
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(protocol service.ReviewProtocolInterface) *ReviewHandler {
	return &ReviewHandler{protocol: protocol}
}

// ReviewResponse represents a review in the API response.
type ReviewResponse struct {
	ID         int64  `json:"id"`
	PostID     int64  `json:"post_id"`
	ReviewerID string `json:"reviewer_id,omitempty"`
	Status     string `json:"status"`
	Comment    string `json:"comment,omitempty"`
	ReviewedAt string `json:"reviewed_at"`
}

// DecisionRequest is the payload for a review decision.
type DecisionRequest struct {
	Outcome string `json:"outcome"`
	Comment string `json:"comment"`
}

func toReviewResponse(r domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		PostID:     r.PostID,
		ReviewerID: r.ReviewerID,
		Status:     string(r.Status),
		Comment:    r.Comment,
		ReviewedAt: r.ReviewedAt.Format(TimeFormat),
	}
}

func toReviewResponses(reviews []domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}
	return out
}

// Decide handles POST /api/v1/articles/:id/decision
func (h *ReviewHandler) Decide(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	who := middleware.GetIdentity(c)
	review, err := h.protocol.Decide(c.Request.Context(), who, id, domain.Outcome(req.Outcome), req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toReviewResponse(*review))
}

// List handles GET /api/v1/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, toReviewResponses(h.protocol.Reviews()))
}

// Pending handles GET /api/v1/reviews/pending
func (h *ReviewHandler) Pending(c *gin.Context) {
	c.JSON(http.StatusOK, toReviewResponses(h.protocol.PendingReviews()))
}

// ByArticle handles GET /api/v1/articles/:id/reviews - the append-only
// decision log for one article.
func (h *ReviewHandler) ByArticle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toReviewResponses(h.protocol.ReviewsByPost(id)))
}
