package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom/internal/domain"
	"newsroom/internal/middleware"
	"newsroom/internal/service"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	comments service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// CommentResponse represents a comment in the API response.
type CommentResponse struct {
	ID        int64   `json:"id"`
	PostID    int64   `json:"post_id"`
	Content   string  `json:"content"`
	PostedBy  string  `json:"posted_by"`
	CreatedAt string  `json:"created_at"`
	EditedAt  *string `json:"edited_at,omitempty"`
}

// CommentRequest is the payload for creating or editing a comment.
type CommentRequest struct {
	Content string `json:"content"`
}

func toCommentResponse(comment domain.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Content:   comment.Content,
		PostedBy:  comment.PostedBy,
		CreatedAt: comment.CreatedAt.Format(TimeFormat),
	}
	if comment.EditedAt != nil {
		edited := comment.EditedAt.Format(TimeFormat)
		resp.EditedAt = &edited
	}
	return resp
}

// ListByArticle handles GET /api/v1/articles/:id/comments
func (h *CommentHandler) ListByArticle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	comments, err := h.comments.ListByPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, toCommentResponse(comment))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /api/v1/articles/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	who := middleware.GetIdentity(c)
	created, err := h.comments.Add(c.Request.Context(), who, id, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCommentResponse(*created))
}

// Update handles PUT /api/v1/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	who := middleware.GetIdentity(c)
	if err := h.comments.Edit(c.Request.Context(), who, id, req.Content); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	who := middleware.GetIdentity(c)
	if err := h.comments.Delete(c.Request.Context(), who, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
