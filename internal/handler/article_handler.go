package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"newsroom/internal/domain"
	"newsroom/internal/filter"
	"newsroom/internal/logger"
	"newsroom/internal/middleware"
	"newsroom/internal/service"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	workflow service.ArticleWorkflowInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(workflow service.ArticleWorkflowInterface) *ArticleHandler {
	return &ArticleHandler{workflow: workflow}
}

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ArticleRequest is the payload for creating or updating an article.
type ArticleRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

func toArticleResponse(a domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Author:    a.Author,
		Category:  a.Category,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt.Format(TimeFormat),
		UpdatedAt: a.UpdatedAt.Format(TimeFormat),
	}
}

func toArticleResponses(articles []domain.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, toArticleResponse(a))
	}
	return out
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// List handles GET /api/v1/articles - the published listing with
// optional search, category, author and date range filters.
func (h *ArticleHandler) List(c *gin.Context) {
	spec := filter.Spec{
		PublishedOnly: true,
		SearchTerm:    c.Query("search"),
		Category:      c.Query("category"),
		Author:        c.Query("author"),
	}

	if v := c.Query("start_date"); v != "" {
		parsed, err := time.Parse(DateFormat, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be formatted as YYYY-MM-DD"})
			return
		}
		spec.StartDate = &parsed
	}
	if v := c.Query("end_date"); v != "" {
		parsed, err := time.Parse(DateFormat, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be formatted as YYYY-MM-DD"})
			return
		}
		spec.EndDate = &parsed
	}

	c.JSON(http.StatusOK, toArticleResponses(h.workflow.Filtered(spec)))
}

// ListAll handles GET /api/v1/articles/all - the unfiltered cached
// collection. Editors and chief editors only.
func (h *ArticleHandler) ListAll(c *gin.Context) {
	who := middleware.GetIdentity(c)
	if !who.CanAuthor() {
		c.JSON(http.StatusForbidden, gin.H{"error": "editor role required"})
		return
	}
	c.JSON(http.StatusOK, toArticleResponses(h.workflow.Articles()))
}

// Get handles GET /api/v1/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, err := h.workflow.ArticleByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(*article))
}

// Create handles POST /api/v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	who := middleware.GetIdentity(c)
	created, err := h.workflow.Create(c.Request.Context(), who, domain.Article{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		logger.Error("create article failed",
			"request_id", middleware.GetRequestID(c),
			"error", err.Error(),
		)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toArticleResponse(*created))
}

// Update handles PUT /api/v1/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	who := middleware.GetIdentity(c)
	updated, err := h.workflow.Update(c.Request.Context(), who, id, domain.Article{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(*updated))
}

// Delete handles DELETE /api/v1/articles/:id. Deleting a published
// article requires the confirm=true query parameter.
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	confirm := c.Query("confirm") == "true"
	who := middleware.GetIdentity(c)

	if err := h.workflow.Delete(c.Request.Context(), who, id, confirm); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Submit handles POST /api/v1/articles/:id/submit
func (h *ArticleHandler) Submit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	who := middleware.GetIdentity(c)
	if err := h.workflow.Submit(c.Request.Context(), who, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(domain.StatusPending)})
}

// Drafts handles GET /api/v1/articles/drafts - the actor's draft and
// rejected articles.
func (h *ArticleHandler) Drafts(c *gin.Context) {
	who := middleware.GetIdentity(c)
	c.JSON(http.StatusOK, toArticleResponses(h.workflow.Drafts(who)))
}

// Pending handles GET /api/v1/articles/pending - the review queue.
func (h *ArticleHandler) Pending(c *gin.Context) {
	who := middleware.GetIdentity(c)
	queue, err := h.workflow.Pending(who)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponses(queue))
}

// Rejected handles GET /api/v1/articles/rejected - the actor's rejected
// articles, each carrying the reviewer's reason.
func (h *ArticleHandler) Rejected(c *gin.Context) {
	who := middleware.GetIdentity(c)

	rejected := h.workflow.Rejected(who)
	out := make([]ArticleResponse, 0, len(rejected))
	for _, r := range rejected {
		resp := toArticleResponse(r.Article)
		resp.Reason = r.Reason
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, out)
}

// Authors handles GET /api/v1/articles/authors - the distinct authors,
// used to populate filter dropdowns.
func (h *ArticleHandler) Authors(c *gin.Context) {
	authors := h.workflow.Authors()
	if authors == nil {
		authors = []string{}
	}
	c.JSON(http.StatusOK, authors)
}
