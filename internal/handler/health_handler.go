package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom/internal/cache"
	"newsroom/internal/domain"
)

// HealthHandler handles health check requests. Readiness is defined by
// the caches having completed at least one successful fetch from the
// upstream services.
type HealthHandler struct {
	articles *cache.Cache[domain.Article]
	reviews  *cache.Cache[domain.Review]
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(articles *cache.Cache[domain.Article], reviews *cache.Cache[domain.Review]) *HealthHandler {
	return &HealthHandler{articles: articles, reviews: reviews}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

func cacheState(loaded bool) string {
	if loaded {
		return "healthy"
	}
	return "not loaded"
}

// Health handles GET /health - comprehensive health check.
func (h *HealthHandler) Health(c *gin.Context) {
	services := map[string]string{
		"articles": cacheState(h.articles.Loaded()),
		"reviews":  cacheState(h.reviews.Loaded()),
	}

	if !h.articles.Loaded() || !h.reviews.Loaded() {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Services: services,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Version:  "1.0.0",
		Services: services,
	})
}

// Ready handles GET /ready - readiness probe for Kubernetes.
func (h *HealthHandler) Ready(c *gin.Context) {
	if !h.articles.Loaded() || !h.reviews.Loaded() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
