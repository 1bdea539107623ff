package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsroom/internal/domain"
	"newsroom/internal/filter"
	"newsroom/internal/middleware"
	"newsroom/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleArticle(id int64, status domain.ArticleStatus) domain.Article {
	return domain.Article{
		ID:        id,
		Title:     "City Budget 2024",
		Content:   "The council voted.",
		Author:    "alice",
		Category:  "news",
		Status:    status,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

func performRequest(router *gin.Engine, method, path, body string, who *domain.Identity) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if who != nil {
		req.Header.Set(middleware.UserNameHeader, who.Name)
		req.Header.Set(middleware.UserRoleHeader, string(who.Role))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func articleRouter(h *ArticleHandler) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Identity())

	api := router.Group("/api/v1")
	api.GET("/articles", h.List)
	api.GET("/articles/all", h.ListAll)
	api.GET("/articles/drafts", h.Drafts)
	api.GET("/articles/pending", h.Pending)
	api.GET("/articles/rejected", h.Rejected)
	api.GET("/articles/authors", h.Authors)
	api.GET("/articles/:id", h.Get)
	api.POST("/articles", h.Create)
	api.PUT("/articles/:id", h.Update)
	api.DELETE("/articles/:id", h.Delete)
	api.POST("/articles/:id/submit", h.Submit)
	return router
}

func TestListArticles_PublishedOnly(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	mockWorkflow.EXPECT().
		Filtered(filter.Spec{PublishedOnly: true}).
		Return([]domain.Article{sampleArticle(1, domain.StatusPublished)})

	w := performRequest(articleRouter(handler), http.MethodGet, "/api/v1/articles", "", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var got []ArticleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "PUBLISHED", got[0].Status)
}

func TestListArticles_WithFilters(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	mockWorkflow.EXPECT().
		Filtered(filter.Spec{
			PublishedOnly: true,
			SearchTerm:    "budget",
			Category:      "news",
			Author:        "alice",
			StartDate:     &start,
			EndDate:       &end,
		}).
		Return(nil)

	w := performRequest(articleRouter(handler), http.MethodGet,
		"/api/v1/articles?search=budget&category=news&author=alice&start_date=2024-01-01&end_date=2024-02-01", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestListArticles_BadDate(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	w := performRequest(articleRouter(handler), http.MethodGet,
		"/api/v1/articles?start_date=01-2024-01", "", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAll_RequiresEditor(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	reader := domain.Identity{Name: "dave", Role: domain.RoleUser}
	w := performRequest(articleRouter(handler), http.MethodGet, "/api/v1/articles/all", "", &reader)
	require.Equal(t, http.StatusForbidden, w.Code)

	mockWorkflow.EXPECT().Articles().Return([]domain.Article{sampleArticle(1, domain.StatusDraft)})
	editor := domain.Identity{Name: "alice", Role: domain.RoleEditor}
	w = performRequest(articleRouter(handler), http.MethodGet, "/api/v1/articles/all", "", &editor)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetArticle(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	article := sampleArticle(7, domain.StatusPublished)
	mockWorkflow.EXPECT().ArticleByID(mock.Anything, int64(7)).Return(&article, nil)

	w := performRequest(articleRouter(handler), http.MethodGet, "/api/v1/articles/7", "", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var got ArticleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, int64(7), got.ID)
	require.Equal(t, testNow.Format(TimeFormat), got.CreatedAt)
}

func TestGetArticle_NotFound(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	mockWorkflow.EXPECT().ArticleByID(mock.Anything, int64(99)).Return(nil, domain.NotFoundf("article 99"))

	w := performRequest(articleRouter(handler), http.MethodGet, "/api/v1/articles/99", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetArticle_BadID(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	w := performRequest(articleRouter(handler), http.MethodGet, "/api/v1/articles/abc", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateArticle(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	editor := domain.Identity{Name: "alice", Role: domain.RoleEditor}
	created := sampleArticle(1, domain.StatusDraft)
	mockWorkflow.EXPECT().
		Create(mock.Anything, editor, domain.Article{
			Title:    "City Budget 2024",
			Content:  "The council voted.",
			Category: "news",
		}).
		Return(&created, nil)

	body := `{"title":"City Budget 2024","content":"The council voted.","category":"news"}`
	w := performRequest(articleRouter(handler), http.MethodPost, "/api/v1/articles", body, &editor)

	require.Equal(t, http.StatusCreated, w.Code)

	var got ArticleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "DRAFT", got.Status)
}

func TestCreateArticle_PolicyViolation(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	reader := domain.Identity{Name: "dave", Role: domain.RoleUser}
	mockWorkflow.EXPECT().
		Create(mock.Anything, reader, mock.AnythingOfType("domain.Article")).
		Return(nil, domain.PolicyViolationf("dave may not create articles"))

	body := `{"title":"T","content":"C","category":"news"}`
	w := performRequest(articleRouter(handler), http.MethodPost, "/api/v1/articles", body, &reader)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateArticle_ValidationError(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	editor := domain.Identity{Name: "alice", Role: domain.RoleEditor}
	mockWorkflow.EXPECT().
		Create(mock.Anything, editor, mock.AnythingOfType("domain.Article")).
		Return(nil, domain.ValidationError(errors.New("title: cannot be blank")))

	body := `{"title":"","content":"C","category":"news"}`
	w := performRequest(articleRouter(handler), http.MethodPost, "/api/v1/articles", body, &editor)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateArticle_BadBody(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	editor := domain.Identity{Name: "alice", Role: domain.RoleEditor}
	w := performRequest(articleRouter(handler), http.MethodPost, "/api/v1/articles", "{not json", &editor)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateArticle(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	editor := domain.Identity{Name: "alice", Role: domain.RoleEditor}
	updated := sampleArticle(3, domain.StatusDraft)
	mockWorkflow.EXPECT().
		Update(mock.Anything, editor, int64(3), domain.Article{
			Title:    "New title",
			Content:  "New body",
			Category: "updates",
		}).
		Return(&updated, nil)

	body := `{"title":"New title","content":"New body","category":"updates"}`
	w := performRequest(articleRouter(handler), http.MethodPut, "/api/v1/articles/3", body, &editor)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteArticle(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	editor := domain.Identity{Name: "alice", Role: domain.RoleEditor}
	mockWorkflow.EXPECT().Delete(mock.Anything, editor, int64(4), false).Return(nil)

	w := performRequest(articleRouter(handler), http.MethodDelete, "/api/v1/articles/4", "", &editor)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteArticle_ConfirmFlag(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	chief := domain.Identity{Name: "carol", Role: domain.RoleChiefEditor}
	mockWorkflow.EXPECT().Delete(mock.Anything, chief, int64(4), true).Return(nil)

	w := performRequest(articleRouter(handler), http.MethodDelete, "/api/v1/articles/4?confirm=true", "", &chief)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestSubmitArticle(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	editor := domain.Identity{Name: "alice", Role: domain.RoleEditor}
	mockWorkflow.EXPECT().Submit(mock.Anything, editor, int64(5)).Return(nil)

	w := performRequest(articleRouter(handler), http.MethodPost, "/api/v1/articles/5/submit", "", &editor)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "PENDING")
}

func TestDrafts(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	editor := domain.Identity{Name: "alice", Role: domain.RoleEditor}
	mockWorkflow.EXPECT().Drafts(editor).Return([]domain.Article{
		sampleArticle(1, domain.StatusDraft),
		sampleArticle(2, domain.StatusRejected),
	})

	w := performRequest(articleRouter(handler), http.MethodGet, "/api/v1/articles/drafts", "", &editor)
	require.Equal(t, http.StatusOK, w.Code)

	var got []ArticleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
}

func TestPending_Forbidden(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	editor := domain.Identity{Name: "alice", Role: domain.RoleEditor}
	mockWorkflow.EXPECT().Pending(editor).Return(nil, domain.PolicyViolationf("alice may not view the review queue"))

	w := performRequest(articleRouter(handler), http.MethodGet, "/api/v1/articles/pending", "", &editor)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestRejected_IncludesReason(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	editor := domain.Identity{Name: "alice", Role: domain.RoleEditor}
	mockWorkflow.EXPECT().Rejected(editor).Return([]domain.RejectedArticle{
		{Article: sampleArticle(1, domain.StatusRejected), Reason: "needs sources"},
	})

	w := performRequest(articleRouter(handler), http.MethodGet, "/api/v1/articles/rejected", "", &editor)
	require.Equal(t, http.StatusOK, w.Code)

	var got []ArticleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "needs sources", got[0].Reason)
}

func TestAuthors_EmptyIsArray(t *testing.T) {
	mockWorkflow := mocks.NewMockArticleWorkflowInterface(t)
	handler := NewArticleHandler(mockWorkflow)

	mockWorkflow.EXPECT().Authors().Return(nil)

	w := performRequest(articleRouter(handler), http.MethodGet, "/api/v1/articles/authors", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}
