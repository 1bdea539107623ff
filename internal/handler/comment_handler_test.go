package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsroom/internal/domain"
	"newsroom/internal/middleware"
	"newsroom/internal/mocks"
)

func commentRouter(h *CommentHandler) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Identity())

	api := router.Group("/api/v1")
	api.GET("/articles/:id/comments", h.ListByArticle)
	api.POST("/articles/:id/comments", h.Create)
	api.PUT("/comments/:id", h.Update)
	api.DELETE("/comments/:id", h.Delete)
	return router
}

func TestListComments(t *testing.T) {
	mockComments := mocks.NewMockCommentServiceInterface(t)
	handler := NewCommentHandler(mockComments)

	edited := testNow.Add(time.Hour)
	mockComments.EXPECT().ListByPost(mock.Anything, int64(3)).Return([]domain.Comment{
		{ID: 1, PostID: 3, Content: "Great piece", PostedBy: "dave", CreatedAt: testNow},
		{ID: 2, PostID: 3, Content: "Updated take", PostedBy: "bob", CreatedAt: testNow, EditedAt: &edited},
	}, nil)

	w := performRequest(commentRouter(handler), http.MethodGet, "/api/v1/articles/3/comments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []CommentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Nil(t, got[0].EditedAt)
	require.NotNil(t, got[1].EditedAt)
}

func TestListComments_Upstream502(t *testing.T) {
	mockComments := mocks.NewMockCommentServiceInterface(t)
	handler := NewCommentHandler(mockComments)

	mockComments.EXPECT().ListByPost(mock.Anything, int64(3)).
		Return(nil, &domain.NetworkError{Op: "comments.list", Status: http.StatusInternalServerError})

	w := performRequest(commentRouter(handler), http.MethodGet, "/api/v1/articles/3/comments", "", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCreateComment(t *testing.T) {
	mockComments := mocks.NewMockCommentServiceInterface(t)
	handler := NewCommentHandler(mockComments)

	reader := domain.Identity{Name: "dave", Role: domain.RoleUser}
	created := domain.Comment{ID: 1, PostID: 3, Content: "Great piece", PostedBy: "dave", CreatedAt: testNow}
	mockComments.EXPECT().
		Add(mock.Anything, reader, int64(3), "Great piece").
		Return(&created, nil)

	body := `{"content":"Great piece"}`
	w := performRequest(commentRouter(handler), http.MethodPost, "/api/v1/articles/3/comments", body, &reader)

	require.Equal(t, http.StatusCreated, w.Code)

	var got CommentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "dave", got.PostedBy)
}

func TestCreateComment_Anonymous(t *testing.T) {
	mockComments := mocks.NewMockCommentServiceInterface(t)
	handler := NewCommentHandler(mockComments)

	mockComments.EXPECT().
		Add(mock.Anything, domain.Identity{}, int64(3), "hi").
		Return(nil, domain.PolicyViolationf("sign in to comment"))

	body := `{"content":"hi"}`
	w := performRequest(commentRouter(handler), http.MethodPost, "/api/v1/articles/3/comments", body, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateComment(t *testing.T) {
	mockComments := mocks.NewMockCommentServiceInterface(t)
	handler := NewCommentHandler(mockComments)

	reader := domain.Identity{Name: "dave", Role: domain.RoleUser}
	mockComments.EXPECT().Edit(mock.Anything, reader, int64(7), "edited").Return(nil)

	body := `{"content":"edited"}`
	w := performRequest(commentRouter(handler), http.MethodPut, "/api/v1/comments/7", body, &reader)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestUpdateComment_NotOwner(t *testing.T) {
	mockComments := mocks.NewMockCommentServiceInterface(t)
	handler := NewCommentHandler(mockComments)

	other := domain.Identity{Name: "bob", Role: domain.RoleEditor}
	mockComments.EXPECT().Edit(mock.Anything, other, int64(7), "hijacked").
		Return(domain.PolicyViolationf("bob does not own comment 7"))

	body := `{"content":"hijacked"}`
	w := performRequest(commentRouter(handler), http.MethodPut, "/api/v1/comments/7", body, &other)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteComment(t *testing.T) {
	mockComments := mocks.NewMockCommentServiceInterface(t)
	handler := NewCommentHandler(mockComments)

	reader := domain.Identity{Name: "dave", Role: domain.RoleUser}
	mockComments.EXPECT().Delete(mock.Anything, reader, int64(7)).Return(nil)

	w := performRequest(commentRouter(handler), http.MethodDelete, "/api/v1/comments/7", "", &reader)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteComment_NotFound(t *testing.T) {
	mockComments := mocks.NewMockCommentServiceInterface(t)
	handler := NewCommentHandler(mockComments)

	reader := domain.Identity{Name: "dave", Role: domain.RoleUser}
	mockComments.EXPECT().Delete(mock.Anything, reader, int64(99)).
		Return(domain.NotFoundf("comment 99"))

	w := performRequest(commentRouter(handler), http.MethodDelete, "/api/v1/comments/99", "", &reader)
	require.Equal(t, http.StatusNotFound, w.Code)
}
