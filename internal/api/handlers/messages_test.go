package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/streamlinelabs/backend/internal/models"
	"github.com/streamlinelabs/backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMessageRouter(repo repository.ContactRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewMessageHandler(repo)
	router.GET("/api/messages", handler.List)
	router.PUT("/api/messages/:id/read", handler.MarkRead)
	return router
}

func fakeMessages(n int) []models.ContactMessage {
	msgs := make([]models.ContactMessage, n)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := range msgs {
		msgs[i] = models.ContactMessage{
			ID:        uint(n - i),
			Name:      fmt.Sprintf("Sender %d", n-i),
			Email:     fmt.Sprintf("sender%d@example.com", n-i),
			Message:   "hello",
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return msgs
}

func TestListMessages_Pagination(t *testing.T) {
	repo := &mockContactRepository{
		listFunc: func(ctx context.Context, page, perPage int) ([]models.ContactMessage, int64, error) {
			assert.Equal(t, 2, page)
			assert.Equal(t, 20, perPage)
			return fakeMessages(20), 45, nil
		},
	}
	router := newMessageRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/messages?page=2&per_page=20", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Messages    []json.RawMessage `json:"messages"`
		Total       int64             `json:"total"`
		Pages       int               `json:"pages"`
		CurrentPage int               `json:"current_page"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Messages, 20)
	assert.Equal(t, int64(45), resp.Total)
	assert.Equal(t, 3, resp.Pages)
	assert.Equal(t, 2, resp.CurrentPage)
}

func TestListMessages_Defaults(t *testing.T) {
	repo := &mockContactRepository{
		listFunc: func(ctx context.Context, page, perPage int) ([]models.ContactMessage, int64, error) {
			assert.Equal(t, 1, page)
			assert.Equal(t, 20, perPage)
			return []models.ContactMessage{}, 0, nil
		},
	}
	router := newMessageRouter(repo)

	// Missing and malformed parameters fall back to page=1, per_page=20
	for _, target := range []string{"/api/messages", "/api/messages?page=abc&per_page=-1"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":0`)
		assert.Contains(t, w.Body.String(), `"pages":0`)
	}
}

func TestListMessages_OutOfRangePage(t *testing.T) {
	repo := &mockContactRepository{
		listFunc: func(ctx context.Context, page, perPage int) ([]models.ContactMessage, int64, error) {
			return []models.ContactMessage{}, 5, nil
		},
	}
	router := newMessageRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/messages?page=99", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"messages":[]`)
	assert.Contains(t, w.Body.String(), `"total":5`)
}

func TestListMessages_StorageFailure(t *testing.T) {
	repo := &mockContactRepository{
		listFunc: func(ctx context.Context, page, perPage int) ([]models.ContactMessage, int64, error) {
			return nil, 0, fmt.Errorf("connection reset")
		},
	}
	router := newMessageRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/messages", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "connection reset")
}

func TestMarkRead(t *testing.T) {
	var markedID uint
	repo := &mockContactRepository{
		markReadFunc: func(ctx context.Context, id uint) (*models.ContactMessage, error) {
			markedID = id
			return &models.ContactMessage{ID: id, IsRead: true}, nil
		},
	}
	router := newMessageRouter(repo)

	// Marking twice succeeds both times
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/messages/3/read", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
		assert.Contains(t, w.Body.String(), "Message marked as read")
	}
	assert.Equal(t, uint(3), markedID)
}

func TestMarkRead_UnknownID(t *testing.T) {
	repo := &mockContactRepository{
		markReadFunc: func(ctx context.Context, id uint) (*models.ContactMessage, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	router := newMessageRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/messages/999/read", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestMarkRead_NonNumericID(t *testing.T) {
	router := newMessageRouter(&mockContactRepository{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/messages/abc/read", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Endpoint not found")
}

func TestMarkRead_StorageFailure(t *testing.T) {
	repo := &mockContactRepository{
		markReadFunc: func(ctx context.Context, id uint) (*models.ContactMessage, error) {
			return nil, fmt.Errorf("database locked")
		},
	}
	router := newMessageRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/messages/1/read", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "database locked")
}
