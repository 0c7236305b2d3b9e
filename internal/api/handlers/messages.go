package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/streamlinelabs/backend/internal/api/dto/common"
	"github.com/streamlinelabs/backend/internal/api/dto/v1/contact"
	"github.com/streamlinelabs/backend/internal/api/mapper"
	"github.com/streamlinelabs/backend/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
)

// MessageHandler serves the admin dashboard endpoints
type MessageHandler struct {
	repo repository.ContactRepository
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(repo repository.ContactRepository) *MessageHandler {
	return &MessageHandler{repo: repo}
}

// List returns stored contact messages, newest first. Out-of-range pages
// yield an empty messages array with the correct total and page count.
func (h *MessageHandler) List(c *gin.Context) {
	page := intQuery(c, "page", defaultPage)
	perPage := intQuery(c, "per_page", defaultPerPage)

	messages, total, err := h.repo.List(c.Request.Context(), page, perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, contact.ListResponse{
		Messages:    mapper.ToMessageResponses(messages),
		Total:       total,
		Pages:       int(math.Ceil(float64(total) / float64(perPage))),
		CurrentPage: page,
	})
}

// MarkRead marks a message as read. Marking twice succeeds both times.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(common.MsgEndpointNotFound))
		return
	}

	if _, err := h.repo.MarkRead(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, common.NewErrorResponse("Message not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, contact.MarkReadResponse{
		Success: true,
		Message: "Message marked as read",
	})
}

// intQuery parses an integer query parameter, falling back to the default
// for missing or malformed values
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
