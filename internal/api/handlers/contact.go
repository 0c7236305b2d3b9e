package handlers

import (
	"net/http"

	"github.com/streamlinelabs/backend/internal/api/constants"
	"github.com/streamlinelabs/backend/internal/api/dto/common"
	"github.com/streamlinelabs/backend/internal/api/dto/v1/contact"
	"github.com/streamlinelabs/backend/internal/logging"
	"github.com/streamlinelabs/backend/internal/models"
	"github.com/streamlinelabs/backend/internal/repository"
	"github.com/streamlinelabs/backend/internal/service"
	"github.com/streamlinelabs/backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const submitThanksMessage = "Thank you for your message! We'll get back to you within 24 hours."

// ContactHandler handles contact form submissions
type ContactHandler struct {
	repo   repository.ContactRepository
	mailer service.Mailer
}

// NewContactHandler creates a new contact handler
func NewContactHandler(repo repository.ContactRepository, mailer service.Mailer) *ContactHandler {
	return &ContactHandler{
		repo:   repo,
		mailer: mailer,
	}
}

// Submit persists a validated contact form submission and sends the email
// notifications. Notification failure never fails the request; the submitter
// still gets a success response once the message is stored.
func (h *ContactHandler) Submit(c *gin.Context) {
	logger := logging.GetLogger()

	// Set by the validation middleware, already trimmed
	value, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(common.MsgInternalError))
		return
	}
	req, ok := value.(*contact.ContactRequest)
	if !ok {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(common.MsgInternalError))
		return
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if clientIP := utils.ClientIP(c); clientIP != "" {
		msg.IPAddress = &clientIP
	}

	if err := h.repo.Create(c.Request.Context(), msg); err != nil {
		logger.Error("Failed to save contact message from %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(common.MsgInternalError))
		return
	}

	if err := h.mailer.SendContactNotification(msg); err != nil {
		// Best effort only: the message is stored, so the submission succeeds
		logger.Error("Email sending failed for message id=%d: %v", msg.ID, err)
	}

	c.JSON(http.StatusOK, contact.SubmitResponse{
		Success: true,
		Message: submitThanksMessage,
		ID:      msg.ID,
	})
}
