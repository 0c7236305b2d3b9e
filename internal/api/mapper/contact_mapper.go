package mapper

import (
	"time"

	"github.com/streamlinelabs/backend/internal/api/dto/v1/contact"
	"github.com/streamlinelabs/backend/internal/models"
)

// ToMessageResponse converts a stored contact message to its wire representation
func ToMessageResponse(m *models.ContactMessage) contact.MessageResponse {
	return contact.MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
		IsRead:    m.IsRead,
		IPAddress: m.IPAddress,
	}
}

// ToMessageResponses converts a page of contact messages
func ToMessageResponses(msgs []models.ContactMessage) []contact.MessageResponse {
	responses := make([]contact.MessageResponse, len(msgs))
	for i := range msgs {
		responses[i] = ToMessageResponse(&msgs[i])
	}
	return responses
}
