package middleware

import (
	"net/http"
	"strings"

	"github.com/streamlinelabs/backend/internal/api/constants"
	"github.com/streamlinelabs/backend/internal/api/dto/common"
	"github.com/streamlinelabs/backend/internal/api/dto/v1/contact"
	"github.com/streamlinelabs/backend/internal/api/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct {
	validate *validator.Validate
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	validate := validator.New()
	validation.RegisterValidators(validate)
	return &ValidationMiddleware{
		validate: validate,
	}
}

// ValidateContactRequest validates a contact form submission and stores the
// trimmed request in the context for the handler. A missing or unparsable
// body is reported separately from empty fields.
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, common.NewErrorResponse(common.MsgNoData))
			return
		}

		// Fields are stored and validated trimmed, never as submitted
		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)
		req.Message = strings.TrimSpace(req.Message)

		if err := m.validate.Struct(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, common.NewErrorResponse(validation.FailureMessage(err)))
			return
		}

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}
