package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeHandler serves the marketing site landing page
type HomeHandler struct{}

// NewHomeHandler creates a new home handler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Index renders the landing page
func (h *HomeHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "Streamline Labs",
	})
}
