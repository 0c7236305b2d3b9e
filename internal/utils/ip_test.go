package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		forwardedFor string
		remoteAddr   string
		want         string
	}{
		{"forwarded single", "203.0.113.7", "10.0.0.1:1234", "203.0.113.7"},
		{"forwarded list takes first", "203.0.113.7, 10.0.0.2, 10.0.0.3", "10.0.0.1:1234", "203.0.113.7"},
		{"forwarded with spaces", "  203.0.113.7 , 10.0.0.2", "10.0.0.1:1234", "203.0.113.7"},
		{"no header falls back to peer", "", "192.0.2.9:5678", "192.0.2.9"},
		{"peer without port", "", "192.0.2.9", "192.0.2.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/contact", nil)
			c.Request.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				c.Request.Header.Set("X-Forwarded-For", tt.forwardedFor)
			}

			if got := ClientIP(c); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
