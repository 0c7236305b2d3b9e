package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientIP extracts the originating client address, respecting reverse proxies.
// X-Forwarded-For can be a comma-separated list (client, proxy1, proxy2, ...);
// the first entry is the client. Falls back to the connection's peer address.
func ClientIP(c *gin.Context) string {
	forwardedFor := c.GetHeader("X-Forwarded-For")
	if forwardedFor != "" {
		ips := strings.Split(forwardedFor, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	remote := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(remote); err == nil {
		return host
	}
	return remote
}
