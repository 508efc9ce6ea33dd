package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func requestContext(t *testing.T, remoteAddr string, headers map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestGetClientIP(t *testing.T) {
	t.Run("ForwardedForChain", func(t *testing.T) {
		c := requestContext(t, "10.0.0.1:1234", map[string]string{
			"X-Forwarded-For": "203.0.113.7, 10.0.0.2",
		})
		if got := getClientIP(c); got != "203.0.113.7" {
			t.Errorf("Expected first forwarded address, got %s", got)
		}
	})

	t.Run("RealIPFallback", func(t *testing.T) {
		c := requestContext(t, "10.0.0.1:1234", map[string]string{
			"X-Real-IP": "198.51.100.4",
		})
		if got := getClientIP(c); got != "198.51.100.4" {
			t.Errorf("Expected X-Real-IP address, got %s", got)
		}
	})

	t.Run("RemoteAddrStripsPort", func(t *testing.T) {
		c := requestContext(t, "192.0.2.9:5555", nil)
		if got := getClientIP(c); got != "192.0.2.9" {
			t.Errorf("Expected host without port, got %s", got)
		}
	})
}
