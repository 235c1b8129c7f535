package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/yt-transcript-service/internal/logger"
)

func requestIDRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())

	var seen string
	engine.GET("/", func(c *gin.Context) {
		seen = c.GetString(logger.FieldRequestID)
		c.Status(http.StatusOK)
	})
	return engine, &seen
}

func TestRequestID_Generated(t *testing.T) {
	engine, seen := requestIDRouter()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(HeaderRequestID)
	if id == "" {
		t.Fatal("expected a generated request ID header")
	}
	if *seen != id {
		t.Errorf("context value %q does not match response header %q", *seen, id)
	}
}

func TestRequestID_PropagatesInboundID(t *testing.T) {
	engine, seen := requestIDRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "client-supplied-id")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if got := w.Header().Get(HeaderRequestID); got != "client-supplied-id" {
		t.Errorf("expected inbound ID echoed back, got %q", got)
	}
	if *seen != "client-supplied-id" {
		t.Errorf("expected inbound ID in context, got %q", *seen)
	}
}
