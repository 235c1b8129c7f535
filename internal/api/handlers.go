// Package api registers the service's HTTP routes and implements their
// handlers. Handlers validate query parameters, call the retriever and
// formatter, and hand every failure to the shared error boundary.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/yt-transcript-service/internal/apperr"
	"github.com/skillsenselab/yt-transcript-service/internal/format"
	"github.com/skillsenselab/yt-transcript-service/internal/logger"
	"github.com/skillsenselab/yt-transcript-service/internal/server"
	"github.com/skillsenselab/yt-transcript-service/internal/youtube"
)

// ServiceName identifies the service in health responses and telemetry.
const ServiceName = "yt-transcript-service"

// Retriever is the transcript source the handlers depend on.
type Retriever interface {
	GetTranscript(ctx context.Context, videoID string, opts youtube.FetchOptions) (*youtube.Transcript, error)
	ListLanguages(ctx context.Context, videoID string) ([]youtube.LanguageOption, error)
}

// Handler holds the handler dependencies.
type Handler struct {
	retriever Retriever
	log       *logger.Logger
}

// NewHandler creates a Handler backed by the given retriever.
func NewHandler(retriever Retriever, log *logger.Logger) *Handler {
	return &Handler{
		retriever: retriever,
		log:       log.WithComponent("api"),
	}
}

// Register mounts all routes on the engine.
func (h *Handler) Register(engine *gin.Engine) {
	engine.GET("/", h.Health)
	engine.GET("/health", h.Health)
	engine.GET("/transcript/:video_id", h.GetTranscript)
	engine.GET("/languages/:video_id", h.ListLanguages)
}

// Health reports service liveness. No side effects.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": ServiceName,
	})
}

// transcriptQuery holds the /transcript query parameters.
type transcriptQuery struct {
	Language           string `form:"language"`
	Format             string `form:"format"`
	PreserveFormatting bool   `form:"preserve_formatting"`
}

// GetTranscript handles GET /transcript/:video_id. The format parameter is
// validated before any upstream call so a bad request never reaches YouTube.
func (h *Handler) GetTranscript(c *gin.Context) {
	videoID := c.Param("video_id")

	var q transcriptQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		server.RespondWithError(c, apperr.InvalidInput(err.Error()))
		return
	}

	kind, err := format.Parse(q.Format)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	transcript, err := h.retriever.GetTranscript(c.Request.Context(), videoID, youtube.FetchOptions{
		Language:           q.Language,
		PreserveFormatting: q.PreserveFormatting,
	})
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	body, err := format.Render(transcript, kind)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	c.Data(http.StatusOK, kind.ContentType(), []byte(body))
}

// ListLanguages handles GET /languages/:video_id.
func (h *Handler) ListLanguages(c *gin.Context) {
	videoID := c.Param("video_id")

	options, err := h.retriever.ListLanguages(c.Request.Context(), videoID)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, options)
}
