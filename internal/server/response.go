package server

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/yt-transcript-service/internal/apperr"
)

// RespondWithError inspects err: if it is an *apperr.Error the status and
// structured body are derived from it; anything else becomes a generic 500
// with a safe message.
func RespondWithError(c *gin.Context, err error) {
	if appErr, ok := apperr.As(err); ok {
		c.JSON(appErr.HTTPStatus, appErr.ToResponse())
		return
	}
	internal := apperr.Internal(err)
	c.JSON(internal.HTTPStatus, internal.ToResponse())
}
