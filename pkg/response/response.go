package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/luismlg/casfid-technical-test/pkg/errors"
)

// Response helpers keep the wire shapes in one place:
//   - single resources:  {"data": {...}}
//   - collections:       {"data": [...], "count": n}
//   - mutations:         {"message": "..."}
//   - failures:          {"error": "..."} with the mapped HTTP status

// Data responds with a resource wrapped in a data envelope.
func Data(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

// List responds with a collection and its element count.
func List(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, gin.H{"data": data, "count": count})
}

// Message responds with a confirmation message.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Error maps err to its HTTP status and responds with the client-safe message.
// Internal causes are logged, never returned to the client.
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	if appErr.Err != nil {
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"code", appErr.Code,
			"error", appErr.Err,
		)
	}

	c.JSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message})
}

// ErrorWithStatus responds with an explicit status and error message,
// bypassing the AppError mapping.
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
