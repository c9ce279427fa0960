package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPError struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// Respond writes err as the JSON error body. Errors that are not AppError
// are logged and hidden behind a generic 500.
func Respond(c *gin.Context, log *zap.Logger, err error) {
	if ae, ok := As(err); ok {
		c.JSON(ae.Status(), HTTPError{
			Code:    ae.Code,
			Message: ae.Message,
			Fields:  ae.Fields,
		})
		return
	}

	log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	Internal(c, "internal_error", "Internal server error.")
}

// Abort is Respond for middleware: the handler chain stops after it.
func Abort(c *gin.Context, log *zap.Logger, err error) {
	Respond(c, log, err)
	c.Abort()
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}
