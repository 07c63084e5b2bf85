package apperrors

import (
	"scholar_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// HandleError writes the uniform JSON error body {"error": <message>}.
// Unclassified errors become a generic 500; the underlying detail is
// logged server-side and never echoed to the caller.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "request failed", appErr,
			"path", c.Request.URL.Path,
			"code", string(appErr.Code),
		)
	}

	c.JSON(appErr.HTTPCode, gin.H{"error": appErr.Message})
}

// AsAppError attempts to interpret err as an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
