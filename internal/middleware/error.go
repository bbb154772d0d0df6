package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "finpace/internal/errors"
	"finpace/internal/logger"
)

// ErrorHandler renders the last error a handler attached with c.Error, if
// the handler has not written a response already.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		RenderError(c, c.Errors.Last().Err)
	}
}

// RenderError writes err as {"error":{"code","message"}}. Errors that are not
// an *AppError become INTERNAL_ERROR and their text never reaches the client.
func RenderError(c *gin.Context, err error) {
	appErr := resolve(c, err)
	c.JSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

// abortWithError renders err and stops the handler chain.
func abortWithError(c *gin.Context, err error) {
	RenderError(c, err)
	c.Abort()
}

func resolve(c *gin.Context, err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		logAppError(c, appErr)
		return appErr
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"request_id", c.GetString(requestIDKey),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	return apperrors.ErrInternalServer
}

// logAppError logs app errors that carry an internal cause. A corrupted
// category hierarchy is logged where it is detected, so it is skipped here.
func logAppError(c *gin.Context, appErr *apperrors.AppError) {
	if appErr.Internal == nil || appErr.Code == apperrors.ErrCategoryStructureCorrupt.Code {
		return
	}
	logger.Get().Errorw("app error",
		"code", appErr.Code,
		"message", appErr.Message,
		"internal", appErr.Internal.Error(),
		"request_id", c.GetString(requestIDKey),
		"path", c.Request.URL.Path,
	)
}
