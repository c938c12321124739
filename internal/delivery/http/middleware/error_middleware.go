package middleware

import (
	"errors"
	"net/http"

	"go-jobportal-forms/internal/delivery/http/response"
	"go-jobportal-forms/internal/domain"
	"go-jobportal-forms/pkg/apperror"
	"go-jobportal-forms/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Warn("Request failed",
					"kind", appErr.Kind,
					"path", c.FullPath(),
					"error", appErr.Err,
					"request_id", c.GetString(string(domain.KeyRequestID)),
				)
			}
			if appErr.Data != nil {
				response.ErrorWithData(c, appErr.Code, appErr.Message, appErr.Data)
				return
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// Never expose internal error details to clients
		logger.Log.Error("Internal Server Error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
