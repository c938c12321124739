package middleware

import (
	"context"
	"errors"
	"time"

	"go-jobportal-forms/internal/domain"
	"go-jobportal-forms/pkg/apperror"
	"go-jobportal-forms/pkg/logger"

	"github.com/gin-gonic/gin"
)

const HeaderFormInstance = "X-Form-Instance"

// SingleSubmission allows one in-flight submission per form instance. The
// instance is named by the X-Form-Instance header, falling back to the
// client IP. Guard errors other than a held key fail open.
func SingleSubmission(form string, guard domain.InflightGuard, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		instance := c.GetHeader(HeaderFormInstance)
		if instance == "" || len(instance) > 128 {
			instance = c.ClientIP()
		}
		key := form + ":" + instance

		token, err := guard.Acquire(c.Request.Context(), key, ttl)
		if errors.Is(err, domain.ErrSubmissionInFlight) {
			_ = c.Error(apperror.Conflict("A submission for this form is already in progress."))
			c.Abort()
			return
		}
		if err != nil {
			logger.Log.Warn("Inflight guard unavailable", "form", form, "error", err)
			c.Next()
			return
		}

		defer func() {
			// Release even if the request context was cancelled
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := guard.Release(ctx, key, token); err != nil {
				logger.Log.Warn("Inflight guard release failed", "form", form, "error", err)
			}
		}()

		c.Next()
	}
}
