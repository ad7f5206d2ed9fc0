package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger attaches a request-scoped zerolog logger to the request
// context and logs one line per served request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		rid := req.Header.Get(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Header(RequestIDHeader, rid)

		logger := log.With().
			Str("request_id", rid).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("remote_ip", c.ClientIP()).
			Logger()
		c.Request = req.WithContext(logger.WithContext(req.Context()))

		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start)

		switch {
		case status >= 500 || len(c.Errors) > 0:
			logger.Error().
				Str("errors", c.Errors.String()).
				Int("status", status).
				Dur("duration", duration).
				Msg("http request failed")
		case status >= 400:
			logger.Warn().
				Int("status", status).
				Dur("duration", duration).
				Msg("http request rejected")
		default:
			logger.Info().
				Int("status", status).
				Dur("duration", duration).
				Msg("http request served")
		}
	}
}
