package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"siasistenApi/internal/siasisten"
)

const (
	ctxCredentials = "credentials"
	ctxUsername    = "username"

	headerRequestID = "X-Request-ID"
	headerSession   = "X-Session-Id"
	headerCSRF      = "X-CSRFToken"
	headerUsername  = "X-Username"
)

// RequestID tags every request with an id, reusing the caller's when given.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(headerRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ev := log.Info()
		if c.Writer.Status() >= 500 {
			ev = log.Warn()
		}
		ev.Str("request_id", c.GetString(headerRequestID)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// AuthMiddleware reads the portal credentials from the Cookie header, or from
// X-Session-Id and X-CSRFToken when the browser cannot forward cookies.
func AuthMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		creds, err := siasisten.ParseCookieHeader(c.GetHeader("Cookie"))
		if err != nil {
			creds = siasisten.Credentials{
				SessionID: c.GetHeader(headerSession),
				CSRFToken: c.GetHeader(headerCSRF),
			}
		}
		if !creds.Valid() {
			respondError(c, log, siasisten.ErrSessionMissing)
			return
		}
		c.Set(ctxCredentials, creds)
		c.Set(ctxUsername, c.GetHeader(headerUsername))
		c.Next()
	}
}

func credentials(c *gin.Context) siasisten.Credentials {
	v, _ := c.Get(ctxCredentials)
	creds, _ := v.(siasisten.Credentials)
	return creds
}
