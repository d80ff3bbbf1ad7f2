package web

import (
	"net/http"
	"time"

	"github.com/MGTheTrain/contact-web/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request through log
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.With(
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		).Info("Handled request")
	}
}

// ErrorHandler logs the errors handlers attached to the context and answers with
// 500 when the handler aborted without writing a response.
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, e := range c.Errors {
			log.Error("Request ", c.Request.Method, " ", c.Request.URL.Path, " failed: ", e.Err)
		}

		if !c.Writer.Written() {
			c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
	}
}

// Recovery turns a panic into a logged 500 response
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("Recovered from panic on ", c.Request.URL.Path, ": ", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
