package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader  = "X-Request-ID"
	disclaimerHeader = "X-Medical-Disclaimer"
	disclaimerNotice = "Educational information only. Not medical advice."
)

// requestID tags every request with an identifier, honoring one supplied by
// the caller.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// medicalDisclaimer attaches the disclaimer notice to every response.
func medicalDisclaimer() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set(disclaimerHeader, disclaimerNotice)
		c.Next()
	}
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
