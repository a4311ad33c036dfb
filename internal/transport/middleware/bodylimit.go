package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimit makes reads past n bytes of the request body fail with
// *http.MaxBytesError.
func BodyLimit(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}
