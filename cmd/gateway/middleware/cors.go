package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS applies the gateway's cross-origin policy to every response: the
// request origin is echoed back only when it is allow-listed, otherwise the
// first allow-listed origin is used. Preflight requests are answered
// immediately without touching the handlers.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		allow := ""
		if len(allowedOrigins) > 0 {
			allow = allowedOrigins[0]
		}
		for _, o := range allowedOrigins {
			if o == origin {
				allow = origin
				break
			}
		}

		h := c.Writer.Header()
		if allow != "" {
			h.Set("Access-Control-Allow-Origin", allow)
		}
		h.Set("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.String(http.StatusOK, "OK")
			c.Abort()
			return
		}

		c.Next()
	}
}
