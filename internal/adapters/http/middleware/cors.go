package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS header values. The gateway is a public, credential-free, GET-only
// API, so the policy is a permissive wildcard.
const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET, OPTIONS"
	corsAllowHeaders = "Content-Type"
)

// CORS returns middleware implementing the gateway's response contract:
// permissive CORS headers on every response, and Cache-Control: no-store on
// content responses so intermediaries never serve stale provider data.
//
// OPTIONS requests to any path are answered directly with 204 and an empty
// body; preflight never reaches the routing layer.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", corsAllowOrigin)
		c.Header("Access-Control-Allow-Methods", corsAllowMethods)
		c.Header("Access-Control-Allow-Headers", corsAllowHeaders)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
