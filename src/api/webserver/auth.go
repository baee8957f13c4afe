package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stake-plus/agenthub/src/api/auth"
)

const ctxTenant = "tenant_id"

// RequireTenant resolves the X-API-Key header to a tenant id. A
// missing header is a malformed request (400); an unrecognized key is
// an authentication failure (401).
func RequireTenant(resolver auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")
		if key == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"err": "missing X-API-Key header"})
			return
		}
		tenant, err := resolver.Resolve(key)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"err": "Invalid API Key"})
			return
		}
		c.Set(ctxTenant, tenant)
		c.Next()
	}
}

func tenantID(c *gin.Context) string {
	return c.GetString(ctxTenant)
}

func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": "invalid id"})
		return 0, false
	}
	return id, true
}
