package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Alaswadi/cupperly-sub000/internal/domain"
	"github.com/Alaswadi/cupperly-sub000/internal/service"
)

const (
	ContextKeyTenantID   = "tenant_id"
	ContextKeyTenantSlug = "tenant_slug"

	// HeaderTenantID carries the tenant identity on every API request.
	HeaderTenantID = "X-Tenant-ID"
)

// TenantResolver returns Gin middleware that resolves the tenant from the
// X-Tenant-ID header, verifies it exists and is active, and injects it into
// the request context. Every data-plane route runs behind it.
func TenantResolver(tenantService service.TenantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(HeaderTenantID)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   gin.H{"code": "MISSING_TENANT", "message": "X-Tenant-ID header required"},
			})
			return
		}

		tenantID, err := uuid.Parse(header)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   gin.H{"code": "INVALID_TENANT", "message": "X-Tenant-ID must be a valid UUID"},
			})
			return
		}

		tenant, err := tenantService.GetByID(c.Request.Context(), tenantID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   gin.H{"code": "TENANT_NOT_FOUND", "message": "tenant not found"},
			})
			return
		}
		if !tenant.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "TENANT_INACTIVE", "message": "tenant is inactive"},
			})
			return
		}

		c.Set(ContextKeyTenantID, tenant.ID)
		c.Set(ContextKeyTenantSlug, tenant.Slug)
		c.Next()
	}
}

// GetTenantID extracts the tenant ID from the Gin context.
func GetTenantID(c *gin.Context) (uuid.UUID, error) {
	val, exists := c.Get(ContextKeyTenantID)
	if !exists {
		return uuid.Nil, domain.ErrNotFound
	}
	return val.(uuid.UUID), nil
}
