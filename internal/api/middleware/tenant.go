package middleware

import (
	"context"
	"strings"

	"erp-portal-backend/internal/config"
	"erp-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// TenantHeader is the authoritative tenant signal, set by an authenticated
// session
const TenantHeader = "X-Tenant"

// TenantQueryParam is the development-only tenant override
const TenantQueryParam = "tenant"

// TenantKeyKey is the gin context key holding the resolved tenant key
const TenantKeyKey = "tenant_key"

// ResolveTenantKey derives the tenant key from the request signals, highest
// precedence first: trusted header, query override (non-production only),
// platform subdomain (production only, header absent), development fallback.
// It returns false when nothing resolves; callers decide whether a tenant is
// required.
func ResolveTenantKey(header, query, host, platformDomain, devFallback string, production bool) (string, bool) {
	if header != "" {
		return strings.ToLower(header), true
	}

	if !production && query != "" {
		return strings.ToLower(query), true
	}

	if production {
		if key, ok := subdomainOf(host, platformDomain); ok {
			return key, true
		}
		return "", false
	}

	if devFallback != "" {
		return strings.ToLower(devFallback), true
	}
	return "", false
}

func subdomainOf(host, platformDomain string) (string, bool) {
	host = strings.ToLower(host)
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	suffix := "." + strings.ToLower(platformDomain)
	if !strings.HasSuffix(host, suffix) {
		return "", false
	}
	sub := strings.TrimSuffix(host, suffix)
	if sub == "" || strings.Contains(sub, ".") || sub == "www" {
		return "", false
	}
	return sub, true
}

// TenantResolver attaches the resolved tenant key to the request. It never
// rejects a request: only tenant-scoped operations enforce presence.
func TenantResolver(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := ResolveTenantKey(
			c.GetHeader(TenantHeader),
			c.Query(TenantQueryParam),
			c.Request.Host,
			cfg.PlatformDomain,
			cfg.DevTenantKey,
			cfg.IsProduction(),
		)
		if ok {
			SetTenantKey(c, key)
		}
		c.Next()
	}
}

// SetTenantKey writes the tenant key into the gin and request contexts
func SetTenantKey(c *gin.Context, key string) {
	c.Set(TenantKeyKey, key)
	ctx := context.WithValue(c.Request.Context(), logger.TenantKeyContextKey, key)
	c.Request = c.Request.WithContext(ctx)
}

// TenantKey reads the resolved tenant key from the gin context
func TenantKey(c *gin.Context) (string, bool) {
	key := c.GetString(TenantKeyKey)
	return key, key != ""
}
