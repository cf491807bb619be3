package handlers

import (
	"net/http"
	"time"

	"erp-portal-backend/internal/api/middleware"
	apperrors "erp-portal-backend/internal/errors"
	"erp-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProxyHandler exposes the generic forwarding endpoint. Responses always
// carry permissive cross-origin headers: the proxied frontends run on
// tenant hosts, not on the portal origin.
type ProxyHandler struct {
	gateway service.ProxyGatewayInterface
	tokens  service.TokenServiceInterface
}

// NewProxyHandler creates a new proxy handler
func NewProxyHandler(gateway service.ProxyGatewayInterface, tokens service.TokenServiceInterface) *ProxyHandler {
	return &ProxyHandler{gateway: gateway, tokens: tokens}
}

// Options short-circuits CORS preflight without touching the upstream
func (h *ProxyHandler) Options(c *gin.Context) {
	applyProxyCORS(c)
	c.Status(http.StatusOK)
}

// Forward handles /api/proxy for every supported method
// @Summary Forward a request to a tenant's ERP backend
// @Description Relays the call to the given endpoint and path, attaching the bearer token when present. Upstream status codes pass through verbatim; bodies are normalized to JSON.
// @Tags proxy
// @Produce json
// @Param endpoint query string true "Target host[:port]"
// @Param path query string true "URL-encoded ERP path"
// @Param token query string false "Bearer token"
// @Success 200 {object} map[string]interface{} "Upstream response"
// @Failure 400 {object} ErrorResponse "endpoint or path missing"
// @Failure 401 {object} ErrorResponse "Stored credential expired"
// @Failure 405 {object} ErrorResponse "Method not supported"
// @Failure 500 {object} ErrorResponse "Internal fault"
// @Router /proxy [get]
func (h *ProxyHandler) Forward(c *gin.Context) {
	applyProxyCORS(c)

	endpoint := c.Query("endpoint")
	path := c.Query("path")
	if endpoint == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endpoint parameter is required"})
		return
	}
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path parameter is required"})
		return
	}

	token, err := h.resolveToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credential expired, authenticate again"})
		return
	}

	result, err := h.gateway.Forward(c.Request.Context(), &service.ForwardRequest{
		Endpoint:    endpoint,
		Path:        path,
		Token:       token,
		Method:      c.Request.Method,
		Body:        c.Request.Body,
		ContentType: c.GetHeader("Content-Type"),
	})
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// Gateway faults stay generic; upstream rejections never land here.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Proxy request failed"})
		return
	}

	c.Data(result.Status, "application/json", result.Body)
}

// MethodNotAllowed answers methods outside the declared supported set
func (h *ProxyHandler) MethodNotAllowed(c *gin.Context) {
	applyProxyCORS(c)
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}

// resolveToken picks the bearer token backing the upstream call. When the
// caller's scope holds a stored credential and the caller either omitted
// the token or sent that same credential, the expiry gate runs first: a
// known-expired credential never backs a proxied call. A foreign token is
// passed through untouched.
func (h *ProxyHandler) resolveToken(c *gin.Context) (string, error) {
	token := c.Query("token")
	tenant, _ := middleware.TenantKey(c)
	scope := service.CredentialScope{TenantKey: tenant, EnvironmentID: c.Query("environment_id")}

	cred, ok := h.tokens.Current(scope)
	if !ok || (token != "" && token != cred.AccessToken) {
		return token, nil
	}

	valid, err := h.tokens.EnsureValid(scope, time.Now())
	if err != nil {
		return "", err
	}
	return valid.AccessToken, nil
}

func applyProxyCORS(c *gin.Context) {
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Tenant")
}
