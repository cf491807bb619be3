package handlers

import (
	"net/http"
	"net/url"
	"time"

	"erp-portal-backend/internal/api/middleware"
	apperrors "erp-portal-backend/internal/errors"
	"erp-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the ERP credential lifecycle: exchange, refresh and
// expiry status, all scoped to the resolved tenant and environment.
type AuthHandler struct {
	tokens service.TokenServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(tokens service.TokenServiceInterface) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// LoginRequest is the credential exchange payload
type LoginRequest struct {
	Endpoint      string `json:"endpoint"`
	EnvironmentID string `json:"environment_id"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	ClientID      string `json:"client_id,omitempty"`
}

// RefreshRequest is the credential refresh payload
type RefreshRequest struct {
	Endpoint      string `json:"endpoint"`
	EnvironmentID string `json:"environment_id"`
}

// Login handles POST /api/auth/login
// @Summary Exchange credentials for an ERP bearer token
// @Description Calls the environment's token endpoint with a password grant. Upstream status and body are relayed unchanged on failure.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} service.TokenResult
// @Failure 400 {object} ErrorResponse "endpoint missing"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.Endpoint == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endpoint is required"})
		return
	}

	grant := url.Values{}
	grant.Set("username", req.Username)
	grant.Set("password", req.Password)
	if req.ClientID != "" {
		grant.Set("client_id", req.ClientID)
	}

	result, err := h.tokens.Issue(c.Request.Context(), req.Endpoint, grant, h.scope(c, req.EnvironmentID))
	if err != nil {
		respondTokenError(c, err)
		return
	}

	c.Data(result.Status, "application/json", result.Body)
}

// Refresh handles POST /api/auth/refresh
// @Summary Refresh the stored ERP credential
// @Description Re-issues the bearer token with a refresh grant, single-flight per tenant environment
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh scope"
// @Success 200 {object} service.TokenResult
// @Failure 400 {object} ErrorResponse "endpoint missing"
// @Failure 401 {object} ErrorResponse "No credential to refresh"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.Endpoint == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endpoint is required"})
		return
	}

	result, err := h.tokens.Refresh(c.Request.Context(), req.Endpoint, h.scope(c, req.EnvironmentID))
	if err != nil {
		respondTokenError(c, err)
		return
	}

	c.Data(result.Status, "application/json", result.Body)
}

// Status handles GET /api/auth/status
// @Summary Report the stored credential's remaining lifetime
// @Tags auth
// @Produce json
// @Param environment_id query string false "Environment ID"
// @Success 200 {object} service.Remaining
// @Failure 404 {object} ErrorResponse "No stored credential"
// @Router /auth/status [get]
func (h *AuthHandler) Status(c *gin.Context) {
	cred, ok := h.tokens.Current(h.scope(c, c.Query("environment_id")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no stored credential"})
		return
	}

	c.JSON(http.StatusOK, h.tokens.TimeRemaining(cred, time.Now()))
}

func (h *AuthHandler) scope(c *gin.Context, envID string) service.CredentialScope {
	tenant, _ := middleware.TenantKey(c)
	return service.CredentialScope{TenantKey: tenant, EnvironmentID: envID}
}

func respondTokenError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err), apperrors.IsCredentialExpired(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credential expired, authenticate again"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token exchange failed"})
	}
}
