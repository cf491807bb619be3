package handlers

import (
	"net/http"
	"strconv"

	apperrors "erp-portal-backend/internal/errors"
	"erp-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantHandler handles HTTP requests for tenant configuration
type TenantHandler struct {
	service service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(service service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{service: service}
}

// Register handles POST /api/tenant/register
// @Summary Register a new tenant
// @Description Create a tenant with its admin account and a default environment
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body service.RegisterTenantRequest true "Registration data"
// @Success 201 {object} service.TenantResponse "Successfully registered tenant"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Subdomain or admin email already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tenant/register [post]
func (h *TenantHandler) Register(c *gin.Context) {
	var req service.RegisterTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tenant, err := h.service.Register(&req)
	if err != nil {
		respondTenantError(c, err, "Failed to register tenant")
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// GetTenant handles GET /api/tenant/:id
// @Summary Get tenant by ID
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} service.TenantResponse
// @Failure 400 {object} ErrorResponse "Invalid tenant ID"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security BearerAuth
// @Router /tenant/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	id, ok := parseTenantID(c)
	if !ok {
		return
	}

	tenant, err := h.service.GetByID(id)
	if err != nil {
		respondTenantError(c, err, "Failed to get tenant")
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// ListTenants handles GET /api/tenant
// @Summary List tenants
// @Tags tenants
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.TenantListResponse
// @Security BearerAuth
// @Router /tenant [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "page_size", 20)

	list, err := h.service.List(page, pageSize)
	if err != nil {
		respondTenantError(c, err, "Failed to list tenants")
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateTenant handles PUT /api/tenant/:id
// @Summary Update tenant configuration
// @Description Apply partial company updates, replace the environment list, or change admin details as one atomic unit
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param tenant body service.UpdateTenantRequest true "Partial update"
// @Success 200 {object} service.TenantResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security BearerAuth
// @Router /tenant/{id} [put]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	id, ok := parseTenantID(c)
	if !ok {
		return
	}

	var req service.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tenant, err := h.service.Update(id, &req)
	if err != nil {
		respondTenantError(c, err, "Failed to update tenant")
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// CheckSubdomain handles GET /api/tenant/check-subdomain/:key
// @Summary Check subdomain availability
// @Tags tenants
// @Produce json
// @Param key path string true "Candidate subdomain"
// @Success 200 {object} map[string]interface{} "Availability result"
// @Router /tenant/check-subdomain/{key} [get]
func (h *TenantHandler) CheckSubdomain(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Subdomain is required"})
		return
	}

	available, err := h.service.CheckSubdomainAvailability(key)
	if err != nil {
		respondTenantError(c, err, "Failed to check subdomain")
		return
	}

	c.JSON(http.StatusOK, gin.H{"subdomain": key, "available": available})
}

// AddEnvironment handles POST /api/tenant/:id/environments
// @Summary Add an environment
// @Tags environments
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param environment body service.EnvironmentInput true "Environment data"
// @Success 201 {object} service.TenantResponse
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security BearerAuth
// @Router /tenant/{id}/environments [post]
func (h *TenantHandler) AddEnvironment(c *gin.Context) {
	id, ok := parseTenantID(c)
	if !ok {
		return
	}

	var input service.EnvironmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tenant, err := h.service.AddEnvironment(id, &input)
	if err != nil {
		respondTenantError(c, err, "Failed to add environment")
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// UpdateEnvironment handles PUT /api/tenant/:id/environments/:envId
// @Summary Update one environment
// @Tags environments
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param envId path string true "Environment ID"
// @Param environment body service.EnvironmentInput true "Environment data"
// @Success 200 {object} service.TenantResponse
// @Failure 404 {object} ErrorResponse "Tenant or environment not found"
// @Security BearerAuth
// @Router /tenant/{id}/environments/{envId} [put]
func (h *TenantHandler) UpdateEnvironment(c *gin.Context) {
	id, ok := parseTenantID(c)
	if !ok {
		return
	}

	envID := c.Param("envId")
	var input service.EnvironmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tenant, err := h.service.UpdateEnvironment(id, envID, &input)
	if err != nil {
		respondTenantError(c, err, "Failed to update environment")
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// RemoveEnvironment handles DELETE /api/tenant/:id/environments/:envId
// @Summary Remove one environment
// @Tags environments
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param envId path string true "Environment ID"
// @Success 200 {object} service.TenantResponse
// @Failure 404 {object} ErrorResponse "Tenant or environment not found"
// @Security BearerAuth
// @Router /tenant/{id}/environments/{envId} [delete]
func (h *TenantHandler) RemoveEnvironment(c *gin.Context) {
	id, ok := parseTenantID(c)
	if !ok {
		return
	}

	tenant, err := h.service.RemoveEnvironment(id, c.Param("envId"))
	if err != nil {
		respondTenantError(c, err, "Failed to remove environment")
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// SyncLegacy handles POST /api/tenant/:id/sync-legacy
// @Summary Import legacy configuration
// @Description Import environments from the admin's legacy configuration record, skipping name collisions
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} service.LegacySyncResult
// @Failure 404 {object} ErrorResponse "Tenant, admin or legacy record not found"
// @Security BearerAuth
// @Router /tenant/{id}/sync-legacy [post]
func (h *TenantHandler) SyncLegacy(c *gin.Context) {
	id, ok := parseTenantID(c)
	if !ok {
		return
	}

	result, err := h.service.SyncLegacyConfig(id)
	if err != nil {
		respondTenantError(c, err, "Failed to sync legacy configuration")
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseTenantID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

func respondTenantError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func queryInt(c *gin.Context, name string, fallback int) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
