package handlers

import (
	"errors"
	"net/http"

	apperrors "erp-portal-backend/internal/errors"
	"erp-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles platform admin session endpoints
type AdminHandler struct {
	sessions service.SessionServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(sessions service.SessionServiceInterface) *AdminHandler {
	return &AdminHandler{sessions: sessions}
}

// AdminLoginRequest is the admin login payload
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/admin/login
// @Summary Open an admin session
// @Description Verifies the admin password and issues the session token backing the trusted tenant header
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body AdminLoginRequest true "Admin credentials"
// @Success 200 {object} service.SessionResponse
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 403 {object} ErrorResponse "Tenant blocked"
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	session, err := h.sessions.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case apperrors.IsAuthentication(err), apperrors.IsNotFound(err):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		case errors.Is(err, apperrors.ErrTenantBlocked):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, session)
}
