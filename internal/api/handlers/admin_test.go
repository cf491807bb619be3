package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"erp-portal-backend/internal/database/models"
	apperrors "erp-portal-backend/internal/errors"
	"erp-portal-backend/internal/mocks"
	"erp-portal-backend/internal/service"
	"erp-portal-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AdminHandlerTestSuite defines the test suite for AdminHandler
type AdminHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockSessions *mocks.MockSessionServiceInterface
	handler      *AdminHandler
	httpSuite    *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AdminHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSessions = mocks.NewMockSessionServiceInterface(suite.ctrl)
	suite.handler = NewAdminHandler(suite.mockSessions)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/api/admin/login", suite.handler.Login)
}

// TearDownTest cleans up after each test
func (suite *AdminHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestLogin tests a successful admin login
func (suite *AdminHandlerTestSuite) TestLogin() {
	suite.mockSessions.EXPECT().
		Login("admin@demo.com.br", "senha-correta").
		Return(&service.SessionResponse{
			Token:     "jwt-token",
			ExpiresAt: time.Now().Add(8 * time.Hour),
			TenantKey: "demo",
			AdminName: "Maria Silva",
			Role:      models.AdminRoleTenant,
		}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/admin/login", map[string]interface{}{
		"email":    "admin@demo.com.br",
		"password": "senha-correta",
	})

	var session service.SessionResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &session)
	assert.Equal(suite.T(), "jwt-token", session.Token)
	assert.Equal(suite.T(), "demo", session.TenantKey)
	assert.Equal(suite.T(), models.AdminRoleTenant, session.Role)
}

// TestLoginWrongPassword tests the 401 answer for a rejected password
func (suite *AdminHandlerTestSuite) TestLoginWrongPassword() {
	suite.mockSessions.EXPECT().
		Login("admin@demo.com.br", "senha-errada").
		Return(nil, apperrors.ErrInvalidCredentials)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/admin/login", map[string]interface{}{
		"email":    "admin@demo.com.br",
		"password": "senha-errada",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Invalid email or password")
}

// TestLoginUnknownEmail tests that an unknown email also answers 401, never
// disclosing which part was wrong
func (suite *AdminHandlerTestSuite) TestLoginUnknownEmail() {
	suite.mockSessions.EXPECT().
		Login("ninguem@demo.com.br", "senha-qualquer").
		Return(nil, apperrors.ErrAdminNotFound)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/admin/login", map[string]interface{}{
		"email":    "ninguem@demo.com.br",
		"password": "senha-qualquer",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Invalid email or password")
}

// TestLoginBlockedTenant tests the 403 answer for a blocked tenant
func (suite *AdminHandlerTestSuite) TestLoginBlockedTenant() {
	suite.mockSessions.EXPECT().
		Login("admin@bloqueado.com.br", "senha-correta").
		Return(nil, apperrors.ErrTenantBlocked)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/admin/login", map[string]interface{}{
		"email":    "admin@bloqueado.com.br",
		"password": "senha-correta",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "tenant access is blocked")
}

// TestLoginMissingFields tests the 400 answer when required fields are absent
func (suite *AdminHandlerTestSuite) TestLoginMissingFields() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/admin/login", map[string]interface{}{
		"email": "admin@demo.com.br",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

// TestLoginStoreFault tests that unexpected faults become a generic 500
func (suite *AdminHandlerTestSuite) TestLoginStoreFault() {
	suite.mockSessions.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset by peer"))

	recorder := suite.httpSuite.MakeRequest("POST", "/api/admin/login", map[string]interface{}{
		"email":    "admin@demo.com.br",
		"password": "senha-correta",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Login failed")
}

// TestAdminHandlerTestSuite runs the test suite
func TestAdminHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}
