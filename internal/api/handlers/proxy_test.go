package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"erp-portal-backend/internal/api/middleware"
	apperrors "erp-portal-backend/internal/errors"
	"erp-portal-backend/internal/mocks"
	"erp-portal-backend/internal/service"
	"erp-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProxyHandlerTestSuite defines the test suite for ProxyHandler
type ProxyHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockGateway *mocks.MockProxyGatewayInterface
	mockTokens  *mocks.MockTokenServiceInterface
	handler     *ProxyHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ProxyHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGateway = mocks.NewMockProxyGatewayInterface(suite.ctrl)
	suite.mockTokens = mocks.NewMockTokenServiceInterface(suite.ctrl)
	suite.handler = NewProxyHandler(suite.mockGateway, suite.mockTokens)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.HandleMethodNotAllowed = true
	suite.httpSuite.Router.NoMethod(suite.handler.MethodNotAllowed)

	// Stand-in for the resolver so credential scopes carry a tenant
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		middleware.SetTenantKey(c, "cliente1")
		c.Next()
	})

	proxy := suite.httpSuite.Router.Group("/api/proxy")
	{
		proxy.OPTIONS("", suite.handler.Options)
		proxy.GET("", suite.handler.Forward)
		proxy.POST("", suite.handler.Forward)
		proxy.PUT("", suite.handler.Forward)
		proxy.DELETE("", suite.handler.Forward)
	}
}

// TearDownTest cleans up after each test
func (suite *ProxyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProxyHandlerTestSuite) expectNoStoredCredential() {
	suite.mockTokens.EXPECT().
		Current(gomock.Any()).
		Return(nil, false)
}

// TestForwardRelaysUpstreamResponse tests that the upstream status and body
// pass through verbatim
func (suite *ProxyHandlerTestSuite) TestForwardRelaysUpstreamResponse() {
	suite.expectNoStoredCredential()
	suite.mockGateway.EXPECT().
		Forward(gomock.Any(), gomock.Any()).
		Return(&service.ForwardResult{
			Status: http.StatusOK,
			Body:   json.RawMessage(`{"data": [{"codigo": "PED-1"}]}`),
		}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/proxy?endpoint=erp.example.com:8051&path=api%2Fv1%2Fpedidos", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), `{"data": [{"codigo": "PED-1"}]}`, recorder.Body.String())
	assert.Equal(suite.T(), "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}

// TestForwardRelaysUpstreamRejection tests that a non-2xx upstream answer
// keeps its original status instead of becoming a gateway error
func (suite *ProxyHandlerTestSuite) TestForwardRelaysUpstreamRejection() {
	suite.expectNoStoredCredential()
	suite.mockGateway.EXPECT().
		Forward(gomock.Any(), gomock.Any()).
		Return(&service.ForwardResult{
			Status: http.StatusUnauthorized,
			Body:   json.RawMessage(`{"message": "token invalido"}`),
		}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/proxy?endpoint=erp.example.com&path=api%2Fv1%2Fpedidos", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(suite.T(), `{"message": "token invalido"}`, recorder.Body.String())
}

// TestForwardPassesRequestToGateway tests that the query parameters, method
// and bearer token reach the gateway unchanged
func (suite *ProxyHandlerTestSuite) TestForwardPassesRequestToGateway() {
	suite.expectNoStoredCredential()
	var captured *service.ForwardRequest
	suite.mockGateway.EXPECT().
		Forward(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, fwd *service.ForwardRequest) (*service.ForwardResult, error) {
			captured = fwd
			return &service.ForwardResult{Status: http.StatusOK, Body: json.RawMessage(`{}`)}, nil
		})

	suite.httpSuite.MakeRequest("POST", "/api/proxy?endpoint=erp.example.com:8051&path=api%2Fv1%2Fpedidos&token=tok-123", map[string]interface{}{
		"codigo": "PED-1",
	})

	assert.Equal(suite.T(), "erp.example.com:8051", captured.Endpoint)
	assert.Equal(suite.T(), "api/v1/pedidos", captured.Path)
	assert.Equal(suite.T(), "tok-123", captured.Token)
	assert.Equal(suite.T(), "POST", captured.Method)
	assert.Equal(suite.T(), "application/json", captured.ContentType)
}

// TestForwardMissingEndpoint tests the 400 answer when endpoint is absent;
// the gateway must not be called
func (suite *ProxyHandlerTestSuite) TestForwardMissingEndpoint() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/proxy?path=api%2Fv1%2Fpedidos", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "endpoint parameter is required")
}

// TestForwardMissingPath tests the 400 answer when path is absent
func (suite *ProxyHandlerTestSuite) TestForwardMissingPath() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/proxy?endpoint=erp.example.com", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "path parameter is required")
}

// TestForwardGatewayValidationError tests that gateway validation failures
// surface as 400 with the original message
func (suite *ProxyHandlerTestSuite) TestForwardGatewayValidationError() {
	suite.expectNoStoredCredential()
	suite.mockGateway.EXPECT().
		Forward(gomock.Any(), gomock.Any()).
		Return(nil, &apperrors.ValidationError{Field: "endpoint", Message: "endpoint is empty"})

	recorder := suite.httpSuite.MakeRequest("GET", "/api/proxy?endpoint=erp.example.com&path=x", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "endpoint is empty")
}

// TestForwardGatewayFault tests that transport faults become a generic 500
func (suite *ProxyHandlerTestSuite) TestForwardGatewayFault() {
	suite.expectNoStoredCredential()
	suite.mockGateway.EXPECT().
		Forward(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("dial tcp: connection refused"))

	recorder := suite.httpSuite.MakeRequest("GET", "/api/proxy?endpoint=erp.example.com&path=x", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Proxy request failed")
}

// TestForwardUsesStoredCredential tests that an omitted token falls back to
// the scope's stored credential after the expiry gate
func (suite *ProxyHandlerTestSuite) TestForwardUsesStoredCredential() {
	scope := service.CredentialScope{TenantKey: "cliente1", EnvironmentID: "env-1"}
	cred := &service.StoredCredential{
		AccessToken:   "tok-armazenado",
		ExpiresAt:     time.Now().Add(time.Hour),
		TenantKey:     "cliente1",
		EnvironmentID: "env-1",
	}
	suite.mockTokens.EXPECT().Current(scope).Return(cred, true)
	suite.mockTokens.EXPECT().EnsureValid(scope, gomock.Any()).Return(cred, nil)

	var captured *service.ForwardRequest
	suite.mockGateway.EXPECT().
		Forward(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, fwd *service.ForwardRequest) (*service.ForwardResult, error) {
			captured = fwd
			return &service.ForwardResult{Status: http.StatusOK, Body: json.RawMessage(`{}`)}, nil
		})

	recorder := suite.httpSuite.MakeRequest("GET", "/api/proxy?endpoint=erp.example.com&path=api%2Fv1%2Fpedidos&environment_id=env-1", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "tok-armazenado", captured.Token)
}

// TestForwardRefusesExpiredCredential tests that a known-expired stored
// credential never backs a proxied call
func (suite *ProxyHandlerTestSuite) TestForwardRefusesExpiredCredential() {
	scope := service.CredentialScope{TenantKey: "cliente1", EnvironmentID: "env-1"}
	expiredAt := time.Now().Add(-time.Minute)
	cred := &service.StoredCredential{
		AccessToken:   "tok-vencido",
		ExpiresAt:     expiredAt,
		TenantKey:     "cliente1",
		EnvironmentID: "env-1",
	}
	suite.mockTokens.EXPECT().Current(scope).Return(cred, true)
	suite.mockTokens.EXPECT().
		EnsureValid(scope, gomock.Any()).
		Return(nil, apperrors.NewCredentialExpiredError(expiredAt))

	recorder := suite.httpSuite.MakeRequest("GET", "/api/proxy?endpoint=erp.example.com&path=api%2Fv1%2Fpedidos&environment_id=env-1&token=tok-vencido", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Credential expired, authenticate again")
}

// TestForwardForeignTokenSkipsGate tests that a caller-supplied token that
// is not the stored credential passes through untouched
func (suite *ProxyHandlerTestSuite) TestForwardForeignTokenSkipsGate() {
	cred := &service.StoredCredential{
		AccessToken: "tok-armazenado",
		ExpiresAt:   time.Now().Add(-time.Minute),
		TenantKey:   "cliente1",
	}
	suite.mockTokens.EXPECT().Current(gomock.Any()).Return(cred, true)

	var captured *service.ForwardRequest
	suite.mockGateway.EXPECT().
		Forward(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, fwd *service.ForwardRequest) (*service.ForwardResult, error) {
			captured = fwd
			return &service.ForwardResult{Status: http.StatusOK, Body: json.RawMessage(`{}`)}, nil
		})

	recorder := suite.httpSuite.MakeRequest("GET", "/api/proxy?endpoint=erp.example.com&path=api%2Fv1%2Fpedidos&token=outro-token", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "outro-token", captured.Token)
}

// TestOptionsSkipsUpstream tests that CORS preflight answers locally
func (suite *ProxyHandlerTestSuite) TestOptionsSkipsUpstream() {
	recorder := suite.httpSuite.MakeRequest("OPTIONS", "/api/proxy", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "*", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(suite.T(), "GET, POST, PUT, DELETE, OPTIONS", recorder.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(suite.T(), "Authorization, Content-Type, X-Tenant", recorder.Header().Get("Access-Control-Allow-Headers"))
}

// TestMethodNotAllowed tests the 405 answer for unsupported methods
func (suite *ProxyHandlerTestSuite) TestMethodNotAllowed() {
	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/proxy?endpoint=erp.example.com&path=x", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusMethodNotAllowed, "Method not allowed")
}

// TestProxyHandlerTestSuite runs the test suite
func TestProxyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProxyHandlerTestSuite))
}
