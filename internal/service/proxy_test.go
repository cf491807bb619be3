package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "erp-portal-backend/internal/errors"
	"erp-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ProxyServiceTestSuite defines the test suite for ProxyService
type ProxyServiceTestSuite struct {
	suite.Suite
	proxyService *service.ProxyService
}

// SetupTest sets up the test suite
func (suite *ProxyServiceTestSuite) SetupTest() {
	suite.proxyService = service.NewProxyService(5 * time.Second)
}

func (suite *ProxyServiceTestSuite) endpointOf(server *httptest.Server) string {
	return strings.TrimPrefix(server.URL, "http://")
}

// TestForward tests a plain JSON round trip with the bearer token attached
func (suite *ProxyServiceTestSuite) TestForward() {
	var gotAuth, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"resultado":"ok"}`))
	}))
	defer server.Close()

	result, err := suite.proxyService.Forward(context.Background(), &service.ForwardRequest{
		Endpoint: suite.endpointOf(server),
		Path:     "/api/v1/movimentos",
		Token:    "token-abc",
		Method:   http.MethodGet,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, result.Status)
	assert.True(suite.T(), result.OK())
	assert.JSONEq(suite.T(), `{"resultado":"ok"}`, string(result.Body))
	assert.Equal(suite.T(), "Bearer token-abc", gotAuth)
	assert.Equal(suite.T(), "application/json", gotAccept)
}

// TestForwardRelaysUpstreamRejection tests that a non-2xx upstream answer is
// data, not an error, with status and body intact
func (suite *ProxyServiceTestSuite) TestForwardRelaysUpstreamRejection() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	result, err := suite.proxyService.Forward(context.Background(), &service.ForwardRequest{
		Endpoint: suite.endpointOf(server),
		Path:     "/api/connect/token",
		Method:   http.MethodPost,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusUnauthorized, result.Status)
	assert.False(suite.T(), result.OK())
	assert.JSONEq(suite.T(), `{"error":"invalid_grant"}`, string(result.Body))
}

// TestForwardWrapsTextBody tests that a plain-text upstream body is coerced
// into a message object
func (suite *ProxyServiceTestSuite) TestForwardWrapsTextBody() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("servidor indisponível"))
	}))
	defer server.Close()

	result, err := suite.proxyService.Forward(context.Background(), &service.ForwardRequest{
		Endpoint: suite.endpointOf(server),
		Path:     "/api/v1/produtos",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadGateway, result.Status)
	assert.JSONEq(suite.T(), `{"message":"servidor indisponível"}`, string(result.Body))
}

// TestForwardMissingParams tests that validation failures never reach the wire
func (suite *ProxyServiceTestSuite) TestForwardMissingParams() {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	_, err := suite.proxyService.Forward(context.Background(), &service.ForwardRequest{
		Endpoint: "",
		Path:     "/api/v1/produtos",
	})
	assert.True(suite.T(), apperrors.IsValidation(err))

	_, err = suite.proxyService.Forward(context.Background(), &service.ForwardRequest{
		Endpoint: suite.endpointOf(server),
		Path:     "",
	})
	assert.True(suite.T(), apperrors.IsValidation(err))

	assert.Equal(suite.T(), 0, calls)
}

// TestForwardUpstreamUnreachable tests the transport-failure error path
func (suite *ProxyServiceTestSuite) TestForwardUpstreamUnreachable() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := suite.endpointOf(server)
	server.Close()

	result, err := suite.proxyService.Forward(context.Background(), &service.ForwardRequest{
		Endpoint: endpoint,
		Path:     "/api/v1/produtos",
	})

	assert.Nil(suite.T(), result)
	assert.Error(suite.T(), err)
}

// TestProxyServiceTestSuite runs the test suite
func TestProxyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProxyServiceTestSuite))
}

func TestBuildTargetURL(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		path     string
		want     string
		wantErr  bool
	}{
		{"bare host", "erp.example.com:8051", "/api/v1/produtos", "http://erp.example.com:8051/api/v1/produtos", false},
		{"http prefix stripped", "http://erp.example.com", "/api/v1/produtos", "http://erp.example.com/api/v1/produtos", false},
		{"https prefix stripped", "https://erp.example.com", "/api/v1/produtos", "http://erp.example.com/api/v1/produtos", false},
		{"trailing slash trimmed", "erp.example.com/", "/api/v1/produtos", "http://erp.example.com/api/v1/produtos", false},
		{"path slash added", "erp.example.com", "api/v1/produtos", "http://erp.example.com/api/v1/produtos", false},
		{"empty endpoint", "", "/api/v1/produtos", "", true},
		{"empty path", "erp.example.com", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.BuildTargetURL(tt.endpoint, tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeBody(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"valid object", `{"a":1}`, `{"a":1}`},
		{"valid array", `[1,2,3]`, `[1,2,3]`},
		{"plain text wrapped", "erro interno", `{"message":"erro interno"}`},
		{"truncated json wrapped", `{"truncated": `, `{"message":"{\"truncated\":"}`},
		{"empty body", "", `{}`},
		{"whitespace body", "  \n ", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.NormalizeBody([]byte(tt.raw))
			assert.JSONEq(t, tt.want, string(got))
			assert.True(t, json.Valid(got))
		})
	}
}

func TestNormalizeCollection(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantKind service.CollectionKind
		wantLen  int
	}{
		{"bare array", `[{"id":1},{"id":2}]`, service.CollectionList, 2},
		{"data wrapper", `{"data":[{"id":1}]}`, service.CollectionList, 1},
		{"empty array", `[]`, service.CollectionEmpty, 0},
		{"empty data wrapper", `{"data":[]}`, service.CollectionEmpty, 0},
		{"single object", `{"id":1,"nome":"parafuso"}`, service.CollectionSingle, 0},
		{"null", `null`, service.CollectionEmpty, 0},
		{"empty object", `{}`, service.CollectionEmpty, 0},
		{"empty body", ``, service.CollectionEmpty, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.NormalizeCollection(json.RawMessage(tt.body))
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Len(t, got.Items, tt.wantLen)
			if got.Kind == service.CollectionSingle {
				assert.NotEmpty(t, got.Item)
			}
		})
	}
}
