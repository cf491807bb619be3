package service_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apperrors "erp-portal-backend/internal/errors"
	"erp-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	store        *service.CredentialStore
	tokenService *service.TokenService
	scope        service.CredentialScope
}

// SetupTest sets up the test suite
func (suite *TokenServiceTestSuite) SetupTest() {
	suite.store = service.NewCredentialStore()
	suite.tokenService = service.NewTokenService(service.NewProxyService(5*time.Second), suite.store)
	suite.scope = service.CredentialScope{TenantKey: "cliente1", EnvironmentID: "env-1"}
}

func tokenUpstream(calls *int64, delay time.Duration, grantTypes *[]string, mu *sync.Mutex) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			atomic.AddInt64(calls, 1)
		}
		if grantTypes != nil {
			body, _ := io.ReadAll(r.Body)
			values, _ := url.ParseQuery(string(body))
			mu.Lock()
			*grantTypes = append(*grantTypes, values.Get("grant_type"))
			mu.Unlock()
		}
		if delay > 0 {
			time.Sleep(delay)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-novo","refresh_token":"ref-novo","expires_in":3600}`))
	}))
}

// TestIssue tests the password-grant issue path
func (suite *TokenServiceTestSuite) TestIssue() {
	var mu sync.Mutex
	var grantTypes []string
	server := tokenUpstream(nil, 0, &grantTypes, &mu)
	defer server.Close()

	grant := url.Values{}
	grant.Set("username", "usuario")
	grant.Set("password", "senha")

	result, err := suite.tokenService.Issue(context.Background(), strings.TrimPrefix(server.URL, "http://"), grant, suite.scope)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, result.Status)
	require.NotNil(suite.T(), result.Credential)
	assert.Equal(suite.T(), "tok-novo", result.Credential.AccessToken)
	assert.Equal(suite.T(), "cliente1", result.Credential.TenantKey)
	assert.Equal(suite.T(), []string{"password"}, grantTypes)

	stored, ok := suite.tokenService.Current(suite.scope)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "tok-novo", stored.AccessToken)
}

// TestIssueUpstreamRejection tests that a rejected grant relays status and
// body without storing anything
func (suite *TokenServiceTestSuite) TestIssueUpstreamRejection() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	result, err := suite.tokenService.Issue(context.Background(), strings.TrimPrefix(server.URL, "http://"), url.Values{}, suite.scope)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, result.Status)
	assert.Nil(suite.T(), result.Credential)

	_, ok := suite.tokenService.Current(suite.scope)
	assert.False(suite.T(), ok)
}

// TestIssueMissingEndpoint tests rejection before any upstream call
func (suite *TokenServiceTestSuite) TestIssueMissingEndpoint() {
	result, err := suite.tokenService.Issue(context.Background(), "", url.Values{}, suite.scope)

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestRefresh tests the refresh-grant path replacing the stored credential
func (suite *TokenServiceTestSuite) TestRefresh() {
	var mu sync.Mutex
	var grantTypes []string
	server := tokenUpstream(nil, 0, &grantTypes, &mu)
	defer server.Close()

	suite.store.Store(&service.StoredCredential{
		AccessToken:   "tok-velho",
		RefreshToken:  "ref-velho",
		ExpiresAt:     time.Now().Add(time.Minute),
		TenantKey:     suite.scope.TenantKey,
		EnvironmentID: suite.scope.EnvironmentID,
	})

	result, err := suite.tokenService.Refresh(context.Background(), strings.TrimPrefix(server.URL, "http://"), suite.scope)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), result.Credential)
	assert.Equal(suite.T(), "tok-novo", result.Credential.AccessToken)
	assert.Equal(suite.T(), []string{"refresh_token"}, grantTypes)

	stored, ok := suite.tokenService.Current(suite.scope)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "tok-novo", stored.AccessToken)
}

// TestRefreshWithoutCredential tests refresh with nothing stored
func (suite *TokenServiceTestSuite) TestRefreshWithoutCredential() {
	result, err := suite.tokenService.Refresh(context.Background(), "erp.example.com", suite.scope)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCredentialNotFound)
}

// TestRefreshWithoutRefreshToken tests refresh on a credential issued without one
func (suite *TokenServiceTestSuite) TestRefreshWithoutRefreshToken() {
	suite.store.Store(&service.StoredCredential{
		AccessToken:   "tok-velho",
		ExpiresAt:     time.Now().Add(time.Minute),
		TenantKey:     suite.scope.TenantKey,
		EnvironmentID: suite.scope.EnvironmentID,
	})

	result, err := suite.tokenService.Refresh(context.Background(), "erp.example.com", suite.scope)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRefreshTokenMissing)
}

// TestRefreshFailureDiscardsExpired tests that an expired credential whose
// refresh is rejected gets discarded, forcing re-authentication
func (suite *TokenServiceTestSuite) TestRefreshFailureDiscardsExpired() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	suite.store.Store(&service.StoredCredential{
		AccessToken:   "tok-velho",
		RefreshToken:  "ref-velho",
		ExpiresAt:     time.Now().Add(-time.Minute),
		TenantKey:     suite.scope.TenantKey,
		EnvironmentID: suite.scope.EnvironmentID,
	})

	result, err := suite.tokenService.Refresh(context.Background(), strings.TrimPrefix(server.URL, "http://"), suite.scope)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusUnauthorized, result.Status)
	assert.Nil(suite.T(), result.Credential)

	_, ok := suite.tokenService.Current(suite.scope)
	assert.False(suite.T(), ok)
}

// TestRefreshSingleFlight tests that concurrent refreshes of one scope reach
// the upstream exactly once
func (suite *TokenServiceTestSuite) TestRefreshSingleFlight() {
	var calls int64
	server := tokenUpstream(&calls, 150*time.Millisecond, nil, nil)
	defer server.Close()

	suite.store.Store(&service.StoredCredential{
		AccessToken:   "tok-velho",
		RefreshToken:  "ref-velho",
		ExpiresAt:     time.Now().Add(time.Minute),
		TenantKey:     suite.scope.TenantKey,
		EnvironmentID: suite.scope.EnvironmentID,
	})

	endpoint := strings.TrimPrefix(server.URL, "http://")
	var wg sync.WaitGroup
	results := make([]*service.TokenResult, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := suite.tokenService.Refresh(context.Background(), endpoint, suite.scope)
			require.NoError(suite.T(), err)
			results[i] = res
		}(i)
	}
	wg.Wait()

	assert.Equal(suite.T(), int64(1), atomic.LoadInt64(&calls))
	for _, res := range results {
		require.NotNil(suite.T(), res)
		require.NotNil(suite.T(), res.Credential)
		assert.Equal(suite.T(), "tok-novo", res.Credential.AccessToken)
	}
}

// TestEnsureValid tests the expiry gate proxied calls must pass
func (suite *TokenServiceTestSuite) TestEnsureValid() {
	now := time.Now()

	_, err := suite.tokenService.EnsureValid(suite.scope, now)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCredentialNotFound)

	suite.store.Store(&service.StoredCredential{
		AccessToken:   "tok",
		ExpiresAt:     now.Add(time.Hour),
		TenantKey:     suite.scope.TenantKey,
		EnvironmentID: suite.scope.EnvironmentID,
	})
	cred, err := suite.tokenService.EnsureValid(suite.scope, now)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "tok", cred.AccessToken)

	_, err = suite.tokenService.EnsureValid(suite.scope, now.Add(2*time.Hour))
	assert.True(suite.T(), apperrors.IsCredentialExpired(err))
}

// TestTimeRemaining tests the display bucketing and the expiring-soon flag
func (suite *TokenServiceTestSuite) TestTimeRemaining() {
	now := time.Now()

	tests := []struct {
		name         string
		expiresIn    time.Duration
		expired      bool
		expiringSoon bool
		label        string
	}{
		{"hours left", 2*time.Hour + 5*time.Minute, false, false, "2h 5min"},
		{"eleven minutes", 11 * time.Minute, false, false, "11min 0s"},
		{"nine minutes", 9 * time.Minute, false, true, "9min 0s"},
		{"seconds only", 42 * time.Second, false, true, "42s"},
		{"expired", -time.Second, true, false, "Expirado"},
		{"exactly now", 0, true, false, "Expirado"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			cred := &service.StoredCredential{ExpiresAt: now.Add(tt.expiresIn)}
			r := suite.tokenService.TimeRemaining(cred, now)
			assert.Equal(suite.T(), tt.expired, r.Expired)
			assert.Equal(suite.T(), tt.expiringSoon, r.ExpiringSoon)
			assert.Equal(suite.T(), tt.label, r.Label)
		})
	}
}

// TestScopesAreIsolated tests that credentials never leak across tenants or
// environments
func (suite *TokenServiceTestSuite) TestScopesAreIsolated() {
	suite.store.Store(&service.StoredCredential{
		AccessToken:   "tok-cliente1",
		ExpiresAt:     time.Now().Add(time.Hour),
		TenantKey:     "cliente1",
		EnvironmentID: "env-1",
	})

	_, ok := suite.tokenService.Current(service.CredentialScope{TenantKey: "cliente2", EnvironmentID: "env-1"})
	assert.False(suite.T(), ok)
	_, ok = suite.tokenService.Current(service.CredentialScope{TenantKey: "cliente1", EnvironmentID: "env-2"})
	assert.False(suite.T(), ok)
	cred, ok := suite.tokenService.Current(service.CredentialScope{TenantKey: "cliente1", EnvironmentID: "env-1"})
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "tok-cliente1", cred.AccessToken)
}

// TestTokenServiceTestSuite runs the test suite
func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
