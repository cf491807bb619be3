package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "erp-portal-backend/internal/errors"
	"erp-portal-backend/internal/logger"

	"golang.org/x/sync/singleflight"
)

// tokenPath is the token endpoint convention shared by all ERP installations
const tokenPath = "/api/connect/token"

// expiringSoonThreshold flags credentials close to expiry for the UI
const expiringSoonThreshold = 10 * time.Minute

// TokenService manages the credential lifecycle: issue through the gateway,
// track expiry, refresh single-flight, invalidate on failure.
type TokenService struct {
	proxy ProxyGatewayInterface
	store *CredentialStore
	group singleflight.Group
}

// NewTokenService creates a new token service
func NewTokenService(proxy ProxyGatewayInterface, store *CredentialStore) *TokenService {
	return &TokenService{proxy: proxy, store: store}
}

// TokenResult relays the upstream answer of a token exchange. Credential is
// set only on success.
type TokenResult struct {
	Status     int               `json:"status"`
	Body       json.RawMessage   `json:"body"`
	Credential *StoredCredential `json:"credential,omitempty"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// Issue exchanges password-grant credentials at the environment's token
// endpoint. Upstream failures come back with their original status and body.
func (s *TokenService) Issue(ctx context.Context, endpoint string, grant url.Values, scope CredentialScope) (*TokenResult, error) {
	if endpoint == "" {
		return nil, apperrors.NewValidationError("endpoint", "is required")
	}

	grant.Set("grant_type", "password")
	return s.exchange(ctx, endpoint, grant, scope)
}

// Refresh re-issues the stored credential via a refresh grant. Calls for the
// same scope are single-flight: a refresh already underway serves every
// concurrent caller. An expired credential whose refresh fails is discarded,
// forcing re-authentication.
func (s *TokenService) Refresh(ctx context.Context, endpoint string, scope CredentialScope) (*TokenResult, error) {
	if endpoint == "" {
		return nil, apperrors.NewValidationError("endpoint", "is required")
	}

	key := scope.TenantKey + "/" + scope.EnvironmentID
	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		cred, ok := s.store.Current(scope)
		if !ok {
			return nil, apperrors.ErrCredentialNotFound
		}
		if cred.RefreshToken == "" {
			return nil, apperrors.ErrRefreshTokenMissing
		}

		grant := url.Values{}
		grant.Set("grant_type", "refresh_token")
		grant.Set("refresh_token", cred.RefreshToken)

		res, err := s.exchange(ctx, endpoint, grant, scope)
		if err != nil {
			return nil, err
		}
		if res.Credential == nil && cred.Expired(time.Now()) {
			// Refresh rejected and the old token is already dead.
			s.store.Discard(scope)
		}
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*TokenResult), nil
}

func (s *TokenService) exchange(ctx context.Context, endpoint string, grant url.Values, scope CredentialScope) (*TokenResult, error) {
	log := logger.WithContext(ctx).WithField("endpoint", endpoint)

	res, err := s.proxy.Forward(ctx, &ForwardRequest{
		Endpoint:    endpoint,
		Path:        tokenPath,
		Method:      http.MethodPost,
		Body:        strings.NewReader(grant.Encode()),
		ContentType: "application/x-www-form-urlencoded",
	})
	if err != nil {
		return nil, err
	}

	result := &TokenResult{Status: res.Status, Body: res.Body}
	if !res.OK() {
		log.Warnf("Token exchange rejected by upstream: status=%d", res.Status)
		return result, nil
	}

	var tok tokenResponse
	if err := json.Unmarshal(res.Body, &tok); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("token response carries no access token")
	}

	cred := &StoredCredential{
		AccessToken:   tok.AccessToken,
		RefreshToken:  tok.RefreshToken,
		ExpiresAt:     time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second),
		TenantKey:     scope.TenantKey,
		EnvironmentID: scope.EnvironmentID,
	}
	s.store.Store(cred)
	result.Credential = cred

	log.Info("Credential issued")
	return result, nil
}

// Current returns the stored credential for the scope, if any
func (s *TokenService) Current(scope CredentialScope) (*StoredCredential, bool) {
	return s.store.Current(scope)
}

// EnsureValid refuses a known-expired credential. Proxied calls must go
// through this before reusing a stored token.
func (s *TokenService) EnsureValid(scope CredentialScope, now time.Time) (*StoredCredential, error) {
	cred, ok := s.store.Current(scope)
	if !ok {
		return nil, apperrors.ErrCredentialNotFound
	}
	if cred.Expired(now) {
		return nil, apperrors.NewCredentialExpiredError(cred.ExpiresAt)
	}
	return cred, nil
}

// Remaining describes the time left on a credential, bucketed for display
type Remaining struct {
	Hours        int    `json:"hours"`
	Minutes      int    `json:"minutes"`
	Seconds      int    `json:"seconds"`
	ExpiringSoon bool   `json:"expiring_soon"`
	Expired      bool   `json:"expired"`
	Label        string `json:"label"`
}

// TimeRemaining buckets the interval from now to the credential's expiry.
// Under ten minutes counts as expiring soon; at or past expiry the label is
// "Expirado" and the credential must not back any further proxied call.
func (s *TokenService) TimeRemaining(cred *StoredCredential, now time.Time) Remaining {
	left := cred.ExpiresAt.Sub(now)
	if left <= 0 {
		return Remaining{Expired: true, Label: "Expirado"}
	}

	r := Remaining{
		Hours:        int(left / time.Hour),
		Minutes:      int(left % time.Hour / time.Minute),
		Seconds:      int(left % time.Minute / time.Second),
		ExpiringSoon: left < expiringSoonThreshold,
	}

	switch {
	case r.Hours > 0:
		r.Label = fmt.Sprintf("%dh %dmin", r.Hours, r.Minutes)
	case r.Minutes > 0:
		r.Label = fmt.Sprintf("%dmin %ds", r.Minutes, r.Seconds)
	default:
		r.Label = fmt.Sprintf("%ds", r.Seconds)
	}
	return r
}
