package service

import (
	"sync"
	"time"
)

// CredentialScope identifies which tenant and environment a stored
// credential belongs to. Every proxied call names its scope explicitly;
// there is no ambient "current environment".
type CredentialScope struct {
	TenantKey     string
	EnvironmentID string
}

// StoredCredential is a short-lived bearer token for one tenant environment.
// It lives in process memory only and is discarded once expired with no
// successful refresh.
type StoredCredential struct {
	AccessToken   string    `json:"-"`
	RefreshToken  string    `json:"-"`
	ExpiresAt     time.Time `json:"expires_at"`
	TenantKey     string    `json:"tenant_key"`
	EnvironmentID string    `json:"environment_id"`
}

// Expired reports whether the credential is at or past its expiry
func (c *StoredCredential) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// CredentialStore keeps the current credential per tenant environment
type CredentialStore struct {
	mu    sync.RWMutex
	creds map[CredentialScope]*StoredCredential
}

// NewCredentialStore creates an empty credential store
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{creds: make(map[CredentialScope]*StoredCredential)}
}

// Store saves the credential under its scope, replacing any previous one
func (s *CredentialStore) Store(cred *StoredCredential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds[CredentialScope{TenantKey: cred.TenantKey, EnvironmentID: cred.EnvironmentID}] = cred
}

// Current returns the credential stored for the scope, if any
func (s *CredentialStore) Current(scope CredentialScope) (*StoredCredential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cred, ok := s.creds[scope]
	return cred, ok
}

// Discard drops the credential stored for the scope
func (s *CredentialStore) Discard(scope CredentialScope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.creds, scope)
}
