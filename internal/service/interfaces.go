package service

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TenantServiceInterface defines the tenant configuration operations
type TenantServiceInterface interface {
	Register(req *RegisterTenantRequest) (*TenantResponse, error)
	GetByID(id uuid.UUID) (*TenantResponse, error)
	GetByKey(key string) (*TenantResponse, error)
	List(page, pageSize int) (*TenantListResponse, error)
	Update(id uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error)
	AddEnvironment(tenantID uuid.UUID, input *EnvironmentInput) (*TenantResponse, error)
	UpdateEnvironment(tenantID uuid.UUID, envID string, input *EnvironmentInput) (*TenantResponse, error)
	RemoveEnvironment(tenantID uuid.UUID, envID string) (*TenantResponse, error)
	SyncLegacyConfig(tenantID uuid.UUID) (*LegacySyncResult, error)
	CheckSubdomainAvailability(key string) (bool, error)
}

// ProxyGatewayInterface forwards one request to a tenant's ERP backend
type ProxyGatewayInterface interface {
	Forward(ctx context.Context, fwd *ForwardRequest) (*ForwardResult, error)
}

// TokenServiceInterface manages the ERP credential lifecycle
type TokenServiceInterface interface {
	Issue(ctx context.Context, endpoint string, grant url.Values, scope CredentialScope) (*TokenResult, error)
	Refresh(ctx context.Context, endpoint string, scope CredentialScope) (*TokenResult, error)
	Current(scope CredentialScope) (*StoredCredential, bool)
	EnsureValid(scope CredentialScope, now time.Time) (*StoredCredential, error)
	TimeRemaining(cred *StoredCredential, now time.Time) Remaining
}

// SessionServiceInterface authenticates platform admins
type SessionServiceInterface interface {
	Login(email, password string) (*SessionResponse, error)
	Parse(tokenString string) (*SessionClaims, error)
}
