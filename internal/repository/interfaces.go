package repository

import (
	"erp-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetByKey(key string) (*models.Tenant, error)
	GetByHost(host string) (*models.Tenant, error)
	GetAll(limit, offset int) ([]models.Tenant, int64, error)
	Save(tenant *models.Tenant) error
	Delete(id uuid.UUID) error
}

// PlatformAdminRepositoryInterface defines the interface for platform admin repository operations
type PlatformAdminRepositoryInterface interface {
	Create(admin *models.PlatformAdmin) error
	GetByID(id uuid.UUID) (*models.PlatformAdmin, error)
	GetByEmail(email string) (*models.PlatformAdmin, error)
	GetByTenantID(tenantID uuid.UUID) (*models.PlatformAdmin, error)
	Save(admin *models.PlatformAdmin) error
	DeleteByTenantID(tenantID uuid.UUID) error
}

// LegacyConfigRepositoryInterface defines the interface for legacy config repository operations
type LegacyConfigRepositoryInterface interface {
	Create(cfg *models.LegacyConfig) error
	GetByAdminEmail(email string) (*models.LegacyConfig, error)
}

// UnitOfWorkInterface runs a function against transaction-scoped repositories
type UnitOfWorkInterface interface {
	Do(fn func(r Repositories) error) error
}
