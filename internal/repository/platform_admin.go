package repository

import (
	"strings"

	"erp-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlatformAdminRepository handles database operations for platform admins
type PlatformAdminRepository struct {
	db *gorm.DB
}

// NewPlatformAdminRepository creates a new platform admin repository
func NewPlatformAdminRepository(db *gorm.DB) *PlatformAdminRepository {
	return &PlatformAdminRepository{db: db}
}

// Create creates a new platform admin. Duplicate emails surface as
// gorm.ErrDuplicatedKey from the unique index.
func (r *PlatformAdminRepository) Create(admin *models.PlatformAdmin) error {
	return r.db.Create(admin).Error
}

// GetByID retrieves a platform admin by ID
func (r *PlatformAdminRepository) GetByID(id uuid.UUID) (*models.PlatformAdmin, error) {
	var admin models.PlatformAdmin
	err := r.db.First(&admin, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetByEmail retrieves a platform admin by email
func (r *PlatformAdminRepository) GetByEmail(email string) (*models.PlatformAdmin, error) {
	var admin models.PlatformAdmin
	err := r.db.First(&admin, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetByTenantID retrieves the admin owning the given tenant
func (r *PlatformAdminRepository) GetByTenantID(tenantID uuid.UUID) (*models.PlatformAdmin, error) {
	var admin models.PlatformAdmin
	err := r.db.First(&admin, "tenant_id = ?", tenantID).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Save updates a platform admin
func (r *PlatformAdminRepository) Save(admin *models.PlatformAdmin) error {
	return r.db.Save(admin).Error
}

// DeleteByTenantID removes the admin records of a tenant
func (r *PlatformAdminRepository) DeleteByTenantID(tenantID uuid.UUID) error {
	return r.db.Delete(&models.PlatformAdmin{}, "tenant_id = ?", tenantID).Error
}
