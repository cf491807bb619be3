package repository

import (
	"strings"

	"erp-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantRepository handles database operations for tenants
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create creates a new tenant. Uniqueness of tenant_key and tenant_host is
// the store's job: a duplicate comes back as gorm.ErrDuplicatedKey.
func (r *TenantRepository) Create(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetByKey retrieves a tenant by its unique tenant key
func (r *TenantRepository) GetByKey(key string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "tenant_key = ?", strings.ToLower(key)).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetByHost retrieves a tenant by its unique host
func (r *TenantRepository) GetByHost(host string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "tenant_host = ?", strings.ToLower(host)).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetAll retrieves all tenants with pagination
func (r *TenantRepository) GetAll(limit, offset int) ([]models.Tenant, int64, error) {
	var tenants []models.Tenant
	var total int64

	if err := r.db.Model(&models.Tenant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("created_at").Find(&tenants).Error
	if err != nil {
		return nil, 0, err
	}

	return tenants, total, nil
}

// Save writes the whole tenant row, embedded environments included.
// Last full write wins; there is no field-level merge.
func (r *TenantRepository) Save(tenant *models.Tenant) error {
	return r.db.Save(tenant).Error
}

// Delete deletes a tenant
func (r *TenantRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Tenant{}, "id = ?", id).Error
}
