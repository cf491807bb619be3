package repository

import (
	"strings"

	"erp-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// LegacyConfigRepository handles database operations for legacy configuration records
type LegacyConfigRepository struct {
	db *gorm.DB
}

// NewLegacyConfigRepository creates a new legacy config repository
func NewLegacyConfigRepository(db *gorm.DB) *LegacyConfigRepository {
	return &LegacyConfigRepository{db: db}
}

// Create stores a legacy configuration record
func (r *LegacyConfigRepository) Create(cfg *models.LegacyConfig) error {
	return r.db.Create(cfg).Error
}

// GetByAdminEmail retrieves the legacy record belonging to the admin's email
func (r *LegacyConfigRepository) GetByAdminEmail(email string) (*models.LegacyConfig, error) {
	var cfg models.LegacyConfig
	err := r.db.First(&cfg, "admin_email = ?", strings.ToLower(email)).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
