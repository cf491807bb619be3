package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminRole represents the role of a platform admin
type AdminRole string

const (
	AdminRolePlatform AdminRole = "platform_admin"
	AdminRoleTenant   AdminRole = "tenant_admin"
	AdminRoleSupport  AdminRole = "support"
)

// IsValid checks if the AdminRole is valid
func (r AdminRole) IsValid() bool {
	switch r {
	case AdminRolePlatform, AdminRoleTenant, AdminRoleSupport:
		return true
	}
	return false
}

// PlatformAdmin is the administrative account of a tenant. The registration
// path creates exactly one admin per tenant; the two live and die together.
type PlatformAdmin struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID     uuid.UUID `json:"tenant_id" gorm:"type:uuid;index;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name         string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Phone        string    `json:"phone" gorm:"size:20" validate:"max=20"`
	PasswordHash string    `json:"-" gorm:"not null;size:100"`
	Role         AdminRole `json:"role" gorm:"type:varchar(20);not null;default:'tenant_admin'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the table name for PlatformAdmin
func (PlatformAdmin) TableName() string {
	return "platform_admins"
}

// BeforeCreate sets the UUID if not already set
func (a *PlatformAdmin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
