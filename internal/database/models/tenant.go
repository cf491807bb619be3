package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantStatus represents the lifecycle state of a tenant account
type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "active"
	TenantStatusInactive  TenantStatus = "inactive"
	TenantStatusTrial     TenantStatus = "trial"
	TenantStatusBlocked   TenantStatus = "blocked"
	TenantStatusCancelled TenantStatus = "cancelled"
)

// IsValid checks if the TenantStatus is valid
func (s TenantStatus) IsValid() bool {
	switch s {
	case TenantStatusActive, TenantStatusInactive, TenantStatusTrial, TenantStatusBlocked, TenantStatusCancelled:
		return true
	}
	return false
}

// Tenant is an isolated customer account bound to a unique subdomain and
// owning its environment directory. The environment list is a jsonb column,
// so every environment edit rewrites the whole row.
type Tenant struct {
	ID        uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantKey string       `json:"tenant_key" gorm:"uniqueIndex;not null;size:63" validate:"required,min=2,max=63"`
	Status    TenantStatus `json:"status" gorm:"type:varchar(20);not null;default:'trial'"`

	// Company
	LegalName string `json:"legal_name" gorm:"size:200" validate:"max=200"`
	TradeName string `json:"trade_name" gorm:"size:200" validate:"max=200"`
	TaxID     string `json:"tax_id" gorm:"size:20" validate:"max=20"`

	// Domains
	TenantHost string `json:"tenant_host" gorm:"uniqueIndex;not null;size:255" validate:"required,max=255"`

	// Trial window
	TrialStartedAt *time.Time `json:"trial_started_at,omitempty"`
	TrialEndsAt    *time.Time `json:"trial_ends_at,omitempty"`
	TrialDays      int        `json:"trial_days"`

	// Access
	Blocked       bool   `json:"blocked"`
	BlockedReason string `json:"blocked_reason,omitempty" gorm:"size:200"`

	Environments EnvironmentList `json:"environments" gorm:"type:jsonb"`

	// Audit
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by" gorm:"size:40"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}

// BeforeCreate sets the UUID if not already set
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
