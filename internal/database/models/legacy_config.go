package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LegacyEnvironment is one connection profile in the pre-portal configuration
// format, keyed by the owning admin's email rather than by tenant.
type LegacyEnvironment struct {
	Name              string `json:"nome"`
	URL               string `json:"url"`
	RestURL           string `json:"url_rest,omitempty"`
	SoapDataServerURL string `json:"url_soap,omitempty"`
	AuthMode          string `json:"auth_mode,omitempty"`
	Disabled          bool   `json:"desativado,omitempty"`
}

// LegacyEnvironmentList is stored as jsonb on the legacy config row
type LegacyEnvironmentList []LegacyEnvironment

// Value implements driver.Valuer for jsonb storage
func (l LegacyEnvironmentList) Value() (driver.Value, error) {
	if l == nil {
		l = LegacyEnvironmentList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for jsonb storage
func (l *LegacyEnvironmentList) Scan(value interface{}) error {
	if value == nil {
		*l = LegacyEnvironmentList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into LegacyEnvironmentList", value)
	}
	return json.Unmarshal(data, l)
}

// LegacyConfig is the imported pre-portal configuration record. Sync matches
// it to a tenant through the tenant admin's email.
type LegacyConfig struct {
	ID           uuid.UUID             `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AdminEmail   string                `json:"admin_email" gorm:"uniqueIndex;not null;size:255"`
	Environments LegacyEnvironmentList `json:"environments" gorm:"type:jsonb"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// TableName returns the table name for LegacyConfig
func (LegacyConfig) TableName() string {
	return "legacy_configs"
}

// BeforeCreate sets the UUID if not already set
func (c *LegacyConfig) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
