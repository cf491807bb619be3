package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"erp-portal-backend/internal/config"
	"erp-portal-backend/internal/database"
	"erp-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed data structures matching scripts/data/tenants.yaml
type EnvironmentData struct {
	Name              string          `yaml:"name"`
	Enabled           *bool           `yaml:"enabled,omitempty"`
	WebserviceBaseURL string          `yaml:"webservice_base_url"`
	RestBaseURL       string          `yaml:"rest_base_url,omitempty"`
	SoapDataServerURL string          `yaml:"soap_data_server_url,omitempty"`
	AuthMode          string          `yaml:"auth_mode,omitempty"`
	TokenEndpoint     string          `yaml:"token_endpoint,omitempty"`
	Modules           map[string]bool `yaml:"modules,omitempty"`
}

type AdminData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone,omitempty"`
	Password string `yaml:"password"`
}

type TenantData struct {
	TenantKey    string            `yaml:"tenant_key"`
	LegalName    string            `yaml:"legal_name"`
	TradeName    string            `yaml:"trade_name,omitempty"`
	TaxID        string            `yaml:"tax_id,omitempty"`
	Status       string            `yaml:"status,omitempty"`
	Admin        AdminData         `yaml:"admin"`
	Environments []EnvironmentData `yaml:"environments,omitempty"`
}

type SeedFile struct {
	PlatformDomain string       `yaml:"platform_domain"`
	Tenants        []TenantData `yaml:"tenants"`
}

func main() {
	log.Println("Seeding tenants from YAML...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seedPath := "scripts/data/tenants.yaml"
	if len(os.Args) > 1 {
		seedPath = os.Args[1]
	}

	seed, err := loadSeedFile(seedPath)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}
	if seed.PlatformDomain == "" {
		seed.PlatformDomain = cfg.PlatformDomain
	}

	created := 0
	for _, data := range seed.Tenants {
		wasCreated, err := createTenant(db, data, seed.PlatformDomain)
		if err != nil {
			log.Fatalf("Failed to create tenant %s: %v", data.TenantKey, err)
		}
		if wasCreated {
			created++
		}
	}
	log.Printf("Tenants: %d created, %d total", created, len(seed.Tenants))
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during seeding
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedFile(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &seed, nil
}

// createTenant inserts a tenant plus its admin, skipping keys that already exist.
func createTenant(db *gorm.DB, data TenantData, platformDomain string) (bool, error) {
	key := strings.ToLower(strings.TrimSpace(data.TenantKey))
	if key == "" {
		return false, fmt.Errorf("tenant_key is required")
	}

	var existing models.Tenant
	err := db.Where("tenant_key = ?", key).First(&existing).Error
	if err == nil {
		log.Printf("Tenant %s already exists, skipping", key)
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	status := models.TenantStatus(data.Status)
	if data.Status == "" {
		status = models.TenantStatusTrial
	}
	if !status.IsValid() {
		return false, fmt.Errorf("invalid status %q", data.Status)
	}

	now := time.Now()
	trialEnd := now.AddDate(0, 0, 7)
	tenant := models.Tenant{
		TenantKey:      key,
		Status:         status,
		LegalName:      data.LegalName,
		TradeName:      data.TradeName,
		TaxID:          data.TaxID,
		TenantHost:     key + "." + platformDomain,
		TrialStartedAt: &now,
		TrialEndsAt:    &trialEnd,
		TrialDays:      7,
		CreatedBy:      "seed",
	}

	for _, envData := range data.Environments {
		env, err := buildEnvironment(envData)
		if err != nil {
			return false, fmt.Errorf("environment %s: %w", envData.Name, err)
		}
		tenant.Environments = append(tenant.Environments, env)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	return true, db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tenant).Error; err != nil {
			return err
		}
		admin := models.PlatformAdmin{
			TenantID:     tenant.ID,
			Name:         data.Admin.Name,
			Email:        strings.ToLower(strings.TrimSpace(data.Admin.Email)),
			Phone:        data.Admin.Phone,
			PasswordHash: string(hash),
			Role:         models.AdminRoleTenant,
		}
		return tx.Create(&admin).Error
	})
}

func buildEnvironment(data EnvironmentData) (models.Environment, error) {
	mode := models.AuthMode(data.AuthMode)
	if data.AuthMode == "" {
		mode = models.AuthModeBearer
	}
	if !mode.IsValid() {
		return models.Environment{}, fmt.Errorf("invalid auth_mode %q", data.AuthMode)
	}

	modules := models.DefaultModules()
	for name, enabled := range data.Modules {
		modules[name] = enabled
	}
	if err := modules.Validate(); err != nil {
		return models.Environment{}, err
	}

	enabled := true
	if data.Enabled != nil {
		enabled = *data.Enabled
	}

	return models.Environment{
		ID:                uuid.NewString(),
		Name:              data.Name,
		Enabled:           enabled,
		WebserviceBaseURL: data.WebserviceBaseURL,
		RestBaseURL:       data.RestBaseURL,
		SoapDataServerURL: data.SoapDataServerURL,
		AuthMode:          mode,
		TokenEndpoint:     data.TokenEndpoint,
		Modules:           modules,
	}, nil
}
