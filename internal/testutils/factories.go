package testutils

import (
	"time"

	"erp-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	// Derive a unique key from the UUID so parallel fixtures never collide
	key := "tenant" + id.String()[:8]
	now := time.Now()
	trialEnd := now.AddDate(0, 0, 7)

	return &models.Tenant{
		ID:             id,
		TenantKey:      key,
		LegalName:      "Empresa Teste LTDA",
		TradeName:      "Empresa Teste",
		TaxID:          "12345678000190",
		TenantHost:     key + ".erpportal.app.br",
		Status:         models.TenantStatusTrial,
		TrialStartedAt: &now,
		TrialEndsAt:    &trialEnd,
		TrialDays:      7,
		Environments:   models.EnvironmentList{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// WithKey sets a custom tenant key (and matching host)
func (f *TenantFactory) WithKey(key string) *models.Tenant {
	tenant := f.Create()
	tenant.TenantKey = key
	tenant.TenantHost = key + ".erpportal.app.br"
	return tenant
}

// WithStatus sets a custom status for the tenant
func (f *TenantFactory) WithStatus(status models.TenantStatus) *models.Tenant {
	tenant := f.Create()
	tenant.Status = status
	return tenant
}

// WithEnvironment appends a ready-made environment to the tenant
func (f *TenantFactory) WithEnvironment(env models.Environment) *models.Tenant {
	tenant := f.Create()
	tenant.Environments = append(tenant.Environments, env)
	return tenant
}

// EnvironmentFactory provides methods to create test Environment data
type EnvironmentFactory struct{}

// NewEnvironmentFactory creates a new EnvironmentFactory
func NewEnvironmentFactory() *EnvironmentFactory {
	return &EnvironmentFactory{}
}

// Create creates a test Environment with default values
func (f *EnvironmentFactory) Create() models.Environment {
	return models.Environment{
		ID:                uuid.NewString(),
		Name:              "Produção",
		Enabled:           true,
		WebserviceBaseURL: "erp.example.com:8051",
		RestBaseURL:       "erp.example.com:9000",
		AuthMode:          models.AuthModeBearer,
		Modules:           models.DefaultModules(),
	}
}

// WithName sets a custom name for the environment
func (f *EnvironmentFactory) WithName(name string) models.Environment {
	env := f.Create()
	env.Name = name
	return env
}

// PlatformAdminFactory provides methods to create test PlatformAdmin data
type PlatformAdminFactory struct{}

// NewPlatformAdminFactory creates a new PlatformAdminFactory
func NewPlatformAdminFactory() *PlatformAdminFactory {
	return &PlatformAdminFactory{}
}

// Create creates a test PlatformAdmin with default values.
// The password is "senha-teste-123".
func (f *PlatformAdminFactory) Create() *models.PlatformAdmin {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("senha-teste-123"), bcrypt.DefaultCost)
	now := time.Now()

	return &models.PlatformAdmin{
		ID:           id,
		TenantID:     uuid.New(),
		Name:         "Admin Teste",
		Email:        "admin+" + id.String()[:8] + "@test.com",
		Phone:        "+55 11 98888-0000",
		PasswordHash: string(hash),
		Role:         models.AdminRoleTenant,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// WithTenant sets the tenant ID for the admin
func (f *PlatformAdminFactory) WithTenant(tenantID uuid.UUID) *models.PlatformAdmin {
	admin := f.Create()
	admin.TenantID = tenantID
	return admin
}

// WithEmail sets a custom email for the admin
func (f *PlatformAdminFactory) WithEmail(email string) *models.PlatformAdmin {
	admin := f.Create()
	admin.Email = email
	return admin
}

// WithPassword sets a custom password for the admin
func (f *PlatformAdminFactory) WithPassword(password string) *models.PlatformAdmin {
	admin := f.Create()
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	admin.PasswordHash = string(hash)
	return admin
}

// LegacyConfigFactory provides methods to create test LegacyConfig data
type LegacyConfigFactory struct{}

// NewLegacyConfigFactory creates a new LegacyConfigFactory
func NewLegacyConfigFactory() *LegacyConfigFactory {
	return &LegacyConfigFactory{}
}

// Create creates a test LegacyConfig keyed to the given admin email
func (f *LegacyConfigFactory) Create(adminEmail string) *models.LegacyConfig {
	now := time.Now()
	return &models.LegacyConfig{
		ID:         uuid.New(),
		AdminEmail: adminEmail,
		Environments: models.LegacyEnvironmentList{
			{
				Name:     "Homologação",
				URL:      "legado.example.com:8051",
				RestURL:  "legado.example.com:9000",
				AuthMode: string(models.AuthModeBasic),
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Tenant        *TenantFactory
	Environment   *EnvironmentFactory
	PlatformAdmin *PlatformAdminFactory
	LegacyConfig  *LegacyConfigFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant:        NewTenantFactory(),
		Environment:   NewEnvironmentFactory(),
		PlatformAdmin: NewPlatformAdminFactory(),
		LegacyConfig:  NewLegacyConfigFactory(),
	}
}

// CreateTenantWithAdmin creates a tenant plus an admin bound to it
func (fs *FactorySet) CreateTenantWithAdmin() (*models.Tenant, *models.PlatformAdmin) {
	tenant := fs.Tenant.Create()
	tenant.Environments = append(tenant.Environments, fs.Environment.Create())

	admin := fs.PlatformAdmin.WithTenant(tenant.ID)
	return tenant, admin
}
