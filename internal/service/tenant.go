package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"erp-portal-backend/internal/database/models"
	apperrors "erp-portal-backend/internal/errors"
	"erp-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// trialDays is the registration trial window
const trialDays = 7

// defaultEnvironmentName is the environment every new tenant starts with
const defaultEnvironmentName = "Produção"

// TenantService handles tenant, environment and admin configuration.
// Multi-row writes go through the unit of work; environment edits rewrite
// the whole tenant row (last full write wins, no field-level merge).
type TenantService struct {
	uow            repository.UnitOfWorkInterface
	tenants        repository.TenantRepositoryInterface
	admins         repository.PlatformAdminRepositoryInterface
	legacyConfigs  repository.LegacyConfigRepositoryInterface
	validator      *validator.Validate
	platformDomain string
}

// NewTenantService creates a new tenant service
func NewTenantService(
	uow repository.UnitOfWorkInterface,
	tenants repository.TenantRepositoryInterface,
	admins repository.PlatformAdminRepositoryInterface,
	legacyConfigs repository.LegacyConfigRepositoryInterface,
	validator *validator.Validate,
	platformDomain string,
) *TenantService {
	return &TenantService{
		uow:            uow,
		tenants:        tenants,
		admins:         admins,
		legacyConfigs:  legacyConfigs,
		validator:      validator,
		platformDomain: platformDomain,
	}
}

// RegisterTenantRequest represents the tenant registration payload
type RegisterTenantRequest struct {
	Subdomain     string `json:"subdomain" validate:"required,min=2,max=63,lowercase,alphanum"`
	LegalName     string `json:"legal_name" validate:"required,max=200"`
	TradeName     string `json:"trade_name,omitempty" validate:"max=200"`
	TaxID         string `json:"tax_id,omitempty" validate:"max=20"`
	AdminName     string `json:"admin_name" validate:"required,max=100"`
	AdminEmail    string `json:"admin_email" validate:"required,email,max=255"`
	AdminPhone    string `json:"admin_phone,omitempty" validate:"max=20"`
	AdminPassword string `json:"admin_password" validate:"required,min=8,max=72"`
	ConnectionURL string `json:"connection_url,omitempty" validate:"max=255"`
	AuthMode      string `json:"auth_mode,omitempty"`
}

// EnvironmentInput is the write shape of one environment
type EnvironmentInput struct {
	Name              string          `json:"name" validate:"required,max=100"`
	Enabled           *bool           `json:"enabled,omitempty"`
	WebserviceBaseURL string          `json:"webservice_base_url,omitempty"`
	RestBaseURL       string          `json:"rest_base_url,omitempty"`
	SoapDataServerURL string          `json:"soap_data_server_url,omitempty"`
	AuthMode          string          `json:"auth_mode,omitempty"`
	TokenEndpoint     string          `json:"token_endpoint,omitempty"`
	Modules           map[string]bool `json:"modules,omitempty"`

	PurchaseRequisitionCodes []string `json:"purchase_requisition_codes,omitempty"`
	PurchaseOrderCodes       []string `json:"purchase_order_codes,omitempty"`
	ProductInvoiceCodes      []string `json:"product_invoice_codes,omitempty"`
	ServiceInvoiceCodes      []string `json:"service_invoice_codes,omitempty"`
	OtherMovementCodes       []string `json:"other_movement_codes,omitempty"`
}

// UpdateTenantRequest applies partial company updates, an optional full
// environment-list replacement and optional admin changes as one unit
type UpdateTenantRequest struct {
	LegalName     *string             `json:"legal_name,omitempty"`
	TradeName     *string             `json:"trade_name,omitempty"`
	TaxID         *string             `json:"tax_id,omitempty"`
	Status        *string             `json:"status,omitempty"`
	Environments  *[]EnvironmentInput `json:"environments,omitempty"`
	AdminName     *string             `json:"admin_name,omitempty"`
	AdminPhone    *string             `json:"admin_phone,omitempty"`
	AdminPassword *string             `json:"admin_password,omitempty"`
}

// TenantResponse represents the tenant configuration surface
type TenantResponse struct {
	ID           uuid.UUID            `json:"id"`
	TenantKey    string               `json:"tenant_key"`
	Status       models.TenantStatus  `json:"status"`
	Company      CompanyResponse      `json:"company"`
	TenantHost   string               `json:"tenant_host"`
	Trial        *TrialResponse       `json:"trial,omitempty"`
	Access       AccessResponse       `json:"access"`
	Environments []models.Environment `json:"environments"`
	CreatedAt    string               `json:"created_at"`
}

// CompanyResponse groups the company fields
type CompanyResponse struct {
	LegalName string `json:"legal_name"`
	TradeName string `json:"trade_name,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}

// TrialResponse groups the trial window fields
type TrialResponse struct {
	StartedAt time.Time `json:"started_at"`
	EndsAt    time.Time `json:"ends_at"`
	Days      int       `json:"days"`
}

// AccessResponse groups the access fields
type AccessResponse struct {
	Blocked       bool   `json:"blocked"`
	BlockedReason string `json:"blocked_reason,omitempty"`
}

// TenantListResponse represents a paginated tenant list
type TenantListResponse struct {
	Tenants  []TenantResponse `json:"tenants"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// LegacySyncResult reports the outcome of a legacy configuration import
type LegacySyncResult struct {
	Imported int      `json:"imported"`
	Skipped  []string `json:"skipped,omitempty"`
}

// Register creates a tenant and its admin as one atomic unit: if either
// write fails, neither is observable afterward. The new tenant starts a
// seven-day trial with a single enabled "Produção" environment carrying
// every canonical module.
func (s *TenantService) Register(req *RegisterTenantRequest) (*TenantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidation(err)
	}

	authMode := models.AuthModeBearer
	if req.AuthMode != "" {
		authMode = models.AuthMode(req.AuthMode)
		if !authMode.IsValid() {
			return nil, apperrors.NewValidationError("auth_mode", "must be basic or bearer")
		}
	}

	key := strings.ToLower(req.Subdomain)
	email := strings.ToLower(req.AdminEmail)

	// Pre-checks give precise conflict answers; the unique indexes stay the
	// source of truth under races.
	if _, err := s.tenants.GetByKey(key); err == nil {
		return nil, apperrors.ErrTenantKeyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing tenant: %w", err)
	}
	if _, err := s.admins.GetByEmail(email); err == nil {
		return nil, apperrors.ErrAdminEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	trialEnds := now.AddDate(0, 0, trialDays)
	tenant := &models.Tenant{
		TenantKey:      key,
		Status:         models.TenantStatusTrial,
		LegalName:      req.LegalName,
		TradeName:      req.TradeName,
		TaxID:          req.TaxID,
		TenantHost:     key + "." + s.platformDomain,
		TrialStartedAt: &now,
		TrialEndsAt:    &trialEnds,
		TrialDays:      trialDays,
		Environments: models.EnvironmentList{
			{
				ID:                uuid.NewString(),
				Name:              defaultEnvironmentName,
				Enabled:           true,
				WebserviceBaseURL: req.ConnectionURL,
				AuthMode:          authMode,
				Modules:           models.DefaultModules(),
			},
		},
		CreatedBy: email,
	}

	err = s.uow.Do(func(r repository.Repositories) error {
		if err := r.Tenants.Create(tenant); err != nil {
			return translateDuplicate(err, apperrors.ErrTenantKeyExists)
		}
		admin := &models.PlatformAdmin{
			TenantID:     tenant.ID,
			Email:        email,
			Name:         req.AdminName,
			Phone:        req.AdminPhone,
			PasswordHash: string(hash),
			Role:         models.AdminRoleTenant,
		}
		if err := r.Admins.Create(admin); err != nil {
			return translateDuplicate(err, apperrors.ErrAdminEmailExists)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(tenant), nil
}

// GetByID retrieves a tenant by ID
func (s *TenantService) GetByID(id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.getTenant(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(tenant), nil
}

// GetByKey retrieves a tenant by its tenant key
func (s *TenantService) GetByKey(key string) (*TenantResponse, error) {
	tenant, err := s.tenants.GetByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return s.toResponse(tenant), nil
}

// List retrieves all tenants with pagination
func (s *TenantService) List(page, pageSize int) (*TenantListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	tenants, total, err := s.tenants.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = *s.toResponse(&tenants[i])
	}

	return &TenantListResponse{
		Tenants:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies the partial update and the optional admin changes as one
// atomic unit.
func (s *TenantService) Update(id uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error) {
	tenant, err := s.getTenant(id)
	if err != nil {
		return nil, err
	}

	if req.LegalName != nil {
		tenant.LegalName = *req.LegalName
	}
	if req.TradeName != nil {
		tenant.TradeName = *req.TradeName
	}
	if req.TaxID != nil {
		tenant.TaxID = *req.TaxID
	}
	if req.Status != nil {
		status := models.TenantStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown tenant status")
		}
		tenant.Status = status
	}
	if req.Environments != nil {
		replacement := make(models.EnvironmentList, 0, len(*req.Environments))
		for i := range *req.Environments {
			env, err := s.buildEnvironment(&(*req.Environments)[i])
			if err != nil {
				return nil, err
			}
			replacement = append(replacement, *env)
		}
		tenant.Environments = replacement
	}

	err = s.uow.Do(func(r repository.Repositories) error {
		if err := r.Tenants.Save(tenant); err != nil {
			return fmt.Errorf("failed to save tenant: %w", err)
		}

		if req.AdminName == nil && req.AdminPhone == nil && req.AdminPassword == nil {
			return nil
		}
		admin, err := r.Admins.GetByTenantID(tenant.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAdminNotFound
			}
			return fmt.Errorf("failed to get admin: %w", err)
		}
		if req.AdminName != nil {
			admin.Name = *req.AdminName
		}
		if req.AdminPhone != nil {
			admin.Phone = *req.AdminPhone
		}
		if req.AdminPassword != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.AdminPassword), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			admin.PasswordHash = string(hash)
		}
		return r.Admins.Save(admin)
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(tenant), nil
}

// AddEnvironment appends one environment and saves the whole tenant row
func (s *TenantService) AddEnvironment(tenantID uuid.UUID, input *EnvironmentInput) (*TenantResponse, error) {
	tenant, err := s.getTenant(tenantID)
	if err != nil {
		return nil, err
	}

	env, err := s.buildEnvironment(input)
	if err != nil {
		return nil, err
	}
	tenant.Environments = append(tenant.Environments, *env)

	if err := s.tenants.Save(tenant); err != nil {
		return nil, fmt.Errorf("failed to save tenant: %w", err)
	}
	return s.toResponse(tenant), nil
}

// UpdateEnvironment mutates exactly one embedded environment by id and saves
// the whole tenant row. An unknown id fails with NotFound and performs no
// mutation.
func (s *TenantService) UpdateEnvironment(tenantID uuid.UUID, envID string, input *EnvironmentInput) (*TenantResponse, error) {
	tenant, err := s.getTenant(tenantID)
	if err != nil {
		return nil, err
	}

	idx := tenant.Environments.IndexOf(envID)
	if idx < 0 {
		return nil, apperrors.ErrEnvironmentNotFound
	}

	env, err := s.buildEnvironment(input)
	if err != nil {
		return nil, err
	}
	env.ID = envID
	tenant.Environments[idx] = *env

	if err := s.tenants.Save(tenant); err != nil {
		return nil, fmt.Errorf("failed to save tenant: %w", err)
	}
	return s.toResponse(tenant), nil
}

// RemoveEnvironment removes one embedded environment by id and saves the
// whole tenant row
func (s *TenantService) RemoveEnvironment(tenantID uuid.UUID, envID string) (*TenantResponse, error) {
	tenant, err := s.getTenant(tenantID)
	if err != nil {
		return nil, err
	}

	idx := tenant.Environments.IndexOf(envID)
	if idx < 0 {
		return nil, apperrors.ErrEnvironmentNotFound
	}
	tenant.Environments = append(tenant.Environments[:idx], tenant.Environments[idx+1:]...)

	if err := s.tenants.Save(tenant); err != nil {
		return nil, fmt.Errorf("failed to save tenant: %w", err)
	}
	return s.toResponse(tenant), nil
}

// SyncLegacyConfig imports the admin's legacy-format environments. Matching
// is by environment name: existing names are skipped, never overwritten, so
// repeated runs against an unchanged legacy source import nothing new. A
// renamed legacy environment is re-imported as a new entry; that is a
// documented limitation of name matching, not something sync second-guesses.
func (s *TenantService) SyncLegacyConfig(tenantID uuid.UUID) (*LegacySyncResult, error) {
	tenant, err := s.getTenant(tenantID)
	if err != nil {
		return nil, err
	}

	result := &LegacySyncResult{}
	err = s.uow.Do(func(r repository.Repositories) error {
		admin, err := r.Admins.GetByTenantID(tenant.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAdminNotFound
			}
			return fmt.Errorf("failed to resolve admin: %w", err)
		}

		legacy, err := r.LegacyConfigs.GetByAdminEmail(admin.Email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrLegacyConfigNotFound
			}
			return fmt.Errorf("failed to resolve legacy configuration: %w", err)
		}

		for _, old := range legacy.Environments {
			if tenant.Environments.HasName(old.Name) {
				result.Skipped = append(result.Skipped, old.Name)
				continue
			}
			authMode := models.AuthModeBearer
			if parsed := models.AuthMode(old.AuthMode); parsed.IsValid() {
				authMode = parsed
			}
			tenant.Environments = append(tenant.Environments, models.Environment{
				ID:                uuid.NewString(),
				Name:              old.Name,
				Enabled:           !old.Disabled,
				WebserviceBaseURL: old.URL,
				RestBaseURL:       old.RestURL,
				SoapDataServerURL: old.SoapDataServerURL,
				AuthMode:          authMode,
				Modules:           models.DefaultModules(),
			})
			result.Imported++
		}

		if result.Imported == 0 {
			return nil
		}
		return r.Tenants.Save(tenant)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// CheckSubdomainAvailability reports whether the subdomain is free. Pure
// existence check, no side effects.
func (s *TenantService) CheckSubdomainAvailability(key string) (bool, error) {
	_, err := s.tenants.GetByKey(key)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, nil
	}
	return false, fmt.Errorf("failed to check subdomain: %w", err)
}

func (s *TenantService) getTenant(id uuid.UUID) (*models.Tenant, error) {
	tenant, err := s.tenants.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return tenant, nil
}

func (s *TenantService) buildEnvironment(input *EnvironmentInput) (*models.Environment, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, translateValidation(err)
	}

	authMode := models.AuthModeBearer
	if input.AuthMode != "" {
		authMode = models.AuthMode(input.AuthMode)
		if !authMode.IsValid() {
			return nil, apperrors.NewValidationError("auth_mode", "must be basic or bearer")
		}
	}

	modules := models.DefaultModules()
	if input.Modules != nil {
		candidate := models.ModuleSet(input.Modules)
		if err := candidate.Validate(); err != nil {
			return nil, apperrors.NewValidationError("modules", err.Error())
		}
		for name, enabled := range candidate {
			modules[name] = enabled
		}
	}

	enabled := true
	if input.Enabled != nil {
		enabled = *input.Enabled
	}

	return &models.Environment{
		ID:                uuid.NewString(),
		Name:              input.Name,
		Enabled:           enabled,
		WebserviceBaseURL: input.WebserviceBaseURL,
		RestBaseURL:       input.RestBaseURL,
		SoapDataServerURL: input.SoapDataServerURL,
		AuthMode:          authMode,
		TokenEndpoint:     input.TokenEndpoint,
		Modules:           modules,

		PurchaseRequisitionCodes: input.PurchaseRequisitionCodes,
		PurchaseOrderCodes:       input.PurchaseOrderCodes,
		ProductInvoiceCodes:      input.ProductInvoiceCodes,
		ServiceInvoiceCodes:      input.ServiceInvoiceCodes,
		OtherMovementCodes:       input.OtherMovementCodes,
	}, nil
}

func (s *TenantService) toResponse(tenant *models.Tenant) *TenantResponse {
	resp := &TenantResponse{
		ID:        tenant.ID,
		TenantKey: tenant.TenantKey,
		Status:    tenant.Status,
		Company: CompanyResponse{
			LegalName: tenant.LegalName,
			TradeName: tenant.TradeName,
			TaxID:     tenant.TaxID,
		},
		TenantHost: tenant.TenantHost,
		Access: AccessResponse{
			Blocked:       tenant.Blocked,
			BlockedReason: tenant.BlockedReason,
		},
		Environments: tenant.Environments,
		CreatedAt:    tenant.CreatedAt.Format(time.RFC3339),
	}
	if tenant.TrialStartedAt != nil && tenant.TrialEndsAt != nil {
		resp.Trial = &TrialResponse{
			StartedAt: *tenant.TrialStartedAt,
			EndsAt:    *tenant.TrialEndsAt,
			Days:      tenant.TrialDays,
		}
	}
	return resp
}

// translateDuplicate maps the store's unique-violation error to the given
// conflict, leaving other errors untouched
func translateDuplicate(err error, conflict error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflict
	}
	return err
}

// translateValidation turns validator output into the typed validation
// error the handlers map to 400, naming the first offending field.
func translateValidation(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return apperrors.NewValidationError(first.Field(), fmt.Sprintf("failed on the %s rule", first.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}
