package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AuthMode defines how the portal authenticates against an environment's ERP backend
type AuthMode string

const (
	AuthModeBasic  AuthMode = "basic"
	AuthModeBearer AuthMode = "bearer"
)

// IsValid checks if the AuthMode is valid
func (m AuthMode) IsValid() bool {
	switch m {
	case AuthModeBasic, AuthModeBearer:
		return true
	}
	return false
}

// Canonical portal module names. The set is fixed; environments may only
// toggle these keys, never introduce new ones.
const (
	ModuleDashboard  = "dashboard"
	ModuleCompras    = "compras"
	ModuleEstoque    = "estoque"
	ModuleFinanceiro = "financeiro"
	ModuleFiscal     = "fiscal"
	ModuleRelatorios = "relatorios"
)

// CanonicalModules lists every known module key.
var CanonicalModules = []string{
	ModuleDashboard,
	ModuleCompras,
	ModuleEstoque,
	ModuleFinanceiro,
	ModuleFiscal,
	ModuleRelatorios,
}

// ModuleSet maps canonical module names to their enabled state.
// A key that is absent counts as enabled.
type ModuleSet map[string]bool

// DefaultModules returns a ModuleSet with every canonical module enabled
func DefaultModules() ModuleSet {
	m := make(ModuleSet, len(CanonicalModules))
	for _, name := range CanonicalModules {
		m[name] = true
	}
	return m
}

// Enabled reports whether the named module is enabled. Unset keys default to true.
func (m ModuleSet) Enabled(name string) bool {
	if m == nil {
		return true
	}
	v, ok := m[name]
	if !ok {
		return true
	}
	return v
}

// Validate rejects keys outside the canonical module set
func (m ModuleSet) Validate() error {
	for key := range m {
		if !isCanonicalModule(key) {
			return fmt.Errorf("unknown module %q", key)
		}
	}
	return nil
}

func isCanonicalModule(name string) bool {
	for _, known := range CanonicalModules {
		if known == name {
			return true
		}
	}
	return false
}

// Environment is one named backend connection profile embedded in a Tenant.
// It is identified by an ID unique within its parent tenant only.
type Environment struct {
	ID                string    `json:"id"`
	Name              string    `json:"name" validate:"required,max=100"`
	Enabled           bool      `json:"enabled"`
	WebserviceBaseURL string    `json:"webservice_base_url"`
	RestBaseURL       string    `json:"rest_base_url"`
	SoapDataServerURL string    `json:"soap_data_server_url"`
	AuthMode          AuthMode  `json:"auth_mode"`
	TokenEndpoint     string    `json:"token_endpoint,omitempty"`
	Modules           ModuleSet `json:"modules"`

	// ERP movement-type codes grouped by document category
	PurchaseRequisitionCodes []string `json:"purchase_requisition_codes"`
	PurchaseOrderCodes       []string `json:"purchase_order_codes"`
	ProductInvoiceCodes      []string `json:"product_invoice_codes"`
	ServiceInvoiceCodes      []string `json:"service_invoice_codes"`
	OtherMovementCodes       []string `json:"other_movement_codes"`
}

// EnvironmentList is the embedded environment array of a Tenant, stored as jsonb.
// The whole list is written with its parent row; the tenant row is the
// concurrency unit, so concurrent edits to sibling environments are
// last-write-wins.
type EnvironmentList []Environment

// Value implements driver.Valuer for jsonb storage
func (l EnvironmentList) Value() (driver.Value, error) {
	if l == nil {
		l = EnvironmentList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for jsonb storage
func (l *EnvironmentList) Scan(value interface{}) error {
	if value == nil {
		*l = EnvironmentList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into EnvironmentList", value)
	}
	return json.Unmarshal(data, l)
}

// IndexOf returns the position of the environment with the given id, or -1
func (l EnvironmentList) IndexOf(id string) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// HasName reports whether any environment in the list carries the given name
func (l EnvironmentList) HasName(name string) bool {
	for i := range l {
		if l[i].Name == name {
			return true
		}
	}
	return false
}
