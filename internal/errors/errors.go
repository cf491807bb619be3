package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a uniqueness violation on creation
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this subdomain"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// UpstreamError carries a non-2xx answer from the external ERP. Status and
// body are relayed to the caller unmodified.
type UpstreamError struct {
	Status int
	Body   json.RawMessage
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded with status %d", e.Status)
}

// CredentialExpiredError marks a bearer token at or past its expiry with no
// successful refresh; the caller has to re-authenticate.
type CredentialExpiredError struct {
	ExpiredAt time.Time
}

func (e *CredentialExpiredError) Error() string {
	return fmt.Sprintf("credential expired at %s", e.ExpiredAt.Format(time.RFC3339))
}

// Entity Not Found Errors
var (
	ErrTenantNotFound       = &NotFoundError{Entity: "tenant"}
	ErrEnvironmentNotFound  = &NotFoundError{Entity: "environment"}
	ErrAdminNotFound        = &NotFoundError{Entity: "platform admin"}
	ErrLegacyConfigNotFound = &NotFoundError{Entity: "legacy configuration"}
	ErrCredentialNotFound   = &NotFoundError{Entity: "stored credential"}
)

// Already Exists Errors
var (
	ErrTenantKeyExists  = &AlreadyExistsError{Entity: "tenant", Context: "with this subdomain"}
	ErrTenantHostExists = &AlreadyExistsError{Entity: "tenant", Context: "with this host"}
	ErrAdminEmailExists = &AlreadyExistsError{Entity: "platform admin", Context: "with this email"}
)

// Business Logic Errors
var (
	ErrTenantBlocked       = errors.New("tenant access is blocked")
	ErrEnvironmentDisabled = errors.New("environment is disabled")
	ErrRefreshTokenMissing = errors.New("stored credential has no refresh token")
	ErrInvalidStatus       = errors.New("invalid tenant status")
	ErrInvalidAuthMode     = errors.New("invalid auth mode")
	ErrInvalidRole         = errors.New("invalid admin role")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidSession     = &AuthenticationError{Message: "invalid or expired session token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// IsCredentialExpired checks if an error is a CredentialExpiredError
func IsCredentialExpired(err error) bool {
	var expiredErr *CredentialExpiredError
	return errors.As(err, &expiredErr)
}

// AsUpstream extracts the UpstreamError from err, if any
func AsUpstream(err error) (*UpstreamError, bool) {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr, true
	}
	return nil, false
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewUpstreamError creates a new UpstreamError from a relayed response
func NewUpstreamError(status int, body json.RawMessage) error {
	return &UpstreamError{Status: status, Body: body}
}

// NewCredentialExpiredError creates a new CredentialExpiredError
func NewCredentialExpiredError(expiredAt time.Time) error {
	return &CredentialExpiredError{ExpiredAt: expiredAt}
}
