package repository

import (
	"gorm.io/gorm"
)

// Repositories bundles the tx-scoped repositories handed to a unit of work
type Repositories struct {
	Tenants       TenantRepositoryInterface
	Admins        PlatformAdminRepositoryInterface
	LegacyConfigs LegacyConfigRepositoryInterface
}

// UnitOfWork runs multi-row writes inside one database transaction. Any
// error returned by fn rolls back every participating write; partial state
// is never observable.
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a unit of work over the given connection
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Do executes fn within a transaction, giving it repositories bound to that
// transaction.
func (u *UnitOfWork) Do(fn func(r Repositories) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(Repositories{
			Tenants:       NewTenantRepository(tx),
			Admins:        NewPlatformAdminRepository(tx),
			LegacyConfigs: NewLegacyConfigRepository(tx),
		})
	})
}
