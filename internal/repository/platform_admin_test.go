package repository

import (
	"errors"
	"testing"

	"erp-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PlatformAdminRepositoryTestSuite tests the PlatformAdminRepository
type PlatformAdminRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PlatformAdminRepository
	tenants       *TenantRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *PlatformAdminRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewPlatformAdminRepository(suite.baseTestSuite.DB)
	suite.tenants = NewTenantRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PlatformAdminRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PlatformAdminRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PlatformAdminRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PlatformAdminRepositoryTestSuite) createTenant() uuid.UUID {
	tenant := suite.factories.Tenant.Create()
	suite.Require().NoError(suite.tenants.Create(tenant))
	return tenant.ID
}

// TestCreate tests creating a platform admin
func (suite *PlatformAdminRepositoryTestSuite) TestCreate() {
	admin := suite.factories.PlatformAdmin.WithTenant(suite.createTenant())

	err := suite.repo.Create(admin)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, admin.ID)
}

// TestCreateDuplicateEmail tests the unique index on email
func (suite *PlatformAdminRepositoryTestSuite) TestCreateDuplicateEmail() {
	tenantID := suite.createTenant()
	first := suite.factories.PlatformAdmin.WithTenant(tenantID)
	first.Email = "admin@demo.com.br"
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.PlatformAdmin.WithTenant(tenantID)
	second.Email = "admin@demo.com.br"

	err := suite.repo.Create(second)

	suite.Error(err)
	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

// TestGetByEmail tests retrieval by email regardless of caller casing
func (suite *PlatformAdminRepositoryTestSuite) TestGetByEmail() {
	admin := suite.factories.PlatformAdmin.WithTenant(suite.createTenant())
	admin.Email = "admin@demo.com.br"
	suite.NoError(suite.repo.Create(admin))

	found, err := suite.repo.GetByEmail("Admin@Demo.com.br")

	suite.NoError(err)
	suite.Equal(admin.ID, found.ID)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte("senha-teste-123")))
}

// TestGetByTenantID tests retrieval of the tenant's admin
func (suite *PlatformAdminRepositoryTestSuite) TestGetByTenantID() {
	tenantID := suite.createTenant()
	admin := suite.factories.PlatformAdmin.WithTenant(tenantID)
	suite.NoError(suite.repo.Create(admin))

	found, err := suite.repo.GetByTenantID(tenantID)

	suite.NoError(err)
	suite.Equal(admin.Email, found.Email)
}

// TestSave tests updating an admin row
func (suite *PlatformAdminRepositoryTestSuite) TestSave() {
	admin := suite.factories.PlatformAdmin.WithTenant(suite.createTenant())
	suite.NoError(suite.repo.Create(admin))

	admin.Name = "Novo Nome"
	suite.NoError(suite.repo.Save(admin))

	found, err := suite.repo.GetByID(admin.ID)
	suite.NoError(err)
	suite.Equal("Novo Nome", found.Name)
}

// TestDeleteByTenantID tests removing a tenant's admin records
func (suite *PlatformAdminRepositoryTestSuite) TestDeleteByTenantID() {
	tenantID := suite.createTenant()
	admin := suite.factories.PlatformAdmin.WithTenant(tenantID)
	suite.NoError(suite.repo.Create(admin))

	suite.NoError(suite.repo.DeleteByTenantID(tenantID))

	_, err := suite.repo.GetByTenantID(tenantID)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestPlatformAdminRepositoryTestSuite runs the test suite
func TestPlatformAdminRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlatformAdminRepositoryTestSuite))
}
