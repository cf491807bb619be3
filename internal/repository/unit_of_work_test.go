package repository

import (
	"errors"
	"testing"

	"erp-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UnitOfWorkTestSuite tests transactional behavior against a real database
type UnitOfWorkTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	uow           *UnitOfWork
	tenants       *TenantRepository
	admins        *PlatformAdminRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UnitOfWorkTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.uow = NewUnitOfWork(suite.baseTestSuite.DB)
	suite.tenants = NewTenantRepository(suite.baseTestSuite.DB)
	suite.admins = NewPlatformAdminRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UnitOfWorkTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UnitOfWorkTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UnitOfWorkTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCommit tests that both writes land when fn succeeds
func (suite *UnitOfWorkTestSuite) TestCommit() {
	tenant, admin := suite.factories.CreateTenantWithAdmin()

	err := suite.uow.Do(func(r Repositories) error {
		if err := r.Tenants.Create(tenant); err != nil {
			return err
		}
		admin.TenantID = tenant.ID
		return r.Admins.Create(admin)
	})

	suite.NoError(err)

	_, err = suite.tenants.GetByID(tenant.ID)
	suite.NoError(err)
	_, err = suite.admins.GetByTenantID(tenant.ID)
	suite.NoError(err)
}

// TestRollback tests that a failing second write takes the first one down
// with it
func (suite *UnitOfWorkTestSuite) TestRollback() {
	tenant, admin := suite.factories.CreateTenantWithAdmin()

	err := suite.uow.Do(func(r Repositories) error {
		if err := r.Tenants.Create(tenant); err != nil {
			return err
		}
		admin.TenantID = tenant.ID
		if err := r.Admins.Create(admin); err != nil {
			return err
		}
		return errors.New("abort")
	})

	suite.Error(err)

	_, err = suite.tenants.GetByKey(tenant.TenantKey)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
	_, err = suite.admins.GetByEmail(admin.Email)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestUnitOfWorkTestSuite runs the test suite
func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
