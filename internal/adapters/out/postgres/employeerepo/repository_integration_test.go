package employeerepo_test

import (
	"context"
	"testing"
	"time"

	"autoservice/internal/adapters/out/postgres/employeerepo"
	"autoservice/internal/core/domain/model/employee"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

type EmployeeRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *employeerepo.GormEmployeeRepository
	tracker    *MockAggregateTracker
}

func (suite *EmployeeRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&employeerepo.EmployeeDTO{}))
}

func (suite *EmployeeRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE employees").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = employeerepo.NewGormEmployeeRepository(suite.db, suite.tracker)
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	admin, err := employee.NewEmployee(kernel.NewUUID(), "Grace", employee.RoleAdmin)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, admin))

	loaded, err := suite.repository.Get(ctx, admin.ID())
	suite.Require().NoError(err)
	suite.Equal(admin.ID(), loaded.ID())
	suite.Equal("Grace", loaded.Name())
	suite.Equal(employee.RoleAdmin, loaded.Role())
	suite.True(loaded.IsAdmin())
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestEmployeeRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeRepositoryIntegrationTestSuite))
}
