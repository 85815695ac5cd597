package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"autoservice/internal/adapters/out/postgres/catalogrepo"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/ports"
	"autoservice/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ServiceCatalogIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	catalog   *catalogrepo.GormServiceCatalog
}

func (suite *ServiceCatalogIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&catalogrepo.CatalogServiceDTO{}))
}

func (suite *ServiceCatalogIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE common_services").Error)

	suite.catalog = catalogrepo.NewGormServiceCatalog(suite.db)
}

func (suite *ServiceCatalogIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ServiceCatalogIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	price, err := kernel.NewPrice(12_500)
	suite.Require().NoError(err)

	definition := ports.CatalogService{
		ID:    kernel.NewUUID(),
		Name:  "brake pad replacement",
		Price: price,
	}
	suite.Require().NoError(suite.catalog.AddService(ctx, definition))

	loaded, err := suite.catalog.GetService(ctx, definition.ID)
	suite.Require().NoError(err)
	suite.Equal(definition.ID, loaded.ID)
	suite.Equal("brake pad replacement", loaded.Name)
	suite.Equal(int64(12_500), loaded.Price.Cents())
}

func (suite *ServiceCatalogIntegrationTestSuite) TestGetService_NotFound() {
	_, err := suite.catalog.GetService(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestServiceCatalogIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceCatalogIntegrationTestSuite))
}
