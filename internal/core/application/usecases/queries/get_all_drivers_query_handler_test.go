package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/driverrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/driver"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllDriversQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllDriversQueryHandler
}

func (suite *GetAllDriversQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&driverrepo.DriverDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllDriversQueryHandler(db)
}

func (suite *GetAllDriversQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllDriversQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE drivers").Error
	suite.Require().NoError(err)
}

func (suite *GetAllDriversQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllDriversQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllDriversQueryHandlerTestSuite) TestHandle_WithDrivers_ReturnsRosterOrderedByName() {
	zoe := suite.seedDriver("Zoe Adams", "+15550201", true)
	maria := suite.seedDriver("Maria Santos", "+15550202", true)
	ben := suite.seedDriver("Ben Cho", "+15550203", false)

	query := queries.NewGetAllDriversQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal(ben.ID(), result[0].ID)
	suite.Equal("Ben Cho", result[0].Name)
	suite.False(result[0].Active)

	suite.Equal(maria.ID(), result[1].ID)
	suite.Equal("Maria Santos", result[1].Name)
	suite.Equal("+15550202", result[1].Phone)
	suite.True(result[1].Active)

	suite.Equal(zoe.ID(), result[2].ID)
	suite.Equal("Zoe Adams", result[2].Name)
}

func (suite *GetAllDriversQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllDriversQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllDriversQuery constructor")
}

func (suite *GetAllDriversQueryHandlerTestSuite) seedDriver(name, phone string, active bool) *driver.Driver {
	aggregate, err := driver.NewDriver(kernel.NewUUID(), name, phone)
	suite.Require().NoError(err)
	if !active {
		aggregate.Deactivate()
	}

	repo := driverrepo.NewGormDriverRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
	return aggregate
}

func TestGetAllDriversQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllDriversQueryHandlerTestSuite))
}
