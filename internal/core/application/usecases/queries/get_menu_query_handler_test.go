package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/menurepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding data in query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}

type GetMenuQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetMenuQueryHandler
}

func (suite *GetMenuQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&menurepo.MenuItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetMenuQueryHandler(db)
}

func (suite *GetMenuQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetMenuQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE menu_items").Error
	suite.Require().NoError(err)
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetMenuQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_AvailableItems_ReturnsMenuSortedByCategoryAndName() {
	suite.seedItem("Classic Burger", menu.Burgers, true, suite.sizeGroup())
	suite.seedItem("Fries", menu.Sides, true)
	suite.seedItem("Cola", menu.Drinks, true)

	query := queries.NewGetMenuQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("Classic Burger", result[0].Name)
	suite.Equal("burgers", result[0].Category)
	suite.Equal("Cola", result[1].Name)
	suite.Equal("drinks", result[1].Category)
	suite.Equal("Fries", result[2].Name)
	suite.Equal("sides", result[2].Category)

	suite.Require().Len(result[0].Options, 1)
	size := result[0].Options[0]
	suite.Equal("size", size.ID)
	suite.Equal("single", size.Mode)
	suite.True(size.Required)
	suite.Require().Len(size.Variants, 2)
	suite.Equal("Regular", size.Variants[0].Name)
	suite.True(size.Variants[0].PriceAdjustment.Equal(decimal.Zero))
	suite.Equal("Large", size.Variants[1].Name)
	suite.True(size.Variants[1].PriceAdjustment.Equal(decimal.NewFromFloat(1.50)))
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_UnavailableItems_AreExcluded() {
	suite.seedItem("Classic Burger", menu.Burgers, true)
	suite.seedItem("Seasonal Special", menu.Burgers, false)

	query := queries.NewGetMenuQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Classic Burger", result[0].Name)
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetMenuQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetMenuQuery constructor")
}

func (suite *GetMenuQueryHandlerTestSuite) sizeGroup() menu.OptionGroup {
	regular, err := menu.NewVariant("regular", "Regular", decimal.Zero)
	suite.Require().NoError(err)
	large, err := menu.NewVariant("large", "Large", decimal.NewFromFloat(1.50))
	suite.Require().NoError(err)

	group, err := menu.NewOptionGroup("size", "Size", menu.Single, true, []menu.Variant{regular, large})
	suite.Require().NoError(err)
	return group
}

func (suite *GetMenuQueryHandlerTestSuite) seedItem(
	name string, category menu.Category, available bool, options ...menu.OptionGroup,
) {
	item, err := menu.NewItem(
		kernel.NewUUID(), name, "", decimal.NewFromFloat(6.00), category, available, options)
	suite.Require().NoError(err)

	repo := menurepo.NewGormMenuRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), item))
}

func TestGetMenuQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetMenuQueryHandlerTestSuite))
}
