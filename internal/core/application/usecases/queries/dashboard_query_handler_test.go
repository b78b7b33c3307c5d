package queries_test

import (
	"context"
	"testing"
	"time"

	beveragepostgres "beverage/internal/adapters/out/postgres"
	"beverage/internal/adapters/out/postgres/catalogrepo"
	"beverage/internal/adapters/out/postgres/notificationrepo"
	"beverage/internal/adapters/out/postgres/orderrepo"
	"beverage/internal/adapters/out/postgres/restaurantrepo"
	"beverage/internal/core/application/usecases/queries"
	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/notification"
	"beverage/internal/core/domain/model/order"
	"beverage/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type DashboardQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.DashboardQueryHandler

	restaurantID kernel.UUID
	bottleID     kernel.UUID
}

func (suite *DashboardQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(beveragepostgres.Migrate(db))

	suite.handler = queries.NewDashboardQueryHandler(db)
}

func (suite *DashboardQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *DashboardQueryHandlerTestSuite) SetupTest() {
	ctx := context.Background()

	err := suite.db.Exec(
		"TRUNCATE TABLE notifications, orders, bottles, restaurants CASCADE").Error
	suite.Require().NoError(err)

	suite.restaurantID = kernel.NewUUID()
	owner, err := restaurant.NewRestaurant(
		suite.restaurantID, "Blue Lotus", "12 Canal St", "+31-20-555-0101")
	suite.Require().NoError(err)
	suite.Require().NoError(
		restaurantrepo.NewGormRestaurantRepository(suite.db).Add(ctx, owner))

	suite.bottleID = kernel.NewUUID()
	price, err := kernel.MoneyFromString("10.00")
	suite.Require().NoError(err)
	bottle, err := catalog.NewBottle(suite.bottleID, catalog.Size1L, price)
	suite.Require().NoError(err)
	suite.Require().NoError(
		catalogrepo.NewGormCatalogRepository(suite.db).Add(ctx, bottle))
}

func (suite *DashboardQueryHandlerTestSuite) seedOrder(status order.Status, placedAt time.Time) kernel.UUID {
	id := kernel.NewUUID()
	aggregate, err := order.RestoreOrder(
		id, suite.restaurantID, suite.bottleID, catalog.Size1L, 50, status, "", placedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(
		orderrepo.NewGormOrderRepository(suite.db).Add(context.Background(), aggregate))
	return id
}

func (suite *DashboardQueryHandlerTestSuite) seedNotification(read bool) {
	entry, err := notification.RestoreNotification(
		kernel.NewUUID(), suite.restaurantID, "Order update", time.Now().UTC(), read)
	suite.Require().NoError(err)
	suite.Require().NoError(
		notificationrepo.NewGormNotificationRepository(suite.db).Add(context.Background(), entry))
}

func (suite *DashboardQueryHandlerTestSuite) TestHandle_EmptyRestaurant_ReturnsZeroCounts() {
	query, err := queries.NewDashboardQuery(suite.restaurantID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(0, result.TotalOrders)
	suite.Equal(0, result.DeliveredOrders)
	suite.Equal(0, result.OpenOrders)
	suite.True(result.TotalSpent.IsZero())
	suite.Empty(result.RecentOrders)
	suite.Equal(0, result.UnreadNotifications)
}

func (suite *DashboardQueryHandlerTestSuite) TestHandle_CountsAndTotalSpent() {
	base := time.Now().UTC().Add(-time.Hour)
	suite.seedOrder(order.Pending, base)
	suite.seedOrder(order.Processing, base.Add(time.Minute))
	suite.seedOrder(order.Delivered, base.Add(2*time.Minute))
	suite.seedOrder(order.Cancelled, base.Add(3*time.Minute))

	suite.seedNotification(false)
	suite.seedNotification(false)
	suite.seedNotification(true)

	query, err := queries.NewDashboardQuery(suite.restaurantID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(4, result.TotalOrders)
	suite.Equal(1, result.DeliveredOrders)
	suite.Equal(2, result.OpenOrders)

	// Three non-cancelled orders of 50 bottles at 10.00
	expectedSpent, err := kernel.MoneyFromString("1500.00")
	suite.Require().NoError(err)
	suite.True(result.TotalSpent.IsEqual(expectedSpent))

	suite.Equal(2, result.UnreadNotifications)
}

func (suite *DashboardQueryHandlerTestSuite) TestHandle_RecentOrders_NewestFirstCappedAtFive() {
	base := time.Now().UTC().Add(-time.Hour)
	ids := make([]kernel.UUID, 0, 6)
	for i := 0; i < 6; i++ {
		ids = append(ids, suite.seedOrder(order.Pending, base.Add(time.Duration(i)*time.Minute)))
	}

	query, err := queries.NewDashboardQuery(suite.restaurantID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.RecentOrders, 5)

	// Newest first; the oldest of the six never appears
	for i, recent := range result.RecentOrders {
		suite.Equal(ids[5-i], recent.ID)
		suite.Equal(catalog.Size1L, recent.Size)
		suite.Equal(50, recent.Quantity)
		suite.Equal(order.Pending, recent.Status)
	}
}

func (suite *DashboardQueryHandlerTestSuite) TestHandle_OtherRestaurantOrders_Excluded() {
	ctx := context.Background()

	otherID := kernel.NewUUID()
	other, err := restaurant.NewRestaurant(
		otherID, "Jade Garden", "3 Harbour Rd", "+31-20-555-0202")
	suite.Require().NoError(err)
	suite.Require().NoError(
		restaurantrepo.NewGormRestaurantRepository(suite.db).Add(ctx, other))

	otherOrder, err := order.RestoreOrder(
		kernel.NewUUID(), otherID, suite.bottleID, catalog.Size1L, 50,
		order.Pending, "", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(
		orderrepo.NewGormOrderRepository(suite.db).Add(ctx, otherOrder))

	query, err := queries.NewDashboardQuery(suite.restaurantID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(0, result.TotalOrders)
	suite.Empty(result.RecentOrders)
}

func TestDashboardQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardQueryHandlerTestSuite))
}
