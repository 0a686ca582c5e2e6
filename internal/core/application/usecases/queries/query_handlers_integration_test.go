package queries_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueryHandlersIntegrationTestSuite exercises the read side against a real
// PostgreSQL instance, seeded through the order repository.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository

	getHandler   queries.GetOrderQueryHandler
	listHandler  queries.ListOrdersQueryHandler
	statsHandler queries.GetOrderStatsQueryHandler
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))

	suite.getHandler = queries.NewGetOrderQueryHandler(db)
	suite.listHandler = queries.NewListOrdersQueryHandler(db)
	suite.statsHandler = queries.NewGetOrderStatsQueryHandler(db)
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
	suite.repo = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) seedOrder(
	ownerID kernel.UUID,
	createdAt time.Time,
) *order.Order {
	price, err := kernel.NewMoneyFromFloat(15.99)
	suite.Require().NoError(err)
	first, err := order.NewItem("sku-1", 2, price)
	suite.Require().NoError(err)

	price, err = kernel.NewMoneyFromFloat(9.99)
	suite.Require().NoError(err)
	second, err := order.NewItem("sku-2", 1, price)
	suite.Require().NoError(err)

	seeded, err := order.NewOrder(
		kernel.NewUUID(),
		ownerID,
		[]order.Item{first, second},
		"221B Baker St",
		"stripe",
		createdAt,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(seeded.AttachPayment("txn_abc123def456"))
	suite.Require().NoError(suite.repo.Add(context.Background(), seeded))
	return seeded
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_FullView() {
	ownerID := kernel.NewUUID()
	seeded := suite.seedOrder(ownerID, time.Now())

	query, err := queries.NewGetOrderQuery(seeded.ID(), ownerID)
	suite.Require().NoError(err)

	view, err := suite.getHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.True(view.ID.IsEqual(seeded.ID()))
	suite.Equal("pending", view.Status)
	suite.Equal("41.97", view.Total.String())
	suite.Equal("221B Baker St", view.ShippingAddress)
	suite.Equal("stripe", view.PaymentMethod)
	suite.Require().Len(view.Items, 2)
	suite.Equal("sku-1", view.Items[0].ProductID)
	suite.Equal("31.98", view.Items[0].Subtotal.String())
	suite.Require().NotNil(view.PaymentTransactionID)
	suite.Equal("txn_abc123def456", *view.PaymentTransactionID)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_Missing_NotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_ForeignOwner_NotAuthorized() {
	seeded := suite.seedOrder(kernel.NewUUID(), time.Now())

	query, err := queries.NewGetOrderQuery(seeded.ID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrNotAuthorized)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListOrders_NewestFirstAndPaged() {
	ownerID := kernel.NewUUID()
	base := time.Now().Add(-time.Hour)
	for i := range 5 {
		suite.seedOrder(ownerID, base.Add(time.Duration(i)*time.Minute))
	}
	suite.seedOrder(kernel.NewUUID(), base)

	query, err := queries.NewListOrdersQuery(ownerID, ports.Page{Limit: 3})
	suite.Require().NoError(err)

	view, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(view.Orders, 3)
	suite.Equal(3, view.Limit)
	for i := 1; i < len(view.Orders); i++ {
		suite.False(view.Orders[i].CreatedAt.After(view.Orders[i-1].CreatedAt))
	}
	for _, summary := range view.Orders {
		suite.Equal(2, summary.ItemCount)
		suite.Equal("41.97", summary.Total.String())
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestListOrders_EmptyHistory() {
	query, err := queries.NewListOrdersQuery(kernel.NewUUID(), ports.Page{})
	suite.Require().NoError(err)

	view, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(view.Orders)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderStats() {
	ownerID := kernel.NewUUID()
	first := suite.seedOrder(ownerID, time.Now().Add(-time.Minute))
	suite.seedOrder(ownerID, time.Now())
	suite.seedOrder(kernel.NewUUID(), time.Now())

	suite.Require().NoError(suite.repo.UpdateStatus(
		context.Background(), first.ID(), order.Pending, order.Cancelled,
	))

	query, err := queries.NewGetOrderStatsQuery(ownerID)
	suite.Require().NoError(err)

	stats, err := suite.statsHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(2, stats.TotalOrders)
	suite.Equal("83.94", stats.TotalSpent.String())
	suite.Equal("41.97", stats.AverageOrder.String())
	suite.Equal(1, stats.CountsByStatus["pending"])
	suite.Equal(1, stats.CountsByStatus["cancelled"])
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
