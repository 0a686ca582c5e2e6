package cmd

import (
	"log/slog"

	"ordering/internal/adapters/out/idempotency"
	"ordering/internal/adapters/out/notify"
	"ordering/internal/adapters/out/paymentgw"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers.
// It is the only place that knows concrete adapter types.
type CompositionRoot struct {
	config Config
	gormDB *gorm.DB
	logger *slog.Logger

	orders   ports.OrderRepository
	gateway  ports.PaymentGateway
	registry ports.ProviderRegistry
	cache    ports.IdempotencyCache
	notifier ports.Notifier
}

// NewCompositionRoot builds the adapter graph from the configuration.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	declineLimit, err := kernel.NewMoneyFromFloat(config.PaymentDeclineLimit)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:   config,
		gormDB:   gormDB,
		logger:   logger,
		orders:   orderrepo.NewGormOrderRepository(gormDB),
		gateway:  paymentgw.NewGateway(config.PaymentAPIKey, declineLimit, logger),
		registry: paymentgw.NewStaticRegistry(),
		cache:    idempotency.NewRedisCache(redisClient, config.IdempotencyTTL),
		notifier: notify.NewLogNotifier(logger),
	}, nil
}

// CreateCreateOrderCommandHandler builds the order placement handler.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orders,
		c.gateway,
		c.registry,
		c.cache,
		c.notifier,
		c.config.DefaultCurrency,
		c.logger,
	)
}

// CreateCancelOrderCommandHandler builds the cancellation handler.
func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orders, c.gateway, c.notifier, c.logger)
}

// CreateAdvanceFulfillmentCommandHandler builds the fulfillment sweep handler.
func (c *CompositionRoot) CreateAdvanceFulfillmentCommandHandler() commands.AdvanceFulfillmentCommandHandler {
	return commands.NewAdvanceFulfillmentCommandHandler(c.orders, c.notifier, c.logger)
}

// CreateGetOrderQueryHandler builds the single-order read handler.
func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

// CreateListOrdersQueryHandler builds the order history handler.
func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

// CreateGetOrderStatsQueryHandler builds the statistics handler.
func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	fulfillmentJob := jobs.NewFulfillmentJob(
		c.CreateAdvanceFulfillmentCommandHandler(),
		c.config.FulfillmentSchedule,
		c.config.FulfillmentBatchSize,
		c.config.FulfillmentDwell,
		c.logger,
	)

	return jobs.NewJobManager(fulfillmentJob)
}
