package cmd

import (
	"log/slog"
	"os"

	"grocery/internal/adapters/in/http"
	"grocery/internal/adapters/out/kafka"
	"grocery/internal/adapters/out/postgres"
	"grocery/internal/adapters/out/postgres/outboxrepo"
	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/services"
	"grocery/internal/jobs"
	"grocery/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory(), services.NewItemNegotiator())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartShoppingCommandHandler() commands.StartShoppingCommandHandler {
	return commands.NewStartShoppingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOutForDeliveryCommandHandler() commands.MarkOutForDeliveryCommandHandler {
	return commands.NewMarkOutForDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdminOverrideStatusCommandHandler() commands.AdminOverrideStatusCommandHandler {
	return commands.NewAdminOverrideStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateConfirmOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateRejectOrderCommandHandler(),
		c.CreateStartShoppingCommandHandler(),
		c.CreateMarkOutForDeliveryCommandHandler(),
		c.CreateMarkDeliveredCommandHandler(),
		c.CreateAdminOverrideStatusCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
	)
}

// CreateJobManager wires the outbox relay against Kafka. The returned
// publisher must be closed after the jobs are stopped.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, *kafka.Publisher) {
	publisher := kafka.NewPublisher(c.configs.KafkaHost, c.configs.KafkaOrderChangedTopic)
	store := outboxrepo.NewGormOutboxRepository(c.gormDB)
	jobManager := jobs.NewJobManager(store, publisher, metrics.NewRelayMetrics("relay"), c.logger)
	return jobManager, publisher
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
