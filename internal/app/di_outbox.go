package app

import (
	"context"
	"fmt"

	"gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/awssnssqs"
	_ "gocloud.dev/pubsub/gcppubsub"
	_ "gocloud.dev/pubsub/mempubsub"

	outboxRepository "github.com/allisson/leadlink/internal/outbox/repository"
	outboxUseCase "github.com/allisson/leadlink/internal/outbox/usecase"
)

// LeadEventsTopic returns the pubsub topic outbox events are published to,
// or nil when LEAD_EVENTS_TOPIC_URL is empty.
func (c *Container) LeadEventsTopic(ctx context.Context) (*pubsub.Topic, error) {
	err := c.once(&c.leadEventsTopicInit, "leadEventsTopic", func() error {
		if c.config.LeadEventsTopicURL == "" {
			return nil
		}
		topic, err := pubsub.OpenTopic(ctx, c.config.LeadEventsTopicURL)
		if err != nil {
			return fmt.Errorf("failed to open lead events topic: %w", err)
		}
		c.leadEventsTopic = topic
		return nil
	})
	return c.leadEventsTopic, err
}

// OutboxRepository returns the outbox event repository for the configured driver.
func (c *Container) OutboxRepository() (outboxUseCase.OutboxEventRepository, error) {
	err := c.once(&c.outboxRepoInit, "outboxRepo", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for outbox repository: %w", err)
		}
		switch c.config.DBDriver {
		case "mysql":
			c.outboxRepo = outboxRepository.NewMySQLOutboxEventRepository(db)
		case "postgres":
			c.outboxRepo = outboxRepository.NewPostgreSQLOutboxEventRepository(db)
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedDriver, c.config.DBDriver)
		}
		return nil
	})
	return c.outboxRepo, err
}

// OutboxUseCase returns the outbox worker. Events go to the lead events topic,
// or to the log when no topic is configured.
func (c *Container) OutboxUseCase(ctx context.Context) (outboxUseCase.UseCase, error) {
	err := c.once(&c.outboxUseCaseInit, "outboxUseCase", func() error {
		logger := c.Logger()

		txManager, err := c.TxManager()
		if err != nil {
			return fmt.Errorf("failed to get tx manager for outbox use case: %w", err)
		}
		outboxRepo, err := c.OutboxRepository()
		if err != nil {
			return fmt.Errorf("failed to get outbox repository for outbox use case: %w", err)
		}
		topic, err := c.LeadEventsTopic(ctx)
		if err != nil {
			return err
		}

		var processor outboxUseCase.EventProcessor = outboxUseCase.NewLoggingEventProcessor(logger)
		if topic != nil {
			processor = outboxUseCase.NewPubSubEventProcessor(topic, logger)
		}

		c.outboxUseCase = outboxUseCase.NewOutboxUseCase(
			outboxUseCase.Config{
				Interval:   c.config.WorkerInterval,
				BatchSize:  c.config.WorkerBatchSize,
				MaxRetries: c.config.WorkerMaxRetries,
			},
			txManager,
			outboxRepo,
			processor,
			logger,
		)
		return nil
	})
	return c.outboxUseCase, err
}
