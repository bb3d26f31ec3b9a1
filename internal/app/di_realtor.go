package app

import (
	"fmt"

	realtorRepository "github.com/allisson/leadlink/internal/realtor/repository"
	realtorUseCase "github.com/allisson/leadlink/internal/realtor/usecase"
)

// RealtorRepository returns the realtor repository for the configured driver.
func (c *Container) RealtorRepository() (realtorUseCase.RealtorRepository, error) {
	err := c.once(&c.realtorRepoInit, "realtorRepo", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for realtor repository: %w", err)
		}
		switch c.config.DBDriver {
		case "mysql":
			c.realtorRepo = realtorRepository.NewMySQLRealtorRepository(db)
		case "postgres":
			c.realtorRepo = realtorRepository.NewPostgreSQLRealtorRepository(db)
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedDriver, c.config.DBDriver)
		}
		return nil
	})
	return c.realtorRepo, err
}

// RealtorUseCase returns the realtor use case wrapped with metrics.
func (c *Container) RealtorUseCase() (realtorUseCase.RealtorUseCase, error) {
	err := c.once(&c.realtorUseCaseInit, "realtorUseCase", func() error {
		txManager, err := c.TxManager()
		if err != nil {
			return fmt.Errorf("failed to get tx manager for realtor use case: %w", err)
		}
		realtorRepo, err := c.RealtorRepository()
		if err != nil {
			return fmt.Errorf("failed to get realtor repository for realtor use case: %w", err)
		}
		outboxRepo, err := c.OutboxRepository()
		if err != nil {
			return fmt.Errorf("failed to get outbox repository for realtor use case: %w", err)
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return fmt.Errorf("failed to get business metrics for realtor use case: %w", err)
		}

		useCase := realtorUseCase.NewRealtorUseCase(txManager, realtorRepo, outboxRepo)
		c.realtorUseCase = realtorUseCase.NewRealtorUseCaseWithMetrics(useCase, businessMetrics)
		return nil
	})
	return c.realtorUseCase, err
}
