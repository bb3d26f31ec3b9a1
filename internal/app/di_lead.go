package app

import (
	"fmt"

	leadRepository "github.com/allisson/leadlink/internal/lead/repository"
	leadUseCase "github.com/allisson/leadlink/internal/lead/usecase"
)

// LeadRepository returns the lead repository for the configured driver.
func (c *Container) LeadRepository() (leadUseCase.LeadRepository, error) {
	err := c.once(&c.leadRepoInit, "leadRepo", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for lead repository: %w", err)
		}
		switch c.config.DBDriver {
		case "mysql":
			c.leadRepo = leadRepository.NewMySQLLeadRepository(db)
		case "postgres":
			c.leadRepo = leadRepository.NewPostgreSQLLeadRepository(db)
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedDriver, c.config.DBDriver)
		}
		return nil
	})
	return c.leadRepo, err
}

// LeadUseCase returns the lead use case wrapped with metrics.
func (c *Container) LeadUseCase() (leadUseCase.LeadUseCase, error) {
	err := c.once(&c.leadUseCaseInit, "leadUseCase", func() error {
		txManager, err := c.TxManager()
		if err != nil {
			return fmt.Errorf("failed to get tx manager for lead use case: %w", err)
		}
		leadRepo, err := c.LeadRepository()
		if err != nil {
			return fmt.Errorf("failed to get lead repository for lead use case: %w", err)
		}
		outboxRepo, err := c.OutboxRepository()
		if err != nil {
			return fmt.Errorf("failed to get outbox repository for lead use case: %w", err)
		}
		tokens, err := c.ShareLinkUseCase()
		if err != nil {
			return fmt.Errorf("failed to get share link use case for lead use case: %w", err)
		}
		realtors, err := c.RealtorUseCase()
		if err != nil {
			return fmt.Errorf("failed to get realtor use case for lead use case: %w", err)
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return fmt.Errorf("failed to get business metrics for lead use case: %w", err)
		}

		useCase := leadUseCase.NewLeadUseCase(txManager, leadRepo, outboxRepo, tokens, realtors)
		c.leadUseCase = leadUseCase.NewLeadUseCaseWithMetrics(useCase, businessMetrics)
		return nil
	})
	return c.leadUseCase, err
}
