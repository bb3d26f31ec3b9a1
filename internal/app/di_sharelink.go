package app

import (
	"fmt"

	sharelinkRepository "github.com/allisson/leadlink/internal/sharelink/repository"
	"github.com/allisson/leadlink/internal/sharelink/service"
	sharelinkUseCase "github.com/allisson/leadlink/internal/sharelink/usecase"
)

// ShareLinkRepository returns the share token store for the configured driver.
func (c *Container) ShareLinkRepository() (sharelinkUseCase.ShareLinkRepository, error) {
	err := c.once(&c.shareLinkRepoInit, "shareLinkRepo", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for share link repository: %w", err)
		}
		switch c.config.DBDriver {
		case "mysql":
			c.shareLinkRepo = sharelinkRepository.NewMySQLShareLinkRepository(db)
		case "postgres":
			c.shareLinkRepo = sharelinkRepository.NewPostgreSQLShareLinkRepository(db)
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedDriver, c.config.DBDriver)
		}
		return nil
	})
	return c.shareLinkRepo, err
}

// ShareLinkUseCase returns the share link use case wrapped with metrics.
func (c *Container) ShareLinkUseCase() (sharelinkUseCase.ShareLinkUseCase, error) {
	err := c.once(&c.shareLinkUseCaseInit, "shareLinkUseCase", func() error {
		txManager, err := c.TxManager()
		if err != nil {
			return fmt.Errorf("failed to get tx manager for share link use case: %w", err)
		}
		repo, err := c.ShareLinkRepository()
		if err != nil {
			return fmt.Errorf("failed to get share link repository for share link use case: %w", err)
		}
		realtors, err := c.RealtorUseCase()
		if err != nil {
			return fmt.Errorf("failed to get realtor use case for share link use case: %w", err)
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return fmt.Errorf("failed to get business metrics for share link use case: %w", err)
		}

		useCase := sharelinkUseCase.NewShareLinkUseCase(
			sharelinkUseCase.Config{
				BaseURL:       c.config.ShareLinkBaseURL,
				StrictResolve: c.config.ShareLinkStrictResolve,
			},
			txManager,
			service.NewTokenGenerator(),
			repo,
			realtors,
		)
		c.shareLinkUseCase = sharelinkUseCase.NewShareLinkUseCaseWithMetrics(useCase, businessMetrics)
		return nil
	})
	return c.shareLinkUseCase, err
}
