package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/allisson/leadlink/internal/app"
	"github.com/allisson/leadlink/internal/config"
	outboxUseCase "github.com/allisson/leadlink/internal/outbox/usecase"
)

// RunWorker runs only the outbox worker, for deployments that keep it apart from the API.
func RunWorker(ctx context.Context, version string) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()
	logger.Info("starting worker", slog.String("version", version))
	defer closeContainer(container, logger)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	worker, err := container.OutboxUseCase(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize outbox worker: %w", err)
	}

	return runWorker(ctx, worker, logger)
}

func runWorker(ctx context.Context, worker outboxUseCase.UseCase, logger *slog.Logger) error {
	if err := ignoreCanceled(worker.Start(ctx)); err != nil {
		return fmt.Errorf("outbox worker stopped: %w", err)
	}
	logger.Info("worker stopped")
	return nil
}
