// Package app provides the dependency injection container that assembles leadlink.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gocloud.dev/pubsub"

	"github.com/allisson/leadlink/internal/config"
	"github.com/allisson/leadlink/internal/database"
	"github.com/allisson/leadlink/internal/http"
	leadHTTP "github.com/allisson/leadlink/internal/lead/http"
	leadUseCase "github.com/allisson/leadlink/internal/lead/usecase"
	"github.com/allisson/leadlink/internal/metrics"
	outboxUseCase "github.com/allisson/leadlink/internal/outbox/usecase"
	realtorHTTP "github.com/allisson/leadlink/internal/realtor/http"
	realtorUseCase "github.com/allisson/leadlink/internal/realtor/usecase"
	sharelinkHTTP "github.com/allisson/leadlink/internal/sharelink/http"
	sharelinkUseCase "github.com/allisson/leadlink/internal/sharelink/usecase"
)

// ErrUnsupportedDriver is returned for any DB_DRIVER other than postgres or mysql.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Container holds all application dependencies and builds each one on first access.
type Container struct {
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	leadEventsTopic *pubsub.Topic

	// Repositories
	realtorRepo   realtorUseCase.RealtorRepository
	shareLinkRepo sharelinkUseCase.ShareLinkRepository
	leadRepo      leadUseCase.LeadRepository
	outboxRepo    outboxUseCase.OutboxEventRepository

	// Use Cases
	realtorUseCase   realtorUseCase.RealtorUseCase
	shareLinkUseCase sharelinkUseCase.ShareLinkUseCase
	leadUseCase      leadUseCase.LeadUseCase
	outboxUseCase    outboxUseCase.UseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                   sync.Mutex
	loggerInit           sync.Once
	dbInit               sync.Once
	txManagerInit        sync.Once
	metricsProviderInit  sync.Once
	businessMetricsInit  sync.Once
	leadEventsTopicInit  sync.Once
	realtorRepoInit      sync.Once
	shareLinkRepoInit    sync.Once
	leadRepoInit         sync.Once
	outboxRepoInit       sync.Once
	realtorUseCaseInit   sync.Once
	shareLinkUseCaseInit sync.Once
	leadUseCaseInit      sync.Once
	outboxUseCaseInit    sync.Once
	httpServerInit       sync.Once
	metricsServerInit    sync.Once
	initErrors           map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// once runs init a single time under key and replays its error on every later call.
func (c *Container) once(o *sync.Once, key string, init func() error) error {
	o.Do(func() {
		if err := init(); err != nil {
			c.mu.Lock()
			c.initErrors[key] = err
			c.mu.Unlock()
		}
	})
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[key]
}

// Logger returns the JSON slog logger configured from LOG_LEVEL.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
func (c *Container) DB() (*sql.DB, error) {
	err := c.once(&c.dbInit, "db", func() (err error) {
		c.db, err = c.initDB()
		return err
	})
	return c.db, err
}

// TxManager returns the transaction manager.
func (c *Container) TxManager() (database.TxManager, error) {
	err := c.once(&c.txManagerInit, "txManager", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for tx manager: %w", err)
		}
		c.txManager = database.NewTxManager(db)
		return nil
	})
	return c.txManager, err
}

// MetricsProvider returns the OpenTelemetry provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	err := c.once(&c.metricsProviderInit, "metricsProvider", func() error {
		if !c.config.MetricsEnabled {
			return nil
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			return fmt.Errorf("failed to create metrics provider: %w", err)
		}
		c.metricsProvider = provider
		return nil
	})
	return c.metricsProvider, err
}

// BusinessMetrics returns the use case metrics recorder. It is a no-op when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	err := c.once(&c.businessMetricsInit, "businessMetrics", func() error {
		provider, err := c.MetricsProvider()
		if err != nil {
			return err
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return nil
		}
		c.businessMetrics, err = metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			return fmt.Errorf("failed to create business metrics: %w", err)
		}
		return nil
	})
	return c.businessMetrics, err
}

// HTTPServer returns the API server with every route mounted. ctx bounds the
// background goroutines of its middleware.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	err := c.once(&c.httpServerInit, "httpServer", func() error {
		logger := c.Logger()

		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for http server: %w", err)
		}
		realtors, err := c.RealtorUseCase()
		if err != nil {
			return fmt.Errorf("failed to get realtor use case for http server: %w", err)
		}
		shareLinks, err := c.ShareLinkUseCase()
		if err != nil {
			return fmt.Errorf("failed to get share link use case for http server: %w", err)
		}
		leads, err := c.LeadUseCase()
		if err != nil {
			return fmt.Errorf("failed to get lead use case for http server: %w", err)
		}
		provider, err := c.MetricsProvider()
		if err != nil {
			return fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}

		server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger)
		server.SetupRouter(ctx, c.config, http.Handlers{
			Realtor:   realtorHTTP.NewRealtorHandler(realtors, logger),
			ShareLink: sharelinkHTTP.NewShareLinkHandler(shareLinks, logger),
			Lead:      leadHTTP.NewLeadHandler(leads, logger),
		}, provider)

		c.httpServer = server
		return nil
	})
	return c.httpServer, err
}

// MetricsServer returns the Prometheus server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	err := c.once(&c.metricsServerInit, "metricsServer", func() error {
		provider, err := c.MetricsProvider()
		if err != nil {
			return fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
		}
		if provider == nil {
			return nil
		}
		c.metricsServer = http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider)
		return nil
	})
	return c.metricsServer, err
}

// Shutdown releases every initialized resource, servers first and the database last.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.leadEventsTopic != nil {
		if err := c.leadEventsTopic.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("lead events topic shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
