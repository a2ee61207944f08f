package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/asymmetryfinance/usdaf-indexer/internal/adapter"
	"github.com/asymmetryfinance/usdaf-indexer/internal/config"
	"github.com/asymmetryfinance/usdaf-indexer/internal/logger"
	"github.com/asymmetryfinance/usdaf-indexer/internal/pricing"
	"github.com/asymmetryfinance/usdaf-indexer/internal/processor"
	"github.com/asymmetryfinance/usdaf-indexer/internal/providers/ethereum"
	"github.com/asymmetryfinance/usdaf-indexer/internal/registry"
	"github.com/asymmetryfinance/usdaf-indexer/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadProcessorConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "ledger-processor",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Ledger Processor")

	// Load protocol registry
	protocol, err := registry.LoadProtocol(cfg.ProtocolPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load protocol registry", zap.Error(err), zap.String("path", cfg.ProtocolPath))
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to run database migrations", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()
	httpClient := adapter.NewHTTPClient(cfg.Pricing.Timeout)

	// Initialize ethereum client for traces, branch state and share rates
	ethDialer := adapter.NewEthClientDialer()
	ethClient, err := ethDialer.Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial Ethereum RPC", zap.Error(err), zap.String("rpc_url", cfg.Ethereum.RPCURL))
	}
	defer ethClient.Close()
	chainClient := ethereum.NewClient(ethClient, protocol.Multicall3())

	// Initialize pricing service
	priceService := pricing.NewService(httpClient, chainClient, protocol, cfg.Pricing.BaseURL)

	// Create router and processor
	router := processor.NewRouter(protocol, chainClient, priceService)

	ledgerProcessor, err := processor.NewProcessor(
		processor.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			ConsumerName:   cfg.NATS.ConsumerName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			AckWaitTimeout: cfg.NATS.AckWait,
			MaxDeliver:     cfg.NATS.MaxDeliver,
		},
		natsJS,
		dataStore,
		router,
		jsonAdapter,
	)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ledger processor", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer ledgerProcessor.Close()
	logger.InfoCtx(ctx, "Ledger processor created", zap.String("stream", cfg.NATS.StreamName), zap.String("consumer", cfg.NATS.ConsumerName))

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Channel for processor errors
	errCh := make(chan error, 1)

	// Start the processor. A returned error is a halt (ledger integrity
	// violation): the offending event stays unacked and is redelivered
	// after the operator intervenes and restarts.
	go func() {
		if err := ledgerProcessor.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "processor"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	// Use non-context logger for final shutdown message since context is already canceled
	logger.Info("Ledger Processor stopped")
}
