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
	"github.com/asymmetryfinance/usdaf-indexer/internal/emitter"
	"github.com/asymmetryfinance/usdaf-indexer/internal/logger"
	"github.com/asymmetryfinance/usdaf-indexer/internal/providers/ethereum"
	"github.com/asymmetryfinance/usdaf-indexer/internal/providers/jetstream"
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
	cfg, err := config.LoadEmitterConfig(*configFile, *envPath)
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
			"service": "event-emitter",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Event Emitter")

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
	clockAdapter := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()

	// Initialize ethereum client
	ethDialer := adapter.NewEthClientDialer()
	ethClient, err := ethDialer.Dial(ctx, cfg.Ethereum.WebSocketURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial Ethereum node", zap.Error(err), zap.String("websocket_url", cfg.Ethereum.WebSocketURL))
	}
	defer ethClient.Close()
	logger.InfoCtx(ctx, "Connected to Ethereum WebSocket")

	// Initialize Ethereum subscriber. Satellite contracts (StakeDAO receipt
	// tokens and gauges) are discovered at runtime by the ledger processor,
	// so the filter set is re-read from the store on every (re)subscription.
	ethSubscriber := ethereum.NewSubscriber(ethClient, protocol, dataStore.SatelliteAddresses)
	defer ethSubscriber.Close()

	// Initialize NATS publisher
	natsPublisher, err := jetstream.NewPublisher(
		jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, natsJS, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer natsPublisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS JetStream")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Create emitter with common logic
	emitterCfg := emitter.Config{
		Chain:           cfg.Ethereum.Chain,
		StartBlock:      cfg.Ethereum.StartBlock,
		CursorSaveFreq:  cfg.Cursor.SaveFreq,
		CursorSaveDelay: cfg.Cursor.SaveDelay,
	}

	eventEmitter := emitter.NewEmitter(
		ethSubscriber,
		natsPublisher,
		dataStore,
		emitterCfg,
		clockAdapter,
	)
	defer eventEmitter.Close()

	// Channel for emitter errors
	errCh := make(chan error, 1)

	// Start the emitter
	go func() {
		if err := eventEmitter.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case <-natsPublisher.CloseChan():
		logger.InfoCtx(ctx, "NATS connection closed unexpectedly")
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "emitter"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	// Use non-context logger for final shutdown message since context is already canceled
	logger.Info("Event Emitter stopped")
}
