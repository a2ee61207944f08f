package emitter

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/asymmetryfinance/usdaf-indexer/internal/adapter"
	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
	"github.com/asymmetryfinance/usdaf-indexer/internal/logger"
	"github.com/asymmetryfinance/usdaf-indexer/internal/messaging"
	"github.com/asymmetryfinance/usdaf-indexer/internal/store"
)

// Config holds the configuration for the event emitter
type Config struct {
	Chain           string
	StartBlock      uint64
	CursorSaveFreq  uint64        // Save cursor every N blocks
	CursorSaveDelay time.Duration // Or save cursor every N seconds
}

// Emitter defines the interface for the event emitter
//
//go:generate mockgen -source=emitter.go -destination=../mocks/emitter.go -package=mocks -mock_names=Emitter=MockEmitter
type Emitter interface {
	// Run starts the event emitter
	Run(ctx context.Context) error
	// Close closes the emitter and cleans up resources
	Close()
}

// emitter subscribes to protocol logs and publishes them to NATS
type emitter struct {
	subscriber messaging.Subscriber
	publisher  messaging.Publisher
	cursors    store.CursorStore
	config     Config
	clock      adapter.Clock
}

// NewEmitter creates a new event emitter
func NewEmitter(
	sub messaging.Subscriber,
	pub messaging.Publisher,
	cursors store.CursorStore,
	cfg Config,
	clock adapter.Clock,
) Emitter {
	return &emitter{
		subscriber: sub,
		publisher:  pub,
		cursors:    cursors,
		config:     cfg,
		clock:      clock,
	}
}

// Run starts the event emitter
func (e *emitter) Run(ctx context.Context) error {
	// Determine starting block
	startBlock := e.config.StartBlock
	if startBlock == 0 {
		// Get last published block from store
		lastBlock, err := e.cursors.GetBlockCursor(ctx, e.config.Chain)
		if err != nil {
			return fmt.Errorf("failed to get block cursor: %w", err)
		}

		if lastBlock > 0 {
			startBlock = lastBlock + 1
			logger.Info("Resuming from last published block", zap.String("chain", e.config.Chain), zap.Uint64("block", startBlock))
		} else {
			// Start from latest block
			latestBlock, err := e.subscriber.GetLatestBlock(ctx)
			if err != nil {
				return fmt.Errorf("failed to get latest block number: %w", err)
			}
			startBlock = latestBlock
			logger.Info("Starting from latest block", zap.String("chain", e.config.Chain), zap.Uint64("block", startBlock))
		}
	} else {
		logger.Info("Starting from configured block", zap.String("chain", e.config.Chain), zap.Uint64("block", startBlock))
	}

	// Channel for subscription failures
	errCh := make(chan error, 1)

	// Start subscribing to events
	go func() {
		logger.Info("Starting event subscription", zap.String("chain", e.config.Chain))

		lastSavedBlock := uint64(0)
		lastSaveTime := e.clock.Now()

		handler := func(event *domain.ProtocolEvent) error {
			// Publish to NATS
			if err := e.publisher.PublishEvent(ctx, event); err != nil {
				txHash, _ := event.JournalKey()
				return fmt.Errorf("failed to publish event %s: %w", txHash, err)
			}

			// Save cursor periodically (every N blocks or N seconds)
			shouldSave := event.BlockNumber-lastSavedBlock >= e.config.CursorSaveFreq ||
				e.clock.Since(lastSaveTime) >= e.config.CursorSaveDelay

			if shouldSave {
				if err := e.cursors.SetBlockCursor(ctx, e.config.Chain, event.BlockNumber); err != nil {
					logger.WarnCtx(ctx, "Failed to save block cursor", zap.Error(err), zap.Uint64("block", event.BlockNumber))
				} else {
					lastSavedBlock = event.BlockNumber
					lastSaveTime = e.clock.Now()
				}
			}

			return nil
		}

		err := e.subscriber.SubscribeEvents(ctx, startBlock, handler)
		if err != nil {
			errCh <- err
		}
	}()

	// Wait for error or context cancellation
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes the emitter and cleans up resources
func (e *emitter) Close() {
	e.subscriber.Close()
}
