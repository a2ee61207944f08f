package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/asymmetryfinance/usdaf-indexer/internal/adapter"
	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
	"github.com/asymmetryfinance/usdaf-indexer/internal/logger"
	"github.com/asymmetryfinance/usdaf-indexer/internal/store"
)

// Config holds the configuration for the ledger processor
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
}

// EventRouter applies one protocol event against a transactional store
//
//go:generate mockgen -source=processor.go -destination=../mocks/processor.go -package=mocks -mock_names=EventRouter=MockEventRouter
type EventRouter interface {
	Route(ctx context.Context, st store.Store, event *domain.ProtocolEvent) error
}

// Processor defines the interface for the ledger processor
type Processor interface {
	// Run starts the ledger processor
	Run(ctx context.Context) error
	// Close closes the processor and cleans up resources
	Close()
}

type processor struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	store  store.Store
	router EventRouter
	json   adapter.JSON
	config Config
}

// NewProcessor creates a new ledger processor
func NewProcessor(
	cfg Config,
	natsJS adapter.NatsJetStream,
	st store.Store,
	router EventRouter,
	jsonAdapter adapter.JSON,
) (Processor, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &processor{
		nc:     nc,
		js:     js,
		store:  st,
		router: router,
		json:   jsonAdapter,
		config: cfg,
	}, nil
}

// Run starts the ledger processor
func (p *processor) Run(ctx context.Context) error {
	logger.Info("Starting ledger processor", zap.String("stream", p.config.StreamName), zap.String("consumer", p.config.ConsumerName))

	// Subscribe to all protocol event subjects
	subject := "events.usdaf.>"

	// Create or get consumer
	consumerConfig := jetstream.ConsumerConfig{
		Durable:       p.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       p.config.AckWaitTimeout,
		MaxDeliver:    p.config.MaxDeliver,
		FilterSubject: subject,
	}

	consumer, err := p.js.CreateOrUpdateConsumer(ctx, p.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	// Create subscription
	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	// Process messages strictly in order. Balance mutations are
	// read-modify-write, so there is exactly one in-flight event at any
	// time; ordering is the stream's publish order.
	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down ledger processor")
			return ctx.Err()
		case msg := <-msgChan:
			if err := p.handleMessage(ctx, msg); err != nil {
				return err
			}
		}
	}
}

// handleMessage processes a single NATS message. A returned error halts the
// processor; the message is left unacked for redelivery after restart.
func (p *processor) handleMessage(ctx context.Context, msg adapter.Message) error {
	// Get metadata for logging
	metadata, _ := msg.Metadata()

	// Parse event
	var event domain.ProtocolEvent
	if err := p.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to unmarshal event"))
		// Terminate message for unparseable data
		p.term(ctx, msg)
		return nil
	}

	txHash, logIndex := event.JournalKey()

	logger.Debug("Received event",
		zap.String("kind", string(event.Kind)),
		zap.String("contract", event.Contract),
		zap.String("txHash", txHash),
		zap.Uint("logIndex", logIndex),
		zap.Uint64("block", event.BlockNumber),
		zap.Uint64("deliveryCount", deliveryCount(metadata)),
	)

	// Journal insert and all event effects commit atomically
	err := p.store.WithinTransaction(ctx, func(st store.Store) error {
		fresh, err := st.MarkProcessed(ctx, txHash, logIndex, string(event.Kind), event.BlockNumber)
		if err != nil {
			return err
		}
		if !fresh {
			logger.Debug("Skipping already processed event", zap.String("txHash", txHash), zap.Uint("logIndex", logIndex))
			return nil
		}

		return p.router.Route(ctx, st, &event)
	})

	switch {
	case err == nil:
		p.ack(ctx, msg)
		return nil

	case errors.Is(err, domain.ErrInvalidEventData), errors.Is(err, domain.ErrUnknownEventKind):
		// Redelivery cannot fix the payload
		logger.ErrorCtx(ctx, err, zap.String("message", "Terminating undecodable event"), zap.String("txHash", txHash), zap.Uint("logIndex", logIndex))
		p.term(ctx, msg)
		return nil

	case errors.Is(err, domain.ErrConfigurationMiss):
		// The event references a contract or pool outside the registry;
		// drop it so the stream keeps moving
		logger.WarnCtx(ctx, "Dropping event outside registry", zap.Error(err), zap.String("txHash", txHash), zap.Uint("logIndex", logIndex))
		p.ack(ctx, msg)
		return nil

	case errors.Is(err, domain.ErrIntegrityViolation):
		// The ledger would go inconsistent; halt instead of acking so the
		// event is redelivered once the cause is fixed
		logger.ErrorCtx(ctx, err, zap.String("message", "Halting on ledger integrity violation"), zap.String("txHash", txHash), zap.Uint("logIndex", logIndex))
		return err

	default:
		// Transient failure (RPC, price API, database); NAK to retry
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to process event"), zap.String("txHash", txHash), zap.Uint("logIndex", logIndex))
		p.nak(ctx, msg)
		return nil
	}
}

func (p *processor) ack(ctx context.Context, msg adapter.Message) {
	if err := msg.Ack(); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to ACK message"))
	}
}

func (p *processor) nak(ctx context.Context, msg adapter.Message) {
	if err := msg.Nak(); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to NAK message"))
	}
}

func (p *processor) term(ctx context.Context, msg adapter.Message) {
	if err := msg.Term(); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to terminate message"))
	}
}

func deliveryCount(metadata *jetstream.MsgMetadata) uint64 {
	if metadata == nil {
		return 0
	}
	return metadata.NumDelivered
}

// Close closes the processor and cleans up resources
func (p *processor) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
