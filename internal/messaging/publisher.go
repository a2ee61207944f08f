package messaging

import (
	"context"

	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
)

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a protocol event to the message broker
	PublishEvent(ctx context.Context, event *domain.ProtocolEvent) error
	// Close closes the connection
	Close()
	// CloseChan returns a channel that is closed when the publisher is closed
	CloseChan() <-chan struct{}
}
