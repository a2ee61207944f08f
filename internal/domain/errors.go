package domain

import "errors"

var (
	// ErrIntegrityViolation signals a ledger mutation that contradicts the
	// recorded state (e.g. a debit past zero). Processing must halt rather
	// than persist the result.
	ErrIntegrityViolation = errors.New("ledger integrity violation")

	// ErrConfigurationMiss signals an event referencing a contract or pool
	// the protocol registry does not know. The event is dropped with a
	// warning.
	ErrConfigurationMiss = errors.New("protocol registry miss")

	// ErrProviderUnavailable signals a transient upstream failure (RPC,
	// price API). The message is NAKed and redelivered.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrUnknownEventKind signals an envelope whose kind has no handler
	ErrUnknownEventKind = errors.New("unknown event kind")

	// ErrInvalidEventData signals an undecodable payload; the message is
	// terminated, never retried
	ErrInvalidEventData = errors.New("invalid event data")
)
