package store

import (
	"context"
	"math/big"
	"time"

	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
	"github.com/asymmetryfinance/usdaf-indexer/internal/store/schema"
)

// EventJournal guards event effects against redelivery
type EventJournal interface {
	// MarkProcessed inserts the event into the processed-event journal.
	// It returns false when the event was already journaled, in which case
	// the caller must skip its effects.
	MarkProcessed(ctx context.Context, txHash string, logIndex uint, kind string, blockNumber uint64) (bool, error)
}

// BalanceStore reads and writes individual ledger balance fields addressed
// by position key
type BalanceStore interface {
	// GetBalance returns the current balance for a position key, zero when
	// no record exists
	GetBalance(ctx context.Context, key domain.PositionKey) (*big.Int, error)
	// PutBalance writes the balance for a position key, creating the
	// record when needed
	PutBalance(ctx context.Context, key domain.PositionKey, amount *big.Int, at time.Time) error
}

// OwnershipStore persists the vault-proxy and Pendle satellite registries
type OwnershipStore interface {
	// RegisterVaultOwner records a vault proxy -> user mapping (write-once)
	RegisterVaultOwner(ctx context.Context, vault, user, txHash string) error
	// VaultOwner resolves a vault proxy to its registered user
	VaultOwner(ctx context.Context, vault string) (string, bool, error)

	// SetPendlePenpieReceipt records a market's Penpie receipt token (write-once)
	SetPendlePenpieReceipt(ctx context.Context, market, receiptToken string) error
	// SetPendleSdStakingToken records a market's StakeDAO staking token (write-once)
	SetPendleSdStakingToken(ctx context.Context, market, stakingToken string) error
	// SetPendleSdGauge records the gauge of a known staking token (write-once)
	SetPendleSdGauge(ctx context.Context, stakingToken, gauge string) error
	// SetPendleEqbPoolID records a market's Equilibria pool id (write-once)
	SetPendleEqbPoolID(ctx context.Context, market string, poolID uint64) error

	// PendlePoolByReceipt resolves a Penpie receipt token to its market
	PendlePoolByReceipt(ctx context.Context, receiptToken string) (*schema.PendleBoosterPool, bool, error)
	// PendlePoolByGauge resolves a StakeDAO gauge to its market
	PendlePoolByGauge(ctx context.Context, gauge string) (*schema.PendleBoosterPool, bool, error)
	// PendlePoolByEqbID resolves an Equilibria pool id to its market
	PendlePoolByEqbID(ctx context.Context, poolID uint64) (*schema.PendleBoosterPool, bool, error)

	// SatelliteAddresses returns every registered Pendle satellite contract
	// that emits monitored logs (receipt tokens and gauges)
	SatelliteAddresses(ctx context.Context) ([]string, error)
}

// SnapshotStore writes the daily aggregation tables
type SnapshotStore interface {
	// AddInterestReward accumulates minted interest into a day bucket
	AddInterestReward(ctx context.Context, day int64, col domain.Collateral, amount *big.Int) error
	// AddLiquidationReward accumulates seized collateral into a day bucket
	AddLiquidationReward(ctx context.Context, day int64, col domain.Collateral, amount *big.Int) error
	// CopySPDailyBalance copies the current stability pool totals into a
	// day bucket (last write of the day wins)
	CopySPDailyBalance(ctx context.Context, day int64) error
	// UpsertDailyPrice writes the price bucket for a day
	UpsertDailyPrice(ctx context.Context, price *schema.DailyPrice) error
}

// TroveStore persists trove lifecycle records
type TroveStore interface {
	CreateTroveOperation(ctx context.Context, rec *schema.TroveOperationRecord) error
	CreateTroveUpdate(ctx context.Context, rec *schema.TroveUpdateRecord) error
	CreateRedemption(ctx context.Context, rec *schema.RedemptionRecord) error
}

// LockStore persists the veASF lock journal
type LockStore interface {
	CreateLocks(ctx context.Context, locks []schema.VeasfLock) error
	CreateLockExtensions(ctx context.Context, exts []schema.VeasfLockExtension) error
	CreateLockFreeze(ctx context.Context, freeze *schema.VeasfLockFreeze) error
}

// CursorStore defines the interface for storing and retrieving block cursors
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks
type CursorStore interface {
	// GetBlockCursor retrieves the last processed block number
	GetBlockCursor(ctx context.Context, chain string) (uint64, error)
	// SetBlockCursor stores the last processed block number
	SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error
}

// Store composes every persistence concern of the indexer.
// WithinTransaction runs fn against a transactional copy of the store;
// event handlers use it so the journal insert and all mutations commit
// atomically.
type Store interface {
	EventJournal
	BalanceStore
	OwnershipStore
	SnapshotStore
	TroveStore
	LockStore
	CursorStore

	WithinTransaction(ctx context.Context, fn func(Store) error) error
}
