// Package snapshot buckets ledger activity into UTC days: accrued interest,
// liquidation proceeds, stability pool totals and collateral prices.
package snapshot

import (
	"context"
	"math/big"
	"time"

	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
	"github.com/asymmetryfinance/usdaf-indexer/internal/store"
	"github.com/asymmetryfinance/usdaf-indexer/internal/store/schema"
)

// DayStart truncates a timestamp to the start of its UTC day
func DayStart(ts time.Time) int64 {
	return ts.UTC().Truncate(24 * time.Hour).Unix()
}

// Aggregator writes day-bucketed aggregates through a snapshot store
type Aggregator struct {
	store store.SnapshotStore
}

// NewAggregator creates a snapshot aggregator
func NewAggregator(s store.SnapshotStore) *Aggregator {
	return &Aggregator{store: s}
}

// RecordInterest accumulates minted interest into the event's day bucket
func (a *Aggregator) RecordInterest(ctx context.Context, ts time.Time, col domain.Collateral, amount *big.Int) error {
	return a.store.AddInterestReward(ctx, DayStart(ts), col, amount)
}

// RecordLiquidation accumulates seized collateral into the event's day bucket
func (a *Aggregator) RecordLiquidation(ctx context.Context, ts time.Time, col domain.Collateral, amount *big.Int) error {
	return a.store.AddLiquidationReward(ctx, DayStart(ts), col, amount)
}

// SnapshotSPTotals copies the current stability pool totals into the event's
// day bucket. Called after every total-changing event, so the bucket
// converges to the end-of-day state.
func (a *Aggregator) SnapshotSPTotals(ctx context.Context, ts time.Time) error {
	return a.store.CopySPDailyBalance(ctx, DayStart(ts))
}

// RecordPrices writes the collateral price bucket for the tick's day.
// Collaterals absent from the map record as zero.
func (a *Aggregator) RecordPrices(ctx context.Context, ts time.Time, prices map[domain.Collateral]float64) error {
	bucket := &schema.DailyPrice{Day: DayStart(ts)}
	for col, price := range prices {
		bucket.SetPrice(col, price)
	}
	return a.store.UpsertDailyPrice(ctx, bucket)
}
