// Package ledger applies signed balance deltas to position keys. It is the
// single write path for every balance table: handlers translate chain events
// into deltas and the engine enforces the non-negativity rule.
package ledger

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
	"github.com/asymmetryfinance/usdaf-indexer/internal/store"
)

// Side describes one leg of a transfer. Skip drops the leg (mints, burns and
// suppressed senders); Clamp floors the resulting balance at zero instead of
// failing.
type Side struct {
	Key   domain.PositionKey
	Skip  bool
	Clamp bool
}

// Engine applies deltas through a BalanceStore
type Engine struct {
	balances store.BalanceStore
}

// NewEngine creates a ledger engine on top of a balance store
func NewEngine(balances store.BalanceStore) *Engine {
	return &Engine{balances: balances}
}

// Add applies a signed delta to a position key. A negative result fails with
// ErrIntegrityViolation unless clamp is set, in which case the balance floors
// at zero.
func (e *Engine) Add(ctx context.Context, key domain.PositionKey, delta *big.Int, clamp bool, at time.Time) error {
	if delta.Sign() == 0 {
		return nil
	}

	current, err := e.balances.GetBalance(ctx, key)
	if err != nil {
		return err
	}

	next := new(big.Int).Add(current, delta)
	if next.Sign() < 0 {
		if !clamp {
			return fmt.Errorf("%w: balance of %s would go negative (%s + %s)",
				domain.ErrIntegrityViolation, key, current, delta)
		}
		next.SetInt64(0)
	}

	return e.balances.PutBalance(ctx, key, next, at)
}

// ApplyTransfer debits the from leg and credits the to leg. A transfer
// between identical keys is a no-op: debiting first would otherwise fail
// when the amount exceeds the tracked balance.
func (e *Engine) ApplyTransfer(ctx context.Context, from, to Side, value *big.Int, at time.Time) error {
	if !from.Skip && !to.Skip && from.Key == to.Key {
		return nil
	}
	if !from.Skip {
		if err := e.Add(ctx, from.Key, new(big.Int).Neg(value), from.Clamp, at); err != nil {
			return err
		}
	}
	if !to.Skip {
		if err := e.Add(ctx, to.Key, value, to.Clamp, at); err != nil {
			return err
		}
	}
	return nil
}
