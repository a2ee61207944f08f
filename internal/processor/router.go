package processor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
	"github.com/asymmetryfinance/usdaf-indexer/internal/ownership"
	"github.com/asymmetryfinance/usdaf-indexer/internal/providers/ethereum"
	"github.com/asymmetryfinance/usdaf-indexer/internal/registry"
	"github.com/asymmetryfinance/usdaf-indexer/internal/snapshot"
	"github.com/asymmetryfinance/usdaf-indexer/internal/store"
	"github.com/asymmetryfinance/usdaf-indexer/internal/store/schema"
)

// PriceSource fetches the collateral price map for a day bucket
type PriceSource interface {
	FetchDaily(ctx context.Context, day int64) (map[domain.Collateral]float64, error)
}

// Router translates protocol events into ledger mutations, trove records and
// daily snapshot writes. It is stateless; every call operates on the
// transactional store handed in by the processor.
type Router struct {
	registry registry.ProtocolRegistry
	chain    ethereum.ChainClient
	prices   PriceSource
}

// NewRouter creates a new event router
func NewRouter(reg registry.ProtocolRegistry, chain ethereum.ChainClient, prices PriceSource) *Router {
	return &Router{
		registry: reg,
		chain:    chain,
		prices:   prices,
	}
}

// Route applies one protocol event against the store
func (r *Router) Route(ctx context.Context, st store.Store, event *domain.ProtocolEvent) error {
	switch event.Kind {
	case domain.EventKindTokenTransfer:
		return r.routeTransfer(ctx, st, event)
	case domain.EventKindSPDeposit:
		return r.handleSPDeposit(ctx, st, event)
	case domain.EventKindTroveOperation:
		return r.handleTroveOperation(ctx, st, event)
	case domain.EventKindTroveUpdated:
		return r.handleTroveUpdated(ctx, st, event)
	case domain.EventKindRedemption:
		return r.handleRedemption(ctx, st, event)
	case domain.EventKindLiquidation:
		return r.handleLiquidation(ctx, st, event)
	case domain.EventKindBoosterDeposit, domain.EventKindBoosterWithdraw:
		return r.routeBoosterOperation(ctx, st, event)
	case domain.EventKindGaugeWithdraw:
		return r.routeGaugeWithdraw(ctx, st, event)
	case domain.EventKindVaultRegistered:
		return r.ownerships(st).HandleVaultRegistered(ctx, event)
	case domain.EventKindPoolRegistered:
		return r.ownerships(st).HandlePoolRegistered(ctx, event)
	case domain.EventKindVaultDeployed:
		return r.ownerships(st).HandleVaultDeployed(ctx, event)
	case domain.EventKindGaugeDeployed:
		return r.ownerships(st).HandleGaugeDeployed(ctx, event)
	case domain.EventKindLocksCreated, domain.EventKindLocksExtended,
		domain.EventKindLocksFrozen, domain.EventKindLocksUnfrozen:
		return r.handleLocks(ctx, st, event)
	case domain.EventKindPriceTick:
		return r.handlePriceTick(ctx, st, event)
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownEventKind, event.Kind)
	}
}

// ownerships builds the ownership resolver bound to the current transaction
func (r *Router) ownerships(st store.Store) *ownership.Resolver {
	return ownership.NewResolver(st, r.registry, r.chain)
}

// handleLocks persists veASF lock lifecycle events. Plural contract events
// fan out into one row per lock.
func (r *Router) handleLocks(ctx context.Context, st store.Store, event *domain.ProtocolEvent) error {
	p := event.Locks
	if p == nil || p.Account == "" {
		return fmt.Errorf("%w: missing lock payload", domain.ErrInvalidEventData)
	}

	switch event.Kind {
	case domain.EventKindLocksCreated:
		rows := make([]schema.VeasfLock, 0, len(p.Locks))
		for _, l := range p.Locks {
			if l.Amount == nil {
				return fmt.Errorf("%w: lock without amount", domain.ErrInvalidEventData)
			}
			rows = append(rows, schema.VeasfLock{
				ID:        uuid.NewString(),
				Account:   p.Account,
				Amount:    l.Amount.String(),
				Weeks:     l.Weeks,
				Timestamp: event.Timestamp,
				TxHash:    event.TxHash,
			})
		}
		return st.CreateLocks(ctx, rows)

	case domain.EventKindLocksExtended:
		rows := make([]schema.VeasfLockExtension, 0, len(p.Locks))
		for _, l := range p.Locks {
			if l.Amount == nil {
				return fmt.Errorf("%w: lock extension without amount", domain.ErrInvalidEventData)
			}
			rows = append(rows, schema.VeasfLockExtension{
				ID:        uuid.NewString(),
				Account:   p.Account,
				Amount:    l.Amount.String(),
				Weeks:     l.Weeks,
				NewWeeks:  l.NewWeeks,
				Timestamp: event.Timestamp,
				TxHash:    event.TxHash,
			})
		}
		return st.CreateLockExtensions(ctx, rows)

	default:
		action := schema.LockActionFrozen
		if event.Kind == domain.EventKindLocksUnfrozen {
			action = schema.LockActionUnfrozen
		}
		amount := "0"
		if len(p.Locks) > 0 && p.Locks[0].Amount != nil {
			amount = p.Locks[0].Amount.String()
		}
		return st.CreateLockFreeze(ctx, &schema.VeasfLockFreeze{
			ID:        uuid.NewString(),
			Account:   p.Account,
			Amount:    amount,
			Action:    action,
			Timestamp: event.Timestamp,
			TxHash:    event.TxHash,
		})
	}
}

// handlePriceTick fetches the day's collateral prices and writes the daily
// price bucket
func (r *Router) handlePriceTick(ctx context.Context, st store.Store, event *domain.ProtocolEvent) error {
	day := snapshot.DayStart(event.Timestamp)

	prices, err := r.prices.FetchDaily(ctx, day)
	if err != nil {
		return fmt.Errorf("%w: fetch daily prices for day %d: %v", domain.ErrProviderUnavailable, day, err)
	}

	return snapshot.NewAggregator(st).RecordPrices(ctx, event.Timestamp, prices)
}
