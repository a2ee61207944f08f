package processor

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
	"github.com/asymmetryfinance/usdaf-indexer/internal/ledger"
	"github.com/asymmetryfinance/usdaf-indexer/internal/registry"
	"github.com/asymmetryfinance/usdaf-indexer/internal/snapshot"
	"github.com/asymmetryfinance/usdaf-indexer/internal/store"
)

// routeTransfer dispatches a Transfer by the emitting contract's role.
// Contracts outside the registry are Pendle satellites discovered at
// runtime.
func (r *Router) routeTransfer(ctx context.Context, st store.Store, event *domain.ProtocolEvent) error {
	p := event.TokenTransfer
	if p == nil || p.Value == nil {
		return fmt.Errorf("%w: missing transfer payload", domain.ErrInvalidEventData)
	}

	role, known := r.registry.RoleOf(event.Contract)
	if !known {
		return r.routeSatelliteTransfer(ctx, st, event)
	}

	switch role {
	case registry.RoleUSDaf:
		return r.routeUSDafTransfer(ctx, st, event)
	case registry.RoleLPToken, registry.RoleCurveGauge, registry.RoleSdGauge,
		registry.RoleSdGaugeV2, registry.RoleFxnGauge,
		registry.RoleYearnVault, registry.RoleBeefyVault:
		return r.routeLPTransfer(ctx, st, event, role)
	case registry.RoleTrackedToken:
		return r.routeTokenTransfer(ctx, st, event)
	case registry.RoleEulerVault:
		return r.routeEulerTransfer(ctx, st, event)
	case registry.RolePendleMarket:
		return r.routePendleMarketTransfer(ctx, st, event)
	default:
		return fmt.Errorf("%w: transfer from %s contract %s", domain.ErrConfigurationMiss, role, event.Contract)
	}
}

// routeUSDafTransfer tracks stability pool inflows and outflows. Transfers
// with no stability pool on either side are plain wallet movements and are
// ignored. USDaf minted straight into a pool is interest routed by the
// active pool manager and also feeds the daily interest bucket.
func (r *Router) routeUSDafTransfer(ctx context.Context, st store.Store, event *domain.ProtocolEvent) error {
	p := event.TokenTransfer
	eng := ledger.NewEngine(st)
	snaps := snapshot.NewAggregator(st)
	value := &p.Value.Int

	touched := false

	if branch, ok := r.registry.BranchBySP(p.To); ok {
		key := domain.PositionKey{
			Class:     domain.ClassSPPool,
			Owner:     domain.ZeroAddress,
			Dimension: string(branch.Collateral),
		}
		if err := eng.Add(ctx, key, value, false, event.Timestamp); err != nil {
			return err
		}
		if p.From == domain.ZeroAddress {
			if err := snaps.RecordInterest(ctx, event.Timestamp, branch.Collateral, value); err != nil {
				return err
			}
		}
		touched = true
	}

	if branch, ok := r.registry.BranchBySP(p.From); ok {
		key := domain.PositionKey{
			Class:     domain.ClassSPPool,
			Owner:     domain.ZeroAddress,
			Dimension: string(branch.Collateral),
		}
		if err := eng.Add(ctx, key, new(big.Int).Neg(value), false, event.Timestamp); err != nil {
			return err
		}
		touched = true
	}

	if !touched {
		return nil
	}

	return snaps.SnapshotSPTotals(ctx, event.Timestamp)
}

// routeLPTransfer applies an LP-family transfer to the (pool, depositor)
// position. Gauge and raw-token movements share the balance dimension;
// yield-vault wrappers keep their own share dimensions. Mints and burns
// skip the zero-address side.
func (r *Router) routeLPTransfer(ctx context.Context, st store.Store, event *domain.ProtocolEvent, role registry.ContractRole) error {
	p := event.TokenTransfer

	pool, _, ok := r.registry.LPPoolOf(event.Contract)
	if !ok {
		return fmt.Errorf("%w: no LP pool wiring for %s", domain.ErrConfigurationMiss, event.Contract)
	}

	dimension := domain.DimensionLPBalance
	switch role {
	case registry.RoleYearnVault:
		dimension = domain.DimensionYearnShares
	case registry.RoleBeefyVault:
		dimension = domain.DimensionBeefyShares
	}

	from, to := p.From, p.To

	// f(x) gauge deposits are held by per-user vault proxies; resolve each
	// side back to the registered user
	if role == registry.RoleFxnGauge {
		res := r.ownerships(st)
		var err error
		if from, err = res.Owner(ctx, from); err != nil {
			return err
		}
		if to, err = res.Owner(ctx, to); err != nil {
			return err
		}
	}

	key := func(owner string) domain.PositionKey {
		return domain.PositionKey{
			Class:     domain.ClassLP,
			Instance:  string(pool.Name),
			Owner:     owner,
			Dimension: string(dimension),
		}
	}

	fromSide := ledger.Side{Key: key(from), Skip: from == domain.ZeroAddress}
	toSide := ledger.Side{Key: key(to), Skip: to == domain.ZeroAddress}

	// The StakeDAO v1 gauge mints through its staking token wrapper; the
	// wrapper's outgoing leg is the deposit plumbing, not a position change
	if role == registry.RoleSdGauge && strings.EqualFold(from, pool.SdGaugeStakingToken) {
		fromSide.Skip = true
	}

	return ledger.NewEngine(st).ApplyTransfer(ctx, fromSide, toSide, &p.Value.Int, event.Timestamp)
}

// routeTokenTransfer applies a plain tracked-token transfer (afCVX, sUSDaf)
func (r *Router) routeTokenTransfer(ctx context.Context, st store.Store, event *domain.ProtocolEvent) error {
	p := event.TokenTransfer

	symbol, ok := r.registry.TokenSymbol(event.Contract)
	if !ok {
		return fmt.Errorf("%w: no tracked token for %s", domain.ErrConfigurationMiss, event.Contract)
	}

	key := func(owner string) domain.PositionKey {
		return domain.PositionKey{Class: domain.ClassToken, Instance: symbol, Owner: owner}
	}

	return ledger.NewEngine(st).ApplyTransfer(ctx,
		ledger.Side{Key: key(p.From), Skip: p.From == domain.ZeroAddress},
		ledger.Side{Key: key(p.To), Skip: p.To == domain.ZeroAddress},
		&p.Value.Int, event.Timestamp)
}

// routeEulerTransfer applies an Euler frontier vault share transfer
func (r *Router) routeEulerTransfer(ctx context.Context, st store.Store, event *domain.ProtocolEvent) error {
	p := event.TokenTransfer

	dimension, ok := r.registry.EulerDimension(event.Contract)
	if !ok {
		return fmt.Errorf("%w: no euler vault for %s", domain.ErrConfigurationMiss, event.Contract)
	}

	key := func(owner string) domain.PositionKey {
		return domain.PositionKey{Class: domain.ClassEuler, Owner: owner, Dimension: string(dimension)}
	}

	return ledger.NewEngine(st).ApplyTransfer(ctx,
		ledger.Side{Key: key(p.From), Skip: p.From == domain.ZeroAddress},
		ledger.Side{Key: key(p.To), Skip: p.To == domain.ZeroAddress},
		&p.Value.Int, event.Timestamp)
}

// routePendleMarketTransfer applies a Pendle market LP transfer
func (r *Router) routePendleMarketTransfer(ctx context.Context, st store.Store, event *domain.ProtocolEvent) error {
	p := event.TokenTransfer

	key := func(owner string) domain.PositionKey {
		return domain.PositionKey{Class: domain.ClassPendleLP, Instance: event.Contract, Owner: owner}
	}

	return ledger.NewEngine(st).ApplyTransfer(ctx,
		ledger.Side{Key: key(p.From), Skip: p.From == domain.ZeroAddress},
		ledger.Side{Key: key(p.To), Skip: p.To == domain.ZeroAddress},
		&p.Value.Int, event.Timestamp)
}

// routeSatelliteTransfer applies a transfer from a runtime-discovered Pendle
// satellite: a Penpie receipt token mirrors the market position directly; a
// StakeDAO gauge does the same but suppresses the deposit leg coming out of
// its staking token wrapper.
func (r *Router) routeSatelliteTransfer(ctx context.Context, st store.Store, event *domain.ProtocolEvent) error {
	p := event.TokenTransfer

	market := ""
	suppressFrom := false

	if pool, ok, err := st.PendlePoolByReceipt(ctx, event.Contract); err != nil {
		return err
	} else if ok {
		market = pool.Market
	} else if pool, ok, err := st.PendlePoolByGauge(ctx, event.Contract); err != nil {
		return err
	} else if ok {
		market = pool.Market
		suppressFrom = pool.SdStakingToken != nil && strings.EqualFold(p.From, *pool.SdStakingToken)
	} else {
		return fmt.Errorf("%w: transfer from unregistered contract %s", domain.ErrConfigurationMiss, event.Contract)
	}

	key := func(owner string) domain.PositionKey {
		return domain.PositionKey{Class: domain.ClassPendleLP, Instance: market, Owner: owner}
	}

	return ledger.NewEngine(st).ApplyTransfer(ctx,
		ledger.Side{Key: key(p.From), Skip: p.From == domain.ZeroAddress || suppressFrom},
		ledger.Side{Key: key(p.To), Skip: p.To == domain.ZeroAddress},
		&p.Value.Int, event.Timestamp)
}

// routeBoosterOperation applies a Convex or Equilibria booster deposit or
// withdrawal. Booster pools outside the tracked set are a normal part of the
// shared booster's traffic and are ignored without a warning.
func (r *Router) routeBoosterOperation(ctx context.Context, st store.Store, event *domain.ProtocolEvent) error {
	p := event.Booster
	if p == nil || p.PoolID == nil || p.Amount == nil {
		return fmt.Errorf("%w: missing booster payload", domain.ErrInvalidEventData)
	}

	poolID := p.PoolID.Uint64()
	delta := new(big.Int).Set(&p.Amount.Int)
	if event.Kind == domain.EventKindBoosterWithdraw {
		delta.Neg(delta)
	}

	eng := ledger.NewEngine(st)

	if strings.EqualFold(event.Contract, r.registry.ConvexBooster()) {
		pool, ok := r.registry.LPPoolByConvexID(poolID)
		if !ok {
			return nil
		}
		key := domain.PositionKey{
			Class:     domain.ClassLP,
			Instance:  string(pool.Name),
			Owner:     p.User,
			Dimension: string(domain.DimensionLPBalance),
		}
		return eng.Add(ctx, key, delta, false, event.Timestamp)
	}

	if strings.EqualFold(event.Contract, r.registry.Pendle().EqbBooster) {
		pool, ok, err := st.PendlePoolByEqbID(ctx, poolID)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		key := domain.PositionKey{
			Class:    domain.ClassPendleLP,
			Instance: pool.Market,
			Owner:    p.User,
		}
		return eng.Add(ctx, key, delta, false, event.Timestamp)
	}

	return fmt.Errorf("%w: booster event from %s", domain.ErrConfigurationMiss, event.Contract)
}

// routeGaugeWithdraw debits a StakeDAO gauge Withdraw. The gauge burns the
// holder's tokens without a Transfer, so the withdrawal is applied here
// unconditionally.
func (r *Router) routeGaugeWithdraw(ctx context.Context, st store.Store, event *domain.ProtocolEvent) error {
	p := event.GaugeWithdraw
	if p == nil || p.Value == nil {
		return fmt.Errorf("%w: missing gauge withdraw payload", domain.ErrInvalidEventData)
	}

	delta := new(big.Int).Neg(&p.Value.Int)
	eng := ledger.NewEngine(st)

	if pool, _, ok := r.registry.LPPoolOf(event.Contract); ok {
		key := domain.PositionKey{
			Class:     domain.ClassLP,
			Instance:  string(pool.Name),
			Owner:     p.Provider,
			Dimension: string(domain.DimensionLPBalance),
		}
		return eng.Add(ctx, key, delta, false, event.Timestamp)
	}

	pool, ok, err := st.PendlePoolByGauge(ctx, event.Contract)
	if err != nil {
		return err
	}
	if ok {
		key := domain.PositionKey{
			Class:    domain.ClassPendleLP,
			Instance: pool.Market,
			Owner:    p.Provider,
		}
		return eng.Add(ctx, key, delta, false, event.Timestamp)
	}

	return fmt.Errorf("%w: gauge withdraw from unregistered contract %s", domain.ErrConfigurationMiss, event.Contract)
}
