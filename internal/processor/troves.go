package processor

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
	"github.com/asymmetryfinance/usdaf-indexer/internal/ledger"
	"github.com/asymmetryfinance/usdaf-indexer/internal/leverage"
	"github.com/asymmetryfinance/usdaf-indexer/internal/snapshot"
	"github.com/asymmetryfinance/usdaf-indexer/internal/store"
	"github.com/asymmetryfinance/usdaf-indexer/internal/store/schema"
)

// handleSPDeposit applies a stability pool DepositOperation to the
// depositor's position. Withdrawals can exceed the tracked contribution when
// the pool pays out yield, so the balance floors at zero.
func (r *Router) handleSPDeposit(ctx context.Context, st store.Store, event *domain.ProtocolEvent) error {
	p := event.SPDeposit
	if p == nil || p.TopUpOrWithdrawal == nil {
		return fmt.Errorf("%w: missing deposit payload", domain.ErrInvalidEventData)
	}

	branch, ok := r.registry.BranchBySP(event.Contract)
	if !ok {
		return fmt.Errorf("%w: no branch for stability pool %s", domain.ErrConfigurationMiss, event.Contract)
	}

	key := domain.PositionKey{
		Class:     domain.ClassSPDepositor,
		Owner:     p.Depositor,
		Dimension: string(branch.Collateral),
	}

	return ledger.NewEngine(st).Add(ctx, key, &p.TopUpOrWithdrawal.Int, true, event.Timestamp)
}

// handleTroveOperation records a TroveOperation enriched with the leverage
// attribution split. Opens and adjustments are attributed through the
// transaction trace; closes and machine operations carry no owner-supplied
// collateral.
func (r *Router) handleTroveOperation(ctx context.Context, st store.Store, event *domain.ProtocolEvent) error {
	p := event.TroveOperation
	if p == nil || p.TroveID == nil {
		return fmt.Errorf("%w: missing trove operation payload", domain.ErrInvalidEventData)
	}

	branch, ok := r.registry.BranchByTroveManager(event.Contract)
	if !ok {
		return fmt.Errorf("%w: no branch for trove manager %s", domain.ErrConfigurationMiss, event.Contract)
	}

	attribution := domain.Attribution{
		OwnerCollChange:     big.NewInt(0),
		LeveragedCollChange: big.NewInt(0),
	}

	if p.Operation == domain.TroveOpOpen || p.Operation == domain.TroveOpAdjust {
		// No zapper can appear in a trace before its deployment, so the
		// owner-supplied default applies without fetching one.
		var calls []domain.TraceCall
		if event.BlockNumber >= r.registry.ZapperDeploymentBlock() {
			var err error
			calls, err = r.chain.TraceTransaction(ctx, event.TxHash)
			if err != nil {
				return fmt.Errorf("%w: trace transaction %s: %v", domain.ErrProviderUnavailable, event.TxHash, err)
			}
		}

		attribution = leverage.Resolve(calls, p, leverage.Branch{
			Zapper:             common.HexToAddress(branch.Zapper),
			BorrowerOperations: common.HexToAddress(branch.BorrowerOperations),
		}, event.BlockNumber, r.registry.ZapperDeploymentBlock())
	}

	return st.CreateTroveOperation(ctx, &schema.TroveOperationRecord{
		TxHash:                     event.TxHash,
		LogIndex:                   event.LogIndex,
		Timestamp:                  event.Timestamp,
		TroveManager:               event.Contract,
		TroveID:                    p.TroveID.String(),
		Op:                         p.Operation,
		AnnualInterestRate:         p.AnnualInterestRate.String(),
		DebtIncreaseFromRedist:     p.DebtIncreaseFromRedist.String(),
		DebtIncreaseFromUpfrontFee: p.DebtIncreaseFromUpfrontFee.String(),
		DebtChangeFromOperation:    p.DebtChangeFromOperation.String(),
		CollIncreaseFromRedist:     p.CollIncreaseFromRedist.String(),
		CollChangeFromOperation:    p.CollChangeFromOperation.String(),
		OwnerCollChange:            attribution.OwnerCollChange.String(),
		LeveragedCollChange:        attribution.LeveragedCollChange.String(),
	})
}

// handleTroveUpdated records a TroveUpdated together with the branch totals
// and last good price read at event time
func (r *Router) handleTroveUpdated(ctx context.Context, st store.Store, event *domain.ProtocolEvent) error {
	p := event.TroveUpdated
	if p == nil || p.TroveID == nil {
		return fmt.Errorf("%w: missing trove update payload", domain.ErrInvalidEventData)
	}

	branch, ok := r.registry.BranchByTroveManager(event.Contract)
	if !ok {
		return fmt.Errorf("%w: no branch for trove manager %s", domain.ErrConfigurationMiss, event.Contract)
	}

	state, err := r.chain.BranchState(ctx, branch.TroveManager, branch.PriceFeed)
	if err != nil {
		return fmt.Errorf("%w: read branch state for %s: %v", domain.ErrProviderUnavailable, event.Contract, err)
	}

	return st.CreateTroveUpdate(ctx, &schema.TroveUpdateRecord{
		TxHash:             event.TxHash,
		LogIndex:           event.LogIndex,
		Timestamp:          event.Timestamp,
		TroveManager:       event.Contract,
		TroveID:            p.TroveID.String(),
		Debt:               p.Debt.String(),
		Coll:               p.Coll.String(),
		Stake:              p.Stake.String(),
		AnnualInterestRate: p.AnnualInterestRate.String(),
		EntireColl:         state.EntireColl.String(),
		EntireDebt:         state.EntireDebt.String(),
		Price:              state.Price.String(),
	})
}

// handleRedemption records a Redemption together with the branch totals read
// at event time
func (r *Router) handleRedemption(ctx context.Context, st store.Store, event *domain.ProtocolEvent) error {
	p := event.Redemption
	if p == nil || p.ActualBoldAmount == nil {
		return fmt.Errorf("%w: missing redemption payload", domain.ErrInvalidEventData)
	}

	branch, ok := r.registry.BranchByTroveManager(event.Contract)
	if !ok {
		return fmt.Errorf("%w: no branch for trove manager %s", domain.ErrConfigurationMiss, event.Contract)
	}

	state, err := r.chain.BranchState(ctx, branch.TroveManager, branch.PriceFeed)
	if err != nil {
		return fmt.Errorf("%w: read branch state for %s: %v", domain.ErrProviderUnavailable, event.Contract, err)
	}

	return st.CreateRedemption(ctx, &schema.RedemptionRecord{
		TxHash:              event.TxHash,
		LogIndex:            event.LogIndex,
		Timestamp:           event.Timestamp,
		TroveManager:        event.Contract,
		AttemptedBoldAmount: p.AttemptedBoldAmount.String(),
		DebtDecrease:        p.ActualBoldAmount.String(),
		CollDecrease:        p.CollSent.String(),
		Price:               p.Price.String(),
		RedemptionPrice:     p.RedemptionPrice.String(),
		EntireColl:          state.EntireColl.String(),
		EntireDebt:          state.EntireDebt.String(),
	})
}

// handleLiquidation accumulates the collateral seized into the stability
// pool into the day's liquidation reward bucket
func (r *Router) handleLiquidation(ctx context.Context, st store.Store, event *domain.ProtocolEvent) error {
	p := event.Liquidation
	if p == nil || p.CollSentToSP == nil {
		return fmt.Errorf("%w: missing liquidation payload", domain.ErrInvalidEventData)
	}

	branch, ok := r.registry.BranchByTroveManager(event.Contract)
	if !ok {
		return fmt.Errorf("%w: no branch for trove manager %s", domain.ErrConfigurationMiss, event.Contract)
	}

	return snapshot.NewAggregator(st).RecordLiquidation(ctx, event.Timestamp, branch.Collateral, &p.CollSentToSP.Int)
}
