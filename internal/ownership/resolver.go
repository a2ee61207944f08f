// Package ownership resolves the effective owner behind proxy contracts and
// maintains the registries that booster/factory events populate at runtime:
// DSA fxn vault proxies and the Pendle satellite contracts (Penpie receipt
// tokens, StakeDAO vault/gauge proxies, Equilibria pool ids).
package ownership

import (
	"context"
	"fmt"
	"strings"

	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
	"github.com/asymmetryfinance/usdaf-indexer/internal/store"
)

//go:generate mockgen -source=resolver.go -destination=../mocks/ownership.go -package=mocks

// VaultMapReader reads the fxn pool registry's vaultMap(poolId, user) slot
// on-chain
type VaultMapReader interface {
	VaultMap(ctx context.Context, registry string, poolID uint64, user string) (string, error)
}

// Config is the slice of the protocol registry the resolver needs
type Config interface {
	IsPendleMarket(addr string) bool
	DsaFxnPoolID() uint64
	FxnPoolRegistry() string
}

// Resolver maintains the ownership registries and answers owner lookups
type Resolver struct {
	store  store.OwnershipStore
	config Config
	vaults VaultMapReader
}

// NewResolver creates an ownership resolver
func NewResolver(s store.OwnershipStore, config Config, vaults VaultMapReader) *Resolver {
	return &Resolver{store: s, config: config, vaults: vaults}
}

// HandleVaultRegistered processes an AddUserVault event from the fxn pool
// registry. Only the DSA pool is tracked; vaults for other pools are ignored.
// The vault proxy address is not in the event and must be read back from the
// registry contract.
func (r *Resolver) HandleVaultRegistered(ctx context.Context, ev *domain.ProtocolEvent) error {
	reg := ev.Registration
	if reg == nil || reg.User == "" || reg.PoolID == nil {
		return fmt.Errorf("%w: vault_registered without user or pool id", domain.ErrInvalidEventData)
	}

	poolID := reg.PoolID.Uint64()
	if poolID != r.config.DsaFxnPoolID() {
		return nil
	}

	vault, err := r.vaults.VaultMap(ctx, r.config.FxnPoolRegistry(), poolID, reg.User)
	if err != nil {
		return fmt.Errorf("failed to read vault map for %s: %w", reg.User, err)
	}
	if vault == "" || strings.EqualFold(vault, domain.ZeroAddress) {
		return fmt.Errorf("%w: no vault registered for user %s in pool %d",
			domain.ErrConfigurationMiss, reg.User, poolID)
	}

	return r.store.RegisterVaultOwner(ctx, vault, reg.User, ev.TxHash)
}

// HandlePoolRegistered processes a PoolAdded event from the Penpie staking
// contract or the Equilibria booster. Equilibria carries a pool id, Penpie a
// receipt token. Markets outside the tracked set are ignored.
func (r *Resolver) HandlePoolRegistered(ctx context.Context, ev *domain.ProtocolEvent) error {
	reg := ev.Registration
	if reg == nil || reg.Market == "" {
		return fmt.Errorf("%w: pool_registered without market", domain.ErrInvalidEventData)
	}
	if !r.config.IsPendleMarket(reg.Market) {
		return nil
	}

	if reg.PoolID != nil {
		return r.store.SetPendleEqbPoolID(ctx, reg.Market, reg.PoolID.Uint64())
	}
	if reg.ReceiptToken == "" {
		return fmt.Errorf("%w: pool_registered without receipt token or pool id", domain.ErrInvalidEventData)
	}
	return r.store.SetPendlePenpieReceipt(ctx, reg.Market, reg.ReceiptToken)
}

// HandleVaultDeployed processes a StakeDAO VaultDeployed event. The vault
// proxy becomes the staking token that a later GaugeDeployed refers to.
func (r *Resolver) HandleVaultDeployed(ctx context.Context, ev *domain.ProtocolEvent) error {
	reg := ev.Registration
	if reg == nil || reg.Market == "" || reg.StakingToken == "" {
		return fmt.Errorf("%w: vault_deployed without market or staking token", domain.ErrInvalidEventData)
	}
	if !r.config.IsPendleMarket(reg.Market) {
		return nil
	}
	return r.store.SetPendleSdStakingToken(ctx, reg.Market, reg.StakingToken)
}

// HandleGaugeDeployed processes a StakeDAO GaugeDeployed event. The write is
// a no-op when the staking token belongs to no tracked market.
func (r *Resolver) HandleGaugeDeployed(ctx context.Context, ev *domain.ProtocolEvent) error {
	reg := ev.Registration
	if reg == nil || reg.StakingToken == "" || reg.Gauge == "" {
		return fmt.Errorf("%w: gauge_deployed without staking token or gauge", domain.ErrInvalidEventData)
	}
	return r.store.SetPendleSdGauge(ctx, reg.StakingToken, reg.Gauge)
}

// Owner maps a transfer party to its effective owner. Registered vault
// proxies resolve to their user, everything else to itself.
func (r *Resolver) Owner(ctx context.Context, addr string) (string, error) {
	user, found, err := r.store.VaultOwner(ctx, addr)
	if err != nil {
		return "", err
	}
	if found {
		return user, nil
	}
	return strings.ToLower(addr), nil
}
