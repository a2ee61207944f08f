package domain

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Collateral identifies one collateral branch of the protocol. The string
// value doubles as the column name of the per-collateral ledger tables.
type Collateral string

const (
	CollateralYsyBOLD Collateral = "ysyBOLD"
	CollateralScrvUSD Collateral = "scrvUSD"
	CollateralSUSDS   Collateral = "sUSDS"
	CollateralSfrxUSD Collateral = "sfrxUSD"
	CollateralTBTC    Collateral = "tBTC"
	CollateralWBTC    Collateral = "WBTC"
)

// AllCollaterals returns every collateral branch in registry order
func AllCollaterals() []Collateral {
	return []Collateral{
		CollateralYsyBOLD,
		CollateralScrvUSD,
		CollateralSUSDS,
		CollateralSfrxUSD,
		CollateralTBTC,
		CollateralWBTC,
	}
}

// IsValidCollateral checks if a collateral symbol is known
func IsValidCollateral(c Collateral) bool {
	switch c {
	case CollateralYsyBOLD, CollateralScrvUSD, CollateralSUSDS,
		CollateralSfrxUSD, CollateralTBTC, CollateralWBTC:
		return true
	}
	return false
}

// LPPool identifies one tracked Curve LP position class
type LPPool string

const (
	LPPoolScrvusdUsdaf LPPool = "scrvusd-usdaf"
	LPPoolCvxAfcvx     LPPool = "cvx-afcvx"
	LPPoolDsa          LPPool = "dsa"
	LPPoolFraxUsdaf    LPPool = "frxusd-usdaf"
	LPPoolLqtyforks    LPPool = "lqtyforks"
)

// LPDimension is one share dimension of an LP position record. Raw LP
// tokens, gauge deposits and booster deposits all reduce into
// DimensionLPBalance; yield-vault wrappers keep their own share counts.
type LPDimension string

const (
	DimensionLPBalance   LPDimension = "balance"
	DimensionYearnShares LPDimension = "yvault_shares"
	DimensionBeefyShares LPDimension = "beefy_shares"
)

// EulerDimension is one share dimension of the Euler frontier position record
type EulerDimension string

const (
	DimensionUSDCShares  EulerDimension = "usdc_shares"
	DimensionUSDafShares EulerDimension = "usdaf_shares"
	DimensionUSDTShares  EulerDimension = "usdt_shares"
)

// PositionClass is a category of economic stake tracked independently per
// owner. Every ledger mutation is addressed by (class, instance, owner,
// dimension).
type PositionClass string

const (
	// ClassSPDepositor tracks per-depositor USDaf contributions to the
	// stability pools, one column per collateral branch.
	ClassSPDepositor PositionClass = "sp_depositor"
	// ClassSPPool tracks the running USDaf totals per stability pool in a
	// single record keyed by the zero address.
	ClassSPPool PositionClass = "sp_pool"
	// ClassLP tracks Curve LP stakes per (pool, depositor) across the raw
	// token, gauges, boosters and yield-vault wrappers.
	ClassLP PositionClass = "lp"
	// ClassToken tracks plain ERC20 balances (afCVX, sUSDaf).
	ClassToken PositionClass = "token"
	// ClassEuler tracks Euler frontier vault shares per depositor.
	ClassEuler PositionClass = "euler"
	// ClassPendleLP tracks Pendle market LP per (market, depositor),
	// including boosted positions redirected from satellite contracts.
	ClassPendleLP PositionClass = "pendle_lp"
)

// PositionKey addresses one balance field in the ledger. Instance qualifies
// classes with several independent series (LP pool name, token address,
// Pendle market address); Dimension selects the column for multi-dimension
// classes and is empty for single-amount classes.
type PositionKey struct {
	Class     PositionClass
	Instance  string
	Owner     string
	Dimension string
}

func (k PositionKey) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", k.Class, k.Instance, k.Owner, k.Dimension)
}

// BigInt wraps big.Int with decimal-string JSON encoding so 256-bit token
// amounts survive the NATS round trip without precision loss
type BigInt struct {
	big.Int
}

// NewBigInt creates a BigInt copy of v; nil yields zero
func NewBigInt(v *big.Int) *BigInt {
	b := &BigInt{}
	if v != nil {
		b.Set(v)
	}
	return b
}

// MarshalJSON encodes the value as a decimal string
func (b *BigInt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

// UnmarshalJSON decodes a decimal string (quoted or bare)
func (b *BigInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if _, ok := b.SetString(s, 10); !ok {
		return fmt.Errorf("invalid big integer %q", s)
	}
	return nil
}

// EventKind discriminates the typed payload carried by a ProtocolEvent
type EventKind string

const (
	EventKindTokenTransfer   EventKind = "token_transfer"
	EventKindSPDeposit       EventKind = "sp_deposit"
	EventKindTroveOperation  EventKind = "trove_operation"
	EventKindTroveUpdated    EventKind = "trove_updated"
	EventKindRedemption      EventKind = "redemption"
	EventKindLiquidation     EventKind = "liquidation"
	EventKindBoosterDeposit  EventKind = "booster_deposit"
	EventKindBoosterWithdraw EventKind = "booster_withdraw"
	EventKindGaugeWithdraw   EventKind = "gauge_withdraw"
	EventKindVaultRegistered EventKind = "vault_registered"
	EventKindPoolRegistered  EventKind = "pool_registered"
	EventKindVaultDeployed   EventKind = "vault_deployed"
	EventKindGaugeDeployed   EventKind = "gauge_deployed"
	EventKindLocksCreated    EventKind = "locks_created"
	EventKindLocksExtended   EventKind = "locks_extended"
	EventKindLocksFrozen     EventKind = "locks_frozen"
	EventKindLocksUnfrozen   EventKind = "locks_unfrozen"
	EventKindPriceTick       EventKind = "price_tick"
)

// TransferPayload carries an ERC20-style Transfer regardless of the emitting
// contract's argument naming (from/to, sender/receiver, _from/_to)
type TransferPayload struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Value *BigInt `json:"value"`
}

// SPDepositPayload carries a stability pool DepositOperation.
// TopUpOrWithdrawal is signed: positive for top-ups, negative for
// withdrawals.
type SPDepositPayload struct {
	Depositor         string  `json:"depositor"`
	TopUpOrWithdrawal *BigInt `json:"top_up_or_withdrawal"`
}

// Trove operation kinds as emitted by the trove manager
const (
	TroveOpOpen   uint8 = 0
	TroveOpClose  uint8 = 1
	TroveOpAdjust uint8 = 2
)

// TroveOperationPayload carries a TroveOperation event
type TroveOperationPayload struct {
	TroveID                    *BigInt `json:"trove_id"`
	Operation                  uint8   `json:"operation"`
	AnnualInterestRate         *BigInt `json:"annual_interest_rate"`
	DebtIncreaseFromRedist     *BigInt `json:"debt_increase_from_redist"`
	DebtIncreaseFromUpfrontFee *BigInt `json:"debt_increase_from_upfront_fee"`
	DebtChangeFromOperation    *BigInt `json:"debt_change_from_operation"`
	CollIncreaseFromRedist     *BigInt `json:"coll_increase_from_redist"`
	CollChangeFromOperation    *BigInt `json:"coll_change_from_operation"`
}

// TroveUpdatedPayload carries a TroveUpdated event
type TroveUpdatedPayload struct {
	TroveID            *BigInt `json:"trove_id"`
	Debt               *BigInt `json:"debt"`
	Coll               *BigInt `json:"coll"`
	Stake              *BigInt `json:"stake"`
	AnnualInterestRate *BigInt `json:"annual_interest_rate"`
}

// RedemptionPayload carries a Redemption event
type RedemptionPayload struct {
	AttemptedBoldAmount *BigInt `json:"attempted_bold_amount"`
	ActualBoldAmount    *BigInt `json:"actual_bold_amount"`
	CollSent            *BigInt `json:"coll_sent"`
	Price               *BigInt `json:"price"`
	RedemptionPrice     *BigInt `json:"redemption_price"`
}

// LiquidationPayload carries the slice of a Liquidation event the ledger
// records: collateral seized into the stability pool
type LiquidationPayload struct {
	CollSentToSP *BigInt `json:"coll_sent_to_sp"`
}

// BoosterPayload carries Convex/Equilibria booster Deposited and Withdrawn
// events
type BoosterPayload struct {
	User   string  `json:"user"`
	PoolID *BigInt `json:"pool_id"`
	Amount *BigInt `json:"amount"`
}

// GaugeWithdrawPayload carries a StakeDAO liquidity gauge Withdraw event
type GaugeWithdrawPayload struct {
	Provider string  `json:"provider"`
	Value    *BigInt `json:"value"`
}

// RegistrationPayload carries the booster/factory registration events that
// populate the ownership registries. Only the fields relevant to the kind
// are set:
//   - vault_registered: User, PoolID
//   - pool_registered (Penpie): Market, ReceiptToken; (Equilibria): Market, PoolID
//   - vault_deployed: Market, StakingToken
//   - gauge_deployed: StakingToken, Gauge
type RegistrationPayload struct {
	User         string  `json:"user,omitempty"`
	PoolID       *BigInt `json:"pool_id,omitempty"`
	Market       string  `json:"market,omitempty"`
	ReceiptToken string  `json:"receipt_token,omitempty"`
	StakingToken string  `json:"staking_token,omitempty"`
	Gauge        string  `json:"gauge,omitempty"`
}

// LockEntry is one lock inside a veASF lock event
type LockEntry struct {
	Amount   *BigInt `json:"amount"`
	Weeks    uint64  `json:"weeks"`
	NewWeeks uint64  `json:"new_weeks,omitempty"`
}

// LockPayload carries veASF lock lifecycle events; singular contract events
// are normalized to a one-element Locks slice
type LockPayload struct {
	Account string      `json:"account"`
	Locks   []LockEntry `json:"locks"`
}

// ProtocolEvent is the normalized event envelope published to NATS. Exactly
// one payload pointer is non-nil, selected by Kind; price_tick carries no
// payload.
type ProtocolEvent struct {
	Kind        EventKind `json:"kind"`
	Contract    string    `json:"contract"`
	TxHash      string    `json:"tx_hash"`
	LogIndex    uint      `json:"log_index"`
	BlockNumber uint64    `json:"block_number"`
	Timestamp   time.Time `json:"timestamp"`

	TokenTransfer  *TransferPayload       `json:"token_transfer,omitempty"`
	SPDeposit      *SPDepositPayload      `json:"sp_deposit,omitempty"`
	TroveOperation *TroveOperationPayload `json:"trove_operation,omitempty"`
	TroveUpdated   *TroveUpdatedPayload   `json:"trove_updated,omitempty"`
	Redemption     *RedemptionPayload     `json:"redemption,omitempty"`
	Liquidation    *LiquidationPayload    `json:"liquidation,omitempty"`
	Booster        *BoosterPayload        `json:"booster,omitempty"`
	GaugeWithdraw  *GaugeWithdrawPayload  `json:"gauge_withdraw,omitempty"`
	Registration   *RegistrationPayload   `json:"registration,omitempty"`
	Locks          *LockPayload           `json:"locks,omitempty"`
}

// JournalKey returns the stable identity of the event used by the
// processed-event journal. Synthetic price ticks have no transaction, so
// they key on block number.
func (e *ProtocolEvent) JournalKey() (txHash string, logIndex uint) {
	if e.Kind == EventKindPriceTick {
		return fmt.Sprintf("tick-%d", e.BlockNumber), 0
	}
	return e.TxHash, e.LogIndex
}

// TraceCall is one internal call of a transaction trace, reduced to the
// fields leverage attribution needs
type TraceCall struct {
	From  common.Address `json:"from"`
	To    common.Address `json:"to"`
	Input []byte         `json:"input"`
}

// Attribution is the resolved split of a trove collateral change
type Attribution struct {
	OwnerCollChange     *big.Int
	LeveragedCollChange *big.Int
}
