package ethereum

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
)

// lockerABIJSON covers the veASF locker events with tuple-array arguments,
// which are unpacked through the ABI codec instead of by hand
const lockerABIJSON = `[
	{"type":"event","name":"LocksCreated","inputs":[
		{"name":"account","type":"address","indexed":true},
		{"name":"newLocks","type":"tuple[]","components":[
			{"name":"amount","type":"uint256"},
			{"name":"weeksToUnlock","type":"uint256"}]}]},
	{"type":"event","name":"LocksExtended","inputs":[
		{"name":"account","type":"address","indexed":true},
		{"name":"locks","type":"tuple[]","components":[
			{"name":"amount","type":"uint256"},
			{"name":"currentWeeks","type":"uint256"},
			{"name":"newWeeks","type":"uint256"}]}]}
]`

var lockerABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(lockerABIJSON))
	if err != nil {
		panic(fmt.Sprintf("invalid locker ABI: %v", err))
	}
	return parsed
}()

var twoPow256 = new(big.Int).Lsh(big.NewInt(1), 256)

// wordAt reads the i-th 32-byte data word as an unsigned integer
func wordAt(data []byte, i int) *big.Int {
	return new(big.Int).SetBytes(data[i*32 : (i+1)*32])
}

// signedWordAt reads the i-th 32-byte data word as a two's-complement int256
func signedWordAt(data []byte, i int) *big.Int {
	word := data[i*32 : (i+1)*32]
	v := new(big.Int).SetBytes(word)
	if word[0]&0x80 != 0 {
		v.Sub(v, twoPow256)
	}
	return v
}

// addressWordAt reads the i-th 32-byte data word as a right-aligned address
func addressWordAt(data []byte, i int) string {
	return strings.ToLower(common.BytesToAddress(data[i*32+12 : (i+1)*32]).Hex())
}

// topicAddress reads an indexed address topic
func topicAddress(topic common.Hash) string {
	return strings.ToLower(common.BytesToAddress(topic.Bytes()).Hex())
}

// newEvent builds the envelope shared by every decoded event
func newEvent(kind domain.EventKind, vLog types.Log, timestamp time.Time) *domain.ProtocolEvent {
	return &domain.ProtocolEvent{
		Kind:        kind,
		Contract:    strings.ToLower(vLog.Address.Hex()),
		TxHash:      strings.ToLower(vLog.TxHash.Hex()),
		LogIndex:    vLog.Index,
		BlockNumber: vLog.BlockNumber,
		Timestamp:   timestamp,
	}
}

// ParseEventLog decodes a raw Ethereum log into a normalized protocol event.
// Logs whose topic is not part of the protocol surface decode to nil, nil so
// the subscriber can skip them silently.
func ParseEventLog(vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Topics) == 0 {
		return nil, nil
	}

	switch vLog.Topics[0] {
	case transferEventSignature:
		return parseTransfer(vLog, timestamp)
	case depositOperationEventSignature:
		return parseDepositOperation(vLog, timestamp)
	case troveOperationEventSignature:
		return parseTroveOperation(vLog, timestamp)
	case troveUpdatedEventSignature:
		return parseTroveUpdated(vLog, timestamp)
	case redemptionEventSignature:
		return parseRedemption(vLog, timestamp)
	case liquidationEventSignature:
		return parseLiquidation(vLog, timestamp)
	case boosterDepositedEventSignature:
		return parseBoosterOperation(domain.EventKindBoosterDeposit, vLog, timestamp)
	case boosterWithdrawnEventSignature:
		return parseBoosterOperation(domain.EventKindBoosterWithdraw, vLog, timestamp)
	case gaugeWithdrawEventSignature:
		return parseGaugeWithdraw(vLog, timestamp)
	case addUserVaultEventSignature:
		return parseAddUserVault(vLog, timestamp)
	case penpiePoolAddedEventSignature:
		return parsePenpiePoolAdded(vLog, timestamp)
	case eqbPoolAddedEventSignature:
		return parseEqbPoolAdded(vLog, timestamp)
	case vaultDeployedEventSignature:
		return parseVaultDeployed(vLog, timestamp)
	case gaugeDeployedEventSignature:
		return parseGaugeDeployed(vLog, timestamp)
	case lockCreatedEventSignature:
		return parseLockCreated(vLog, timestamp)
	case lockExtendedEventSignature:
		return parseLockExtended(vLog, timestamp)
	case locksCreatedEventSignature:
		return parseLocksCreated(vLog, timestamp)
	case locksExtendedEventSignature:
		return parseLocksExtended(vLog, timestamp)
	case locksFrozenEventSignature:
		return parseLockFreeze(domain.EventKindLocksFrozen, vLog, timestamp)
	case locksUnfrozenEventSignature:
		return parseLockFreeze(domain.EventKindLocksUnfrozen, vLog, timestamp)
	}

	return nil, nil
}

func parseTransfer(vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Topics) < 3 || len(vLog.Data) < 32 {
		return nil, fmt.Errorf("invalid Transfer event log")
	}

	event := newEvent(domain.EventKindTokenTransfer, vLog, timestamp)
	event.TokenTransfer = &domain.TransferPayload{
		From:  topicAddress(vLog.Topics[1]),
		To:    topicAddress(vLog.Topics[2]),
		Value: domain.NewBigInt(wordAt(vLog.Data, 0)),
	}
	return event, nil
}

func parseDepositOperation(vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Topics) < 2 || len(vLog.Data) < 7*32 {
		return nil, fmt.Errorf("invalid DepositOperation event log")
	}

	event := newEvent(domain.EventKindSPDeposit, vLog, timestamp)
	event.SPDeposit = &domain.SPDepositPayload{
		Depositor:         topicAddress(vLog.Topics[1]),
		TopUpOrWithdrawal: domain.NewBigInt(signedWordAt(vLog.Data, 2)),
	}
	return event, nil
}

func parseTroveOperation(vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Topics) < 2 || len(vLog.Data) < 7*32 {
		return nil, fmt.Errorf("invalid TroveOperation event log")
	}

	event := newEvent(domain.EventKindTroveOperation, vLog, timestamp)
	event.TroveOperation = &domain.TroveOperationPayload{
		TroveID:                    domain.NewBigInt(vLog.Topics[1].Big()),
		Operation:                  uint8(wordAt(vLog.Data, 0).Uint64()),
		AnnualInterestRate:         domain.NewBigInt(wordAt(vLog.Data, 1)),
		DebtIncreaseFromRedist:     domain.NewBigInt(wordAt(vLog.Data, 2)),
		DebtIncreaseFromUpfrontFee: domain.NewBigInt(wordAt(vLog.Data, 3)),
		DebtChangeFromOperation:    domain.NewBigInt(signedWordAt(vLog.Data, 4)),
		CollIncreaseFromRedist:     domain.NewBigInt(wordAt(vLog.Data, 5)),
		CollChangeFromOperation:    domain.NewBigInt(signedWordAt(vLog.Data, 6)),
	}
	return event, nil
}

func parseTroveUpdated(vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Topics) < 2 || len(vLog.Data) < 4*32 {
		return nil, fmt.Errorf("invalid TroveUpdated event log")
	}

	event := newEvent(domain.EventKindTroveUpdated, vLog, timestamp)
	event.TroveUpdated = &domain.TroveUpdatedPayload{
		TroveID:            domain.NewBigInt(vLog.Topics[1].Big()),
		Debt:               domain.NewBigInt(wordAt(vLog.Data, 0)),
		Coll:               domain.NewBigInt(wordAt(vLog.Data, 1)),
		Stake:              domain.NewBigInt(wordAt(vLog.Data, 2)),
		AnnualInterestRate: domain.NewBigInt(wordAt(vLog.Data, 3)),
	}
	return event, nil
}

func parseRedemption(vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Data) < 6*32 {
		return nil, fmt.Errorf("invalid Redemption event log")
	}

	event := newEvent(domain.EventKindRedemption, vLog, timestamp)
	event.Redemption = &domain.RedemptionPayload{
		AttemptedBoldAmount: domain.NewBigInt(wordAt(vLog.Data, 0)),
		ActualBoldAmount:    domain.NewBigInt(wordAt(vLog.Data, 1)),
		CollSent:            domain.NewBigInt(wordAt(vLog.Data, 2)),
		Price:               domain.NewBigInt(wordAt(vLog.Data, 4)),
		RedemptionPrice:     domain.NewBigInt(wordAt(vLog.Data, 5)),
	}
	return event, nil
}

func parseLiquidation(vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Data) < 10*32 {
		return nil, fmt.Errorf("invalid Liquidation event log")
	}

	event := newEvent(domain.EventKindLiquidation, vLog, timestamp)
	event.Liquidation = &domain.LiquidationPayload{
		CollSentToSP: domain.NewBigInt(wordAt(vLog.Data, 4)),
	}
	return event, nil
}

// parseBoosterOperation handles Deposited and Withdrawn, which Convex and
// Equilibria emit with identical signatures. The processor tells the boosters
// apart by the emitting contract.
func parseBoosterOperation(kind domain.EventKind, vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Topics) < 3 || len(vLog.Data) < 32 {
		return nil, fmt.Errorf("invalid booster %s event log", kind)
	}

	event := newEvent(kind, vLog, timestamp)
	event.Booster = &domain.BoosterPayload{
		User:   topicAddress(vLog.Topics[1]),
		PoolID: domain.NewBigInt(vLog.Topics[2].Big()),
		Amount: domain.NewBigInt(wordAt(vLog.Data, 0)),
	}
	return event, nil
}

func parseGaugeWithdraw(vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Topics) < 2 || len(vLog.Data) < 32 {
		return nil, fmt.Errorf("invalid gauge Withdraw event log")
	}

	event := newEvent(domain.EventKindGaugeWithdraw, vLog, timestamp)
	event.GaugeWithdraw = &domain.GaugeWithdrawPayload{
		Provider: topicAddress(vLog.Topics[1]),
		Value:    domain.NewBigInt(wordAt(vLog.Data, 0)),
	}
	return event, nil
}

func parseAddUserVault(vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Topics) < 3 {
		return nil, fmt.Errorf("invalid AddUserVault event log")
	}

	event := newEvent(domain.EventKindVaultRegistered, vLog, timestamp)
	event.Registration = &domain.RegistrationPayload{
		User:   topicAddress(vLog.Topics[1]),
		PoolID: domain.NewBigInt(vLog.Topics[2].Big()),
	}
	return event, nil
}

func parsePenpiePoolAdded(vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Data) < 3*32 {
		return nil, fmt.Errorf("invalid Penpie PoolAdded event log")
	}

	event := newEvent(domain.EventKindPoolRegistered, vLog, timestamp)
	event.Registration = &domain.RegistrationPayload{
		Market:       addressWordAt(vLog.Data, 0),
		ReceiptToken: addressWordAt(vLog.Data, 2),
	}
	return event, nil
}

func parseEqbPoolAdded(vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Data) < 4*32 {
		return nil, fmt.Errorf("invalid Equilibria PoolAdded event log")
	}

	event := newEvent(domain.EventKindPoolRegistered, vLog, timestamp)
	event.Registration = &domain.RegistrationPayload{
		Market: addressWordAt(vLog.Data, 0),
		PoolID: domain.NewBigInt(wordAt(vLog.Data, 3)),
	}
	return event, nil
}

func parseVaultDeployed(vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Data) < 3*32 {
		return nil, fmt.Errorf("invalid VaultDeployed event log")
	}

	// The deployed proxy token is what holders stake into the matching gauge
	event := newEvent(domain.EventKindVaultDeployed, vLog, timestamp)
	event.Registration = &domain.RegistrationPayload{
		Market:       addressWordAt(vLog.Data, 1),
		StakingToken: addressWordAt(vLog.Data, 0),
	}
	return event, nil
}

func parseGaugeDeployed(vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Data) < 3*32 {
		return nil, fmt.Errorf("invalid GaugeDeployed event log")
	}

	event := newEvent(domain.EventKindGaugeDeployed, vLog, timestamp)
	event.Registration = &domain.RegistrationPayload{
		StakingToken: addressWordAt(vLog.Data, 1),
		Gauge:        addressWordAt(vLog.Data, 0),
	}
	return event, nil
}

func parseLockCreated(vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Topics) < 2 || len(vLog.Data) < 2*32 {
		return nil, fmt.Errorf("invalid LockCreated event log")
	}

	event := newEvent(domain.EventKindLocksCreated, vLog, timestamp)
	event.Locks = &domain.LockPayload{
		Account: topicAddress(vLog.Topics[1]),
		Locks: []domain.LockEntry{{
			Amount: domain.NewBigInt(wordAt(vLog.Data, 0)),
			Weeks:  wordAt(vLog.Data, 1).Uint64(),
		}},
	}
	return event, nil
}

func parseLockExtended(vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Topics) < 2 || len(vLog.Data) < 3*32 {
		return nil, fmt.Errorf("invalid LockExtended event log")
	}

	event := newEvent(domain.EventKindLocksExtended, vLog, timestamp)
	event.Locks = &domain.LockPayload{
		Account: topicAddress(vLog.Topics[1]),
		Locks: []domain.LockEntry{{
			Amount:   domain.NewBigInt(wordAt(vLog.Data, 0)),
			Weeks:    wordAt(vLog.Data, 1).Uint64(),
			NewWeeks: wordAt(vLog.Data, 2).Uint64(),
		}},
	}
	return event, nil
}

func parseLocksCreated(vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Topics) < 2 {
		return nil, fmt.Errorf("invalid LocksCreated event log")
	}

	var decoded struct {
		NewLocks []struct {
			Amount        *big.Int
			WeeksToUnlock *big.Int
		}
	}
	if err := lockerABI.UnpackIntoInterface(&decoded, "LocksCreated", vLog.Data); err != nil {
		return nil, fmt.Errorf("failed to unpack LocksCreated event: %w", err)
	}

	locks := make([]domain.LockEntry, 0, len(decoded.NewLocks))
	for _, l := range decoded.NewLocks {
		locks = append(locks, domain.LockEntry{
			Amount: domain.NewBigInt(l.Amount),
			Weeks:  l.WeeksToUnlock.Uint64(),
		})
	}

	event := newEvent(domain.EventKindLocksCreated, vLog, timestamp)
	event.Locks = &domain.LockPayload{
		Account: topicAddress(vLog.Topics[1]),
		Locks:   locks,
	}
	return event, nil
}

func parseLocksExtended(vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Topics) < 2 {
		return nil, fmt.Errorf("invalid LocksExtended event log")
	}

	var decoded struct {
		Locks []struct {
			Amount       *big.Int
			CurrentWeeks *big.Int
			NewWeeks     *big.Int
		}
	}
	if err := lockerABI.UnpackIntoInterface(&decoded, "LocksExtended", vLog.Data); err != nil {
		return nil, fmt.Errorf("failed to unpack LocksExtended event: %w", err)
	}

	locks := make([]domain.LockEntry, 0, len(decoded.Locks))
	for _, l := range decoded.Locks {
		locks = append(locks, domain.LockEntry{
			Amount:   domain.NewBigInt(l.Amount),
			Weeks:    l.CurrentWeeks.Uint64(),
			NewWeeks: l.NewWeeks.Uint64(),
		})
	}

	event := newEvent(domain.EventKindLocksExtended, vLog, timestamp)
	event.Locks = &domain.LockPayload{
		Account: topicAddress(vLog.Topics[1]),
		Locks:   locks,
	}
	return event, nil
}

func parseLockFreeze(kind domain.EventKind, vLog types.Log, timestamp time.Time) (*domain.ProtocolEvent, error) {
	if len(vLog.Topics) < 2 || len(vLog.Data) < 32 {
		return nil, fmt.Errorf("invalid %s event log", kind)
	}

	event := newEvent(kind, vLog, timestamp)
	event.Locks = &domain.LockPayload{
		Account: topicAddress(vLog.Topics[1]),
		Locks: []domain.LockEntry{{
			Amount: domain.NewBigInt(wordAt(vLog.Data, 0)),
		}},
	}
	return event, nil
}
