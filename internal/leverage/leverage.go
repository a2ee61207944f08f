// Package leverage splits a trove's collateral change into the owner-supplied
// and flash-loaned legs. Leveraged operations route through a zapper
// contract, so the split is recovered from the transaction's internal calls
// rather than from the event itself.
package leverage

import (
	"bytes"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
)

// Call selectors of the leverage zapper paths
var (
	// openLeveragedTrove(address owner, uint256 ownerIndex, uint256 initialCollAmount, ...)
	selectorOpenLeveragedTrove = []byte{0x33, 0x9f, 0x69, 0x58}
	// adjustTrove(uint256 troveId, uint256 collChange, bool isCollIncrease, ...)
	selectorAdjustTrove = []byte{0x84, 0xe5, 0x25, 0x3c}
)

var (
	typeAddress, _ = abi.NewType("address", "", nil)
	typeUint256, _ = abi.NewType("uint256", "", nil)
	typeBool, _    = abi.NewType("bool", "", nil)

	openArgs = abi.Arguments{
		{Type: typeAddress}, // owner
		{Type: typeUint256}, // ownerIndex
		{Type: typeUint256}, // initialCollAmount
	}
	adjustArgs = abi.Arguments{
		{Type: typeUint256}, // troveId
		{Type: typeUint256}, // collChange
		{Type: typeBool},    // isCollIncrease
	}
	troveIDArgs = abi.Arguments{
		{Type: typeAddress}, // zapper
		{Type: typeAddress}, // owner
		{Type: typeUint256}, // ownerIndex
	}
)

// Branch carries the per-branch contracts attribution needs
type Branch struct {
	Zapper             common.Address
	BorrowerOperations common.Address
}

// Resolve attributes the collateral change of a trove operation. The default
// for opens and adjustments is fully owner-supplied; when the transaction
// trace shows the branch zapper handling the same trove, the flash-loaned
// leg is carved out. The first matching call wins. Operations other than
// open and adjust carry no owner attribution.
func Resolve(calls []domain.TraceCall, op *domain.TroveOperationPayload, branch Branch, blockNumber, zapperDeployedAt uint64) domain.Attribution {
	zero := big.NewInt(0)
	collChange := &op.CollChangeFromOperation.Int

	if op.Operation != domain.TroveOpOpen && op.Operation != domain.TroveOpAdjust {
		return domain.Attribution{OwnerCollChange: zero, LeveragedCollChange: zero}
	}

	// Fully owner-supplied unless the zapper shows up in the trace
	attribution := domain.Attribution{
		OwnerCollChange:     new(big.Int).Set(collChange),
		LeveragedCollChange: zero,
	}

	if blockNumber < zapperDeployedAt || (branch.Zapper == common.Address{}) {
		return attribution
	}

	for _, call := range calls {
		if len(call.Input) < 4 {
			continue
		}
		selector, data := call.Input[:4], call.Input[4:]

		switch {
		case op.Operation == domain.TroveOpOpen &&
			call.To == branch.Zapper &&
			bytes.Equal(selector, selectorOpenLeveragedTrove):
			values, err := openArgs.Unpack(data)
			if err != nil {
				continue
			}
			owner := values[0].(common.Address)
			ownerIndex := values[1].(*big.Int)
			initialColl := values[2].(*big.Int)

			if troveID(branch.Zapper, owner, ownerIndex).Cmp(&op.TroveID.Int) != 0 {
				continue
			}
			return domain.Attribution{
				OwnerCollChange:     initialColl,
				LeveragedCollChange: new(big.Int).Sub(collChange, initialColl),
			}

		case op.Operation == domain.TroveOpAdjust &&
			call.From == branch.Zapper &&
			call.To == branch.BorrowerOperations &&
			bytes.Equal(selector, selectorAdjustTrove):
			values, err := adjustArgs.Unpack(data)
			if err != nil {
				continue
			}
			if values[0].(*big.Int).Cmp(&op.TroveID.Int) != 0 {
				continue
			}
			// The call must describe the same collateral movement the event
			// reports: same absolute amount and same direction. The call
			// carries an unsigned amount plus a direction flag, the event a
			// signed change.
			change := values[1].(*big.Int)
			increase := values[2].(bool)
			if change.CmpAbs(collChange) != 0 || increase != (collChange.Sign() > 0) {
				continue
			}
			return domain.Attribution{
				OwnerCollChange:     zero,
				LeveragedCollChange: new(big.Int).Set(collChange),
			}
		}
	}

	return attribution
}

// troveID recomputes the trove id a zapper derives for an owner:
// keccak256(abi.encode(zapper, owner, ownerIndex))
func troveID(zapper, owner common.Address, ownerIndex *big.Int) *big.Int {
	packed, err := troveIDArgs.Pack(zapper, owner, ownerIndex)
	if err != nil {
		return big.NewInt(-1)
	}
	return new(big.Int).SetBytes(crypto.Keccak256(packed))
}
