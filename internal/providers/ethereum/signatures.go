package ethereum

import "github.com/ethereum/go-ethereum/crypto"

// Event signatures of every log the indexer consumes
var (
	// ERC20 Transfer(address indexed from, address indexed to, uint256 value)
	transferEventSignature = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

	// Stability pool DepositOperation(address indexed _depositor, uint8 _operation,
	// uint256 _depositLossSinceLastOperation, int256 _topUpOrWithdrawal,
	// uint256 _yieldGainSinceLastOperation, uint256 _yieldGainClaimed,
	// uint256 _ethGainSinceLastOperation, uint256 _ethGainClaimed)
	depositOperationEventSignature = crypto.Keccak256Hash([]byte("DepositOperation(address,uint8,uint256,int256,uint256,uint256,uint256,uint256)"))

	// TroveManager TroveOperation(uint256 indexed _troveId, uint8 _operation,
	// uint256 _annualInterestRate, uint256 _debtIncreaseFromRedist,
	// uint256 _debtIncreaseFromUpfrontFee, int256 _debtChangeFromOperation,
	// uint256 _collIncreaseFromRedist, int256 _collChangeFromOperation)
	troveOperationEventSignature = crypto.Keccak256Hash([]byte("TroveOperation(uint256,uint8,uint256,uint256,uint256,int256,uint256,int256)"))

	// TroveManager TroveUpdated(uint256 indexed _troveId, uint256 _debt,
	// uint256 _coll, uint256 _stake, uint256 _annualInterestRate)
	troveUpdatedEventSignature = crypto.Keccak256Hash([]byte("TroveUpdated(uint256,uint256,uint256,uint256,uint256)"))

	// TroveManager Redemption(uint256 _attemptedBoldAmount, uint256 _actualBoldAmount,
	// uint256 _ETHSent, uint256 _ETHFee, uint256 _price, uint256 _redemptionPrice)
	redemptionEventSignature = crypto.Keccak256Hash([]byte("Redemption(uint256,uint256,uint256,uint256,uint256,uint256)"))

	// TroveManager Liquidation(uint256 _debtOffsetBySP, uint256 _debtRedistributed,
	// uint256 _boldGasCompensation, uint256 _collGasCompensation, uint256 _collSentToSP,
	// uint256 _collRedistributed, uint256 _collSurplus, uint256 _L_ETH,
	// uint256 _L_boldDebt, uint256 _price)
	liquidationEventSignature = crypto.Keccak256Hash([]byte("Liquidation(uint256,uint256,uint256,uint256,uint256,uint256,uint256,uint256,uint256,uint256)"))

	// Convex/Equilibria booster Deposited(address indexed _user, uint256 indexed _poolid, uint256 _amount)
	boosterDepositedEventSignature = crypto.Keccak256Hash([]byte("Deposited(address,uint256,uint256)"))

	// Convex/Equilibria booster Withdrawn(address indexed _user, uint256 indexed _poolid, uint256 _amount)
	boosterWithdrawnEventSignature = crypto.Keccak256Hash([]byte("Withdrawn(address,uint256,uint256)"))

	// StakeDAO liquidity gauge Withdraw(address indexed provider, uint256 value)
	gaugeWithdrawEventSignature = crypto.Keccak256Hash([]byte("Withdraw(address,uint256)"))

	// fxn pool registry AddUserVault(address indexed _owner, uint256 indexed _poolId)
	addUserVaultEventSignature = crypto.Keccak256Hash([]byte("AddUserVault(address,uint256)"))

	// Penpie PoolAdded(address _market, address _rewarder, address _receiptToken)
	penpiePoolAddedEventSignature = crypto.Keccak256Hash([]byte("PoolAdded(address,address,address)"))

	// Equilibria PoolAdded(address _market, address _token, address _rewardPool, uint256 _pid)
	eqbPoolAddedEventSignature = crypto.Keccak256Hash([]byte("PoolAdded(address,address,address,uint256)"))

	// StakeDAO factory VaultDeployed(address proxy, address lptToken, address impl)
	vaultDeployedEventSignature = crypto.Keccak256Hash([]byte("VaultDeployed(address,address,address)"))

	// StakeDAO factory GaugeDeployed(address proxy, address stakeToken, address impl)
	gaugeDeployedEventSignature = crypto.Keccak256Hash([]byte("GaugeDeployed(address,address,address)"))

	// veASF locker lifecycle
	lockCreatedEventSignature   = crypto.Keccak256Hash([]byte("LockCreated(address,uint256,uint256)"))
	lockExtendedEventSignature  = crypto.Keccak256Hash([]byte("LockExtended(address,uint256,uint256,uint256)"))
	locksCreatedEventSignature  = crypto.Keccak256Hash([]byte("LocksCreated(address,(uint256,uint256)[])"))
	locksExtendedEventSignature = crypto.Keccak256Hash([]byte("LocksExtended(address,(uint256,uint256,uint256)[])"))
	locksFrozenEventSignature   = crypto.Keccak256Hash([]byte("LocksFrozen(address,uint256)"))
	locksUnfrozenEventSignature = crypto.Keccak256Hash([]byte("LocksUnfrozen(address,uint256)"))
)
