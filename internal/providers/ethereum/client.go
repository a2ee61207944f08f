package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/asymmetryfinance/usdaf-indexer/internal/adapter"
	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
)

// View-call ABIs of the contracts the processor reads between events
const (
	troveManagerABIJSON = `[
		{"type":"function","name":"getEntireBranchColl","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},
		{"type":"function","name":"getEntireBranchDebt","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]}
	]`

	priceFeedABIJSON = `[
		{"type":"function","name":"lastGoodPrice","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]}
	]`

	erc4626ABIJSON = `[
		{"type":"function","name":"convertToAssets","stateMutability":"view","inputs":[{"name":"shares","type":"uint256"}],"outputs":[{"type":"uint256"}]}
	]`

	poolRegistryABIJSON = `[
		{"type":"function","name":"vaultMap","stateMutability":"view","inputs":[{"name":"_pid","type":"uint256"},{"name":"_user","type":"address"}],"outputs":[{"type":"address"}]}
	]`

	multicall3ABIJSON = `[
		{"type":"function","name":"aggregate3","stateMutability":"payable",
		 "inputs":[{"name":"calls","type":"tuple[]","components":[
			{"name":"target","type":"address"},
			{"name":"allowFailure","type":"bool"},
			{"name":"callData","type":"bytes"}]}],
		 "outputs":[{"name":"returnData","type":"tuple[]","components":[
			{"name":"success","type":"bool"},
			{"name":"returnData","type":"bytes"}]}]}
	]`
)

func mustABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("invalid ABI: %v", err))
	}
	return parsed
}

var (
	troveManagerABI = mustABI(troveManagerABIJSON)
	priceFeedABI    = mustABI(priceFeedABIJSON)
	erc4626ABI      = mustABI(erc4626ABIJSON)
	poolRegistryABI = mustABI(poolRegistryABIJSON)
	multicall3ABI   = mustABI(multicall3ABIJSON)
)

// BranchState is a point-in-time read of one collateral branch
type BranchState struct {
	EntireColl *big.Int
	EntireDebt *big.Int
	Price      *big.Int
}

// ChainClient reads protocol contract state from an Ethereum node
//
//go:generate mockgen -source=client.go -destination=../../mocks/chain_client.go -package=mocks -mock_names=ChainClient=MockChainClient
type ChainClient interface {
	// BranchState reads the branch totals and oracle price in one multicall
	BranchState(ctx context.Context, troveManager, priceFeed string) (*BranchState, error)

	// VaultMap resolves the fxn protocol vault of a (pool, user) pair
	VaultMap(ctx context.Context, registry string, poolID uint64, user string) (string, error)

	// ConvertToAssets reads an ERC4626 vault's share rate
	ConvertToAssets(ctx context.Context, vault string, shares *big.Int) (*big.Int, error)

	// TraceTransaction returns the internal calls of a transaction
	TraceTransaction(ctx context.Context, txHash string) ([]domain.TraceCall, error)

	// BlockTimestamp returns the timestamp of a block
	BlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error)

	// Close closes the underlying connection
	Close()
}

// Client implements ChainClient over a raw Ethereum RPC connection
type Client struct {
	eth        adapter.EthClient
	multicall3 common.Address
}

// NewClient creates a chain client. multicall3 is the Multicall3 deployment
// used to batch branch reads.
func NewClient(eth adapter.EthClient, multicall3 string) *Client {
	return &Client{
		eth:        eth,
		multicall3: common.HexToAddress(multicall3),
	}
}

// multicall3Call mirrors the aggregate3 calls tuple
type multicall3Call struct {
	Target       common.Address
	AllowFailure bool
	CallData     []byte
}

// multicall3Result mirrors the aggregate3 returnData tuple
type multicall3Result struct {
	Success    bool
	ReturnData []byte
}

func (c *Client) BranchState(ctx context.Context, troveManager, priceFeed string) (*BranchState, error) {
	collData, err := troveManagerABI.Pack("getEntireBranchColl")
	if err != nil {
		return nil, fmt.Errorf("failed to pack getEntireBranchColl: %w", err)
	}
	debtData, err := troveManagerABI.Pack("getEntireBranchDebt")
	if err != nil {
		return nil, fmt.Errorf("failed to pack getEntireBranchDebt: %w", err)
	}
	priceData, err := priceFeedABI.Pack("lastGoodPrice")
	if err != nil {
		return nil, fmt.Errorf("failed to pack lastGoodPrice: %w", err)
	}

	tm := common.HexToAddress(troveManager)
	calls := []multicall3Call{
		{Target: tm, CallData: collData},
		{Target: tm, CallData: debtData},
		{Target: common.HexToAddress(priceFeed), CallData: priceData},
	}

	callData, err := multicall3ABI.Pack("aggregate3", calls)
	if err != nil {
		return nil, fmt.Errorf("failed to pack aggregate3: %w", err)
	}

	result, err := c.eth.CallContract(ctx, ethereum.CallMsg{
		To:   &c.multicall3,
		Data: callData,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("multicall failed: %w", err)
	}

	var results []multicall3Result
	if err := multicall3ABI.UnpackIntoInterface(&results, "aggregate3", result); err != nil {
		return nil, fmt.Errorf("failed to unpack aggregate3 result: %w", err)
	}
	if len(results) != len(calls) {
		return nil, fmt.Errorf("multicall returned %d results, expected %d", len(results), len(calls))
	}
	for i, r := range results {
		if !r.Success || len(r.ReturnData) < 32 {
			return nil, fmt.Errorf("multicall leg %d reverted", i)
		}
	}

	return &BranchState{
		EntireColl: new(big.Int).SetBytes(results[0].ReturnData[:32]),
		EntireDebt: new(big.Int).SetBytes(results[1].ReturnData[:32]),
		Price:      new(big.Int).SetBytes(results[2].ReturnData[:32]),
	}, nil
}

func (c *Client) VaultMap(ctx context.Context, registry string, poolID uint64, user string) (string, error) {
	callData, err := poolRegistryABI.Pack("vaultMap", new(big.Int).SetUint64(poolID), common.HexToAddress(user))
	if err != nil {
		return "", fmt.Errorf("failed to pack vaultMap: %w", err)
	}

	target := common.HexToAddress(registry)
	result, err := c.eth.CallContract(ctx, ethereum.CallMsg{
		To:   &target,
		Data: callData,
	}, nil)
	if err != nil {
		return "", fmt.Errorf("vaultMap call failed: %w", err)
	}
	if len(result) < 32 {
		return "", fmt.Errorf("vaultMap returned %d bytes", len(result))
	}

	return strings.ToLower(common.BytesToAddress(result[12:32]).Hex()), nil
}

func (c *Client) ConvertToAssets(ctx context.Context, vault string, shares *big.Int) (*big.Int, error) {
	callData, err := erc4626ABI.Pack("convertToAssets", shares)
	if err != nil {
		return nil, fmt.Errorf("failed to pack convertToAssets: %w", err)
	}

	target := common.HexToAddress(vault)
	result, err := c.eth.CallContract(ctx, ethereum.CallMsg{
		To:   &target,
		Data: callData,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("convertToAssets call failed: %w", err)
	}
	if len(result) < 32 {
		return nil, fmt.Errorf("convertToAssets returned %d bytes", len(result))
	}

	return new(big.Int).SetBytes(result[:32]), nil
}

// traceEntry is one frame of a trace_transaction response
type traceEntry struct {
	Type   string `json:"type"`
	Action struct {
		From  string `json:"from"`
		To    string `json:"to"`
		Input string `json:"input"`
	} `json:"action"`
}

func (c *Client) TraceTransaction(ctx context.Context, txHash string) ([]domain.TraceCall, error) {
	var entries []traceEntry
	if err := c.eth.CallContext(ctx, &entries, "trace_transaction", txHash); err != nil {
		return nil, fmt.Errorf("trace_transaction failed: %w", err)
	}

	calls := make([]domain.TraceCall, 0, len(entries))
	for _, e := range entries {
		if e.Type != "call" {
			continue
		}
		calls = append(calls, domain.TraceCall{
			From:  common.HexToAddress(e.Action.From),
			To:    common.HexToAddress(e.Action.To),
			Input: common.FromHex(e.Action.Input),
		})
	}
	return calls, nil
}

func (c *Client) BlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error) {
	header, err := c.eth.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to fetch header %d: %w", blockNumber, err)
	}
	return time.Unix(int64(header.Time), 0).UTC(), nil
}

func (c *Client) Close() {
	c.eth.Close()
}
