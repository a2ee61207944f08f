package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
)

// ContractRole classifies what a monitored contract address is to the
// protocol, which selects both the events decoded from it and the handler
// that consumes them
type ContractRole string

const (
	RoleUSDaf           ContractRole = "usdaf"
	RoleStabilityPool   ContractRole = "stability_pool"
	RoleTroveManager    ContractRole = "trove_manager"
	RoleLPToken         ContractRole = "lp_token"
	RoleCurveGauge      ContractRole = "curve_gauge"
	RoleSdGauge         ContractRole = "sd_gauge"
	RoleSdGaugeV2       ContractRole = "sd_gauge_v2"
	RoleFxnGauge        ContractRole = "fxn_gauge"
	RoleYearnVault      ContractRole = "yearn_vault"
	RoleBeefyVault      ContractRole = "beefy_vault"
	RoleTrackedToken    ContractRole = "tracked_token"
	RoleEulerVault      ContractRole = "euler_vault"
	RolePendleMarket    ContractRole = "pendle_market"
	RoleConvexBooster   ContractRole = "convex_booster"
	RoleFxnPoolRegistry ContractRole = "fxn_pool_registry"
	RolePenpieStaking   ContractRole = "penpie_staking"
	RoleSdPendleFactory ContractRole = "sd_pendle_factory"
	RoleEqbBooster      ContractRole = "eqb_booster"
	RoleVeASF           ContractRole = "veasf"
)

// Branch holds the contract addresses of one collateral branch
type Branch struct {
	Collateral         domain.Collateral `json:"collateral"`
	StabilityPool      string            `json:"stability_pool"`
	TroveManager       string            `json:"trove_manager"`
	PriceFeed          string            `json:"price_feed"`
	Zapper             string            `json:"zapper"`
	BorrowerOperations string            `json:"borrower_operations"`
}

// LPPoolConfig wires one tracked Curve pool to its gauges, boosters and
// yield-vault wrappers. Empty addresses mean the pool has no such wrapper.
type LPPoolConfig struct {
	Name                domain.LPPool `json:"name"`
	LPToken             string        `json:"lp_token"`
	CurveGauge          string        `json:"curve_gauge"`
	SdGauge             string        `json:"sd_gauge"`
	SdGaugeStakingToken string        `json:"sd_gauge_staking_token"`
	SdGaugeV2           string        `json:"sd_gauge_v2"`
	FxnGauge            string        `json:"fxn_gauge"`
	YearnVault          string        `json:"yearn_vault"`
	BeefyVault          string        `json:"beefy_vault"`
	ConvexPoolID        *uint64       `json:"convex_pool_id"`
}

// TrackedToken is a plain ERC20 whose holder balances are indexed
type TrackedToken struct {
	Symbol  string `json:"symbol"`
	Address string `json:"address"`
}

// EulerVault maps a frontier vault to its share column
type EulerVault struct {
	Address   string                `json:"address"`
	Dimension domain.EulerDimension `json:"dimension"`
}

// PendleConfig holds the monitored Pendle markets and the booster/factory
// contracts whose registration events discover their satellites
type PendleConfig struct {
	Markets        []string `json:"markets"`
	PenpieStaking  string   `json:"penpie_staking"`
	SdVaultFactory string   `json:"sd_vault_factory"`
	EqbBooster     string   `json:"eqb_booster"`
}

// PriceCoin maps a DefiLlama coin id to the collateral column it prices
type PriceCoin struct {
	CoinID     string            `json:"coin_id"`
	Collateral domain.Collateral `json:"collateral"`
}

// protocolData is the structure of the protocol.json file
type protocolData struct {
	USDaf                 string         `json:"usdaf"`
	VeASF                 string         `json:"veasf"`
	ConvexBooster         string         `json:"convex_booster"`
	FxnPoolRegistry       string         `json:"fxn_pool_registry"`
	DsaFxnPoolID          uint64         `json:"dsa_fxn_pool_id"`
	Multicall3            string         `json:"multicall3"`
	YsyBoldVault          string         `json:"ysybold_vault"`
	ZapperDeploymentBlock uint64         `json:"zapper_deployment_block"`
	PriceTickInterval     uint64         `json:"price_tick_interval"`
	Branches              []Branch       `json:"branches"`
	LPPools               []LPPoolConfig `json:"lp_pools"`
	TrackedTokens         []TrackedToken `json:"tracked_tokens"`
	EulerVaults           []EulerVault   `json:"euler_vaults"`
	Pendle                PendleConfig   `json:"pendle"`
	PriceCoins            []PriceCoin    `json:"price_coins"`
}

// ProtocolRegistry defines the lookup surface over the static protocol
// address tables. Every lookup is injective; a miss means the event's
// contract is not part of the protocol wiring and must be dropped with a
// warning.
//
//go:generate mockgen -source=protocol.go -destination=../mocks/protocol_registry.go -package=mocks -mock_names=ProtocolRegistry=MockProtocolRegistry
type ProtocolRegistry interface {
	// Addresses returns every statically monitored contract address
	Addresses() []string

	// RoleOf returns the role of a monitored contract address
	RoleOf(address string) (ContractRole, bool)

	// BranchBySP returns the branch owning a stability pool
	BranchBySP(address string) (*Branch, bool)

	// BranchByTroveManager returns the branch owning a trove manager
	BranchByTroveManager(address string) (*Branch, bool)

	// LPPoolOf returns the pool wiring a LP-side contract belongs to,
	// together with the contract's role within the pool
	LPPoolOf(address string) (*LPPoolConfig, ContractRole, bool)

	// LPPoolByConvexID returns the pool wired to a Convex booster pool id
	LPPoolByConvexID(poolID uint64) (*LPPoolConfig, bool)

	// TokenSymbol returns the symbol of a tracked plain token
	TokenSymbol(address string) (string, bool)

	// EulerDimension returns the share column of a frontier vault
	EulerDimension(address string) (domain.EulerDimension, bool)

	// IsPendleMarket checks whether an address is a monitored Pendle market
	IsPendleMarket(address string) bool

	// Pendle returns the Pendle booster/factory wiring
	Pendle() PendleConfig

	// PriceCoins returns the DefiLlama coin id table
	PriceCoins() []PriceCoin

	// Branches returns all collateral branches in registry order
	Branches() []Branch

	USDaf() string
	VeASF() string
	ConvexBooster() string
	FxnPoolRegistry() string
	DsaFxnPoolID() uint64
	Multicall3() string
	YsyBoldVault() string
	ZapperDeploymentBlock() uint64
	PriceTickInterval() uint64
}

// protocolRegistry is the internal implementation of ProtocolRegistry
type protocolRegistry struct {
	data *protocolData

	// Fast lookup maps keyed by lowercase address
	roles        map[string]ContractRole
	branchesBySP map[string]*Branch
	branchesByTM map[string]*Branch
	lpByAddr     map[string]lpRef
	lpByConvexID map[uint64]*LPPoolConfig
	tokens       map[string]string
	eulerDims    map[string]domain.EulerDimension
	pendleMkts   map[string]bool
	addresses    []string
}

type lpRef struct {
	pool *LPPoolConfig
	role ContractRole
}

// LoadProtocol loads the protocol registry from a JSON file
func LoadProtocol(filePath string) (ProtocolRegistry, error) {
	// Read the file using the absolute path
	data, err := os.ReadFile(filePath) //nolint:gosec,G304 // This should be a trusted file
	if err != nil {
		return nil, fmt.Errorf("failed to read protocol file: %w", err)
	}

	var pd protocolData
	if err := json.Unmarshal(data, &pd); err != nil {
		return nil, fmt.Errorf("failed to parse protocol JSON: %w", err)
	}

	return buildProtocolRegistry(&pd)
}

func buildProtocolRegistry(pd *protocolData) (ProtocolRegistry, error) {
	r := &protocolRegistry{
		data:         pd,
		roles:        make(map[string]ContractRole),
		branchesBySP: make(map[string]*Branch),
		branchesByTM: make(map[string]*Branch),
		lpByAddr:     make(map[string]lpRef),
		lpByConvexID: make(map[uint64]*LPPoolConfig),
		tokens:       make(map[string]string),
		eulerDims:    make(map[string]domain.EulerDimension),
		pendleMkts:   make(map[string]bool),
	}

	addRole := func(addr string, role ContractRole) error {
		if addr == "" {
			return nil
		}
		key := strings.ToLower(addr)
		if existing, ok := r.roles[key]; ok {
			return fmt.Errorf("address %s assigned to both %s and %s", addr, existing, role)
		}
		r.roles[key] = role
		r.addresses = append(r.addresses, addr)
		return nil
	}

	if err := addRole(pd.USDaf, RoleUSDaf); err != nil {
		return nil, err
	}
	if err := addRole(pd.VeASF, RoleVeASF); err != nil {
		return nil, err
	}
	if err := addRole(pd.ConvexBooster, RoleConvexBooster); err != nil {
		return nil, err
	}
	if err := addRole(pd.FxnPoolRegistry, RoleFxnPoolRegistry); err != nil {
		return nil, err
	}
	if err := addRole(pd.Pendle.PenpieStaking, RolePenpieStaking); err != nil {
		return nil, err
	}
	if err := addRole(pd.Pendle.SdVaultFactory, RoleSdPendleFactory); err != nil {
		return nil, err
	}
	if err := addRole(pd.Pendle.EqbBooster, RoleEqbBooster); err != nil {
		return nil, err
	}

	for i := range pd.Branches {
		b := &pd.Branches[i]
		if !domain.IsValidCollateral(b.Collateral) {
			return nil, fmt.Errorf("unknown collateral %q in branch config", b.Collateral)
		}
		if err := addRole(b.StabilityPool, RoleStabilityPool); err != nil {
			return nil, err
		}
		if err := addRole(b.TroveManager, RoleTroveManager); err != nil {
			return nil, err
		}
		r.branchesBySP[strings.ToLower(b.StabilityPool)] = b
		r.branchesByTM[strings.ToLower(b.TroveManager)] = b
	}

	for i := range pd.LPPools {
		p := &pd.LPPools[i]
		for addr, role := range map[string]ContractRole{
			p.LPToken:    RoleLPToken,
			p.CurveGauge: RoleCurveGauge,
			p.SdGauge:    RoleSdGauge,
			p.SdGaugeV2:  RoleSdGaugeV2,
			p.FxnGauge:   RoleFxnGauge,
			p.YearnVault: RoleYearnVault,
			p.BeefyVault: RoleBeefyVault,
		} {
			if addr == "" {
				continue
			}
			if err := addRole(addr, role); err != nil {
				return nil, err
			}
			r.lpByAddr[strings.ToLower(addr)] = lpRef{pool: p, role: role}
		}
		if p.ConvexPoolID != nil {
			if _, ok := r.lpByConvexID[*p.ConvexPoolID]; ok {
				return nil, fmt.Errorf("convex pool id %d wired twice", *p.ConvexPoolID)
			}
			r.lpByConvexID[*p.ConvexPoolID] = p
		}
	}

	for _, t := range pd.TrackedTokens {
		if err := addRole(t.Address, RoleTrackedToken); err != nil {
			return nil, err
		}
		r.tokens[strings.ToLower(t.Address)] = t.Symbol
	}

	for _, v := range pd.EulerVaults {
		if err := addRole(v.Address, RoleEulerVault); err != nil {
			return nil, err
		}
		r.eulerDims[strings.ToLower(v.Address)] = v.Dimension
	}

	for _, m := range pd.Pendle.Markets {
		if err := addRole(m, RolePendleMarket); err != nil {
			return nil, err
		}
		r.pendleMkts[strings.ToLower(m)] = true
	}

	for _, c := range pd.PriceCoins {
		if !domain.IsValidCollateral(c.Collateral) {
			return nil, fmt.Errorf("unknown collateral %q in price coin config", c.Collateral)
		}
	}

	return r, nil
}

func (r *protocolRegistry) Addresses() []string {
	return r.addresses
}

func (r *protocolRegistry) RoleOf(address string) (ContractRole, bool) {
	role, ok := r.roles[strings.ToLower(address)]
	return role, ok
}

func (r *protocolRegistry) BranchBySP(address string) (*Branch, bool) {
	b, ok := r.branchesBySP[strings.ToLower(address)]
	return b, ok
}

func (r *protocolRegistry) BranchByTroveManager(address string) (*Branch, bool) {
	b, ok := r.branchesByTM[strings.ToLower(address)]
	return b, ok
}

func (r *protocolRegistry) LPPoolOf(address string) (*LPPoolConfig, ContractRole, bool) {
	ref, ok := r.lpByAddr[strings.ToLower(address)]
	if !ok {
		return nil, "", false
	}
	return ref.pool, ref.role, true
}

func (r *protocolRegistry) LPPoolByConvexID(poolID uint64) (*LPPoolConfig, bool) {
	p, ok := r.lpByConvexID[poolID]
	return p, ok
}

func (r *protocolRegistry) TokenSymbol(address string) (string, bool) {
	sym, ok := r.tokens[strings.ToLower(address)]
	return sym, ok
}

func (r *protocolRegistry) EulerDimension(address string) (domain.EulerDimension, bool) {
	dim, ok := r.eulerDims[strings.ToLower(address)]
	return dim, ok
}

func (r *protocolRegistry) IsPendleMarket(address string) bool {
	return r.pendleMkts[strings.ToLower(address)]
}

func (r *protocolRegistry) Pendle() PendleConfig {
	return r.data.Pendle
}

func (r *protocolRegistry) PriceCoins() []PriceCoin {
	return r.data.PriceCoins
}

func (r *protocolRegistry) Branches() []Branch {
	return r.data.Branches
}

func (r *protocolRegistry) USDaf() string { return r.data.USDaf }

func (r *protocolRegistry) VeASF() string { return r.data.VeASF }

func (r *protocolRegistry) ConvexBooster() string { return r.data.ConvexBooster }

func (r *protocolRegistry) FxnPoolRegistry() string { return r.data.FxnPoolRegistry }

func (r *protocolRegistry) DsaFxnPoolID() uint64 { return r.data.DsaFxnPoolID }

func (r *protocolRegistry) Multicall3() string { return r.data.Multicall3 }

func (r *protocolRegistry) YsyBoldVault() string { return r.data.YsyBoldVault }

func (r *protocolRegistry) ZapperDeploymentBlock() uint64 { return r.data.ZapperDeploymentBlock }

func (r *protocolRegistry) PriceTickInterval() uint64 { return r.data.PriceTickInterval }
