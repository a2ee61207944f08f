package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
	"github.com/asymmetryfinance/usdaf-indexer/internal/registry"
)

const testProtocolJSON = `{
	"usdaf": "0x9Cf12ccd6020b6888e4D4C4e4c7AcA33c1eB91f8",
	"veasf": "0xB0748cF81392915C96d0D1f99b3bFBE1Ad71d061",
	"convex_booster": "0xF403C135812408BFbE8713b5A23a04b3D48AAE31",
	"fxn_pool_registry": "0xdB95d646012bB87aC2E6CD63eAb2C42323c1F5AF",
	"dsa_fxn_pool_id": 42,
	"multicall3": "0xcA11bde05977b3631167028862bE2a173976CA11",
	"ysybold_vault": "0x23346B04a7f55b8760E5860AA5A77383D63491cD",
	"zapper_deployment_block": 23090319,
	"price_tick_interval": 7200,
	"branches": [
		{
			"collateral": "ysyBOLD",
			"stability_pool": "0x83e5BDe77d7477eCd972E338541b90Af57675536",
			"trove_manager": "0xF8a25a2E4c863bb7CEa7e4B4eeb3866BB7f11718",
			"price_feed": "0xE6Bcfa5E9497BA4Dad2ac85023eEB4E9139Bacc9",
			"zapper": "0x31b54E2f9D2d2B3E3aD4c924c17D7bc3a28a3d5D",
			"borrower_operations": "0x62f8E70FD1D2eB7b93444D0368f2cf8813d4eF8a"
		}
	],
	"lp_pools": [
		{
			"name": "scrvusd-usdaf",
			"lp_token": "0xBbC44F2bf4eA7EcE4B0CdbdB681D1390CD9c22b8",
			"sd_gauge": "0x5D1b4B2dCfF2bE0b8C15C23a2bA7E63A5a2c5536",
			"sd_gauge_staking_token": "0x42c006fE6958a5211513AA61a9b3145E99dDEEFF",
			"convex_pool_id": 484
		},
		{
			"name": "lqtyforks",
			"convex_pool_id": 500
		}
	],
	"tracked_tokens": [
		{ "symbol": "afCVX", "address": "0x8668a15b7b023Dc77B372a740FCb8939E15257Cf" }
	],
	"euler_vaults": [
		{ "address": "0x477d7feE2d9dca0bA8F7CbEAa7da219b5bb2d1a7", "dimension": "usdc_shares" }
	],
	"pendle": {
		"markets": ["0x0Db7E4F04A7B8D1A8E5eaA2b4fA6bF92E8F5dF4C"],
		"penpie_staking": "0x6E799758CEE75DAe3d84e09D40dc416eCf713652",
		"sd_vault_factory": "0x1Fbb2aD04eD1cEA8bBd7cB1dE20D1F7fD1e6A42E",
		"eqb_booster": "0x4D32C8Ff2fACC771eC7Efc70d6A8468bC30C26bF"
	},
	"price_coins": [
		{ "coin_id": "savings-crvusd", "collateral": "scrvUSD" },
		{ "coin_id": "wrapped-bitcoin", "collateral": "WBTC" }
	]
}`

func writeProtocolFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "protocol.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadProtocol(t *testing.T) {
	reg, err := registry.LoadProtocol(writeProtocolFile(t, testProtocolJSON))
	require.NoError(t, err)

	t.Run("roles are case insensitive", func(t *testing.T) {
		role, ok := reg.RoleOf("0x9cf12ccd6020b6888e4d4c4e4c7aca33c1eb91f8")
		assert.True(t, ok)
		assert.Equal(t, registry.RoleUSDaf, role)

		role, ok = reg.RoleOf("0X83E5BDE77D7477ECD972E338541B90AF57675536")
		assert.True(t, ok)
		assert.Equal(t, registry.RoleStabilityPool, role)

		_, ok = reg.RoleOf("0x0000000000000000000000000000000000000001")
		assert.False(t, ok)
	})

	t.Run("branch lookups", func(t *testing.T) {
		branch, ok := reg.BranchBySP("0x83e5bde77d7477ecd972e338541b90af57675536")
		require.True(t, ok)
		assert.Equal(t, domain.CollateralYsyBOLD, branch.Collateral)

		branch, ok = reg.BranchByTroveManager("0xF8a25a2E4c863bb7CEa7e4B4eeb3866BB7f11718")
		require.True(t, ok)
		assert.Equal(t, "0x31b54E2f9D2d2B3E3aD4c924c17D7bc3a28a3d5D", branch.Zapper)

		_, ok = reg.BranchBySP("0x0000000000000000000000000000000000000002")
		assert.False(t, ok)
	})

	t.Run("lp pool wiring", func(t *testing.T) {
		pool, role, ok := reg.LPPoolOf("0xbbc44f2bf4ea7ece4b0cdbdb681d1390cd9c22b8")
		require.True(t, ok)
		assert.Equal(t, domain.LPPoolScrvusdUsdaf, pool.Name)
		assert.Equal(t, registry.RoleLPToken, role)

		pool, role, ok = reg.LPPoolOf("0x5D1b4B2dCfF2bE0b8C15C23a2bA7E63A5a2c5536")
		require.True(t, ok)
		assert.Equal(t, registry.RoleSdGauge, role)
		assert.Equal(t, "0x42c006fE6958a5211513AA61a9b3145E99dDEEFF", pool.SdGaugeStakingToken)

		pool, ok = reg.LPPoolByConvexID(484)
		require.True(t, ok)
		assert.Equal(t, domain.LPPoolScrvusdUsdaf, pool.Name)

		pool, ok = reg.LPPoolByConvexID(500)
		require.True(t, ok)
		assert.Equal(t, domain.LPPoolLqtyforks, pool.Name)

		_, ok = reg.LPPoolByConvexID(123)
		assert.False(t, ok)
	})

	t.Run("token and euler lookups", func(t *testing.T) {
		sym, ok := reg.TokenSymbol("0x8668A15B7B023DC77B372A740FCB8939E15257CF")
		require.True(t, ok)
		assert.Equal(t, "afCVX", sym)

		dim, ok := reg.EulerDimension("0x477d7fee2d9dca0ba8f7cbeaa7da219b5bb2d1a7")
		require.True(t, ok)
		assert.Equal(t, domain.DimensionUSDCShares, dim)
	})

	t.Run("pendle markets", func(t *testing.T) {
		assert.True(t, reg.IsPendleMarket("0x0db7e4f04a7b8d1a8e5eaa2b4fa6bf92e8f5df4c"))
		assert.False(t, reg.IsPendleMarket("0x0000000000000000000000000000000000000003"))
	})

	t.Run("price coin table", func(t *testing.T) {
		coins := reg.PriceCoins()
		require.Len(t, coins, 2)
		assert.Equal(t, "savings-crvusd", coins[0].CoinID)
		assert.Equal(t, domain.CollateralScrvUSD, coins[0].Collateral)
	})

	t.Run("scalars", func(t *testing.T) {
		assert.Equal(t, uint64(23090319), reg.ZapperDeploymentBlock())
		assert.Equal(t, uint64(7200), reg.PriceTickInterval())
		assert.Equal(t, uint64(42), reg.DsaFxnPoolID())
	})

	t.Run("addresses cover every monitored contract", func(t *testing.T) {
		addrs := reg.Addresses()
		assert.Contains(t, addrs, "0x9Cf12ccd6020b6888e4D4C4e4c7AcA33c1eB91f8")
		assert.Contains(t, addrs, "0x83e5BDe77d7477eCd972E338541b90Af57675536")
		assert.Contains(t, addrs, "0xBbC44F2bf4eA7EcE4B0CdbdB681D1390CD9c22b8")
		assert.Contains(t, addrs, "0x0Db7E4F04A7B8D1A8E5eaA2b4fA6bF92E8F5dF4C")
		// The sd gauge staking token is a suppression marker, not a
		// monitored contract.
		assert.NotContains(t, addrs, "0x42c006fE6958a5211513AA61a9b3145E99dDEEFF")
	})
}

func TestLoadProtocol_Errors(t *testing.T) {
	tests := []struct {
		name        string
		json        string
		expectedErr string
	}{
		{
			name:        "missing file",
			json:        "",
			expectedErr: "failed to read protocol file",
		},
		{
			name:        "invalid JSON",
			json:        `{not json`,
			expectedErr: "failed to parse protocol JSON",
		},
		{
			name: "duplicate address across roles",
			json: `{
				"usdaf": "0x9Cf12ccd6020b6888e4D4C4e4c7AcA33c1eB91f8",
				"veasf": "0x9Cf12ccd6020b6888e4D4C4e4c7AcA33c1eB91f8"
			}`,
			expectedErr: "assigned to both",
		},
		{
			name: "unknown collateral",
			json: `{
				"branches": [{"collateral": "DOGE", "stability_pool": "0x1", "trove_manager": "0x2"}]
			}`,
			expectedErr: "unknown collateral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "protocol.json")
			if tt.json != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.json), 0o600))
			}

			_, err := registry.LoadProtocol(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}
