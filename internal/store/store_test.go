package store

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
	"github.com/asymmetryfinance/usdaf-indexer/internal/store/schema"
)

// RunStoreTests runs the full store suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(t *testing.T, store Store)
	}{
		{"MarkProcessed", testMarkProcessed},
		{"Balances", testBalances},
		{"VaultOwners", testVaultOwners},
		{"PendlePools", testPendlePools},
		{"DailyRewards", testDailyRewards},
		{"SPDailyBalance", testSPDailyBalance},
		{"DailyPrices", testDailyPrices},
		{"TroveRecords", testTroveRecords},
		{"LockJournal", testLockJournal},
		{"BlockCursor", testBlockCursor},
		{"Transactions", testTransactions},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tc.fn(t, store)
		})
	}
}

// storeDB exposes the underlying gorm handle for direct row assertions
func storeDB(store Store) *gorm.DB {
	return store.(*pgStore).db
}

func testMarkProcessed(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("first insert returns true", func(t *testing.T) {
		fresh, err := store.MarkProcessed(ctx, "0xabc123", 3, string(domain.EventKindTokenTransfer), 23100000)
		require.NoError(t, err)
		assert.True(t, fresh)
	})

	t.Run("redelivery returns false", func(t *testing.T) {
		fresh, err := store.MarkProcessed(ctx, "0xdup", 0, string(domain.EventKindSPDeposit), 23100001)
		require.NoError(t, err)
		assert.True(t, fresh)

		fresh, err = store.MarkProcessed(ctx, "0xdup", 0, string(domain.EventKindSPDeposit), 23100001)
		require.NoError(t, err)
		assert.False(t, fresh)
	})

	t.Run("same tx different log index is fresh", func(t *testing.T) {
		fresh, err := store.MarkProcessed(ctx, "0xmulti", 1, string(domain.EventKindTokenTransfer), 23100002)
		require.NoError(t, err)
		assert.True(t, fresh)

		fresh, err = store.MarkProcessed(ctx, "0xmulti", 2, string(domain.EventKindTokenTransfer), 23100002)
		require.NoError(t, err)
		assert.True(t, fresh)
	})

	t.Run("tx hash is case-normalized", func(t *testing.T) {
		fresh, err := store.MarkProcessed(ctx, "0xAbCd", 0, string(domain.EventKindTokenTransfer), 23100003)
		require.NoError(t, err)
		assert.True(t, fresh)

		fresh, err = store.MarkProcessed(ctx, "0xabcd", 0, string(domain.EventKindTokenTransfer), 23100003)
		require.NoError(t, err)
		assert.False(t, fresh)
	})
}

func testBalances(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	depositor := "0x1111111111111111111111111111111111111111"

	t.Run("missing record reads as zero", func(t *testing.T) {
		key := domain.PositionKey{
			Class:     domain.ClassSPDepositor,
			Owner:     depositor,
			Dimension: string(domain.CollateralTBTC),
		}

		bal, err := store.GetBalance(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, 0, bal.Sign())
	})

	t.Run("sp depositor round trip keeps columns independent", func(t *testing.T) {
		tbtcKey := domain.PositionKey{
			Class:     domain.ClassSPDepositor,
			Owner:     depositor,
			Dimension: string(domain.CollateralTBTC),
		}
		wbtcKey := domain.PositionKey{
			Class:     domain.ClassSPDepositor,
			Owner:     depositor,
			Dimension: string(domain.CollateralWBTC),
		}

		require.NoError(t, store.PutBalance(ctx, tbtcKey, big.NewInt(1000), now))
		require.NoError(t, store.PutBalance(ctx, wbtcKey, big.NewInt(250), now))

		bal, err := store.GetBalance(ctx, tbtcKey)
		require.NoError(t, err)
		assert.Equal(t, "1000", bal.String())

		bal, err = store.GetBalance(ctx, wbtcKey)
		require.NoError(t, err)
		assert.Equal(t, "250", bal.String())
	})

	t.Run("owner address is case-normalized", func(t *testing.T) {
		upper := domain.PositionKey{
			Class:     domain.ClassSPDepositor,
			Owner:     "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
			Dimension: string(domain.CollateralYsyBOLD),
		}
		lower := domain.PositionKey{
			Class:     domain.ClassSPDepositor,
			Owner:     "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			Dimension: string(domain.CollateralYsyBOLD),
		}

		require.NoError(t, store.PutBalance(ctx, upper, big.NewInt(7), now))

		bal, err := store.GetBalance(ctx, lower)
		require.NoError(t, err)
		assert.Equal(t, "7", bal.String())
	})

	t.Run("sp pool totals are a singleton", func(t *testing.T) {
		key := domain.PositionKey{
			Class:     domain.ClassSPPool,
			Dimension: string(domain.CollateralScrvUSD),
		}

		require.NoError(t, store.PutBalance(ctx, key, big.NewInt(5000), now))
		require.NoError(t, store.PutBalance(ctx, key, big.NewInt(4200), now))

		bal, err := store.GetBalance(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "4200", bal.String())
	})

	t.Run("lp balance dimensions", func(t *testing.T) {
		balanceKey := domain.PositionKey{
			Class:     domain.ClassLP,
			Instance:  string(domain.LPPoolScrvusdUsdaf),
			Owner:     depositor,
			Dimension: string(domain.DimensionLPBalance),
		}
		sharesKey := domain.PositionKey{
			Class:     domain.ClassLP,
			Instance:  string(domain.LPPoolScrvusdUsdaf),
			Owner:     depositor,
			Dimension: string(domain.DimensionYearnShares),
		}

		require.NoError(t, store.PutBalance(ctx, balanceKey, big.NewInt(99), now))
		require.NoError(t, store.PutBalance(ctx, sharesKey, big.NewInt(12), now))

		bal, err := store.GetBalance(ctx, balanceKey)
		require.NoError(t, err)
		assert.Equal(t, "99", bal.String())

		bal, err = store.GetBalance(ctx, sharesKey)
		require.NoError(t, err)
		assert.Equal(t, "12", bal.String())
	})

	t.Run("token balance keyed by token and depositor", func(t *testing.T) {
		key := domain.PositionKey{
			Class:    domain.ClassToken,
			Instance: "0x8668a15b7b023Dc77B372a740FCb8939E15257Cf",
			Owner:    depositor,
		}

		huge, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
		require.True(t, ok)

		require.NoError(t, store.PutBalance(ctx, key, huge, now))

		bal, err := store.GetBalance(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, huge.String(), bal.String())
	})

	t.Run("euler share dimensions", func(t *testing.T) {
		usdcKey := domain.PositionKey{
			Class:     domain.ClassEuler,
			Owner:     depositor,
			Dimension: string(domain.DimensionUSDCShares),
		}
		usdtKey := domain.PositionKey{
			Class:     domain.ClassEuler,
			Owner:     depositor,
			Dimension: string(domain.DimensionUSDTShares),
		}

		require.NoError(t, store.PutBalance(ctx, usdcKey, big.NewInt(31), now))
		require.NoError(t, store.PutBalance(ctx, usdtKey, big.NewInt(17), now))

		bal, err := store.GetBalance(ctx, usdcKey)
		require.NoError(t, err)
		assert.Equal(t, "31", bal.String())

		bal, err = store.GetBalance(ctx, usdtKey)
		require.NoError(t, err)
		assert.Equal(t, "17", bal.String())
	})

	t.Run("pendle lp balance", func(t *testing.T) {
		key := domain.PositionKey{
			Class:    domain.ClassPendleLP,
			Instance: "0x1234500000000000000000000000000000000001",
			Owner:    depositor,
		}

		require.NoError(t, store.PutBalance(ctx, key, big.NewInt(64), now))

		bal, err := store.GetBalance(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "64", bal.String())
	})

	t.Run("unknown class is rejected", func(t *testing.T) {
		key := domain.PositionKey{Class: "bogus", Owner: depositor}

		_, err := store.GetBalance(ctx, key)
		require.Error(t, err)

		err = store.PutBalance(ctx, key, big.NewInt(1), now)
		require.Error(t, err)
	})
}

func testVaultOwners(t *testing.T, store Store) {
	ctx := context.Background()

	vault := "0x2222222222222222222222222222222222222222"
	user := "0x3333333333333333333333333333333333333333"

	t.Run("unknown vault misses", func(t *testing.T) {
		_, found, err := store.VaultOwner(ctx, vault)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("register then resolve", func(t *testing.T) {
		require.NoError(t, store.RegisterVaultOwner(ctx, vault, user, "0xtx1"))

		owner, found, err := store.VaultOwner(ctx, vault)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, user, owner)
	})

	t.Run("first registration wins", func(t *testing.T) {
		other := "0x4444444444444444444444444444444444444444"
		require.NoError(t, store.RegisterVaultOwner(ctx, vault, other, "0xtx2"))

		owner, found, err := store.VaultOwner(ctx, vault)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, user, owner)
	})
}

func testPendlePools(t *testing.T, store Store) {
	ctx := context.Background()

	market := "0x5555555555555555555555555555555555555555"
	receipt := "0x6666666666666666666666666666666666666666"
	stakingToken := "0x7777777777777777777777777777777777777777"
	gauge := "0x8888888888888888888888888888888888888888"

	t.Run("register satellites then resolve market", func(t *testing.T) {
		require.NoError(t, store.SetPendlePenpieReceipt(ctx, market, receipt))
		require.NoError(t, store.SetPendleSdStakingToken(ctx, market, stakingToken))
		require.NoError(t, store.SetPendleSdGauge(ctx, stakingToken, gauge))
		require.NoError(t, store.SetPendleEqbPoolID(ctx, market, 7))

		pool, found, err := store.PendlePoolByReceipt(ctx, receipt)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, market, pool.Market)

		pool, found, err = store.PendlePoolByGauge(ctx, gauge)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, market, pool.Market)

		pool, found, err = store.PendlePoolByEqbID(ctx, 7)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, market, pool.Market)
	})

	t.Run("satellite fields are write-once", func(t *testing.T) {
		require.NoError(t, store.SetPendlePenpieReceipt(ctx, market, "0x9999999999999999999999999999999999999999"))

		pool, found, err := store.PendlePoolByReceipt(ctx, receipt)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, market, pool.Market)

		_, found, err = store.PendlePoolByReceipt(ctx, "0x9999999999999999999999999999999999999999")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("gauge for unknown staking token is a no-op", func(t *testing.T) {
		require.NoError(t, store.SetPendleSdGauge(ctx, "0xaaaa000000000000000000000000000000000000", "0xbbbb000000000000000000000000000000000000"))

		_, found, err := store.PendlePoolByGauge(ctx, "0xbbbb000000000000000000000000000000000000")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("satellite addresses cover receipts and gauges", func(t *testing.T) {
		addrs, err := store.SatelliteAddresses(ctx)
		require.NoError(t, err)
		assert.Contains(t, addrs, receipt)
		assert.Contains(t, addrs, gauge)
	})

	t.Run("unknown lookups miss", func(t *testing.T) {
		_, found, err := store.PendlePoolByEqbID(ctx, 999)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func testDailyRewards(t *testing.T, store Store) {
	ctx := context.Background()
	day := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC).Unix()

	t.Run("interest accumulates within a day bucket", func(t *testing.T) {
		require.NoError(t, store.AddInterestReward(ctx, day, domain.CollateralYsyBOLD, big.NewInt(100)))
		require.NoError(t, store.AddInterestReward(ctx, day, domain.CollateralYsyBOLD, big.NewInt(40)))
		require.NoError(t, store.AddInterestReward(ctx, day, domain.CollateralWBTC, big.NewInt(9)))

		var rec schema.InterestReward
		require.NoError(t, storeDB(store).WithContext(ctx).Where("day = ?", day).First(&rec).Error)
		assert.Equal(t, "140", rec.YsyBOLD)
		assert.Equal(t, "9", rec.WBTC)
		assert.Equal(t, "0", rec.TBTC)
	})

	t.Run("liquidations use separate buckets", func(t *testing.T) {
		require.NoError(t, store.AddLiquidationReward(ctx, day, domain.CollateralYsyBOLD, big.NewInt(55)))

		var rec schema.LiquidationReward
		require.NoError(t, storeDB(store).WithContext(ctx).Where("day = ?", day).First(&rec).Error)
		assert.Equal(t, "55", rec.YsyBOLD)

		var interest schema.InterestReward
		require.NoError(t, storeDB(store).WithContext(ctx).Where("day = ?", day).First(&interest).Error)
		assert.Equal(t, "140", interest.YsyBOLD)
	})
}

func testSPDailyBalance(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()
	day := time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC).Unix()

	t.Run("copy without totals is a no-op", func(t *testing.T) {
		require.NoError(t, store.CopySPDailyBalance(ctx, day))

		var count int64
		require.NoError(t, storeDB(store).WithContext(ctx).Model(&schema.SPDailyBalance{}).Where("day = ?", day).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("copy snapshots current totals, last write wins", func(t *testing.T) {
		key := domain.PositionKey{Class: domain.ClassSPPool, Dimension: string(domain.CollateralSfrxUSD)}
		require.NoError(t, store.PutBalance(ctx, key, big.NewInt(900), now))
		require.NoError(t, store.CopySPDailyBalance(ctx, day))

		require.NoError(t, store.PutBalance(ctx, key, big.NewInt(750), now))
		require.NoError(t, store.CopySPDailyBalance(ctx, day))

		var rec schema.SPDailyBalance
		require.NoError(t, storeDB(store).WithContext(ctx).Where("day = ?", day).First(&rec).Error)
		assert.Equal(t, "750", rec.SfrxUSD)
	})
}

func testDailyPrices(t *testing.T, store Store) {
	ctx := context.Background()
	day := time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC).Unix()

	t.Run("upsert overwrites the day bucket", func(t *testing.T) {
		require.NoError(t, store.UpsertDailyPrice(ctx, &schema.DailyPrice{
			Day:     day,
			YsyBOLD: 1.02,
			ScrvUSD: 1.01,
			SUSDS:   1.05,
			SfrxUSD: 1.11,
			TBTC:    111000.5,
			WBTC:    110998.2,
		}))

		require.NoError(t, store.UpsertDailyPrice(ctx, &schema.DailyPrice{
			Day:     day,
			YsyBOLD: 1.03,
			TBTC:    111500.1,
		}))

		var rec schema.DailyPrice
		require.NoError(t, storeDB(store).WithContext(ctx).Where("day = ?", day).First(&rec).Error)
		assert.InDelta(t, 1.03, rec.YsyBOLD, 1e-9)
		assert.InDelta(t, 111500.1, rec.TBTC, 1e-9)
		assert.Zero(t, rec.ScrvUSD)
	})
}

func testTroveRecords(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("trove operation insert is idempotent", func(t *testing.T) {
		rec := &schema.TroveOperationRecord{
			TxHash:                     "0xop1",
			LogIndex:                   4,
			Timestamp:                  now,
			TroveManager:               "0xf8a25a2e4c863bb7cea7e4b4eeb3866bb7f11718",
			TroveID:                    "123456",
			Op:                         0,
			AnnualInterestRate:         "50000000000000000",
			DebtIncreaseFromRedist:     "0",
			DebtIncreaseFromUpfrontFee: "100",
			DebtChangeFromOperation:    "2000",
			CollIncreaseFromRedist:     "0",
			CollChangeFromOperation:    "3000",
			OwnerCollChange:            "1000",
			LeveragedCollChange:        "2000",
		}

		require.NoError(t, store.CreateTroveOperation(ctx, rec))
		require.NoError(t, store.CreateTroveOperation(ctx, rec))

		var count int64
		require.NoError(t, storeDB(store).WithContext(ctx).Model(&schema.TroveOperationRecord{}).Where("tx_hash = ?", "0xop1").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("trove update and redemption", func(t *testing.T) {
		require.NoError(t, store.CreateTroveUpdate(ctx, &schema.TroveUpdateRecord{
			TxHash:             "0xup1",
			LogIndex:           1,
			Timestamp:          now,
			TroveManager:       "0xf8a25a2e4c863bb7cea7e4b4eeb3866bb7f11718",
			TroveID:            "123456",
			Debt:               "2100",
			Coll:               "3000",
			Stake:              "3000",
			AnnualInterestRate: "50000000000000000",
			EntireColl:         "9000",
			EntireDebt:         "6300",
			Price:              "1020000000000000000",
		}))

		require.NoError(t, store.CreateRedemption(ctx, &schema.RedemptionRecord{
			TxHash:              "0xred1",
			LogIndex:            2,
			Timestamp:           now,
			TroveManager:        "0xf8a25a2e4c863bb7cea7e4b4eeb3866bb7f11718",
			AttemptedBoldAmount: "500",
			DebtDecrease:        "480",
			CollDecrease:        "470",
			Price:               "1020000000000000000",
			RedemptionPrice:     "1010000000000000000",
			EntireColl:          "8530",
			EntireDebt:          "5820",
		}))

		var update schema.TroveUpdateRecord
		require.NoError(t, storeDB(store).WithContext(ctx).Where("tx_hash = ?", "0xup1").First(&update).Error)
		assert.Equal(t, "9000", update.EntireColl)

		var redemption schema.RedemptionRecord
		require.NoError(t, storeDB(store).WithContext(ctx).Where("tx_hash = ?", "0xred1").First(&redemption).Error)
		assert.Equal(t, "480", redemption.DebtDecrease)
	})
}

func testLockJournal(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()
	account := "0xcccccccccccccccccccccccccccccccccccccccc"

	t.Run("plural lock events fan out to rows", func(t *testing.T) {
		locks := []schema.VeasfLock{
			{ID: uuid.NewString(), Account: account, Amount: "1000", Weeks: 26, Timestamp: now, TxHash: "0xlock1"},
			{ID: uuid.NewString(), Account: account, Amount: "500", Weeks: 52, Timestamp: now, TxHash: "0xlock1"},
		}
		require.NoError(t, store.CreateLocks(ctx, locks))
		require.NoError(t, store.CreateLocks(ctx, nil))

		var count int64
		require.NoError(t, storeDB(store).WithContext(ctx).Model(&schema.VeasfLock{}).Where("account = ?", account).Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})

	t.Run("extensions and freezes", func(t *testing.T) {
		require.NoError(t, store.CreateLockExtensions(ctx, []schema.VeasfLockExtension{
			{ID: uuid.NewString(), Account: account, Amount: "1000", Weeks: 26, NewWeeks: 52, Timestamp: now, TxHash: "0xext1"},
		}))
		require.NoError(t, store.CreateLockFreeze(ctx, &schema.VeasfLockFreeze{
			ID:        uuid.NewString(),
			Account:   account,
			Amount:    "1500",
			Action:    schema.LockActionFrozen,
			Timestamp: now,
			TxHash:    "0xfrz1",
		}))

		var freeze schema.VeasfLockFreeze
		require.NoError(t, storeDB(store).WithContext(ctx).Where("account = ?", account).First(&freeze).Error)
		assert.Equal(t, schema.LockActionFrozen, freeze.Action)
	})
}

func testBlockCursor(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("missing cursor reads as zero", func(t *testing.T) {
		cursor, err := store.GetBlockCursor(ctx, "ethereum")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), cursor)
	})

	t.Run("set and advance", func(t *testing.T) {
		require.NoError(t, store.SetBlockCursor(ctx, "ethereum", 23090319))

		cursor, err := store.GetBlockCursor(ctx, "ethereum")
		require.NoError(t, err)
		assert.Equal(t, uint64(23090319), cursor)

		require.NoError(t, store.SetBlockCursor(ctx, "ethereum", 23090400))

		cursor, err = store.GetBlockCursor(ctx, "ethereum")
		require.NoError(t, err)
		assert.Equal(t, uint64(23090400), cursor)
	})
}

func testTransactions(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	key := domain.PositionKey{
		Class:     domain.ClassSPDepositor,
		Owner:     "0xdddddddddddddddddddddddddddddddddddddddd",
		Dimension: string(domain.CollateralSUSDS),
	}

	t.Run("rollback discards journal and balance writes", func(t *testing.T) {
		sentinel := errors.New("boom")
		err := store.WithinTransaction(ctx, func(tx Store) error {
			fresh, err := tx.MarkProcessed(ctx, "0xrollback", 0, string(domain.EventKindSPDeposit), 23100010)
			require.NoError(t, err)
			require.True(t, fresh)

			require.NoError(t, tx.PutBalance(ctx, key, big.NewInt(333), now))
			return sentinel
		})
		require.ErrorIs(t, err, sentinel)

		fresh, err := store.MarkProcessed(ctx, "0xrollback", 0, string(domain.EventKindSPDeposit), 23100010)
		require.NoError(t, err)
		assert.True(t, fresh, "journal insert should have been rolled back")

		bal, err := store.GetBalance(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, 0, bal.Sign())
	})

	t.Run("commit keeps writes", func(t *testing.T) {
		err := store.WithinTransaction(ctx, func(tx Store) error {
			return tx.PutBalance(ctx, key, big.NewInt(777), now)
		})
		require.NoError(t, err)

		bal, err := store.GetBalance(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "777", bal.String())
	})
}
