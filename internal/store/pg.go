package store

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
	"github.com/asymmetryfinance/usdaf-indexer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates every indexer table
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.KeyValueStore{},
		&schema.ProcessedEvent{},
		&schema.SPDepositorBalance{},
		&schema.SPPoolBalance{},
		&schema.SPDailyBalance{},
		&schema.InterestReward{},
		&schema.LiquidationReward{},
		&schema.DailyPrice{},
		&schema.LPBalance{},
		&schema.TokenBalance{},
		&schema.EulerBalance{},
		&schema.PendleLPBalance{},
		&schema.PendleBoosterPool{},
		&schema.VaultOwner{},
		&schema.TroveOperationRecord{},
		&schema.TroveUpdateRecord{},
		&schema.RedemptionRecord{},
		&schema.VeasfLock{},
		&schema.VeasfLockExtension{},
		&schema.VeasfLockFreeze{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// WithinTransaction runs fn against a transactional copy of the store
func (s *pgStore) WithinTransaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// parseAmount parses a stored numeric(78,0) string; empty means zero
func parseAmount(s string) (*big.Int, error) {
	if s == "" {
		return big.NewInt(0), nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid stored amount %q", s)
	}
	return v, nil
}

// zeroIfEmpty normalizes unset amount fields so fresh records insert cleanly
func zeroIfEmpty(fields ...*string) {
	for _, f := range fields {
		if *f == "" {
			*f = "0"
		}
	}
}

func normalizeCollateralAmounts(c *schema.CollateralAmounts) {
	zeroIfEmpty(&c.YsyBOLD, &c.ScrvUSD, &c.SUSDS, &c.SfrxUSD, &c.TBTC, &c.WBTC)
}

// MarkProcessed inserts the event into the processed-event journal.
// Returns false when the (tx_hash, log_index) key is already present.
func (s *pgStore) MarkProcessed(ctx context.Context, txHash string, logIndex uint, kind string, blockNumber uint64) (bool, error) {
	rec := schema.ProcessedEvent{
		TxHash:      strings.ToLower(txHash),
		LogIndex:    logIndex,
		Kind:        kind,
		BlockNumber: blockNumber,
	}

	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tx_hash"}, {Name: "log_index"}},
		DoNothing: true,
	}).Create(&rec)
	if res.Error != nil {
		return false, fmt.Errorf("failed to journal event: %w", res.Error)
	}

	return res.RowsAffected > 0, nil
}

// GetBalance returns the current balance for a position key, zero when no
// record exists
func (s *pgStore) GetBalance(ctx context.Context, key domain.PositionKey) (*big.Int, error) {
	owner := strings.ToLower(key.Owner)
	instance := strings.ToLower(key.Instance)

	var stored string
	var err error

	switch key.Class {
	case domain.ClassSPDepositor:
		var rec schema.SPDepositorBalance
		err = s.db.WithContext(ctx).Where("depositor = ?", owner).First(&rec).Error
		stored = rec.Amount(domain.Collateral(key.Dimension))
	case domain.ClassSPPool:
		var rec schema.SPPoolBalance
		err = s.db.WithContext(ctx).Where("id = ?", domain.ZeroAddress).First(&rec).Error
		stored = rec.Amount(domain.Collateral(key.Dimension))
	case domain.ClassLP:
		var rec schema.LPBalance
		err = s.db.WithContext(ctx).Where("pool = ? AND depositor = ?", instance, owner).First(&rec).Error
		stored = rec.Amount(domain.LPDimension(key.Dimension))
	case domain.ClassToken:
		var rec schema.TokenBalance
		err = s.db.WithContext(ctx).Where("token = ? AND depositor = ?", instance, owner).First(&rec).Error
		stored = rec.Balance
	case domain.ClassEuler:
		var rec schema.EulerBalance
		err = s.db.WithContext(ctx).Where("depositor = ?", owner).First(&rec).Error
		stored = rec.Amount(domain.EulerDimension(key.Dimension))
	case domain.ClassPendleLP:
		var rec schema.PendleLPBalance
		err = s.db.WithContext(ctx).Where("market = ? AND depositor = ?", instance, owner).First(&rec).Error
		stored = rec.Balance
	default:
		return nil, fmt.Errorf("unknown position class %q", key.Class)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return big.NewInt(0), nil
		}
		return nil, fmt.Errorf("failed to get balance for %s: %w", key, err)
	}

	return parseAmount(stored)
}

// PutBalance writes the balance for a position key, creating the record when
// needed. Processing is strictly serial, so the read-modify-write against
// the current record is race-free inside the event transaction.
func (s *pgStore) PutBalance(ctx context.Context, key domain.PositionKey, amount *big.Int, at time.Time) error {
	owner := strings.ToLower(key.Owner)
	instance := strings.ToLower(key.Instance)
	value := amount.String()

	var err error
	switch key.Class {
	case domain.ClassSPDepositor:
		var rec schema.SPDepositorBalance
		if e := s.db.WithContext(ctx).Where("depositor = ?", owner).First(&rec).Error; e != nil && !errors.Is(e, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to load balance for %s: %w", key, e)
		}
		rec.Depositor = owner
		rec.LastUpdated = at
		rec.SetAmount(domain.Collateral(key.Dimension), value)
		normalizeCollateralAmounts(&rec.CollateralAmounts)
		err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "depositor"}},
			UpdateAll: true,
		}).Create(&rec).Error
	case domain.ClassSPPool:
		var rec schema.SPPoolBalance
		if e := s.db.WithContext(ctx).Where("id = ?", domain.ZeroAddress).First(&rec).Error; e != nil && !errors.Is(e, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to load balance for %s: %w", key, e)
		}
		rec.ID = domain.ZeroAddress
		rec.LastUpdated = at
		rec.SetAmount(domain.Collateral(key.Dimension), value)
		normalizeCollateralAmounts(&rec.CollateralAmounts)
		err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&rec).Error
	case domain.ClassLP:
		var rec schema.LPBalance
		if e := s.db.WithContext(ctx).Where("pool = ? AND depositor = ?", instance, owner).First(&rec).Error; e != nil && !errors.Is(e, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to load balance for %s: %w", key, e)
		}
		rec.Pool = instance
		rec.Depositor = owner
		rec.SetAmount(domain.LPDimension(key.Dimension), value)
		zeroIfEmpty(&rec.Balance, &rec.YvaultShares, &rec.BeefyShares)
		err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pool"}, {Name: "depositor"}},
			UpdateAll: true,
		}).Create(&rec).Error
	case domain.ClassToken:
		rec := schema.TokenBalance{
			Token:     instance,
			Depositor: owner,
			Balance:   value,
		}
		err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}, {Name: "depositor"}},
			UpdateAll: true,
		}).Create(&rec).Error
	case domain.ClassEuler:
		var rec schema.EulerBalance
		if e := s.db.WithContext(ctx).Where("depositor = ?", owner).First(&rec).Error; e != nil && !errors.Is(e, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to load balance for %s: %w", key, e)
		}
		rec.Depositor = owner
		rec.SetAmount(domain.EulerDimension(key.Dimension), value)
		zeroIfEmpty(&rec.UsdcShares, &rec.UsdafShares, &rec.UsdtShares)
		err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "depositor"}},
			UpdateAll: true,
		}).Create(&rec).Error
	case domain.ClassPendleLP:
		rec := schema.PendleLPBalance{
			Market:    instance,
			Depositor: owner,
			Balance:   value,
		}
		err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "market"}, {Name: "depositor"}},
			UpdateAll: true,
		}).Create(&rec).Error
	default:
		return fmt.Errorf("unknown position class %q", key.Class)
	}

	if err != nil {
		return fmt.Errorf("failed to put balance for %s: %w", key, err)
	}
	return nil
}

// RegisterVaultOwner records a vault proxy -> user mapping (write-once)
func (s *pgStore) RegisterVaultOwner(ctx context.Context, vault, user, txHash string) error {
	rec := schema.VaultOwner{
		Vault:  strings.ToLower(vault),
		User:   strings.ToLower(user),
		TxHash: strings.ToLower(txHash),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "vault"}},
		DoNothing: true,
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to register vault owner: %w", err)
	}
	return nil
}

// VaultOwner resolves a vault proxy to its registered user
func (s *pgStore) VaultOwner(ctx context.Context, vault string) (string, bool, error) {
	var rec schema.VaultOwner
	err := s.db.WithContext(ctx).Where("vault = ?", strings.ToLower(vault)).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get vault owner: %w", err)
	}
	return rec.User, true, nil
}

// setPendleSatellite upserts a market record with a write-once column: the
// first registered value survives later conflicts
func (s *pgStore) setPendleSatellite(ctx context.Context, rec *schema.PendleBoosterPool, column string) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "market"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			column: gorm.Expr(fmt.Sprintf("COALESCE(pendle_booster_pools.%s, excluded.%s)", column, column)),
		}),
	}).Create(rec).Error
	if err != nil {
		return fmt.Errorf("failed to set pendle %s: %w", column, err)
	}
	return nil
}

// SetPendlePenpieReceipt records a market's Penpie receipt token (write-once)
func (s *pgStore) SetPendlePenpieReceipt(ctx context.Context, market, receiptToken string) error {
	receipt := strings.ToLower(receiptToken)
	return s.setPendleSatellite(ctx, &schema.PendleBoosterPool{
		Market:             strings.ToLower(market),
		PenpieReceiptToken: &receipt,
	}, "penpie_receipt_token")
}

// SetPendleSdStakingToken records a market's StakeDAO staking token (write-once)
func (s *pgStore) SetPendleSdStakingToken(ctx context.Context, market, stakingToken string) error {
	token := strings.ToLower(stakingToken)
	return s.setPendleSatellite(ctx, &schema.PendleBoosterPool{
		Market:         strings.ToLower(market),
		SdStakingToken: &token,
	}, "sd_staking_token")
}

// SetPendleSdGauge records the gauge of a known staking token (write-once).
// The update is a no-op when no market registered the staking token.
func (s *pgStore) SetPendleSdGauge(ctx context.Context, stakingToken, gauge string) error {
	err := s.db.WithContext(ctx).Model(&schema.PendleBoosterPool{}).
		Where("sd_staking_token = ?", strings.ToLower(stakingToken)).
		Where("sd_gauge IS NULL").
		Update("sd_gauge", strings.ToLower(gauge)).Error
	if err != nil {
		return fmt.Errorf("failed to set pendle sd_gauge: %w", err)
	}
	return nil
}

// SetPendleEqbPoolID records a market's Equilibria pool id (write-once)
func (s *pgStore) SetPendleEqbPoolID(ctx context.Context, market string, poolID uint64) error {
	return s.setPendleSatellite(ctx, &schema.PendleBoosterPool{
		Market:    strings.ToLower(market),
		EqbPoolID: &poolID,
	}, "eqb_pool_id")
}

func (s *pgStore) findPendlePool(ctx context.Context, query string, arg interface{}) (*schema.PendleBoosterPool, bool, error) {
	var rec schema.PendleBoosterPool
	err := s.db.WithContext(ctx).Where(query, arg).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get pendle pool: %w", err)
	}
	return &rec, true, nil
}

// PendlePoolByReceipt resolves a Penpie receipt token to its market
func (s *pgStore) PendlePoolByReceipt(ctx context.Context, receiptToken string) (*schema.PendleBoosterPool, bool, error) {
	return s.findPendlePool(ctx, "penpie_receipt_token = ?", strings.ToLower(receiptToken))
}

// PendlePoolByGauge resolves a StakeDAO gauge to its market
func (s *pgStore) PendlePoolByGauge(ctx context.Context, gauge string) (*schema.PendleBoosterPool, bool, error) {
	return s.findPendlePool(ctx, "sd_gauge = ?", strings.ToLower(gauge))
}

// PendlePoolByEqbID resolves an Equilibria pool id to its market
func (s *pgStore) PendlePoolByEqbID(ctx context.Context, poolID uint64) (*schema.PendleBoosterPool, bool, error) {
	return s.findPendlePool(ctx, "eqb_pool_id = ?", poolID)
}

// SatelliteAddresses returns every registered Pendle satellite contract that
// emits monitored logs (receipt tokens and gauges)
func (s *pgStore) SatelliteAddresses(ctx context.Context) ([]string, error) {
	var pools []schema.PendleBoosterPool
	if err := s.db.WithContext(ctx).Find(&pools).Error; err != nil {
		return nil, fmt.Errorf("failed to list pendle pools: %w", err)
	}

	var addrs []string
	for _, p := range pools {
		if p.PenpieReceiptToken != nil {
			addrs = append(addrs, *p.PenpieReceiptToken)
		}
		if p.SdGauge != nil {
			addrs = append(addrs, *p.SdGauge)
		}
	}
	return addrs, nil
}

// addDailyReward accumulates an amount into a (day, collateral) bucket
func addDailyReward(col domain.Collateral, amount *big.Int, load func() (*schema.CollateralAmounts, error), save func(*schema.CollateralAmounts) error) error {
	amounts, err := load()
	if err != nil {
		return err
	}

	current, err := parseAmount(amounts.Amount(col))
	if err != nil {
		return err
	}
	amounts.SetAmount(col, new(big.Int).Add(current, amount).String())
	normalizeCollateralAmounts(amounts)

	return save(amounts)
}

// AddInterestReward accumulates minted interest into a day bucket
func (s *pgStore) AddInterestReward(ctx context.Context, day int64, col domain.Collateral, amount *big.Int) error {
	var rec schema.InterestReward
	err := addDailyReward(col, amount,
		func() (*schema.CollateralAmounts, error) {
			if e := s.db.WithContext(ctx).Where("day = ?", day).First(&rec).Error; e != nil && !errors.Is(e, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to load interest rewards: %w", e)
			}
			rec.Day = day
			return &rec.CollateralAmounts, nil
		},
		func(*schema.CollateralAmounts) error {
			return s.db.WithContext(ctx).Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "day"}},
				UpdateAll: true,
			}).Create(&rec).Error
		},
	)
	if err != nil {
		return fmt.Errorf("failed to add interest reward: %w", err)
	}
	return nil
}

// AddLiquidationReward accumulates seized collateral into a day bucket
func (s *pgStore) AddLiquidationReward(ctx context.Context, day int64, col domain.Collateral, amount *big.Int) error {
	var rec schema.LiquidationReward
	err := addDailyReward(col, amount,
		func() (*schema.CollateralAmounts, error) {
			if e := s.db.WithContext(ctx).Where("day = ?", day).First(&rec).Error; e != nil && !errors.Is(e, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to load liquidation rewards: %w", e)
			}
			rec.Day = day
			return &rec.CollateralAmounts, nil
		},
		func(*schema.CollateralAmounts) error {
			return s.db.WithContext(ctx).Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "day"}},
				UpdateAll: true,
			}).Create(&rec).Error
		},
	)
	if err != nil {
		return fmt.Errorf("failed to add liquidation reward: %w", err)
	}
	return nil
}

// CopySPDailyBalance copies the current stability pool totals into a day
// bucket (last write of the day wins)
func (s *pgStore) CopySPDailyBalance(ctx context.Context, day int64) error {
	var totals schema.SPPoolBalance
	if err := s.db.WithContext(ctx).Where("id = ?", domain.ZeroAddress).First(&totals).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load sp totals: %w", err)
	}

	daily := schema.SPDailyBalance{
		Day:               day,
		CollateralAmounts: totals.CollateralAmounts,
	}
	normalizeCollateralAmounts(&daily.CollateralAmounts)

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "day"}},
		UpdateAll: true,
	}).Create(&daily).Error
	if err != nil {
		return fmt.Errorf("failed to copy sp daily balance: %w", err)
	}
	return nil
}

// UpsertDailyPrice writes the price bucket for a day
func (s *pgStore) UpsertDailyPrice(ctx context.Context, price *schema.DailyPrice) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "day"}},
		UpdateAll: true,
	}).Create(price).Error
	if err != nil {
		return fmt.Errorf("failed to upsert daily price: %w", err)
	}
	return nil
}

// CreateTroveOperation persists a trove operation record
func (s *pgStore) CreateTroveOperation(ctx context.Context, rec *schema.TroveOperationRecord) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tx_hash"}, {Name: "log_index"}},
		DoNothing: true,
	}).Create(rec).Error
	if err != nil {
		return fmt.Errorf("failed to create trove operation: %w", err)
	}
	return nil
}

// CreateTroveUpdate persists a trove update record
func (s *pgStore) CreateTroveUpdate(ctx context.Context, rec *schema.TroveUpdateRecord) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tx_hash"}, {Name: "log_index"}},
		DoNothing: true,
	}).Create(rec).Error
	if err != nil {
		return fmt.Errorf("failed to create trove update: %w", err)
	}
	return nil
}

// CreateRedemption persists a redemption record
func (s *pgStore) CreateRedemption(ctx context.Context, rec *schema.RedemptionRecord) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tx_hash"}, {Name: "log_index"}},
		DoNothing: true,
	}).Create(rec).Error
	if err != nil {
		return fmt.Errorf("failed to create redemption: %w", err)
	}
	return nil
}

// CreateLocks inserts veASF lock rows
func (s *pgStore) CreateLocks(ctx context.Context, locks []schema.VeasfLock) error {
	if len(locks) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&locks).Error; err != nil {
		return fmt.Errorf("failed to create veasf locks: %w", err)
	}
	return nil
}

// CreateLockExtensions inserts veASF lock extension rows
func (s *pgStore) CreateLockExtensions(ctx context.Context, exts []schema.VeasfLockExtension) error {
	if len(exts) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&exts).Error; err != nil {
		return fmt.Errorf("failed to create veasf lock extensions: %w", err)
	}
	return nil
}

// CreateLockFreeze inserts a veASF lock freeze row
func (s *pgStore) CreateLockFreeze(ctx context.Context, freeze *schema.VeasfLockFreeze) error {
	if err := s.db.WithContext(ctx).Create(freeze).Error; err != nil {
		return fmt.Errorf("failed to create veasf lock freeze: %w", err)
	}
	return nil
}

// GetBlockCursor retrieves the last processed block number
func (s *pgStore) GetBlockCursor(ctx context.Context, chain string) (uint64, error) {
	return (&cursorStore{db: s.db}).GetBlockCursor(ctx, chain)
}

// SetBlockCursor stores the last processed block number
func (s *pgStore) SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error {
	return (&cursorStore{db: s.db}).SetBlockCursor(ctx, chain, blockNumber)
}
