package schema

import (
	"time"

	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
)

// CollateralAmounts holds one numeric(78,0) column per collateral branch.
// Amounts are stored as decimal strings to support full 256-bit values.
type CollateralAmounts struct {
	YsyBOLD string `gorm:"column:ysybold;not null;type:numeric(78,0);default:0"`
	ScrvUSD string `gorm:"column:scrvusd;not null;type:numeric(78,0);default:0"`
	SUSDS   string `gorm:"column:susds;not null;type:numeric(78,0);default:0"`
	SfrxUSD string `gorm:"column:sfrxusd;not null;type:numeric(78,0);default:0"`
	TBTC    string `gorm:"column:tbtc;not null;type:numeric(78,0);default:0"`
	WBTC    string `gorm:"column:wbtc;not null;type:numeric(78,0);default:0"`
}

// Amount returns the stored amount for a collateral column. The switch is
// total over domain.AllCollaterals; unknown collaterals return "0".
func (c *CollateralAmounts) Amount(col domain.Collateral) string {
	switch col {
	case domain.CollateralYsyBOLD:
		return c.YsyBOLD
	case domain.CollateralScrvUSD:
		return c.ScrvUSD
	case domain.CollateralSUSDS:
		return c.SUSDS
	case domain.CollateralSfrxUSD:
		return c.SfrxUSD
	case domain.CollateralTBTC:
		return c.TBTC
	case domain.CollateralWBTC:
		return c.WBTC
	}
	return "0"
}

// SetAmount sets the stored amount for a collateral column
func (c *CollateralAmounts) SetAmount(col domain.Collateral, value string) {
	switch col {
	case domain.CollateralYsyBOLD:
		c.YsyBOLD = value
	case domain.CollateralScrvUSD:
		c.ScrvUSD = value
	case domain.CollateralSUSDS:
		c.SUSDS = value
	case domain.CollateralSfrxUSD:
		c.SfrxUSD = value
	case domain.CollateralTBTC:
		c.TBTC = value
	case domain.CollateralWBTC:
		c.WBTC = value
	}
}

// ColumnName returns the database column holding a collateral amount
func ColumnName(col domain.Collateral) string {
	switch col {
	case domain.CollateralYsyBOLD:
		return "ysybold"
	case domain.CollateralScrvUSD:
		return "scrvusd"
	case domain.CollateralSUSDS:
		return "susds"
	case domain.CollateralSfrxUSD:
		return "sfrxusd"
	case domain.CollateralTBTC:
		return "tbtc"
	case domain.CollateralWBTC:
		return "wbtc"
	}
	return ""
}

// SPDepositorBalance tracks the current USDaf contribution of one depositor
// per stability pool. Withdrawals clamp at zero because they include
// compounded yield the ledger never credited.
type SPDepositorBalance struct {
	Depositor   string    `gorm:"column:depositor;primaryKey;type:text"`
	LastUpdated time.Time `gorm:"column:last_updated;not null;type:timestamptz"`
	CollateralAmounts
}

// TableName specifies the table name for the SPDepositorBalance model
func (SPDepositorBalance) TableName() string {
	return "sp_depositor_balances"
}

// SPPoolBalance tracks the current USDaf totals per stability pool.
// The table holds a single record keyed by the zero address.
type SPPoolBalance struct {
	ID          string    `gorm:"column:id;primaryKey;type:text"`
	LastUpdated time.Time `gorm:"column:last_updated;not null;type:timestamptz"`
	CollateralAmounts
}

// TableName specifies the table name for the SPPoolBalance model
func (SPPoolBalance) TableName() string {
	return "sp_pool_balances"
}

// SPDailyBalance is the end-of-day copy of the stability pool totals.
// Day is UTC midnight in unix seconds; the last write of the day wins.
type SPDailyBalance struct {
	Day int64 `gorm:"column:day;primaryKey"`
	CollateralAmounts
}

// TableName specifies the table name for the SPDailyBalance model
func (SPDailyBalance) TableName() string {
	return "sp_daily_balances"
}
