package schema

import "github.com/asymmetryfinance/usdaf-indexer/internal/domain"

// DailyPrice records the observed collateral prices per UTC day. Prices are
// plain USD floats: ysyBOLD from the on-chain share rate, the rest the max
// DefiLlama price in the trailing 24h window (0 when the provider omits a
// coin).
type DailyPrice struct {
	Day     int64   `gorm:"column:day;primaryKey"`
	YsyBOLD float64 `gorm:"column:ysybold;not null;default:0"`
	ScrvUSD float64 `gorm:"column:scrvusd;not null;default:0"`
	SUSDS   float64 `gorm:"column:susds;not null;default:0"`
	SfrxUSD float64 `gorm:"column:sfrxusd;not null;default:0"`
	TBTC    float64 `gorm:"column:tbtc;not null;default:0"`
	WBTC    float64 `gorm:"column:wbtc;not null;default:0"`
}

// TableName specifies the table name for the DailyPrice model
func (DailyPrice) TableName() string {
	return "daily_prices"
}

// SetPrice sets the price for a collateral column
func (p *DailyPrice) SetPrice(col domain.Collateral, price float64) {
	switch col {
	case domain.CollateralYsyBOLD:
		p.YsyBOLD = price
	case domain.CollateralScrvUSD:
		p.ScrvUSD = price
	case domain.CollateralSUSDS:
		p.SUSDS = price
	case domain.CollateralSfrxUSD:
		p.SfrxUSD = price
	case domain.CollateralTBTC:
		p.TBTC = price
	case domain.CollateralWBTC:
		p.WBTC = price
	}
}
