package schema

import (
	"time"

	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
)

// LPBalance tracks one depositor's stake in one Curve pool. Raw LP tokens,
// gauge deposits and booster deposits reduce into Balance; Yearn and Beefy
// wrappers keep their own share counts.
type LPBalance struct {
	Pool         string    `gorm:"column:pool;primaryKey;type:text"`
	Depositor    string    `gorm:"column:depositor;primaryKey;type:text"`
	Balance      string    `gorm:"column:balance;not null;type:numeric(78,0);default:0"`
	YvaultShares string    `gorm:"column:yvault_shares;not null;type:numeric(78,0);default:0"`
	BeefyShares  string    `gorm:"column:beefy_shares;not null;type:numeric(78,0);default:0"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LPBalance model
func (LPBalance) TableName() string {
	return "lp_balances"
}

// Amount returns the stored amount for a share dimension
func (b *LPBalance) Amount(dim domain.LPDimension) string {
	switch dim {
	case domain.DimensionLPBalance:
		return b.Balance
	case domain.DimensionYearnShares:
		return b.YvaultShares
	case domain.DimensionBeefyShares:
		return b.BeefyShares
	}
	return "0"
}

// SetAmount sets the stored amount for a share dimension
func (b *LPBalance) SetAmount(dim domain.LPDimension, value string) {
	switch dim {
	case domain.DimensionLPBalance:
		b.Balance = value
	case domain.DimensionYearnShares:
		b.YvaultShares = value
	case domain.DimensionBeefyShares:
		b.BeefyShares = value
	}
}
