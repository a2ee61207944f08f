package schema

import (
	"time"

	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
)

// TokenBalance tracks plain ERC20 holder balances for tracked tokens
// (afCVX, sUSDaf)
type TokenBalance struct {
	Token     string    `gorm:"column:token;primaryKey;type:text"`
	Depositor string    `gorm:"column:depositor;primaryKey;type:text"`
	Balance   string    `gorm:"column:balance;not null;type:numeric(78,0);default:0"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TokenBalance model
func (TokenBalance) TableName() string {
	return "token_balances"
}

// EulerBalance tracks one depositor's Euler frontier vault shares
type EulerBalance struct {
	Depositor   string    `gorm:"column:depositor;primaryKey;type:text"`
	UsdcShares  string    `gorm:"column:usdc_shares;not null;type:numeric(78,0);default:0"`
	UsdafShares string    `gorm:"column:usdaf_shares;not null;type:numeric(78,0);default:0"`
	UsdtShares  string    `gorm:"column:usdt_shares;not null;type:numeric(78,0);default:0"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the EulerBalance model
func (EulerBalance) TableName() string {
	return "euler_balances"
}

// Amount returns the stored amount for a share dimension
func (b *EulerBalance) Amount(dim domain.EulerDimension) string {
	switch dim {
	case domain.DimensionUSDCShares:
		return b.UsdcShares
	case domain.DimensionUSDafShares:
		return b.UsdafShares
	case domain.DimensionUSDTShares:
		return b.UsdtShares
	}
	return "0"
}

// SetAmount sets the stored amount for a share dimension
func (b *EulerBalance) SetAmount(dim domain.EulerDimension, value string) {
	switch dim {
	case domain.DimensionUSDCShares:
		b.UsdcShares = value
	case domain.DimensionUSDafShares:
		b.UsdafShares = value
	case domain.DimensionUSDTShares:
		b.UsdtShares = value
	}
}
