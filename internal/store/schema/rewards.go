package schema

// InterestReward accumulates USDaf interest minted into the stability pools
// per UTC day and collateral branch
type InterestReward struct {
	Day int64 `gorm:"column:day;primaryKey"`
	CollateralAmounts
}

// TableName specifies the table name for the InterestReward model
func (InterestReward) TableName() string {
	return "interest_rewards"
}

// LiquidationReward accumulates collateral seized into the stability pools
// per UTC day and collateral branch
type LiquidationReward struct {
	Day int64 `gorm:"column:day;primaryKey"`
	CollateralAmounts
}

// TableName specifies the table name for the LiquidationReward model
func (LiquidationReward) TableName() string {
	return "liquidation_rewards"
}
