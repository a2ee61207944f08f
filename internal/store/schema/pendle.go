package schema

import "time"

// PendleLPBalance tracks one depositor's Pendle market LP, including boosted
// positions redirected from satellite contracts
type PendleLPBalance struct {
	Market    string    `gorm:"column:market;primaryKey;type:text"`
	Depositor string    `gorm:"column:depositor;primaryKey;type:text"`
	Balance   string    `gorm:"column:balance;not null;type:numeric(78,0);default:0"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PendleLPBalance model
func (PendleLPBalance) TableName() string {
	return "pendle_lp_balances"
}

// PendleBoosterPool is the per-market satellite record filled incrementally
// by registration events. Each nullable field is write-once: the first
// registration wins, later ones are ignored.
type PendleBoosterPool struct {
	Market             string  `gorm:"column:market;primaryKey;type:text"`
	PenpieReceiptToken *string `gorm:"column:penpie_receipt_token;type:text;uniqueIndex"`
	SdStakingToken     *string `gorm:"column:sd_staking_token;type:text;uniqueIndex"`
	SdGauge            *string `gorm:"column:sd_gauge;type:text;uniqueIndex"`
	EqbPoolID          *uint64 `gorm:"column:eqb_pool_id;uniqueIndex"`
}

// TableName specifies the table name for the PendleBoosterPool model
func (PendleBoosterPool) TableName() string {
	return "pendle_booster_pools"
}
