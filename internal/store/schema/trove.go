package schema

import "time"

// TroveOperationRecord is one TroveOperation event enriched with the
// leverage attribution split. Signed components (debt/coll change from
// operation, owner/leveraged split) may be negative.
type TroveOperationRecord struct {
	TxHash                     string    `gorm:"column:tx_hash;primaryKey;type:text"`
	LogIndex                   uint      `gorm:"column:log_index;primaryKey"`
	Timestamp                  time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	TroveManager               string    `gorm:"column:trove_manager;not null;type:text;index"`
	TroveID                    string    `gorm:"column:trove_id;not null;type:numeric(78,0);index"`
	Op                         uint8     `gorm:"column:op;not null"`
	AnnualInterestRate         string    `gorm:"column:annual_interest_rate;not null;type:numeric(78,0)"`
	DebtIncreaseFromRedist     string    `gorm:"column:debt_increase_from_redist;not null;type:numeric(78,0)"`
	DebtIncreaseFromUpfrontFee string    `gorm:"column:debt_increase_from_upfront_fee;not null;type:numeric(78,0)"`
	DebtChangeFromOperation    string    `gorm:"column:debt_change_from_operation;not null;type:numeric(78,0)"`
	CollIncreaseFromRedist     string    `gorm:"column:coll_increase_from_redist;not null;type:numeric(78,0)"`
	CollChangeFromOperation    string    `gorm:"column:coll_change_from_operation;not null;type:numeric(78,0)"`
	OwnerCollChange            string    `gorm:"column:owner_coll_change;not null;type:numeric(78,0)"`
	LeveragedCollChange        string    `gorm:"column:leveraged_coll_change;not null;type:numeric(78,0)"`
}

// TableName specifies the table name for the TroveOperationRecord model
func (TroveOperationRecord) TableName() string {
	return "trove_operations"
}

// TroveUpdateRecord is one TroveUpdated event plus the branch-wide totals
// and last good price read at event time
type TroveUpdateRecord struct {
	TxHash             string    `gorm:"column:tx_hash;primaryKey;type:text"`
	LogIndex           uint      `gorm:"column:log_index;primaryKey"`
	Timestamp          time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	TroveManager       string    `gorm:"column:trove_manager;not null;type:text;index"`
	TroveID            string    `gorm:"column:trove_id;not null;type:numeric(78,0);index"`
	Debt               string    `gorm:"column:debt;not null;type:numeric(78,0)"`
	Coll               string    `gorm:"column:coll;not null;type:numeric(78,0)"`
	Stake              string    `gorm:"column:stake;not null;type:numeric(78,0)"`
	AnnualInterestRate string    `gorm:"column:annual_interest_rate;not null;type:numeric(78,0)"`
	EntireColl         string    `gorm:"column:entire_coll;not null;type:numeric(78,0)"`
	EntireDebt         string    `gorm:"column:entire_debt;not null;type:numeric(78,0)"`
	Price              string    `gorm:"column:price;not null;type:numeric(78,0)"`
}

// TableName specifies the table name for the TroveUpdateRecord model
func (TroveUpdateRecord) TableName() string {
	return "trove_updates"
}

// RedemptionRecord is one Redemption event plus the branch-wide totals read
// at event time
type RedemptionRecord struct {
	TxHash              string    `gorm:"column:tx_hash;primaryKey;type:text"`
	LogIndex            uint      `gorm:"column:log_index;primaryKey"`
	Timestamp           time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	TroveManager        string    `gorm:"column:trove_manager;not null;type:text;index"`
	AttemptedBoldAmount string    `gorm:"column:attempted_bold_amount;not null;type:numeric(78,0)"`
	DebtDecrease        string    `gorm:"column:debt_decrease;not null;type:numeric(78,0)"`
	CollDecrease        string    `gorm:"column:coll_decrease;not null;type:numeric(78,0)"`
	Price               string    `gorm:"column:price;not null;type:numeric(78,0)"`
	RedemptionPrice     string    `gorm:"column:redemption_price;not null;type:numeric(78,0)"`
	EntireColl          string    `gorm:"column:entire_coll;not null;type:numeric(78,0)"`
	EntireDebt          string    `gorm:"column:entire_debt;not null;type:numeric(78,0)"`
}

// TableName specifies the table name for the RedemptionRecord model
func (RedemptionRecord) TableName() string {
	return "redemptions"
}
