package schema

import "time"

// VeasfLock is one lock created in the veASF locker. Plural LocksCreated
// events fan out into one row per lock.
type VeasfLock struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	Account   string    `gorm:"column:account;not null;type:text;index"`
	Amount    string    `gorm:"column:amount;not null;type:numeric(78,0)"`
	Weeks     uint64    `gorm:"column:weeks;not null"`
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	TxHash    string    `gorm:"column:tx_hash;not null;type:text"`
}

// TableName specifies the table name for the VeasfLock model
func (VeasfLock) TableName() string {
	return "veasf_locks"
}

// VeasfLockExtension is one lock extension in the veASF locker
type VeasfLockExtension struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	Account   string    `gorm:"column:account;not null;type:text;index"`
	Amount    string    `gorm:"column:amount;not null;type:numeric(78,0)"`
	Weeks     uint64    `gorm:"column:weeks;not null"`
	NewWeeks  uint64    `gorm:"column:new_weeks;not null"`
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	TxHash    string    `gorm:"column:tx_hash;not null;type:text"`
}

// TableName specifies the table name for the VeasfLockExtension model
func (VeasfLockExtension) TableName() string {
	return "veasf_lock_extensions"
}

// Freeze actions recorded in the veASF lock journal
const (
	LockActionFrozen   = "frozen"
	LockActionUnfrozen = "unfrozen"
)

// VeasfLockFreeze records an account freezing or unfreezing its locks
type VeasfLockFreeze struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	Account   string    `gorm:"column:account;not null;type:text;index"`
	Amount    string    `gorm:"column:amount;not null;type:numeric(78,0)"`
	Action    string    `gorm:"column:action;not null;type:text"`
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	TxHash    string    `gorm:"column:tx_hash;not null;type:text"`
}

// TableName specifies the table name for the VeasfLockFreeze model
func (VeasfLockFreeze) TableName() string {
	return "veasf_lock_freezes"
}
