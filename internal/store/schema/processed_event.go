package schema

import "time"

// ProcessedEvent journals every event whose effects have been committed.
// The (tx_hash, log_index) primary key makes redelivered messages no-ops:
// the insert happens in the same transaction as the ledger mutations, so a
// duplicate key means the event is already fully applied.
type ProcessedEvent struct {
	TxHash      string    `gorm:"column:tx_hash;primaryKey;type:text"`
	LogIndex    uint      `gorm:"column:log_index;primaryKey"`
	Kind        string    `gorm:"column:kind;not null;type:text"`
	BlockNumber uint64    `gorm:"column:block_number;not null"`
	ProcessedAt time.Time `gorm:"column:processed_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ProcessedEvent model
func (ProcessedEvent) TableName() string {
	return "processed_events"
}
