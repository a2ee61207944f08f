package schema

import "time"

// VaultOwner maps a Convex fxn user-vault proxy to the user who registered
// it. The mapping is write-once: a vault proxy never changes hands.
type VaultOwner struct {
	Vault     string    `gorm:"column:vault;primaryKey;type:text"`
	User      string    `gorm:"column:user;not null;type:text"`
	TxHash    string    `gorm:"column:tx_hash;not null;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the VaultOwner model
func (VaultOwner) TableName() string {
	return "vault_owners"
}
