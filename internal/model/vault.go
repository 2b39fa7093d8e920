package model

import "time"

// VaultID uniquely identifies a vault.
type VaultID int64

// Vault holds the item ids confiscated from a banished player.
// Non-empty at creation. A vault can be reclaimed exactly once; after
// that it is drained and its record remains for audit.
type Vault struct {
	ID        VaultID
	ItemIDs   []ItemID
	Drained   bool
	CreatedAt time.Time
}
