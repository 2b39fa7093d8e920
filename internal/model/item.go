package model

import "time"

// ItemID uniquely identifies an item. Item records are never deleted;
// only custody of the id moves between players and vaults.
type ItemID int64

// Item is an artifact created through acquisition. Immutable after
// creation.
type Item struct {
	ID          ItemID
	Name        string
	Category    Category
	Risk        Risk
	AccessLevel int
	Power       int64 // credited to the acquiring player
	Lore        string
	Description string
	CreatedAt   time.Time
}
