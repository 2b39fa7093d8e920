package model

import "time"

// PlayerID uniquely identifies a player (mage) across the system.
// IDs are allocated by the storage layer on creation.
type PlayerID int64

// Player represents a mage account. Rank, power, jail status and the
// inventory change only through engine operations.
type Player struct {
	ID           PlayerID
	Name         string // unique display/login name
	PasswordHash string // bcrypt hash, opaque to the engine
	Power        int64  // non-negative, increases only via acquisition
	Rank         Rank
	Jailed       bool
	Items        []ItemID // ordered, no duplicates
	LastItemID   *ItemID  // latest acquired item, nil until first acquisition
	RiddleSeed   int      // 1-5, selects the guardian phrase
	CreatedAt    time.Time
}

// HasItem reports whether the item id is in the player's inventory.
func (p *Player) HasItem(id ItemID) bool {
	for _, held := range p.Items {
		if held == id {
			return true
		}
	}
	return false
}

// RemoveItem removes the first occurrence of the item id from the
// inventory. Returns false if the player does not hold it.
func (p *Player) RemoveItem(id ItemID) bool {
	for i, held := range p.Items {
		if held == id {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			return true
		}
	}
	return false
}
