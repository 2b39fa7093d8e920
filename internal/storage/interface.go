package storage

import (
	"context"

	"github.com/arcanum-game/arcanum/internal/model"
)

// Storage defines the interface for data persistence.
//
// Create* calls allocate the record's id (sequence semantics) and set it
// on the passed struct before returning. Item records are never deleted;
// custody of an item id moves between players and vaults instead.
type Storage interface {
	// Player operations
	CreatePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayerByName(ctx context.Context, name string) (*model.Player, error)
	SavePlayer(ctx context.Context, player *model.Player) error
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Item operations
	CreateItem(ctx context.Context, item *model.Item) error
	GetItem(ctx context.Context, id model.ItemID) (*model.Item, error)

	// Vault operations
	CreateVault(ctx context.Context, vault *model.Vault) error
	GetVault(ctx context.Context, id model.VaultID) (*model.Vault, error)
	SaveVault(ctx context.Context, vault *model.Vault) error
	ListVaultIDs(ctx context.Context, limit int) ([]model.VaultID, error)
}
