// Package custody implements the transfer rules that move item ids
// between a player's inventory and a vault: acquisition, banishment and
// reclamation. Every multi-step mutation runs under the per-player
// keyed lock so concurrent requests cannot lose inventory updates.
package custody

import (
	"context"
	"log/slog"

	"github.com/arcanum-game/arcanum/internal/lock"
	"github.com/arcanum-game/arcanum/internal/model"
	"github.com/arcanum-game/arcanum/internal/services/catalog"
	"github.com/arcanum-game/arcanum/internal/services/vault"
	"github.com/arcanum-game/arcanum/internal/storage"
)

// Service is the custody transfer service
type Service struct {
	storage     storage.Storage
	catalog     *catalog.Service
	vaults      *vault.Service
	playerLocks *lock.Keyed
	vaultLocks  *lock.Keyed
	logger      *slog.Logger
}

// New creates a new custody service. The player lock set must be shared
// with every other component that mutates inventories.
func New(
	storage storage.Storage,
	catalogService *catalog.Service,
	vaultService *vault.Service,
	playerLocks *lock.Keyed,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage:     storage,
		catalog:     catalogService,
		vaults:      vaultService,
		playerLocks: playerLocks,
		vaultLocks:  lock.NewKeyed(),
		logger:      logger,
	}
}

// PlayerLocks exposes the shared per-player lock set for components
// that serialize their own inventory mutations (theft, guardian).
func (s *Service) PlayerLocks() *lock.Keyed {
	return s.playerLocks
}

// Acquire runs the item acquisition rule. A jailed player cannot
// acquire at all. A player whose rank ordinal is below the item's risk
// ordinal is jailed and refused; the item is not created. Otherwise the
// item record is created, its id appended to the inventory, the
// last-acquired marker updated and the item's power credited, all in
// one player write.
func (s *Service) Acquire(ctx context.Context, playerID model.PlayerID, spec catalog.ItemSpec) (*model.Item, error) {
	release := s.playerLocks.Acquire(int64(playerID))
	defer release()

	player, err := s.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.Jailed {
		return nil, model.ErrJailed
	}

	if int(player.Rank) < int(spec.Risk) {
		player.Jailed = true
		if err := s.storage.SavePlayer(ctx, player); err != nil {
			return nil, err
		}
		s.logger.Info("acquisition refused, player jailed",
			slog.Int64("player_id", int64(playerID)),
			slog.String("rank", player.Rank.String()),
			slog.String("risk", spec.Risk.String()),
		)
		return nil, model.ErrRankTooLow
	}

	item, err := s.catalog.CreateItem(ctx, spec)
	if err != nil {
		return nil, err
	}

	player.Items = append(player.Items, item.ID)
	last := item.ID
	player.LastItemID = &last
	player.Power += item.Power

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("item acquired",
		slog.Int64("player_id", int64(playerID)),
		slog.Int64("item_id", int64(item.ID)),
		slog.Int64("power_gained", item.Power),
	)

	return item, nil
}

// Banish confiscates a player's inventory into a fresh vault and
// deletes the player record. Returns the vault id, or nil when the
// inventory was empty and no vault was needed. No item id is lost:
// every banished player's items land in exactly one vault.
func (s *Service) Banish(ctx context.Context, playerID model.PlayerID) (*model.VaultID, error) {
	release := s.playerLocks.Acquire(int64(playerID))
	defer release()

	player, err := s.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	var vaultID *model.VaultID
	if len(player.Items) > 0 {
		v, err := s.vaults.CreateVault(ctx, player.Items)
		if err != nil {
			return nil, err
		}
		vaultID = &v.ID
	}

	if err := s.storage.DeletePlayer(ctx, playerID); err != nil {
		return nil, err
	}

	attrs := []any{slog.Int64("player_id", int64(playerID))}
	if vaultID != nil {
		attrs = append(attrs, slog.Int64("vault_id", int64(*vaultID)))
	}
	s.logger.Info("player banished", attrs...)

	return vaultID, nil
}

// Reclaim transfers a vault's contents into the player's inventory.
// Reclamation is one-time-consuming: the vault is drained on first
// reclaim and a second attempt fails, preserving single custody of
// every item id. Returns the item ids that were added.
func (s *Service) Reclaim(ctx context.Context, vaultID model.VaultID, playerID model.PlayerID) ([]model.ItemID, error) {
	releaseVault := s.vaultLocks.Acquire(int64(vaultID))
	defer releaseVault()
	releasePlayer := s.playerLocks.Acquire(int64(playerID))
	defer releasePlayer()

	v, err := s.storage.GetVault(ctx, vaultID)
	if err != nil {
		return nil, err
	}
	if v.Drained {
		return nil, model.ErrVaultDrained
	}

	player, err := s.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	added := make([]model.ItemID, 0, len(v.ItemIDs))
	for _, id := range v.ItemIDs {
		if !player.HasItem(id) {
			player.Items = append(player.Items, id)
			added = append(added, id)
		}
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	if err := s.vaults.Drain(ctx, v); err != nil {
		return nil, err
	}

	s.logger.Info("vault reclaimed",
		slog.Int64("vault_id", int64(vaultID)),
		slog.Int64("player_id", int64(playerID)),
		slog.Int("items_added", len(added)),
	)

	return added, nil
}
