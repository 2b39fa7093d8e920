// Package vault manages custody records for confiscated items.
package vault

import (
	"context"
	"errors"
	"log/slog"

	"github.com/arcanum-game/arcanum/internal/dependencies/clock"
	"github.com/arcanum-game/arcanum/internal/model"
	"github.com/arcanum-game/arcanum/internal/storage"
)

// ErrEmptyVault is returned when creating a vault with no items.
// Vaults are non-empty by construction.
var ErrEmptyVault = errors.New("vault must contain at least one item")

// Service is the vault store
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new vault service
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		logger:  logger,
	}
}

// CreateVault persists a new vault holding the given item ids.
func (s *Service) CreateVault(ctx context.Context, itemIDs []model.ItemID) (*model.Vault, error) {
	if len(itemIDs) == 0 {
		return nil, ErrEmptyVault
	}

	vault := &model.Vault{
		ItemIDs:   append([]model.ItemID(nil), itemIDs...),
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.CreateVault(ctx, vault); err != nil {
		return nil, err
	}

	s.logger.Info("vault created",
		slog.Int64("vault_id", int64(vault.ID)),
		slog.Int("item_count", len(vault.ItemIDs)),
	)

	return vault, nil
}

// GetVault retrieves a vault snapshot by id
func (s *Service) GetVault(ctx context.Context, id model.VaultID) (*model.Vault, error) {
	return s.storage.GetVault(ctx, id)
}

// Drain empties the vault and marks it reclaimed. The record remains so
// the id stays allocated, but a drained vault can never be reclaimed
// again.
func (s *Service) Drain(ctx context.Context, vault *model.Vault) error {
	vault.ItemIDs = nil
	vault.Drained = true
	return s.storage.SaveVault(ctx, vault)
}

// ListVaults returns up to limit vault ids in creation order. A
// non-positive limit returns all of them.
func (s *Service) ListVaults(ctx context.Context, limit int) ([]model.VaultID, error) {
	return s.storage.ListVaultIDs(ctx, limit)
}
