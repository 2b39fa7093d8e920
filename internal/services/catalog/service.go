// Package catalog manages item records. Items are created once,
// classified by category and risk tier, and never mutated or deleted.
package catalog

import (
	"context"
	"log/slog"

	"github.com/arcanum-game/arcanum/internal/dependencies/clock"
	"github.com/arcanum-game/arcanum/internal/model"
	"github.com/arcanum-game/arcanum/internal/storage"
)

// ItemSpec describes an item to be created through acquisition.
type ItemSpec struct {
	Name        string
	Category    model.Category
	Risk        model.Risk
	AccessLevel int
	Power       int64
	Lore        string
	Description string
}

// Service is the item catalog
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new catalog service
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		logger:  logger,
	}
}

// CreateItem validates the spec against the closed category and risk
// tables and persists a new item record.
func (s *Service) CreateItem(ctx context.Context, spec ItemSpec) (*model.Item, error) {
	if !spec.Category.Valid() {
		return nil, model.ErrInvalidCategory
	}
	if !spec.Risk.Valid() {
		return nil, model.ErrInvalidRisk
	}

	item := &model.Item{
		Name:        spec.Name,
		Category:    spec.Category,
		Risk:        spec.Risk,
		AccessLevel: spec.AccessLevel,
		Power:       spec.Power,
		Lore:        spec.Lore,
		Description: spec.Description,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.storage.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("item created",
		slog.Int64("item_id", int64(item.ID)),
		slog.String("name", item.Name),
		slog.String("category", item.Category.String()),
		slog.String("risk", item.Risk.String()),
	)

	return item, nil
}

// GetItem retrieves an item snapshot by id
func (s *Service) GetItem(ctx context.Context, id model.ItemID) (*model.Item, error) {
	return s.storage.GetItem(ctx, id)
}
