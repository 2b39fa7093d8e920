// Package theft implements probabilistic steal resolution. A failed
// attempt costs the thief their entire inventory: they are banished and
// their items vaulted.
package theft

import (
	"context"
	"log/slog"

	"github.com/arcanum-game/arcanum/internal/dependencies/random"
	"github.com/arcanum-game/arcanum/internal/lock"
	"github.com/arcanum-game/arcanum/internal/model"
	"github.com/arcanum-game/arcanum/internal/services/custody"
	"github.com/arcanum-game/arcanum/internal/storage"
)

// Percent likelihood that a theft attempt succeeds.
const stealLikelihood = 60

// Service is the theft arbiter
type Service struct {
	storage     storage.Storage
	custody     *custody.Service
	playerLocks *lock.Keyed
	random      random.Random
	logger      *slog.Logger
}

// New creates a new theft service
func New(storage storage.Storage, custodyService *custody.Service, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage:     storage,
		custody:     custodyService,
		playerLocks: custodyService.PlayerLocks(),
		random:      rnd,
		logger:      logger,
	}
}

// AttemptSteal draws a Bernoulli trial at 60% success. On failure the
// caller is banished (their inventory vaulted, their record removed)
// and ErrTheftFailed is returned. On success exactly one item id moves
// from the target's inventory to the caller's, with both players locked
// for the duration.
func (s *Service) AttemptSteal(ctx context.Context, itemID model.ItemID, callerID, targetID model.PlayerID) (*model.VaultID, error) {
	if !s.random.Chance(stealLikelihood) {
		vaultID, err := s.custody.Banish(ctx, callerID)
		if err != nil {
			return nil, err
		}
		s.logger.Info("theft failed, thief banished",
			slog.Int64("caller_id", int64(callerID)),
			slog.Int64("target_id", int64(targetID)),
			slog.Int64("item_id", int64(itemID)),
		)
		return vaultID, model.ErrTheftFailed
	}

	release := s.playerLocks.AcquireAll(int64(callerID), int64(targetID))
	defer release()

	target, err := s.storage.GetPlayer(ctx, targetID)
	if err != nil {
		return nil, err
	}
	caller, err := s.storage.GetPlayer(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if !target.RemoveItem(itemID) {
		return nil, model.ErrItemNotHeld
	}

	caller.Items = append(caller.Items, itemID)

	if err := s.storage.SavePlayer(ctx, target); err != nil {
		return nil, err
	}
	if err := s.storage.SavePlayer(ctx, caller); err != nil {
		return nil, err
	}

	s.logger.Info("item stolen",
		slog.Int64("caller_id", int64(callerID)),
		slog.Int64("target_id", int64(targetID)),
		slog.Int64("item_id", int64(itemID)),
	)

	return nil, nil
}
