// Package registry manages player records: creation, lookup and the
// rank/jail/power mutations every other engine component builds on.
package registry

import (
	"context"
	"errors"
	"log/slog"

	"github.com/arcanum-game/arcanum/internal/dependencies/clock"
	"github.com/arcanum-game/arcanum/internal/dependencies/random"
	"github.com/arcanum-game/arcanum/internal/model"
	"github.com/arcanum-game/arcanum/internal/storage"
)

// ErrInvalidRank is returned when a rank outside the closed table is
// requested.
var ErrInvalidRank = errors.New("rank outside the closed table")

// Bounds of the riddle seed assigned at creation.
const (
	riddleSeedMin = 1
	riddleSeedMax = 5
)

// Service is the player registry
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new registry service
func New(storage storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		random:  rnd,
		logger:  logger,
	}
}

// CreatePlayer registers a new player at the lowest rank with an empty
// inventory and a uniformly random riddle seed. The credential hash is
// opaque here; hashing belongs to the auth layer.
func (s *Service) CreatePlayer(ctx context.Context, name, passwordHash string) (*model.Player, error) {
	player := &model.Player{
		Name:         name,
		PasswordHash: passwordHash,
		Rank:         model.RankNovice,
		RiddleSeed:   riddleSeedMin + s.random.Intn(riddleSeedMax-riddleSeedMin+1),
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.CreatePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player created",
		slog.Int64("player_id", int64(player.ID)),
		slog.String("name", player.Name),
		slog.Int("riddle_seed", player.RiddleSeed),
	)

	return player, nil
}

// GetPlayer retrieves a player snapshot by id
func (s *Service) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// GetPlayerByName retrieves a player snapshot by name
func (s *Service) GetPlayerByName(ctx context.Context, name string) (*model.Player, error) {
	return s.storage.GetPlayerByName(ctx, name)
}

// SetJailed sets the player's jail flag
func (s *Service) SetJailed(ctx context.Context, id model.PlayerID, jailed bool) error {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return err
	}

	player.Jailed = jailed
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return err
	}

	s.logger.Info("jail status changed",
		slog.Int64("player_id", int64(id)),
		slog.Bool("jailed", jailed),
	)
	return nil
}

// AdjustPower adds delta to the player's power. Power never drops below
// zero. Callers mutating inventories serialize per player; this is a
// single read-modify-write and relies on the same discipline.
func (s *Service) AdjustPower(ctx context.Context, id model.PlayerID, delta int64) error {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return err
	}

	player.Power += delta
	if player.Power < 0 {
		player.Power = 0
	}
	return s.storage.SavePlayer(ctx, player)
}

// AdvanceRank improves the player's rank by one step (toward 0).
// Returns ErrAlreadyMaxRank when the player is already a Priest.
func (s *Service) AdvanceRank(ctx context.Context, id model.PlayerID) (model.Rank, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return 0, err
	}

	if player.Rank == model.RankPriest {
		return player.Rank, model.ErrAlreadyMaxRank
	}

	player.Rank--
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return 0, err
	}

	s.logger.Info("rank advanced",
		slog.Int64("player_id", int64(id)),
		slog.String("rank", player.Rank.String()),
	)
	return player.Rank, nil
}

// SetRank sets the player's rank directly. Used by the guardian on a
// solved riddle and by explicit admin action; ranks never worsen
// automatically.
func (s *Service) SetRank(ctx context.Context, id model.PlayerID, rank model.Rank) error {
	if !rank.Valid() {
		return ErrInvalidRank
	}

	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return err
	}

	player.Rank = rank
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return err
	}

	s.logger.Info("rank set",
		slog.Int64("player_id", int64(id)),
		slog.String("rank", rank.String()),
	)
	return nil
}
