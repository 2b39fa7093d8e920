// Package guardian implements the riddle challenge: a secret phrase
// selected by the player's riddle seed, issued as A1Z26 ciphertext, and
// verified against a candidate answer to unlock a vault.
package guardian

import (
	"context"
	"log/slog"
	"strings"

	"github.com/arcanum-game/arcanum/internal/lock"
	"github.com/arcanum-game/arcanum/internal/model"
	"github.com/arcanum-game/arcanum/internal/services/cipher"
	"github.com/arcanum-game/arcanum/internal/services/custody"
	"github.com/arcanum-game/arcanum/internal/services/registry"
)

// phrases is the closed table of guardian phrases, keyed by riddle
// seed. Single Latin words only: the cipher is defined on pure-letter
// strings.
var phrases = map[int]string{
	1: "Sapientia",
	2: "Plenitudo",
	3: "Passio",
	4: "Veritas",
	5: "Fortitudo",
}

// Service is the guardian puzzle
type Service struct {
	registry    *registry.Service
	custody     *custody.Service
	playerLocks *lock.Keyed
	logger      *slog.Logger
}

// New creates a new guardian service
func New(registryService *registry.Service, custodyService *custody.Service, logger *slog.Logger) *Service {
	return &Service{
		registry:    registryService,
		custody:     custodyService,
		playerLocks: custodyService.PlayerLocks(),
		logger:      logger,
	}
}

// IssueSecret returns the player's guardian phrase, lower-cased and
// encrypted. The same player always receives the same secret.
func (s *Service) IssueSecret(ctx context.Context, playerID model.PlayerID) (string, error) {
	player, err := s.registry.GetPlayer(ctx, playerID)
	if err != nil {
		return "", err
	}

	phrase, ok := phrases[player.RiddleSeed]
	if !ok {
		return "", cipher.ErrInvalidInput
	}

	return cipher.Encode(strings.ToLower(phrase))
}

// Resolve verifies a candidate answer. On a match the player ascends to
// Priest and the vault is reclaimed into their inventory; on a mismatch
// nothing is mutated and ErrWrongAnswer is returned. Returns the item
// ids gained.
func (s *Service) Resolve(ctx context.Context, playerID model.PlayerID, vaultID model.VaultID, candidate string) ([]model.ItemID, error) {
	secret, err := s.IssueSecret(ctx, playerID)
	if err != nil {
		return nil, err
	}

	plain, err := cipher.Decode(secret)
	if err != nil {
		return nil, err
	}

	if strings.ToLower(strings.TrimSpace(candidate)) != plain {
		return nil, model.ErrWrongAnswer
	}

	// Rank write serializes with other mutations of this player.
	release := s.playerLocks.Acquire(int64(playerID))
	err = s.registry.SetRank(ctx, playerID, model.RankPriest)
	release()
	if err != nil {
		return nil, err
	}

	added, err := s.custody.Reclaim(ctx, vaultID, playerID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("guardian riddle solved",
		slog.Int64("player_id", int64(playerID)),
		slog.Int64("vault_id", int64(vaultID)),
	)

	return added, nil
}
