// Package spell dispatches tome spells. The closed spell table has two
// entries: "Ego coniecto" (divination, aimed at the guardian or at a
// player) and "Aperire" (decrypts a ciphertext). Each successful cast
// advances the caster's rank one step.
package spell

import (
	"context"
	"errors"
	"log/slog"

	"github.com/arcanum-game/arcanum/internal/model"
	"github.com/arcanum-game/arcanum/internal/services/cipher"
	"github.com/arcanum-game/arcanum/internal/services/guardian"
	"github.com/arcanum-game/arcanum/internal/services/registry"
)

// Spell names, as written in the tome.
const (
	SpellDivine = "Ego coniecto"
	SpellOpen   = "Aperire"
)

// ErrUnknownSpell is returned for names outside the closed spell table.
var ErrUnknownSpell = errors.New("unknown spell name")

// Result carries the effect of a cast.
type Result struct {
	// Secret is set when divining the guardian.
	Secret string
	// LastItemID is set when divining a player; nil if the target has
	// acquired nothing yet.
	LastItemID *model.ItemID
	// Word is set by Aperire.
	Word string
}

// Service is the spell dispatcher
type Service struct {
	registry *registry.Service
	guardian *guardian.Service
	logger   *slog.Logger
}

// New creates a new spell service
func New(registryService *registry.Service, guardianService *guardian.Service, logger *slog.Logger) *Service {
	return &Service{
		registry: registryService,
		guardian: guardianService,
		logger:   logger,
	}
}

// Divine casts "Ego coniecto". Against the guardian it yields the
// caster's riddle secret; against a player it reveals that player's
// last-acquired item id.
func (s *Service) Divine(ctx context.Context, casterID model.PlayerID, target model.SpellTarget) (*Result, error) {
	result := &Result{}

	if target.IsGuardian() {
		secret, err := s.guardian.IssueSecret(ctx, casterID)
		if err != nil {
			return nil, err
		}
		result.Secret = secret
	} else {
		targetID, _ := target.Player()
		player, err := s.registry.GetPlayer(ctx, targetID)
		if err != nil {
			return nil, err
		}
		result.LastItemID = player.LastItemID
	}

	s.rewardCaster(ctx, casterID, SpellDivine)
	return result, nil
}

// Open casts "Aperire", decrypting the given ciphertext.
func (s *Service) Open(ctx context.Context, casterID model.PlayerID, cipherText string) (*Result, error) {
	word, err := cipher.Decode(cipherText)
	if err != nil {
		return nil, err
	}

	s.rewardCaster(ctx, casterID, SpellOpen)
	return &Result{Word: word}, nil
}

// rewardCaster advances the caster one rank step. Already being a
// Priest is not an error for a cast, just no further reward.
func (s *Service) rewardCaster(ctx context.Context, casterID model.PlayerID, name string) {
	if _, err := s.registry.AdvanceRank(ctx, casterID); err != nil && !errors.Is(err, model.ErrAlreadyMaxRank) {
		s.logger.Warn("could not reward spell cast",
			slog.Int64("caster_id", int64(casterID)),
			slog.String("spell", name),
			slog.String("error", err.Error()),
		)
	}
}
