package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/arcanum-game/arcanum/internal/api/apierr"
	"github.com/arcanum-game/arcanum/internal/api/middleware"
	"github.com/arcanum-game/arcanum/internal/api/request"
	"github.com/arcanum-game/arcanum/internal/api/response"
	"github.com/arcanum-game/arcanum/internal/model"
	"github.com/arcanum-game/arcanum/internal/services/spell"
)

// SpellHandler handles tome spell casts
type SpellHandler struct {
	spells *spell.Service
}

// NewSpellHandler creates a new spell handler
func NewSpellHandler(spellService *spell.Service) *SpellHandler {
	return &SpellHandler{
		spells: spellService,
	}
}

// Cast handles POST /api/v1/spells
func (h *SpellHandler) Cast(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	var req request.CastSpellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	var (
		result *spell.Result
		err    error
	)

	switch req.Spell {
	case spell.SpellDivine:
		target, terr := parseTarget(req.Target)
		if terr != nil {
			apierr.WriteError(w, terr)
			return
		}
		result, err = h.spells.Divine(r.Context(), session.PlayerID, target)

	case spell.SpellOpen:
		if req.Ciphertext == "" {
			apierr.WriteError(w, apierr.NewInvalidRequestError("ciphertext is required for Aperire"))
			return
		}
		result, err = h.spells.Open(r.Context(), session.PlayerID, req.Ciphertext)

	default:
		err = spell.ErrUnknownSpell
	}

	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK,
		response.OK("Spell cast", response.SpellPayloadFromResult(result)))
}

// parseTarget decides the spell target variant once, at the request
// boundary: the literal "guardian" or a decimal player id.
func parseTarget(raw string) (model.SpellTarget, error) {
	if strings.EqualFold(raw, "guardian") {
		return model.GuardianTarget(), nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return model.SpellTarget{}, apierr.NewInvalidRequestError("target must be 'guardian' or a player id")
	}
	return model.PlayerTarget(model.PlayerID(id)), nil
}
