package handler

import (
	"encoding/json"
	"net/http"

	"github.com/arcanum-game/arcanum/internal/api/apierr"
	"github.com/arcanum-game/arcanum/internal/api/middleware"
	"github.com/arcanum-game/arcanum/internal/api/request"
	"github.com/arcanum-game/arcanum/internal/api/response"
	"github.com/arcanum-game/arcanum/internal/model"
	"github.com/arcanum-game/arcanum/internal/services/guardian"
)

// GuardianHandler handles the riddle challenge
type GuardianHandler struct {
	guardian *guardian.Service
}

// NewGuardianHandler creates a new guardian handler
func NewGuardianHandler(guardianService *guardian.Service) *GuardianHandler {
	return &GuardianHandler{
		guardian: guardianService,
	}
}

// Secret handles GET /api/v1/guardian/secret
func (h *GuardianHandler) Secret(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	secret, err := h.guardian.IssueSecret(r.Context(), session.PlayerID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK,
		response.OK("The guardian issues its challenge", response.SecretPayload{Secret: secret}))
}

// Resolve handles POST /api/v1/guardian/resolve
func (h *GuardianHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	var req request.ResolveGuardianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.VaultID <= 0 {
		apierr.WriteError(w, apierr.NewInvalidRequestError("vault_id is required"))
		return
	}

	added, err := h.guardian.Resolve(r.Context(), session.PlayerID, model.VaultID(req.VaultID), req.Answer)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK,
		response.OK("Riddle solved; the vault opens",
			response.ReclaimPayload{
				Rank:       model.RankPriest.String(),
				ItemsAdded: response.ItemIDs(added),
			}))
}
