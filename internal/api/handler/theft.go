package handler

import (
	"encoding/json"
	"net/http"

	"github.com/arcanum-game/arcanum/internal/api/apierr"
	"github.com/arcanum-game/arcanum/internal/api/middleware"
	"github.com/arcanum-game/arcanum/internal/api/request"
	"github.com/arcanum-game/arcanum/internal/api/response"
	"github.com/arcanum-game/arcanum/internal/model"
	"github.com/arcanum-game/arcanum/internal/services/theft"
)

// TheftHandler handles theft attempts
type TheftHandler struct {
	theft *theft.Service
}

// NewTheftHandler creates a new theft handler
func NewTheftHandler(theftService *theft.Service) *TheftHandler {
	return &TheftHandler{
		theft: theftService,
	}
}

// Attempt handles POST /api/v1/theft
func (h *TheftHandler) Attempt(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	var req request.TheftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.ItemID <= 0 || req.TargetID <= 0 {
		apierr.WriteError(w, apierr.NewInvalidRequestError("item_id and target_id are required"))
		return
	}

	_, err := h.theft.AttemptSteal(r.Context(), model.ItemID(req.ItemID), session.PlayerID, model.PlayerID(req.TargetID))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK,
		response.OK("The item was stolen", response.TheftPayload{ItemID: req.ItemID}))
}
