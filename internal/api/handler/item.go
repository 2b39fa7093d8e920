package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/arcanum-game/arcanum/internal/api/apierr"
	"github.com/arcanum-game/arcanum/internal/api/middleware"
	"github.com/arcanum-game/arcanum/internal/api/request"
	"github.com/arcanum-game/arcanum/internal/api/response"
	"github.com/arcanum-game/arcanum/internal/model"
	"github.com/arcanum-game/arcanum/internal/services/catalog"
	"github.com/arcanum-game/arcanum/internal/services/custody"
)

// ItemHandler handles item acquisition and lookup
type ItemHandler struct {
	catalog *catalog.Service
	custody *custody.Service
}

// NewItemHandler creates a new item handler
func NewItemHandler(catalogService *catalog.Service, custodyService *custody.Service) *ItemHandler {
	return &ItemHandler{
		catalog: catalogService,
		custody: custodyService,
	}
}

// Acquire handles POST /api/v1/items. The caller acquires the item
// described by the body, subject to the rank/risk gate.
func (h *ItemHandler) Acquire(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	var req request.AcquireItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("name is required"))
		return
	}

	item, err := h.custody.Acquire(r.Context(), session.PlayerID, catalog.ItemSpec{
		Name:        req.Name,
		Category:    model.Category(req.Category),
		Risk:        model.Risk(req.Risk),
		AccessLevel: req.AccessLevel,
		Power:       req.Power,
		Lore:        req.Lore,
		Description: req.Description,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated,
		response.OK("Item acquired; inventory and power updated",
			response.AcquirePayload{ItemID: int64(item.ID)}))
}

// Lookup handles GET /api/v1/items/{id}
func (h *ItemHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("item id must be an integer"))
		return
	}

	item, err := h.catalog.GetItem(r.Context(), model.ItemID(id))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK,
		response.OK("Item found", response.ItemFromModel(item)))
}
