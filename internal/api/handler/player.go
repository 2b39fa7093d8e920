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
	"github.com/arcanum-game/arcanum/internal/services/auth"
	"github.com/arcanum-game/arcanum/internal/services/custody"
	"github.com/arcanum-game/arcanum/internal/services/registry"
)

// Only Priests and Supremes may look up other players.
const lookupRankLimit = model.RankSupreme

// PlayerHandler handles account and player endpoints
type PlayerHandler struct {
	authService *auth.Service
	registry    *registry.Service
	custody     *custody.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(authService *auth.Service, registryService *registry.Service, custodyService *custody.Service) *PlayerHandler {
	return &PlayerHandler{
		authService: authService,
		registry:    registryService,
		custody:     custodyService,
	}
}

// Register handles POST /api/v1/players/register
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("name is required"))
		return
	}
	if req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("password is required"))
		return
	}

	session, err := h.authService.Register(r.Context(), req.Name, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated,
		response.OK("Mage registered", response.AuthPayloadFromSession(session)))
}

// Login handles POST /api/v1/players/login
func (h *PlayerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" || req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("name and password are required"))
		return
	}

	session, err := h.authService.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
	})

	response.JSON(w, http.StatusOK,
		response.OK("Signed in", response.AuthPayloadFromSession(session)))
}

// Lookup handles GET /api/v1/players/{name}. The caller's rank gates
// the lookup: only the two highest ranks may inspect other mages.
func (h *PlayerHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	caller, err := h.registry.GetPlayer(r.Context(), session.PlayerID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	if caller.Rank > lookupRankLimit {
		apierr.WriteError(w, apierr.NewInsufficientLevelError())
		return
	}

	name := mux.Vars(r)["name"]
	player, err := h.registry.GetPlayerByName(r.Context(), name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK,
		response.OK("Search success", response.PlayerFromModel(player)))
}

// Banish handles POST /api/v1/players/{id}/banish
func (h *PlayerHandler) Banish(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("player id must be an integer"))
		return
	}

	vaultID, err := h.custody.Banish(r.Context(), model.PlayerID(id))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	payload := response.BanishPayload{}
	if vaultID != nil {
		v := int64(*vaultID)
		payload.VaultID = &v
	}

	response.JSON(w, http.StatusOK, response.OK("Player banished", payload))
}
