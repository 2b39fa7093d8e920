package handler

import (
	"net/http"
	"strconv"

	"github.com/arcanum-game/arcanum/internal/api/apierr"
	"github.com/arcanum-game/arcanum/internal/api/response"
	"github.com/arcanum-game/arcanum/internal/services/vault"
)

// VaultHandler handles vault listing
type VaultHandler struct {
	vaults *vault.Service
}

// NewVaultHandler creates a new vault handler
func NewVaultHandler(vaultService *vault.Service) *VaultHandler {
	return &VaultHandler{
		vaults: vaultService,
	}
}

// List handles GET /api/v1/vaults?limit=n
func (h *VaultHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			apierr.WriteError(w, apierr.NewInvalidRequestError("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	ids, err := h.vaults.ListVaults(r.Context(), limit)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK,
		response.OK("Vault ids", response.VaultsPayload{VaultIDs: response.VaultIDs(ids)}))
}
