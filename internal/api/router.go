package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arcanum-game/arcanum/internal/api/handler"
	apimiddleware "github.com/arcanum-game/arcanum/internal/api/middleware"
	"github.com/arcanum-game/arcanum/internal/middleware"
	"github.com/arcanum-game/arcanum/internal/services/auth"
	"github.com/arcanum-game/arcanum/internal/services/catalog"
	"github.com/arcanum-game/arcanum/internal/services/custody"
	"github.com/arcanum-game/arcanum/internal/services/guardian"
	"github.com/arcanum-game/arcanum/internal/services/registry"
	"github.com/arcanum-game/arcanum/internal/services/spell"
	"github.com/arcanum-game/arcanum/internal/services/theft"
	"github.com/arcanum-game/arcanum/internal/services/vault"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	RegistryService *registry.Service
	CatalogService  *catalog.Service
	VaultService    *vault.Service
	CustodyService  *custody.Service
	GuardianService *guardian.Service
	TheftService    *theft.Service
	SpellService    *spell.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.AuthService, cfg.RegistryService, cfg.CustodyService)
	itemHandler := handler.NewItemHandler(cfg.CatalogService, cfg.CustodyService)
	vaultHandler := handler.NewVaultHandler(cfg.VaultService)
	guardianHandler := handler.NewGuardianHandler(cfg.GuardianService)
	theftHandler := handler.NewTheftHandler(cfg.TheftService)
	spellHandler := handler.NewSpellHandler(cfg.SpellService)

	// Create middleware
	authMiddleware := apimiddleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Account routes (no auth required)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	// Everything else requires a session
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)

	protected.HandleFunc("/players/{name}", playerHandler.Lookup).Methods(http.MethodGet)
	protected.HandleFunc("/players/{id:[0-9]+}/banish", playerHandler.Banish).Methods(http.MethodPost)

	protected.HandleFunc("/items", itemHandler.Acquire).Methods(http.MethodPost)
	protected.HandleFunc("/items/{id:[0-9]+}", itemHandler.Lookup).Methods(http.MethodGet)

	protected.HandleFunc("/vaults", vaultHandler.List).Methods(http.MethodGet)

	protected.HandleFunc("/guardian/secret", guardianHandler.Secret).Methods(http.MethodGet)
	protected.HandleFunc("/guardian/resolve", guardianHandler.Resolve).Methods(http.MethodPost)

	protected.HandleFunc("/theft", theftHandler.Attempt).Methods(http.MethodPost)
	protected.HandleFunc("/spells", spellHandler.Cast).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
