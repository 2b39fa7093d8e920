package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/arcanum-game/arcanum/internal/dependencies/clock"
	"github.com/arcanum-game/arcanum/internal/dependencies/random"
	"github.com/arcanum-game/arcanum/internal/lock"
	"github.com/arcanum-game/arcanum/internal/services/auth"
	"github.com/arcanum-game/arcanum/internal/services/catalog"
	"github.com/arcanum-game/arcanum/internal/services/custody"
	"github.com/arcanum-game/arcanum/internal/services/guardian"
	"github.com/arcanum-game/arcanum/internal/services/registry"
	"github.com/arcanum-game/arcanum/internal/services/spell"
	"github.com/arcanum-game/arcanum/internal/services/theft"
	"github.com/arcanum-game/arcanum/internal/services/vault"
	"github.com/arcanum-game/arcanum/internal/storage"
	"github.com/arcanum-game/arcanum/internal/storage/memory"
	redisstorage "github.com/arcanum-game/arcanum/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	RegistryService *registry.Service
	CatalogService  *catalog.Service
	VaultService    *vault.Service
	CustodyService  *custody.Service
	GuardianService *guardian.Service
	TheftService    *theft.Service
	SpellService    *spell.Service
	AuthService     *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, logger *slog.Logger) *App {
	// One player lock set for every component that mutates inventories
	playerLocks := lock.NewKeyed()

	registryService := registry.New(store, clk, rnd, logger)
	catalogService := catalog.New(store, clk, logger)
	vaultService := vault.New(store, clk, logger)
	custodyService := custody.New(store, catalogService, vaultService, playerLocks, logger)
	guardianService := guardian.New(registryService, custodyService, logger)
	theftService := theft.New(store, custodyService, rnd, logger)
	spellService := spell.New(registryService, guardianService, logger)
	authService := auth.New(store, registryService, clk, authCfg)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		RegistryService: registryService,
		CatalogService:  catalogService,
		VaultService:    vaultService,
		CustodyService:  custodyService,
		GuardianService: guardianService,
		TheftService:    theftService,
		SpellService:    spellService,
		AuthService:     authService,
	}
}
