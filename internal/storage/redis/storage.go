package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arcanum-game/arcanum/internal/model"
	"github.com/arcanum-game/arcanum/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Records are stored as JSON values; ids come from INCR sequence keys,
// matching the serial-column semantics the data model expects.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	id, err := s.client.Incr(ctx, seqKey("player")).Result()
	if err != nil {
		return err
	}
	player.ID = model.PlayerID(id)

	// SETNX on the name index enforces name uniqueness
	claimed, err := s.client.SetNX(ctx, nameIndexKey(player.Name), id, 0).Result()
	if err != nil {
		return err
	}
	if !claimed {
		return model.ErrNameTaken
	}

	data, err := json.Marshal(player)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, playerKey(player.ID), data, 0).Err()
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) GetPlayerByName(ctx context.Context, name string) (*model.Player, error) {
	idStr, err := s.client.Get(ctx, nameIndexKey(name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var id model.PlayerID
	if err := json.Unmarshal([]byte(idStr), &id); err != nil {
		return nil, err
	}
	return s.GetPlayer(ctx, id)
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	exists, err := s.client.Exists(ctx, playerKey(player.ID)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return model.ErrPlayerNotFound
	}

	data, err := json.Marshal(player)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, playerKey(player.ID), data, 0).Err()
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		return err
	}

	// Delete record and name index together
	pipe := s.client.Pipeline()
	pipe.Del(ctx, playerKey(id))
	pipe.Del(ctx, nameIndexKey(player.Name))
	_, err = pipe.Exec(ctx)
	return err
}

// Item operations

func (s *Storage) CreateItem(ctx context.Context, item *model.Item) error {
	id, err := s.client.Incr(ctx, seqKey("item")).Result()
	if err != nil {
		return err
	}
	item.ID = model.ItemID(id)

	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, itemKey(item.ID), data, 0).Err()
}

func (s *Storage) GetItem(ctx context.Context, id model.ItemID) (*model.Item, error) {
	data, err := s.client.Get(ctx, itemKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrItemNotFound
		}
		return nil, err
	}

	var item model.Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Vault operations

func (s *Storage) CreateVault(ctx context.Context, vault *model.Vault) error {
	id, err := s.client.Incr(ctx, seqKey("vault")).Result()
	if err != nil {
		return err
	}
	vault.ID = model.VaultID(id)

	data, err := json.Marshal(vault)
	if err != nil {
		return err
	}

	// Save record and add to the vault index in one pipeline
	pipe := s.client.Pipeline()
	pipe.Set(ctx, vaultKey(vault.ID), data, 0)
	pipe.ZAdd(ctx, vaultIndexKey(), redis.Z{Score: float64(id), Member: id})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetVault(ctx context.Context, id model.VaultID) (*model.Vault, error) {
	data, err := s.client.Get(ctx, vaultKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrVaultNotFound
		}
		return nil, err
	}

	var vault model.Vault
	if err := json.Unmarshal(data, &vault); err != nil {
		return nil, err
	}
	return &vault, nil
}

func (s *Storage) SaveVault(ctx context.Context, vault *model.Vault) error {
	exists, err := s.client.Exists(ctx, vaultKey(vault.ID)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return model.ErrVaultNotFound
	}

	data, err := json.Marshal(vault)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, vaultKey(vault.ID), data, 0).Err()
}

func (s *Storage) ListVaultIDs(ctx context.Context, limit int) ([]model.VaultID, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	members, err := s.client.ZRange(ctx, vaultIndexKey(), 0, stop).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]model.VaultID, 0, len(members))
	for _, m := range members {
		var id model.VaultID
		if err := json.Unmarshal([]byte(m), &id); err != nil {
			continue // Skip invalid index entries
		}
		ids = append(ids, id)
	}
	return ids, nil
}
