package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/arcanum-game/arcanum/internal/model"
	"github.com/arcanum-game/arcanum/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players   map[model.PlayerID]*model.Player
	nameIndex map[string]model.PlayerID
	items     map[model.ItemID]*model.Item
	vaults    map[model.VaultID]*model.Vault

	nextPlayerID model.PlayerID
	nextItemID   model.ItemID
	nextVaultID  model.VaultID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:   make(map[model.PlayerID]*model.Player),
		nameIndex: make(map[string]model.PlayerID),
		items:     make(map[model.ItemID]*model.Item),
		vaults:    make(map[model.VaultID]*model.Vault),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.nameIndex[player.Name]; exists {
		return model.ErrNameTaken
	}
	s.nextPlayerID++
	player.ID = s.nextPlayerID
	s.players[player.ID] = clonePlayer(player)
	s.nameIndex[player.Name] = player.ID
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return clonePlayer(player), nil
}

func (s *Storage) GetPlayerByName(ctx context.Context, name string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.nameIndex[name]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return clonePlayer(player), nil
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[player.ID]; !ok {
		return model.ErrPlayerNotFound
	}
	s.players[player.ID] = clonePlayer(player)
	return nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	player, ok := s.players[id]
	if !ok {
		return model.ErrPlayerNotFound
	}
	delete(s.nameIndex, player.Name)
	delete(s.players, id)
	return nil
}

// Item operations

func (s *Storage) CreateItem(ctx context.Context, item *model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextItemID++
	item.ID = s.nextItemID
	s.items[item.ID] = cloneItem(item)
	return nil
}

func (s *Storage) GetItem(ctx context.Context, id model.ItemID) (*model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, model.ErrItemNotFound
	}
	return cloneItem(item), nil
}

// Vault operations

func (s *Storage) CreateVault(ctx context.Context, vault *model.Vault) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextVaultID++
	vault.ID = s.nextVaultID
	s.vaults[vault.ID] = cloneVault(vault)
	return nil
}

func (s *Storage) GetVault(ctx context.Context, id model.VaultID) (*model.Vault, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vault, ok := s.vaults[id]
	if !ok {
		return nil, model.ErrVaultNotFound
	}
	return cloneVault(vault), nil
}

func (s *Storage) SaveVault(ctx context.Context, vault *model.Vault) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vaults[vault.ID]; !ok {
		return model.ErrVaultNotFound
	}
	s.vaults[vault.ID] = cloneVault(vault)
	return nil
}

func (s *Storage) ListVaultIDs(ctx context.Context, limit int) ([]model.VaultID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]model.VaultID, 0, len(s.vaults))
	for id := range s.vaults {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// Records are cloned on the way in and out so callers can't mutate
// stored state through shared slices.

func clonePlayer(p *model.Player) *model.Player {
	cp := *p
	cp.Items = append([]model.ItemID(nil), p.Items...)
	if p.LastItemID != nil {
		last := *p.LastItemID
		cp.LastItemID = &last
	}
	return &cp
}

func cloneItem(i *model.Item) *model.Item {
	ci := *i
	return &ci
}

func cloneVault(v *model.Vault) *model.Vault {
	cv := *v
	cv.ItemIDs = append([]model.ItemID(nil), v.ItemIDs...)
	return &cv
}
