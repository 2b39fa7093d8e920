package redis

import (
	"fmt"

	"github.com/arcanum-game/arcanum/internal/model"
)

// Key prefix for all game data
const keyPrefix = "arcanum"

// playerKey returns the Redis key for a Player record
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%d", keyPrefix, id)
}

// nameIndexKey returns the Redis key for the name -> player_id index
func nameIndexKey(name string) string {
	return fmt.Sprintf("%s:idx:name:%s", keyPrefix, name)
}

// itemKey returns the Redis key for an Item record
func itemKey(id model.ItemID) string {
	return fmt.Sprintf("%s:item:%d", keyPrefix, id)
}

// vaultKey returns the Redis key for a Vault record
func vaultKey(id model.VaultID) string {
	return fmt.Sprintf("%s:vault:%d", keyPrefix, id)
}

// vaultIndexKey returns the Redis key for the sorted set of vault ids
func vaultIndexKey() string {
	return fmt.Sprintf("%s:idx:vaults", keyPrefix)
}

// seqKey returns the Redis key for an id sequence counter
func seqKey(kind string) string {
	return fmt.Sprintf("%s:seq:%s", keyPrefix, kind)
}
