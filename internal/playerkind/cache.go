// Package playerkind provides a process-lifetime, mutex-guarded
// read-through cache of player_id -> PlayerKind (spec.md §5: "the
// player-kind cache is an in-memory mapping shared across passes, guarded
// by a mutex; it is read-through from the database on first miss").
package playerkind

import (
	"sync"

	"github.com/jinzhu/gorm"

	"github.com/namada-testnet/score-extractor/internal/corerr"
	"github.com/namada-testnet/score-extractor/internal/schema"
)

// Cache maps player ids to their kind, filled lazily from the database.
type Cache struct {
	db *gorm.DB
	mu sync.Mutex
	m  map[string]schema.PlayerKind
}

// NewCache returns an empty Cache bound to db.
func NewCache(db *gorm.DB) *Cache {
	return &Cache{db: db, m: make(map[string]schema.PlayerKind)}
}

// Get returns the kind of playerID, querying and caching on first miss.
// Returns false if the player does not exist.
func (c *Cache) Get(playerID string) (schema.PlayerKind, bool, error) {
	c.mu.Lock()
	if kind, ok := c.m[playerID]; ok {
		c.mu.Unlock()
		return kind, true, nil
	}
	c.mu.Unlock()

	var player schema.Player
	err := c.db.Select("id, kind").Where("id = ?", playerID).First(&player).Error
	if err == gorm.ErrRecordNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, corerr.Wrap(corerr.ClassTransientInfra, err, "lookup player kind")
	}

	c.mu.Lock()
	c.m[playerID] = player.Kind
	c.mu.Unlock()
	return player.Kind, true, nil
}
