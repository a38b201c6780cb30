package cache

import (
	"log/slog"
	"sync"

	"github.com/Kush-Singh-26/agora/builder/utils"
)

// Cache decides which posts need rendering. Decisions are made against
// the hashes loaded at start; the map written back holds the hash of
// every post seen in this run.
type Cache struct {
	mu       sync.Mutex
	store    HashStore
	previous map[string]string
	current  map[string]string
	bypassed bool
	logger   *slog.Logger
}

// New loads the previous hashes from store. When bypass is set (the
// deploy directory is new) the stored hashes are ignored. A store that
// cannot be read is logged and treated as empty.
func New(store HashStore, bypass bool, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Cache{
		store:    store,
		previous: map[string]string{},
		current:  map[string]string{},
		bypassed: bypass,
		logger:   logger,
	}
	if bypass {
		return c
	}

	prev, err := store.Load()
	if err != nil {
		logger.Warn("Ignoring unreadable cache", "error", err)
		return c
	}
	c.previous = prev
	return c
}

// ShouldRender reports whether the post at path must be rendered. An
// unchanged post keeps its stored hash for the next save.
func (c *Cache) ShouldRender(path string, raw []byte) bool {
	hash := utils.HashContent(raw)

	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.previous[path]; ok && prev == hash {
		c.current[path] = prev
		return false
	}
	return true
}

// RecordRendered stores the hash of a post that was written.
func (c *Cache) RecordRendered(path string, raw []byte) {
	hash := utils.HashContent(raw)

	c.mu.Lock()
	c.current[path] = hash
	c.mu.Unlock()
}

// Save rewrites the store with this run's hashes.
func (c *Cache) Save() error {
	c.mu.Lock()
	snapshot := make(map[string]string, len(c.current))
	for k, v := range c.current {
		snapshot[k] = v
	}
	c.mu.Unlock()

	return c.store.Save(snapshot)
}

func (c *Cache) Bypassed() bool { return c.bypassed }

// Len is the number of hashes that Save would write.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.current)
}
