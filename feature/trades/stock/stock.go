package stock

import (
	"encoding/json"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// fileEntry is the shape of one element of the plugin-written stock file.
type fileEntry struct {
	ShopUUID       string `json:"shop_uuid"`
	ItemType       string `json:"item_type"`
	StockRemaining *int   `json:"stock_remaining"`
}

// Cache maps (shop UUID, item type) to the remaining stock count scanned by
// the game-side plugin. The file is rewritten externally on its own cadence;
// the cache reloads lazily after an explicit Invalidate and swaps the whole
// map atomically, so concurrent lookups observe either the fully-old or the
// fully-new data, never a mixture.
type Cache struct {
	path   string
	logger *zap.Logger

	entries atomic.Pointer[map[string]int]
	stale   atomic.Bool
	group   singleflight.Group
}

// NewCache creates a stock cache reading from the given file.
func NewCache(path string, logger *zap.Logger) *Cache {
	return &Cache{path: path, logger: logger}
}

// Lookup returns the remaining stock for an item in a shop. The second
// return value is false when no stock data exists for that combination,
// which is distinct from a count of zero.
func (c *Cache) Lookup(shopUUID, itemType string) (int, bool) {
	if shopUUID == "" || itemType == "" {
		return 0, false
	}
	snapshot := c.snapshot()
	count, ok := (*snapshot)[shopUUID+"-"+itemType]
	return count, ok
}

// Invalidate forces the next lookup to reload from disk. This is the only
// invalidation path; there is no TTL.
func (c *Cache) Invalidate() {
	c.stale.Store(true)
}

// snapshot returns the current map, reloading it first if it was
// invalidated or never loaded. singleflight collapses concurrent reloads.
func (c *Cache) snapshot() *map[string]int {
	if c.stale.Load() || c.entries.Load() == nil {
		c.group.Do("reload", func() (any, error) {
			entries := c.loadFile()
			c.entries.Store(&entries)
			c.stale.Store(false)
			return nil, nil
		})
	}
	return c.entries.Load()
}

// loadFile reads the stock file into a fresh map. A missing file or parse
// failure yields an empty map and a log entry, never an error.
func (c *Cache) loadFile() map[string]int {
	entries := make(map[string]int)

	data, err := os.ReadFile(c.path)
	if err != nil {
		c.logger.Warn("Stock file unavailable", zap.String("path", c.path), zap.Error(err))
		return entries
	}

	var raw []fileEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		c.logger.Error("Failed to parse stock file", zap.String("path", c.path), zap.Error(err))
		return entries
	}

	for _, entry := range raw {
		if entry.ShopUUID == "" || entry.ItemType == "" || entry.StockRemaining == nil {
			continue
		}
		entries[entry.ShopUUID+"-"+entry.ItemType] = *entry.StockRemaining
	}

	c.logger.Info("Loaded stock entries", zap.String("path", c.path), zap.Int("entries", len(entries)))
	return entries
}
