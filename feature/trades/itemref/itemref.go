package itemref

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Entry is the display identity of one catalog item.
type Entry struct {
	Name    string `json:"name"`
	IconURL string `json:"icon_url"`
}

// catalogItem is the shape of one element of the upstream catalog response.
type catalogItem struct {
	NamespacedID string `json:"namespacedId"`
	Name         string `json:"name"`
	Image        string `json:"image"`
}

// Cache is the process-wide item catalog cache. It is populated once at
// startup and read by many concurrent lookups; the entry map is replaced
// wholesale on population, never mutated in place, so every reader sees a
// single consistent snapshot.
type Cache struct {
	url     string
	client  *http.Client
	logger  *zap.Logger
	entries atomic.Pointer[map[string]Entry]
}

// NewCache creates a catalog cache fetching from the given URL. The timeout
// bounds the whole fetch so a slow upstream cannot stall startup.
func NewCache(url string, timeout time.Duration, logger *zap.Logger) *Cache {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Cache{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Populate fetches the catalog and swaps it in. A failed or empty fetch
// leaves the cache empty and lookups degrade to fallback formatting; the
// error is logged, never returned, since startup must not depend on the
// upstream being reachable.
func (c *Cache) Populate(ctx context.Context) {
	entries, err := c.fetch(ctx)
	if err != nil {
		c.logger.Error("Failed to fetch item catalog", zap.String("url", c.url), zap.Error(err))
		return
	}
	c.entries.Store(&entries)
	c.logger.Info("Loaded item catalog", zap.Int("entries", len(entries)))
}

// fetch downloads the catalog and indexes every item under both its fully
// namespaced id ("minecraft:acacia_boat") and its short id ("acacia_boat"),
// both pointing at the same entry.
func (c *Cache) fetch(ctx context.Context) (map[string]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var items []catalogItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	entries := make(map[string]Entry, len(items)*2)
	for _, item := range items {
		shortID := strings.ToLower(item.NamespacedID)
		if shortID == "" {
			continue
		}
		entry := Entry{Name: item.Name, IconURL: item.Image}
		entries["minecraft:"+shortID] = entry
		entries[shortID] = entry
	}
	return entries, nil
}

// Lookup resolves an item type to its catalog entry. The lowercased full
// form is tried first, then the short form after the last namespace
// separator. A miss is a defined fallback branch, not an error.
func (c *Cache) Lookup(itemType string) (Entry, bool) {
	snapshot := c.entries.Load()
	if snapshot == nil {
		return Entry{}, false
	}

	fullID := strings.ToLower(itemType)
	if entry, ok := (*snapshot)[fullID]; ok {
		return entry, true
	}

	shortID := fullID
	if idx := strings.LastIndex(fullID, ":"); idx >= 0 {
		shortID = fullID[idx+1:]
	}
	entry, ok := (*snapshot)[shortID]
	return entry, ok
}

// Len returns the number of indexed keys, for logging and tests.
func (c *Cache) Len() int {
	snapshot := c.entries.Load()
	if snapshot == nil {
		return 0
	}
	return len(*snapshot)
}
