package registry

import (
	"os"
	"strings"

	"market-manager/feature/shops/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Entry describes one specially recognized item. Type plus LoreFragment
// identify the item in save-file data; Name and IconURL are what the web
// frontend should display for it.
type Entry struct {
	ID           string `yaml:"id"`
	Type         string `yaml:"type"`
	LoreFragment string `yaml:"lore_fragment"`
	Name         string `yaml:"name"`
	IconURL      string `yaml:"icon"`
}

// Registry is the curated item table. It is the highest-priority identity
// source: a match here overrides the reference catalog and any name the
// save file carries.
type Registry struct {
	entries []Entry
}

// New creates a registry over the given entries.
func New(entries []Entry) *Registry {
	return &Registry{entries: entries}
}

// Default returns the built-in curated table.
func Default() *Registry {
	return New([]Entry{
		{
			ID:           "HAVEN_CREST",
			Type:         "minecraft:echo_shard",
			LoreFragment: `[{color:"gold",italic:0b,text:"Official Minted Currency of Peaceful Haven"}]`,
			Name:         "Haven Crest",
			IconURL:      "/images/custom/Haven-Crest.gif",
		},
	})
}

// FromFile loads the registry from an external YAML table, falling back to
// the built-in table when the path is empty or the file cannot be used.
func FromFile(path string, logger *zap.Logger) *Registry {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Registry file unavailable, using built-in table",
			zap.String("path", path), zap.Error(err))
		return Default()
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		logger.Warn("Failed to parse registry file, using built-in table",
			zap.String("path", path), zap.Error(err))
		return Default()
	}

	logger.Info("Loaded custom item registry", zap.String("path", path), zap.Int("entries", len(entries)))
	return New(entries)
}

// Match returns the first entry matching the given item, or nil. The type
// match is case-insensitive; when the entry carries a lore fragment it must
// appear as a substring of one of the item's lore lines. An item with no
// lore can never satisfy a fragment requirement. No match is not an error.
func (r *Registry) Match(item *models.Item) *Entry {
	if item == nil || item.Type == "" {
		return nil
	}

	itemType := strings.ToLower(item.Type)
	for i := range r.entries {
		entry := &r.entries[i]
		if strings.ToLower(entry.Type) != itemType {
			continue
		}
		if entry.LoreFragment == "" {
			return entry
		}
		for _, line := range item.Lore {
			if strings.Contains(line, entry.LoreFragment) {
				return entry
			}
		}
	}
	return nil
}
