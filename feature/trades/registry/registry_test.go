package registry

import (
	"os"
	"path/filepath"
	"testing"

	"market-manager/feature/shops/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMatch(t *testing.T) {
	reg := Default()

	t.Run("Type and lore fragment", func(t *testing.T) {
		item := &models.Item{
			Type: "minecraft:echo_shard",
			Lore: []string{`[{color:"gold",italic:0b,text:"Official Minted Currency of Peaceful Haven"}]`},
		}
		entry := reg.Match(item)
		require.NotNil(t, entry)
		assert.Equal(t, "Haven Crest", entry.Name)
		assert.Equal(t, "/images/custom/Haven-Crest.gif", entry.IconURL)
	})

	t.Run("Fragment required when entry carries one", func(t *testing.T) {
		item := &models.Item{Type: "minecraft:echo_shard"}
		assert.Nil(t, reg.Match(item))

		item.Lore = []string{"some unrelated lore"}
		assert.Nil(t, reg.Match(item))
	})

	t.Run("Type match is case-insensitive", func(t *testing.T) {
		item := &models.Item{
			Type: "MINECRAFT:ECHO_SHARD",
			Lore: []string{`prefix [{color:"gold",italic:0b,text:"Official Minted Currency of Peaceful Haven"}] suffix`},
		}
		assert.NotNil(t, reg.Match(item))
	})

	t.Run("Fragment-less entry matches on type alone", func(t *testing.T) {
		custom := New([]Entry{{ID: "TOKEN", Type: "minecraft:paper", Name: "Event Token"}})
		entry := custom.Match(&models.Item{Type: "minecraft:paper"})
		require.NotNil(t, entry)
		assert.Equal(t, "Event Token", entry.Name)
	})

	t.Run("First matching entry wins", func(t *testing.T) {
		custom := New([]Entry{
			{ID: "A", Type: "minecraft:paper", Name: "First"},
			{ID: "B", Type: "minecraft:paper", Name: "Second"},
		})
		entry := custom.Match(&models.Item{Type: "minecraft:paper"})
		require.NotNil(t, entry)
		assert.Equal(t, "First", entry.Name)
	})

	t.Run("Nil and typeless items", func(t *testing.T) {
		assert.Nil(t, reg.Match(nil))
		assert.Nil(t, reg.Match(&models.Item{}))
	})
}

func TestFromFile(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Empty path uses built-in table", func(t *testing.T) {
		reg := FromFile("", logger)
		item := &models.Item{
			Type: "minecraft:echo_shard",
			Lore: []string{`[{color:"gold",italic:0b,text:"Official Minted Currency of Peaceful Haven"}]`},
		}
		assert.NotNil(t, reg.Match(item))
	})

	t.Run("External table replaces built-in", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "registry.yml")
		content := `- id: VOUCHER
  type: minecraft:paper
  lore_fragment: "Shop Voucher"
  name: Shop Voucher
  icon: /images/custom/voucher.png
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		reg := FromFile(path, logger)
		entry := reg.Match(&models.Item{
			Type: "minecraft:paper",
			Lore: []string{"A Shop Voucher for one free item"},
		})
		require.NotNil(t, entry)
		assert.Equal(t, "Shop Voucher", entry.Name)

		// The built-in entry is gone once an external table loads.
		assert.Nil(t, reg.Match(&models.Item{
			Type: "minecraft:echo_shard",
			Lore: []string{`[{color:"gold",italic:0b,text:"Official Minted Currency of Peaceful Haven"}]`},
		}))
	})

	t.Run("Unreadable file falls back", func(t *testing.T) {
		reg := FromFile(filepath.Join(t.TempDir(), "missing.yml"), logger)
		require.NotNil(t, reg)
		assert.NotNil(t, reg.Match(&models.Item{
			Type: "minecraft:echo_shard",
			Lore: []string{`[{color:"gold",italic:0b,text:"Official Minted Currency of Peaceful Haven"}]`},
		}))
	})

	t.Run("Unparsable file falls back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "registry.yml")
		require.NoError(t, os.WriteFile(path, []byte("{not: [a, list"), 0o644))
		reg := FromFile(path, logger)
		require.NotNil(t, reg)
	})
}
