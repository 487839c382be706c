package shops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseEnchantments(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Ordered map", func(t *testing.T) {
		got := ParseEnchantments(`{"minecraft:sharpness":3,"minecraft:unbreaking":2}`, logger)
		require.Len(t, got, 2)
		assert.Equal(t, "Sharpness", got[0].Name)
		assert.Equal(t, 3, got[0].Level)
		assert.Equal(t, "Unbreaking", got[1].Name)
		assert.Equal(t, 2, got[1].Level)
	})

	t.Run("Single quotes normalized", func(t *testing.T) {
		got := ParseEnchantments(`{'minecraft:mending':1}`, logger)
		require.Len(t, got, 1)
		assert.Equal(t, "minecraft:mending", got[0].ID)
		assert.Equal(t, "Mending", got[0].Name)
	})

	t.Run("Unknown id falls back to titled fragment", func(t *testing.T) {
		got := ParseEnchantments(`{"minecraft:super_zap":5}`, logger)
		require.Len(t, got, 1)
		assert.Equal(t, "Super Zap", got[0].Name)
		assert.Equal(t, 5, got[0].Level)
	})

	t.Run("Empty input", func(t *testing.T) {
		assert.Empty(t, ParseEnchantments("", logger))
		assert.Empty(t, ParseEnchantments("   ", logger))
	})

	t.Run("Garbage input", func(t *testing.T) {
		assert.Empty(t, ParseEnchantments(`{"unclosed`, logger))
		assert.Empty(t, ParseEnchantments(`[1, 2, 3]`, logger))
	})
}

func TestParseContainer(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Single slot", func(t *testing.T) {
		got := ParseContainer(`[{slot: 0, item: {id: 'minecraft:diamond', count: 3}}]`, logger)
		require.Len(t, got, 1)
		assert.Equal(t, "minecraft:diamond", got[0].Type)
		assert.Equal(t, 3, got[0].Amount)
		require.NotNil(t, got[0].Slot)
		assert.Equal(t, 0, *got[0].Slot)
	})

	t.Run("Multiple slots keep order", func(t *testing.T) {
		raw := `[{slot: 2, item: {id: 'minecraft:dirt', count: 64}}, {slot: 5, item: {id: 'minecraft:stone', count: 32}}]`
		got := ParseContainer(raw, logger)
		require.Len(t, got, 2)
		assert.Equal(t, "minecraft:dirt", got[0].Type)
		assert.Equal(t, 2, *got[0].Slot)
		assert.Equal(t, "minecraft:stone", got[1].Type)
		assert.Equal(t, 5, *got[1].Slot)
	})

	t.Run("Slot without item skipped", func(t *testing.T) {
		got := ParseContainer(`[{slot: 0}, {slot: 1, item: {id: 'minecraft:sand', count: 1}}]`, logger)
		require.Len(t, got, 1)
		assert.Equal(t, "minecraft:sand", got[0].Type)
	})

	t.Run("Empty input", func(t *testing.T) {
		assert.Empty(t, ParseContainer("", logger))
	})

	t.Run("Garbage input", func(t *testing.T) {
		assert.Empty(t, ParseContainer(`[{slot: 0, item:`, logger))
	})
}

func TestEnchantmentName(t *testing.T) {
	assert.Equal(t, "Sharpness", EnchantmentName("minecraft:sharpness"))
	assert.Equal(t, "Luck of the Sea", EnchantmentName("minecraft:luck_of_the_sea"))
	assert.Equal(t, "Totally Made Up", EnchantmentName("minecraft:totally_made_up"))
}
