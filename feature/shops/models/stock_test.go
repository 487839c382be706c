package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockLevelMarshalJSON(t *testing.T) {
	t.Run("Unlimited", func(t *testing.T) {
		out, err := json.Marshal(UnlimitedStock())
		require.NoError(t, err)
		assert.Equal(t, `"UNLIMITED"`, string(out))
	})

	t.Run("Counted", func(t *testing.T) {
		out, err := json.Marshal(CountedStock(12))
		require.NoError(t, err)
		assert.Equal(t, "12", string(out))
	})

	t.Run("Counted zero is not unknown", func(t *testing.T) {
		out, err := json.Marshal(CountedStock(0))
		require.NoError(t, err)
		assert.Equal(t, "0", string(out))
	})

	t.Run("Unknown", func(t *testing.T) {
		out, err := json.Marshal(UnknownStock())
		require.NoError(t, err)
		assert.Equal(t, "null", string(out))
	})

	t.Run("Zero value is unknown", func(t *testing.T) {
		var level StockLevel
		assert.True(t, level.IsUnknown())
		out, err := json.Marshal(level)
		require.NoError(t, err)
		assert.Equal(t, "null", string(out))
	})
}

func TestStockLevelAccessors(t *testing.T) {
	count, ok := CountedStock(7).Count()
	assert.True(t, ok)
	assert.Equal(t, 7, count)

	_, ok = UnlimitedStock().Count()
	assert.False(t, ok)
	assert.True(t, UnlimitedStock().IsUnlimited())
	assert.False(t, UnlimitedStock().IsUnknown())
}
