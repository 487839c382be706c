package config_test

import (
	"testing"

	"market-manager/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "/minecraft/shopkeepers/data/save.yml", cfg.Market.SaveFile)
	assert.Equal(t, "/minecraft/automation/shop_stock.json", cfg.Market.StockFile)
	assert.Equal(t, 10, cfg.Market.ItemApiTimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 3306, cfg.Database.Port)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("MARKET_SAVE_FILE", "/tmp/save.yml")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.Server.Port)
	assert.Equal(t, "/tmp/save.yml", cfg.Market.SaveFile)
}
