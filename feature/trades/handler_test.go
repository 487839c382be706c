package trades

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	handler := NewHandler(newTestService(t))
	handler.RegisterRoutes(app)
	return app
}

func TestHandleAvailableTrades(t *testing.T) {
	app := setupTestApp(t)

	t.Run("Full response", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/trades/available", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, float64(3), body["total"])
		assert.Equal(t, float64(1), body["page"])

		trades := body["trades"].([]any)
		require.Len(t, trades, 3)

		byID := make(map[string]map[string]any, len(trades))
		for _, raw := range trades {
			trade := raw.(map[string]any)
			byID[trade["trade_unique_id"].(string)] = trade
		}

		// The three stock states each have a distinct wire encoding.
		admin := byID["aaaaaaaa-0000-0000-0000-000000000001-1"]
		require.NotNil(t, admin)
		assert.Equal(t, "UNLIMITED", admin["stock_remaining"])

		counted := byID["bbbbbbbb-0000-0000-0000-000000000002-1"]
		require.NotNil(t, counted)
		assert.Equal(t, float64(6), counted["stock_remaining"])

		unknown := byID["bbbbbbbb-0000-0000-0000-000000000002-2"]
		require.NotNil(t, unknown)
		assert.Nil(t, unknown["stock_remaining"])

		result := admin["result"].(map[string]any)
		assert.Equal(t, "Diamond Block", result["display_name"])
		assert.Equal(t, false, result["is_custom"])
	})

	t.Run("Pagination window", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/trades/available?skip=2&limit=2", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, float64(3), body["total"])
		assert.Equal(t, float64(2), body["page"])
		assert.Len(t, body["trades"], 1)
	})
}

func TestHistoryEndpointsWithoutDatabase(t *testing.T) {
	app := setupTestApp(t)

	paths := []string{
		"/trades/recent",
		"/trades/leaderboard/sellers",
		"/trades/player/some-uuid",
		"/trades/stats/some-uuid",
		"/trades/shop/some-uuid",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest("GET", path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, 503, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}
