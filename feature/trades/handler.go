package trades

import (
	"errors"

	"market-manager/core/logger"
	"market-manager/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for trade availability and history.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the trade routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/trades")
	group.Get("/available", h.HandleAvailableTrades)
	group.Get("/recent", h.HandleRecentTrades)
	group.Get("/leaderboard/sellers", h.HandleTopSellers)
	group.Get("/player/:uuid", h.HandlePlayerTrades)
	group.Get("/stats/:uuid", h.HandlePlayerStats)
	group.Get("/shop/:uuid", h.HandleShopTrades)
}

// HandleAvailableTrades returns every currently offered trade, enriched
// with display identities and stock levels. The stock cache is invalidated
// up front so externally updated stock is observed without a restart.
func (h *Handler) HandleAvailableTrades(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	h.service.InvalidateStock()

	trades := h.service.AvailableTrades()
	total := len(trades)
	page := utils.Paginate(&trades, skip, limit)

	l.Info("Served available trades", zap.Int("total", total), zap.Int("returned", len(trades)))

	return c.JSON(fiber.Map{
		"trades":    trades,
		"total":     total,
		"page":      page,
		"page_size": limit,
	})
}

// HandleRecentTrades returns the most recent completed trades.
func (h *Handler) HandleRecentTrades(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)

	logs, err := h.service.RecentTrades(limit)
	if err != nil {
		return h.historyError(c, err)
	}
	return c.JSON(logs)
}

// HandlePlayerTrades returns a player's trades as buyer and/or seller.
func (h *Handler) HandlePlayerTrades(c *fiber.Ctx) error {
	playerUUID := c.Params("uuid")
	asBuyer := c.QueryBool("as_buyer", true)
	asSeller := c.QueryBool("as_seller", true)
	limit := c.QueryInt("limit", 100)

	logs, err := h.service.PlayerTrades(playerUUID, asBuyer, asSeller, limit)
	if err != nil {
		return h.historyError(c, err)
	}
	return c.JSON(fiber.Map{
		"player_uuid": playerUUID,
		"trades":      logs,
		"total":       len(logs),
	})
}

// HandlePlayerStats returns aggregated trade statistics for a player.
func (h *Handler) HandlePlayerStats(c *fiber.Ctx) error {
	stats, err := h.service.PlayerTradeStats(c.Params("uuid"))
	if err != nil {
		return h.historyError(c, err)
	}
	return c.JSON(stats)
}

// HandleTopSellers returns the seller leaderboard.
func (h *Handler) HandleTopSellers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)

	sellers, err := h.service.TopSellers(limit)
	if err != nil {
		return h.historyError(c, err)
	}
	return c.JSON(sellers)
}

// HandleShopTrades returns the trade log of a single shop.
func (h *Handler) HandleShopTrades(c *fiber.Ctx) error {
	shopUUID := c.Params("uuid")
	limit := c.QueryInt("limit", 100)

	logs, err := h.service.ShopTrades(shopUUID, limit)
	if err != nil {
		return h.historyError(c, err)
	}
	return c.JSON(fiber.Map{
		"shop_uuid": shopUUID,
		"trades":    logs,
		"total":     len(logs),
	})
}

func (h *Handler) historyError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNoDatabase) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	logger.WithRayID(h.service.logger, c).Error("Trade history query failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "trade history query failed",
	})
}
