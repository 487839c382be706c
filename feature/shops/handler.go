package shops

import (
	"market-manager/core/logger"
	"market-manager/core/utils"
	"market-manager/feature/shops/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for shop browsing.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the shop routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/shops")
	group.Get("/", h.HandleListShops)
	group.Get("/owner/:uuid", h.HandleOwnerShops)
	group.Get("/:uuid", h.HandleGetShop)
}

// HandleListShops returns all shops with pagination.
func (h *Handler) HandleListShops(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	shops := h.service.LoadShops()
	total := len(shops)
	page := utils.Paginate(&shops, skip, limit)

	return c.JSON(fiber.Map{
		"shops":     shops,
		"total":     total,
		"page":      page,
		"page_size": limit,
	})
}

// HandleGetShop returns a single shop by UUID.
func (h *Handler) HandleGetShop(c *fiber.Ctx) error {
	shop := h.service.ShopByUUID(c.Params("uuid"))
	if shop == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "shop not found",
		})
	}
	return c.JSON(shop)
}

// HandleOwnerShops returns every shop owned by a player.
func (h *Handler) HandleOwnerShops(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	ownerUUID := c.Params("uuid")

	shops := h.service.ShopsByOwner(ownerUUID)
	l.Debug("Listed shops for owner", zap.String("owner", ownerUUID), zap.Int("count", len(shops)))

	if shops == nil {
		shops = []models.Shop{}
	}
	return c.JSON(fiber.Map{
		"shops": shops,
		"total": len(shops),
	})
}
