package trades

import (
	"market-manager/feature/shops"
	"market-manager/feature/trades/itemref"
	"market-manager/feature/trades/registry"
	"market-manager/feature/trades/stock"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the trades feature. The shops service is shared with
// the shops feature; db may be nil.
func NewFeature(shopSvc *shops.Service, reg *registry.Registry, catalog *itemref.Cache, stockCache *stock.Cache, db *gorm.DB, logger *zap.Logger) *Feature {
	svc := NewService(shopSvc, reg, catalog, stockCache, db, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "trades"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
