package trades

import (
	"strings"

	"market-manager/core/utils"
	"market-manager/feature/shops"
	"market-manager/feature/shops/models"
	"market-manager/feature/trades/itemref"
	"market-manager/feature/trades/registry"
	"market-manager/feature/trades/stock"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service combines the shop reader with the identity and stock caches to
// produce fully enriched trade records, and serves the trade history
// queries when a database is configured.
type Service struct {
	shops    *shops.Service
	registry *registry.Registry
	catalog  *itemref.Cache
	stock    *stock.Cache
	db       *gorm.DB
	logger   *zap.Logger
}

// NewService creates a new trades service. db may be nil, which disables
// the history queries.
func NewService(shopSvc *shops.Service, reg *registry.Registry, catalog *itemref.Cache, stockCache *stock.Cache, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		shops:    shopSvc,
		registry: reg,
		catalog:  catalog,
		stock:    stockCache,
		db:       db,
		logger:   logger,
	}
}

// HasHistory reports whether the trade history database is available.
func (s *Service) HasHistory() bool {
	return s.db != nil
}

// InvalidateStock forces the next stock lookup to reload from disk. The
// availability endpoint calls this before each enrichment pass so that
// externally updated stock is observed without a restart.
func (s *Service) InvalidateStock() {
	s.stock.Invalidate()
}

// EnrichItem assigns the item its display identity, consulting the curated
// registry first, then the item catalog, then fallback formatting. The
// custom flag is always explicitly set. Enrichment is a pure function of
// the pre-enrichment item plus current cache state, so re-running it yields
// the same result. An item with no type is returned unchanged.
func (s *Service) EnrichItem(item *models.Item) {
	if item == nil || item.Type == "" {
		return
	}

	// Curated data always wins, including over a name from the save file.
	if entry := s.registry.Match(item); entry != nil {
		item.DisplayName = entry.Name
		item.IconURL = entry.IconURL
		item.IsCustom = true
		return
	}

	// A save-file name (custom_name component) beats the generic catalog
	// name, but the catalog icon is always taken.
	documentName := item.DisplayName
	if entry, ok := s.catalog.Lookup(item.Type); ok {
		item.IconURL = entry.IconURL
		if documentName == "" {
			item.DisplayName = entry.Name
		}
	} else {
		if documentName == "" {
			item.DisplayName = utils.TitleWords(strings.TrimPrefix(item.Type, "minecraft:"))
		}
		item.IconURL = ""
	}
	item.IsCustom = false
}

// AvailableTrades extracts every offer from the save file, resolves its
// stock level and enriches all three item slots. Admin shops always report
// unlimited stock; player shops report the scanned count for the result
// item, or unknown when no stock data exists.
func (s *Service) AvailableTrades() []models.Trade {
	trades := s.shops.AvailableTrades()

	for i := range trades {
		trade := &trades[i]

		if trade.ShopType == models.ShopTypeAdmin {
			trade.StockRemaining = models.UnlimitedStock()
		} else {
			resultType := ""
			if trade.Result != nil {
				resultType = trade.Result.Type
			}
			if count, ok := s.stock.Lookup(trade.ShopUUID, resultType); ok {
				trade.StockRemaining = models.CountedStock(count)
			} else {
				trade.StockRemaining = models.UnknownStock()
			}
		}

		// The three slots are independent of each other.
		s.EnrichItem(trade.Result)
		s.EnrichItem(trade.Cost1)
		s.EnrichItem(trade.Cost2)
	}

	s.logger.Debug("Enriched available trades", zap.Int("count", len(trades)))
	return trades
}
