package shops

import (
	"os"

	"market-manager/core/utils"
	"market-manager/feature/shops/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// dataVersionKey is the reserved metadata entry in the save file that does
// not describe a shop.
const dataVersionKey = "data-version"

// Service reads and parses the Shopkeepers save file. Every call re-derives
// the full shop list from disk; shop data is never cached here, since the
// plugin rewrites the file on its own schedule.
type Service struct {
	path   string
	logger *zap.Logger
}

// NewService creates a new shops service reading from the given save file.
func NewService(path string, logger *zap.Logger) *Service {
	return &Service{path: path, logger: logger}
}

// LoadShops parses the whole save file into a shop list, preserving the
// document order. A missing, empty, or structurally broken file yields an
// empty list and a logged error; the API surface depends on best-effort
// availability even when the file is mid-rewrite.
func (s *Service) LoadShops() []models.Shop {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Error("Shop save file unavailable", zap.String("path", s.path), zap.Error(err))
		return nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		s.logger.Error("Failed to parse shop save file", zap.String("path", s.path), zap.Error(err))
		return nil
	}
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		s.logger.Error("Shop save file is empty or not a mapping", zap.String("path", s.path))
		return nil
	}

	doc := root.Content[0]
	shops := make([]models.Shop, 0, len(doc.Content)/2)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i].Value
		value := doc.Content[i+1]
		if key == dataVersionKey || value.Kind != yaml.MappingNode {
			continue
		}
		shops = append(shops, s.parseShop(key, value))
	}
	return shops
}

// ShopByUUID returns the shop with the given UUID, or nil if absent.
func (s *Service) ShopByUUID(uuid string) *models.Shop {
	for _, shop := range s.LoadShops() {
		if shop.UUID == uuid {
			return &shop
		}
	}
	return nil
}

// ShopsByOwner returns every shop owned by the given player.
func (s *Service) ShopsByOwner(ownerUUID string) []models.Shop {
	var owned []models.Shop
	for _, shop := range s.LoadShops() {
		if shop.OwnerUUID == ownerUUID {
			owned = append(owned, shop)
		}
	}
	return owned
}

// AvailableTrades flattens every shop's offers into a single trade list,
// injecting shop and owner metadata into each record. Offers without a
// result item are skipped: there is nothing to buy.
func (s *Service) AvailableTrades() []models.Trade {
	var trades []models.Trade
	for _, shop := range s.LoadShops() {
		for _, offer := range shop.Offers {
			if offer.Result == nil {
				continue
			}
			trades = append(trades, models.Trade{
				TradeUniqueID: shop.UUID + "-" + offer.ID,
				OfferID:       offer.ID,
				ShopUUID:      shop.UUID,
				ShopType:      shop.Type,
				ShopName:      shop.Name,
				OwnerUUID:     shop.OwnerUUID,
				OwnerName:     shop.OwnerName,
				Location:      shop.Location,
				Result:        offer.Result,
				Cost1:         offer.Cost1,
				Cost2:         offer.Cost2,
			})
		}
	}
	return trades
}

// parseShop projects one shop mapping node into a Shop record. Scalar
// fields are decoded loosely; a failure in any one field never discards
// the record.
func (s *Service) parseShop(key string, node *yaml.Node) models.Shop {
	var fields map[string]any
	if err := node.Decode(&fields); err != nil {
		s.logger.Warn("Failed to decode shop entry", zap.String("shop", key), zap.Error(err))
		fields = map[string]any{}
	}

	shop := models.Shop{
		ID:        key,
		UUID:      utils.ToString(fields["uniqueId"]),
		Type:      utils.ToString(fields["type"]),
		Name:      utils.ToString(fields["name"]),
		OwnerUUID: utils.ToString(fields["owner uuid"]),
		OwnerName: utils.ToString(fields["owner"]),
		Location: models.Location{
			World: utils.ToString(fields["world"]),
			X:     utils.ToInt(fields["x"]),
			Y:     utils.ToInt(fields["y"]),
			Z:     utils.ToInt(fields["z"]),
		},
	}

	// "offers" and "recipes" are synonyms across plugin versions. First one
	// found wins; they are never merged.
	if offers := childNode(node, "offers"); offers != nil {
		shop.Offers = s.parseOffers(key, offers)
	} else if recipes := childNode(node, "recipes"); recipes != nil {
		shop.Offers = s.parseOffers(key, recipes)
	}
	return shop
}

// parseOffers projects an offers mapping node into an ordered offer list.
func (s *Service) parseOffers(shopKey string, node *yaml.Node) []models.Offer {
	if node.Kind != yaml.MappingNode {
		s.logger.Warn("Offers entry is not a mapping", zap.String("shop", shopKey))
		return nil
	}

	offers := make([]models.Offer, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		id := node.Content[i].Value

		var fields map[string]any
		if err := node.Content[i+1].Decode(&fields); err != nil {
			s.logger.Warn("Failed to decode offer",
				zap.String("shop", shopKey),
				zap.String("offer", id),
				zap.Error(err))
			continue
		}

		offers = append(offers, models.Offer{
			ID:     id,
			Result: normalizeItem(fields["resultItem"], s.logger),
			Cost1:  normalizeItem(fields["item1"], s.logger),
			Cost2:  normalizeItem(fields["item2"], s.logger),
		})
	}
	return offers
}

// childNode returns the value node for the given key of a mapping node.
func childNode(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// Component keys recognized inside an item's component block. Unrecognized
// keys are ignored, not errors.
const (
	componentCustomName      = "minecraft:custom_name"
	componentLore            = "minecraft:lore"
	componentEnchantments    = "minecraft:enchantments"
	componentContainer       = "minecraft:container"
	componentCustomModelData = "minecraft:custom_model_data"
)

// normalizeItem converts one raw item structure into an Item record, or nil
// when the input is absent. A failure in one component sub-block never
// blocks extraction of its siblings.
func normalizeItem(value any, logger *zap.Logger) *models.Item {
	raw, ok := value.(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}

	item := &models.Item{
		Type:   utils.ToString(raw["id"]),
		Amount: 1,
	}
	if item.Type == "" {
		item.Type = "minecraft:unknown"
	}
	if count, ok := raw["count"]; ok {
		item.Amount = utils.ToInt(count)
	}

	components, _ := raw["components"].(map[string]any)
	if len(components) == 0 {
		return item
	}

	if name, ok := components[componentCustomName]; ok {
		item.DisplayName = utils.ToString(name)
	}
	if lore, ok := components[componentLore]; ok {
		item.Lore = loreLines(lore)
	}
	if enchants, ok := components[componentEnchantments]; ok {
		item.Enchantments = ParseEnchantments(utils.ToString(enchants), logger)
	}
	if container, ok := components[componentContainer]; ok {
		item.Contents = ParseContainer(utils.ToString(container), logger)
		item.IsContainer = true
	}
	if cmd, ok := components[componentCustomModelData]; ok {
		item.CustomModelData = customModelData(cmd)
	}
	return item
}

// loreLines projects the lore component into its line list. The component
// is usually a sequence of strings but a bare scalar also occurs.
func loreLines(value any) []string {
	switch v := value.(type) {
	case []any:
		lines := make([]string, 0, len(v))
		for _, line := range v {
			lines = append(lines, utils.ToString(line))
		}
		return lines
	case nil:
		return nil
	default:
		return []string{utils.ToString(v)}
	}
}

// customModelData handles both representations of the component: a bare
// integer, or a structured value holding a list of floats, in which case
// the first float is truncated to an integer.
func customModelData(value any) *int {
	switch v := value.(type) {
	case map[string]any:
		floats, _ := v["floats"].([]any)
		if len(floats) == 0 {
			return nil
		}
		n := utils.ToInt(floats[0])
		return &n
	case nil:
		return nil
	default:
		n := utils.ToInt(v)
		return &n
	}
}
