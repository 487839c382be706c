package models

// Location is the in-world position of a shopkeeper entity.
type Location struct {
	World string `json:"world"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Z     int    `json:"z"`
}

// Enchantment is a single resolved enchantment on an item.
type Enchantment struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Item is the canonical shape of one item extracted from the save file.
// Type is always present; every other field is best-effort.
type Item struct {
	Type            string        `json:"type"`
	Amount          int           `json:"amount"`
	DisplayName     string        `json:"display_name,omitempty"`
	Lore            []string      `json:"lore,omitempty"`
	CustomModelData *int          `json:"custom_model_data,omitempty"`
	Enchantments    []Enchantment `json:"enchantments,omitempty"`
	Contents        []Item        `json:"contents,omitempty"`
	IsContainer     bool          `json:"is_container,omitempty"`
	// Slot is only set for items that live inside a container.
	Slot *int `json:"slot,omitempty"`

	// IconURL and IsCustom are filled in by trade enrichment.
	IconURL  string `json:"icon_url,omitempty"`
	IsCustom bool   `json:"is_custom"`
}

// Offer is one trade recipe within a shop: a result item bought with up to
// two cost items. Any of the three slots may be absent in the save file.
type Offer struct {
	ID     string `json:"id"`
	Result *Item  `json:"result"`
	Cost1  *Item  `json:"cost1"`
	Cost2  *Item  `json:"cost2,omitempty"`
}

// Shop types as stored by the Shopkeepers plugin.
const (
	ShopTypeAdmin  = "admin"
	ShopTypePlayer = "player"
)

// Shop is one shopkeeper entry from the save file. Shops are re-derived in
// full on every load and are never mutated afterwards.
type Shop struct {
	ID        string   `json:"id"`
	UUID      string   `json:"uuid"`
	Type      string   `json:"type"`
	Name      string   `json:"name"`
	OwnerUUID string   `json:"owner_uuid,omitempty"`
	OwnerName string   `json:"owner_name,omitempty"`
	Location  Location `json:"location"`
	Offers    []Offer  `json:"offers"`
}

// Trade is a flattened, display-ready offer annotated with shop and owner
// metadata and a stock figure.
type Trade struct {
	TradeUniqueID string   `json:"trade_unique_id"`
	OfferID       string   `json:"id"`
	ShopUUID      string   `json:"shop_uuid"`
	ShopType      string   `json:"shop_type"`
	ShopName      string   `json:"shop_name"`
	OwnerUUID     string   `json:"owner_uuid,omitempty"`
	OwnerName     string   `json:"owner_name,omitempty"`
	Location      Location `json:"location"`
	Result        *Item    `json:"result"`
	Cost1         *Item    `json:"cost1"`
	Cost2         *Item    `json:"cost2,omitempty"`

	StockRemaining StockLevel `json:"stock_remaining"`
}
