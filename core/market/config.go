package market

// Config holds the paths and endpoints of the game-server data sources.
// All files are written by the game server or its plugins; this service
// only ever reads them.
type Config struct {
	// SaveFile is the path to the Shopkeepers plugin save file.
	SaveFile string `mapstructure:"save_file" default:"/minecraft/shopkeepers/data/save.yml"`
	// StockFile is the path to the plugin-generated shop stock JSON file.
	StockFile string `mapstructure:"stock_file" default:"/minecraft/automation/shop_stock.json"`
	// RegistryFile optionally overrides the built-in custom item registry
	// with an external YAML table. Empty means use the built-in table.
	RegistryFile string `mapstructure:"registry_file" default:""`
	// ItemApiUrl is the endpoint of the public item catalog used to resolve
	// vanilla item names and icons.
	ItemApiUrl string `mapstructure:"item_api_url" default:"https://minecraft-api.vercel.app/api/items"`
	// ItemApiTimeoutSeconds bounds the one-time catalog fetch at startup.
	ItemApiTimeoutSeconds int `mapstructure:"item_api_timeout_seconds" default:"10"`
}
