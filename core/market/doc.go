// Package market holds the configuration for the game-server data sources
// consumed by the shop and trade features: the Shopkeepers save file, the
// plugin-written stock file, the optional custom item registry file, and
// the public item catalog endpoint.
package market
