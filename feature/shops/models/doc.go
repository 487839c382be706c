// Package models defines the canonical shop, offer, item and trade records
// derived from the Shopkeepers save file, plus the three-state stock level
// reported on enriched trades.
package models
