// Package shops parses the Shopkeepers plugin save file into canonical
// shop, offer and item records, and serves the shop browsing endpoints.
//
// The save file is a nested YAML document keyed by shop id. Item records
// embed string-encoded sub-structures (enchantment maps, container slot
// lists) that do not follow the outer document's syntax; those are decoded
// by a dedicated secondary parser with its own quoting normalization.
//
// All parsing is best-effort: a malformed field, component or entire file
// degrades to empty data plus a log entry, never an error to the caller.
package shops
