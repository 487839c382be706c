// Package stock caches the per-shop remaining inventory counts computed by
// the game-side plugin and written to a flat JSON file. Absence of an entry
// means "no stock data", which callers must keep distinct from zero.
package stock
