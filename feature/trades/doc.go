// Package trades produces display-ready trade records from the parsed shop
// data. Each item is resolved through a layered lookup: the curated item
// registry first, then the public item catalog, then fallback formatting
// from the raw type id. Stock levels come from the plugin-written stock
// file for player shops; admin shops are always unlimited.
//
// When a trade history database is configured, the package also serves the
// completed-trade queries (recent, per-player, per-shop, leaderboard).
package trades
