// Package registry holds the curated item table: a small hand-maintained
// set of entries that override generic item identity for specially
// recognized items, such as the server's minted currency.
package registry
