// Package database manages the optional MySQL connection to the trade
// history database populated by the game-side Shopkeepers companion plugin.
//
// The service only reads from this database. A failed connection downgrades
// the history endpoints instead of preventing startup.
package database
