// Package itemref caches the public item catalog (names and icons for the
// base game's items). The catalog is fetched once at startup; it changes
// rarely enough that a restart is the refresh path.
package itemref
