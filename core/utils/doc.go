// Package utils provides loose-typed conversion helpers for values decoded
// from the game server's YAML and JSON files, whose scalar types are not
// guaranteed (numbers may arrive as strings, flags as ints, and so on).
package utils
