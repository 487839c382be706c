package models

import "encoding/json"

type stockKind int

const (
	stockUnknown stockKind = iota
	stockUnlimited
	stockCounted
)

// StockLevel is a three-state stock figure for a trade: unlimited (admin
// shops), a concrete remaining count, or unknown when no stock data exists
// for the item. Unknown is distinct from a count of zero. The zero value
// is unknown.
type StockLevel struct {
	kind  stockKind
	count int
}

// UnlimitedStock returns the unlimited sentinel.
func UnlimitedStock() StockLevel { return StockLevel{kind: stockUnlimited} }

// UnknownStock returns the unknown sentinel.
func UnknownStock() StockLevel { return StockLevel{kind: stockUnknown} }

// CountedStock returns a concrete remaining count.
func CountedStock(n int) StockLevel { return StockLevel{kind: stockCounted, count: n} }

// IsUnlimited reports whether the level is the unlimited sentinel.
func (s StockLevel) IsUnlimited() bool { return s.kind == stockUnlimited }

// IsUnknown reports whether the level is the unknown sentinel.
func (s StockLevel) IsUnknown() bool { return s.kind == stockUnknown }

// Count returns the concrete count and whether one is present.
func (s StockLevel) Count() (int, bool) {
	return s.count, s.kind == stockCounted
}

// MarshalJSON encodes the wire format expected by the frontend:
// "UNLIMITED", a plain number, or null for unknown.
func (s StockLevel) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case stockUnlimited:
		return []byte(`"UNLIMITED"`), nil
	case stockCounted:
		return json.Marshal(s.count)
	default:
		return []byte("null"), nil
	}
}
