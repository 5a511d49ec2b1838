package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine is a single line item captured at placement time.
// Name and Price are snapshot copies of the menu item's display fields:
// deleting or replacing the catalog entry later must not change what a
// historical order shows.
type OrderLine struct {
	ItemID   int64           `json:"itemId"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Subtotal returns price multiplied by quantity for this line.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order represents a placed order. Immutable once placed; the only ledger
// mutation afterwards is removal.
type Order struct {
	ID        int64           `json:"id"`
	Customer  string          `json:"customer"`
	IsTeacher bool            `json:"isTeacher"`
	Lines     []OrderLine     `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	PlacedAt  time.Time       `json:"placedAt"`
}

// Metrics are the ledger-wide aggregates shown on the admin dashboard.
type Metrics struct {
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
	Average decimal.Decimal `json:"average"`
}

// CustomerBreakdown counts orders by customer type.
type CustomerBreakdown struct {
	Teachers int `json:"teachers"`
	Students int `json:"students"`
}
