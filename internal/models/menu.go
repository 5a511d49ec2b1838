package models

import "github.com/shopspring/decimal"

// Standard menu categories. Admins may also introduce free-form categories,
// so these are defaults for the UI, not an exhaustive enum.
const (
	CategoryMainCourse = "Main Course"
	CategoryBeverage   = "Beverage"
	CategorySideDish   = "Side Dish"
	CategoryDessert    = "Dessert"
)

// MenuItem represents a dish available for order.
// Image bytes are stored separately, keyed by ID, to keep the item JSON-light.
type MenuItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Rating   float64         `json:"rating"`
	Category string          `json:"category"`
	Tags     []string        `json:"tags,omitempty"`
}
