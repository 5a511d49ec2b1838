package cart

import (
	"sort"
	"sync"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/catalog"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	"github.com/shopspring/decimal"
)

// Cart is the in-progress, unplaced selection of items for one session.
// It maps item identifier to quantity; quantity is always >= 1 while an
// entry is present. Carts are ephemeral and never persisted.
type Cart struct {
	mu         sync.Mutex
	quantities map[int64]int
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{
		quantities: make(map[int64]int),
	}
}

// Increment raises the quantity for the item by one, starting from zero.
func (c *Cart) Increment(itemID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quantities[itemID]++
}

// Decrement lowers the quantity for the item by one. At quantity one the
// entry is removed entirely, so a zero quantity is never observable.
// Decrementing an absent item is a no-op.
func (c *Cart) Decrement(itemID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch qty := c.quantities[itemID]; {
	case qty > 1:
		c.quantities[itemID] = qty - 1
	case qty == 1:
		delete(c.quantities, itemID)
	}
}

// Quantity returns the current quantity for the item, zero if absent.
func (c *Cart) Quantity(itemID int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quantities[itemID]
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quantities = make(map[int64]int)
}

// Len returns the number of distinct items in the cart.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.quantities)
}

// Snapshot resolves the cart against the catalog and returns point-in-time
// line items with name and price captured. Entries whose identifier no
// longer resolves (the item was removed from the catalog) are silently
// dropped; that is deliberate policy, not an error. Lines are ordered by
// item identifier.
func (c *Cart) Snapshot(cat *catalog.Catalog) []models.OrderLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]int64, 0, len(c.quantities))
	for id := range c.quantities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	lines := make([]models.OrderLine, 0, len(ids))
	for _, id := range ids {
		item, ok := cat.Get(id)
		if !ok {
			continue // orphaned after catalog removal
		}
		lines = append(lines, models.OrderLine{
			ItemID:   item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: c.quantities[id],
		})
	}
	return lines
}

// Subtotal sums price times quantity over the resolved snapshot.
func (c *Cart) Subtotal(cat *catalog.Catalog) decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Snapshot(cat) {
		total = total.Add(line.Subtotal())
	}
	return total
}
