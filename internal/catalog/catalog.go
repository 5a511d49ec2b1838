package catalog

import (
	"errors"
	"sort"
	"sync"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound  = errors.New("menu item not found")
	ErrEmptyName     = errors.New("dish name must not be empty")
	ErrInvalidPrice  = errors.New("price must be positive")
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
)

// CategoryAll is the filter value that matches every category.
const CategoryAll = "All"

// Catalog holds the orderable menu items, indexed by identifier so removal
// is O(1) and unambiguous. Insertion order is tracked separately because
// listing must preserve it.
type Catalog struct {
	mu    sync.RWMutex
	items map[int64]models.MenuItem
	order []int64
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		items: make(map[int64]models.MenuItem),
	}
}

// NewWithDefaults creates a catalog seeded with the standard menu.
func NewWithDefaults() *Catalog {
	c := New()
	seed := []struct {
		name     string
		price    string
		rating   float64
		category string
		tags     []string
	}{
		{"Burger", "70.23", 4.5, models.CategoryMainCourse, []string{"popular", "non-veg"}},
		{"Coffee", "70.20", 4.0, models.CategoryBeverage, []string{"popular", "hot"}},
		{"Pizza", "237.26", 4.7, models.CategoryMainCourse, []string{"popular", "vegetarian"}},
		{"Pasta", "150.00", 4.3, models.CategoryMainCourse, []string{"vegetarian"}},
		{"Sandwich", "80.50", 4.2, models.CategoryMainCourse, []string{"vegetarian"}},
		{"Fries", "60.00", 4.0, models.CategorySideDish, []string{"popular", "vegetarian"}},
		{"Salad", "90.00", 4.4, models.CategorySideDish, []string{"vegetarian", "healthy"}},
		{"Ice Cream", "50.00", 4.6, models.CategoryDessert, []string{"popular", "sweet"}},
	}
	for _, s := range seed {
		// Seed data is static and valid, so Add cannot fail here.
		c.Add(s.name, s.category, decimal.RequireFromString(s.price), s.rating, s.tags)
	}
	return c
}

// Add validates and appends a new menu item, assigning the next identifier.
// Identifiers are strictly greater than any ever assigned, so they are never
// reused even after removals.
func (c *Catalog) Add(name, category string, price decimal.Decimal, rating float64, tags []string) (models.MenuItem, error) {
	if name == "" {
		return models.MenuItem{}, ErrEmptyName
	}
	if !price.IsPositive() {
		return models.MenuItem{}, ErrInvalidPrice
	}
	if rating < 0 || rating > 5 {
		return models.MenuItem{}, ErrInvalidRating
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	item := models.MenuItem{
		ID:       c.nextIDLocked(),
		Name:     name,
		Price:    price,
		Rating:   rating,
		Category: category,
		Tags:     append([]string(nil), tags...),
	}
	c.items[item.ID] = item
	c.order = append(c.order, item.ID)
	return item, nil
}

// nextIDLocked returns max existing identifier + 1. Removed identifiers stay
// in the order slice history, so the counter never moves backwards.
func (c *Catalog) nextIDLocked() int64 {
	var max int64
	for _, id := range c.order {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Remove deletes the item with the given identifier. Cart entries referencing
// it become orphaned; consumers treat a lookup miss as not-in-cart.
func (c *Catalog) Remove(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return ErrItemNotFound
	}
	delete(c.items, id)
	return nil
}

// Get returns the item with the given identifier, if present.
func (c *Catalog) Get(id int64) (models.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	return item, ok
}

// List returns items in insertion order, optionally filtered by category.
// An empty category or CategoryAll matches everything.
func (c *Catalog) List(category string) []models.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]models.MenuItem, 0, len(c.items))
	for _, id := range c.order {
		item, ok := c.items[id]
		if !ok {
			continue // removed
		}
		if category != "" && category != CategoryAll && item.Category != category {
			continue
		}
		items = append(items, item)
	}
	return items
}

// Categories returns the distinct categories currently in the catalog,
// sorted alphabetically.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	for _, item := range c.items {
		seen[item.Category] = true
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Len returns the number of items currently in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
