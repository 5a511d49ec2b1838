package recommend

import (
	"fmt"
	"sort"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/catalog"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/ledger"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	"github.com/shopspring/decimal"
)

// Default thresholds for the three recommendation views.
const (
	DefaultLimit     = 3
	DefaultMinRating = 4.3
)

// DefaultMaxPrice is the budget-friendly price ceiling.
var DefaultMaxPrice = decimal.NewFromInt(100)

// Engine derives recommendation subsets from the catalog and the order
// history. It owns no domain state; the cache only memoizes results.
type Engine struct {
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	cache   *Cache
}

// NewEngine creates an engine over the given catalog and ledger. The cache
// must be the same instance registered as the ledger's invalidator.
func NewEngine(cat *catalog.Catalog, led *ledger.Ledger, cache *Cache) *Engine {
	return &Engine{
		catalog: cat,
		ledger:  led,
		cache:   cache,
	}
}

// PopularItems ranks items by cumulative ordered quantity across the whole
// history, highest first, ties broken by lower identifier. With no orders
// yet it falls back to the first limit catalog items in catalog order.
// Results come through the TTL cache.
func (e *Engine) PopularItems(limit int) []models.MenuItem {
	return e.cache.GetOrCompute(fmt.Sprintf("popular:%d", limit), func() []models.MenuItem {
		return e.popularItems(limit)
	})
}

func (e *Engine) popularItems(limit int) []models.MenuItem {
	counts := make(map[int64]int)
	for _, order := range e.ledger.List(0) {
		for _, line := range order.Lines {
			counts[line.ItemID] += line.Quantity
		}
	}

	items := e.catalog.List("")
	if len(counts) == 0 {
		return head(items, limit)
	}

	ranked := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if counts[item.ID] > 0 {
			ranked = append(ranked, item)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		ci, cj := counts[ranked[i].ID], counts[ranked[j].ID]
		if ci != cj {
			return ci > cj
		}
		return ranked[i].ID < ranked[j].ID
	})
	return head(ranked, limit)
}

// HighlyRated returns items with rating >= minRating, best rated first.
func (e *Engine) HighlyRated(minRating float64, limit int) []models.MenuItem {
	var rated []models.MenuItem
	for _, item := range e.catalog.List("") {
		if item.Rating >= minRating {
			rated = append(rated, item)
		}
	}
	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].Rating > rated[j].Rating
	})
	return head(rated, limit)
}

// BudgetFriendly returns items priced at or below maxPrice, cheapest first.
func (e *Engine) BudgetFriendly(maxPrice decimal.Decimal, limit int) []models.MenuItem {
	var budget []models.MenuItem
	for _, item := range e.catalog.List("") {
		if item.Price.LessThanOrEqual(maxPrice) {
			budget = append(budget, item)
		}
	}
	sort.SliceStable(budget, func(i, j int) bool {
		return budget[i].Price.LessThan(budget[j].Price)
	})
	return head(budget, limit)
}

func head(items []models.MenuItem, limit int) []models.MenuItem {
	if limit < 0 {
		limit = 0
	}
	if limit > len(items) {
		limit = len(items)
	}
	return items[:limit]
}
