package ledger

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyOrder    = errors.New("order must contain at least one item")
	ErrBlankCustomer = errors.New("customer name must not be blank")
	ErrOrderNotFound = errors.New("order not found")
)

// Clock supplies the placement timestamp. Injectable for deterministic tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock Clock used in production.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Invalidator is notified after every successful placement, so derived
// caches (popularity rankings) can be flushed.
type Invalidator interface {
	Invalidate()
}

// Ledger is the append-only record of placed orders. Orders are immutable
// once placed; the only later mutation is admin removal.
type Ledger struct {
	clock       Clock
	invalidator Invalidator

	mu     sync.RWMutex
	orders []models.Order
	nextID int64
}

// New creates an empty ledger. The invalidator may be nil.
func New(clock Clock, invalidator Invalidator) *Ledger {
	return &Ledger{
		clock:       clock,
		invalidator: invalidator,
		nextID:      1,
	}
}

// Place commits a resolved cart snapshot as a new order. The snapshot lines
// already carry captured name and price, so later catalog changes cannot
// touch the stored order. Identifiers come from a running counter and are
// never reused, even after deletion.
func (l *Ledger) Place(lines []models.OrderLine, customer string, isTeacher bool) (models.Order, error) {
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyOrder
	}
	if strings.TrimSpace(customer) == "" {
		return models.Order{}, ErrBlankCustomer
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}

	l.mu.Lock()
	order := models.Order{
		ID:        l.nextID,
		Customer:  customer,
		IsTeacher: isTeacher,
		Lines:     append([]models.OrderLine(nil), lines...),
		Total:     total,
		PlacedAt:  l.clock.Now(),
	}
	l.nextID++
	l.orders = append(l.orders, order)
	l.mu.Unlock()

	if l.invalidator != nil {
		l.invalidator.Invalidate()
	}
	return order, nil
}

// Delete removes the order with the given identifier.
func (l *Ledger) Delete(orderID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, o := range l.orders {
		if o.ID == orderID {
			l.orders = append(l.orders[:i], l.orders[i+1:]...)
			return nil
		}
	}
	return ErrOrderNotFound
}

// List returns placed orders. With limit <= 0 it returns every order in
// placement order, oldest first. With a positive limit it returns only the
// most recent limit orders, newest first; the reporting view relies on that
// reverse-chronological capped shape.
func (l *Ledger) List(limit int) []models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if limit <= 0 {
		return append([]models.Order(nil), l.orders...)
	}

	if limit > len(l.orders) {
		limit = len(l.orders)
	}
	out := make([]models.Order, 0, limit)
	for i := len(l.orders) - 1; i >= len(l.orders)-limit; i-- {
		out = append(out, l.orders[i])
	}
	return out
}

// Metrics returns count, revenue, and average order value. An empty ledger
// yields all zeros rather than a division error.
func (l *Ledger) Metrics() models.Metrics {
	l.mu.RLock()
	defer l.mu.RUnlock()

	m := models.Metrics{
		Revenue: decimal.Zero,
		Average: decimal.Zero,
	}
	for _, o := range l.orders {
		m.Revenue = m.Revenue.Add(o.Total)
	}
	m.Count = len(l.orders)
	if m.Count > 0 {
		m.Average = m.Revenue.Div(decimal.NewFromInt(int64(m.Count)))
	}
	return m
}

// CustomerBreakdown counts orders placed by teachers versus students.
func (l *Ledger) CustomerBreakdown() models.CustomerBreakdown {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var b models.CustomerBreakdown
	for _, o := range l.orders {
		if o.IsTeacher {
			b.Teachers++
		} else {
			b.Students++
		}
	}
	return b
}
