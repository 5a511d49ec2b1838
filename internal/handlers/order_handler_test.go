package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/auth"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/cart"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/catalog"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/ledger"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/middleware"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/logger"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time { return s.now }

type orderFixture struct {
	router  *chi.Mux
	catalog *catalog.Catalog
	carts   *cart.Store
	ledger  *ledger.Ledger
	session auth.Session
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	cat := catalog.NewWithDefaults()
	carts := cart.NewStore()
	led := ledger.New(stubClock{now: time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)}, nil)
	h := NewOrderHandler(led, carts, cat, nil, logger.New("error"))

	r := chi.NewRouter()
	r.Post("/api/orders", h.Place)
	r.Get("/api/orders", h.List)
	r.Get("/api/orders/metrics", h.Metrics)
	r.Get("/api/orders/breakdown", h.Breakdown)
	r.Delete("/api/orders/{orderId}", h.Delete)

	return &orderFixture{
		router:  r,
		catalog: cat,
		carts:   carts,
		ledger:  led,
		session: auth.Session{Token: "session-token", Username: "alice"},
	}
}

func (f *orderFixture) do(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req = req.WithContext(middleware.WithSession(req.Context(), f.session))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestOrderHandler_Place(t *testing.T) {
	f := newOrderFixture(t)

	// Burger x2, Coffee x1 as in the demo walkthrough.
	c := f.carts.Get(f.session.Token)
	c.Increment(1)
	c.Increment(1)
	c.Increment(2)

	rec := f.do(t, http.MethodPost, "/api/orders", placeOrderRequest{CustomerName: "Alice"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var order models.Order
	if err := json.NewDecoder(rec.Body).Decode(&order); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if order.ID != 1 {
		t.Errorf("order id = %d, want 1", order.ID)
	}
	if got := order.Total.StringFixed(2); got != "210.66" {
		t.Errorf("total = %s, want 210.66", got)
	}
	if len(order.Lines) != 2 {
		t.Errorf("order has %d lines, want 2", len(order.Lines))
	}

	// The cart is consumed by placement.
	if c.Len() != 0 {
		t.Errorf("cart has %d entries after placement, want 0", c.Len())
	}
}

func TestOrderHandler_Place_EmptyCart(t *testing.T) {
	f := newOrderFixture(t)

	rec := f.do(t, http.MethodPost, "/api/orders", placeOrderRequest{CustomerName: "Alice"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := len(f.ledger.List(0)); got != 0 {
		t.Errorf("ledger length = %d, want 0 after failed placement", got)
	}
}

func TestOrderHandler_Place_DefaultsToSessionUsername(t *testing.T) {
	f := newOrderFixture(t)
	f.carts.Get(f.session.Token).Increment(2)

	rec := f.do(t, http.MethodPost, "/api/orders", placeOrderRequest{})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var order models.Order
	if err := json.NewDecoder(rec.Body).Decode(&order); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if order.Customer != "alice" {
		t.Errorf("customer = %q, want session username", order.Customer)
	}
}

func TestOrderHandler_CatalogRemovalDoesNotTouchHistory(t *testing.T) {
	f := newOrderFixture(t)
	c := f.carts.Get(f.session.Token)
	c.Increment(1)
	c.Increment(1)

	if rec := f.do(t, http.MethodPost, "/api/orders", placeOrderRequest{CustomerName: "Alice"}); rec.Code != http.StatusCreated {
		t.Fatalf("place status = %d", rec.Code)
	}

	if err := f.catalog.Remove(1); err != nil {
		t.Fatalf("Remove(1) error = %v", err)
	}

	orders := f.ledger.List(0)
	if len(orders) != 1 {
		t.Fatalf("ledger length = %d, want 1", len(orders))
	}
	line := orders[0].Lines[0]
	if line.Name != "Burger" || line.Quantity != 2 {
		t.Errorf("historical line = %sx%d, want Burgerx2", line.Name, line.Quantity)
	}
}

func TestOrderHandler_ListAndMetrics(t *testing.T) {
	f := newOrderFixture(t)

	c := f.carts.Get(f.session.Token)
	c.Increment(1)
	c.Increment(1)
	c.Increment(2)
	if rec := f.do(t, http.MethodPost, "/api/orders", placeOrderRequest{CustomerName: "Alice"}); rec.Code != http.StatusCreated {
		t.Fatalf("first place status = %d", rec.Code)
	}

	c.Increment(2)
	if rec := f.do(t, http.MethodPost, "/api/orders", placeOrderRequest{CustomerName: "Bob", IsTeacher: true}); rec.Code != http.StatusCreated {
		t.Fatalf("second place status = %d", rec.Code)
	}

	rec := f.do(t, http.MethodGet, "/api/orders?limit=1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var recent []models.Order
	if err := json.NewDecoder(rec.Body).Decode(&recent); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(recent) != 1 || recent[0].ID != 2 {
		t.Errorf("limit=1 list = %+v, want only order 2", recent)
	}

	rec = f.do(t, http.MethodGet, "/api/orders/metrics", nil)
	var m struct {
		Count   int    `json:"count"`
		Revenue string `json:"revenue"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&m); err != nil {
		t.Fatalf("decoding metrics: %v", err)
	}
	if m.Count != 2 || m.Revenue != "280.86" {
		t.Errorf("metrics = %+v, want count 2 revenue 280.86", m)
	}

	rec = f.do(t, http.MethodGet, "/api/orders/breakdown", nil)
	var b models.CustomerBreakdown
	if err := json.NewDecoder(rec.Body).Decode(&b); err != nil {
		t.Fatalf("decoding breakdown: %v", err)
	}
	if b.Teachers != 1 || b.Students != 1 {
		t.Errorf("breakdown = %+v, want 1/1", b)
	}

	if rec = f.do(t, http.MethodGet, "/api/orders?limit=-2", nil); rec.Code != http.StatusBadRequest {
		t.Errorf("negative limit status = %d, want 400", rec.Code)
	}
}

func TestOrderHandler_Delete(t *testing.T) {
	f := newOrderFixture(t)

	if rec := f.do(t, http.MethodDelete, "/api/orders/1", nil); rec.Code != http.StatusNotFound {
		t.Errorf("delete on empty ledger status = %d, want 404", rec.Code)
	}
	if rec := f.do(t, http.MethodDelete, "/api/orders/abc", nil); rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric id status = %d, want 400", rec.Code)
	}

	f.carts.Get(f.session.Token).Increment(1)
	if rec := f.do(t, http.MethodPost, "/api/orders", placeOrderRequest{CustomerName: "Alice"}); rec.Code != http.StatusCreated {
		t.Fatalf("place status = %d", rec.Code)
	}
	if rec := f.do(t, http.MethodDelete, "/api/orders/1", nil); rec.Code != http.StatusOK {
		t.Errorf("delete status = %d, want 200", rec.Code)
	}
}
