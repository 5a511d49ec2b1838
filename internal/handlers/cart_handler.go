package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/cart"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/catalog"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/middleware"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
)

// CartHandler handles the per-session cart HTTP requests
type CartHandler struct {
	carts   *cart.Store
	catalog *catalog.Catalog
	log     *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Store, cat *catalog.Catalog, log *slog.Logger) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: cat,
		log:     log,
	}
}

type cartView struct {
	Lines    []models.OrderLine `json:"lines"`
	Subtotal string             `json:"subtotal"`
}

// sessionCart resolves the calling session's cart. Handlers behind
// RequireSession always find one.
func (h *CartHandler) sessionCart(w http.ResponseWriter, r *http.Request) (*cart.Cart, bool) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Session token required", h.log)
		return nil, false
	}
	return h.carts.Get(session.Token), true
}

// View handles GET /api/cart: the resolved snapshot and subtotal. Entries
// orphaned by catalog removals are absent from the view.
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	c, ok := h.sessionCart(w, r)
	if !ok {
		return
	}

	WriteJSON(w, http.StatusOK, cartView{
		Lines:    c.Snapshot(h.catalog),
		Subtotal: c.Subtotal(h.catalog).StringFixed(2),
	}, h.log)
}

// Increment handles POST /api/cart/{itemId}/increment
func (h *CartHandler) Increment(w http.ResponseWriter, r *http.Request) {
	c, ok := h.sessionCart(w, r)
	if !ok {
		return
	}
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	if _, found := h.catalog.Get(id); !found {
		WriteError(w, http.StatusNotFound, "Menu item not found", h.log)
		return
	}

	c.Increment(id)
	WriteJSON(w, http.StatusOK, map[string]int{"quantity": c.Quantity(id)}, h.log)
}

// Decrement handles POST /api/cart/{itemId}/decrement
func (h *CartHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	c, ok := h.sessionCart(w, r)
	if !ok {
		return
	}
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	c.Decrement(id)
	WriteJSON(w, http.StatusOK, map[string]int{"quantity": c.Quantity(id)}, h.log)
}

// Clear handles DELETE /api/cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	c, ok := h.sessionCart(w, r)
	if !ok {
		return
	}

	c.Clear()
	WriteJSON(w, http.StatusOK, map[string]string{"status": "cleared"}, h.log)
}

func (h *CartHandler) itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "itemId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return 0, false
	}
	return id, true
}
