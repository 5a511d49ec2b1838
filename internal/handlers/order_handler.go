package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/cart"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/catalog"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/ledger"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/metrics"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/middleware"
)

// OrderHandler handles order ledger HTTP requests
type OrderHandler struct {
	ledger  *ledger.Ledger
	carts   *cart.Store
	catalog *catalog.Catalog
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewOrderHandler creates a new order handler. metrics may be nil in tests.
func NewOrderHandler(led *ledger.Ledger, carts *cart.Store, cat *catalog.Catalog, m *metrics.Metrics, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		ledger:  led,
		carts:   carts,
		catalog: cat,
		metrics: m,
		log:     log,
	}
}

type placeOrderRequest struct {
	CustomerName string `json:"customerName"`
	IsTeacher    bool   `json:"isTeacher"`
}

// Place handles POST /api/orders. The session cart is snapshotted against
// the catalog, committed as an order, and cleared on success. A blank
// customer name falls back to the session's username.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Session token required", h.log)
		return
	}

	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if req.CustomerName == "" {
		req.CustomerName = session.Username
	}

	c := h.carts.Get(session.Token)
	order, err := h.ledger.Place(c.Snapshot(h.catalog), req.CustomerName, req.IsTeacher)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrEmptyOrder):
			WriteError(w, http.StatusBadRequest, "Cart is empty", h.log)
		case errors.Is(err, ledger.ErrBlankCustomer):
			WriteError(w, http.StatusBadRequest, "Customer name must not be blank", h.log)
		default:
			h.log.Error("failed to place order", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	c.Clear()
	if h.metrics != nil {
		h.metrics.RecordOrder(order.Total.InexactFloat64())
	}

	h.log.Info("order placed",
		"order_id", order.ID,
		"customer", order.Customer,
		"lines", len(order.Lines),
		"total", order.Total.StringFixed(2),
	)
	WriteJSON(w, http.StatusCreated, order, h.log)
}

// List handles GET /api/orders with an optional limit query parameter.
// Without a limit, orders come back oldest first; with one, the most recent
// limit orders come back newest first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			WriteError(w, http.StatusBadRequest, "Invalid limit", h.log)
			return
		}
		limit = parsed
	}
	WriteJSON(w, http.StatusOK, h.ledger.List(limit), h.log)
}

// Metrics handles GET /api/orders/metrics
func (h *OrderHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.ledger.Metrics(), h.log)
}

// Breakdown handles GET /api/orders/breakdown
func (h *OrderHandler) Breakdown(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.ledger.CustomerBreakdown(), h.log)
}

// Delete handles DELETE /api/orders/{orderId} (admin only)
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "orderId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	if err := h.ledger.Delete(id); err != nil {
		if errors.Is(err, ledger.ErrOrderNotFound) {
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}
		h.log.Error("failed to delete order", "order_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("order deleted", "order_id", id)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"}, h.log)
}
