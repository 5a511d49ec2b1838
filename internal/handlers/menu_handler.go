package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/catalog"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/imagestore"
)

// maxImageBytes caps uploaded menu images.
const maxImageBytes = 5 << 20

// MenuHandler handles menu catalog HTTP requests
type MenuHandler struct {
	catalog *catalog.Catalog
	images  *imagestore.Store
	log     *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(cat *catalog.Catalog, images *imagestore.Store, log *slog.Logger) *MenuHandler {
	return &MenuHandler{
		catalog: cat,
		images:  images,
		log:     log,
	}
}

type addItemRequest struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Rating   float64  `json:"rating"`
	Category string   `json:"category"`
	Tags     []string `json:"tags,omitempty"`
}

// List handles GET /api/menu with an optional category query parameter.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	WriteJSON(w, http.StatusOK, h.catalog.List(category), h.log)
}

// Get handles GET /api/menu/{itemId}
func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	item, found := h.catalog.Get(id)
	if !found {
		WriteError(w, http.StatusNotFound, "Menu item not found", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, item, h.log)
}

// Categories handles GET /api/menu/categories
func (h *MenuHandler) Categories(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.catalog.Categories(), h.log)
}

// Add handles POST /api/menu (admin only)
func (h *MenuHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid price", h.log)
		return
	}

	item, err := h.catalog.Add(req.Name, req.Category, price, req.Rating, req.Tags)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrEmptyName):
			WriteError(w, http.StatusBadRequest, "Dish name must not be empty", h.log)
		case errors.Is(err, catalog.ErrInvalidPrice):
			WriteError(w, http.StatusBadRequest, "Price must be positive", h.log)
		case errors.Is(err, catalog.ErrInvalidRating):
			WriteError(w, http.StatusBadRequest, "Rating must be between 0 and 5", h.log)
		default:
			h.log.Error("failed to add menu item", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	h.log.Info("menu item added", "item_id", item.ID, "name", item.Name)
	WriteJSON(w, http.StatusCreated, item, h.log)
}

// Remove handles DELETE /api/menu/{itemId} (admin only). The image payload
// goes with the item; historical orders keep their captured lines.
func (h *MenuHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	if err := h.catalog.Remove(id); err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			WriteError(w, http.StatusNotFound, "Menu item not found", h.log)
			return
		}
		h.log.Error("failed to remove menu item", "item_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	h.images.Remove(id)

	h.log.Info("menu item removed", "item_id", id)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "removed"}, h.log)
}

// PutImage handles PUT /api/menu/{itemId}/image (admin only). The body is
// the raw image payload; bytes that do not decode are rejected rather than
// stored.
func (h *MenuHandler) PutImage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	if _, found := h.catalog.Get(id); !found {
		WriteError(w, http.StatusNotFound, "Menu item not found", h.log)
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxImageBytes))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Unable to read image body", h.log)
		return
	}
	if !imagestore.Decodable(data) {
		WriteError(w, http.StatusBadRequest, "Image bytes are not a supported format", h.log)
		return
	}

	h.images.Put(id, data)
	h.log.Info("menu item image stored", "item_id", id, "bytes", len(data))
	WriteJSON(w, http.StatusOK, map[string]string{"status": "stored"}, h.log)
}

// GetImage handles GET /api/menu/{itemId}/image
func (h *MenuHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	data, found := h.images.Get(id)
	if !found {
		WriteError(w, http.StatusNotFound, "No image for this item", h.log)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.log.Error("failed to write image response", "item_id", id, "error", err)
	}
}

// itemID parses and validates the itemId URL parameter.
func (h *MenuHandler) itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "itemId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.log.Warn("invalid item ID format", "itemId", raw, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return 0, false
	}
	return id, true
}
