package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/recommend"
)

// RecommendHandler handles recommendation HTTP requests
type RecommendHandler struct {
	engine *recommend.Engine
	log    *slog.Logger
}

// NewRecommendHandler creates a new recommendation handler
func NewRecommendHandler(engine *recommend.Engine, log *slog.Logger) *RecommendHandler {
	return &RecommendHandler{
		engine: engine,
		log:    log,
	}
}

type recommendationsView struct {
	Popular        []models.MenuItem `json:"popular"`
	HighlyRated    []models.MenuItem `json:"highlyRated"`
	BudgetFriendly []models.MenuItem `json:"budgetFriendly"`
}

// Get handles GET /api/recommendations: the three derived views at their
// default thresholds, as shown on every page render.
func (h *RecommendHandler) Get(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, recommendationsView{
		Popular:        h.engine.PopularItems(recommend.DefaultLimit),
		HighlyRated:    h.engine.HighlyRated(recommend.DefaultMinRating, recommend.DefaultLimit),
		BudgetFriendly: h.engine.BudgetFriendly(recommend.DefaultMaxPrice, recommend.DefaultLimit),
	}, h.log)
}
