package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/ledger"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/report"
)

// ReportHandler handles order export HTTP requests (admin only)
type ReportHandler struct {
	ledger   *ledger.Ledger
	exporter *report.Exporter
	log      *slog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(led *ledger.Ledger, exporter *report.Exporter, log *slog.Logger) *ReportHandler {
	return &ReportHandler{
		ledger:   led,
		exporter: exporter,
		log:      log,
	}
}

// CSV handles GET /api/reports/orders.csv
func (h *ReportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	out, err := h.exporter.CSV(h.ledger.List(0))
	if err != nil {
		h.log.Error("failed to export csv", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		h.log.Error("failed to write csv response", "error", err)
	}
}

// PDF handles GET /api/reports/orders.pdf
func (h *ReportHandler) PDF(w http.ResponseWriter, r *http.Request) {
	out, err := h.exporter.PDF(h.ledger.List(0))
	if err != nil {
		h.log.Error("failed to export pdf", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		h.log.Error("failed to write pdf response", "error", err)
	}
}
