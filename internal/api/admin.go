package api

import (
	"net/http"
	"strconv"

	"github.com/SableHealth/Screener/internal/audit"
)

type AdminHandler struct {
	audit audit.Store
}

func NewAdminHandler(a audit.Store) *AdminHandler {
	return &AdminHandler{audit: a}
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if h.audit == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "auditing not configured"})
		return
	}
	stats, err := h.audit.GetStats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) Predictions(w http.ResponseWriter, r *http.Request) {
	if h.audit == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "auditing not configured"})
		return
	}
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	records, err := h.audit.ListRecent(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if records == nil {
		records = []*audit.PredictionRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}
