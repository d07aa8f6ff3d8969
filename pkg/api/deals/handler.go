// Package deals exposes simple persistence endpoints for deal records.
package deals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"deal_underwriting/pkg/core/store"
	"deal_underwriting/pkg/models"
)

// Handler serves deal CRUD requests backed by the deal repository.
type Handler struct {
	repo  *store.DealRepo
	cache store.ReportCache
}

// NewHandler wires the handler. cache may be nil.
func NewHandler(repo *store.DealRepo, cache store.ReportCache) *Handler {
	return &Handler{repo: repo, cache: cache}
}

// HandleDeals routes GET (load one by id, or list) and POST (save).
func (h *Handler) HandleDeals(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	}

	if h.repo == nil {
		http.Error(w, "persistence is not configured", http.StatusServiceUnavailable)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r)
	case http.MethodPost:
		h.handleSave(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		deals, err := h.repo.List(r.Context(), limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(deals)
		return
	}

	deal, report, err := h.repo.Load(r.Context(), id)
	if errors.Is(err, store.ErrDealNotFound) {
		http.Error(w, "deal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"deal":   deal,
		"report": report,
	})
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var deal models.Deal
	if err := json.NewDecoder(r.Body).Decode(&deal); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Saving without a report: the next report request recomputes it.
	if err := h.repo.Save(r.Context(), &deal, nil); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	// The deal changed, so any cached report is stale.
	if h.cache != nil {
		_ = h.cache.Invalidate(r.Context(), "report:"+deal.ID)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(deal)
}
