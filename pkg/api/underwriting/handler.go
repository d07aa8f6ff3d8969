// Package underwriting exposes the report endpoint: it decodes a deal,
// runs the calculation engine, and returns the full report. Persistence and
// caching are best-effort; a computed report is never withheld because a
// collaborator is down.
package underwriting

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"deal_underwriting/pkg/core/analysis"
	"deal_underwriting/pkg/core/assumption"
	"deal_underwriting/pkg/core/narrative"
	"deal_underwriting/pkg/core/report"
	"deal_underwriting/pkg/core/store"
	"deal_underwriting/pkg/models"
)

// Handler serves underwriting report requests.
type Handler struct {
	tables    *assumption.RateTables
	cache     store.ReportCache
	repo      *store.DealRepo
	narrative *narrative.Service
}

// NewHandler wires the handler. tables, cache, repo, and narrativeSvc may
// each be nil; the corresponding step is skipped.
func NewHandler(tables *assumption.RateTables, cache store.ReportCache, repo *store.DealRepo, narrativeSvc *narrative.Service) *Handler {
	return &Handler{tables: tables, cache: cache, repo: repo, narrative: narrativeSvc}
}

// ReportResponse is the report endpoint payload.
type ReportResponse struct {
	Deal      models.Deal                  `json:"deal"`
	Report    *analysis.UnderwritingReport `json:"report"`
	Markdown  string                       `json:"markdown,omitempty"`
	Narrative *narrative.Narrative         `json:"narrative,omitempty"`
}

// HandleReport computes the underwriting report for a posted deal.
// Query params: markdown=1 includes the rendered document, narrative=1
// includes the prose summary.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var deal models.Deal
	if err := json.NewDecoder(r.Body).Decode(&deal); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Cached reports short-circuit everything for known deals.
	if h.cache != nil && deal.ID != "" {
		if cached, ok := h.cache.Get(r.Context(), cacheKey(deal.ID)); ok {
			fmt.Printf("[UNDERWRITING] cache hit for deal %s\n", deal.ID)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	if h.tables != nil {
		h.tables.ApplyDefaults(&deal)
	}

	result := analysis.Analyze(deal)

	resp := ReportResponse{Deal: deal, Report: result}
	if r.URL.Query().Get("markdown") == "1" {
		resp.Markdown = report.BuildMarkdown(deal, result)
	}
	if r.URL.Query().Get("narrative") == "1" && h.narrative != nil {
		n := h.narrative.Generate(r.Context(), deal, result)
		resp.Narrative = &n
	}

	h.persist(r.Context(), &deal, result, resp)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// persist saves and caches best-effort. Failures are logged, never surfaced.
func (h *Handler) persist(ctx context.Context, deal *models.Deal, result *analysis.UnderwritingReport, resp ReportResponse) {
	if h.repo != nil {
		if err := h.repo.Save(ctx, deal, result); err != nil {
			fmt.Printf("[UNDERWRITING] save failed for deal %s: %v\n", deal.ID, err)
		}
	}
	if h.cache != nil && deal.ID != "" {
		if payload, err := json.Marshal(resp); err == nil {
			if err := h.cache.Set(ctx, cacheKey(deal.ID), string(payload)); err != nil {
				fmt.Printf("[UNDERWRITING] cache set failed for deal %s: %v\n", deal.ID, err)
			}
		}
	}
}

func cacheKey(dealID string) string {
	return "report:" + dealID
}
