package rest

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Sardtok/kingsheep-ladder/internal/service"
	"github.com/Sardtok/kingsheep-ladder/internal/store"
	"github.com/Sardtok/kingsheep-ladder/internal/web"
	"github.com/gorilla/mux"
)

// Handler contains dependencies for HTTP handlers.
type Handler struct {
	ladder   *service.LadderService
	renderer *web.Renderer
}

// NewHandler creates a new handler.
func NewHandler(ladder *service.LadderService, renderer *web.Renderer) *Handler {
	return &Handler{
		ladder:   ladder,
		renderer: renderer,
	}
}

// HealthCheck handles health check requests.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "kingsheep-ladder",
		"version": "1.0.0",
	})
}

// GetLadder returns the league-wide standings with leader flags.
func (h *Handler) GetLadder(w http.ResponseWriter, r *http.Request) {
	rows, err := h.ladder.LeagueTable(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrLogUnavailable) {
			respondError(w, http.StatusServiceUnavailable, "Statistics not available", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to build ladder", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"standings": rows,
		"count":     len(rows),
	})
}

// GetTeamHistory returns one team's totals and match-by-match history. An
// unknown team yields an empty page with found=false, not an error.
func (h *Handler) GetTeamHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	team := vars["team"]

	page, err := h.ladder.TeamPage(r.Context(), team)
	if err != nil {
		if errors.Is(err, store.ErrLogUnavailable) {
			respondError(w, http.StatusServiceUnavailable, "Statistics not available", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to build team history", err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

// LadderPage renders the league-wide HTML page.
func (h *Handler) LadderPage(w http.ResponseWriter, r *http.Request) {
	rows, err := h.ladder.LeagueTable(r.Context())
	if err != nil {
		pageError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Ladder(w, rows); err != nil {
		log.Printf("Ladder page render error: %v", err)
	}
}

// TeamPage renders the drill-down HTML page for one team.
func (h *Handler) TeamPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	team := vars["team"]

	page, err := h.ladder.TeamPage(r.Context(), team)
	if err != nil {
		pageError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Team(w, page); err != nil {
		log.Printf("Team page render error: %v", err)
	}
}

// pageError writes a plain-text failure for the HTML pages. Only a missing
// log is a hard failure; everything else degrades earlier in the pipeline.
func pageError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrLogUnavailable) {
		http.Error(w, "Statistics not available", http.StatusServiceUnavailable)
		return
	}
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
