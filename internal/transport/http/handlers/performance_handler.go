package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/opusarchive/opus/internal/service"
	"github.com/opusarchive/opus/internal/transport/http/middleware"
	"github.com/opusarchive/opus/pkg/validator"
)

type PerformanceHandler struct {
	performanceService *service.PerformanceService
	searchService      *service.SearchService
}

func NewPerformanceHandler(performanceService *service.PerformanceService, searchService *service.SearchService) *PerformanceHandler {
	return &PerformanceHandler{
		performanceService: performanceService,
		searchService:      searchService,
	}
}

func (h *PerformanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreatePerformanceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidatePerformance(input.Date, input.Venue, input.Conductor, input.EnsembleName, input.Instrument, input.SubPart, input.Pieces); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	username := middleware.GetUsername(r.Context())
	perf, err := h.performanceService.Create(r.Context(), username, input)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPieces) {
			writeError(w, http.StatusBadRequest, "EMPTY_PIECES", "At least one program piece is required")
		} else {
			log.Printf("ERROR create performance: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, perf)
}

func (h *PerformanceHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())
	perfs, err := h.performanceService.ListMine(r.Context(), username)
	if err != nil {
		log.Printf("ERROR list performances: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"performances": perfs})
}

func (h *PerformanceHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	perfs, err := h.performanceService.ListPublic(r.Context())
	if err != nil {
		log.Printf("ERROR list public performances: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"performances": perfs})
}

func (h *PerformanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.UpdatePerformanceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	username := middleware.GetUsername(r.Context())
	perf, err := h.performanceService.Update(r.Context(), username, r.PathValue("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPerformanceNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Performance not found")
		case errors.Is(err, service.ErrNotOwner):
			writeError(w, http.StatusForbidden, "NOT_OWNER", "Only the owner can update a performance")
		case errors.Is(err, service.ErrEmptyPieces):
			writeError(w, http.StatusBadRequest, "EMPTY_PIECES", "At least one program piece is required")
		default:
			log.Printf("ERROR update performance: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, perf)
}

func (h *PerformanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())
	err := h.performanceService.Delete(r.Context(), username, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPerformanceNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Performance not found")
		case errors.Is(err, service.ErrNotOwner):
			writeError(w, http.StatusForbidden, "NOT_OWNER", "Only the owner can delete a performance")
		default:
			log.Printf("ERROR delete performance: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PerformanceHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	scope := q.Get("scope")
	if scope == "" {
		scope = service.SearchScopeMine
	}

	filter := service.PerformanceFilter{
		Venue:      q.Get("venue"),
		Conductor:  q.Get("conductor"),
		Ensemble:   q.Get("ensemble"),
		Instrument: q.Get("instrument"),
		DateFrom:   q.Get("date_from"),
		DateTo:     q.Get("date_to"),
	}

	username := middleware.GetUsername(r.Context())
	perfs, err := h.searchService.Search(r.Context(), username, scope, filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidScope) {
			writeError(w, http.StatusBadRequest, "INVALID_SCOPE", "Scope must be mine or public")
		} else {
			log.Printf("ERROR search performances: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"performances": perfs})
}
