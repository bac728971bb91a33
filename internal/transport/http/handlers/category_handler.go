package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/opusarchive/opus/internal/service"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type categoryValueInput struct {
	Value string `json:"value"`
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	values, err := h.categoryService.List(r.Context(), r.PathValue("kind"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			writeError(w, http.StatusNotFound, "UNKNOWN_CATEGORY", "Unknown category kind")
		} else {
			log.Printf("ERROR list categories: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"values": values})
}

func (h *CategoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input categoryValueInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	added, err := h.categoryService.Add(r.Context(), r.PathValue("kind"), input.Value)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownCategory):
			writeError(w, http.StatusNotFound, "UNKNOWN_CATEGORY", "Unknown category kind")
		case errors.Is(err, service.ErrEmptyCategoryValue):
			writeError(w, http.StatusBadRequest, "EMPTY_VALUE", "Category value is required")
		default:
			log.Printf("ERROR add category: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"added": added})
}

func (h *CategoryHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var input categoryValueInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	removed, err := h.categoryService.Remove(r.Context(), r.PathValue("kind"), input.Value)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			writeError(w, http.StatusNotFound, "UNKNOWN_CATEGORY", "Unknown category kind")
		} else {
			log.Printf("ERROR remove category: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"removed": removed})
}
