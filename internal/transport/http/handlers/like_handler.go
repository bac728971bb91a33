package handlers

import (
	"log"
	"net/http"

	"github.com/opusarchive/opus/internal/service"
	"github.com/opusarchive/opus/internal/transport/http/middleware"
)

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

func (h *LikeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())
	liked, count, err := h.likeService.Toggle(r.Context(), username, r.PathValue("id"))
	if err != nil {
		log.Printf("ERROR toggle like: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"liked": liked,
		"count": count,
	})
}

func (h *LikeHandler) Status(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())
	performanceID := r.PathValue("id")

	count, err := h.likeService.Count(r.Context(), performanceID)
	if err != nil {
		log.Printf("ERROR count likes: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	liked, err := h.likeService.HasLiked(r.Context(), username, performanceID)
	if err != nil {
		log.Printf("ERROR check like: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"liked": liked,
		"count": count,
	})
}
