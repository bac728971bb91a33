package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/opusarchive/opus/internal/service"
	"github.com/opusarchive/opus/internal/transport/http/middleware"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type addCommentInput struct {
	Content string `json:"content"`
}

func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input addCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	username := middleware.GetUsername(r.Context())
	comment, err := h.commentService.Add(r.Context(), username, r.PathValue("id"), input.Content)
	if err != nil {
		if errors.Is(err, service.ErrEmptyContent) {
			writeError(w, http.StatusBadRequest, "EMPTY_CONTENT", "Comment content is required")
		} else {
			log.Printf("ERROR add comment: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentService.ListFor(r.Context(), r.PathValue("id"))
	if err != nil {
		log.Printf("ERROR list comments: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"comments": comments})
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())
	err := h.commentService.Delete(r.Context(), username, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Comment not found")
		case errors.Is(err, service.ErrNotCommentAuthor):
			writeError(w, http.StatusForbidden, "NOT_AUTHOR", "Only the author can delete a comment")
		default:
			log.Printf("ERROR delete comment: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
