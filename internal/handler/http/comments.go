package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sravani-k-5/vidspark-backend/internal/app"
	"github.com/sravani-k-5/vidspark-backend/internal/utils"
	"github.com/sravani-k-5/vidspark-backend/models"
)

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	var req models.CreateCommentRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "")
		return
	}

	comment, err := h.services.CommentService.Create(r.Context(), models.Comment{
		VideoID: req.VideoID,
		UserID:  userID,
		Text:    req.Text,
	})
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	utils.WriteJSON(w, models.CommentResponse{
		Message: app.MsgCommentPosted,
		Comment: comment,
	}, http.StatusCreated)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	if err = h.services.CommentService.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeError(w, r, err, "")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgCommentDeleted}, http.StatusOK)
}

// listComments serves GET /api/comments/{id}, where id is the video id.
func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.services.CommentService.ListByVideo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, app.MsgErrorFetchingComments)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}
