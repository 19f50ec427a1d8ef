package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sravani-k-5/vidspark-backend/internal/app"
	"github.com/sravani-k-5/vidspark-backend/internal/utils"
	"github.com/sravani-k-5/vidspark-backend/models"
)

func (h *Handler) toggleLikedVideo(w http.ResponseWriter, r *http.Request) {
	h.toggleMembership(w, r, models.MembershipLiked)
}

func (h *Handler) toggleSharedVideo(w http.ResponseWriter, r *http.Request) {
	h.toggleMembership(w, r, models.MembershipShared)
}

func (h *Handler) likedVideos(w http.ResponseWriter, r *http.Request) {
	h.membershipVideos(w, r, models.MembershipLiked)
}

func (h *Handler) sharedVideos(w http.ResponseWriter, r *http.Request) {
	h.membershipVideos(w, r, models.MembershipShared)
}

// toggleMembership flips {videoId} in the caller's set of the given kind and
// answers with the full updated set under "likedVideos" or "sharedVideos".
func (h *Handler) toggleMembership(w http.ResponseWriter, r *http.Request, kind models.MembershipKind) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	set, err := h.services.MembershipService.Toggle(r.Context(), userID, kind, chi.URLParam(r, "videoId"))
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	utils.WriteJSON(w, map[string]any{
		kind.ResponseField(): set,
		"message":            app.MsgActionSuccessful,
	}, http.StatusOK)
}

func (h *Handler) membershipVideos(w http.ResponseWriter, r *http.Request, kind models.MembershipKind) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	videos, err := h.services.MembershipService.ListVideos(r.Context(), userID, kind)
	if err != nil {
		writeError(w, r, err, "Error fetching "+string(kind)+" videos")
		return
	}

	utils.WriteJSON(w, map[string]any{kind.ResponseField(): videos}, http.StatusOK)
}
