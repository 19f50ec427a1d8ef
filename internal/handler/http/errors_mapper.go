package http

import (
	"errors"
	"net/http"

	"github.com/sravani-k-5/vidspark-backend/internal/app"
	"github.com/sravani-k-5/vidspark-backend/internal/logger"
	"github.com/sravani-k-5/vidspark-backend/internal/service"
	"github.com/sravani-k-5/vidspark-backend/internal/store"
	"github.com/sravani-k-5/vidspark-backend/internal/utils"
	"github.com/sravani-k-5/vidspark-backend/models"
)

// Sentinels in this map never wrap one another, so at most one of them
// matches a given error.
var errorStatusMap = map[error]int{
	ErrInvalidJSON:       http.StatusBadRequest,
	ErrNoUserIDInContext: http.StatusInternalServerError,
	utils.ErrEmptyBody:   http.StatusBadRequest,

	utils.ErrMissingAuthorization:      http.StatusUnauthorized,
	utils.ErrInvalidAuthorization:      http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenWithoutUserID:      http.StatusBadRequest,

	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrWrongPassword:         http.StatusUnauthorized,
	service.ErrUnknownMembershipKind: http.StatusBadRequest,
	service.ErrNoFileUploaded:        http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrCommentNotFound:    http.StatusNotFound,
	store.ErrCommentNotOwned:    http.StatusForbidden,
	store.ErrStoreUnavailable:   http.StatusServiceUnavailable,
}

// errorMessageMap holds the client-facing text for errors whose message is
// part of the API contract.
var errorMessageMap = map[error]string{
	ErrInvalidJSON:     app.MsgInvalidJSON,
	utils.ErrEmptyBody: app.MsgInvalidJSON,

	utils.ErrMissingAuthorization:      app.MsgNoToken,
	utils.ErrInvalidAuthorization:      app.MsgInvalidOrExpiredToken,
	service.ErrTokenIsExpired:          app.MsgInvalidOrExpiredToken,
	service.ErrTokenIsExpiredOrInvalid: app.MsgInvalidOrExpiredToken,
	service.ErrTokenWithoutUserID:      app.MsgTokenWithoutUserID,

	service.ErrInvalidDataProvided:   app.MsgInvalidDataProvided,
	service.ErrWrongPassword:         app.MsgInvalidEmailOrPassword,
	service.ErrUnknownMembershipKind: app.MsgUnknownVideoList,
	service.ErrNoFileUploaded:        app.MsgNoFileUploaded,

	store.ErrEmailAlreadyExists: app.MsgUserAlreadyExists,
	store.ErrNoUserWasFound:     app.MsgUserNotFound,
	store.ErrCommentNotFound:    app.MsgCommentNotFound,
	store.ErrCommentNotOwned:    app.MsgCommentNotOwned,
	store.ErrStoreUnavailable:   app.MsgServiceUnavailable,
}

const defaultErrorMessage = app.MsgInternalServerError

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing message for err, or fallback
// when err is not one of the known sentinels. Raw error text is never
// exposed.
func messageFromError(err error, fallback string) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	if fallback == "" {
		return defaultErrorMessage
	}
	return fallback
}

// writeError logs err and responds with {"message": ...} and the mapped
// status code. fallback is the message used for unclassified failures.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.MessageResponse{Message: messageFromError(err, fallback)}, status)
}
