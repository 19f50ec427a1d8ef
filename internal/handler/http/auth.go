package http

import (
	"fmt"
	"net/http"

	"github.com/sravani-k-5/vidspark-backend/internal/app"
	"github.com/sravani-k-5/vidspark-backend/internal/logger"
	"github.com/sravani-k-5/vidspark-backend/internal/utils"
	"github.com/sravani-k-5/vidspark-backend/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(r, &user); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	log.Info().Str("user_id", registeredUser.UserID).Msg("user registered")
	utils.WriteJSON(w, models.SignupResponse{
		Message: app.MsgUserRegistered,
		User:    registeredUser,
	}, http.StatusCreated)
}

// login checks the credentials and answers with a signed token both in the
// body and in the Authorization header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, models.User{Email: req.Email, Password: req.Password})
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	log.Debug().Str("user_id", foundUser.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		Message: app.MsgLoginSuccessful,
		Token:   token.SignedString,
		User: models.LoginUser{
			Name:  foundUser.Name,
			Email: foundUser.Email,
		},
	}, http.StatusOK)
}
