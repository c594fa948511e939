package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.Message{Message: "Bienvenue"}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials.Email, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrEmailAlreadyRegistered):
			log.Err(err).Msg("email already registered")
			http.Error(w, "email already registered", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", registeredUser.ID).Msg("user successfully registered")

	utils.WriteJSON(w, models.Message{Email: registeredUser.Email, Message: "user created"}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	ok, err := h.services.AuthService.ValidLogin(ctx, credentials.Email, credentials.Password)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during login check")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !ok {
		log.Error().Str("email", credentials.Email).Msg("invalid email/password")
		http.Error(w, "invalid email/password", http.StatusUnauthorized)
		return
	}

	sessionID, err := h.services.AuthService.CreateSession(ctx, credentials.Email)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	// the account vanished between the credential check and the session write
	if sessionID == "" {
		log.Error().Str("email", credentials.Email).Msg("no user to open a session for")
		http.Error(w, "invalid email/password", http.StatusUnauthorized)
		return
	}

	log.Debug().Str("email", credentials.Email).Msg("user successfully logged in")

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
	})
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", sessionID))

	utils.WriteJSON(w, models.Message{Email: credentials.Email, Message: "logged in"}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	if err := h.services.AuthService.DestroySession(ctx, user.ID); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("session destruction failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	utils.WriteJSON(w, models.Message{Email: user.Email, Message: "logged out"}, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	utils.WriteJSON(w, models.Message{Email: user.Email}, http.StatusOK)
}

func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ResetRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resetToken, err := h.services.AuthService.IssueResetToken(ctx, request.Email)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Str("email", request.Email).Msg("no user registered with this email")
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during reset token issue")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.ResetResponse{Email: request.Email, ResetToken: resetToken}, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var update models.PasswordUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	err := h.services.AuthService.UpdatePassword(ctx, update.ResetToken, update.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidResetToken):
			log.Err(err).Msg("invalid reset token")
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during password update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.Message{Email: update.Email, Message: "Password updated"}, http.StatusOK)
}
