package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/qu18354531302/product-analytics-api/internal/usecases/authenticating"
	"github.com/qu18354531302/product-analytics-api/pkg/apiErrors"
	"github.com/qu18354531302/product-analytics-api/pkg/log"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	InviteCode string `json:"invite_code"`
}

func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidParameter, "Invalid request body", nil)
			return
		}

		token, err := service.Login(req.Username, req.Password)
		if err != nil {
			writeAuthError(w, logger, err)
			return
		}

		writeJSON(w, logger, map[string]string{"token": token})
	})
}

func Register(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidParameter, "Invalid request body", nil)
			return
		}

		user, err := service.Register(req.Username, req.Password, req.InviteCode)
		if err != nil {
			writeAuthError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(user); err != nil {
			logger.WithError(err).Error("failed to encode response")
		}
	})
}

func writeAuthError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Invalid username or password", nil)

	case errors.Is(err, authenticating.ErrInvalidInviteCode):
		apiErrors.WriteError(w, apiErrors.ErrInvalidInviteCode, "Invalid invite code", nil)

	case errors.Is(err, authenticating.ErrUserAlreadyExists):
		apiErrors.WriteError(w, apiErrors.ErrUserAlreadyExists, "Username already taken", nil)

	case errors.Is(err, authenticating.ErrMissingCredentials):
		apiErrors.WriteError(w, apiErrors.ErrMissingParameter, "Username and password are required", nil)

	default:
		writeServiceError(w, logger, err)
	}
}
