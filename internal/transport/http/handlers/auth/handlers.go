package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"fintrack/internal/domain/auth"
	"fintrack/internal/transport/http/api"
	"fintrack/internal/transport/http/middleware"
)

type Handler struct {
	Store       *auth.Store
	JWTSecret   string
	AllowSignup bool
}

func NewHandler(store *auth.Store, jwtSecret string, allowSignup bool) *Handler {
	return &Handler{Store: store, JWTSecret: jwtSecret, AllowSignup: allowSignup}
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if !h.AllowSignup {
		api.Fail(w, http.StatusForbidden, "signup_disabled", "self signup is disabled", reqID)
		return
	}

	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email == "" || !strings.Contains(email, "@") {
		api.Fail(w, http.StatusBadRequest, "invalid_email", "a valid email is required", reqID)
		return
	}
	if len(payload.Password) < 8 {
		api.Fail(w, http.StatusBadRequest, "weak_password", "password must be at least 8 characters", reqID)
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "register_failed", "failed to register", reqID)
		return
	}
	userID, err := h.Store.CreateUser(r.Context(), email, hash)
	if errors.Is(err, auth.ErrEmailTaken) {
		api.Fail(w, http.StatusConflict, "email_taken", "email already registered", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "register_failed", "failed to register", reqID)
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, auth.Claims{UserID: userID, Email: email}, auth.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "register_failed", "failed to register", reqID)
		return
	}
	api.Created(w, tokenResponse{Token: token, Email: email}, reqID)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	user, err := h.Store.FindUserByEmail(r.Context(), payload.Email)
	if errors.Is(err, auth.ErrUserNotFound) {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login_failed", "failed to log in", reqID)
		return
	}
	if err := auth.CheckPassword(user.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", reqID)
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, auth.Claims{UserID: user.ID, Email: user.Email}, auth.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login_failed", "failed to log in", reqID)
		return
	}
	_ = h.Store.UpdateLastLogin(r.Context(), user.ID)
	api.Success(w, tokenResponse{Token: token, Email: user.Email}, reqID)
}
