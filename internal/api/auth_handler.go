package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/api/middleware"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/api/shared"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	keys       auth.KeyDirectory
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
// If logger is nil, a default logger will be used.
func NewAuthHandler(keys auth.KeyDirectory, jwtService auth.JWTService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		keys:       keys,
		jwtService: jwtService,
		logger:     logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /auth/login: it exchanges an API key for a signed
// time-limited token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"API key required",
			"Please provide an API key in the request body.")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"API key required",
			"Please provide an API key in the request body.")
		return
	}

	identity, ok := h.keys.Lookup(req.APIKey)
	if !ok {
		// Key value is deliberately absent from the log.
		h.logger.Warn("login attempt with unknown API key",
			slog.String("remote_addr", r.RemoteAddr))
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			"Invalid API key",
			"The provided API key is not valid.")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), identity.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Authentication failed",
			"An error occurred during authentication.", err)
		return
	}

	h.logger.Info("user authenticated", slog.Int64("user_id", identity.ID))

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Message:   "Authentication successful",
		Token:     token,
		User:      identity,
		ExpiresIn: fmt.Sprintf("%dh", int(h.jwtService.TokenLifetime().Hours())),
	})
}

// Verify handles GET /auth/verify. The auth middleware has already
// validated the token, so reaching this handler means it is good; the
// decoded claims are echoed back.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			"Authentication required",
			"No token provided. Please include Authorization header.")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, VerifyResponse{
		Message: "Token is valid",
		User: TokenUser{
			UserID:    claims.UserID,
			IssuedAt:  claims.IssuedAt,
			ExpiresAt: claims.ExpiresAt,
		},
	})
}
