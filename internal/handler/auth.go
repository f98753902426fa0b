package handler

import (
	"net/http"

	"github.com/msomdec/daily-log/internal/service"
	"go.uber.org/zap"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth   *service.AuthService
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// HandleSignup processes a JSON registration request.
// POST /api/auth/signup
// Request:  {"username":"...","email":"...","password":"..."}
// Response: {"id":"...","username":"...","email":"..."}
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := readJSON(w, r, &req); err != nil {
		writeServiceError(w, h.logger, "decode signup", err)
		return
	}

	user, err := h.auth.Signup(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, h.logger, "signup user", err)
		return
	}

	h.logger.Info("user signed up", zap.String("user_id", user.ID))
	writeJSON(w, http.StatusCreated, toUserDTO(user))
}

// HandleLogin processes a JSON login request.
// POST /api/auth/login
// Request:  {"email":"...","password":"..."}
// Response: {"token":"...","user":{...}}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readJSON(w, r, &req); err != nil {
		writeServiceError(w, h.logger, "decode login", err)
		return
	}

	res, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, h.logger, "login user", err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token: res.Token,
		User:  toUserDTO(res.User),
	})
}
