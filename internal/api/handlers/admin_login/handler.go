package admin_login

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/RIZZA-BookingService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "dados inválidos"
	msgInvalidCredentials = "credenciais inválidas"
)

type Handler struct {
	sessions SessionManager
	username string
	password string
	logger   Logger
}

func NewHandler(sessions SessionManager, username, password string, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		username: username,
		password: password,
		logger:   logger,
	}
}

// HandleLogin POST /api/admin/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) == 1
	if !userOK || !passOK {
		h.logger.Warn("POST /admin/login - Invalid credentials: username=%q", req.Username)
		handlers.RespondUnauthorized(w, msgInvalidCredentials)
		return
	}

	if err := h.sessions.Set(w, req.Username); err != nil {
		h.logger.Error("POST /admin/login - Failed to set session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in: username=%q", req.Username)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Ok: true})
}

// HandleLogout POST /api/admin/logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	h.logger.Info("POST /admin/logout - Admin logged out")
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Ok: true})
}
