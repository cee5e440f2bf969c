// internal/app/features/login/handler.go
package login

import (
	"encoding/json"
	"net/http"
	"strings"

	uierrors "github.com/acervodigital/oedhub/internal/app/features/errors"
	"github.com/acervodigital/oedhub/internal/app/system/auth"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Handler signs the seeded admin in and out. The hub has a single local
// admin account from configuration; there is no user collection.
type Handler struct {
	SessionMgr *auth.SessionManager

	// AdminEmail and AdminPasswordHash come from configuration. The hash
	// is bcrypt; a plaintext password in config is hashed at startup.
	AdminEmail        string
	AdminPasswordHash string

	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, adminEmail, adminPasswordHash string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		SessionMgr:        sessionMgr,
		AdminEmail:        adminEmail,
		AdminPasswordHash: adminPasswordHash,
		ErrLog:            errLog,
		Log:               logger,
	}
}

type loginRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
}

type loginResponse struct {
	LoginID string `json:"loginId"`
	Role    string `json:"role"`
}

// HandleLogin handles POST /login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequest(w, "invalid JSON body")
		return
	}

	loginID := strings.ToLower(strings.TrimSpace(req.LoginID))
	if loginID == "" || req.Password == "" {
		h.ErrLog.BadRequest(w, "loginId and password are required")
		return
	}

	if h.AdminEmail == "" || h.AdminPasswordHash == "" {
		h.Log.Warn("login attempted with no admin account configured")
		uierrors.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}

	if loginID != strings.ToLower(h.AdminEmail) ||
		bcrypt.CompareHashAndPassword([]byte(h.AdminPasswordHash), []byte(req.Password)) != nil {
		h.Log.Info("failed login", zap.String("login_id", loginID))
		uierrors.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}

	user := &auth.SessionUser{
		ID:      "admin",
		Name:    "Administrador",
		LoginID: h.AdminEmail,
		Role:    "admin",
	}
	if err := h.SessionMgr.SignIn(w, r, user); err != nil {
		h.ErrLog.Internal(w, "login: save session", err)
		return
	}

	uierrors.WriteJSON(w, http.StatusOK, loginResponse{LoginID: user.LoginID, Role: user.Role})
}

// HandleLogout handles POST /logout.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.SessionMgr.SignOut(w, r)
	w.WriteHeader(http.StatusNoContent)
}

// HashPassword bcrypt-hashes a configured plaintext password at startup.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
