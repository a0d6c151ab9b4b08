package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"orderdesk/internal/auth/session"
)

const flashCookieName = "flash"

type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}

type AuthController struct {
	credentials CredentialVerifier
	sessions    *session.Manager
	logger      *zap.Logger
}

func NewAuthController(credentials CredentialVerifier, sessions *session.Manager, logger *zap.Logger) *AuthController {
	return &AuthController{
		credentials: credentials,
		sessions:    sessions,
		logger:      logger,
	}
}

// LoginPage hands the presentation layer what it needs to render the
// form: any one-shot flash left by a failed attempt. Reading the flash
// consumes it.
func (c *AuthController) LoginPage(w http.ResponseWriter, r *http.Request) {
	payload := map[string]string{}
	if flash := popFlash(w, r); flash != "" {
		payload["flash"] = flash
	}
	c.writeJSON(w, http.StatusOK, payload)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	ok, err := c.credentials.Verify(r.Context(), username, password)
	if err != nil {
		logger.Error("credential check failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if !ok {
		logger.Warn("login rejected", zap.String("username", username))
		setFlash(w, "Invalid credentials")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := c.sessions.SetCookie(w, username); err != nil {
		logger.Error("issuing session failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	logger.Info("admin logged in", zap.String("username", username))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	c.sessions.ClearCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(message),
		Path:     "/login",
		MaxAge:   60,
		HttpOnly: true,
	})
}

func popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/login",
		MaxAge:   -1,
		HttpOnly: true,
	})
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}

func (c *AuthController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
