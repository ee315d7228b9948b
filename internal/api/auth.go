package api

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/reepower84-png/rocket-call-realestate/internal/auth"
)

// AuthHandler handles the admin session endpoints.
type AuthHandler struct {
	// PasswordHash is the bcrypt hash of the configured admin password.
	PasswordHash []byte
	Secret       string
	// Secure marks the session cookie Secure (production behind TLS).
	Secure bool
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/auth.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "잘못된 요청 형식입니다.")
		return
	}

	if req.Password == "" {
		jsonError(w, http.StatusBadRequest, "비밀번호를 입력해주세요.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.PasswordHash, []byte(req.Password)); err != nil {
		slog.Warn("admin login failed", "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, "비밀번호가 올바르지 않습니다.")
		return
	}

	token, err := auth.GenerateToken(h.Secret)
	if err != nil {
		slog.Error("failed to generate session token", "error", err)
		jsonError(w, http.StatusInternalServerError, "로그인 중 오류가 발생했습니다.")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionExpiry.Seconds()),
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteStrictMode,
	})

	slog.Info("admin logged in", "remote", r.RemoteAddr)
	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "로그인 성공",
	})
}

// Check handles GET /api/auth.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	authenticated := false
	if cookie, err := r.Cookie(auth.CookieName); err == nil && cookie.Value != "" {
		authenticated = auth.ValidateToken(h.Secret, cookie.Value) == nil
	}
	jsonResponse(w, http.StatusOK, map[string]bool{"authenticated": authenticated})
}

// Logout handles DELETE /api/auth.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteStrictMode,
	})

	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "로그아웃 성공",
	})
}
