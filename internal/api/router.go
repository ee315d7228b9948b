package api

import (
	"net/http"

	"github.com/reepower84-png/rocket-call-realestate/internal/inquiry"
)

// NewRouter creates the API router with all endpoints registered. The
// admin password hash and session secret come from configuration,
// hashed and loaded once at startup.
func NewRouter(svc *inquiry.Service, passwordHash []byte, secret string, secureCookies bool) http.Handler {
	mux := http.NewServeMux()

	inquiryHandler := &InquiryHandler{Service: svc}
	authHandler := &AuthHandler{PasswordHash: passwordHash, Secret: secret, Secure: secureCookies}

	requireSession := RequireSession(secret)

	// Public: lead-capture submission and session endpoints.
	mux.HandleFunc("POST /api/inquiry", inquiryHandler.Submit)
	mux.HandleFunc("POST /api/auth", authHandler.Login)
	mux.HandleFunc("GET /api/auth", authHandler.Check)
	mux.HandleFunc("DELETE /api/auth", authHandler.Logout)

	// Admin: inquiry listing and mutation require a session cookie.
	mux.Handle("GET /api/inquiries", requireSession(http.HandlerFunc(inquiryHandler.List)))
	mux.Handle("PATCH /api/inquiries", requireSession(http.HandlerFunc(inquiryHandler.UpdateStatus)))
	mux.Handle("DELETE /api/inquiries", requireSession(http.HandlerFunc(inquiryHandler.Delete)))

	return mux
}
