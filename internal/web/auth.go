package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rajservice12693/alankar/internal/backend"
	"github.com/rajservice12693/alankar/internal/session"
)

// LoginPage handles GET /login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	// Already authenticated sessions go straight to the console.
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if _, err := session.Verify(s.Secret, cookie.Value); err == nil {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
	}
	s.Templates.Render(w, "login.html", &PageData{Title: "Sign in"})
}

// LoginSubmit handles POST /login. Credential checks are fully delegated to
// the backend; only a 200 writes a session.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	emailID := strings.TrimSpace(r.FormValue("emailId"))
	password := r.FormValue("password")

	if emailID == "" || password == "" {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Sign in",
			Error: "Enter your email and password.",
		})
		return
	}

	userName, err := s.Backend.Login(r.Context(), emailID, password)
	if err != nil {
		slog.Warn("login failed", "email", emailID, "error", err)
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Sign in",
			Error: loginError(err),
		})
		return
	}

	token, err := session.Issue(s.Secret, userName)
	if err != nil {
		slog.Error("failed to issue session", "error", err)
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Sign in",
			Error: "Sign-in failed, please try again.",
		})
		return
	}

	setSessionCookie(w, token)
	slog.Info("user logged in", "user", userName)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// loginError maps a backend login failure to the message shown on the form.
func loginError(err error) string {
	var be *backend.Error
	if errors.As(err, &be) {
		return be.Message
	}
	return "Sign-in failed, please try again."
}

// Logout handles POST /logout.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
