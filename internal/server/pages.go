package server

import (
	"net/http"
	"strings"

	"portfolio/internal/auth"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())
	s.render(w, "index", map[string]any{"User": identity})
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	// An already-authenticated user lands on the dashboard, or on the page
	// that originally triggered the redirect. Only same-site paths are
	// honored; "//host" is protocol-relative and would leave the site.
	if _, ok := auth.IdentityFrom(r.Context()); ok {
		dest := r.URL.Query().Get("callbackUrl")
		if !strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "//") {
			dest = "/admin"
		}
		http.Redirect(w, r, dest, http.StatusSeeOther)
		return
	}
	s.render(w, "login", map[string]any{"CallbackURL": r.URL.Query().Get("callbackUrl")})
}

func (s *Server) handleAdmin(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())
	s.render(w, "admin", map[string]any{"User": identity})
}
