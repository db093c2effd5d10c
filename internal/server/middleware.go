package server

import (
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portfolio/internal/auth"
)

// withSession attaches the caller's identity to the request context when a
// valid session token is present. Invalid or expired tokens are treated the
// same as no token at all.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
			token = c.Value
		} else if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimPrefix(h, "Bearer ")
		}
		if token != "" {
			if id, err := auth.ParseToken(token, s.Cfg.SessionSecret); err == nil {
				r = r.WithContext(auth.WithIdentity(r.Context(), id))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// guardAdmin redirects unauthenticated requests for the admin area to the
// login page, carrying the original destination as callbackUrl. The login
// page itself stays reachable.
func (s *Server) guardAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		protected := path == "/admin" || strings.HasPrefix(path, "/admin/")
		if protected && path != "/admin/login" {
			if _, ok := auth.IdentityFrom(r.Context()); !ok {
				dest := "/admin/login?callbackUrl=" + url.QueryEscape(r.URL.RequestURI())
				http.Redirect(w, r, dest, http.StatusSeeOther)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// requireAuth rejects API requests lacking a valid session token.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.IdentityFrom(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRW struct {
	http.ResponseWriter
	status int
}

func (w *statusRW) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusRW{ResponseWriter: w, status: 200}
		next.ServeHTTP(sw, r)
		log.Printf("%s %s -> %d (%s)", r.Method, r.URL.Path, sw.status, time.Since(start).Truncate(time.Millisecond))
	})
}
