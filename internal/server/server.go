package server

import (
	"database/sql"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"portfolio/internal/config"
	"portfolio/internal/gemini"
)

const CookieName = "session_token"

type Server struct {
	DB     *sql.DB
	Cfg    *config.Config
	Gemini *gemini.Client

	tmpl map[string]*template.Template
}

func New(db *sql.DB, cfg *config.Config, templateDir string) (*Server, error) {
	templates := map[string]*template.Template{}
	layout := filepath.Join(templateDir, "layout.html")
	pages, err := filepath.Glob(filepath.Join(templateDir, "*.html"))
	if err != nil {
		return nil, err
	}
	for _, page := range pages {
		if filepath.Base(page) == "layout.html" {
			continue
		}
		t, err := template.ParseFiles(layout, page)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(page), ".html")
		templates[name] = t
	}
	return &Server{
		DB:     db,
		Cfg:    cfg,
		Gemini: gemini.NewClient(cfg.GeminiAPIKey),
		tmpl:   templates,
	}, nil
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(withAccessLog)
	r.Use(s.withSession)
	r.Use(s.guardAdmin)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/logout", s.handleLogout)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", s.handleListProjects)
			r.With(s.requireAuth).Post("/", s.handleCreateProject)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetProject)
				r.With(s.requireAuth).Put("/", s.handleUpdateProject)
				r.With(s.requireAuth).Delete("/", s.handleDeleteProject)
			})
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", s.handleListBlogPosts)
			r.With(s.requireAuth).Post("/", s.handleCreateBlogPost)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetBlogPost)
				r.With(s.requireAuth).Put("/", s.handleUpdateBlogPost)
				r.With(s.requireAuth).Patch("/", s.handlePatchBlogPost)
				r.With(s.requireAuth).Delete("/", s.handleDeleteBlogPost)
			})
		})

		r.Post("/contact", s.handleContact)
		r.With(s.requireAuth).Get("/messages", s.handleListMessages)
		r.With(s.requireAuth).Post("/upload", s.handleUpload)
		r.Post("/gemini", s.handleGemini)
	})

	r.Get("/", s.handleIndex)
	r.Get("/admin", s.handleAdmin)
	r.Get("/admin/login", s.handleLoginPage)
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.Cfg.UploadDir))))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))

	return r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.routes().ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	t, ok := s.tmpl[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write json: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
