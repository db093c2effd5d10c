package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"portfolio/internal/models"
)

const placeholderProjectImage = "/placeholder.svg?height=300&width=500"

type projectRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Image           string   `json:"image"`
	Technologies    []string `json:"technologies"`
	Github          string   `json:"github"`
	Demo            string   `json:"demo"`
	Category        string   `json:"category"`
	Features        []string `json:"features"`
}

func (req *projectRequest) valid() bool {
	return req.Title != "" && req.Description != "" && len(req.Technologies) > 0 &&
		req.Github != "" && req.Category != ""
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.ProjectFilter{
		Category: q.Get("category"),
		Exclude:  q.Get("exclude"),
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	projects, err := models.ListProjects(s.DB, filter)
	if err != nil {
		// Keep the public site navigable when the store is down.
		log.Printf("projects list failed, serving fallback data: %v", err)
		w.Header().Set("X-Fallback-Data", "true")
		writeJSON(w, http.StatusOK, models.FallbackProjects())
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := models.GetProject(s.DB, chi.URLParam(r, "id"))
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch project")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.valid() {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.Image == "" {
		req.Image = placeholderProjectImage
	}

	project := req.toModel()
	id, err := models.CreateProject(s.DB, project)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create project")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Project created successfully",
		"projectId": id,
	})
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.valid() {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	err := models.UpdateProject(s.DB, chi.URLParam(r, "id"), req.toModel())
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update project")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Project updated successfully"})
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	err := models.DeleteProject(s.DB, chi.URLParam(r, "id"))
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Project deleted successfully"})
}

func (req *projectRequest) toModel() *models.Project {
	return &models.Project{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Image:           req.Image,
		Technologies:    req.Technologies,
		Github:          req.Github,
		Demo:            req.Demo,
		Category:        req.Category,
		Features:        req.Features,
	}
}
