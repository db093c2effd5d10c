package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"portfolio/internal/auth"
	"portfolio/internal/models"
)

const placeholderPostImage = "/placeholder.svg?height=300&width=700"

type blogPostRequest struct {
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Content string   `json:"content"`
	Image   string   `json:"image"`
	Tags    []string `json:"tags"`
	Status  string   `json:"status"`
}

func (req *blogPostRequest) valid() bool {
	return req.Title != "" && req.Excerpt != "" && req.Content != ""
}

func (s *Server) handleListBlogPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.BlogFilter{
		Tag:     q.Get("tag"),
		Status:  q.Get("status"),
		Exclude: q.Get("exclude"),
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	// Anonymous callers only ever see published posts, whatever status
	// filter they ask for. Authenticated callers default to all statuses.
	if _, ok := auth.IdentityFrom(r.Context()); !ok {
		filter.Status = models.StatusPublished
	}

	posts, err := models.ListBlogPosts(s.DB, filter)
	if err != nil {
		log.Printf("blog list failed, serving fallback data: %v", err)
		w.Header().Set("X-Fallback-Data", "true")
		writeJSON(w, http.StatusOK, models.FallbackBlogPosts())
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleGetBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := models.GetBlogPost(s.DB, chi.URLParam(r, "id"))
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Blog post not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch blog post")
		return
	}

	// Drafts must not reveal their existence to unauthenticated callers.
	if post.Status == models.StatusDraft {
		if _, ok := auth.IdentityFrom(r.Context()); !ok {
			writeError(w, http.StatusNotFound, "Blog post not found")
			return
		}
	}
	writeJSON(w, http.StatusOK, post)
}

func (s *Server) handleCreateBlogPost(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	var req blogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.valid() {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.Image == "" {
		req.Image = placeholderPostImage
	}
	if req.Status == "" {
		req.Status = models.StatusDraft
	}
	if req.Status != models.StatusDraft && req.Status != models.StatusPublished {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	post := &models.BlogPost{
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Content: req.Content,
		Image:   req.Image,
		Tags:    req.Tags,
		Status:  req.Status,
		Author:  models.Author{ID: identity.ID, Name: identity.Name},
	}
	id, err := models.CreateBlogPost(s.DB, post)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create blog post")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Blog post created successfully",
		"postId":  id,
	})
}

func (s *Server) handleUpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	var req blogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.valid() {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.Status == "" {
		req.Status = models.StatusDraft
	}
	if req.Status != models.StatusDraft && req.Status != models.StatusPublished {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	post := &models.BlogPost{
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Content: req.Content,
		Image:   req.Image,
		Tags:    req.Tags,
		Status:  req.Status,
	}
	err := models.UpdateBlogPost(s.DB, chi.URLParam(r, "id"), post)
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Blog post not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update blog post")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Blog post updated successfully"})
}

func (s *Server) handlePatchBlogPost(w http.ResponseWriter, r *http.Request) {
	var patch models.BlogPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if patch.Status != nil && *patch.Status != models.StatusDraft && *patch.Status != models.StatusPublished {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	err := models.PatchBlogPost(s.DB, chi.URLParam(r, "id"), patch)
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Blog post not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update blog post")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Blog post updated successfully"})
}

func (s *Server) handleDeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	err := models.DeleteBlogPost(s.DB, chi.URLParam(r, "id"))
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Blog post not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete blog post")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Blog post deleted successfully"})
}
