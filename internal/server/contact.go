package server

import (
	"encoding/json"
	"log"
	"net/http"

	"portfolio/internal/mail"
	"portfolio/internal/models"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "Name, email, and message are required")
		return
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if _, err := models.CreateMessage(s.DB, msg); err != nil {
		log.Printf("contact message save failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	if !mail.Configured(s.Cfg) {
		log.Printf("email service not configured, logged message from %s <%s>", req.Name, req.Email)
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Message logged (email service not configured)",
		})
		return
	}

	if err := mail.SendContact(s.Cfg, msg); err != nil {
		log.Printf("contact mail send failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Message sent successfully"})
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := models.ListMessages(s.DB)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	writeJSON(w, http.StatusOK, messages)
}
