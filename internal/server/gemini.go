package server

import (
	"encoding/json"
	"log"
	"net/http"
)

type geminiRequest struct {
	Prompt string `json:"prompt"`
}

func (s *Server) handleGemini(w http.ResponseWriter, r *http.Request) {
	var req geminiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	text, err := s.Gemini.Generate(r.Context(), req.Prompt)
	if err != nil {
		log.Printf("gemini generate failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate content. Please check your API key configuration.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": text})
}
