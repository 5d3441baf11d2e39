package api

import (
	"net/http"
)

func (s *Server) handleRedoSchedule(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	items, err := s.RedoService.ListSchedule(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, items)
}

func (s *Server) handleRedoAttempts(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	items, err := s.RedoService.ListAttempts(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, items)
}

type redoAttemptRequest struct {
	RedoID    string `json:"redo_id"`
	IsCorrect bool   `json:"is_correct"`
}

func (s *Server) handleRedoAttempt(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req redoAttemptRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	attempt, err := s.RedoService.RecordAttempt(r.Context(), userID, req.RedoID, req.IsCorrect)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, attempt)
}
