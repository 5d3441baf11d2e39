package api

import (
	"net/http"
)

type streakActivityRequest struct {
	ActivityType string `json:"activity_type"`
}

func (s *Server) handleStreakActivity(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req streakActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	status, err := s.StreakService.LogActivity(r.Context(), userID, req.ActivityType)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, status)
}

func (s *Server) handleStreakCurrent(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	current, err := s.StreakService.Current(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, current)
}

func (s *Server) handleStreakStats(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	stats, err := s.StreakService.Stats(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, stats)
}
