package api

import (
	"net/http"
)

func (s *Server) handleShuffleQuestions(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(w, r, err)
		return
	}

	questions, err := s.ShuffleService.Questions(r.Context(), userID, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, questions)
}
