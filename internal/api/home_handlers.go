package api

import (
	"net/http"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	summary, err := s.HomeService.Summary(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, summary)
}
