package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleHeatmapTopics(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	topics, err := s.HeatmapService.ListTopics(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, topics)
}

func (s *Server) handleHeatmapTopic(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	topicID, err := pathUUID(chi.URLParam(r, "topicId"), "topicId")
	if err != nil {
		handleError(w, r, err)
		return
	}

	topic, err := s.HeatmapService.GetTopic(r.Context(), userID, topicID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, topic)
}
