package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleRevisionSlots(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	includeAll := r.URL.Query().Get("include") == "all"

	slots, err := s.RevisionService.ListSlots(r.Context(), userID, includeAll)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, slots)
}

type scheduleRevisionRequest struct {
	TopicID    string `json:"topic_id"`
	Difficulty string `json:"difficulty"`
}

func (s *Server) handleScheduleRevision(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req scheduleRevisionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	slot, err := s.RevisionService.Schedule(r.Context(), userID, req.TopicID, req.Difficulty)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, slot)
}

func (s *Server) handleCompleteRevision(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	slotID, err := pathUUID(chi.URLParam(r, "slotId"), "slotId")
	if err != nil {
		handleError(w, r, err)
		return
	}

	slot, err := s.RevisionService.Complete(r.Context(), userID, slotID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, slot)
}
