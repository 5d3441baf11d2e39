package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studyvault/backend/internal/services"
)

func (s *Server) handleListMistakes(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(w, r, err)
		return
	}

	list, err := s.MistakeService.List(r.Context(), userID, limit, offset)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, list)
}

func (s *Server) handleCreateMistake(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var input services.MistakeInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	entry, err := s.MistakeService.Create(r.Context(), userID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, entry)
}

func (s *Server) handleGetMistake(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id, err := pathUUID(chi.URLParam(r, "id"), "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	entry, err := s.MistakeService.Get(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, entry)
}

func (s *Server) handleUpdateMistake(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id, err := pathUUID(chi.URLParam(r, "id"), "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var input services.MistakeInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	entry, err := s.MistakeService.Update(r.Context(), userID, id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, entry)
}

func (s *Server) handleDeleteMistake(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id, err := pathUUID(chi.URLParam(r, "id"), "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.MistakeService.Delete(r.Context(), userID, id); err != nil {
		handleError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, "mistake deleted")
}
