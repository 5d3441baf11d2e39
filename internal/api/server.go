package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studyvault/backend/internal/auth"
	"github.com/studyvault/backend/internal/services"
)

type Server struct {
	AuthService     services.AuthService
	MistakeService  services.MistakeService
	RedoService     services.RedoService
	RevisionService services.RevisionService
	HeatmapService  services.HeatmapService
	ShuffleService  services.ShuffleService
	StreakService   services.StreakService
	HomeService     services.HomeService
	Tokens          *auth.TokenIssuer
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			r.Get("/home", s.handleHome)

			r.Get("/mistakes", s.handleListMistakes)
			r.Post("/mistakes", s.handleCreateMistake)
			r.Get("/mistakes/{id}", s.handleGetMistake)
			r.Put("/mistakes/{id}", s.handleUpdateMistake)
			r.Delete("/mistakes/{id}", s.handleDeleteMistake)

			r.Get("/redo/schedule", s.handleRedoSchedule)
			r.Get("/redo/attempts", s.handleRedoAttempts)
			r.Post("/redo/attempt", s.handleRedoAttempt)

			r.Get("/revision/slots", s.handleRevisionSlots)
			r.Post("/revision/schedule", s.handleScheduleRevision)
			r.Post("/revision/complete/{slotId}", s.handleCompleteRevision)

			r.Get("/heatmap/topics", s.handleHeatmapTopics)
			r.Get("/heatmap/topic/{topicId}", s.handleHeatmapTopic)

			r.Get("/shuffle/questions", s.handleShuffleQuestions)

			r.Post("/streak/activity", s.handleStreakActivity)
			r.Get("/streak/current", s.handleStreakCurrent)
			r.Get("/streak/stats", s.handleStreakStats)
		})
	})

	return r
}
