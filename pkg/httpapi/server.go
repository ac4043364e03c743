package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/superhelt/wow-raid-planner/pkg/db"
)

// Server exposes the raid planner over a JSON HTTP API
type Server struct {
	database db.Database
	logger   *zap.Logger
	now      func() time.Time
}

func NewServer(database db.Database, logger *zap.Logger) *Server {
	return &Server{
		database: database,
		logger:   logger,
		now:      time.Now,
	}
}

// Router builds the route tree for the API
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/players", s.handleListPlayers)

	r.Route("/raids", func(r chi.Router) {
		r.Get("/", s.handleListRaids)

		r.Route("/{date}", func(r chi.Router) {
			r.Get("/", s.handleGetRaid)
			r.Get("/bench", s.handleBench)
			r.Post("/finalize", s.handleFinalize)
			r.Post("/reopen", s.handleReopen)

			r.Post("/signups", s.handleAddSignups)
			r.Delete("/signups/{player}", s.handleRemoveSignup)

			r.Post("/encounters", s.handleAddEncounter)
			r.Route("/encounters/{boss}", func(r chi.Router) {
				r.Delete("/", s.handleDeleteEncounter)
				r.Get("/suggestion", s.handleSuggest)
				r.Put("/players/{player}", s.handleAssignPlayer)
				r.Delete("/players/{player}", s.handleRemovePlayer)
			})

			r.Post("/events", s.handleAddEvent)
			r.Delete("/events/{time}", s.handleRemoveEvent)
		})
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("handled request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
