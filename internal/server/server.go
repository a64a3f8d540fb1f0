package server

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/claude/liftweek/internal/models"
	"github.com/claude/liftweek/internal/planstore"
	"github.com/claude/liftweek/internal/storage"
	"github.com/go-chi/chi/v5"
)

// preferencesKey is the store key for the opaque client-preferences blob.
// It is distinct from the plan key, which only the gateway touches.
const preferencesKey = "userPreferences"

// Server holds dependencies for HTTP handlers.
type Server struct {
	gateway *planstore.Gateway
	store   storage.Store
	catalog models.Catalog
	log     *slog.Logger
	apiKey  string
	router  chi.Router

	// mutateMu serializes read-modify-write cycles on the plan so two API
	// callers cannot interleave a lost update within this process.
	mutateMu sync.Mutex
}

// New creates a Server with all routes configured.
func New(gateway *planstore.Gateway, store storage.Store, catalog models.Catalog, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		gateway: gateway,
		store:   store,
		catalog: catalog,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Read endpoints (no auth)
	s.router.Get("/api/v1/plan", s.handleGetPlan)
	s.router.Get("/api/v1/plan/{day}", s.handleGetDay)
	s.router.Get("/api/v1/stats", s.handleStats)
	s.router.Get("/api/v1/catalog", s.handleCatalog)
	s.router.Get("/api/v1/muscle-groups", s.handleMuscleGroups)
	s.router.Get("/api/v1/preferences", s.handleGetPreferences)

	// Mutation endpoints (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/plan/reset", s.handleResetWeek)
		r.Post("/api/v1/plan/{day}/reset", s.handleResetDay)
		r.Post("/api/v1/plan/{day}/exercises", s.handleAddExercise)
		r.Patch("/api/v1/plan/{day}/exercises/{id}", s.handleUpdateExercise)
		r.Delete("/api/v1/plan/{day}/exercises/{id}", s.handleRemoveExercise)
		r.Post("/api/v1/plan/{day}/reorder", s.handleReorder)
		r.Put("/api/v1/plan/{day}/focus", s.handleDayFocus)
		r.Put("/api/v1/preferences", s.handlePutPreferences)
	})
}
