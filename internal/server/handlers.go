package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/claude/liftweek/internal/models"
	"github.com/claude/liftweek/internal/plan"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.gateway.Load(r.Context()))
}

func (s *Server) handleGetDay(w http.ResponseWriter, r *http.Request) {
	day := models.Weekday(chi.URLParam(r, "day"))
	if !models.ValidWeekday(day) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown day"})
		return
	}
	p := s.gateway.Load(r.Context())
	writeJSON(w, http.StatusOK, p[day])
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, plan.Stats(s.gateway.Load(r.Context())))
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if group := r.URL.Query().Get("muscleGroup"); group != "" {
		entries := s.catalog.ByMuscleGroup(group)
		if entries == nil {
			entries = []models.CatalogEntry{}
		}
		writeJSON(w, http.StatusOK, entries)
		return
	}
	writeJSON(w, http.StatusOK, s.catalog)
}

func (s *Server) handleMuscleGroups(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.MuscleGroups)
}

func (s *Server) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	day := models.Weekday(chi.URLParam(r, "day"))

	var input plan.ExerciseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	s.mutateMu.Lock()
	defer s.mutateMu.Unlock()

	p := s.gateway.Load(r.Context())
	updated, err := plan.AddExercise(p, day, input)
	if err != nil {
		writeMutationError(w, err)
		return
	}
	s.gateway.Save(r.Context(), updated)

	added := updated[day].Exercises[len(updated[day].Exercises)-1]
	writeJSON(w, http.StatusCreated, map[string]any{
		"exercise": added,
		"day":      updated[day],
		"warnings": s.adviseOn(added),
	})
}

// adviseOn runs the per-kind advisory validation for an exercise. Warnings
// never block a mutation; the numeric-looking fields stay opaque strings.
func (s *Server) adviseOn(ex models.Exercise) []string {
	warns := plan.KindOf(ex, s.catalog).Behavior().Validate(ex.Sets, ex.Reps)
	if warns == nil {
		warns = []string{}
	}
	return warns
}

func (s *Server) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	day := models.Weekday(chi.URLParam(r, "day"))
	id := chi.URLParam(r, "id")

	var upd plan.ExerciseUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	s.mutateMu.Lock()
	defer s.mutateMu.Unlock()

	p := s.gateway.Load(r.Context())
	updated, err := plan.UpdateExercise(p, day, id, upd)
	if err != nil {
		writeMutationError(w, err)
		return
	}
	s.gateway.Save(r.Context(), updated)
	writeJSON(w, http.StatusOK, updated[day])
}

func (s *Server) handleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	day := models.Weekday(chi.URLParam(r, "day"))
	id := chi.URLParam(r, "id")

	s.mutateMu.Lock()
	defer s.mutateMu.Unlock()

	p := s.gateway.Load(r.Context())
	updated, err := plan.RemoveExercise(p, day, id)
	if err != nil {
		writeMutationError(w, err)
		return
	}
	s.gateway.Save(r.Context(), updated)
	writeJSON(w, http.StatusOK, updated[day])
}

func (s *Server) handleReorder(w http.ResponseWriter, r *http.Request) {
	day := models.Weekday(chi.URLParam(r, "day"))

	var req struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	s.mutateMu.Lock()
	defer s.mutateMu.Unlock()

	p := s.gateway.Load(r.Context())
	updated, err := plan.Reorder(p, day, req.From, req.To)
	if err != nil {
		writeMutationError(w, err)
		return
	}
	s.gateway.Save(r.Context(), updated)
	writeJSON(w, http.StatusOK, updated[day])
}

func (s *Server) handleDayFocus(w http.ResponseWriter, r *http.Request) {
	day := models.Weekday(chi.URLParam(r, "day"))

	var req struct {
		MuscleGroups []string `json:"muscleGroups"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	s.mutateMu.Lock()
	defer s.mutateMu.Unlock()

	p := s.gateway.Load(r.Context())
	updated, err := plan.RenameDayFocus(p, day, req.MuscleGroups)
	if err != nil {
		writeMutationError(w, err)
		return
	}
	s.gateway.Save(r.Context(), updated)
	writeJSON(w, http.StatusOK, updated[day])
}

func (s *Server) handleResetDay(w http.ResponseWriter, r *http.Request) {
	day := models.Weekday(chi.URLParam(r, "day"))

	s.mutateMu.Lock()
	defer s.mutateMu.Unlock()

	p := s.gateway.Load(r.Context())
	updated, err := plan.ResetDay(p, day)
	if err != nil {
		writeMutationError(w, err)
		return
	}
	s.gateway.Save(r.Context(), updated)
	writeJSON(w, http.StatusOK, updated[day])
}

func (s *Server) handleResetWeek(w http.ResponseWriter, r *http.Request) {
	s.mutateMu.Lock()
	defer s.mutateMu.Unlock()

	updated := plan.ResetWeek(s.gateway.Load(r.Context()))
	s.gateway.Save(r.Context(), updated)
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	blob, found, err := s.store.Load(r.Context(), preferencesKey)
	if err != nil {
		s.log.Error("preferences load failed", "error", err)
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	if !found {
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(blob)
}

func (s *Server) handlePutPreferences(w http.ResponseWriter, r *http.Request) {
	blob, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading body: " + err.Error()})
		return
	}
	if !json.Valid(blob) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "preferences must be valid JSON"})
		return
	}
	if err := s.store.Save(r.Context(), preferencesKey, blob); err != nil {
		s.log.Error("preferences save failed", "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeMutationError maps the plan package's validation errors to responses.
func writeMutationError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if !errors.Is(err, plan.ErrUnknownDay) &&
		!errors.Is(err, plan.ErrIndexOutOfBounds) &&
		!errors.Is(err, plan.ErrNameRequired) {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
