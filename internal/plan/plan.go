// Package plan holds the pure mutation operations over a week plan. Every
// operation returns a new plan value and leaves its input untouched, so
// callers replace the plan they hold with the returned one and persist it.
package plan

import (
	"errors"
	"strings"

	"github.com/claude/liftweek/internal/models"
	"github.com/google/uuid"
)

var (
	// ErrUnknownDay is returned when a day name is not one of the seven
	// fixed weekday names.
	ErrUnknownDay = errors.New("unknown day")

	// ErrIndexOutOfBounds is returned by Reorder when either index falls
	// outside the day's exercise list.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrNameRequired is returned by AddExercise when the exercise name is
	// empty after trimming.
	ErrNameRequired = errors.New("name required")
)

// MaxFocusGroups caps how many muscle groups may combine in one day focus.
const MaxFocusGroups = 3

// FocusSeparator joins muscle-group names into a day focus string.
const FocusSeparator = " & "

// ExerciseInput carries the caller-supplied fields for a new exercise.
// Sets and reps stay opaque strings; weight and completion always start
// empty regardless of input.
type ExerciseInput struct {
	Name      string `json:"name"`
	CatalogID *int   `json:"dbId"`
	Sets      string `json:"sets"`
	Reps      string `json:"reps"`
}

// ExerciseUpdate names the fields UpdateExercise may overwrite. Nil fields
// are left alone; set fields replace the stored value wholesale.
type ExerciseUpdate struct {
	Name          *string        `json:"name"`
	Sets          *string        `json:"sets"`
	Reps          *string        `json:"reps"`
	Weight        *string        `json:"weight"`
	EffectiveSets *string        `json:"effectiveSets"`
	Status        *models.Status `json:"status"`
}

// AddExercise appends a new exercise to day's list with a fresh ID, status
// incomplete, and empty weight/completion. Existing exercise order is kept.
func AddExercise(p models.WeekPlan, day models.Weekday, in ExerciseInput) (models.WeekPlan, error) {
	if !models.ValidWeekday(day) {
		return nil, ErrUnknownDay
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	out := p.Clone()
	dp := out[day]
	dp.Exercises = append(dp.Exercises, models.Exercise{
		ID:        NewExerciseID(),
		CatalogID: in.CatalogID,
		Name:      name,
		Sets:      in.Sets,
		Reps:      in.Reps,
		Status:    models.StatusIncomplete,
	})
	out[day] = dp
	return out, nil
}

// NewExerciseID generates a unique id for an exercise instance. IDs only
// need to be unique within one plan; a UUID comfortably clears that bar.
func NewExerciseID() string {
	return "ex_" + uuid.NewString()
}

// UpdateExercise merges upd onto the exercise with the given id in day's
// list. A missing id is not an error: the plan comes back unchanged, which
// tolerates races with a concurrent removal in the caller.
func UpdateExercise(p models.WeekPlan, day models.Weekday, id string, upd ExerciseUpdate) (models.WeekPlan, error) {
	if !models.ValidWeekday(day) {
		return nil, ErrUnknownDay
	}

	out := p.Clone()
	dp := out[day]
	for i, ex := range dp.Exercises {
		if ex.ID != id {
			continue
		}
		if upd.Name != nil {
			ex.Name = *upd.Name
		}
		if upd.Sets != nil {
			ex.Sets = *upd.Sets
		}
		if upd.Reps != nil {
			ex.Reps = *upd.Reps
		}
		if upd.Weight != nil {
			ex.Weight = *upd.Weight
		}
		if upd.EffectiveSets != nil {
			ex.EffectiveSets = *upd.EffectiveSets
		}
		if upd.Status != nil && upd.Status.Valid() {
			ex.Status = *upd.Status
		}
		dp.Exercises[i] = ex
		out[day] = dp
		return out, nil
	}
	return out, nil
}

// RemoveExercise filters the exercise with the given id out of day's list.
// Removing an id that is not there is a no-op.
func RemoveExercise(p models.WeekPlan, day models.Weekday, id string) (models.WeekPlan, error) {
	if !models.ValidWeekday(day) {
		return nil, ErrUnknownDay
	}

	out := p.Clone()
	dp := out[day]
	kept := dp.Exercises[:0]
	for _, ex := range dp.Exercises {
		if ex.ID != id {
			kept = append(kept, ex)
		}
	}
	dp.Exercises = kept
	out[day] = dp
	return out, nil
}

// Reorder moves the exercise at from to position to within day's list,
// splice-style: the element is removed and reinserted, and every other
// exercise keeps its relative order. Both indices must be in [0, len).
func Reorder(p models.WeekPlan, day models.Weekday, from, to int) (models.WeekPlan, error) {
	if !models.ValidWeekday(day) {
		return nil, ErrUnknownDay
	}

	out := p.Clone()
	dp := out[day]
	n := len(dp.Exercises)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, ErrIndexOutOfBounds
	}

	ex := dp.Exercises[from]
	rest := append(dp.Exercises[:from], dp.Exercises[from+1:]...)
	dp.Exercises = append(rest[:to], append([]models.Exercise{ex}, rest[to:]...)...)
	out[day] = dp
	return out, nil
}

// ResetDay restores one day to the built-in starter plan, discarding every
// customization on that day including its focus name. Other days are kept
// as they are. There is no undo.
func ResetDay(p models.WeekPlan, day models.Weekday) (models.WeekPlan, error) {
	if !models.ValidWeekday(day) {
		return nil, ErrUnknownDay
	}

	out := p.Clone()
	out[day] = models.DefaultWeekPlan()[day]
	return out, nil
}

// ResetWeek replaces the whole plan with the built-in starter plan. Nothing
// from the prior plan survives, and there is no undo.
func ResetWeek(models.WeekPlan) models.WeekPlan {
	return models.DefaultWeekPlan()
}

// RenameDayFocus sets day's focus from the desired muscle-group labels.
// An empty list means "Rest"; a list containing "Rest" collapses to "Rest"
// no matter what else it carries; otherwise the first three distinct groups
// join with " & " and anything past the third is dropped. The cap lives
// here so it holds for every caller, not just the interactive toggles.
func RenameDayFocus(p models.WeekPlan, day models.Weekday, groups []string) (models.WeekPlan, error) {
	if !models.ValidWeekday(day) {
		return nil, ErrUnknownDay
	}

	out := p.Clone()
	dp := out[day]
	dp.Name = JoinFocus(groups)
	out[day] = dp
	return out, nil
}

// JoinFocus applies the focus-name join rule to a list of muscle groups.
func JoinFocus(groups []string) string {
	for _, g := range groups {
		if g == models.MuscleGroupRest {
			return models.MuscleGroupRest
		}
	}

	var distinct []string
	for _, g := range groups {
		seen := false
		for _, d := range distinct {
			if d == g {
				seen = true
				break
			}
		}
		if !seen {
			distinct = append(distinct, g)
		}
		if len(distinct) == MaxFocusGroups {
			break
		}
	}
	if len(distinct) == 0 {
		return models.MuscleGroupRest
	}
	return strings.Join(distinct, FocusSeparator)
}

// IsCardio reports whether ex resolves to a cardio catalog entry. Custom
// exercises (no catalog reference) are never cardio.
func IsCardio(ex models.Exercise, catalog models.Catalog) bool {
	return KindOf(ex, catalog) == models.KindCardio
}

// KindOf resolves the exercise kind through the catalog, defaulting to
// strength for custom exercises and dangling references.
func KindOf(ex models.Exercise, catalog models.Catalog) models.Kind {
	if ex.CatalogID == nil {
		return models.KindStrength
	}
	entry, ok := catalog.ByID(*ex.CatalogID)
	if !ok {
		return models.KindStrength
	}
	return entry.Kind()
}
