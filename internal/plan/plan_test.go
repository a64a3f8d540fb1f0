package plan

import (
	"encoding/json"
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/claude/liftweek/internal/models"
)

func snapshot(t *testing.T, p models.WeekPlan) string {
	t.Helper()
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// TestAddExercise verifies that adding appends exactly one exercise to the
// named day, leaves every other day untouched, and starts the exercise
// incomplete with no weight or completed amount.
func TestAddExercise(t *testing.T) {
	p := models.DefaultWeekPlan()
	before := snapshot(t, p)

	updated, err := AddExercise(p, models.Sunday, ExerciseInput{Name: "Plank", Sets: "3", Reps: "60"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(updated[models.Sunday].Exercises); got != 1 {
		t.Fatalf("Sunday exercises = %d, want 1", got)
	}
	ex := updated[models.Sunday].Exercises[0]
	if ex.Name != "Plank" || ex.Sets != "3" || ex.Reps != "60" {
		t.Errorf("exercise = %+v, want Plank/3/60", ex)
	}
	if ex.Status != models.StatusIncomplete {
		t.Errorf("status = %q, want %q", ex.Status, models.StatusIncomplete)
	}
	if ex.Weight != "" || ex.EffectiveSets != "" {
		t.Errorf("weight = %q, effectiveSets = %q, want both empty", ex.Weight, ex.EffectiveSets)
	}
	if ex.ID == "" {
		t.Error("exercise id is empty")
	}

	for _, day := range models.Weekdays {
		if day == models.Sunday {
			continue
		}
		if !reflect.DeepEqual(updated[day], p[day]) {
			t.Errorf("day %s changed by AddExercise on Sunday", day)
		}
	}

	// Input plan must be untouched
	if got := snapshot(t, p); got != before {
		t.Error("AddExercise mutated its input plan")
	}
}

// TestAddExerciseAppendsInOrder verifies new exercises land at the end and
// existing order is preserved.
func TestAddExerciseAppendsInOrder(t *testing.T) {
	p := models.DefaultWeekPlan()

	updated, err := AddExercise(p, models.Monday, ExerciseInput{Name: "Dips"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exercises := updated[models.Monday].Exercises
	if got := len(exercises); got != 4 {
		t.Fatalf("Monday exercises = %d, want 4", got)
	}
	if exercises[3].Name != "Dips" {
		t.Errorf("last exercise = %q, want Dips", exercises[3].Name)
	}
	for i, want := range []string{"Barbell Bench Press", "Incline Dumbbell Press", "Barbell Curls"} {
		if exercises[i].Name != want {
			t.Errorf("exercise[%d] = %q, want %q", i, exercises[i].Name, want)
		}
	}
}

// TestAddExerciseValidation verifies the two hard failure conditions: an
// unknown day name and an empty (after trimming) exercise name.
func TestAddExerciseValidation(t *testing.T) {
	p := models.DefaultWeekPlan()

	if _, err := AddExercise(p, "Funday", ExerciseInput{Name: "Plank"}); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("unknown day error = %v, want ErrUnknownDay", err)
	}
	if _, err := AddExercise(p, models.Monday, ExerciseInput{Name: "   "}); !errors.Is(err, ErrNameRequired) {
		t.Errorf("blank name error = %v, want ErrNameRequired", err)
	}
}

// TestAddExerciseUniqueIDs verifies consecutive adds get distinct ids.
func TestAddExerciseUniqueIDs(t *testing.T) {
	p := models.DefaultWeekPlan()
	seen := make(map[string]bool)

	for i := 0; i < 20; i++ {
		var err error
		p, err = AddExercise(p, models.Friday, ExerciseInput{Name: "Lunges"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	for _, ex := range p[models.Friday].Exercises {
		if seen[ex.ID] {
			t.Fatalf("duplicate exercise id %q", ex.ID)
		}
		seen[ex.ID] = true
	}
}

// TestUpdateExercise verifies a shallow merge: only set fields change.
func TestUpdateExercise(t *testing.T) {
	p := models.DefaultWeekPlan()
	id := p[models.Monday].Exercises[0].ID

	weight := "185"
	status := models.StatusCompleted
	updated, err := UpdateExercise(p, models.Monday, id, ExerciseUpdate{Weight: &weight, Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ex := updated[models.Monday].Exercises[0]
	if ex.Weight != "185" {
		t.Errorf("weight = %q, want 185", ex.Weight)
	}
	if ex.Status != models.StatusCompleted {
		t.Errorf("status = %q, want completed", ex.Status)
	}
	// Untouched fields keep their values
	if ex.Name != "Barbell Bench Press" || ex.Sets != "4" || ex.Reps != "8-10" {
		t.Errorf("unset fields changed: %+v", ex)
	}
}

// TestUpdateExerciseMissingID verifies that updating an id that is not in
// the day is a tolerated no-op, not an error. The UI may race a removal.
func TestUpdateExerciseMissingID(t *testing.T) {
	p := models.DefaultWeekPlan()

	name := "Ghost"
	updated, err := UpdateExercise(p, models.Monday, "no-such-id", ExerciseUpdate{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := snapshot(t, updated), snapshot(t, p); got != want {
		t.Error("plan changed by update of missing id")
	}
}

// TestUpdateExerciseIgnoresInvalidStatus verifies an unknown status value
// is dropped rather than stored, keeping the enum invariant.
func TestUpdateExerciseIgnoresInvalidStatus(t *testing.T) {
	p := models.DefaultWeekPlan()
	id := p[models.Monday].Exercises[0].ID

	bogus := models.Status("paused")
	updated, err := UpdateExercise(p, models.Monday, id, ExerciseUpdate{Status: &bogus})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := updated[models.Monday].Exercises[0].Status; got != models.StatusIncomplete {
		t.Errorf("status = %q, want incomplete", got)
	}
}

// TestRemoveExerciseIdempotent verifies removal filters by id and a second
// removal of the same id is a no-op.
func TestRemoveExerciseIdempotent(t *testing.T) {
	p := models.DefaultWeekPlan()
	id := p[models.Monday].Exercises[1].ID

	once, err := RemoveExercise(p, models.Monday, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(once[models.Monday].Exercises); got != 2 {
		t.Fatalf("exercises after remove = %d, want 2", got)
	}
	for _, ex := range once[models.Monday].Exercises {
		if ex.ID == id {
			t.Fatalf("removed id %q still present", id)
		}
	}

	twice, err := RemoveExercise(once, models.Monday, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := snapshot(t, twice), snapshot(t, once); got != want {
		t.Error("second removal of same id changed the plan")
	}
}

func ids(exercises []models.Exercise) []string {
	out := make([]string, len(exercises))
	for i, ex := range exercises {
		out[i] = ex.ID
	}
	return out
}

// TestReorder verifies splice semantics: the moved exercise lands at the
// target index and everything else keeps its relative order.
func TestReorder(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string // expected id order, from the default ex1,ex2,ex3
	}{
		{"first to last", 0, 2, []string{"ex2", "ex3", "ex1"}},
		{"last to first", 2, 0, []string{"ex3", "ex1", "ex2"}},
		{"middle down", 1, 2, []string{"ex1", "ex3", "ex2"}},
		{"no move", 1, 1, []string{"ex1", "ex2", "ex3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.DefaultWeekPlan()
			updated, err := Reorder(p, models.Monday, tt.from, tt.to)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := ids(updated[models.Monday].Exercises); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestReorderPreservesIDMultiset verifies reordering never adds or drops an
// exercise, whatever the indices.
func TestReorderPreservesIDMultiset(t *testing.T) {
	p := models.DefaultWeekPlan()
	before := ids(p[models.Monday].Exercises)
	sort.Strings(before)

	for from := 0; from < 3; from++ {
		for to := 0; to < 3; to++ {
			updated, err := Reorder(p, models.Monday, from, to)
			if err != nil {
				t.Fatalf("Reorder(%d,%d): %v", from, to, err)
			}
			after := ids(updated[models.Monday].Exercises)
			sort.Strings(after)
			if !reflect.DeepEqual(after, before) {
				t.Errorf("Reorder(%d,%d) changed id multiset: %v", from, to, after)
			}
		}
	}
}

// TestReorderOutOfBounds verifies both indices are bounds-checked.
func TestReorderOutOfBounds(t *testing.T) {
	p := models.DefaultWeekPlan()

	cases := []struct{ from, to int }{
		{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {7, 7},
	}
	for _, tc := range cases {
		if _, err := Reorder(p, models.Monday, tc.from, tc.to); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("Reorder(%d,%d) error = %v, want ErrIndexOutOfBounds", tc.from, tc.to, err)
		}
	}

	// An empty day has no valid indices at all.
	if _, err := Reorder(p, models.Sunday, 0, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Reorder on empty day error = %v, want ErrIndexOutOfBounds", err)
	}
}

// TestResetDay verifies one day reverts to the starter plan and every other
// day keeps its customizations.
func TestResetDay(t *testing.T) {
	p := models.DefaultWeekPlan()
	p, err := AddExercise(p, models.Monday, ExerciseInput{Name: "Dips"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err = RenameDayFocus(p, models.Monday, []string{"Legs"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err = AddExercise(p, models.Friday, ExerciseInput{Name: "Rows"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := ResetDay(p, models.Monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(updated[models.Monday], models.DefaultWeekPlan()[models.Monday]) {
		t.Error("Monday did not revert to the default day")
	}
	if got := len(updated[models.Friday].Exercises); got != 1 {
		t.Errorf("Friday exercises = %d, want 1 (other days must survive a reset)", got)
	}
}

// TestResetWeek verifies the whole plan reverts to the default with nothing
// salvaged.
func TestResetWeek(t *testing.T) {
	p := models.DefaultWeekPlan()
	p, err := AddExercise(p, models.Saturday, ExerciseInput{Name: "Face Pulls"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := ResetWeek(p)
	if !reflect.DeepEqual(updated, models.DefaultWeekPlan()) {
		t.Error("ResetWeek did not return the default plan")
	}
}

// TestRenameDayFocus verifies the join rule: dedupe, 3-group cap, "Rest"
// dominance, and the empty-list fallback.
func TestRenameDayFocus(t *testing.T) {
	tests := []struct {
		name   string
		groups []string
		want   string
	}{
		{"single group", []string{"Chest"}, "Chest"},
		{"two groups", []string{"Chest", "Back"}, "Chest & Back"},
		{"three groups", []string{"Chest", "Back", "Legs"}, "Chest & Back & Legs"},
		{"fourth group dropped", []string{"Chest", "Back", "Legs", "Abs"}, "Chest & Back & Legs"},
		{"duplicates collapse", []string{"Chest", "Chest", "Back"}, "Chest & Back"},
		{"empty list is rest", nil, "Rest"},
		{"rest alone", []string{"Rest"}, "Rest"},
		{"rest dominates", []string{"Chest", "Rest", "Back"}, "Rest"},
		{"rest after cap", []string{"Chest", "Back", "Legs", "Rest"}, "Rest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.DefaultWeekPlan()
			updated, err := RenameDayFocus(p, models.Friday, tt.groups)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := updated[models.Friday].Name; got != tt.want {
				t.Errorf("focus = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestRenameDayFocusKeepsExercises verifies renaming the focus never
// touches the day's exercise list.
func TestRenameDayFocusKeepsExercises(t *testing.T) {
	p := models.DefaultWeekPlan()
	updated, err := RenameDayFocus(p, models.Monday, []string{"Legs", "Abs"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(updated[models.Monday].Exercises, p[models.Monday].Exercises) {
		t.Error("exercises changed by a focus rename")
	}
	if got := updated[models.Monday].Name; got != "Legs & Abs" {
		t.Errorf("focus = %q, want Legs & Abs", got)
	}
}

// TestMutationsArePure verifies the documented contract that no operation
// modifies the plan it is handed.
func TestMutationsArePure(t *testing.T) {
	p := models.DefaultWeekPlan()
	id := p[models.Monday].Exercises[0].ID
	before := snapshot(t, p)

	weight := "100"
	if _, err := UpdateExercise(p, models.Monday, id, ExerciseUpdate{Weight: &weight}); err != nil {
		t.Fatal(err)
	}
	if _, err := RemoveExercise(p, models.Monday, id); err != nil {
		t.Fatal(err)
	}
	if _, err := Reorder(p, models.Monday, 0, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := ResetDay(p, models.Monday); err != nil {
		t.Fatal(err)
	}
	if _, err := RenameDayFocus(p, models.Monday, []string{"Abs"}); err != nil {
		t.Fatal(err)
	}
	ResetWeek(p)

	if got := snapshot(t, p); got != before {
		t.Error("a mutation modified its input plan")
	}
}

// TestIsCardio verifies the classification rule: only a catalog reference
// to a "Cardio" entry makes an exercise cardio.
func TestIsCardio(t *testing.T) {
	catalog := models.Catalog{
		{ID: 1, Name: "Barbell Bench Press", MuscleGroup: "Chest"},
		{ID: 85, Name: "Treadmill Run", MuscleGroup: "Cardio"},
	}

	strengthRef := 1
	cardioRef := 85
	danglingRef := 999

	tests := []struct {
		name string
		ex   models.Exercise
		want bool
	}{
		{"strength catalog ref", models.Exercise{CatalogID: &strengthRef}, false},
		{"cardio catalog ref", models.Exercise{CatalogID: &cardioRef}, true},
		{"custom exercise", models.Exercise{Name: "Shadow Boxing"}, false},
		{"dangling ref", models.Exercise{CatalogID: &danglingRef}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCardio(tt.ex, catalog); got != tt.want {
				t.Errorf("IsCardio = %v, want %v", got, tt.want)
			}
		})
	}
}
