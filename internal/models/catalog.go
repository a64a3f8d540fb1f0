package models

// Sentinel muscle-group names with special meaning: "Rest" stands alone as a
// day focus, and "Cardio" flips an exercise's kind.
const (
	MuscleGroupRest   = "Rest"
	MuscleGroupCardio = "Cardio"
)

// MuscleGroups lists the selectable day-focus labels in display order.
var MuscleGroups = []string{
	MuscleGroupRest,
	"Chest",
	"Back",
	"Shoulders",
	"Biceps",
	"Triceps",
	"Forearms",
	"Legs",
	"Abs",
	MuscleGroupCardio,
}

// KnownMuscleGroup reports whether name is one of the fixed labels.
func KnownMuscleGroup(name string) bool {
	for _, g := range MuscleGroups {
		if g == name {
			return true
		}
	}
	return false
}

// CatalogEntry is one record in the static exercise reference list.
type CatalogEntry struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
}

// Kind returns the exercise kind implied by the entry's muscle group.
func (e CatalogEntry) Kind() Kind {
	return KindForMuscleGroup(e.MuscleGroup)
}

// Catalog is a read-only exercise reference list.
type Catalog []CatalogEntry

// ByID returns the entry with the given catalog ID.
func (c Catalog) ByID(id int) (CatalogEntry, bool) {
	for _, e := range c {
		if e.ID == id {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// ByMuscleGroup returns all entries for one muscle group, in catalog order.
func (c Catalog) ByMuscleGroup(group string) []CatalogEntry {
	var out []CatalogEntry
	for _, e := range c {
		if e.MuscleGroup == group {
			out = append(out, e)
		}
	}
	return out
}

// DefaultCatalog is the built-in exercise reference list.
var DefaultCatalog = Catalog{
	{ID: 1, Name: "Barbell Bench Press", MuscleGroup: "Chest"},
	{ID: 2, Name: "Incline Dumbbell Press", MuscleGroup: "Chest"},
	{ID: 3, Name: "Cable Flyes", MuscleGroup: "Chest"},
	{ID: 9, Name: "Pull-ups", MuscleGroup: "Back"},
	{ID: 11, Name: "Seated Cable Rows", MuscleGroup: "Back"},
	{ID: 17, Name: "Military Press", MuscleGroup: "Shoulders"},
	{ID: 19, Name: "Lateral Raises", MuscleGroup: "Shoulders"},
	{ID: 38, Name: "Barbell Curls", MuscleGroup: "Biceps"},
	{ID: 40, Name: "Hammer Curls", MuscleGroup: "Biceps"},
	{ID: 33, Name: "Skull Crushers", MuscleGroup: "Triceps"},
	{ID: 30, Name: "Rope Pushdowns", MuscleGroup: "Triceps"},
	{ID: 60, Name: "Barbell Squats", MuscleGroup: "Legs"},
	{ID: 61, Name: "Leg Press", MuscleGroup: "Legs"},
	{ID: 66, Name: "Romanian Deadlifts", MuscleGroup: "Legs"},
	{ID: 80, Name: "Single-Leg Calf Raises", MuscleGroup: "Legs"},
	{ID: 57, Name: "Cable Crunches", MuscleGroup: "Abs"},
	{ID: 71, Name: "Hanging Leg Raises", MuscleGroup: "Abs"},
	{ID: 85, Name: "Treadmill Run", MuscleGroup: MuscleGroupCardio},
	{ID: 86, Name: "Stationary Bike", MuscleGroup: MuscleGroupCardio},
	{ID: 87, Name: "Jump Rope", MuscleGroup: MuscleGroupCardio},
}
