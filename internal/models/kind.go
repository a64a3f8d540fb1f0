package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies an exercise and changes how its string fields are read:
// for strength work, sets/effectiveSets count sets; for cardio they count
// minutes and reps/weight are ignored; for flexibility, sets is a hold time
// in seconds. The set of kinds is fixed, so behavior lives in a closed
// dispatch table rather than an open interface.
type Kind string

const (
	KindStrength    Kind = "strength"
	KindCardio      Kind = "cardio"
	KindFlexibility Kind = "flexibility"
)

// Kinds lists all exercise kinds.
var Kinds = []Kind{KindStrength, KindCardio, KindFlexibility}

// KindBehavior describes how one exercise kind labels, defaults, and formats
// its fields. Validate returns advisory warnings only; the plan mutations
// never reject on numeric grounds.
type KindBehavior struct {
	SetsLabel  string
	RepsLabel  string
	UsesWeight bool
	UsesReps   bool
	Defaults   ExerciseDefaults
	Validate   func(sets, reps string) []string
	Format     func(ex Exercise) string
}

// ExerciseDefaults are the starter field values for a kind.
type ExerciseDefaults struct {
	Sets string
	Reps string
}

var kindTable = map[Kind]KindBehavior{
	KindStrength: {
		SetsLabel:  "Sets",
		RepsLabel:  "Reps",
		UsesWeight: true,
		UsesReps:   true,
		Defaults:   ExerciseDefaults{Sets: "3", Reps: "8-12"},
		Validate: func(sets, reps string) []string {
			var warns []string
			if n, err := strconv.Atoi(strings.TrimSpace(sets)); err == nil && n < 1 {
				warns = append(warns, "sets should be at least 1")
			}
			if strings.TrimSpace(reps) == "" {
				warns = append(warns, "reps is empty")
			}
			return warns
		},
		Format: func(ex Exercise) string {
			s := fmt.Sprintf("%s sets × %s reps", ex.Sets, ex.Reps)
			if ex.Weight != "" {
				s += " @ " + ex.Weight + "lbs"
			}
			return s
		},
	},
	KindCardio: {
		SetsLabel:  "Duration (min)",
		RepsLabel:  "Intensity",
		UsesWeight: false,
		UsesReps:   false,
		Defaults:   ExerciseDefaults{Sets: "30", Reps: ""},
		Validate: func(sets, _ string) []string {
			if n, err := strconv.Atoi(strings.TrimSpace(sets)); err == nil && (n < 1 || n > 120) {
				return []string{"duration should be between 1 and 120 minutes"}
			}
			return nil
		},
		Format: func(ex Exercise) string {
			s := ex.Sets + " minutes"
			if ex.EffectiveSets != "" {
				s += fmt.Sprintf(" (%s min completed)", ex.EffectiveSets)
			}
			return s
		},
	},
	KindFlexibility: {
		SetsLabel:  "Hold Time (sec)",
		RepsLabel:  "Repetitions",
		UsesWeight: false,
		UsesReps:   true,
		Defaults:   ExerciseDefaults{Sets: "30", Reps: "3"},
		Validate: func(sets, reps string) []string {
			var warns []string
			if n, err := strconv.Atoi(strings.TrimSpace(sets)); err == nil && (n < 10 || n > 300) {
				warns = append(warns, "hold time should be between 10 and 300 seconds")
			}
			if n, err := strconv.Atoi(strings.TrimSpace(reps)); err == nil && (n < 1 || n > 10) {
				warns = append(warns, "repetitions should be between 1 and 10")
			}
			return warns
		},
		Format: func(ex Exercise) string {
			return fmt.Sprintf("%s × %ss holds", ex.Reps, ex.Sets)
		},
	},
}

// Behavior returns the dispatch entry for k, falling back to strength for
// anything unrecognized.
func (k Kind) Behavior() KindBehavior {
	if b, ok := kindTable[k]; ok {
		return b
	}
	return kindTable[KindStrength]
}

// KindForMuscleGroup maps a catalog muscle group to an exercise kind. Only
// the "Cardio" group changes classification; every other group is strength.
func KindForMuscleGroup(group string) Kind {
	if group == MuscleGroupCardio {
		return KindCardio
	}
	return KindStrength
}
