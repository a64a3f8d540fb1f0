package models

// Weekday is one of the seven fixed day names keying a week plan.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists the seven days in display order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ValidWeekday reports whether d is one of the seven fixed day names.
func ValidWeekday(d Weekday) bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// DayPlan is one weekday's focus name plus its ordered exercise list. The
// focus name is either the sentinel "Rest" or up to three muscle-group names
// joined with " & ". Exercise order is user-controlled and meaningful.
type DayPlan struct {
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
}

// Clone returns a deep copy of the day plan.
func (d DayPlan) Clone() DayPlan {
	out := DayPlan{Name: d.Name, Exercises: make([]Exercise, len(d.Exercises))}
	for i, ex := range d.Exercises {
		out.Exercises[i] = ex.Clone()
	}
	return out
}

// WeekPlan maps each of the seven weekday names to its day plan. A well-formed
// plan always carries all seven keys; the JSON encoding of this type is the
// persisted wire format.
type WeekPlan map[Weekday]DayPlan

// Clone returns a deep copy of the plan. Mutation operations copy before
// writing so callers can treat any plan value they hold as immutable.
func (p WeekPlan) Clone() WeekPlan {
	out := make(WeekPlan, len(p))
	for day, dp := range p {
		out[day] = dp.Clone()
	}
	return out
}

// TotalExercises counts exercises across all days.
func (p WeekPlan) TotalExercises() int {
	n := 0
	for _, dp := range p {
		n += len(dp.Exercises)
	}
	return n
}
