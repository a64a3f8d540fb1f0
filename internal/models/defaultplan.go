package models

func intPtr(v int) *int { return &v }

// defaultWeek is the starter plan template. DefaultWeekPlan hands out deep
// copies so nothing ever mutates this value.
var defaultWeek = WeekPlan{
	Monday: {Name: "Chest & Biceps", Exercises: []Exercise{
		{ID: "ex1", CatalogID: intPtr(1), Name: "Barbell Bench Press", Sets: "4", Reps: "8-10", Status: StatusIncomplete},
		{ID: "ex2", CatalogID: intPtr(2), Name: "Incline Dumbbell Press", Sets: "3", Reps: "10-12", Status: StatusIncomplete},
		{ID: "ex3", CatalogID: intPtr(38), Name: "Barbell Curls", Sets: "4", Reps: "10-12", Status: StatusIncomplete},
	}},
	Tuesday: {Name: "Back & Shoulders", Exercises: []Exercise{
		{ID: "ex4", CatalogID: intPtr(9), Name: "Pull-ups", Sets: "3", Reps: "8-12", Status: StatusIncomplete},
		{ID: "ex5", CatalogID: intPtr(17), Name: "Military Press", Sets: "4", Reps: "8-10", Status: StatusIncomplete},
	}},
	Wednesday: {Name: "Legs & Abs", Exercises: []Exercise{
		{ID: "ex6", CatalogID: intPtr(60), Name: "Barbell Squats", Sets: "4", Reps: "8-10", Status: StatusIncomplete},
		{ID: "ex7", CatalogID: intPtr(66), Name: "Romanian Deadlifts", Sets: "3", Reps: "10-12", Status: StatusIncomplete},
		{ID: "ex8", CatalogID: intPtr(57), Name: "Cable Crunches", Sets: "3", Reps: "15-20", Status: StatusIncomplete},
	}},
	Thursday: {Name: "Chest & Triceps", Exercises: []Exercise{}},
	Friday:   {Name: "Back & Biceps", Exercises: []Exercise{}},
	Saturday: {Name: "Shoulders & Abs", Exercises: []Exercise{}},
	Sunday:   {Name: MuscleGroupRest, Exercises: []Exercise{}},
}

// DefaultWeekPlan returns a fresh copy of the built-in starter plan: a
// push/pull/leg split with empty back-half days and Sunday off.
func DefaultWeekPlan() WeekPlan {
	return defaultWeek.Clone()
}
