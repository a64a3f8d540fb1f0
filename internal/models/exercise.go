package models

// Status is the completion state of a single exercise.
type Status string

const (
	StatusIncomplete Status = "incomplete"
	StatusCompleted  Status = "completed"
	StatusSkipped    Status = "skipped"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusIncomplete, StatusCompleted, StatusSkipped:
		return true
	}
	return false
}

// Exercise is one trackable line item in a day plan. The numeric-looking
// fields (sets, reps, weight, effectiveSets) are stored as opaque display
// strings and never parsed: rep ranges like "8-12" are not numbers, and
// existing persisted data depends on that.
type Exercise struct {
	ID            string `json:"id"`
	CatalogID     *int   `json:"dbId"`
	Name          string `json:"name"`
	Sets          string `json:"sets"`
	Reps          string `json:"reps"`
	Weight        string `json:"weight"`
	EffectiveSets string `json:"effectiveSets"`
	Status        Status `json:"status"`
}

// Clone returns a deep copy of the exercise.
func (e Exercise) Clone() Exercise {
	out := e
	if e.CatalogID != nil {
		id := *e.CatalogID
		out.CatalogID = &id
	}
	return out
}
