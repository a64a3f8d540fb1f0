package plan

import "github.com/claude/liftweek/internal/models"

// CompletionStats aggregates exercise status counts across the whole week.
type CompletionStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Skipped        int     `json:"skipped"`
	Incomplete     int     `json:"incomplete"`
	CompletionRate float64 `json:"completionRate"`
}

// Stats computes completion statistics over every exercise in the plan.
// The completion rate is a percentage, and 0 for an empty plan.
func Stats(p models.WeekPlan) CompletionStats {
	var s CompletionStats
	for _, dp := range p {
		for _, ex := range dp.Exercises {
			s.Total++
			switch ex.Status {
			case models.StatusCompleted:
				s.Completed++
			case models.StatusSkipped:
				s.Skipped++
			}
		}
	}
	s.Incomplete = s.Total - s.Completed - s.Skipped
	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total) * 100
	}
	return s
}
