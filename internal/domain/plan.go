package domain

import (
	"math"
	"time"
)

// PlanTask is a single course allocation within a study day.
type PlanTask struct {
	CourseCode string
	Hours      float64
}

// PlanDay is one scheduled calendar day: its tasks and their rounded total.
// Days with no positive-hour tasks are never emitted.
type PlanDay struct {
	Date       time.Time
	Tasks      []PlanTask
	TotalHours float64
}

// Round2 rounds to two decimal places; all plan hours live on this grid.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
