package scheduler

import (
	"fmt"
	"time"

	"github.com/tbielak/cram/internal/dates"
	"github.com/tbielak/cram/internal/domain"
)

// capTolerance absorbs floating-point rounding slack when comparing a day's
// total against the daily cap.
const capTolerance = 1e-6

const dateLayout = "2006-01-02"

// ReviewInput carries everything the reviewer reads. It never mutates any
// of it.
type ReviewInput struct {
	Plan    []domain.PlanDay
	Courses []*domain.Course
	Prefs   domain.Preferences
	Today   time.Time
}

// ReviewPlan audits a stored plan against the preferences and course exam
// dates, returning one warning per violation in plan order. An empty result
// means the plan is clean. Regenerating a corrected plan is the builder's
// job, not the reviewer's.
func ReviewPlan(in ReviewInput) ([]string, error) {
	if len(in.Plan) == 0 {
		return nil, domain.NoPlanErrorf("no plan found; build a plan first")
	}

	exams := make(map[string]time.Time)
	for _, c := range in.Courses {
		if c.ExamDate != nil {
			exams[c.Code] = dates.Midnight(*c.ExamDate)
		}
	}
	today := dates.Midnight(in.Today)

	warnings := []string{}
	for _, day := range in.Plan {
		date := day.Date.Format(dateLayout)
		if day.TotalHours > in.Prefs.DailyMaxHours+capTolerance {
			warnings = append(warnings, fmt.Sprintf("%s exceeds daily max (%gh > %gh)",
				date, day.TotalHours, in.Prefs.DailyMaxHours))
		}
		if day.Date.Before(today) {
			warnings = append(warnings, fmt.Sprintf("%s is already in the past", date))
		}
		for _, task := range day.Tasks {
			if exam, ok := exams[task.CourseCode]; ok && !day.Date.Before(exam) {
				warnings = append(warnings, fmt.Sprintf("%s schedules %s on or after its exam (%s)",
					date, task.CourseCode, exam.Format(dateLayout)))
			}
		}
	}
	return warnings, nil
}
