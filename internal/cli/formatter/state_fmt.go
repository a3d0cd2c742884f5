package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tbielak/cram/internal/domain"
)

// FormatCourses renders the course table.
func FormatCourses(courses []*domain.Course) string {
	if len(courses) == 0 {
		return Dim("No courses yet. Add one with 'cram course add'.") + "\n"
	}

	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		exam := Dim("—")
		if c.ExamDate != nil {
			exam = c.ExamDate.Format(dateLayout)
		}
		hours := Dim("—")
		if c.EstimatedHours != nil {
			hours = strconv.FormatFloat(*c.EstimatedHours, 'g', -1, 64) + "h"
		}
		rows = append(rows, []string{
			c.Code,
			c.Name,
			exam,
			strconv.Itoa(len(c.Materials)),
			hours,
		})
	}
	return RenderTable([]string{"Code", "Name", "Exam", "Materials", "Est."}, rows)
}

// FormatPreferences renders the stored study preferences.
func FormatPreferences(p domain.Preferences) string {
	daysOff := "none"
	if len(p.DaysOff) > 0 {
		daysOff = strings.Join(p.DaysOff, ", ")
	}
	start := "today"
	if p.StartDate != nil {
		start = p.StartDate.Format(dateLayout)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Daily max:  %gh\n", p.DailyMaxHours)
	fmt.Fprintf(&b, "Days off:   %s\n", daysOff)
	fmt.Fprintf(&b, "Start date: %s\n", start)
	return b.String()
}

// FormatSnapshot renders the whole store: courses, preferences, plan.
func FormatSnapshot(courses []*domain.Course, prefs domain.Preferences, plan []domain.PlanDay) string {
	names := make(map[string]string, len(courses))
	for _, c := range courses {
		names[c.Code] = c.Name
	}

	var b strings.Builder
	b.WriteString(Header("Courses"))
	b.WriteString("\n")
	b.WriteString(FormatCourses(courses))
	b.WriteString("\n")
	b.WriteString(Header("Preferences"))
	b.WriteString("\n")
	b.WriteString(FormatPreferences(prefs))
	b.WriteString("\n")
	b.WriteString(Header("Plan"))
	b.WriteString("\n")
	b.WriteString(FormatPlan(plan, names))
	return b.String()
}
