// Package formatter renders domain values for terminal output.
package formatter

import (
	"fmt"
	"strings"

	"github.com/tbielak/cram/internal/domain"
)

const dateLayout = "2006-01-02"

// FormatPlan renders a built plan day by day. names maps course codes to
// display names; unnamed courses fall back to their code.
func FormatPlan(days []domain.PlanDay, names map[string]string) string {
	if len(days) == 0 {
		return Dim("No plan days scheduled.") + "\n"
	}

	var b strings.Builder
	var total float64
	for i, day := range days {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StyleBold.Render(day.Date.Format(dateLayout)))
		b.WriteString(Dim(fmt.Sprintf("  %s · %gh", domain.WeekdayName(day.Date), day.TotalHours)))
		b.WriteString("\n")
		for _, task := range day.Tasks {
			label := task.CourseCode
			if name := names[task.CourseCode]; name != "" {
				label = fmt.Sprintf("%s · %s", task.CourseCode, name)
			}
			fmt.Fprintf(&b, "  %s %s %s\n",
				StyleBlue.Render(fmt.Sprintf("%5gh", task.Hours)),
				Dim("→"),
				label)
		}
		total = domain.Round2(total + day.TotalHours)
	}
	fmt.Fprintf(&b, "\n%s\n", Dim(fmt.Sprintf("%d days · %gh total", len(days), total)))
	return b.String()
}

// FormatReview renders reviewer warnings, or a clean bill of health.
func FormatReview(warnings []string) string {
	if len(warnings) == 0 {
		return OK("Plan looks good.") + "\n"
	}
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString(Warn(w))
		b.WriteString("\n")
	}
	return b.String()
}
