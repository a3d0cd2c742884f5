// Package scheduler turns courses with exam dates and remaining study hours
// into a feasible day-by-day allocation, audits stored plans, and estimates
// study hours from attached materials.
package scheduler

import (
	"strings"
	"time"

	"github.com/tbielak/cram/internal/dates"
	"github.com/tbielak/cram/internal/domain"
)

// BuildPlan allocates study hours across calendar days. Courses are
// processed in the given order, which fixes task order within each day.
//
// Each day, every course with a future exam and remaining hours gets a
// target of remaining/days-left, where days-left counts the schedulable days
// strictly between the day and that course's exam. Recomputing the spread
// every day makes the plan self-correcting: hours lost to a capped or
// skipped day redistribute over the days that follow. When the summed
// targets exceed the daily cap, all courses scale down by the same factor.
func BuildPlan(courses []*domain.Course, prefs domain.Preferences, today time.Time) ([]domain.PlanDay, error) {
	if len(courses) == 0 {
		return nil, domain.SchedulingErrorf("no courses found; add or ingest courses first")
	}
	var missingDates, missingHours []string
	for _, c := range courses {
		if c.ExamDate == nil {
			missingDates = append(missingDates, c.Code)
		}
		if c.EstimatedHours == nil {
			missingHours = append(missingHours, c.Code)
		}
	}
	if len(missingDates) > 0 {
		return nil, domain.SchedulingErrorf("missing exam dates for: %s", strings.Join(missingDates, ", "))
	}
	if len(missingHours) > 0 {
		return nil, domain.SchedulingErrorf("missing estimated hours for: %s; run estimation first", strings.Join(missingHours, ", "))
	}

	start := dates.Midnight(today)
	if prefs.StartDate != nil {
		start = dates.Midnight(*prefs.StartDate)
	}
	end := start
	for _, c := range courses {
		if eve := dates.Midnight(*c.ExamDate).AddDate(0, 0, -1); eve.After(end) {
			end = eve
		}
	}

	daysOff := prefs.DayOffSet()
	dailyMax := prefs.DailyMaxHours

	remaining := make(map[string]float64, len(courses))
	for _, c := range courses {
		remaining[c.Code] = domain.Round2(*c.EstimatedHours)
	}

	type courseTarget struct {
		code  string
		hours float64
	}

	var plan []domain.PlanDay
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if daysOff[domain.WeekdayName(day)] {
			continue
		}

		var targets []courseTarget
		totalTarget := 0.0
		for _, c := range courses {
			exam := dates.Midnight(*c.ExamDate)
			if !exam.After(day) || remaining[c.Code] <= 0 {
				continue
			}
			left := schedulableDaysBetween(day, exam, daysOff)
			t := remaining[c.Code] / float64(left)
			targets = append(targets, courseTarget{code: c.Code, hours: t})
			totalTarget += t
		}
		if len(targets) == 0 {
			continue
		}

		scale := 1.0
		if totalTarget > dailyMax {
			scale = dailyMax / totalTarget
		}

		var tasks []domain.PlanTask
		total := 0.0
		for _, t := range targets {
			hours := domain.Round2(t.hours * scale)
			if hours <= 0 {
				continue
			}
			tasks = append(tasks, domain.PlanTask{CourseCode: t.code, Hours: hours})
			total = domain.Round2(total + hours)
		}
		tasks, total = shaveToCap(tasks, total, dailyMax)
		if len(tasks) == 0 {
			// Every target rounded away; the day vanishes from the plan.
			continue
		}
		for _, t := range tasks {
			remaining[t.CourseCode] = domain.Round2(remaining[t.CourseCode] - t.Hours)
		}

		plan = append(plan, domain.PlanDay{
			Date:       day,
			Tasks:      tasks,
			TotalHours: total,
		})
	}

	return plan, nil
}

// shaveToCap reconciles a day's rounded tasks with the daily cap. Rounding
// each scaled target half-up independently can leave the grid total a cent
// or two above the cap, so the overage comes off the largest task, dropping
// it when that zeroes it out. Returns the adjusted tasks and total.
func shaveToCap(tasks []domain.PlanTask, total, dailyMax float64) ([]domain.PlanTask, float64) {
	for total > dailyMax && len(tasks) > 0 {
		over := domain.Round2(total - dailyMax)
		if over <= 0 {
			// Off-grid caps can leave a sub-cent excess; one grid step
			// clears it.
			over = 0.01
		}
		li := 0
		for i, t := range tasks {
			if t.Hours > tasks[li].Hours {
				li = i
			}
		}
		if tasks[li].Hours > over {
			tasks[li].Hours = domain.Round2(tasks[li].Hours - over)
			total = domain.Round2(total - over)
		} else {
			total = domain.Round2(total - tasks[li].Hours)
			tasks = append(tasks[:li], tasks[li+1:]...)
		}
	}
	return tasks, total
}

// schedulableDaysBetween counts non-day-off days strictly between day and
// exam, exclusive on both ends. Clamped to 1 so exam-eve allocations divide
// by one rather than zero.
func schedulableDaysBetween(day, exam time.Time, daysOff map[string]bool) int {
	count := 0
	for d := day.AddDate(0, 0, 1); d.Before(exam); d = d.AddDate(0, 0, 1) {
		if !daysOff[domain.WeekdayName(d)] {
			count++
		}
	}
	if count < 1 {
		count = 1
	}
	return count
}
