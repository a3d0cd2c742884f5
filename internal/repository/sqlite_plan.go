package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tbielak/cram/internal/db"
	"github.com/tbielak/cram/internal/domain"
)

// SQLitePlanRepo implements PlanRepo over SQLite.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Get(ctx context.Context) ([]domain.PlanDay, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, total_hours FROM plan_days ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing plan days: %w", err)
	}
	defer rows.Close()

	var days []domain.PlanDay
	index := make(map[string]int)
	for rows.Next() {
		var dateStr string
		var day domain.PlanDay
		if err := rows.Scan(&dateStr, &day.TotalHours); err != nil {
			return nil, fmt.Errorf("scanning plan day: %w", err)
		}
		day.Date, err = time.ParseInLocation(dateLayout, dateStr, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parsing plan date %q: %w", dateStr, err)
		}
		index[dateStr] = len(days)
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan days: %w", err)
	}

	trows, err := r.db.QueryContext(ctx,
		`SELECT day_date, course_code, hours FROM plan_tasks ORDER BY day_date, position`)
	if err != nil {
		return nil, fmt.Errorf("listing plan tasks: %w", err)
	}
	defer trows.Close()

	for trows.Next() {
		var dayDate string
		var task domain.PlanTask
		if err := trows.Scan(&dayDate, &task.CourseCode, &task.Hours); err != nil {
			return nil, fmt.Errorf("scanning plan task: %w", err)
		}
		if i, ok := index[dayDate]; ok {
			days[i].Tasks = append(days[i].Tasks, task)
		}
	}
	if err := trows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan tasks: %w", err)
	}
	return days, nil
}

func (r *SQLitePlanRepo) Replace(ctx context.Context, days []domain.PlanDay) error {
	if err := r.Clear(ctx); err != nil {
		return err
	}
	for i, day := range days {
		dateStr := day.Date.Format(dateLayout)
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO plan_days (date, total_hours, position) VALUES (?, ?, ?)`,
			dateStr, day.TotalHours, i,
		); err != nil {
			return fmt.Errorf("inserting plan day %s: %w", dateStr, err)
		}
		for j, task := range day.Tasks {
			if _, err := r.db.ExecContext(ctx,
				`INSERT INTO plan_tasks (day_date, course_code, hours, position) VALUES (?, ?, ?, ?)`,
				dateStr, task.CourseCode, task.Hours, j,
			); err != nil {
				return fmt.Errorf("inserting plan task %s/%s: %w", dateStr, task.CourseCode, err)
			}
		}
	}
	return nil
}

func (r *SQLitePlanRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plan_days`); err != nil {
		return fmt.Errorf("clearing plan: %w", err)
	}
	return nil
}
