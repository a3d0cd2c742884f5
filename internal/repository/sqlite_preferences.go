package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/tbielak/cram/internal/db"
	"github.com/tbielak/cram/internal/domain"
)

// SQLitePreferenceRepo implements PreferenceRepo over SQLite. Preferences
// live in a single row keyed 'default'.
type SQLitePreferenceRepo struct {
	db db.DBTX
}

// NewSQLitePreferenceRepo creates a new SQLitePreferenceRepo.
func NewSQLitePreferenceRepo(conn db.DBTX) *SQLitePreferenceRepo {
	return &SQLitePreferenceRepo{db: conn}
}

func (r *SQLitePreferenceRepo) Get(ctx context.Context) (domain.Preferences, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT daily_max_hours, days_off, start_date FROM preferences WHERE id = 'default'`)

	var p domain.Preferences
	var daysOff string
	var startDate sql.NullString
	err := row.Scan(&p.DailyMaxHours, &daysOff, &startDate)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.DefaultPreferences(), nil
		}
		return domain.Preferences{}, fmt.Errorf("scanning preferences: %w", err)
	}
	if daysOff != "" {
		p.DaysOff = strings.Split(daysOff, ",")
	}
	p.StartDate = parseNullableDate(startDate)
	return p, nil
}

func (r *SQLitePreferenceRepo) Save(ctx context.Context, p domain.Preferences) error {
	query := `INSERT OR REPLACE INTO preferences (id, daily_max_hours, days_off, start_date)
		VALUES ('default', ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.DailyMaxHours,
		strings.Join(p.DaysOff, ","),
		nullableDateToValue(p.StartDate),
	)
	if err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}

func (r *SQLitePreferenceRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM preferences WHERE id = 'default'`); err != nil {
		return fmt.Errorf("resetting preferences: %w", err)
	}
	return nil
}
