package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tbielak/cram/internal/db"
	"github.com/tbielak/cram/internal/repository"
	"github.com/tbielak/cram/internal/testutil"
)

// testToday is a Monday.
var testToday = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type env struct {
	database *sql.DB
	courses  *repository.SQLiteCourseRepo
	prefs    *repository.SQLitePreferenceRepo
	plans    *repository.SQLitePlanRepo
	uow      db.UnitOfWork
}

func newEnv(t *testing.T) *env {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &env{
		database: database,
		courses:  repository.NewSQLiteCourseRepo(database),
		prefs:    repository.NewSQLitePreferenceRepo(database),
		plans:    repository.NewSQLitePlanRepo(database),
		uow:      testutil.NewTestUoW(database),
	}
}

// seedCourse creates a course ready for scheduling.
func (e *env) seedCourse(t *testing.T, code string, exam time.Time, hours float64) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.courses.Ensure(ctx, code))
	require.NoError(t, e.courses.SetExamDate(ctx, code, exam))
	require.NoError(t, e.courses.SetEstimatedHours(ctx, code, hours))
}
