package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbielak/cram/internal/domain"
)

func seedExportPlan(t *testing.T, e *env) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.courses.Ensure(ctx, "CS 101"))
	require.NoError(t, e.courses.SetName(ctx, "CS 101", "Intro to CS"))
	require.NoError(t, e.courses.Ensure(ctx, "MATH 221"))
	require.NoError(t, e.plans.Replace(ctx, []domain.PlanDay{
		{
			Date: day(2024, 1, 1),
			Tasks: []domain.PlanTask{
				{CourseCode: "CS 101", Hours: 2},
				{CourseCode: "MATH 221", Hours: 1.5},
			},
			TotalHours: 3.5,
		},
	}))
}

func TestExportService_CSV(t *testing.T) {
	e := newEnv(t)
	dir := t.TempDir()
	svc := NewExportService(e.courses, e.plans, dir)
	seedExportPlan(t, e)

	path, err := svc.Export(context.Background(), "csv", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "study_plan.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "Date,Course,Focus,Hours\n" +
		"2024-01-01,CS 101,Intro to CS,2\n" +
		"2024-01-01,MATH 221,MATH 221,1.5\n"
	assert.Equal(t, want, string(data))
}

func TestExportService_Markdown(t *testing.T) {
	e := newEnv(t)
	svc := NewExportService(e.courses, e.plans, t.TempDir())
	seedExportPlan(t, e)

	path, err := svc.Export(context.Background(), "markdown", "")
	require.NoError(t, err)
	assert.Equal(t, ".md", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "| Date | Course | Focus | Hours |")
	assert.Contains(t, string(data), "| 2024-01-01 | CS 101 | Intro to CS | 2 |")
	assert.Contains(t, string(data), "| 2024-01-01 | MATH 221 | MATH 221 | 1.5 |")
}

func TestExportService_ExplicitPath(t *testing.T) {
	e := newEnv(t)
	svc := NewExportService(e.courses, e.plans, t.TempDir())
	seedExportPlan(t, e)

	target := filepath.Join(t.TempDir(), "nested", "plan.csv")
	path, err := svc.Export(context.Background(), "csv", target)
	require.NoError(t, err)
	assert.Equal(t, target, path)
	assert.FileExists(t, path)
}

func TestExportService_NoPlan(t *testing.T) {
	e := newEnv(t)
	svc := NewExportService(e.courses, e.plans, t.TempDir())

	_, err := svc.Export(context.Background(), "csv", "")
	assert.True(t, domain.IsCode(err, domain.ErrNoPlan))
}

func TestExportService_UnknownFormat(t *testing.T) {
	e := newEnv(t)
	svc := NewExportService(e.courses, e.plans, t.TempDir())
	seedExportPlan(t, e)

	_, err := svc.Export(context.Background(), "xlsx", "")
	assert.True(t, domain.IsCode(err, domain.ErrValidation))
}
