package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbielak/cram/internal/domain"
)

// TestStudyPlanningJourney walks the whole flow a user goes through: ingest
// materials, set exam dates, estimate, tune preferences, build, review,
// export, reset.
func TestStudyPlanningJourney(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	dir := t.TempDir()
	for _, name := range []string{"slides1.pdf", "slides2.pdf"} {
		writePDF(t, dir, name)
	}

	courseSvc := NewCourseService(e.courses, e.uow)
	prefSvc := NewPreferenceService(e.prefs, e.uow)
	planSvc := NewPlanService(e.courses, e.prefs, e.plans, e.uow)
	estimateSvc := NewEstimateService(e.courses, e.uow)
	ingestSvc := NewIngestService(e.courses, e.uow, []string{dir})
	stateSvc := NewStateService(e.courses, e.prefs, e.plans, e.uow)
	exportSvc := NewExportService(e.courses, e.plans, t.TempDir())

	// Ingest materials for CS 101.
	ingested, err := ingestSvc.Ingest(ctx, "cs 101 materials: slides1.pdf slides2.pdf")
	require.NoError(t, err)
	assert.Len(t, ingested.Ingested, 2)

	// A second course without materials.
	_, err = courseSvc.Add(ctx, "MATH 221", "Linear Algebra")
	require.NoError(t, err)

	// Exams: CS 101 next monday, MATH 221 via explicit date.
	_, err = courseSvc.SetExamDates(ctx, "cs 101 exam is next monday", testToday)
	require.NoError(t, err)
	_, err = courseSvc.SetExamDates(ctx, "math 221 exam is on 2024-01-06", testToday)
	require.NoError(t, err)

	// Estimation: 2 materials -> 4h, none -> 1h floor.
	est, err := estimateSvc.Estimate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5.0, est.TotalHours)

	// Friday off.
	_, err = prefSvc.Set(ctx, PreferenceUpdate{DaysOff: []string{"friday"}}, testToday)
	require.NoError(t, err)

	days, err := planSvc.Build(ctx, testToday)
	require.NoError(t, err)
	require.NotEmpty(t, days)
	for _, d := range days {
		assert.NotEqual(t, "friday", domain.WeekdayName(d.Date))
		assert.LessOrEqual(t, d.TotalHours, domain.DefaultDailyMaxHours+1e-6)
	}

	warnings, err := planSvc.Review(ctx, testToday)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	path, err := exportSvc.Export(ctx, "csv", "")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Date,Course,Focus,Hours\n"))
	assert.Equal(t, "study_plan.csv", filepath.Base(path))

	snap, err := stateSvc.Reset(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Courses)
	assert.Empty(t, snap.Plan)
	assert.Equal(t, domain.DefaultPreferences(), snap.Preferences)
}
