// Package service implements the application use cases over the repository
// layer. Every multi-write operation runs inside a UnitOfWork transaction so
// a failure never leaves partial state behind.
package service

import (
	"context"
	"time"

	"github.com/tbielak/cram/internal/domain"
)

type CourseService interface {
	// Add registers a course, normalizing the code and optionally setting
	// a display name.
	Add(ctx context.Context, code, name string) (*domain.Course, error)
	Get(ctx context.Context, code string) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	// SetExamDates resolves one date from free text and applies it to the
	// courses mentioned in the text, or to every known course when the
	// text names none. Unknown mentioned courses are created on the fly.
	SetExamDates(ctx context.Context, text string, today time.Time) (*ExamDatesResult, error)
}

// ExamDatesResult reports which courses received which exam date.
type ExamDatesResult struct {
	Date    time.Time
	Courses []string
}

// PreferenceUpdate carries the optional fields of a preference change. Nil
// means leave the stored value alone.
type PreferenceUpdate struct {
	DailyMaxHours *float64
	DaysOff       []string
	StartDateText *string
}

type PreferenceService interface {
	Get(ctx context.Context) (domain.Preferences, error)
	// Set validates every provided field before writing anything, then
	// saves the merged preferences in one transaction.
	Set(ctx context.Context, upd PreferenceUpdate, today time.Time) (domain.Preferences, error)
}

type PlanService interface {
	// Build schedules all courses and replaces the stored plan. The stored
	// plan is untouched when any precondition fails.
	Build(ctx context.Context, today time.Time) ([]domain.PlanDay, error)
	// Current returns the stored plan; empty when none was built.
	Current(ctx context.Context) ([]domain.PlanDay, error)
	// Review checks the stored plan against preferences and exam dates.
	Review(ctx context.Context, today time.Time) ([]string, error)
}

// CourseEstimate is the per-course outcome of an estimation pass.
type CourseEstimate struct {
	Code          string
	MaterialCount int
	Hours         float64
}

// EstimateResult summarizes an estimation pass over all courses.
type EstimateResult struct {
	Courses    []CourseEstimate
	TotalHours float64
}

type EstimateService interface {
	// Estimate derives hours from material counts for every course and
	// writes them back in one transaction.
	Estimate(ctx context.Context) (*EstimateResult, error)
}

// IngestResult reports which references were attached and which could not
// be located on disk.
type IngestResult struct {
	CourseCode string
	Ingested   []string
	Missing    []string
}

type IngestService interface {
	// Ingest extracts PDF references from free text, resolves them on
	// disk and attaches them as materials to the mentioned course.
	Ingest(ctx context.Context, text string) (*IngestResult, error)
}

// StateSnapshot is a read-only copy of everything the store holds.
type StateSnapshot struct {
	Courses     []*domain.Course
	Preferences domain.Preferences
	Plan        []domain.PlanDay
}

type StateService interface {
	Snapshot(ctx context.Context) (*StateSnapshot, error)
	// Reset wipes courses, preferences and plan in one transaction and
	// returns the fresh snapshot.
	Reset(ctx context.Context) (*StateSnapshot, error)
}

type ExportService interface {
	// Export renders the stored plan in the given format ("csv" or
	// "markdown") and returns the written file path. An empty path picks a
	// default name inside the configured export directory.
	Export(ctx context.Context, format, path string) (string, error)
}
