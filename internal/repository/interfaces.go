// Package repository persists courses, preferences and the current plan in
// SQLite. Repositories are built over db.DBTX so the same implementations
// serve both standalone calls and UnitOfWork transactions.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/tbielak/cram/internal/domain"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

type CourseRepo interface {
	// Ensure creates the course row with empty defaults when absent.
	// The code must already be normalized.
	Ensure(ctx context.Context, code string) error
	GetByCode(ctx context.Context, code string) (*domain.Course, error)
	// List returns all courses with materials, in insertion order.
	List(ctx context.Context) ([]*domain.Course, error)
	Count(ctx context.Context) (int, error)
	SetName(ctx context.Context, code, name string) error
	SetExamDate(ctx context.Context, code string, d time.Time) error
	SetEstimatedHours(ctx context.Context, code string, hours float64) error
	AddMaterial(ctx context.Context, code string, m domain.Material) error
	DeleteAll(ctx context.Context) error
}

type PreferenceRepo interface {
	// Get returns the stored preferences, or the defaults when none were
	// ever saved.
	Get(ctx context.Context) (domain.Preferences, error)
	Save(ctx context.Context, p domain.Preferences) error
	Reset(ctx context.Context) error
}

type PlanRepo interface {
	// Get returns the stored plan days in date order; empty when no plan
	// has been built.
	Get(ctx context.Context) ([]domain.PlanDay, error)
	// Replace swaps the stored plan for the given days.
	Replace(ctx context.Context, days []domain.PlanDay) error
	Clear(ctx context.Context) error
}
