package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/tbielak/cram/internal/domain"
)

// CourseOption mutates a fixture course.
type CourseOption func(*domain.Course)

// WithExamDate sets the course's exam date.
func WithExamDate(d time.Time) CourseOption {
	return func(c *domain.Course) {
		c.ExamDate = &d
	}
}

// WithEstimatedHours sets the course's estimated hours.
func WithEstimatedHours(h float64) CourseOption {
	return func(c *domain.Course) {
		c.EstimatedHours = &h
	}
}

// WithName sets the course's display name.
func WithName(name string) CourseOption {
	return func(c *domain.Course) {
		c.Name = name
	}
}

// NewTestCourse builds a course fixture with the given normalized code.
func NewTestCourse(code string, opts ...CourseOption) *domain.Course {
	now := time.Now().UTC()
	c := &domain.Course{
		Code:      domain.NormalizeCourseCode(code),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewTestMaterial builds a material fixture for the given path.
func NewTestMaterial(path string) domain.Material {
	return domain.Material{
		ID:        uuid.New().String(),
		Path:      path,
		CreatedAt: time.Now().UTC(),
	}
}
