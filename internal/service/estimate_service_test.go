package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbielak/cram/internal/domain"
	"github.com/tbielak/cram/internal/testutil"
)

func TestEstimateService_NoCourses(t *testing.T) {
	e := newEnv(t)
	svc := NewEstimateService(e.courses, e.uow)

	_, err := svc.Estimate(context.Background())
	assert.True(t, domain.IsCode(err, domain.ErrNoCourses))
}

func TestEstimateService_WritesHoursFromMaterialCounts(t *testing.T) {
	e := newEnv(t)
	svc := NewEstimateService(e.courses, e.uow)
	ctx := context.Background()

	require.NoError(t, e.courses.Ensure(ctx, "CS 101"))
	for _, path := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		require.NoError(t, e.courses.AddMaterial(ctx, "CS 101", testutil.NewTestMaterial(path)))
	}
	require.NoError(t, e.courses.Ensure(ctx, "MATH 221"))

	res, err := svc.Estimate(ctx)
	require.NoError(t, err)
	require.Len(t, res.Courses, 2)

	assert.Equal(t, CourseEstimate{Code: "CS 101", MaterialCount: 3, Hours: 6.0}, res.Courses[0])
	// No materials still yields the one hour floor.
	assert.Equal(t, CourseEstimate{Code: "MATH 221", MaterialCount: 0, Hours: 1.0}, res.Courses[1])
	assert.Equal(t, 7.0, res.TotalHours)

	c, err := e.courses.GetByCode(ctx, "CS 101")
	require.NoError(t, err)
	require.NotNil(t, c.EstimatedHours)
	assert.Equal(t, 6.0, *c.EstimatedHours)
}

func TestEstimateService_OverwritesPreviousEstimate(t *testing.T) {
	e := newEnv(t)
	svc := NewEstimateService(e.courses, e.uow)
	ctx := context.Background()

	require.NoError(t, e.courses.Ensure(ctx, "CS 101"))
	require.NoError(t, e.courses.SetEstimatedHours(ctx, "CS 101", 40.0))

	_, err := svc.Estimate(ctx)
	require.NoError(t, err)

	c, err := e.courses.GetByCode(ctx, "CS 101")
	require.NoError(t, err)
	require.NotNil(t, c.EstimatedHours)
	assert.Equal(t, 1.0, *c.EstimatedHours)
}
