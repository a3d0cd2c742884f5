package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbielak/cram/internal/domain"
	"github.com/tbielak/cram/internal/testutil"
)

func TestCourseService_AddNormalizesCode(t *testing.T) {
	e := newEnv(t)
	svc := NewCourseService(e.courses, e.uow)

	c, err := svc.Add(context.Background(), "  cs   101 ", "Intro to CS")
	require.NoError(t, err)
	assert.Equal(t, "CS 101", c.Code)
	assert.Equal(t, "Intro to CS", c.Name)
}

func TestCourseService_AddEmptyCode(t *testing.T) {
	e := newEnv(t)
	svc := NewCourseService(e.courses, e.uow)

	_, err := svc.Add(context.Background(), "   ", "")
	assert.True(t, domain.IsCode(err, domain.ErrValidation))
}

func TestCourseService_AddIsIdempotent(t *testing.T) {
	e := newEnv(t)
	svc := NewCourseService(e.courses, e.uow)
	ctx := context.Background()

	first, err := svc.Add(ctx, "CS 101", "Intro to CS")
	require.NoError(t, err)
	again, err := svc.Add(ctx, "cs 101", "")
	require.NoError(t, err)

	assert.Equal(t, first.Code, again.Code)
	assert.Equal(t, "Intro to CS", again.Name, "re-adding without a name keeps the stored one")

	n, err := e.courses.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCourseService_SetExamDates_MentionedCourses(t *testing.T) {
	e := newEnv(t)
	svc := NewCourseService(e.courses, e.uow)
	ctx := context.Background()

	_, err := svc.Add(ctx, "CS 101", "")
	require.NoError(t, err)

	res, err := svc.SetExamDates(ctx, "cs 101 and math 221 exams are on 2024-02-15", testToday)
	require.NoError(t, err)
	assert.Equal(t, day(2024, 2, 15), res.Date)
	assert.Equal(t, []string{"CS 101", "MATH 221"}, res.Courses)

	// MATH 221 was created on the fly
	c, err := e.courses.GetByCode(ctx, "MATH 221")
	require.NoError(t, err)
	require.NotNil(t, c.ExamDate)
	assert.Equal(t, day(2024, 2, 15), *c.ExamDate)
}

func TestCourseService_SetExamDates_AppliesToAllWhenNoneMentioned(t *testing.T) {
	e := newEnv(t)
	svc := NewCourseService(e.courses, e.uow)
	ctx := context.Background()

	for _, code := range []string{"CS 101", "MATH 221"} {
		_, err := svc.Add(ctx, code, "")
		require.NoError(t, err)
	}

	res, err := svc.SetExamDates(ctx, "all exams are next friday", testToday)
	require.NoError(t, err)
	assert.Equal(t, day(2024, 1, 5), res.Date)
	assert.ElementsMatch(t, []string{"CS 101", "MATH 221"}, res.Courses)

	for _, code := range res.Courses {
		c, err := e.courses.GetByCode(ctx, code)
		require.NoError(t, err)
		require.NotNil(t, c.ExamDate)
		assert.Equal(t, day(2024, 1, 5), *c.ExamDate)
	}
}

func TestCourseService_SetExamDates_NoCoursesKnown(t *testing.T) {
	e := newEnv(t)
	svc := NewCourseService(e.courses, e.uow)

	_, err := svc.SetExamDates(context.Background(), "exams are tomorrow", testToday)
	assert.True(t, domain.IsCode(err, domain.ErrNoCourses))
}

func TestCourseService_SetExamDates_NoDateInText(t *testing.T) {
	e := newEnv(t)
	svc := NewCourseService(e.courses, e.uow)

	_, err := svc.SetExamDates(context.Background(), "cs 101 is going fine", testToday)
	assert.True(t, domain.IsCode(err, domain.ErrParse))
}

func TestCourseService_SetExamDates_RollbackOnFailure(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	require.NoError(t, e.courses.Ensure(ctx, "CS 101"))
	require.NoError(t, e.courses.Ensure(ctx, "MATH 221"))

	// Exec order in the fan-out: ensure+update per course. Failing on the
	// fourth call aborts mid-way through the second course.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     e.database,
		FailOn: 4,
		Err:    fmt.Errorf("injected update failure"),
	}
	svc := NewCourseService(e.courses, failUoW)

	_, err := svc.SetExamDates(ctx, "cs 101 and math 221 exams on 2024-02-15", testToday)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected update failure")

	// The first course's date must have rolled back with the rest.
	c, err := e.courses.GetByCode(ctx, "CS 101")
	require.NoError(t, err)
	assert.Nil(t, c.ExamDate)
}
