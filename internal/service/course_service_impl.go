package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tbielak/cram/internal/dates"
	"github.com/tbielak/cram/internal/db"
	"github.com/tbielak/cram/internal/domain"
	"github.com/tbielak/cram/internal/repository"
)

type courseService struct {
	courses repository.CourseRepo
	uow     db.UnitOfWork
}

func NewCourseService(courses repository.CourseRepo, uow db.UnitOfWork) CourseService {
	return &courseService{courses: courses, uow: uow}
}

func (s *courseService) Add(ctx context.Context, code, name string) (*domain.Course, error) {
	normalized := domain.NormalizeCourseCode(code)
	if normalized == "" {
		return nil, domain.ValidationErrorf("course code must not be empty")
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCourses := repository.NewSQLiteCourseRepo(tx)
		if err := txCourses.Ensure(ctx, normalized); err != nil {
			return err
		}
		if name != "" {
			return txCourses.SetName(ctx, normalized, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("adding course %s: %w", normalized, err)
	}
	return s.courses.GetByCode(ctx, normalized)
}

func (s *courseService) Get(ctx context.Context, code string) (*domain.Course, error) {
	return s.courses.GetByCode(ctx, domain.NormalizeCourseCode(code))
}

func (s *courseService) List(ctx context.Context) ([]*domain.Course, error) {
	return s.courses.List(ctx)
}

func (s *courseService) SetExamDates(ctx context.Context, text string, today time.Time) (*ExamDatesResult, error) {
	date, ok := dates.Resolve(text, today)
	if !ok {
		return nil, domain.ParseErrorf("could not find a date in %q", text)
	}

	codes := domain.ExtractCourseCodes(text)
	if len(codes) == 0 {
		existing, err := s.courses.List(ctx)
		if err != nil {
			return nil, err
		}
		if len(existing) == 0 {
			return nil, domain.NoCoursesErrorf("no courses found; add a course before setting exam dates")
		}
		for _, c := range existing {
			codes = append(codes, c.Code)
		}
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCourses := repository.NewSQLiteCourseRepo(tx)
		for _, code := range codes {
			if err := txCourses.Ensure(ctx, code); err != nil {
				return err
			}
			if err := txCourses.SetExamDate(ctx, code, date); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("setting exam dates: %w", err)
	}
	return &ExamDatesResult{Date: date, Courses: codes}, nil
}
