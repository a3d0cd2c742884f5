package service

import (
	"context"
	"fmt"

	"github.com/tbielak/cram/internal/db"
	"github.com/tbielak/cram/internal/domain"
	"github.com/tbielak/cram/internal/repository"
	"github.com/tbielak/cram/internal/scheduler"
)

type estimateService struct {
	courses repository.CourseRepo
	uow     db.UnitOfWork
}

func NewEstimateService(courses repository.CourseRepo, uow db.UnitOfWork) EstimateService {
	return &estimateService{courses: courses, uow: uow}
}

func (s *estimateService) Estimate(ctx context.Context) (*EstimateResult, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, domain.NoCoursesErrorf("no courses found; add a course before estimating")
	}

	result := &EstimateResult{}
	for _, c := range courses {
		hours := scheduler.EstimateHours(len(c.Materials))
		result.Courses = append(result.Courses, CourseEstimate{
			Code:          c.Code,
			MaterialCount: len(c.Materials),
			Hours:         hours,
		})
		result.TotalHours = domain.Round2(result.TotalHours + hours)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCourses := repository.NewSQLiteCourseRepo(tx)
		for _, e := range result.Courses {
			if err := txCourses.SetEstimatedHours(ctx, e.Code, e.Hours); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("writing estimates: %w", err)
	}
	return result, nil
}
