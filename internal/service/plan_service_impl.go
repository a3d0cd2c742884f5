package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tbielak/cram/internal/db"
	"github.com/tbielak/cram/internal/domain"
	"github.com/tbielak/cram/internal/repository"
	"github.com/tbielak/cram/internal/scheduler"
)

type planService struct {
	courses  repository.CourseRepo
	prefs    repository.PreferenceRepo
	plans    repository.PlanRepo
	uow      db.UnitOfWork
	observer Observer
}

func NewPlanService(courses repository.CourseRepo, prefs repository.PreferenceRepo, plans repository.PlanRepo, uow db.UnitOfWork, observers ...Observer) PlanService {
	return &planService{
		courses:  courses,
		prefs:    prefs,
		plans:    plans,
		uow:      uow,
		observer: observerOrNoop(observers),
	}
}

// Build computes a fresh plan and swaps it in. Scheduling errors surface
// before any write, so a failed build keeps the previous plan intact.
func (s *planService) Build(ctx context.Context, today time.Time) (days []domain.PlanDay, err error) {
	startedAt := time.Now()
	fields := opFields{}
	defer func() {
		s.observer.ObserveOp(ctx, "build-plan", time.Since(startedAt), err, fields)
	}()

	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	prefs, err := s.prefs.Get(ctx)
	if err != nil {
		return nil, err
	}
	fields["course_count"] = len(courses)

	days, err = scheduler.BuildPlan(courses, prefs, today)
	if err != nil {
		return nil, err
	}
	fields["day_count"] = len(days)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePlanRepo(tx).Replace(ctx, days)
	})
	if err != nil {
		return nil, fmt.Errorf("storing plan: %w", err)
	}
	return days, nil
}

func (s *planService) Current(ctx context.Context) ([]domain.PlanDay, error) {
	return s.plans.Get(ctx)
}

func (s *planService) Review(ctx context.Context, today time.Time) ([]string, error) {
	plan, err := s.plans.Get(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	prefs, err := s.prefs.Get(ctx)
	if err != nil {
		return nil, err
	}
	return scheduler.ReviewPlan(scheduler.ReviewInput{
		Plan:    plan,
		Courses: courses,
		Prefs:   prefs,
		Today:   today,
	})
}
