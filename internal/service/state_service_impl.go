package service

import (
	"context"
	"fmt"

	"github.com/tbielak/cram/internal/db"
	"github.com/tbielak/cram/internal/repository"
)

type stateService struct {
	courses repository.CourseRepo
	prefs   repository.PreferenceRepo
	plans   repository.PlanRepo
	uow     db.UnitOfWork
}

func NewStateService(courses repository.CourseRepo, prefs repository.PreferenceRepo, plans repository.PlanRepo, uow db.UnitOfWork) StateService {
	return &stateService{courses: courses, prefs: prefs, plans: plans, uow: uow}
}

func (s *stateService) Snapshot(ctx context.Context) (*StateSnapshot, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	prefs, err := s.prefs.Get(ctx)
	if err != nil {
		return nil, err
	}
	plan, err := s.plans.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &StateSnapshot{Courses: courses, Preferences: prefs, Plan: plan}, nil
}

func (s *stateService) Reset(ctx context.Context) (*StateSnapshot, error) {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLitePlanRepo(tx).Clear(ctx); err != nil {
			return err
		}
		if err := repository.NewSQLiteCourseRepo(tx).DeleteAll(ctx); err != nil {
			return err
		}
		return repository.NewSQLitePreferenceRepo(tx).Reset(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("resetting state: %w", err)
	}
	return s.Snapshot(ctx)
}
