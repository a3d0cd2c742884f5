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

type preferenceService struct {
	prefs repository.PreferenceRepo
	uow   db.UnitOfWork
}

func NewPreferenceService(prefs repository.PreferenceRepo, uow db.UnitOfWork) PreferenceService {
	return &preferenceService{prefs: prefs, uow: uow}
}

func (s *preferenceService) Get(ctx context.Context) (domain.Preferences, error) {
	return s.prefs.Get(ctx)
}

// Set validates all provided fields up front so a bad value in one field
// never clobbers another.
func (s *preferenceService) Set(ctx context.Context, upd PreferenceUpdate, today time.Time) (domain.Preferences, error) {
	current, err := s.prefs.Get(ctx)
	if err != nil {
		return domain.Preferences{}, err
	}

	if upd.DailyMaxHours != nil {
		if *upd.DailyMaxHours <= 0 {
			return domain.Preferences{}, domain.ValidationErrorf("daily max hours must be positive, got %g", *upd.DailyMaxHours)
		}
		current.DailyMaxHours = *upd.DailyMaxHours
	}
	if upd.DaysOff != nil {
		normalized, err := domain.NormalizeDaysOff(upd.DaysOff)
		if err != nil {
			return domain.Preferences{}, err
		}
		current.DaysOff = normalized
	}
	if upd.StartDateText != nil {
		d, ok := dates.Resolve(*upd.StartDateText, today)
		if !ok {
			return domain.Preferences{}, domain.ParseErrorf("could not find a date in %q", *upd.StartDateText)
		}
		current.StartDate = &d
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePreferenceRepo(tx).Save(ctx, current)
	})
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("saving preferences: %w", err)
	}
	return current, nil
}
