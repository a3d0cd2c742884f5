package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbielak/cram/internal/domain"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestPreferenceService_DefaultsWhenUnset(t *testing.T) {
	e := newEnv(t)
	svc := NewPreferenceService(e.prefs, e.uow)

	p, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), p)
}

func TestPreferenceService_SetDailyMax(t *testing.T) {
	e := newEnv(t)
	svc := NewPreferenceService(e.prefs, e.uow)

	p, err := svc.Set(context.Background(), PreferenceUpdate{DailyMaxHours: floatPtr(4.5)}, testToday)
	require.NoError(t, err)
	assert.Equal(t, 4.5, p.DailyMaxHours)
}

func TestPreferenceService_SetDailyMaxRejectsNonPositive(t *testing.T) {
	e := newEnv(t)
	svc := NewPreferenceService(e.prefs, e.uow)

	_, err := svc.Set(context.Background(), PreferenceUpdate{DailyMaxHours: floatPtr(0)}, testToday)
	assert.True(t, domain.IsCode(err, domain.ErrValidation))
}

func TestPreferenceService_SetDaysOffNormalized(t *testing.T) {
	e := newEnv(t)
	svc := NewPreferenceService(e.prefs, e.uow)

	p, err := svc.Set(context.Background(), PreferenceUpdate{DaysOff: []string{" Saturday ", "SUNDAY", "saturday"}}, testToday)
	require.NoError(t, err)
	assert.Equal(t, []string{"saturday", "sunday"}, p.DaysOff)
}

func TestPreferenceService_SetDaysOffRejectsUnknownWeekday(t *testing.T) {
	e := newEnv(t)
	svc := NewPreferenceService(e.prefs, e.uow)

	_, err := svc.Set(context.Background(), PreferenceUpdate{DaysOff: []string{"caturday"}}, testToday)
	assert.True(t, domain.IsCode(err, domain.ErrValidation))
}

func TestPreferenceService_SetStartDateFromText(t *testing.T) {
	e := newEnv(t)
	svc := NewPreferenceService(e.prefs, e.uow)

	p, err := svc.Set(context.Background(), PreferenceUpdate{StartDateText: strPtr("start next wednesday")}, testToday)
	require.NoError(t, err)
	require.NotNil(t, p.StartDate)
	assert.Equal(t, day(2024, 1, 3), *p.StartDate)
}

func TestPreferenceService_PartialUpdateKeepsOtherFields(t *testing.T) {
	e := newEnv(t)
	svc := NewPreferenceService(e.prefs, e.uow)
	ctx := context.Background()

	_, err := svc.Set(ctx, PreferenceUpdate{DailyMaxHours: floatPtr(5), DaysOff: []string{"sunday"}}, testToday)
	require.NoError(t, err)

	p, err := svc.Set(ctx, PreferenceUpdate{DailyMaxHours: floatPtr(2)}, testToday)
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.DailyMaxHours)
	assert.Equal(t, []string{"sunday"}, p.DaysOff, "days off survive an unrelated update")
}

func TestPreferenceService_BadFieldWritesNothing(t *testing.T) {
	e := newEnv(t)
	svc := NewPreferenceService(e.prefs, e.uow)
	ctx := context.Background()

	_, err := svc.Set(ctx, PreferenceUpdate{DailyMaxHours: floatPtr(5)}, testToday)
	require.NoError(t, err)

	// A valid daily max paired with an unparseable start date must not be
	// written either.
	_, err = svc.Set(ctx, PreferenceUpdate{
		DailyMaxHours: floatPtr(8),
		StartDateText: strPtr("whenever works"),
	}, testToday)
	assert.True(t, domain.IsCode(err, domain.ErrParse))

	p, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5.0, p.DailyMaxHours)
}
