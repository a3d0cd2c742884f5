package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbielak/cram/internal/domain"
	"github.com/tbielak/cram/internal/testutil"
)

func TestPreferenceRepo_DefaultsWhenUnset(t *testing.T) {
	repo := NewSQLitePreferenceRepo(testutil.NewTestDB(t))

	p, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), p)
}

func TestPreferenceRepo_SaveRoundTrip(t *testing.T) {
	repo := NewSQLitePreferenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	saved := domain.Preferences{
		DailyMaxHours: 4.5,
		DaysOff:       []string{"saturday", "sunday"},
		StartDate:     &start,
	}
	require.NoError(t, repo.Save(ctx, saved))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4.5, got.DailyMaxHours)
	assert.Equal(t, []string{"saturday", "sunday"}, got.DaysOff)
	require.NotNil(t, got.StartDate)
	assert.Equal(t, start, *got.StartDate)
}

func TestPreferenceRepo_SaveOverwrites(t *testing.T) {
	repo := NewSQLitePreferenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.Preferences{DailyMaxHours: 2, DaysOff: []string{"monday"}}))
	require.NoError(t, repo.Save(ctx, domain.Preferences{DailyMaxHours: 5}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.DailyMaxHours)
	assert.Empty(t, got.DaysOff)
	assert.Nil(t, got.StartDate)
}

func TestPreferenceRepo_ResetRestoresDefaults(t *testing.T) {
	repo := NewSQLitePreferenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.Preferences{DailyMaxHours: 6}))
	require.NoError(t, repo.Reset(ctx))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), got)
}
