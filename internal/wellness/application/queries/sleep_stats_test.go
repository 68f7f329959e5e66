package queries

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/lifeflow/internal/wellness/domain"
)

type fakeSleepRepo struct {
	records []*domain.SleepRecord

	gotFrom time.Time
	gotTo   time.Time
}

func (r *fakeSleepRepo) FindByDate(context.Context, time.Time) (*domain.SleepRecord, error) {
	return nil, nil
}

func (r *fakeSleepRepo) FindRange(_ context.Context, from, to time.Time) ([]*domain.SleepRecord, error) {
	r.gotFrom, r.gotTo = from, to
	return r.records, nil
}

func (r *fakeSleepRepo) Save(context.Context, *domain.SleepRecord) error { return nil }
func (r *fakeSleepRepo) Delete(context.Context, time.Time) error         { return nil }

func night(t *testing.T, day int, bed, wake string, quality int) *domain.SleepRecord {
	t.Helper()
	record, err := domain.NewSleepRecord(time.Date(2026, 8, day, 0, 0, 0, 0, time.UTC), bed, wake, quality)
	require.NoError(t, err)
	return record
}

func TestSleepStats(t *testing.T) {
	repo := &fakeSleepRepo{records: []*domain.SleepRecord{
		night(t, 26, "23:00", "07:00", 4), // 480 minutes
		night(t, 27, "00:30", "08:00", 2), // 450 minutes
	}}
	handler := NewSleepStatsHandler(repo)

	end := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	view, err := handler.Handle(context.Background(), SleepStatsQuery{EndDate: end, Days: 7})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC), repo.gotFrom, "window includes the end date")
	assert.Equal(t, end, repo.gotTo)

	assert.Equal(t, 2, view.RecordedNights)
	require.Len(t, view.Nights, 2)
	assert.Equal(t, "2026-08-26", view.Nights[0].Date)
	assert.Equal(t, 480, view.Nights[0].DurationMinutes)
	assert.Equal(t, 465, view.AverageMinutes)
	assert.InDelta(t, 3.0, view.AverageQuality, 0.001)
}

func TestSleepStatsSkipsUntimedAndUnratedNights(t *testing.T) {
	repo := &fakeSleepRepo{records: []*domain.SleepRecord{
		night(t, 26, "23:00", "07:00", 0), // timed, unrated
		night(t, 27, "", "", 4),           // rated, untimed
	}}
	handler := NewSleepStatsHandler(repo)

	view, err := handler.Handle(context.Background(), SleepStatsQuery{
		EndDate: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, view.RecordedNights)
	assert.Equal(t, 480, view.AverageMinutes, "untimed nights do not drag the average down")
	assert.InDelta(t, 4.0, view.AverageQuality, 0.001)
}

func TestSleepStatsEmptyWindow(t *testing.T) {
	handler := NewSleepStatsHandler(&fakeSleepRepo{})

	view, err := handler.Handle(context.Background(), SleepStatsQuery{
		EndDate: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Zero(t, view.RecordedNights)
	assert.Zero(t, view.AverageMinutes)
	assert.Zero(t, view.AverageQuality)
}
