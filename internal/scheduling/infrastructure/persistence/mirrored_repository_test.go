package persistence

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
)

type fakeDurableRepo struct {
	mu        sync.Mutex
	schedules map[string]*domain.DaySchedule
	loadErr   error
}

func newFakeDurableRepo() *fakeDurableRepo {
	return &fakeDurableRepo{schedules: make(map[string]*domain.DaySchedule)}
}

func (r *fakeDurableRepo) Load(_ context.Context, date time.Time) (*domain.DaySchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.schedules[date.Format(dateLayout)], nil
}

func (r *fakeDurableRepo) Save(_ context.Context, s *domain.DaySchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedules[s.DateKey()] = s
	return nil
}

func (r *fakeDurableRepo) Delete(_ context.Context, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.schedules, date.Format(dateLayout))
	return nil
}

type fakeMirror struct {
	mu        sync.Mutex
	schedules map[string]*domain.DaySchedule
	failing   bool
	stores    int
	removes   int
}

func newFakeMirror() *fakeMirror {
	return &fakeMirror{schedules: make(map[string]*domain.DaySchedule)}
}

func (m *fakeMirror) Load(_ context.Context, date time.Time) (*domain.DaySchedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return nil, errors.New("mirror unavailable")
	}
	return m.schedules[date.Format(dateLayout)], nil
}

func (m *fakeMirror) Store(_ context.Context, s *domain.DaySchedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return errors.New("mirror unavailable")
	}
	m.stores++
	m.schedules[s.DateKey()] = s
	return nil
}

func (m *fakeMirror) Remove(_ context.Context, date time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return errors.New("mirror unavailable")
	}
	m.removes++
	delete(m.schedules, date.Format(dateLayout))
	return nil
}

var mirrorDate = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

func sampleSchedule(content string) *domain.DaySchedule {
	s := domain.NewDaySchedule(mirrorDate)
	s.SetContent(content)
	return s
}

func TestMirroredSaveWritesBoth(t *testing.T) {
	durable := newFakeDurableRepo()
	mirror := newFakeMirror()
	repo := NewMirroredScheduleRepository(durable, mirror, nil)

	require.NoError(t, repo.Save(context.Background(), sampleSchedule("plan")))

	assert.Len(t, durable.schedules, 1)
	assert.Len(t, mirror.schedules, 1)
}

func TestMirroredSaveSurvivesMirrorFailure(t *testing.T) {
	durable := newFakeDurableRepo()
	mirror := newFakeMirror()
	mirror.failing = true
	repo := NewMirroredScheduleRepository(durable, mirror, nil)

	require.NoError(t, repo.Save(context.Background(), sampleSchedule("plan")))

	assert.Len(t, durable.schedules, 1, "durable write still lands")
	assert.Empty(t, mirror.schedules)
}

func TestMirroredLoadRefreshesMirror(t *testing.T) {
	durable := newFakeDurableRepo()
	mirror := newFakeMirror()
	repo := NewMirroredScheduleRepository(durable, mirror, nil)
	require.NoError(t, durable.Save(context.Background(), sampleSchedule("plan")))

	loaded, err := repo.Load(context.Background(), mirrorDate)

	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Len(t, mirror.schedules, 1, "reads backfill the mirror")
}

func TestMirroredLoadRemovesStaleMirrorEntry(t *testing.T) {
	durable := newFakeDurableRepo()
	mirror := newFakeMirror()
	repo := NewMirroredScheduleRepository(durable, mirror, nil)
	require.NoError(t, mirror.Store(context.Background(), sampleSchedule("stale")))

	loaded, err := repo.Load(context.Background(), mirrorDate)

	require.NoError(t, err)
	assert.Nil(t, loaded)
	assert.Empty(t, mirror.schedules, "stale mirror entries are dropped")
}

func TestLoadProvisionalSettlesOnDurable(t *testing.T) {
	durable := newFakeDurableRepo()
	mirror := newFakeMirror()
	repo := NewMirroredScheduleRepository(durable, mirror, nil)

	fresh := sampleSchedule("fresh plan")
	require.NoError(t, durable.Save(context.Background(), fresh))
	require.NoError(t, mirror.Store(context.Background(), sampleSchedule("stale plan")))

	result, err := repo.LoadProvisional(context.Background(), mirrorDate)
	require.NoError(t, err)

	require.NotNil(t, result.Schedule)
	assert.Equal(t, "stale plan", result.Schedule.Content())

	settled, ok := <-result.Settled
	require.True(t, ok)
	require.NotNil(t, settled)
	assert.Equal(t, "fresh plan", settled.Content())
}

func TestLoadProvisionalDegradesOnMirrorFailure(t *testing.T) {
	durable := newFakeDurableRepo()
	mirror := newFakeMirror()
	repo := NewMirroredScheduleRepository(durable, mirror, nil)
	require.NoError(t, durable.Save(context.Background(), sampleSchedule("plan")))
	mirror.failing = true

	result, err := repo.LoadProvisional(context.Background(), mirrorDate)
	require.NoError(t, err)

	assert.Nil(t, result.Schedule, "mirror failure degrades to no provisional answer")
	settled := <-result.Settled
	require.NotNil(t, settled)
	assert.Equal(t, "plan", settled.Content())
}

func TestLoadProvisionalClosesChannelOnDurableFailure(t *testing.T) {
	durable := newFakeDurableRepo()
	durable.loadErr = errors.New("disk gone")
	repo := NewMirroredScheduleRepository(durable, newFakeMirror(), nil)

	result, err := repo.LoadProvisional(context.Background(), mirrorDate)
	require.NoError(t, err)

	_, ok := <-result.Settled
	assert.False(t, ok, "channel closes without a value when the durable read fails")
}

func TestMirroredDeleteRemovesBoth(t *testing.T) {
	durable := newFakeDurableRepo()
	mirror := newFakeMirror()
	repo := NewMirroredScheduleRepository(durable, mirror, nil)
	require.NoError(t, repo.Save(context.Background(), sampleSchedule("plan")))

	require.NoError(t, repo.Delete(context.Background(), mirrorDate))

	assert.Empty(t, durable.schedules)
	assert.Empty(t, mirror.schedules)
}
