package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/lifeflow/internal/identity/application/settings"
	"github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
)

// stubGenerator scripts the text-generation replies and records calls.
type stubGenerator struct {
	replies []string
	errs    []error
	calls   int

	lastMessages []GeneratorMessage
	lastSystem   string
}

func (g *stubGenerator) GenerateText(_ context.Context, _ string, messages []GeneratorMessage, systemPrompt string) (string, error) {
	idx := g.calls
	g.calls++
	g.lastMessages = messages
	g.lastSystem = systemPrompt
	var err error
	if idx < len(g.errs) {
		err = g.errs[idx]
	}
	var reply string
	if idx < len(g.replies) {
		reply = g.replies[idx]
	}
	return reply, err
}

// memoryScheduleRepo keeps schedules in a map keyed by date.
type memoryScheduleRepo struct {
	schedules map[string]*domain.DaySchedule
	saveErr   error
}

func newMemoryScheduleRepo() *memoryScheduleRepo {
	return &memoryScheduleRepo{schedules: make(map[string]*domain.DaySchedule)}
}

func (r *memoryScheduleRepo) Load(_ context.Context, date time.Time) (*domain.DaySchedule, error) {
	return r.schedules[date.Format("2006-01-02")], nil
}

func (r *memoryScheduleRepo) Save(_ context.Context, s *domain.DaySchedule) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.schedules[s.DateKey()] = s
	return nil
}

func (r *memoryScheduleRepo) Delete(_ context.Context, date time.Time) error {
	delete(r.schedules, date.Format("2006-01-02"))
	return nil
}

// nopPublisher drops every event.
type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, []byte) error { return nil }
func (nopPublisher) Close() error                                  { return nil }

func credentialedPrefs() settings.Preferences {
	prefs := settings.DefaultPreferences()
	prefs.GeminiAPIKey = "test-key"
	return prefs
}

func someTasks() []TaskSummary {
	return []TaskSummary{{Title: "Write report", EstimateMinutes: 60, PriorityWeight: 3, Priority: "high"}}
}

var testDate = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

func TestGenerateRequiresCredential(t *testing.T) {
	gen := &stubGenerator{}
	n := NewNegotiator(newMemoryScheduleRepo(), gen, nopPublisher{}, nil)

	_, err := n.Generate(context.Background(), testDate, someTasks(), settings.DefaultPreferences())

	assert.ErrorIs(t, err, domain.ErrNoCredential)
	assert.Zero(t, gen.calls, "no transport call before precondition checks pass")
}

func TestGenerateRequiresPendingTasks(t *testing.T) {
	gen := &stubGenerator{}
	n := NewNegotiator(newMemoryScheduleRepo(), gen, nopPublisher{}, nil)

	_, err := n.Generate(context.Background(), testDate, nil, credentialedPrefs())

	assert.ErrorIs(t, err, domain.ErrNoPendingTasks)
	assert.Zero(t, gen.calls)
}

func TestGeneratePersistsContentAndSeedsTranscript(t *testing.T) {
	repo := newMemoryScheduleRepo()
	gen := &stubGenerator{replies: []string{"⏰ 08:00 - 09:00 | Breakfast"}}
	n := NewNegotiator(repo, gen, nopPublisher{}, nil)

	schedule, err := n.Generate(context.Background(), testDate, someTasks(), credentialedPrefs())

	require.NoError(t, err)
	assert.Equal(t, "⏰ 08:00 - 09:00 | Breakfast", schedule.Content())
	assert.False(t, schedule.IsConfirmed())

	stored, _ := repo.Load(context.Background(), testDate)
	require.NotNil(t, stored)
	assert.Equal(t, schedule.Content(), stored.Content())

	assert.Equal(t, 1, n.TranscriptLen(), "the generated plan opens the conversation")
}

func TestGenerateSurfacesTransportErrors(t *testing.T) {
	gen := &stubGenerator{errs: []error{errors.New("upstream down")}}
	repo := newMemoryScheduleRepo()
	n := NewNegotiator(repo, gen, nopPublisher{}, nil)

	_, err := n.Generate(context.Background(), testDate, someTasks(), credentialedPrefs())

	require.Error(t, err)
	assert.Empty(t, repo.schedules, "a failed generation stores nothing")
}

func TestReviseScheduleReplyOverwritesContent(t *testing.T) {
	repo := newMemoryScheduleRepo()
	gen := &stubGenerator{replies: []string{
		"⏰ 08:00 - 09:00 | Breakfast",
		"⏰ 09:30 - 10:30 | Deep work",
	}}
	n := NewNegotiator(repo, gen, nopPublisher{}, nil)

	_, err := n.Generate(context.Background(), testDate, someTasks(), credentialedPrefs())
	require.NoError(t, err)

	result, err := n.Revise(context.Background(), testDate, "push everything later", credentialedPrefs())

	require.NoError(t, err)
	assert.True(t, result.ScheduleUpdated)
	stored, _ := repo.Load(context.Background(), testDate)
	assert.Equal(t, "⏰ 09:30 - 10:30 | Deep work", stored.Content())
	assert.False(t, stored.IsConfirmed())
}

func TestReviseConversationalReplyLeavesScheduleUntouched(t *testing.T) {
	repo := newMemoryScheduleRepo()
	gen := &stubGenerator{replies: []string{
		"⏰ 08:00 - 09:00 | Breakfast",
		"Of course! What would you like to change?",
	}}
	n := NewNegotiator(repo, gen, nopPublisher{}, nil)

	_, err := n.Generate(context.Background(), testDate, someTasks(), credentialedPrefs())
	require.NoError(t, err)

	result, err := n.Revise(context.Background(), testDate, "can we talk about it?", credentialedPrefs())

	require.NoError(t, err)
	assert.False(t, result.ScheduleUpdated)
	stored, _ := repo.Load(context.Background(), testDate)
	assert.Equal(t, "⏰ 08:00 - 09:00 | Breakfast", stored.Content())
}

func TestReviseAbsorbsTransportErrors(t *testing.T) {
	repo := newMemoryScheduleRepo()
	gen := &stubGenerator{
		replies: []string{"⏰ 08:00 - 09:00 | Breakfast", ""},
		errs:    []error{nil, errors.New("timeout")},
	}
	n := NewNegotiator(repo, gen, nopPublisher{}, nil)

	_, err := n.Generate(context.Background(), testDate, someTasks(), credentialedPrefs())
	require.NoError(t, err)
	turnsBefore := n.TranscriptLen()

	result, err := n.Revise(context.Background(), testDate, "try again", credentialedPrefs())

	require.NoError(t, err, "transport failures during revision stay in the conversation")
	assert.False(t, result.ScheduleUpdated)
	assert.Contains(t, result.Reply, "sorry")
	assert.Equal(t, turnsBefore+2, n.TranscriptLen(), "user turn and apology both recorded")
}

func TestReviseBlockedOnConfirmedSchedule(t *testing.T) {
	repo := newMemoryScheduleRepo()
	gen := &stubGenerator{replies: []string{"⏰ 08:00 - 09:00 | Breakfast"}}
	n := NewNegotiator(repo, gen, nopPublisher{}, nil)

	_, err := n.Generate(context.Background(), testDate, someTasks(), credentialedPrefs())
	require.NoError(t, err)
	require.NoError(t, n.Confirm(context.Background(), testDate))

	_, err = n.Revise(context.Background(), testDate, "change it anyway", credentialedPrefs())

	assert.ErrorIs(t, err, domain.ErrScheduleConfirmed)
	assert.Equal(t, 1, gen.calls, "no transport call for a blocked revision")
}

func TestReviseReseedsTranscriptFromStoredContent(t *testing.T) {
	repo := newMemoryScheduleRepo()
	existing := domain.NewDaySchedule(testDate)
	existing.SetContent("⏰ 08:00 - 09:00 | Breakfast")
	require.NoError(t, repo.Save(context.Background(), existing))

	gen := &stubGenerator{replies: []string{"Happy to adjust, what should move?"}}
	n := NewNegotiator(repo, gen, nopPublisher{}, nil)

	_, err := n.Revise(context.Background(), testDate, "shift my morning", credentialedPrefs())

	require.NoError(t, err)
	require.NotEmpty(t, gen.lastMessages)
	assert.Equal(t, GeneratorRoleModel, gen.lastMessages[0].Role, "stored plan reseeds the conversation")
	assert.Equal(t, "⏰ 08:00 - 09:00 | Breakfast", gen.lastMessages[0].Text)
}

func TestReviseWindowsTranscript(t *testing.T) {
	repo := newMemoryScheduleRepo()
	replies := make([]string, 0, 16)
	replies = append(replies, "⏰ 08:00 - 09:00 | Breakfast")
	for i := 0; i < 15; i++ {
		replies = append(replies, "Sure, noted.")
	}
	gen := &stubGenerator{replies: replies}
	n := NewNegotiator(repo, gen, nopPublisher{}, nil)

	_, err := n.Generate(context.Background(), testDate, someTasks(), credentialedPrefs())
	require.NoError(t, err)
	for i := 0; i < 15; i++ {
		_, err := n.Revise(context.Background(), testDate, "another thought", credentialedPrefs())
		require.NoError(t, err)
	}

	assert.LessOrEqual(t, len(gen.lastMessages), TranscriptWindow)
}

func TestConfirmMissingSchedule(t *testing.T) {
	n := NewNegotiator(newMemoryScheduleRepo(), &stubGenerator{}, nopPublisher{}, nil)

	err := n.Confirm(context.Background(), testDate)

	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
}

func TestClearDeletesScheduleAndTranscript(t *testing.T) {
	repo := newMemoryScheduleRepo()
	gen := &stubGenerator{replies: []string{"⏰ 08:00 - 09:00 | Breakfast"}}
	n := NewNegotiator(repo, gen, nopPublisher{}, nil)

	_, err := n.Generate(context.Background(), testDate, someTasks(), credentialedPrefs())
	require.NoError(t, err)

	require.NoError(t, n.Clear(context.Background(), testDate))

	stored, _ := repo.Load(context.Background(), testDate)
	assert.Nil(t, stored)
	assert.Zero(t, n.TranscriptLen())

	assert.ErrorIs(t, n.Clear(context.Background(), testDate), domain.ErrScheduleNotFound)
}
