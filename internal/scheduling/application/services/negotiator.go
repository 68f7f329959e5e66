package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/felixgeelhaar/lifeflow/internal/identity/application/settings"
	"github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
	"github.com/felixgeelhaar/lifeflow/internal/shared/infrastructure/eventbus"
)

// TranscriptWindow caps the turns sent per revision request.
const TranscriptWindow = 10

// reviseApology prefixes the transcript entry a failed revision turn leaves
// behind. Transport failures during revision are absorbed into the
// conversation instead of breaking it.
const reviseApology = "I'm sorry, something went wrong while I was thinking"

// Negotiator generates and iteratively refines a day schedule through a
// conversational exchange with the text-generation service, and manages the
// day's confirmation lifecycle.
//
// Per date the schedule moves Empty -> Generated (generate), Generated ->
// Generated (revise), Generated -> Confirmed (confirm), and any state ->
// Empty (clear). Revising a confirmed schedule is rejected; the user clears
// the day first. There is no unconfirm.
type Negotiator struct {
	scheduleRepo domain.ScheduleRepository
	generator    TextGenerator
	publisher    eventbus.Publisher
	logger       *slog.Logger

	// One negotiation turn at a time; a turn in flight rejects re-entry.
	mu         sync.Mutex
	transcript domain.Transcript
}

// NewNegotiator creates a Negotiator.
func NewNegotiator(
	scheduleRepo domain.ScheduleRepository,
	generator TextGenerator,
	publisher eventbus.Publisher,
	logger *slog.Logger,
) *Negotiator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Negotiator{
		scheduleRepo: scheduleRepo,
		generator:    generator,
		publisher:    publisher,
		logger:       logger,
	}
}

// Generate produces the initial schedule for a date. Preconditions are
// checked eagerly, before any transport use: a missing credential fails with
// domain.ErrNoCredential and an empty task list with
// domain.ErrNoPendingTasks. Transport failures here are surfaced to the
// caller; the user re-invokes.
func (n *Negotiator) Generate(ctx context.Context, date time.Time, tasks []TaskSummary, prefs settings.Preferences) (*domain.DaySchedule, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !prefs.HasCredential() {
		return nil, domain.ErrNoCredential
	}
	if len(tasks) == 0 {
		return nil, domain.ErrNoPendingTasks
	}

	prompt := buildGeneratePrompt(date, tasks, prefs)
	text, err := n.generator.GenerateText(ctx, prefs.GeminiAPIKey, []GeneratorMessage{
		{Role: GeneratorRoleUser, Text: prompt},
	}, "")
	if err != nil {
		return nil, fmt.Errorf("schedule generation failed: %w", err)
	}

	schedule, err := n.scheduleRepo.Load(ctx, date)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		schedule = domain.NewDaySchedule(date)
	}
	schedule.SetContent(text)
	schedule.AddDomainEvent(domain.NewScheduleGenerated(schedule.ID(), schedule.DateKey(), domain.ScheduleSourceGemini))

	if err := n.scheduleRepo.Save(ctx, schedule); err != nil {
		return nil, err
	}
	n.publish(ctx, schedule)

	n.transcript.Reset()
	n.transcript.Append(domain.RoleAssistant, text)

	return schedule, nil
}

// ReviseResult reports one negotiation turn.
type ReviseResult struct {
	// Reply is the assistant's message, or the absorbed apology on failure.
	Reply string
	// ScheduleUpdated is true when the reply replaced the persisted content.
	ScheduleUpdated bool
}

// Revise runs one negotiation turn. The user message joins the transcript,
// the last TranscriptWindow turns go out with the revision framing, and the
// reply is classified: a schedule reply overwrites the persisted content
// (resetting confirmation), a conversational reply leaves it untouched.
// Transport errors become an in-character apology in the transcript and are
// not returned to the caller.
func (n *Negotiator) Revise(ctx context.Context, date time.Time, userMessage string, prefs settings.Preferences) (*ReviseResult, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !prefs.HasCredential() {
		return nil, domain.ErrNoCredential
	}

	schedule, err := n.scheduleRepo.Load(ctx, date)
	if err != nil {
		return nil, err
	}
	if schedule != nil && schedule.IsConfirmed() {
		return nil, domain.ErrScheduleConfirmed
	}

	// A fresh process has an empty transcript; reseed it from the stored
	// narrative so the model sees the schedule under discussion.
	if n.transcript.Len() == 0 && schedule != nil && schedule.Content() != "" {
		n.transcript.Append(domain.RoleAssistant, schedule.Content())
	}

	n.transcript.Append(domain.RoleUser, userMessage)

	messages := transcriptMessages(n.transcript.Window(TranscriptWindow))
	text, err := n.generator.GenerateText(ctx, prefs.GeminiAPIKey, messages, buildReviseSystemPrompt(prefs))
	if err != nil {
		apology := fmt.Sprintf("%s (%s). Could you try again in a moment?", reviseApology, err.Error())
		n.transcript.Append(domain.RoleAssistant, apology)
		n.logger.Warn("revision turn failed, absorbed into transcript", "error", err)
		return &ReviseResult{Reply: apology}, nil
	}

	n.transcript.Append(domain.RoleAssistant, text)

	if !LooksLikeSchedule(text) {
		return &ReviseResult{Reply: text}, nil
	}

	if schedule == nil {
		schedule = domain.NewDaySchedule(date)
	}
	schedule.SetContent(text)
	schedule.AddDomainEvent(domain.NewScheduleRevised(schedule.ID(), schedule.DateKey()))

	if err := n.scheduleRepo.Save(ctx, schedule); err != nil {
		return nil, err
	}
	n.publish(ctx, schedule)

	return &ReviseResult{Reply: text, ScheduleUpdated: true}, nil
}

// Confirm marks the date's schedule as accepted. Fails with
// domain.ErrScheduleNotFound when no schedule exists.
func (n *Negotiator) Confirm(ctx context.Context, date time.Time) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	schedule, err := n.scheduleRepo.Load(ctx, date)
	if err != nil {
		return err
	}
	if schedule == nil {
		return domain.ErrScheduleNotFound
	}

	schedule.Confirm()
	if err := n.scheduleRepo.Save(ctx, schedule); err != nil {
		return err
	}
	n.publish(ctx, schedule)
	return nil
}

// Clear deletes the date's schedule and discards the in-memory transcript.
// Fails with domain.ErrScheduleNotFound when no schedule exists; callers may
// treat that as a benign no-op.
func (n *Negotiator) Clear(ctx context.Context, date time.Time) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	schedule, err := n.scheduleRepo.Load(ctx, date)
	if err != nil {
		return err
	}
	if schedule == nil {
		return domain.ErrScheduleNotFound
	}

	if err := n.scheduleRepo.Delete(ctx, date); err != nil {
		return err
	}
	n.transcript.Reset()

	schedule.AddDomainEvent(domain.NewScheduleCleared(schedule.ID(), schedule.DateKey()))
	n.publish(ctx, schedule)
	return nil
}

// TranscriptLen reports the number of turns held in memory.
func (n *Negotiator) TranscriptLen() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.transcript.Len()
}

func (n *Negotiator) publish(ctx context.Context, schedule *domain.DaySchedule) {
	if err := eventbus.PublishEvents(ctx, n.publisher, schedule.DomainEvents()); err != nil {
		n.logger.Warn("failed to publish schedule events", "error", err)
	}
	schedule.ClearDomainEvents()
}

func transcriptMessages(turns []domain.Turn) []GeneratorMessage {
	messages := make([]GeneratorMessage, 0, len(turns))
	for _, turn := range turns {
		role := GeneratorRoleUser
		if turn.Role == domain.RoleAssistant {
			role = GeneratorRoleModel
		}
		messages = append(messages, GeneratorMessage{Role: role, Text: turn.Text})
	}
	return messages
}
