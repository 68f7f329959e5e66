package services

import (
	"context"
	"sort"
	"time"

	"github.com/felixgeelhaar/lifeflow/internal/identity/application/settings"
	"github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
	"github.com/google/uuid"
)

const (
	// MaxTasksPerDay is a fixed cap representing a cognitive-load ceiling.
	MaxTasksPerDay = 5

	// BreakfastMinutes is the fixed duration of the morning block.
	BreakfastMinutes = 60

	// LunchMinutes is the fixed duration of the midday block.
	LunchMinutes = 60

	breakfastTitle = "Wake up & breakfast"
	breakTitle     = "Take a break ☕"
	lunchTitle     = "Lunch & rest"
)

// TaskSummary is the scheduler's read-only view of a pending task.
type TaskSummary struct {
	ID              uuid.UUID
	Title           string
	EstimateMinutes int
	PriorityWeight  int
	Priority        string
	Deadline        *time.Time
}

// PendingTaskProvider enumerates the user's incomplete tasks.
type PendingTaskProvider interface {
	PendingTasks(ctx context.Context) ([]TaskSummary, error)
}

// LocalScheduler lays out a day plan with no external dependency. It is a
// deterministic greedy heuristic, used when no Gemini credential is
// configured and as the baseline the negotiation engine refines.
type LocalScheduler struct{}

// NewLocalScheduler creates a LocalScheduler.
func NewLocalScheduler() LocalScheduler {
	return LocalScheduler{}
}

// BuildDay produces the ordered block list for one day.
//
// High-priority tasks are scheduled first (stable among equals), at most
// MaxTasksPerDay of them. The cursor starts at the usual wake time with a
// fixed breakfast block; each task block is capped at the focus ceiling and
// followed by a break. When the cursor lands inside the noon hour, lunch is
// pinned to 12:00 and the cursor jumps to 13:00, discarding any partially
// elapsed time.
//
// A task estimated longer than the focus ceiling is truncated to a single
// capped block; the remainder is not scheduled.
func (s LocalScheduler) BuildDay(tasks []TaskSummary, prefs settings.Preferences) []domain.Block {
	selected := make([]TaskSummary, len(tasks))
	copy(selected, tasks)
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].PriorityWeight > selected[j].PriorityWeight
	})
	if len(selected) > MaxTasksPerDay {
		selected = selected[:MaxTasksPerDay]
	}

	cursor := domain.ParseClock(prefs.UsualWakeTime)
	blocks := []domain.Block{{
		Start:           cursor,
		DurationMinutes: BreakfastMinutes,
		Title:           breakfastTitle,
		Kind:            domain.BlockKindMeal,
	}}
	cursor = cursor.Add(BreakfastMinutes)

	lunchEmitted := false
	for _, t := range selected {
		duration := t.EstimateMinutes
		if duration > prefs.MaxFocusMinutes {
			duration = prefs.MaxFocusMinutes
		}

		taskID := t.ID
		blocks = append(blocks, domain.Block{
			Start:           cursor,
			DurationMinutes: duration,
			Title:           t.Title,
			Kind:            domain.BlockKindTask,
			TaskID:          &taskID,
		})
		cursor = cursor.Add(duration)

		blocks = append(blocks, domain.Block{
			Start:           cursor,
			DurationMinutes: prefs.BreakMinutes,
			Title:           breakTitle,
			Kind:            domain.BlockKindBreak,
		})
		cursor = cursor.Add(prefs.BreakMinutes)

		if cursor.Hour >= 12 && cursor.Hour < 13 && !lunchEmitted {
			blocks = append(blocks, domain.Block{
				Start:           domain.Clock{Hour: 12},
				DurationMinutes: LunchMinutes,
				Title:           lunchTitle,
				Kind:            domain.BlockKindMeal,
			})
			cursor = domain.Clock{Hour: 13}
			lunchEmitted = true
		}
	}

	return blocks
}
