package domain

import "github.com/google/uuid"

// BlockKind classifies a segment of a day plan.
type BlockKind string

const (
	BlockKindTask   BlockKind = "task"
	BlockKindBreak  BlockKind = "break"
	BlockKindMeal   BlockKind = "meal"
	BlockKindRest   BlockKind = "rest"
	BlockKindCustom BlockKind = "custom"
)

// Block is one titled, timed segment of a day plan.
//
// TaskID is a weak reference: the task may be deleted after the block is
// created, and lookups must tolerate the missing referent.
type Block struct {
	Start           Clock
	DurationMinutes int
	Title           string
	Kind            BlockKind
	TaskID          *uuid.UUID
}

// End returns the clock position at which the block finishes.
func (b Block) End() Clock {
	return b.Start.Add(b.DurationMinutes)
}
