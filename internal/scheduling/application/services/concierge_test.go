package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConciergeIntentReplies(t *testing.T) {
	c := NewConcierge()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"planning", "Can you plan my afternoon?", "build a schedule"},
		{"fatigue", "I'm so TIRED today", "heavy day"},
		{"stress", "feeling overwhelmed by everything", "Take a breath"},
		{"sleep", "I barely got any sleep", "Rest matters"},
		{"gratitude", "thanks a lot!", "You're welcome"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, c.Reply(tt.message), tt.want)
		})
	}
}

func TestConciergeDefaultIsDeterministic(t *testing.T) {
	c := NewConcierge()

	first := c.Reply("hmm")
	assert.Equal(t, first, c.Reply("hmm"), "repeat inputs get the same answer")
	assert.Equal(t, first, c.Reply("  hmm  "), "surrounding whitespace is ignored")
}

func TestConciergePlanWinsOverOtherKeywords(t *testing.T) {
	c := NewConcierge()

	reply := c.Reply("I'm tired but let's plan anyway")
	assert.Contains(t, reply, "build a schedule")
}
