package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeSchedule(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  bool
	}{
		{"glyph", "⏰ 08:15 - 09:15 | Breakfast", true},
		{"full hour", "Let's start at 9:00 with the report.", true},
		{"half hour", "How about 14:30 for the review?", true},
		{"plain conversation", "Sure, tell me more about how you slept.", false},
		{"quarter hour only", "Meet at 9:15?", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeSchedule(tt.reply))
		})
	}
}
