package services

import "strings"

// Concierge answers chat messages locally, without the text-generation
// service. It backs the chat command when no API key is configured and is
// intentionally small: keyword matching over a handful of intents with a
// rotating default.
type Concierge struct{}

// NewConcierge creates a Concierge.
func NewConcierge() *Concierge {
	return &Concierge{}
}

var defaultReplies = [...]string{
	"Got it. Is there anything about today's plan you'd like to adjust?",
	"Understood. Tell me more, or ask me to plan your day.",
	"Noted. If you'd like a fresh schedule, say \"plan my day\".",
	"Thanks for sharing. I'm here when you want to rework the schedule.",
}

// Reply produces an answer for a chat message. It never fails; unmatched
// messages fall through to a default picked by message length so repeat
// inputs get the same answer.
func (c *Concierge) Reply(message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))

	switch {
	case containsAny(msg, "schedule", "plan"):
		return "I can build a schedule for you. Run the plan command, or add your tasks first and I'll fit them around your usual rhythm."
	case containsAny(msg, "tired", "exhausted"):
		return "Sounds like a heavy day. Consider trimming the schedule to the essentials and adding a longer break this afternoon."
	case containsAny(msg, "stress", "anxious", "overwhelmed"):
		return "Take a breath. A shorter, confirmed plan often beats an ambitious one. Want me to keep today's list to the top priorities?"
	case containsAny(msg, "sleep"):
		return "Rest matters as much as the plan. Log your sleep and I'll factor your wake time into tomorrow's schedule."
	case containsAny(msg, "thank"):
		return "You're welcome. Have a good one!"
	}

	return defaultReplies[len(msg)%len(defaultReplies)]
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
