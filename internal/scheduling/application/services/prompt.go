package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/lifeflow/internal/identity/application/settings"
)

// buildGeneratePrompt assembles the single-turn prompt for the initial
// schedule generation: today's date, the user's rhythm, the pending tasks,
// and the five planning directives with the expected line format.
func buildGeneratePrompt(now time.Time, tasks []TaskSummary, prefs settings.Preferences) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a gentle, understanding life assistant. Today is %s.\n\n", now.Format("Monday, January 2"))

	b.WriteString("The user's daily rhythm:\n")
	fmt.Fprintf(&b, "- Usual wake time: %s\n", prefs.UsualWakeTime)
	fmt.Fprintf(&b, "- Usual bed time: %s\n", prefs.UsualBedTime)
	fmt.Fprintf(&b, "- Longest single focus session: %d minutes\n", prefs.MaxFocusMinutes)
	fmt.Fprintf(&b, "- Break length: %d minutes\n", prefs.BreakMinutes)
	if prefs.PersonalNotes != "" {
		fmt.Fprintf(&b, "- Personal notes: %s\n", prefs.PersonalNotes)
	}

	b.WriteString("\nPending tasks:\n")
	for _, t := range tasks {
		fmt.Fprintf(&b, "- %s (about %d minutes, priority: %s", t.Title, t.EstimateMinutes, t.Priority)
		if t.Deadline != nil {
			fmt.Fprintf(&b, ", due: %s", t.Deadline.Format("2006-01-02"))
		}
		b.WriteString(")\n")
	}

	fmt.Fprintf(&b, `
Important principles:
1. Never chain long tasks back to back; the user cannot sustain long stretches of focus
2. No task block may exceed %d minutes
3. Schedule breaks between tasks
4. Respect the user's mental health; do not overfill the day
5. Keep the tone gentle and encouraging

Please lay out today's plan in this format:
%s 08:00 - 08:30 | Wake up & breakfast
📚 09:00 - 09:45 | Task name
☕ 09:45 - 10:00 | Break
...

After the plan, gently ask the user whether it works for them and what they would like to adjust.`,
		prefs.MaxFocusMinutes, TimeGlyph)

	return b.String()
}

// buildReviseSystemPrompt frames a revision turn: return a complete
// replacement schedule when the user asked for a change, stay encouraging,
// and keep honoring the focus ceiling.
func buildReviseSystemPrompt(prefs settings.Preferences) string {
	return fmt.Sprintf(`You are a gentle, understanding life assistant helping the user refine today's schedule.
If the user asks for a change, reply with a complete replacement schedule in the format "%s HH:MM - HH:MM | label", one block per line.
If the user is only chatting, reply conversationally without a schedule.
Stay gentle and encouraging, and never schedule a single task block longer than %d minutes.`,
		TimeGlyph, prefs.MaxFocusMinutes)
}
