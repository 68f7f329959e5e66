package services

import "strings"

// TimeGlyph is the marker the prompt asks the model to prefix schedule lines
// with ("⏰ HH:MM - HH:MM | label").
const TimeGlyph = "⏰"

// LooksLikeSchedule reports whether a negotiation reply constitutes a
// replacement schedule rather than plain conversation.
//
// The rule set is deliberately simple and centralized here so it can be
// swapped for a structured response format later without touching callers: a
// reply is a schedule when it carries the time-block glyph or a half-hour
// clock reading (":00" or ":30").
func LooksLikeSchedule(reply string) bool {
	return strings.Contains(reply, TimeGlyph) ||
		strings.Contains(reply, ":00") ||
		strings.Contains(reply, ":30")
}
