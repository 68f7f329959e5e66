package domain

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in the negotiation conversation.
type Turn struct {
	Role Role
	Text string
}

// Transcript is the ephemeral, process-local negotiation history. It is not
// persisted; on reload it is reseeded from the stored schedule's content.
type Transcript struct {
	turns []Turn
}

// Append adds a turn to the transcript.
func (t *Transcript) Append(role Role, text string) {
	t.turns = append(t.turns, Turn{Role: role, Text: text})
}

// Window returns the most recent n turns, capping the context sent to the
// text-generation service.
func (t *Transcript) Window(n int) []Turn {
	if len(t.turns) <= n {
		return t.turns
	}
	return t.turns[len(t.turns)-n:]
}

// Len returns the number of turns.
func (t *Transcript) Len() int {
	return len(t.turns)
}

// Reset discards all turns.
func (t *Transcript) Reset() {
	t.turns = nil
}
