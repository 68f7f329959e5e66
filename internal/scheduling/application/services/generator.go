package services

import "context"

// GeneratorRole identifies who authored a generation message. The external
// service distinguishes user-authored from model-authored turns.
type GeneratorRole string

const (
	GeneratorRoleUser  GeneratorRole = "user"
	GeneratorRoleModel GeneratorRole = "model"
)

// GeneratorMessage is one role-tagged turn sent to the text-generation
// service.
type GeneratorMessage struct {
	Role GeneratorRole
	Text string
}

// TextGenerator is the port to the external text-generation capability.
// Implementations must substitute a fixed fallback apology for an empty
// payload rather than returning empty content.
type TextGenerator interface {
	GenerateText(ctx context.Context, apiKey string, messages []GeneratorMessage, systemPrompt string) (string, error)
}
