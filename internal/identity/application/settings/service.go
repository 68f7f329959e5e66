// Package settings manages the user's preferences. The scheduling core reads
// them as an immutable snapshot; it never mutates settings directly.
package settings

import "context"

// Preferences is the user's scheduling profile.
type Preferences struct {
	// UsualWakeTime and UsualBedTime are "HH:mm" clock strings.
	UsualWakeTime string
	UsualBedTime  string

	// MaxFocusMinutes caps a single focus block.
	MaxFocusMinutes int
	// BreakMinutes is the rest inserted between focus blocks.
	BreakMinutes int

	// PersonalNotes is free text included in generation prompts.
	PersonalNotes string

	// GeminiAPIKey enables the negotiation engine when non-empty.
	GeminiAPIKey string
}

// DefaultPreferences returns the out-of-box profile.
func DefaultPreferences() Preferences {
	return Preferences{
		UsualWakeTime:   "08:00",
		UsualBedTime:    "23:00",
		MaxFocusMinutes: 45,
		BreakMinutes:    15,
	}
}

// HasCredential reports whether a text-generation credential is configured.
func (p Preferences) HasCredential() bool {
	return p.GeminiAPIKey != ""
}

// Repository defines storage for preferences.
type Repository interface {
	Load(ctx context.Context) (Preferences, error)
	Save(ctx context.Context, prefs Preferences) error
}

// Service manages user preferences.
type Service struct {
	repo Repository
}

// NewService creates a settings service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Snapshot returns the current preferences.
func (s *Service) Snapshot(ctx context.Context) (Preferences, error) {
	return s.repo.Load(ctx)
}

// Update replaces the stored preferences.
func (s *Service) Update(ctx context.Context, prefs Preferences) error {
	return s.repo.Save(ctx, prefs)
}
