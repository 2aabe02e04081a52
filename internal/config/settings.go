package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyAdminMode = "admin_mode"
	KeyLanguage  = "app_language"
	KeyPageLimit = "page_limit"
)

// Default values
const (
	DefaultAdminMode = false
	DefaultLanguage  = "fr"
	DefaultPageLimit = 50
)

// Page limit bounds accepted by the backend
const (
	MinPageLimit = 1
	MaxPageLimit = 100
)

// Settings manages persistent user preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAdminMode reports whether management controls are enabled
func (s *Settings) GetAdminMode() bool {
	return s.app.Preferences().BoolWithFallback(KeyAdminMode, DefaultAdminMode)
}

// SetAdminMode toggles management controls
func (s *Settings) SetAdminMode(enabled bool) {
	s.app.Preferences().SetBool(KeyAdminMode, enabled)
}

// GetLanguage returns the configured interface language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the interface language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetPageLimit returns how many records list screens request per page
func (s *Settings) GetPageLimit() int {
	value := s.app.Preferences().Int(KeyPageLimit)
	if value <= 0 {
		s.SetPageLimit(DefaultPageLimit)
		return DefaultPageLimit
	}
	if value > MaxPageLimit {
		s.SetPageLimit(MaxPageLimit)
		return MaxPageLimit
	}
	return value
}

// SetPageLimit sets how many records list screens request per page
func (s *Settings) SetPageLimit(limit int) {
	if limit < MinPageLimit {
		limit = MinPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	s.app.Preferences().SetInt(KeyPageLimit, limit)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"fr": "Français",
		"en": "English",
	}
}
