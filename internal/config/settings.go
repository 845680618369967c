package config

import (
	"fyne.io/fyne/v2"
)

// ThemeVariant selects the desktop palette
type ThemeVariant string

const (
	ThemeSystem ThemeVariant = "system"
	ThemeLight  ThemeVariant = "light"
	ThemeDark   ThemeVariant = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyMusicVolume    = "music_volume"
	KeyMusicAutoplay  = "music_autoplay"
	KeyClickThreshold = "click_threshold"
	KeyThemeVariant   = "theme_variant"
	KeyLanguage       = "app_language"
	KeyLastPortfolio  = "last_portfolio"
)

// Default values
const (
	DefaultMusicVolume    = 0.5
	DefaultMusicAutoplay  = true
	DefaultClickThreshold = 4.0
	DefaultThemeVariant   = ThemeSystem
	DefaultLanguage       = "system"
)

// Click threshold limits in pixels
const (
	MinClickThreshold = 1.0
	MaxClickThreshold = 16.0
)

// Settings manages user preferences that survive restarts. Desktop state
// (window positions, stack order) is never stored here.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetMusicVolume returns the remembered music level in [0,1]
func (s *Settings) GetMusicVolume() float64 {
	return s.app.Preferences().FloatWithFallback(KeyMusicVolume, DefaultMusicVolume)
}

// SetMusicVolume stores the music level, clamped to [0,1]
func (s *Settings) SetMusicVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	s.app.Preferences().SetFloat(KeyMusicVolume, level)
}

// GetMusicAutoplay returns whether the track may start on launch
func (s *Settings) GetMusicAutoplay() bool {
	return s.app.Preferences().BoolWithFallback(KeyMusicAutoplay, DefaultMusicAutoplay)
}

// SetMusicAutoplay sets whether the track may start on launch
func (s *Settings) SetMusicAutoplay(autoplay bool) {
	s.app.Preferences().SetBool(KeyMusicAutoplay, autoplay)
}

// GetClickThreshold returns the drag-vs-click distance in pixels
func (s *Settings) GetClickThreshold() float32 {
	value := s.app.Preferences().Float(KeyClickThreshold)
	if value <= 0 {
		s.SetClickThreshold(DefaultClickThreshold)
		return DefaultClickThreshold
	}
	return float32(value)
}

// SetClickThreshold stores the drag-vs-click distance
func (s *Settings) SetClickThreshold(px float64) {
	if px < MinClickThreshold {
		px = MinClickThreshold
	}
	if px > MaxClickThreshold {
		px = MaxClickThreshold
	}
	s.app.Preferences().SetFloat(KeyClickThreshold, px)
}

// GetThemeVariant returns the configured palette
func (s *Settings) GetThemeVariant() ThemeVariant {
	variant := ThemeVariant(s.app.Preferences().String(KeyThemeVariant))
	switch variant {
	case ThemeLight, ThemeDark, ThemeSystem:
		return variant
	default:
		s.SetThemeVariant(DefaultThemeVariant)
		return DefaultThemeVariant
	}
}

// SetThemeVariant sets the palette
func (s *Settings) SetThemeVariant(variant ThemeVariant) {
	s.app.Preferences().SetString(KeyThemeVariant, string(variant))
}

// GetThemeVariantOptions returns the selectable palettes
func (s *Settings) GetThemeVariantOptions() []ThemeVariant {
	return []ThemeVariant{ThemeSystem, ThemeLight, ThemeDark}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}

// GetLastPortfolio returns the descriptor path used by the previous run
func (s *Settings) GetLastPortfolio() string {
	return s.app.Preferences().String(KeyLastPortfolio)
}

// SetLastPortfolio remembers the descriptor path for the next run
func (s *Settings) SetLastPortfolio(path string) {
	s.app.Preferences().SetString(KeyLastPortfolio, path)
}
