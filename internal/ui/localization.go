package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySettings         = "settings"
	KeyAbout            = "about"
	KeyQuit             = "quit"
	KeyClose            = "close"
	KeyLanguage         = "language"
	KeyTheme            = "theme"
	KeyMusicVolume      = "music_volume"
	KeyMusicAutoplay    = "music_autoplay"
	KeyClickThreshold   = "click_threshold"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyPlay             = "play"
	KeyPause            = "pause"
	KeyMute             = "mute"
	KeyUnmute           = "unmute"
	KeyPrevious         = "previous"
	KeyNext             = "next"
	KeyOpenInPlayer     = "open_in_player"
	KeyShowInFolder     = "show_in_folder"
	KeyWatchVideo       = "watch_video"
	KeyErrorOpeningFile = "error_opening_file"
	KeyErrorOpeningLink = "error_opening_link"
	KeyDeliverables     = "deliverables"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations. Portfolio content is
// shown as written; only the chrome is translated.
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Folio Desktop",
		KeySettings:         "Settings",
		KeyAbout:            "About",
		KeyQuit:             "Quit",
		KeyClose:            "Close",
		KeyLanguage:         "Language",
		KeyTheme:            "Theme",
		KeyMusicVolume:      "Music Volume",
		KeyMusicAutoplay:    "Start music on launch",
		KeyClickThreshold:   "Click threshold (px)",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved. The click threshold applies on next launch.",
		KeyPlay:             "Play",
		KeyPause:            "Pause",
		KeyMute:             "Mute",
		KeyUnmute:           "Unmute",
		KeyPrevious:         "Previous",
		KeyNext:             "Next",
		KeyOpenInPlayer:     "Open in player",
		KeyShowInFolder:     "Show in folder",
		KeyWatchVideo:       "Watch video",
		KeyErrorOpeningFile: "Error opening file",
		KeyErrorOpeningLink: "Error opening link",
		KeyDeliverables:     "Deliverables",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Folio Desktop",
		KeySettings:         "Настройки",
		KeyAbout:            "О программе",
		KeyQuit:             "Выход",
		KeyClose:            "Закрыть",
		KeyLanguage:         "Язык",
		KeyTheme:            "Тема",
		KeyMusicVolume:      "Громкость музыки",
		KeyMusicAutoplay:    "Включать музыку при запуске",
		KeyClickThreshold:   "Порог клика (px)",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки сохранены. Порог клика применится при следующем запуске.",
		KeyPlay:             "Играть",
		KeyPause:            "Пауза",
		KeyMute:             "Без звука",
		KeyUnmute:           "Со звуком",
		KeyPrevious:         "Назад",
		KeyNext:             "Вперёд",
		KeyOpenInPlayer:     "Открыть в плеере",
		KeyShowInFolder:     "Показать в папке",
		KeyWatchVideo:       "Смотреть видео",
		KeyErrorOpeningFile: "Ошибка открытия файла",
		KeyErrorOpeningLink: "Ошибка открытия ссылки",
		KeyDeliverables:     "Результаты",
	}
}
