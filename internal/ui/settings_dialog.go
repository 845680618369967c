package ui

import (
	"fmt"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/wundara/folio-desktop/internal/config"
)

// SettingsDialog edits the user preferences
type SettingsDialog struct {
	settings *config.Settings
	loc      *Localization
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	volumeSlider    *widget.Slider
	volumeLabel     *widget.Label
	autoplayCheck   *widget.Check
	thresholdEntry  *widget.Entry
	themeSelect     *widget.Select
	languageSelect  *widget.Select
	languageByLabel map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		loc:      loc,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, loc *Localization, onSaved func()) {
	NewSettingsDialog(settings, loc, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.volumeLabel = widget.NewLabel("")
	sd.volumeSlider = widget.NewSlider(0, 100)
	sd.volumeSlider.OnChanged = func(v float64) {
		sd.volumeLabel.SetText(fmt.Sprintf("%.0f%%", v))
	}

	sd.autoplayCheck = widget.NewCheck(sd.loc.GetText(KeyMusicAutoplay), nil)

	sd.thresholdEntry = widget.NewEntry()
	sd.thresholdEntry.SetPlaceHolder(fmt.Sprintf("%.0f-%.0f", config.MinClickThreshold, config.MaxClickThreshold))

	themeOptions := []string{}
	for _, variant := range sd.settings.GetThemeVariantOptions() {
		themeOptions = append(themeOptions, string(variant))
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	// Language select shows names, stores codes
	sd.languageByLabel = make(map[string]string)
	languageOptions := []string{}
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageByLabel[label] = code
		languageOptions = append(languageOptions, label)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.loc.GetText(KeyMusicVolume)+":"),
		container.NewBorder(nil, nil, nil, sd.volumeLabel, sd.volumeSlider),
		sd.autoplayCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.loc.GetText(KeyClickThreshold)+":"),
		sd.thresholdEntry,

		widget.NewLabel(sd.loc.GetText(KeyTheme)+":"),
		sd.themeSelect,

		widget.NewLabel(sd.loc.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.loc.GetText(KeySettings),
		sd.loc.GetText(KeySave),
		sd.loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 420))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.volumeSlider.SetValue(sd.settings.GetMusicVolume() * 100)
	sd.autoplayCheck.SetChecked(sd.settings.GetMusicAutoplay())
	sd.thresholdEntry.SetText(strconv.FormatFloat(float64(sd.settings.GetClickThreshold()), 'f', -1, 32))
	sd.themeSelect.SetSelected(string(sd.settings.GetThemeVariant()))

	current := sd.settings.GetLanguage()
	for label, code := range sd.languageByLabel {
		if code == current {
			sd.languageSelect.SetSelected(label)
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetMusicVolume(sd.volumeSlider.Value / 100)
	sd.settings.SetMusicAutoplay(sd.autoplayCheck.Checked)

	// Invalid numbers keep the stored threshold
	if px, err := strconv.ParseFloat(sd.thresholdEntry.Text, 64); err == nil {
		sd.settings.SetClickThreshold(px)
	}

	if sd.themeSelect.Selected != "" {
		sd.settings.SetThemeVariant(config.ThemeVariant(sd.themeSelect.Selected))
	}

	if code, ok := sd.languageByLabel[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
