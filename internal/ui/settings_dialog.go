package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/FELTRINCyril/cinebase/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	backendURL   string
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	pageLimitEntry *widget.Entry
}

// NewSettingsDialog creates a new settings dialog. onSaved fires after the
// preferences were written so the caller can apply them.
func NewSettingsDialog(settings *config.Settings, localization *Localization, backendURL string, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		backendURL:   backendURL,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = sd.localization.GetText(KeySelectLanguage)

	// Page limit for list fetches
	sd.pageLimitEntry = widget.NewEntry()
	sd.pageLimitEntry.SetPlaceHolder("1-100")

	// Backend address is environment-driven, shown read-only
	backendLabel := widget.NewLabel(sd.backendURL)
	backendLabel.TextStyle = fyne.TextStyle{Monospace: true}

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyPageLimit)+":"),
		sd.pageLimitEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyBackendURL)+":"),
		backendLabel,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.pageLimitEntry.SetText(strconv.Itoa(sd.settings.GetPageLimit()))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Save language
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	// Validate and save page limit; the setter clamps out-of-range values
	if sd.pageLimitEntry.Text != "" {
		if limit, err := strconv.Atoi(sd.pageLimitEntry.Text); err == nil {
			sd.settings.SetPageLimit(limit)
		}
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
