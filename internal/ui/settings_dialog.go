package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/media-scribe/internal/config"
	"github.com/ytget/media-scribe/internal/transcribe"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	downloadDirEntry *widget.Entry
	modelsDirEntry   *widget.Entry
	transcriptionSel *widget.Select
	modelSizeSelect  *widget.Select
	deviceSelect     *widget.Select
	languageSelect   *widget.Select
	autoRevealCheck  *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, window, localization, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	// Download directory selection
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder("Download directory path")
	browseDownloadBtn := widget.NewButton(loc.GetText(KeyBrowse), func() {
		sd.browseDirectory(sd.downloadDirEntry)
	})
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDownloadBtn, sd.downloadDirEntry)

	// Models directory selection
	sd.modelsDirEntry = widget.NewEntry()
	sd.modelsDirEntry.SetPlaceHolder("Whisper models directory path")
	browseModelsBtn := widget.NewButton(loc.GetText(KeyBrowse), func() {
		sd.browseDirectory(sd.modelsDirEntry)
	})
	modelsDirRow := container.NewBorder(nil, nil, nil, browseModelsBtn, sd.modelsDirEntry)

	// Transcription language selection
	sd.transcriptionSel = widget.NewSelect(sd.settings.GetTranscriptionLanguageOptions(), nil)

	// Model size selection
	modelOptions := []string{}
	for _, size := range transcribe.ModelSizeOptions() {
		modelOptions = append(modelOptions, size.String())
	}
	sd.modelSizeSelect = widget.NewSelect(modelOptions, nil)

	// Device selection
	deviceOptions := []string{}
	for _, device := range transcribe.DeviceOptions() {
		deviceOptions = append(deviceOptions, device.String())
	}
	sd.deviceSelect = widget.NewSelect(deviceOptions, nil)

	// UI language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Auto-reveal toggle
	sd.autoRevealCheck = widget.NewCheck(loc.GetText(KeyAutoReveal), nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyTranscript)),
		widget.NewSeparator(),

		widget.NewLabel(loc.GetText(KeyTranscriptionLanguage)+":"),
		sd.transcriptionSel,

		widget.NewLabel(loc.GetText(KeyModelSize)+":"),
		sd.modelSizeSelect,

		widget.NewLabel(loc.GetText(KeyDevice)+":"),
		sd.deviceSelect,

		widget.NewLabel(loc.GetText(KeyModelsDirectory)+":"),
		modelsDirRow,

		widget.NewLabel(loc.GetText(KeyDownloadDirectory)+":"),
		downloadDirRow,

		widget.NewSeparator(),

		widget.NewLabel(loc.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		sd.autoRevealCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.modelsDirEntry.SetText(sd.settings.GetModelsDirectory())
	sd.transcriptionSel.SetSelected(sd.settings.GetTranscriptionLanguage())
	sd.modelSizeSelect.SetSelected(sd.settings.GetModelSize().String())
	sd.deviceSelect.SetSelected(sd.settings.GetDevice().String())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

// browseDirectory opens a folder picker and writes the result into entry
func (sd *SettingsDialog) browseDirectory(entry *widget.Entry) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		entry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.downloadDirEntry.Text != "" {
		sd.settings.SetDownloadDirectory(sd.downloadDirEntry.Text)
	}
	if sd.modelsDirEntry.Text != "" {
		sd.settings.SetModelsDirectory(sd.modelsDirEntry.Text)
	}
	if sd.transcriptionSel.Selected != "" {
		sd.settings.SetTranscriptionLanguage(sd.transcriptionSel.Selected)
	}
	if sd.modelSizeSelect.Selected != "" {
		sd.settings.SetModelSize(transcribe.ModelSize(sd.modelSizeSelect.Selected))
	}
	if sd.deviceSelect.Selected != "" {
		sd.settings.SetDevice(transcribe.Device(sd.deviceSelect.Selected))
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
