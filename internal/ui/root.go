package ui

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/media-scribe/internal/batch"
	"github.com/ytget/media-scribe/internal/config"
	"github.com/ytget/media-scribe/internal/model"
	"github.com/ytget/media-scribe/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	processor    *batch.Processor
	settings     *config.Settings
	localization *Localization

	// Queue controls
	sourceEntry  *widget.Entry
	addBtn       *widget.Button
	startBtn     *widget.Button
	cancelBtn    *widget.Button
	browseFile   *widget.Button
	browseFolder *widget.Button

	// Job list
	jobList *widget.List
	jobs    []*model.TranscriptionJob

	// Transcript panel
	transcriptView *TranscriptView

	// Overall batch progress
	progressBar *widget.ProgressBar

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite

	// UI update debouncing
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, processor *batch.Processor, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		processor:    processor,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	processor.SetJobUpdateCallback(ui.onJobUpdate)
	processor.SetJobDoneCallback(ui.onJobDone)
	processor.SetBatchProgressCallback(ui.onBatchProgress)
	processor.SetBatchDoneCallback(ui.onBatchDone)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Source entry row
	ui.sourceEntry = widget.NewEntry()
	ui.sourceEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterSource))
	ui.sourceEntry.OnSubmitted = func(string) {
		ui.onAddClick()
	}

	ui.addBtn = widget.NewButton(ui.localization.GetText(KeyAddToQueue), ui.onAddClick)
	ui.browseFile = widget.NewButton(ui.localization.GetText(KeyBrowseFile), ui.onBrowseFile)
	ui.browseFolder = widget.NewButton(ui.localization.GetText(KeyBrowseFolder), ui.onBrowseFolder)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Logo (optional, falls back to text-only row)
	logo, err := LoadLogoResource()
	var logoImage *canvas.Image
	if err == nil {
		logoImage = canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
	}

	leftCluster := container.NewHBox(settingsBtn)
	if logoImage != nil {
		leftCluster = container.NewHBox(logoImage, settingsBtn)
	}
	rightCluster := container.NewHBox(ui.browseFile, ui.browseFolder, ui.addBtn)
	topPanel := container.NewBorder(nil, nil, leftCluster, rightCluster, ui.sourceEntry)

	// Batch control row with overall progress
	ui.startBtn = widget.NewButton(ui.localization.GetText(KeyStartBatch), ui.onStartClick)
	ui.startBtn.Importance = widget.HighImportance
	ui.cancelBtn = widget.NewButton(ui.localization.GetText(KeyCancelBatch), ui.onCancelClick)
	ui.cancelBtn.Disable()
	ui.progressBar = widget.NewProgressBar()
	controlRow := container.NewBorder(nil, nil, container.NewHBox(ui.startBtn, ui.cancelBtn), nil, ui.progressBar)

	// Notification panel under the controls (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, controlRow, ui.notificationContainer)

	// Job list
	ui.jobList = widget.NewList(
		func() int {
			return len(ui.jobs)
		},
		func() fyne.CanvasObject { return ui.createJobItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateJobItem(id, obj) },
	)

	// Transcript panel on the right
	ui.transcriptView = NewTranscriptView(ui.window, ui.localization)

	split := container.NewHSplit(ui.jobList, ui.transcriptView.Container())
	split.SetOffset(0.55)

	content := container.NewBorder(
		topCombined, // top
		nil,         // bottom
		nil,         // left
		nil,         // right
		split,       // center
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.sourceEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterSource))
	ui.addBtn.SetText(ui.localization.GetText(KeyAddToQueue))
	ui.browseFile.SetText(ui.localization.GetText(KeyBrowseFile))
	ui.browseFolder.SetText(ui.localization.GetText(KeyBrowseFolder))
	ui.startBtn.SetText(ui.localization.GetText(KeyStartBatch))
	ui.cancelBtn.SetText(ui.localization.GetText(KeyCancelBatch))
	ui.transcriptView.RefreshTexts()
	ui.jobList.Refresh()
}

// onAddClick validates the entered source and appends it to the queue
func (ui *RootUI) onAddClick() {
	source := strings.TrimSpace(ui.sourceEntry.Text)
	if source == "" {
		ui.showNotification(ui.localization.GetText(KeyPleaseEnterSource), false)
		return
	}

	ui.addSource(source)
	ui.sourceEntry.SetText("")
}

// addSource adds one source to the queue and reports the outcome
func (ui *RootUI) addSource(source string) {
	job, err := ui.processor.Add(source)
	if err != nil {
		switch {
		case errors.Is(err, batch.ErrInvalidSource):
			ui.showNotification(ui.localization.GetText(KeyInvalidSource)+": "+source, false)
		case errors.Is(err, batch.ErrInvalidState):
			ui.showNotification(ui.localization.GetText(KeyAlreadyInQueue), false)
		default:
			ui.showNotification(err.Error(), false)
		}
		return
	}

	log.Printf("[ui] queued job %s (%s): %s", job.ID, job.Kind, job.Source)
	ui.refreshJobs()
	ui.showNotification(ui.localization.GetText(KeyJobAdded), false)
}

// onBrowseFile opens a file picker for a single media file
func (ui *RootUI) onBrowseFile() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		ui.addSource(reader.URI().Path())
	}, ui.window)
}

// onBrowseFolder queues every media file found under the chosen folder
func (ui *RootUI) onBrowseFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}

		files, err := platform.FindMediaFilesInFolder(uri.Path())
		if err != nil {
			ui.showNotification(err.Error(), false)
			return
		}
		if len(files) == 0 {
			ui.showNotification(ui.localization.GetText(KeyNoMediaInFolder), false)
			return
		}

		for _, file := range files {
			if _, addErr := ui.processor.Add(file); addErr != nil {
				log.Printf("[ui] skipping %s: %v", file, addErr)
			}
		}
		ui.refreshJobs()
		ui.showNotification(ui.localization.GetText(KeyJobAdded), false)
	}, ui.window)
}

// onStartClick starts the batch with the current settings snapshot
func (ui *RootUI) onStartClick() {
	err := ui.processor.Start(ui.settings.TranscriptionSettings())
	if err != nil {
		switch {
		case errors.Is(err, batch.ErrAlreadyRunning):
			ui.showNotification(err.Error(), false)
		case errors.Is(err, batch.ErrInvalidState):
			ui.showNotification(ui.localization.GetText(KeyPleaseEnterSource), false)
		default:
			ui.showNotification(err.Error(), false)
		}
		return
	}

	ui.startBtn.Disable()
	ui.cancelBtn.Enable()
	ui.progressBar.SetValue(0)
	ui.showNotification(ui.localization.GetText(KeyBatchStarted), true)
}

// onCancelClick requests a cooperative batch cancel
func (ui *RootUI) onCancelClick() {
	ui.processor.Cancel()
	ui.cancelBtn.Disable()
	ui.showNotification(ui.localization.GetText(KeyBatchCancelled), true)
}

// showNotification displays a message in the notification panel.
// When spinning is true, a spinner indicates background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, nil)
}

// createJobItem creates a new job list item widget
func (ui *RootUI) createJobItem() fyne.CanvasObject {
	row := NewJobRow(nil, ui.localization)
	row.SetCallbacks(
		ui.onViewTranscript,
		ui.onRevealFile,
		ui.onCopyPath,
		ui.onRemoveJob,
	)
	return row
}

// updateJobItem updates a job list item with current data
func (ui *RootUI) updateJobItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.jobs) {
		return
	}
	job := ui.jobs[id]
	if job == nil {
		return
	}

	if row, ok := item.(*JobRow); ok {
		row.SetCallbacks(
			ui.onViewTranscript,
			ui.onRevealFile,
			ui.onCopyPath,
			ui.onRemoveJob,
		)
		row.UpdateJob(job)
	}
}

// refreshJobs reloads the queue snapshot and refreshes the list
func (ui *RootUI) refreshJobs() {
	ui.jobs = ui.processor.Jobs()
	fyne.Do(func() {
		ui.jobList.Refresh()
	})
}

// onViewTranscript shows a job's transcript in the side panel
func (ui *RootUI) onViewTranscript(jobID string) {
	job, ok := ui.processor.Get(jobID)
	if !ok {
		return
	}
	ui.transcriptView.ShowJob(job)
}

// onRevealFile reveals a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if filePath == "" {
		return
	}
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("[ui] error revealing file %s: %v", filePath, err)
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), false)
	}
}

// onCopyPath copies a file path to the clipboard
func (ui *RootUI) onCopyPath(filePath string) {
	if filePath == "" {
		return
	}
	fyne.CurrentApp().Clipboard().SetContent(filePath)
	widget.ShowPopUp(widget.NewLabel("Path copied to clipboard"), ui.window.Canvas())
}

// onRemoveJob removes a pending job from the queue
func (ui *RootUI) onRemoveJob(jobID string) {
	if err := ui.processor.Remove(jobID); err != nil {
		log.Printf("[ui] error removing job %s: %v", jobID, err)
		ui.showNotification(err.Error(), false)
		return
	}
	ui.refreshJobs()
}

// debouncedListRefresh limits list refresh frequency during progress storms
func (ui *RootUI) debouncedListRefresh() {
	ui.uiUpdateMutex.Lock()
	now := time.Now()
	if now.Sub(ui.lastUIUpdate) < UIUpdateDebounce {
		ui.uiUpdateMutex.Unlock()
		return
	}
	ui.lastUIUpdate = now
	ui.uiUpdateMutex.Unlock()

	ui.refreshJobs()
}

// onJobUpdate handles job state changes from the worker
func (ui *RootUI) onJobUpdate(job *model.TranscriptionJob) {
	ui.debouncedListRefresh()
}

// onJobDone fires once per processed job
func (ui *RootUI) onJobDone(job *model.TranscriptionJob) {
	log.Printf("[ui] job done: id=%s status=%s output=%s", job.ID, job.Status, job.OutputPath)
	ui.refreshJobs()

	if job.Status != model.JobStatusCompleted {
		return
	}

	ui.sendCompletionNotification(job)
	ui.transcriptView.ShowJob(job)

	if ui.settings.GetAutoRevealOnComplete() && job.OutputPath != "" {
		ui.onRevealFile(job.OutputPath)
	}
}

// onBatchProgress updates the overall progress bar
func (ui *RootUI) onBatchProgress(completed, total int) {
	if total <= 0 {
		return
	}
	fyne.Do(func() {
		ui.progressBar.SetValue(float64(completed) / float64(total))
	})
}

// onBatchDone re-enables controls when the worker loop exits
func (ui *RootUI) onBatchDone(cancelled bool) {
	ui.refreshJobs()
	fyne.Do(func() {
		ui.startBtn.Enable()
		ui.cancelBtn.Disable()
		ui.notificationSpinner.Hide()
		if cancelled {
			ui.notificationLabel.SetText(ui.localization.GetText(KeyBatchCancelled))
		} else {
			ui.notificationLabel.SetText(ui.localization.GetText(KeyBatchDone))
		}
		ui.notificationContainer.Show()
	})
}

// sendCompletionNotification sends a system notification for a completed job
func (ui *RootUI) sendCompletionNotification(job *model.TranscriptionJob) {
	title := ui.localization.GetText(KeyJobCompleted)
	message := job.GetDisplayTitle()

	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   title,
		Content: message,
	})

	ui.showToastNotification(job)
}

// showToastNotification shows an in-app toast with transcript actions
func (ui *RootUI) showToastNotification(job *model.TranscriptionJob) {
	fyne.Do(func() {
		titleLabel := widget.NewLabel(ui.localization.GetText(KeyJobCompleted))
		titleLabel.TextStyle = fyne.TextStyle{Bold: true}

		messageLabel := widget.NewLabel(job.GetDisplayTitle())
		messageLabel.Truncation = fyne.TextTruncateEllipsis

		revealBtn := widget.NewButton(ui.localization.GetText(KeyReveal), func() {
			ui.onRevealFile(job.OutputPath)
		})
		revealBtn.Importance = widget.HighImportance

		textBtn := widget.NewButton(ui.localization.GetText(KeyViewText), func() {
			ui.transcriptView.ShowJob(job)
		})
		textBtn.Importance = widget.MediumImportance

		var toastPopup *widget.PopUp
		closeBtn := widget.NewButton(IconClose, func() {
			if toastPopup != nil {
				toastPopup.Hide()
			}
		})
		closeBtn.Importance = widget.LowImportance

		header := container.NewBorder(nil, nil, titleLabel, closeBtn)
		actions := container.NewHBox(revealBtn, textBtn)
		content := container.NewVBox(header, messageLabel, actions)

		toastPopup = widget.NewPopUp(content, ui.window.Canvas())

		canvasSize := ui.window.Canvas().Size()
		toastSize := fyne.NewSize(ToastWidth, ToastHeight)
		toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

		toastPopup.Resize(toastSize)
		toastPopup.Move(toastPos)
		toastPopup.Show()

		// Auto-hide after configured time
		go func() {
			time.Sleep(ToastAutoHide)
			fyne.Do(func() {
				toastPopup.Hide()
			})
		}()
	})
}
