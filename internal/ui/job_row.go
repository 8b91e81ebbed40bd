package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/media-scribe/internal/model"
)

// JobRow represents a compact job row widget
type JobRow struct {
	widget.BaseWidget

	job          *model.TranscriptionJob
	localization *Localization

	// UI components
	titleLabel    *widget.Label
	statusLabel   *widget.Label
	progressLabel *widget.Label

	// Action buttons
	textBtn   *widget.Button // show transcript in the side panel
	revealBtn *widget.Button // reveal transcript file in file manager
	copyBtn   *widget.Button // copy transcript path to clipboard
	removeBtn *widget.Button // remove pending job from the queue

	// Callbacks
	onViewText func(jobID string)
	onReveal   func(filePath string)
	onCopyPath func(filePath string)
	onRemove   func(jobID string)
}

// NewJobRow creates a new job row widget
func NewJobRow(job *model.TranscriptionJob, localization *Localization) *JobRow {
	if job == nil {
		// Placeholder rows are replaced on first list update
		job = &model.TranscriptionJob{
			ID:     "placeholder",
			Status: model.JobStatusPending,
		}
	}

	jr := &JobRow{
		job:          job,
		localization: localization,
	}
	jr.ExtendBaseWidget(jr)
	jr.createUI()
	jr.updateFromJob()
	return jr
}

// SetCallbacks sets the action callbacks
func (jr *JobRow) SetCallbacks(
	onViewText func(jobID string),
	onReveal func(filePath string),
	onCopyPath func(filePath string),
	onRemove func(jobID string),
) {
	jr.onViewText = onViewText
	jr.onReveal = onReveal
	jr.onCopyPath = onCopyPath
	jr.onRemove = onRemove
}

// UpdateJob updates the row with new job data
func (jr *JobRow) UpdateJob(job *model.TranscriptionJob) {
	if job == nil {
		return
	}
	jr.job = job
	jr.updateFromJob()
	jr.Refresh()
}

// createUI creates the UI components
func (jr *JobRow) createUI() {
	jr.titleLabel = widget.NewLabel("")
	jr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	jr.titleLabel.Wrapping = fyne.TextWrapWord
	jr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	jr.titleLabel.Alignment = fyne.TextAlignLeading

	jr.statusLabel = widget.NewLabel("")
	jr.statusLabel.Alignment = fyne.TextAlignTrailing
	jr.progressLabel = widget.NewLabel("")
	jr.progressLabel.Alignment = fyne.TextAlignTrailing

	jr.textBtn = widget.NewButton(jr.localization.GetText(KeyViewText), func() {
		if jr.onViewText != nil {
			jr.onViewText(jr.job.ID)
		}
	})
	jr.textBtn.Importance = widget.MediumImportance

	jr.revealBtn = widget.NewButton(jr.localization.GetText(KeyReveal), func() {
		currentJob := jr.job
		if currentJob.OutputPath == "" {
			widget.ShowPopUp(widget.NewLabel("Transcript not written yet"), fyne.CurrentApp().Driver().CanvasForObject(jr.revealBtn))
			return
		}
		if jr.onReveal != nil {
			jr.onReveal(currentJob.OutputPath)
		}
	})
	jr.revealBtn.Importance = widget.MediumImportance

	jr.copyBtn = widget.NewButton("path", func() {
		currentJob := jr.job
		if currentJob.OutputPath == "" {
			widget.ShowPopUp(widget.NewLabel("Transcript not written yet"), fyne.CurrentApp().Driver().CanvasForObject(jr.copyBtn))
			return
		}
		if jr.onCopyPath != nil {
			jr.onCopyPath(currentJob.OutputPath)
		}
	})
	jr.copyBtn.Importance = widget.MediumImportance

	jr.removeBtn = widget.NewButton(IconClose, func() {
		if jr.onRemove != nil {
			jr.onRemove(jr.job.ID)
		}
	})
	jr.removeBtn.Importance = widget.LowImportance
}

// updateFromJob updates UI components based on job state
func (jr *JobRow) updateFromJob() {
	if jr.job == nil {
		return
	}

	jr.titleLabel.SetText(jr.job.GetDisplayTitle())

	// Status label color and icon by status
	switch jr.job.Status {
	case model.JobStatusError:
		jr.statusLabel.Importance = widget.DangerImportance
		jr.statusLabel.SetText(IconError + " " + jr.job.Status.String())
	case model.JobStatusCompleted:
		jr.statusLabel.Importance = widget.SuccessImportance
		jr.statusLabel.SetText(IconDone + " " + jr.job.Status.String())
	case model.JobStatusDownloading, model.JobStatusTranscribing:
		jr.statusLabel.Importance = widget.HighImportance
		jr.statusLabel.SetText(IconPlay + " " + jr.job.Status.String())
	case model.JobStatusCancelled:
		jr.statusLabel.Importance = widget.MediumImportance
		jr.statusLabel.SetText(IconCancel + " " + jr.job.Status.String())
	default:
		jr.statusLabel.Importance = widget.MediumImportance
		jr.statusLabel.SetText(IconPending + " " + jr.job.Status.String())
	}

	// Percent label only while a job is active
	if jr.job.Status.IsActive() {
		jr.progressLabel.SetText(fmt.Sprintf(ProgressLabelFormat, clampPercent(jr.job.Percent)))
	} else {
		jr.progressLabel.SetText("")
	}

	jr.updateButtons()
}

// updateButtons updates button states based on job status
func (jr *JobRow) updateButtons() {
	// Transcript actions need a written output file
	if jr.job.Status == model.JobStatusCompleted && jr.job.OutputPath != "" {
		jr.textBtn.Enable()
		jr.revealBtn.Enable()
		jr.copyBtn.Enable()
	} else {
		jr.textBtn.Disable()
		jr.revealBtn.Disable()
		jr.copyBtn.Disable()
	}

	// Only pending jobs can leave the queue
	if jr.job.Status == model.JobStatusPending {
		jr.removeBtn.Enable()
	} else {
		jr.removeBtn.Disable()
	}
}

func clampPercent(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// CreateRenderer creates the widget renderer
func (jr *JobRow) CreateRenderer() fyne.WidgetRenderer {
	return &jobRowRenderer{jobRow: jr}
}

// jobRowRenderer renders the job row widget
type jobRowRenderer struct {
	jobRow *JobRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *jobRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *jobRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *jobRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *jobRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *jobRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *jobRowRenderer) createLayout() {
	jr := r.jobRow

	// Fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	rightSide := container.NewHBox(
		fixedWidth(StatusLabelWidth, jr.statusLabel),
		fixedWidth(PercentLabelWidth, jr.progressLabel),
	)

	actionRow := container.NewHBox(
		jr.textBtn,
		jr.revealBtn,
		jr.copyBtn,
		jr.removeBtn,
	)

	separator := widget.NewSeparator()

	// Buttons pinned to the right edge, compact info next to them, title
	// takes the remaining space with wrapping.
	rightCluster := container.NewBorder(nil, nil, nil, actionRow, rightSide)
	mainContent := container.NewBorder(nil, nil, nil, rightCluster, jr.titleLabel)

	r.layout = container.NewVBox(
		mainContent,
		separator,
	)

	r.layout.Resize(fyne.NewSize(RowMinWidth, RowDefaultH))
}
