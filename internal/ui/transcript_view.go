package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/media-scribe/internal/model"
)

// TranscriptView shows the transcript of the selected job with copy,
// save-as and clear actions.
type TranscriptView struct {
	window       fyne.Window
	localization *Localization

	titleLabel *widget.Label
	textEntry  *widget.Entry
	copyBtn    *widget.Button
	saveBtn    *widget.Button
	clearBtn   *widget.Button

	container *fyne.Container
}

// NewTranscriptView creates the transcript panel
func NewTranscriptView(window fyne.Window, localization *Localization) *TranscriptView {
	tv := &TranscriptView{
		window:       window,
		localization: localization,
	}

	tv.titleLabel = widget.NewLabel(localization.GetText(KeyTranscript))
	tv.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	tv.textEntry = widget.NewMultiLineEntry()
	tv.textEntry.Wrapping = fyne.TextWrapWord
	// Read-only view: typed edits would be lost on the next refresh
	tv.textEntry.OnChanged = nil
	tv.textEntry.Disable()

	tv.copyBtn = widget.NewButton(localization.GetText(KeyCopyText), tv.onCopy)
	tv.saveBtn = widget.NewButton(localization.GetText(KeySaveAs), tv.onSaveAs)
	tv.clearBtn = widget.NewButton(localization.GetText(KeyClear), tv.Clear)

	actions := container.NewHBox(tv.copyBtn, tv.saveBtn, tv.clearBtn)
	header := container.NewBorder(nil, nil, tv.titleLabel, actions)
	tv.container = container.NewBorder(header, nil, nil, nil, tv.textEntry)

	tv.setButtonsEnabled(false)
	return tv
}

// Container returns the panel's root container
func (tv *TranscriptView) Container() *fyne.Container {
	return tv.container
}

// ShowJob displays the transcript of a completed job. Timestamped segment
// lines are preferred when available.
func (tv *TranscriptView) ShowJob(job *model.TranscriptionJob) {
	if job == nil {
		tv.Clear()
		return
	}

	text := job.Text
	if len(job.Segments) > 0 {
		text = model.FormattedTranscript(job.Segments)
	}

	fyne.Do(func() {
		tv.titleLabel.SetText(tv.localization.GetText(KeyTranscript) + ": " + job.GetDisplayTitle())
		tv.textEntry.SetText(text)
		tv.setButtonsEnabled(text != "")
	})
}

// Clear empties the panel
func (tv *TranscriptView) Clear() {
	fyne.Do(func() {
		tv.titleLabel.SetText(tv.localization.GetText(KeyTranscript))
		tv.textEntry.SetText("")
		tv.setButtonsEnabled(false)
	})
}

// RefreshTexts re-applies localized captions after a language change
func (tv *TranscriptView) RefreshTexts() {
	tv.copyBtn.SetText(tv.localization.GetText(KeyCopyText))
	tv.saveBtn.SetText(tv.localization.GetText(KeySaveAs))
	tv.clearBtn.SetText(tv.localization.GetText(KeyClear))
}

func (tv *TranscriptView) setButtonsEnabled(enabled bool) {
	if enabled {
		tv.copyBtn.Enable()
		tv.saveBtn.Enable()
	} else {
		tv.copyBtn.Disable()
		tv.saveBtn.Disable()
	}
}

func (tv *TranscriptView) onCopy() {
	fyne.CurrentApp().Clipboard().SetContent(tv.textEntry.Text)
	widget.ShowPopUp(widget.NewLabel("Text copied to clipboard"), tv.window.Canvas())
}

func (tv *TranscriptView) onSaveAs() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		if _, writeErr := writer.Write([]byte(tv.textEntry.Text)); writeErr != nil {
			log.Printf("[ui] failed to save transcript to %s: %v", writer.URI().Path(), writeErr)
			dialog.ShowError(writeErr, tv.window)
		}
	}, tv.window)
}
