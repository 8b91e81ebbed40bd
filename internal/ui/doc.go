package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the batch processor and renders jobs, transcripts,
// notifications, and settings. All UI strings are localized via Localization.
