package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the translation service and renders outcomes
// on the UI thread. All UI strings are localized via Localization.
