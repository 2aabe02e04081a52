package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the catalog service and renders the home page,
// actor and movie lists, admin record forms, and settings. All UI strings are
// localized via Localization.
