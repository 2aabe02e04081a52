package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSearch   = "🔍"
	IconEdit     = "✎"
	IconDelete   = "🗑"
	IconLink     = "🔗"
	IconActor    = "🎭"
	IconMovie    = "🎬"
	IconClose    = "×"
	IconError    = "❌"
	IconLanguage = "🌐"
)

// Text fragments
const (
	DashPlaceholder    = "—"
	SectionCountFormat = "%s (%d)"
)

// Layout sizing (EntityCard / grids)
const (
	CardWidth       float32 = 240
	CardHeight      float32 = 340
	CardPhotoHeight float32 = 170

	// Mobile-specific sizing
	MobileCardWidth       float32 = 170
	MobileCardHeight      float32 = 290
	MobileCardPhotoHeight float32 = 130
)

// Excerpt lengths for card body text
const (
	BioExcerptLength         = 110
	DescriptionExcerptLength = 110
)

// Dialog sizing
const (
	FormDialogWidth  float32 = 540
	FormDialogHeight float32 = 580

	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 340
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)
