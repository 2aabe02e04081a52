package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Layout provides device-aware sizing for card grids and filter bars
type Layout struct {
	app fyne.App
}

// NewLayout creates a new layout helper
func NewLayout(app fyne.App) *Layout {
	return &Layout{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (l *Layout) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CardSize returns the cell size for record card grids
func (l *Layout) CardSize() fyne.Size {
	if l.IsMobileDevice() {
		return fyne.NewSize(MobileCardWidth, MobileCardHeight)
	}
	return fyne.NewSize(CardWidth, CardHeight)
}

// CardPhotoHeight returns the photo strip height inside a record card
func (l *Layout) CardPhotoHeight() float32 {
	if l.IsMobileDevice() {
		return MobileCardPhotoHeight
	}
	return CardPhotoHeight
}

// NewCardGrid creates a wrapping grid of record cards sized for the device
func (l *Layout) NewCardGrid(objects ...fyne.CanvasObject) *fyne.Container {
	return container.NewGridWrap(l.CardSize(), objects...)
}

// FilterColumns returns how many filter inputs fit on one row
func (l *Layout) FilterColumns(count int) int {
	if l.IsMobileDevice() && count > 2 {
		return 2
	}
	return count
}
