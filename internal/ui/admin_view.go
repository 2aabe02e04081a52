package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/FELTRINCyril/cinebase/internal/catalog"
)

// AdminView renders the admin page with the record creation forms
type AdminView struct {
	window       fyne.Window
	svc          *catalog.Service
	localization *Localization
	notify       func(title, message string)

	content fyne.CanvasObject
}

// NewAdminView creates the admin page
func NewAdminView(window fyne.Window, svc *catalog.Service, localization *Localization, notify func(title, message string)) *AdminView {
	v := &AdminView{
		window:       window,
		svc:          svc,
		localization: localization,
		notify:       notify,
	}
	v.createUI()
	return v
}

// createUI creates the UI components
func (v *AdminView) createUI() {
	hint := widget.NewLabel(v.localization.GetText(KeyAdminHint))
	hint.Wrapping = fyne.TextWrapWord
	hint.Alignment = fyne.TextAlignCenter

	addActorBtn := widget.NewButton(IconActor+" "+v.localization.GetText(KeyAddActor), func() {
		NewActorForm(v.window, v.svc, v.localization, nil, v.notify).Show()
	})
	addActorBtn.Importance = widget.HighImportance

	addMovieBtn := widget.NewButton(IconMovie+" "+v.localization.GetText(KeyAddMovie), func() {
		NewMovieForm(v.window, v.svc, v.localization, nil, v.notify).Show()
	})
	addMovieBtn.Importance = widget.HighImportance

	v.content = container.NewCenter(container.NewVBox(
		hint,
		widget.NewSeparator(),
		addActorBtn,
		addMovieBtn,
	))
}

// Content returns the page content
func (v *AdminView) Content() fyne.CanvasObject {
	return v.content
}
