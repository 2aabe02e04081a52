package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/FELTRINCyril/cinebase/internal/catalog"
	"github.com/FELTRINCyril/cinebase/internal/config"
	"github.com/FELTRINCyril/cinebase/internal/images"
	"github.com/FELTRINCyril/cinebase/internal/model"
)

// ActorsView renders the actor list page: filter bar on top, card grid below
type ActorsView struct {
	window       fyne.Window
	svc          *catalog.Service
	photos       *images.Loader
	localization *Localization
	layout       *Layout
	settings     *config.Settings
	notify       func(title, message string)

	admin bool
	state catalog.ActorList

	searchEntry      *widget.Entry
	nameEntry        *widget.Entry
	nationalityEntry *widget.SelectEntry
	ageMinEntry      *widget.Entry
	ageMaxEntry      *widget.Entry

	phaseLabel   *widget.Label
	phaseSpinner *widget.ProgressBarInfinite
	grid         *fyne.Container
	content      fyne.CanvasObject
}

// NewActorsView creates the actor list page
func NewActorsView(
	window fyne.Window,
	svc *catalog.Service,
	photos *images.Loader,
	localization *Localization,
	layout *Layout,
	settings *config.Settings,
	admin bool,
	notify func(title, message string),
) *ActorsView {
	v := &ActorsView{
		window:       window,
		svc:          svc,
		photos:       photos,
		localization: localization,
		layout:       layout,
		settings:     settings,
		notify:       notify,
		admin:        admin,
	}
	v.createUI()
	return v
}

// createUI creates the UI components
func (v *ActorsView) createUI() {
	v.searchEntry = widget.NewEntry()
	v.searchEntry.SetPlaceHolder(v.localization.GetText(KeyFilterSearch))
	v.searchEntry.OnChanged = func(string) { v.onFilterEdited() }

	v.nameEntry = widget.NewEntry()
	v.nameEntry.SetPlaceHolder(v.localization.GetText(KeyFilterName))
	v.nameEntry.OnChanged = func(string) { v.onFilterEdited() }

	v.nationalityEntry = widget.NewSelectEntry(nil)
	v.nationalityEntry.SetPlaceHolder(v.localization.GetText(KeyFilterNationality))
	v.nationalityEntry.OnChanged = func(string) { v.onFilterEdited() }
	v.loadNationalityOptions()

	v.ageMinEntry = widget.NewEntry()
	v.ageMinEntry.SetPlaceHolder(v.localization.GetText(KeyFilterAgeMin))
	v.ageMinEntry.OnChanged = func(string) { v.onFilterEdited() }

	v.ageMaxEntry = widget.NewEntry()
	v.ageMaxEntry.SetPlaceHolder(v.localization.GetText(KeyFilterAgeMax))
	v.ageMaxEntry.OnChanged = func(string) { v.onFilterEdited() }

	resetBtn := widget.NewButton(v.localization.GetText(KeyReset), v.onReset)
	resetBtn.Importance = widget.LowImportance

	filterItems := []fyne.CanvasObject{
		v.searchEntry,
		v.nameEntry,
		v.nationalityEntry,
		v.ageMinEntry,
		v.ageMaxEntry,
		resetBtn,
	}
	filterBar := container.NewGridWithColumns(v.layout.FilterColumns(len(filterItems)), filterItems...)

	v.phaseLabel = widget.NewLabel("")
	v.phaseLabel.Hide()
	v.phaseSpinner = widget.NewProgressBarInfinite()
	v.phaseSpinner.Hide()
	phaseRow := container.NewHBox(v.phaseSpinner, v.phaseLabel)

	v.grid = v.layout.NewCardGrid()

	top := container.NewVBox(filterBar, phaseRow)
	v.content = container.NewBorder(top, nil, nil, nil, container.NewScroll(v.grid))
}

// loadNationalityOptions fills the nationality dropdown from the backend
func (v *ActorsView) loadNationalityOptions() {
	go func() {
		options := v.svc.NationalityOptions(context.Background())
		if len(options) == 0 {
			return
		}
		fyne.Do(func() {
			v.nationalityEntry.SetOptions(options)
		})
	}()
}

// Content returns the page content
func (v *ActorsView) Content() fyne.CanvasObject {
	return v.content
}

// Refresh pushes the current filter to the service and fetches right away
func (v *ActorsView) Refresh() {
	v.svc.SetActorFilter(v.currentFilter())
	v.svc.RefreshActors()
}

// SetAdmin toggles edit and delete affordances on the cards
func (v *ActorsView) SetAdmin(admin bool) {
	v.admin = admin
	v.renderCards()
}

// Apply renders a fresh list state. Must run on the UI thread.
func (v *ActorsView) Apply(state catalog.ActorList) {
	v.state = state
	v.renderPhase(state.Phase)
	v.renderCards()
}

func (v *ActorsView) currentFilter() model.ActorFilter {
	return model.ActorFilter{
		Search:      strings.TrimSpace(v.searchEntry.Text),
		Nom:         strings.TrimSpace(v.nameEntry.Text),
		Nationalite: strings.TrimSpace(v.nationalityEntry.Text),
		AgeMin:      strings.TrimSpace(v.ageMinEntry.Text),
		AgeMax:      strings.TrimSpace(v.ageMaxEntry.Text),
		Limit:       v.settings.GetPageLimit(),
	}
}

func (v *ActorsView) onFilterEdited() {
	v.svc.SetActorFilter(v.currentFilter())
}

func (v *ActorsView) onReset() {
	// Each SetText fires OnChanged; the debounce collapses them into one fetch
	v.searchEntry.SetText("")
	v.nameEntry.SetText("")
	v.nationalityEntry.SetText("")
	v.ageMinEntry.SetText("")
	v.ageMaxEntry.SetText("")
}

func (v *ActorsView) renderPhase(phase model.ListPhase) {
	switch {
	case phase.IsLoading():
		v.phaseSpinner.Show()
		v.phaseLabel.SetText(v.localization.GetText(KeyLoading))
		v.phaseLabel.Show()
	case phase == model.ListPhaseEmpty:
		v.phaseSpinner.Hide()
		v.phaseLabel.SetText(v.localization.GetText(KeyNoResults))
		v.phaseLabel.Show()
	default:
		v.phaseSpinner.Hide()
		v.phaseLabel.Hide()
	}
}

func (v *ActorsView) renderCards() {
	objects := make([]fyne.CanvasObject, 0, len(v.state.Items))
	for _, actor := range v.state.Items {
		card := NewEntityCard(ActorCardData(actor), v.localization, v.photos, v.layout.CardPhotoHeight())
		card.SetCallbacks(v.onEdit, v.onDelete)
		card.SetAdmin(v.admin)
		objects = append(objects, card)
	}
	v.grid.Objects = objects
	v.grid.Refresh()
}

func (v *ActorsView) findActor(id string) (model.Actor, bool) {
	for _, actor := range v.state.Items {
		if actor.ID == id {
			return actor, true
		}
	}
	return model.Actor{}, false
}

func (v *ActorsView) onEdit(id string) {
	actor, ok := v.findActor(id)
	if !ok {
		log.Printf("Edit requested for unknown actor %s", id)
		return
	}
	NewActorForm(v.window, v.svc, v.localization, &actor, v.notify).Show()
}

func (v *ActorsView) onDelete(id string) {
	actor, ok := v.findActor(id)
	if !ok {
		log.Printf("Delete requested for unknown actor %s", id)
		return
	}

	message := fmt.Sprintf(v.localization.GetText(KeyDeleteConfirm), actor.Nom)
	confirm := dialog.NewConfirm(v.localization.GetText(KeyDeleteTitle), message, func(confirmed bool) {
		if !confirmed {
			return
		}
		go func() {
			if err := v.svc.RemoveActor(context.Background(), actor.ID); err != nil {
				log.Printf("Error deleting actor %s: %v", actor.ID, err)
				fyne.Do(func() {
					widget.ShowPopUp(
						widget.NewLabel(v.localization.GetText(KeyDeleteFailed)),
						v.window.Canvas(),
					)
				})
			}
		}()
	}, v.window)
	confirm.SetConfirmText(v.localization.GetText(KeyDelete))
	confirm.SetDismissText(v.localization.GetText(KeyCancel))
	confirm.Show()
}
