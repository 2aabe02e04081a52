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

// MoviesView renders the movie list page: filter bar on top, card grid below
type MoviesView struct {
	window       fyne.Window
	svc          *catalog.Service
	photos       *images.Loader
	localization *Localization
	layout       *Layout
	settings     *config.Settings
	notify       func(title, message string)

	admin bool
	state catalog.MovieList

	searchEntry *widget.Entry
	nameEntry   *widget.Entry
	genreEntry  *widget.SelectEntry
	yearEntry   *widget.Entry

	phaseLabel   *widget.Label
	phaseSpinner *widget.ProgressBarInfinite
	grid         *fyne.Container
	content      fyne.CanvasObject
}

// NewMoviesView creates the movie list page
func NewMoviesView(
	window fyne.Window,
	svc *catalog.Service,
	photos *images.Loader,
	localization *Localization,
	layout *Layout,
	settings *config.Settings,
	admin bool,
	notify func(title, message string),
) *MoviesView {
	v := &MoviesView{
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
func (v *MoviesView) createUI() {
	v.searchEntry = widget.NewEntry()
	v.searchEntry.SetPlaceHolder(v.localization.GetText(KeyFilterSearch))
	v.searchEntry.OnChanged = func(string) { v.onFilterEdited() }

	v.nameEntry = widget.NewEntry()
	v.nameEntry.SetPlaceHolder(v.localization.GetText(KeyFilterName))
	v.nameEntry.OnChanged = func(string) { v.onFilterEdited() }

	v.genreEntry = widget.NewSelectEntry(nil)
	v.genreEntry.SetPlaceHolder(v.localization.GetText(KeyFilterGenre))
	v.genreEntry.OnChanged = func(string) { v.onFilterEdited() }
	v.loadGenreOptions()

	v.yearEntry = widget.NewEntry()
	v.yearEntry.SetPlaceHolder(v.localization.GetText(KeyFilterYear))
	v.yearEntry.OnChanged = func(string) { v.onFilterEdited() }

	resetBtn := widget.NewButton(v.localization.GetText(KeyReset), v.onReset)
	resetBtn.Importance = widget.LowImportance

	filterItems := []fyne.CanvasObject{
		v.searchEntry,
		v.nameEntry,
		v.genreEntry,
		v.yearEntry,
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

// loadGenreOptions fills the genre dropdown from the backend
func (v *MoviesView) loadGenreOptions() {
	go func() {
		options := v.svc.GenreOptions(context.Background())
		if len(options) == 0 {
			return
		}
		fyne.Do(func() {
			v.genreEntry.SetOptions(options)
		})
	}()
}

// Content returns the page content
func (v *MoviesView) Content() fyne.CanvasObject {
	return v.content
}

// Refresh pushes the current filter to the service and fetches right away
func (v *MoviesView) Refresh() {
	v.svc.SetMovieFilter(v.currentFilter())
	v.svc.RefreshMovies()
}

// SetAdmin toggles edit and delete affordances on the cards
func (v *MoviesView) SetAdmin(admin bool) {
	v.admin = admin
	v.renderCards()
}

// Apply renders a fresh list state. Must run on the UI thread.
func (v *MoviesView) Apply(state catalog.MovieList) {
	v.state = state
	v.renderPhase(state.Phase)
	v.renderCards()
}

func (v *MoviesView) currentFilter() model.MovieFilter {
	return model.MovieFilter{
		Search: strings.TrimSpace(v.searchEntry.Text),
		Nom:    strings.TrimSpace(v.nameEntry.Text),
		Genre:  strings.TrimSpace(v.genreEntry.Text),
		Annee:  strings.TrimSpace(v.yearEntry.Text),
		Limit:  v.settings.GetPageLimit(),
	}
}

func (v *MoviesView) onFilterEdited() {
	v.svc.SetMovieFilter(v.currentFilter())
}

func (v *MoviesView) onReset() {
	// Each SetText fires OnChanged; the debounce collapses them into one fetch
	v.searchEntry.SetText("")
	v.nameEntry.SetText("")
	v.genreEntry.SetText("")
	v.yearEntry.SetText("")
}

func (v *MoviesView) renderPhase(phase model.ListPhase) {
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

func (v *MoviesView) renderCards() {
	objects := make([]fyne.CanvasObject, 0, len(v.state.Items))
	for _, movie := range v.state.Items {
		card := NewEntityCard(MovieCardData(movie), v.localization, v.photos, v.layout.CardPhotoHeight())
		card.SetCallbacks(v.onEdit, v.onDelete)
		card.SetAdmin(v.admin)
		objects = append(objects, card)
	}
	v.grid.Objects = objects
	v.grid.Refresh()
}

func (v *MoviesView) findMovie(id string) (model.Movie, bool) {
	for _, movie := range v.state.Items {
		if movie.ID == id {
			return movie, true
		}
	}
	return model.Movie{}, false
}

func (v *MoviesView) onEdit(id string) {
	movie, ok := v.findMovie(id)
	if !ok {
		log.Printf("Edit requested for unknown movie %s", id)
		return
	}
	NewMovieForm(v.window, v.svc, v.localization, &movie, v.notify).Show()
}

func (v *MoviesView) onDelete(id string) {
	movie, ok := v.findMovie(id)
	if !ok {
		log.Printf("Delete requested for unknown movie %s", id)
		return
	}

	message := fmt.Sprintf(v.localization.GetText(KeyDeleteConfirm), movie.Nom)
	confirm := dialog.NewConfirm(v.localization.GetText(KeyDeleteTitle), message, func(confirmed bool) {
		if !confirmed {
			return
		}
		go func() {
			if err := v.svc.RemoveMovie(context.Background(), movie.ID); err != nil {
				log.Printf("Error deleting movie %s: %v", movie.ID, err)
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
