package ui

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/FELTRINCyril/cinebase/internal/catalog"
	"github.com/FELTRINCyril/cinebase/internal/images"
	"github.com/FELTRINCyril/cinebase/internal/model"
)

// HomeView renders the home page: a global search box on top, then either
// the aggregated search results or the recently added records
type HomeView struct {
	window       fyne.Window
	svc          *catalog.Service
	photos       *images.Loader
	localization *Localization
	layout       *Layout
	notify       func(title, message string)

	admin  bool
	home   catalog.Home
	search catalog.SearchState

	searchEntry  *widget.Entry
	phaseLabel   *widget.Label
	phaseSpinner *widget.ProgressBarInfinite
	body         *fyne.Container
	content      fyne.CanvasObject
}

// NewHomeView creates the home page
func NewHomeView(
	window fyne.Window,
	svc *catalog.Service,
	photos *images.Loader,
	localization *Localization,
	layout *Layout,
	admin bool,
	notify func(title, message string),
) *HomeView {
	v := &HomeView{
		window:       window,
		svc:          svc,
		photos:       photos,
		localization: localization,
		layout:       layout,
		notify:       notify,
		admin:        admin,
	}
	v.createUI()
	return v
}

// createUI creates the UI components
func (v *HomeView) createUI() {
	v.searchEntry = widget.NewEntry()
	v.searchEntry.SetPlaceHolder(v.localization.GetText(KeySearchPlaceholder))
	v.searchEntry.OnChanged = func(query string) {
		v.svc.SetSearchQuery(query)
	}
	v.searchEntry.OnSubmitted = func(string) {
		v.svc.RunSearch()
	}

	searchRow := container.NewBorder(nil, nil, widget.NewLabel(IconSearch), nil, v.searchEntry)

	v.phaseLabel = widget.NewLabel("")
	v.phaseLabel.Hide()
	v.phaseSpinner = widget.NewProgressBarInfinite()
	v.phaseSpinner.Hide()
	phaseRow := container.NewHBox(v.phaseSpinner, v.phaseLabel)

	v.body = container.NewVBox()

	top := container.NewVBox(searchRow, phaseRow)
	v.content = container.NewBorder(top, nil, nil, nil, container.NewScroll(v.body))
}

// Content returns the page content
func (v *HomeView) Content() fyne.CanvasObject {
	return v.content
}

// SetAdmin toggles edit and delete affordances on the cards
func (v *HomeView) SetAdmin(admin bool) {
	v.admin = admin
	v.render()
}

// ApplyHome renders fresh recent records. Must run on the UI thread.
func (v *HomeView) ApplyHome(home catalog.Home) {
	v.home = home
	v.render()
}

// ApplySearch renders a fresh search state. Must run on the UI thread.
func (v *HomeView) ApplySearch(search catalog.SearchState) {
	v.search = search
	v.render()
}

// render shows search results while a query is active, recent records otherwise
func (v *HomeView) render() {
	if v.search.Query != "" {
		v.renderPhase(v.search.Phase)
		v.renderSearchResults()
		return
	}
	v.renderPhase(v.home.Phase)
	v.renderRecent()
}

func (v *HomeView) renderPhase(phase model.ListPhase) {
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

func (v *HomeView) renderSearchResults() {
	objects := make([]fyne.CanvasObject, 0, 4)

	if len(v.search.Results.Actors) > 0 {
		header := fmt.Sprintf(SectionCountFormat,
			v.localization.GetText(KeySectionActors), len(v.search.Results.Actors))
		objects = append(objects, v.sectionHeader(header), v.actorGrid(v.search.Results.Actors))
	}
	if len(v.search.Results.Movies) > 0 {
		header := fmt.Sprintf(SectionCountFormat,
			v.localization.GetText(KeySectionMovies), len(v.search.Results.Movies))
		objects = append(objects, v.sectionHeader(header), v.movieGrid(v.search.Results.Movies))
	}

	v.body.Objects = objects
	v.body.Refresh()
}

func (v *HomeView) renderRecent() {
	objects := make([]fyne.CanvasObject, 0, 4)

	if len(v.home.RecentActors) > 0 {
		objects = append(objects,
			v.sectionHeader(v.localization.GetText(KeyRecentActors)),
			v.actorGrid(v.home.RecentActors))
	}
	if len(v.home.RecentMovies) > 0 {
		objects = append(objects,
			v.sectionHeader(v.localization.GetText(KeyRecentMovies)),
			v.movieGrid(v.home.RecentMovies))
	}

	v.body.Objects = objects
	v.body.Refresh()
}

func (v *HomeView) sectionHeader(text string) fyne.CanvasObject {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

func (v *HomeView) actorGrid(actors []model.Actor) fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(actors))
	for _, actor := range actors {
		card := NewEntityCard(ActorCardData(actor), v.localization, v.photos, v.layout.CardPhotoHeight())
		card.SetCallbacks(v.onEditActor, v.onDeleteActor)
		card.SetAdmin(v.admin)
		objects = append(objects, card)
	}
	return v.layout.NewCardGrid(objects...)
}

func (v *HomeView) movieGrid(movies []model.Movie) fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(movies))
	for _, movie := range movies {
		card := NewEntityCard(MovieCardData(movie), v.localization, v.photos, v.layout.CardPhotoHeight())
		card.SetCallbacks(v.onEditMovie, v.onDeleteMovie)
		card.SetAdmin(v.admin)
		objects = append(objects, card)
	}
	return v.layout.NewCardGrid(objects...)
}

// findActor looks the record up in both the search results and the recents
func (v *HomeView) findActor(id string) (model.Actor, bool) {
	for _, actor := range v.search.Results.Actors {
		if actor.ID == id {
			return actor, true
		}
	}
	for _, actor := range v.home.RecentActors {
		if actor.ID == id {
			return actor, true
		}
	}
	return model.Actor{}, false
}

func (v *HomeView) findMovie(id string) (model.Movie, bool) {
	for _, movie := range v.search.Results.Movies {
		if movie.ID == id {
			return movie, true
		}
	}
	for _, movie := range v.home.RecentMovies {
		if movie.ID == id {
			return movie, true
		}
	}
	return model.Movie{}, false
}

// refreshAfterChange re-fetches whichever collection the page is showing.
// Must run on the UI thread, it reads the search state.
func (v *HomeView) refreshAfterChange() {
	if v.search.Query != "" {
		v.svc.RunSearch()
		return
	}
	v.svc.RefreshHome()
}

func (v *HomeView) onEditActor(id string) {
	actor, ok := v.findActor(id)
	if !ok {
		log.Printf("Edit requested for unknown actor %s", id)
		return
	}
	NewActorForm(v.window, v.svc, v.localization, &actor, v.notify).Show()
}

func (v *HomeView) onEditMovie(id string) {
	movie, ok := v.findMovie(id)
	if !ok {
		log.Printf("Edit requested for unknown movie %s", id)
		return
	}
	NewMovieForm(v.window, v.svc, v.localization, &movie, v.notify).Show()
}

func (v *HomeView) onDeleteActor(id string) {
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
				return
			}
			fyne.Do(v.refreshAfterChange)
		}()
	}, v.window)
	confirm.SetConfirmText(v.localization.GetText(KeyDelete))
	confirm.SetDismissText(v.localization.GetText(KeyCancel))
	confirm.Show()
}

func (v *HomeView) onDeleteMovie(id string) {
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
				return
			}
			fyne.Do(v.refreshAfterChange)
		}()
	}, v.window)
	confirm.SetConfirmText(v.localization.GetText(KeyDelete))
	confirm.SetDismissText(v.localization.GetText(KeyCancel))
	confirm.Show()
}
