package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/FELTRINCyril/cinebase/internal/catalog"
	"github.com/FELTRINCyril/cinebase/internal/config"
	"github.com/FELTRINCyril/cinebase/internal/images"
)

// Tab indices in the main tab bar
const (
	TabIndexHome = iota
	TabIndexActors
	TabIndexMovies
	TabIndexAdmin
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App

	catalogSvc *catalog.Service
	photos     *images.Loader
	backendURL string

	settings     *config.Settings
	localization *Localization
	layout       *Layout

	adminCheck *widget.Check
	tabs       *container.AppTabs

	homeView   *HomeView
	actorsView *ActorsView
	moviesView *MoviesView
	adminView  *AdminView
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, catalogSvc *catalog.Service, photos *images.Loader, backendURL string) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		catalogSvc:   catalogSvc,
		photos:       photos,
		backendURL:   backendURL,
		settings:     settings,
		localization: localization,
		layout:       NewLayout(app),
	}

	// Verify that all callbacks are properly initialized
	log.Printf("RootUI initialized with catalog service: %v", ui.catalogSvc != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callbacks for catalog updates
	catalogSvc.SetActorsCallback(ui.onActorsUpdate)
	catalogSvc.SetMoviesCallback(ui.onMoviesUpdate)
	catalogSvc.SetHomeCallback(ui.onHomeUpdate)
	catalogSvc.SetSearchCallback(ui.onSearchUpdate)

	ui.setupUI()
	ui.refreshAll()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	admin := ui.settings.GetAdminMode()

	// Create page views
	ui.homeView = NewHomeView(ui.window, ui.catalogSvc, ui.photos, ui.localization, ui.layout, admin, ui.showToast)
	ui.actorsView = NewActorsView(ui.window, ui.catalogSvc, ui.photos, ui.localization, ui.layout, ui.settings, admin, ui.showToast)
	ui.moviesView = NewMoviesView(ui.window, ui.catalogSvc, ui.photos, ui.localization, ui.layout, ui.settings, admin, ui.showToast)
	ui.adminView = NewAdminView(ui.window, ui.catalogSvc, ui.localization, ui.showToast)

	// Create admin mode toggle
	ui.adminCheck = widget.NewCheck(ui.localization.GetText(KeyAdminMode), ui.onAdminToggle)
	ui.adminCheck.Checked = admin

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create title with logo
	titleLabel := widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	logo, err := LoadLogoResource()
	var left *fyne.Container
	if err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, titleLabel)
	} else {
		// Fallback to text only if logo loading fails
		left = container.NewHBox(titleLabel)
	}

	topPanel := container.NewBorder(nil, nil, left, container.NewHBox(ui.adminCheck, settingsBtn))

	// Create page tabs
	ui.tabs = container.NewAppTabs(
		container.NewTabItem(ui.localization.GetText(KeyTabHome), ui.homeView.Content()),
		container.NewTabItem(ui.localization.GetText(KeyTabActors), ui.actorsView.Content()),
		container.NewTabItem(ui.localization.GetText(KeyTabMovies), ui.moviesView.Content()),
		container.NewTabItem(ui.localization.GetText(KeyTabAdmin), ui.adminView.Content()),
	)
	ui.tabs.SetTabLocation(container.TabLocationTop)
	ui.tabs.OnSelected = func(*container.TabItem) {
		// Recent records go stale while other tabs are active
		if ui.tabs.SelectedIndex() == TabIndexHome {
			ui.catalogSvc.RefreshHome()
		}
	}

	content := container.NewBorder(topPanel, nil, nil, nil, ui.tabs)
	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the main menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Rebuild the UI with the new texts
	ui.rebuildUI()
}

// rebuildUI recreates the whole content so every label picks up the current
// language, then restores the selected tab and the loaded data
func (ui *RootUI) rebuildUI() {
	selected := ui.tabs.SelectedIndex()

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.setupUI()

	if selected >= 0 && selected < len(ui.tabs.Items) {
		ui.tabs.SelectIndex(selected)
	}
	ui.applyCurrentState()
}

// applyCurrentState re-renders the views from the service state without
// touching the backend
func (ui *RootUI) applyCurrentState() {
	ui.homeView.ApplyHome(ui.catalogSvc.GetHome())
	ui.homeView.ApplySearch(ui.catalogSvc.GetSearchState())
	ui.actorsView.Apply(ui.catalogSvc.GetActorList())
	ui.moviesView.Apply(ui.catalogSvc.GetMovieList())
}

// refreshAll triggers the initial fetches for every page
func (ui *RootUI) refreshAll() {
	ui.catalogSvc.RefreshHome()
	ui.actorsView.Refresh()
	ui.moviesView.Refresh()
}

// onAdminToggle handles the admin mode checkbox
func (ui *RootUI) onAdminToggle(enabled bool) {
	log.Printf("Admin mode toggled: %v", enabled)
	ui.settings.SetAdminMode(enabled)

	ui.homeView.SetAdmin(enabled)
	ui.actorsView.SetAdmin(enabled)
	ui.moviesView.SetAdmin(enabled)
}

// onShowSettings displays the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.backendURL, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies freshly saved preferences
func (ui *RootUI) onSettingsSaved() {
	language := ui.settings.GetLanguage()
	if language != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(language)
		ui.rebuildUI()
	}

	// The page limit may have changed; refetch the lists with it
	ui.actorsView.Refresh()
	ui.moviesView.Refresh()
}

// Catalog service callbacks. They arrive on background goroutines, so the
// view updates are marshalled onto the UI thread.

func (ui *RootUI) onActorsUpdate(state catalog.ActorList) {
	fyne.Do(func() {
		ui.actorsView.Apply(state)
	})
}

func (ui *RootUI) onMoviesUpdate(state catalog.MovieList) {
	fyne.Do(func() {
		ui.moviesView.Apply(state)
	})
}

func (ui *RootUI) onHomeUpdate(state catalog.Home) {
	fyne.Do(func() {
		ui.homeView.ApplyHome(state)
	})
}

func (ui *RootUI) onSearchUpdate(state catalog.SearchState) {
	fyne.Do(func() {
		ui.homeView.ApplySearch(state)
	})
}

// showToast shows an in-app toast notification in the top-right corner
func (ui *RootUI) showToast(title, message string) {
	titleLabel := widget.NewLabel(title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(message)
	messageLabel.Wrapping = fyne.TextWrapWord

	// Create close button
	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	// Layout the toast content
	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	content := container.NewVBox(
		header,
		messageLabel,
	)

	// Create and position the popup
	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

	toastPopup.Resize(toastSize)
	toastPopup.Move(toastPos)
	toastPopup.Show()

	// Auto-hide after configured time
	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(func() {
			if toastPopup != nil {
				toastPopup.Hide()
			}
		})
	}()
}
