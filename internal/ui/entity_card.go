package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/FELTRINCyril/cinebase/internal/images"
	"github.com/FELTRINCyril/cinebase/internal/model"
	"github.com/FELTRINCyril/cinebase/internal/platform"
)

// CardKind selects the placeholder art shown until the photo arrives
type CardKind int

const (
	CardKindActor CardKind = iota
	CardKindMovie
)

func (k CardKind) placeholder() fyne.Resource {
	if k == CardKindMovie {
		return theme.MediaVideoIcon()
	}
	return theme.AccountIcon()
}

// CardData is the view model an EntityCard renders
type CardData struct {
	ID        string
	Kind      CardKind
	Title     string
	Subtitle  string
	Excerpt   string
	PhotoPath string
	LinkURL   string
}

// ActorCardData builds the card view model for an actor record
func ActorCardData(a model.Actor) CardData {
	return CardData{
		ID:        a.ID,
		Kind:      CardKindActor,
		Title:     a.Nom,
		Subtitle:  a.DisplaySubtitle(),
		Excerpt:   a.ShortBio(BioExcerptLength),
		PhotoPath: a.PhotoProfil,
	}
}

// MovieCardData builds the card view model for a movie record
func MovieCardData(m model.Movie) CardData {
	return CardData{
		ID:        m.ID,
		Kind:      CardKindMovie,
		Title:     m.DisplayTitle(),
		Subtitle:  m.DisplaySubtitle(),
		Excerpt:   m.ShortDescription(DescriptionExcerptLength),
		PhotoPath: m.PhotoCouverture,
		LinkURL:   m.LienExterne,
	}
}

// EntityCard represents one catalog record in a card grid
type EntityCard struct {
	widget.BaseWidget

	data         CardData
	localization *Localization
	photos       *images.Loader
	photoHeight  float32

	admin bool

	// UI components
	photo         *canvas.Image
	titleLabel    *widget.Label
	subtitleLabel *widget.Label
	excerptLabel  *widget.Label

	// Action buttons
	linkBtn   *widget.Button
	editBtn   *widget.Button
	deleteBtn *widget.Button

	// Callbacks
	onEdit   func(id string)
	onDelete func(id string)
}

// NewEntityCard creates a new record card widget
func NewEntityCard(data CardData, localization *Localization, photos *images.Loader, photoHeight float32) *EntityCard {
	ec := &EntityCard{
		data:         data,
		localization: localization,
		photos:       photos,
		photoHeight:  photoHeight,
	}
	ec.ExtendBaseWidget(ec)
	ec.createUI()
	ec.updateFromData()
	return ec
}

// SetCallbacks sets the admin action callbacks
func (ec *EntityCard) SetCallbacks(onEdit func(id string), onDelete func(id string)) {
	ec.onEdit = onEdit
	ec.onDelete = onDelete
	ec.updateButtons()
}

// SetAdmin toggles the edit and delete affordances
func (ec *EntityCard) SetAdmin(admin bool) {
	ec.admin = admin
	ec.updateButtons()
}

// createUI creates the UI components
func (ec *EntityCard) createUI() {
	ec.photo = canvas.NewImageFromResource(ec.data.Kind.placeholder())
	ec.photo.FillMode = canvas.ImageFillContain

	ec.titleLabel = widget.NewLabel("")
	ec.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ec.titleLabel.Wrapping = fyne.TextWrapWord
	ec.titleLabel.Truncation = fyne.TextTruncateEllipsis
	ec.titleLabel.Alignment = fyne.TextAlignLeading

	ec.subtitleLabel = widget.NewLabel("")
	ec.subtitleLabel.Truncation = fyne.TextTruncateEllipsis

	ec.excerptLabel = widget.NewLabel("")
	ec.excerptLabel.Wrapping = fyne.TextWrapWord
	ec.excerptLabel.Truncation = fyne.TextTruncateEllipsis

	ec.linkBtn = widget.NewButton(IconLink, func() {
		// Read the current record dynamically - not from closure!
		current := ec.data
		if current.LinkURL == "" {
			return
		}
		if err := platform.OpenURL(current.LinkURL); err != nil {
			log.Printf("Error opening link for record %s: %v", current.ID, err)
			widget.ShowPopUp(
				widget.NewLabel(ec.localization.GetText(KeyErrorOpeningLink)),
				fyne.CurrentApp().Driver().CanvasForObject(ec.linkBtn),
			)
		}
	})
	ec.linkBtn.Importance = widget.MediumImportance

	ec.editBtn = widget.NewButton(IconEdit, func() {
		current := ec.data
		if ec.onEdit == nil {
			log.Printf("onEdit callback is nil for record %s", current.ID)
			return
		}
		ec.onEdit(current.ID)
	})
	ec.editBtn.Importance = widget.MediumImportance

	ec.deleteBtn = widget.NewButton(IconDelete, func() {
		current := ec.data
		if ec.onDelete == nil {
			log.Printf("onDelete callback is nil for record %s", current.ID)
			return
		}
		ec.onDelete(current.ID)
	})
	ec.deleteBtn.Importance = widget.DangerImportance
}

// updateFromData updates UI components based on the record
func (ec *EntityCard) updateFromData() {
	ec.titleLabel.SetText(ec.data.Title)

	if ec.data.Subtitle != "" {
		ec.subtitleLabel.SetText(ec.data.Subtitle)
	} else {
		ec.subtitleLabel.SetText(DashPlaceholder)
	}
	ec.excerptLabel.SetText(ec.data.Excerpt)

	ec.photo.Resource = ec.data.Kind.placeholder()
	ec.photo.Refresh()
	if ec.data.PhotoPath != "" {
		path := ec.data.PhotoPath
		ec.photos.Load(path, func(data []byte) {
			fyne.Do(func() {
				// The card may have been rebuilt for another record meanwhile
				if ec.data.PhotoPath != path {
					return
				}
				ec.photo.Resource = fyne.NewStaticResource(path, data)
				ec.photo.Refresh()
			})
		})
	}

	ec.updateButtons()
}

// updateButtons updates button visibility based on admin mode and record data
func (ec *EntityCard) updateButtons() {
	if ec.admin {
		ec.editBtn.Show()
		ec.deleteBtn.Show()
	} else {
		ec.editBtn.Hide()
		ec.deleteBtn.Hide()
	}

	if ec.data.LinkURL != "" {
		ec.linkBtn.Show()
	} else {
		ec.linkBtn.Hide()
	}
}

// CreateRenderer creates the widget renderer
func (ec *EntityCard) CreateRenderer() fyne.WidgetRenderer {
	return &entityCardRenderer{card: ec}
}

// entityCardRenderer renders the record card widget
type entityCardRenderer struct {
	card   *EntityCard
	layout *fyne.Container
}

// Layout arranges the components
func (r *entityCardRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		r.layout.Resize(size)
	}
}

// MinSize returns the minimum size
func (r *entityCardRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(MobileCardWidth, MobileCardHeight)
}

// Refresh refreshes the renderer
func (r *entityCardRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		r.layout.Refresh()
	}
}

// Objects returns the container objects
func (r *entityCardRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *entityCardRenderer) Destroy() {}

// createLayout creates the main layout
func (r *entityCardRenderer) createLayout() {
	ec := r.card

	// Helper to fix height using a transparent rectangle underneath
	fixedHeight := func(h float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(0, h))
		return container.NewStack(spacer, obj)
	}

	photoStrip := fixedHeight(ec.photoHeight, ec.photo)

	// Admin actions pinned to the right, link button on the left
	actionRow := container.NewBorder(nil, nil, ec.linkBtn,
		container.NewHBox(ec.editBtn, ec.deleteBtn),
	)

	body := container.NewVBox(
		photoStrip,
		ec.titleLabel,
		ec.subtitleLabel,
		ec.excerptLabel,
	)

	// Border keeps the action row flush with the card's bottom edge
	r.layout = container.NewBorder(nil, actionRow, nil, nil, body)

	r.layout.Refresh()
}
