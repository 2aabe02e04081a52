package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/FELTRINCyril/cinebase/internal/catalog"
	"github.com/FELTRINCyril/cinebase/internal/model"
	"github.com/FELTRINCyril/cinebase/internal/platform"
)

// MovieForm is the modal create/edit form for movie records
type MovieForm struct {
	window       fyne.Window
	svc          *catalog.Service
	localization *Localization
	notify       func(title, message string)

	// editing is nil when creating a new record
	editing *model.Movie

	popup *widget.PopUp

	nameEntry        *widget.Entry
	yearEntry        *widget.Entry
	genreEntry       *widget.SelectEntry
	descriptionEntry *widget.Entry
	actorsEntry      *widget.Entry
	linkEntry        *widget.Entry
	photoLabel       *widget.Label
	saveBtn          *widget.Button

	photoName string
	photoData []byte
}

// NewMovieForm creates the movie form. Pass the record to prefill for an
// edit, nil for a create.
func NewMovieForm(window fyne.Window, svc *catalog.Service, localization *Localization, editing *model.Movie, notify func(title, message string)) *MovieForm {
	f := &MovieForm{
		window:       window,
		svc:          svc,
		localization: localization,
		notify:       notify,
		editing:      editing,
	}
	f.createUI()
	f.prefill()
	return f
}

// Show displays the modal form
func (f *MovieForm) Show() {
	f.popup.Resize(fyne.NewSize(FormDialogWidth, FormDialogHeight))
	f.popup.Show()
	f.window.Canvas().Focus(f.nameEntry)
}

// createUI creates the UI components
func (f *MovieForm) createUI() {
	f.nameEntry = widget.NewEntry()
	f.nameEntry.Validator = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(f.localization.GetText(KeyNameRequired))
		}
		return nil
	}

	f.yearEntry = widget.NewEntry()

	f.genreEntry = widget.NewSelectEntry(nil)
	f.loadGenreOptions()

	f.descriptionEntry = widget.NewMultiLineEntry()
	f.descriptionEntry.SetMinRowsVisible(3)
	f.descriptionEntry.Wrapping = fyne.TextWrapWord

	f.actorsEntry = widget.NewMultiLineEntry()
	f.actorsEntry.SetMinRowsVisible(3)

	f.linkEntry = widget.NewEntry()
	f.linkEntry.SetPlaceHolder("https://...")

	f.photoLabel = widget.NewLabel(f.localization.GetText(KeyNoPhotoSelected))
	f.photoLabel.Truncation = fyne.TextTruncateEllipsis
	choosePhotoBtn := widget.NewButton(f.localization.GetText(KeyChoosePhoto), f.onChoosePhoto)

	cancelBtn := widget.NewButton(f.localization.GetText(KeyCancel), func() {
		f.popup.Hide()
	})
	f.saveBtn = widget.NewButton(f.localization.GetText(KeySave), f.onSave)
	f.saveBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabelWithStyle(f.localization.GetText(KeyMovieFormTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewLabel(f.localization.GetText(KeyFieldName)),
		f.nameEntry,
		widget.NewLabel(f.localization.GetText(KeyFieldYear)),
		f.yearEntry,
		widget.NewLabel(f.localization.GetText(KeyFieldGenre)),
		f.genreEntry,
		widget.NewLabel(f.localization.GetText(KeyFieldDescription)),
		f.descriptionEntry,
		widget.NewLabel(f.localization.GetText(KeyFieldActors)),
		f.actorsEntry,
		widget.NewLabel(f.localization.GetText(KeyFieldLink)),
		f.linkEntry,
		container.NewBorder(nil, nil, choosePhotoBtn, nil, f.photoLabel),
		widget.NewSeparator(),
		container.NewBorder(nil, nil, nil, container.NewHBox(cancelBtn, f.saveBtn)),
	)

	f.popup = widget.NewModalPopUp(container.NewPadded(form), f.window.Canvas())
}

// loadGenreOptions fills the genre dropdown from the backend
func (f *MovieForm) loadGenreOptions() {
	go func() {
		options := f.svc.GenreOptions(context.Background())
		if len(options) == 0 {
			return
		}
		fyne.Do(func() {
			f.genreEntry.SetOptions(options)
		})
	}()
}

// prefill loads the record under edit into the entries
func (f *MovieForm) prefill() {
	if f.editing == nil {
		return
	}
	f.nameEntry.SetText(f.editing.Nom)
	if f.editing.Annee != nil {
		f.yearEntry.SetText(strconv.Itoa(*f.editing.Annee))
	}
	f.genreEntry.SetText(f.editing.Genre)
	f.descriptionEntry.SetText(f.editing.Description)
	f.actorsEntry.SetText(joinLines(f.editing.Acteurs))
	f.linkEntry.SetText(f.editing.LienExterne)
	if f.editing.PhotoCouverture != "" {
		f.photoLabel.SetText(filepath.Base(f.editing.PhotoCouverture))
	}
}

// onChoosePhoto opens the image picker and keeps the chosen bytes in memory
func (f *MovieForm) onChoosePhoto() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		name := reader.URI().Name()
		if !platform.IsImageFile(name) {
			widget.ShowPopUp(widget.NewLabel(f.localization.GetText(KeyInvalidPhoto)), f.window.Canvas())
			return
		}

		data, readErr := io.ReadAll(reader)
		if readErr != nil {
			log.Printf("Error reading photo %s: %v", name, readErr)
			widget.ShowPopUp(widget.NewLabel(f.localization.GetText(KeyInvalidPhoto)), f.window.Canvas())
			return
		}

		f.photoName = name
		f.photoData = data
		f.photoLabel.SetText(name)
	}, f.window)
	fd.SetFilter(storage.NewExtensionFileFilter(platform.ImageExtensions))
	fd.Show()
}

// onSave validates the entries and runs the two-phase save in the background.
// The form stays open with input intact when the save fails.
func (f *MovieForm) onSave() {
	input := model.MovieInput{
		Nom:         strings.TrimSpace(f.nameEntry.Text),
		Genre:       strings.TrimSpace(f.genreEntry.Text),
		Description: strings.TrimSpace(f.descriptionEntry.Text),
		Acteurs:     splitLines(f.actorsEntry.Text),
	}
	if f.editing != nil {
		input.ID = f.editing.ID
	}

	yearText := strings.TrimSpace(f.yearEntry.Text)
	if yearText != "" {
		year, err := strconv.Atoi(yearText)
		if err != nil {
			widget.ShowPopUp(widget.NewLabel(f.localization.GetText(KeyInvalidNumber)), f.window.Canvas())
			return
		}
		input.Annee = &year
	}

	link := strings.TrimSpace(f.linkEntry.Text)
	if link != "" {
		if err := platform.ValidateExternalURL(link); err != nil {
			widget.ShowPopUp(widget.NewLabel(f.localization.GetText(KeyInvalidLink)), f.window.Canvas())
			return
		}
	}
	input.LienExterne = link

	var photo *catalog.PhotoUpload
	if f.photoData != nil {
		photo = &catalog.PhotoUpload{
			Filename: f.photoName,
			Data:     bytes.NewReader(f.photoData),
		}
	}

	f.saveBtn.Disable()
	go func() {
		result, err := f.svc.SaveMovie(context.Background(), input, photo)
		fyne.Do(func() {
			f.saveBtn.Enable()
			if err != nil {
				log.Printf("Movie save failed: %v", err)
				message := f.localization.GetText(KeySaveFailed)
				if errors.Is(err, catalog.ErrNameRequired) {
					message = f.localization.GetText(KeyNameRequired)
				}
				widget.ShowPopUp(widget.NewLabel(IconError+" "+message), f.window.Canvas())
				return
			}
			if result.PhotoErr != nil && f.notify != nil {
				f.notify(f.localization.GetText(KeySaved), f.localization.GetText(KeyPhotoUploadFailed))
			}
			f.popup.Hide()
		})
	}()
}
