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

// splitLines turns a one-item-per-line entry into a clean list
func splitLines(s string) []string {
	var items []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// joinLines renders a list back into the one-item-per-line entry format
func joinLines(items []string) string {
	return strings.Join(items, "\n")
}

// ActorForm is the modal create/edit form for actor records
type ActorForm struct {
	window       fyne.Window
	svc          *catalog.Service
	localization *Localization
	notify       func(title, message string)

	// editing is nil when creating a new record
	editing *model.Actor

	popup *widget.PopUp

	nameEntry        *widget.Entry
	ageEntry         *widget.Entry
	nationalityEntry *widget.Entry
	biographyEntry   *widget.Entry
	filmographyEntry *widget.Entry
	photoLabel       *widget.Label
	saveBtn          *widget.Button

	photoName string
	photoData []byte
}

// NewActorForm creates the actor form. Pass the record to prefill for an
// edit, nil for a create.
func NewActorForm(window fyne.Window, svc *catalog.Service, localization *Localization, editing *model.Actor, notify func(title, message string)) *ActorForm {
	f := &ActorForm{
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
func (f *ActorForm) Show() {
	f.popup.Resize(fyne.NewSize(FormDialogWidth, FormDialogHeight))
	f.popup.Show()
	f.window.Canvas().Focus(f.nameEntry)
}

// createUI creates the UI components
func (f *ActorForm) createUI() {
	f.nameEntry = widget.NewEntry()
	f.nameEntry.Validator = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(f.localization.GetText(KeyNameRequired))
		}
		return nil
	}

	f.ageEntry = widget.NewEntry()
	f.nationalityEntry = widget.NewEntry()

	f.biographyEntry = widget.NewMultiLineEntry()
	f.biographyEntry.SetMinRowsVisible(3)
	f.biographyEntry.Wrapping = fyne.TextWrapWord

	f.filmographyEntry = widget.NewMultiLineEntry()
	f.filmographyEntry.SetMinRowsVisible(3)

	f.photoLabel = widget.NewLabel(f.localization.GetText(KeyNoPhotoSelected))
	f.photoLabel.Truncation = fyne.TextTruncateEllipsis
	choosePhotoBtn := widget.NewButton(f.localization.GetText(KeyChoosePhoto), f.onChoosePhoto)

	cancelBtn := widget.NewButton(f.localization.GetText(KeyCancel), func() {
		f.popup.Hide()
	})
	f.saveBtn = widget.NewButton(f.localization.GetText(KeySave), f.onSave)
	f.saveBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabelWithStyle(f.localization.GetText(KeyActorFormTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewLabel(f.localization.GetText(KeyFieldName)),
		f.nameEntry,
		widget.NewLabel(f.localization.GetText(KeyFieldAge)),
		f.ageEntry,
		widget.NewLabel(f.localization.GetText(KeyFieldNationality)),
		f.nationalityEntry,
		widget.NewLabel(f.localization.GetText(KeyFieldBiography)),
		f.biographyEntry,
		widget.NewLabel(f.localization.GetText(KeyFieldFilmography)),
		f.filmographyEntry,
		container.NewBorder(nil, nil, choosePhotoBtn, nil, f.photoLabel),
		widget.NewSeparator(),
		container.NewBorder(nil, nil, nil, container.NewHBox(cancelBtn, f.saveBtn)),
	)

	f.popup = widget.NewModalPopUp(container.NewPadded(form), f.window.Canvas())
}

// prefill loads the record under edit into the entries
func (f *ActorForm) prefill() {
	if f.editing == nil {
		return
	}
	f.nameEntry.SetText(f.editing.Nom)
	if f.editing.Age != nil {
		f.ageEntry.SetText(strconv.Itoa(*f.editing.Age))
	}
	f.nationalityEntry.SetText(f.editing.Nationalite)
	f.biographyEntry.SetText(f.editing.Biographie)
	f.filmographyEntry.SetText(joinLines(f.editing.Filmographie))
	if f.editing.PhotoProfil != "" {
		f.photoLabel.SetText(filepath.Base(f.editing.PhotoProfil))
	}
}

// onChoosePhoto opens the image picker and keeps the chosen bytes in memory
func (f *ActorForm) onChoosePhoto() {
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
func (f *ActorForm) onSave() {
	input := model.ActorInput{
		Nom:          strings.TrimSpace(f.nameEntry.Text),
		Nationalite:  strings.TrimSpace(f.nationalityEntry.Text),
		Biographie:   strings.TrimSpace(f.biographyEntry.Text),
		Filmographie: splitLines(f.filmographyEntry.Text),
	}
	if f.editing != nil {
		input.ID = f.editing.ID
	}

	ageText := strings.TrimSpace(f.ageEntry.Text)
	if ageText != "" {
		age, err := strconv.Atoi(ageText)
		if err != nil {
			widget.ShowPopUp(widget.NewLabel(f.localization.GetText(KeyInvalidNumber)), f.window.Canvas())
			return
		}
		input.Age = &age
	}

	var photo *catalog.PhotoUpload
	if f.photoData != nil {
		photo = &catalog.PhotoUpload{
			Filename: f.photoName,
			Data:     bytes.NewReader(f.photoData),
		}
	}

	f.saveBtn.Disable()
	go func() {
		result, err := f.svc.SaveActor(context.Background(), input, photo)
		fyne.Do(func() {
			f.saveBtn.Enable()
			if err != nil {
				log.Printf("Actor save failed: %v", err)
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
