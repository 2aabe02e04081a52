package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyTabHome           = "tab_home"
	KeyTabActors         = "tab_actors"
	KeyTabMovies         = "tab_movies"
	KeyTabAdmin          = "tab_admin"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyAdminMode         = "admin_mode"
	KeySearchPlaceholder = "search_placeholder"
	KeyFilterSearch      = "filter_search"
	KeyFilterName        = "filter_name"
	KeyFilterNationality = "filter_nationality"
	KeyFilterAgeMin      = "filter_age_min"
	KeyFilterAgeMax      = "filter_age_max"
	KeyFilterGenre       = "filter_genre"
	KeyFilterYear        = "filter_year"
	KeyReset             = "reset"
	KeyLoading           = "loading"
	KeyNoResults         = "no_results"
	KeyRecentActors      = "recent_actors"
	KeyRecentMovies      = "recent_movies"
	KeySectionActors     = "section_actors"
	KeySectionMovies     = "section_movies"
	KeyEdit              = "edit"
	KeyDelete            = "delete"
	KeyOpenLink          = "open_link"
	KeyErrorOpeningLink  = "error_opening_link"
	KeyAddActor          = "add_actor"
	KeyAddMovie          = "add_movie"
	KeyAdminHint         = "admin_hint"
	KeyActorFormTitle    = "actor_form_title"
	KeyMovieFormTitle    = "movie_form_title"
	KeyFieldName         = "field_name"
	KeyFieldAge          = "field_age"
	KeyFieldNationality  = "field_nationality"
	KeyFieldBiography    = "field_biography"
	KeyFieldFilmography  = "field_filmography"
	KeyFieldGenre        = "field_genre"
	KeyFieldYear         = "field_year"
	KeyFieldDescription  = "field_description"
	KeyFieldActors       = "field_actors"
	KeyFieldLink         = "field_link"
	KeyChoosePhoto       = "choose_photo"
	KeyNoPhotoSelected   = "no_photo_selected"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyNameRequired      = "name_required"
	KeyInvalidNumber     = "invalid_number"
	KeyInvalidLink       = "invalid_link"
	KeyInvalidPhoto      = "invalid_photo"
	KeySaved             = "saved"
	KeyPhotoUploadFailed = "photo_upload_failed"
	KeySaveFailed        = "save_failed"
	KeyDeleteTitle       = "delete_title"
	KeyDeleteConfirm     = "delete_confirm"
	KeyDeleteFailed      = "delete_failed"
	KeyPageLimit         = "page_limit"
	KeyBackendURL        = "backend_url"
	KeySettingsSaved     = "settings_saved"
	KeySelectLanguage    = "select_language"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "fr",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to French for now
		lang = "fr"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to French
	if texts, exists := l.texts["fr"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"fr": "Français",
		"en": "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// French texts
	l.texts["fr"] = map[string]string{
		KeyAppTitle:          "CinéBase",
		KeyTabHome:           "Accueil",
		KeyTabActors:         "Acteurs",
		KeyTabMovies:         "Films",
		KeyTabAdmin:          "Admin",
		KeySettings:          "Paramètres",
		KeyFile:              "Fichier",
		KeyLanguage:          "Langue",
		KeyAdminMode:         "Mode admin",
		KeySearchPlaceholder: "Rechercher des acteurs ou des films...",
		KeyFilterSearch:      "Recherche",
		KeyFilterName:        "Nom",
		KeyFilterNationality: "Nationalité",
		KeyFilterAgeMin:      "Âge min",
		KeyFilterAgeMax:      "Âge max",
		KeyFilterGenre:       "Genre",
		KeyFilterYear:        "Année",
		KeyReset:             "Réinitialiser",
		KeyLoading:           "Chargement...",
		KeyNoResults:         "Aucun résultat",
		KeyRecentActors:      "Acteurs ajoutés récemment",
		KeyRecentMovies:      "Films ajoutés récemment",
		KeySectionActors:     "Acteurs",
		KeySectionMovies:     "Films",
		KeyEdit:              "Modifier",
		KeyDelete:            "Supprimer",
		KeyOpenLink:          "Voir la fiche",
		KeyErrorOpeningLink:  "Impossible d'ouvrir le lien",
		KeyAddActor:          "Ajouter un acteur",
		KeyAddMovie:          "Ajouter un film",
		KeyAdminHint:         "Créez de nouvelles fiches ici. Activez le mode admin pour modifier ou supprimer depuis les listes.",
		KeyActorFormTitle:    "Fiche acteur",
		KeyMovieFormTitle:    "Fiche film",
		KeyFieldName:         "Nom *",
		KeyFieldAge:          "Âge",
		KeyFieldNationality:  "Nationalité",
		KeyFieldBiography:    "Biographie",
		KeyFieldFilmography:  "Filmographie (un film par ligne)",
		KeyFieldGenre:        "Genre",
		KeyFieldYear:         "Année",
		KeyFieldDescription:  "Description",
		KeyFieldActors:       "Acteurs (un nom par ligne)",
		KeyFieldLink:         "Lien externe",
		KeyChoosePhoto:       "Choisir une photo",
		KeyNoPhotoSelected:   "Aucune photo sélectionnée",
		KeySave:              "Enregistrer",
		KeyCancel:            "Annuler",
		KeyNameRequired:      "Le nom est obligatoire",
		KeyInvalidNumber:     "Valeur numérique invalide",
		KeyInvalidLink:       "Lien invalide (http ou https attendu)",
		KeyInvalidPhoto:      "Le fichier choisi n'est pas une image",
		KeySaved:             "Fiche enregistrée",
		KeyPhotoUploadFailed: "Fiche enregistrée, mais l'envoi de la photo a échoué",
		KeySaveFailed:        "Échec de l'enregistrement",
		KeyDeleteTitle:       "Supprimer",
		KeyDeleteConfirm:     "Supprimer « %s » ? Cette action est définitive.",
		KeyDeleteFailed:      "Échec de la suppression",
		KeyPageLimit:         "Résultats par page (1-100)",
		KeyBackendURL:        "Adresse du serveur",
		KeySettingsSaved:     "Paramètres enregistrés !",
		KeySelectLanguage:    "Choisir la langue",
	}

	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "CinéBase",
		KeyTabHome:           "Home",
		KeyTabActors:         "Actors",
		KeyTabMovies:         "Movies",
		KeyTabAdmin:          "Admin",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyAdminMode:         "Admin mode",
		KeySearchPlaceholder: "Search actors or movies...",
		KeyFilterSearch:      "Search",
		KeyFilterName:        "Name",
		KeyFilterNationality: "Nationality",
		KeyFilterAgeMin:      "Min age",
		KeyFilterAgeMax:      "Max age",
		KeyFilterGenre:       "Genre",
		KeyFilterYear:        "Year",
		KeyReset:             "Reset",
		KeyLoading:           "Loading...",
		KeyNoResults:         "No results",
		KeyRecentActors:      "Recently added actors",
		KeyRecentMovies:      "Recently added movies",
		KeySectionActors:     "Actors",
		KeySectionMovies:     "Movies",
		KeyEdit:              "Edit",
		KeyDelete:            "Delete",
		KeyOpenLink:          "View page",
		KeyErrorOpeningLink:  "Could not open the link",
		KeyAddActor:          "Add an actor",
		KeyAddMovie:          "Add a movie",
		KeyAdminHint:         "Create new records here. Enable admin mode to edit or delete from the lists.",
		KeyActorFormTitle:    "Actor record",
		KeyMovieFormTitle:    "Movie record",
		KeyFieldName:         "Name *",
		KeyFieldAge:          "Age",
		KeyFieldNationality:  "Nationality",
		KeyFieldBiography:    "Biography",
		KeyFieldFilmography:  "Filmography (one film per line)",
		KeyFieldGenre:        "Genre",
		KeyFieldYear:         "Year",
		KeyFieldDescription:  "Description",
		KeyFieldActors:       "Actors (one name per line)",
		KeyFieldLink:         "External link",
		KeyChoosePhoto:       "Choose a photo",
		KeyNoPhotoSelected:   "No photo selected",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyNameRequired:      "Name is required",
		KeyInvalidNumber:     "Invalid numeric value",
		KeyInvalidLink:       "Invalid link (http or https expected)",
		KeyInvalidPhoto:      "The selected file is not an image",
		KeySaved:             "Record saved",
		KeyPhotoUploadFailed: "Record saved, but the photo upload failed",
		KeySaveFailed:        "Save failed",
		KeyDeleteTitle:       "Delete",
		KeyDeleteConfirm:     "Delete \"%s\"? This cannot be undone.",
		KeyDeleteFailed:      "Delete failed",
		KeyPageLimit:         "Results per page (1-100)",
		KeyBackendURL:        "Backend address",
		KeySettingsSaved:     "Settings saved!",
		KeySelectLanguage:    "Select language",
	}
}
