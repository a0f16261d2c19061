package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyTabGlossary     = "tab_glossary"
	KeyTabLLMProcess   = "tab_llm_process"
	KeyTabAddOns       = "tab_add_ons"
	KeyTabFavorites    = "tab_favorites"
	KeyTabDashboard    = "tab_dashboard"
	KeySettings        = "settings"
	KeyLanguage        = "language"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyAdd             = "add"
	KeyDelete          = "delete"
	KeyOpen            = "open"
	KeyShare           = "share"
	KeyAddCustomItem   = "add_custom_item"
	KeyTitle           = "title"
	KeyPlatform        = "platform"
	KeyYear            = "year"
	KeyMinutes         = "minutes"
	KeyURL             = "url"
	KeyNoCustomItems   = "no_custom_items"
	KeyNoFavorites     = "no_favorites"
	KeyConfirmDelete   = "confirm_delete"
	KeyConfirmUnfav    = "confirm_unfavorite"
	KeyRemoveFavorite  = "remove_favorite"
	KeyLinksCopied     = "links_copied"
	KeyErrorOpenLink   = "error_open_link"
	KeyTotalItems      = "total_items"
	KeyFavorited       = "favorited"
	KeyCompleted       = "completed"
	KeyProgress        = "progress"
	KeyAutosave        = "autosave_seconds"
	KeyMirrorLegacy    = "mirror_legacy"
	KeySampleCatalog   = "sample_catalog"
	KeySettingsSaved   = "settings_saved"
	KeyRestartRequired = "restart_required"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
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

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
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
		"en": "English",
		"es": "Español",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "A.I. DelvePad",
		KeyTabGlossary:     "Glossary",
		KeyTabLLMProcess:   "LLM Process",
		KeyTabAddOns:       "Tutorial Add-Ons",
		KeyTabFavorites:    "Favs",
		KeyTabDashboard:    "Dashboard",
		KeySettings:        "Settings",
		KeyLanguage:        "Language",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyAdd:             "Add",
		KeyDelete:          "Delete",
		KeyOpen:            "Open",
		KeyShare:           "Share A.I. Links",
		KeyAddCustomItem:   "Add Tutorial",
		KeyTitle:           "Title",
		KeyPlatform:        "Platform",
		KeyYear:            "Year",
		KeyMinutes:         "Minutes",
		KeyURL:             "URL",
		KeyNoCustomItems:   "No custom tutorials yet. Tap + to add one.",
		KeyNoFavorites:     "No favorites yet. Star a tutorial to see it here.",
		KeyConfirmDelete:   "Delete this tutorial?",
		KeyConfirmUnfav:    "Remove this tutorial from favorites?",
		KeyRemoveFavorite:  "Remove Favorite",
		KeyLinksCopied:     "Links copied to clipboard",
		KeyErrorOpenLink:   "Could not open link",
		KeyTotalItems:      "Total Tutorials",
		KeyFavorited:       "Favorited",
		KeyCompleted:       "Completed",
		KeyProgress:        "Progress",
		KeyAutosave:        "Autosave Interval (seconds)",
		KeyMirrorLegacy:    "Write legacy backup keys",
		KeySampleCatalog:   "Show sample catalog",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyRestartRequired: "Some changes apply after restart.",
	}

	// Spanish texts
	l.texts["es"] = map[string]string{
		KeyAppTitle:        "A.I. DelvePad",
		KeyTabGlossary:     "Glosario",
		KeyTabLLMProcess:   "Proceso LLM",
		KeyTabAddOns:       "Tutoriales Extra",
		KeyTabFavorites:    "Favoritos",
		KeyTabDashboard:    "Panel",
		KeySettings:        "Ajustes",
		KeyLanguage:        "Idioma",
		KeySave:            "Guardar",
		KeyCancel:          "Cancelar",
		KeyAdd:             "Añadir",
		KeyDelete:          "Eliminar",
		KeyOpen:            "Abrir",
		KeyShare:           "Compartir enlaces",
		KeyAddCustomItem:   "Añadir tutorial",
		KeyTitle:           "Título",
		KeyPlatform:        "Plataforma",
		KeyYear:            "Año",
		KeyMinutes:         "Minutos",
		KeyURL:             "URL",
		KeyNoCustomItems:   "Aún no hay tutoriales propios. Pulsa + para añadir uno.",
		KeyNoFavorites:     "Aún no hay favoritos. Marca un tutorial con estrella.",
		KeyConfirmDelete:   "¿Eliminar este tutorial?",
		KeyConfirmUnfav:    "¿Quitar este tutorial de favoritos?",
		KeyRemoveFavorite:  "Quitar favorito",
		KeyLinksCopied:     "Enlaces copiados al portapapeles",
		KeyErrorOpenLink:   "No se pudo abrir el enlace",
		KeyTotalItems:      "Tutoriales",
		KeyFavorited:       "Favoritos",
		KeyCompleted:       "Completados",
		KeyProgress:        "Progreso",
		KeyAutosave:        "Intervalo de guardado (segundos)",
		KeyMirrorLegacy:    "Escribir claves de respaldo",
		KeySampleCatalog:   "Mostrar catálogo de ejemplo",
		KeySettingsSaved:   "¡Ajustes guardados!",
		KeyRestartRequired: "Algunos cambios se aplican al reiniciar.",
	}
}
