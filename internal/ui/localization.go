package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyPrevious          = "previous"
	KeyNext              = "next"
	KeyAdd               = "add"
	KeyDelete            = "delete"
	KeyFile              = "file"
	KeySave              = "save"
	KeyQuit              = "quit"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyCancel            = "cancel"
	KeyContinue          = "continue"
	KeyBrowse            = "browse"
	KeyAddImage          = "add_image"
	KeyEnterURL          = "enter_url"
	KeyEnterTitle        = "enter_title"
	KeyTitleField        = "title_field"
	KeyInvalidURL        = "invalid_url"
	KeyDeleteImage       = "delete_image"
	KeyDeleteConfirm     = "delete_confirm"
	KeySaved             = "saved"
	KeySaveFailed        = "save_failed"
	KeyQuitWithoutSaving = "quit_without_saving"
	KeyNoImages          = "no_images"
	KeyPositionFormat    = "position_format"
	KeyDataFile          = "data_file"
	KeyLogLevel          = "log_level"
	KeyConfirmDelete     = "confirm_delete"
	KeySettingsSaved     = "settings_saved"
	KeyRestartRequired   = "restart_required"
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
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Image Viewer",
		KeyPrevious:          "Previous",
		KeyNext:              "Next",
		KeyAdd:               "Add",
		KeyDelete:            "Delete",
		KeyFile:              "File",
		KeySave:              "Save",
		KeyQuit:              "Quit",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyCancel:            "Cancel",
		KeyContinue:          "Continue",
		KeyBrowse:            "Browse",
		KeyAddImage:          "Add Image",
		KeyEnterURL:          "Please enter the URL of your image",
		KeyEnterTitle:        "Please enter the title of your image",
		KeyTitleField:        "Title",
		KeyInvalidURL:        "Invalid URL",
		KeyDeleteImage:       "Delete Image",
		KeyDeleteConfirm:     "Delete \"%s\"?",
		KeySaved:             "Image list saved",
		KeySaveFailed:        "Could not save the image list",
		KeyQuitWithoutSaving: "Quit without saving?",
		KeyNoImages:          "No images. Press Add to add one.",
		KeyPositionFormat:    "%d / %d",
		KeyDataFile:          "Image List File",
		KeyLogLevel:          "Log Level",
		KeyConfirmDelete:     "Confirm before deleting",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyRestartRequired:   "The new image list file is used after restart.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Просмотр изображений",
		KeyPrevious:          "Назад",
		KeyNext:              "Вперёд",
		KeyAdd:               "Добавить",
		KeyDelete:            "Удалить",
		KeyFile:              "Файл",
		KeySave:              "Сохранить",
		KeyQuit:              "Выход",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyCancel:            "Отмена",
		KeyContinue:          "Далее",
		KeyBrowse:            "Обзор",
		KeyAddImage:          "Добавить изображение",
		KeyEnterURL:          "Введите URL изображения",
		KeyEnterTitle:        "Введите название изображения",
		KeyTitleField:        "Название",
		KeyInvalidURL:        "Неверный URL",
		KeyDeleteImage:       "Удалить изображение",
		KeyDeleteConfirm:     "Удалить «%s»?",
		KeySaved:             "Список изображений сохранён",
		KeySaveFailed:        "Не удалось сохранить список изображений",
		KeyQuitWithoutSaving: "Выйти без сохранения?",
		KeyNoImages:          "Нет изображений. Нажмите «Добавить».",
		KeyPositionFormat:    "%d / %d",
		KeyDataFile:          "Файл списка изображений",
		KeyLogLevel:          "Уровень журнала",
		KeyConfirmDelete:     "Подтверждать удаление",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyRestartRequired:   "Новый файл списка будет использован после перезапуска.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Visualizador de Imagens",
		KeyPrevious:          "Anterior",
		KeyNext:              "Próxima",
		KeyAdd:               "Adicionar",
		KeyDelete:            "Excluir",
		KeyFile:              "Arquivo",
		KeySave:              "Salvar",
		KeyQuit:              "Sair",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeyCancel:            "Cancelar",
		KeyContinue:          "Continuar",
		KeyBrowse:            "Navegar",
		KeyAddImage:          "Adicionar Imagem",
		KeyEnterURL:          "Digite a URL da sua imagem",
		KeyEnterTitle:        "Digite o título da sua imagem",
		KeyTitleField:        "Título",
		KeyInvalidURL:        "URL inválida",
		KeyDeleteImage:       "Excluir Imagem",
		KeyDeleteConfirm:     "Excluir \"%s\"?",
		KeySaved:             "Lista de imagens salva",
		KeySaveFailed:        "Não foi possível salvar a lista de imagens",
		KeyQuitWithoutSaving: "Sair sem salvar?",
		KeyNoImages:          "Nenhuma imagem. Pressione Adicionar.",
		KeyPositionFormat:    "%d / %d",
		KeyDataFile:          "Arquivo da Lista de Imagens",
		KeyLogLevel:          "Nível de Log",
		KeyConfirmDelete:     "Confirmar antes de excluir",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyRestartRequired:   "O novo arquivo de lista será usado após reiniciar.",
	}
}
