package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle              = "app_title"
	KeyAddToQueue            = "add_to_queue"
	KeyStartBatch            = "start_batch"
	KeyCancelBatch           = "cancel_batch"
	KeyOpen                  = "open"
	KeyReveal                = "reveal"
	KeySettings              = "settings"
	KeyFile                  = "file"
	KeyLanguage              = "language"
	KeyDownloadDirectory     = "download_directory"
	KeyModelsDirectory       = "models_directory"
	KeyTranscriptionLanguage = "transcription_language"
	KeyModelSize             = "model_size"
	KeyDevice                = "device"
	KeyAutoReveal            = "auto_reveal"
	KeySave                  = "save"
	KeyCancel                = "cancel"
	KeyBrowse                = "browse"
	KeyBrowseFile            = "browse_file"
	KeyBrowseFolder          = "browse_folder"
	KeyEnterSource           = "enter_source"
	KeySettingsSaved         = "settings_saved"
	KeyBatchStarted          = "batch_started"
	KeyBatchDone             = "batch_done"
	KeyBatchCancelled        = "batch_cancelled"
	KeyJobCompleted          = "job_completed"
	KeyErrorOpeningFile      = "error_opening_file"
	KeyInvalidSource         = "invalid_source"
	KeyPleaseEnterSource     = "please_enter_source"
	KeyAlreadyInQueue        = "already_in_queue"
	KeyJobAdded              = "job_added"
	KeyNoMediaInFolder       = "no_media_in_folder"
	KeyTranscript            = "transcript"
	KeyCopyText              = "copy_text"
	KeySaveAs                = "save_as"
	KeyClear                 = "clear"
	KeyRemove                = "remove"
	KeyViewText              = "view_text"
	KeyTranscribing          = "transcribing"
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
		KeyAppTitle:              "Media Scribe",
		KeyAddToQueue:            "Add",
		KeyStartBatch:            "Start",
		KeyCancelBatch:           "Cancel",
		KeyOpen:                  "Open",
		KeyReveal:                "Reveal",
		KeySettings:              "Settings",
		KeyFile:                  "File",
		KeyLanguage:              "Language",
		KeyDownloadDirectory:     "Download Directory",
		KeyModelsDirectory:       "Models Directory",
		KeyTranscriptionLanguage: "Transcription Language",
		KeyModelSize:             "Model Size",
		KeyDevice:                "Device",
		KeyAutoReveal:            "Reveal transcript when done",
		KeySave:                  "Save",
		KeyCancel:                "Cancel",
		KeyBrowse:                "Browse",
		KeyBrowseFile:            "File…",
		KeyBrowseFolder:          "Folder…",
		KeyEnterSource:           "Media file path or YouTube URL",
		KeySettingsSaved:         "Settings saved successfully!",
		KeyBatchStarted:          "Transcription started",
		KeyBatchDone:             "All jobs finished",
		KeyBatchCancelled:        "Batch cancelled",
		KeyJobCompleted:          "Transcription completed",
		KeyErrorOpeningFile:      "Error opening file",
		KeyInvalidSource:         "Not a media file or YouTube URL",
		KeyPleaseEnterSource:     "Please enter a file path or URL",
		KeyAlreadyInQueue:        "Already in queue",
		KeyJobAdded:              "Added to queue",
		KeyNoMediaInFolder:       "No media files found in folder",
		KeyTranscript:            "Transcript",
		KeyCopyText:              "Copy",
		KeySaveAs:                "Save As…",
		KeyClear:                 "Clear",
		KeyRemove:                "Remove",
		KeyViewText:              "Text",
		KeyTranscribing:          "Transcribing…",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:              "Media Scribe",
		KeyAddToQueue:            "Добавить",
		KeyStartBatch:            "Старт",
		KeyCancelBatch:           "Отмена",
		KeyOpen:                  "Открыть",
		KeyReveal:                "Показать",
		KeySettings:              "Настройки",
		KeyFile:                  "Файл",
		KeyLanguage:              "Язык",
		KeyDownloadDirectory:     "Папка загрузки",
		KeyModelsDirectory:       "Папка моделей",
		KeyTranscriptionLanguage: "Язык расшифровки",
		KeyModelSize:             "Размер модели",
		KeyDevice:                "Устройство",
		KeyAutoReveal:            "Показывать файл после завершения",
		KeySave:                  "Сохранить",
		KeyCancel:                "Отмена",
		KeyBrowse:                "Обзор",
		KeyBrowseFile:            "Файл…",
		KeyBrowseFolder:          "Папка…",
		KeyEnterSource:           "Путь к медиафайлу или URL YouTube",
		KeySettingsSaved:         "Настройки успешно сохранены!",
		KeyBatchStarted:          "Расшифровка начата",
		KeyBatchDone:             "Все задачи завершены",
		KeyBatchCancelled:        "Пакет отменён",
		KeyJobCompleted:          "Расшифровка завершена",
		KeyErrorOpeningFile:      "Ошибка открытия файла",
		KeyInvalidSource:         "Не медиафайл и не URL YouTube",
		KeyPleaseEnterSource:     "Введите путь к файлу или URL",
		KeyAlreadyInQueue:        "Уже в очереди",
		KeyJobAdded:              "Добавлено в очередь",
		KeyNoMediaInFolder:       "Медиафайлы в папке не найдены",
		KeyTranscript:            "Расшифровка",
		KeyCopyText:              "Копировать",
		KeySaveAs:                "Сохранить как…",
		KeyClear:                 "Очистить",
		KeyRemove:                "Удалить",
		KeyViewText:              "Текст",
		KeyTranscribing:          "Расшифровка…",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:              "Media Scribe",
		KeyAddToQueue:            "Adicionar",
		KeyStartBatch:            "Iniciar",
		KeyCancelBatch:           "Cancelar",
		KeyOpen:                  "Abrir",
		KeyReveal:                "Mostrar",
		KeySettings:              "Configurações",
		KeyFile:                  "Arquivo",
		KeyLanguage:              "Idioma",
		KeyDownloadDirectory:     "Diretório de Download",
		KeyModelsDirectory:       "Diretório de Modelos",
		KeyTranscriptionLanguage: "Idioma da Transcrição",
		KeyModelSize:             "Tamanho do Modelo",
		KeyDevice:                "Dispositivo",
		KeyAutoReveal:            "Mostrar arquivo ao concluir",
		KeySave:                  "Salvar",
		KeyCancel:                "Cancelar",
		KeyBrowse:                "Navegar",
		KeyBrowseFile:            "Arquivo…",
		KeyBrowseFolder:          "Pasta…",
		KeyEnterSource:           "Caminho do arquivo ou URL do YouTube",
		KeySettingsSaved:         "Configurações salvas com sucesso!",
		KeyBatchStarted:          "Transcrição iniciada",
		KeyBatchDone:             "Todas as tarefas concluídas",
		KeyBatchCancelled:        "Lote cancelado",
		KeyJobCompleted:          "Transcrição concluída",
		KeyErrorOpeningFile:      "Erro ao abrir arquivo",
		KeyInvalidSource:         "Não é um arquivo de mídia nem URL do YouTube",
		KeyPleaseEnterSource:     "Digite um caminho de arquivo ou URL",
		KeyAlreadyInQueue:        "Já na fila",
		KeyJobAdded:              "Adicionado à fila",
		KeyNoMediaInFolder:       "Nenhum arquivo de mídia na pasta",
		KeyTranscript:            "Transcrição",
		KeyCopyText:              "Copiar",
		KeySaveAs:                "Salvar como…",
		KeyClear:                 "Limpar",
		KeyRemove:                "Remover",
		KeyViewText:              "Texto",
		KeyTranscribing:          "Transcrevendo…",
	}
}
