package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyInputHeader        = "input_header"
	KeyOutputHeader       = "output_header"
	KeyInputPlaceholder   = "input_placeholder"
	KeyTranslate          = "translate"
	KeySwap               = "swap"
	KeyCopy               = "copy"
	KeyCopied             = "copied"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyShowLog            = "show_log"
	KeyEngine             = "engine"
	KeyLibreTranslateURL  = "libretranslate_url"
	KeyAPIKey             = "api_key"
	KeyLambdaFunction     = "lambda_function"
	KeyRequestTimeout     = "request_timeout"
	KeyHonorSource        = "honor_source"
	KeyInterface          = "interface"
	KeyTranslation        = "translation"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeySettingsFailed     = "settings_failed"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyReady              = "ready"
	KeyPleaseEnterText    = "please_enter_text"
	KeyPleaseSelectTarget = "please_select_target"
	KeyTranslating        = "translating"
	KeyDonePoweredBy      = "done_powered_by"
	KeyErrorFormat        = "error_format"
	KeyBusy               = "busy"
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

// Textf formats the localized text for key with args.
func (l *Localization) Textf(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
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
		KeyAppTitle:           "Translator",
		KeyInputHeader:        "Enter text",
		KeyOutputHeader:       "Translation",
		KeyInputPlaceholder:   "Type or paste text here...",
		KeyTranslate:          "Translate",
		KeySwap:               "Swap languages",
		KeyCopy:               "Copy",
		KeyCopied:             "Translation copied to clipboard",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyShowLog:            "Show Log File",
		KeyEngine:             "Translation Engine",
		KeyLibreTranslateURL:  "LibreTranslate URL",
		KeyAPIKey:             "LibreTranslate API Key",
		KeyLambdaFunction:     "Lambda Function",
		KeyRequestTimeout:     "Request Timeout (seconds, 0 = none)",
		KeyHonorSource:        "Send selected source language instead of auto-detect",
		KeyInterface:          "Interface Settings",
		KeyTranslation:        "Translation Settings",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
		KeySettingsFailed:     "Could not apply settings: %s",
		KeyErrorOpeningFile:   "Error opening file",
		KeyReady:              "Ready",
		KeyPleaseEnterText:    "Please enter text to translate.",
		KeyPleaseSelectTarget: "Please select a target language.",
		KeyTranslating:        "Translating...",
		KeyDonePoweredBy:      "Done" + MiddleDotSeparator + "Powered by %s",
		KeyErrorFormat:        "Error: %s",
		KeyBusy:               "A translation is already in progress.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Переводчик",
		KeyInputHeader:        "Введите текст",
		KeyOutputHeader:       "Перевод",
		KeyInputPlaceholder:   "Введите или вставьте текст...",
		KeyTranslate:          "Перевести",
		KeySwap:               "Поменять языки",
		KeyCopy:               "Копировать",
		KeyCopied:             "Перевод скопирован в буфер обмена",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyShowLog:            "Показать файл журнала",
		KeyEngine:             "Движок перевода",
		KeyLibreTranslateURL:  "URL LibreTranslate",
		KeyAPIKey:             "API-ключ LibreTranslate",
		KeyLambdaFunction:     "Функция Lambda",
		KeyRequestTimeout:     "Тайм-аут запроса (секунды, 0 = без ограничения)",
		KeyHonorSource:        "Отправлять выбранный исходный язык вместо автоопределения",
		KeyInterface:          "Настройки интерфейса",
		KeyTranslation:        "Настройки перевода",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeySettingsFailed:     "Не удалось применить настройки: %s",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeyReady:              "Готово к работе",
		KeyPleaseEnterText:    "Пожалуйста, введите текст для перевода.",
		KeyPleaseSelectTarget: "Пожалуйста, выберите язык перевода.",
		KeyTranslating:        "Перевод...",
		KeyDonePoweredBy:      "Готово" + MiddleDotSeparator + "Работает на %s",
		KeyErrorFormat:        "Ошибка: %s",
		KeyBusy:               "Перевод уже выполняется.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Tradutor",
		KeyInputHeader:        "Digite o texto",
		KeyOutputHeader:       "Tradução",
		KeyInputPlaceholder:   "Digite ou cole o texto aqui...",
		KeyTranslate:          "Traduzir",
		KeySwap:               "Trocar idiomas",
		KeyCopy:               "Copiar",
		KeyCopied:             "Tradução copiada para a área de transferência",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyShowLog:            "Mostrar Arquivo de Log",
		KeyEngine:             "Mecanismo de Tradução",
		KeyLibreTranslateURL:  "URL do LibreTranslate",
		KeyAPIKey:             "Chave de API do LibreTranslate",
		KeyLambdaFunction:     "Função Lambda",
		KeyRequestTimeout:     "Tempo Limite (segundos, 0 = nenhum)",
		KeyHonorSource:        "Enviar o idioma de origem selecionado em vez de detecção automática",
		KeyInterface:          "Configurações de Interface",
		KeyTranslation:        "Configurações de Tradução",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeySettingsFailed:     "Não foi possível aplicar as configurações: %s",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
		KeyReady:              "Pronto",
		KeyPleaseEnterText:    "Por favor, digite o texto para traduzir.",
		KeyPleaseSelectTarget: "Por favor, selecione o idioma de destino.",
		KeyTranslating:        "Traduzindo...",
		KeyDonePoweredBy:      "Concluído" + MiddleDotSeparator + "Fornecido por %s",
		KeyErrorFormat:        "Erro: %s",
		KeyBusy:               "Uma tradução já está em andamento.",
	}
}
