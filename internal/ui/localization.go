package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyStart              = "start"
	KeyStop               = "stop"
	KeyCurrentTempo       = "current_tempo"
	KeyBeatsPerMinute     = "beats_per_minute"
	KeyTraditionalMarking = "traditional_marking"
	KeyMode               = "mode"
	KeyModeMaelzel        = "mode_maelzel"
	KeyModePrecise        = "mode_precise"
	KeyTempoPrompt        = "tempo_prompt"
	KeyFile               = "file"
	KeySwitchMode         = "switch_mode"
	KeySettings           = "settings"
	KeyQuit               = "quit"
	KeyLanguage           = "language"
	KeyBeatsPerMeasure    = "beats_per_measure"
	KeyClickVolume        = "click_volume"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
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

// initializeTexts initializes all text translations. Traditional tempo
// markings (Allegro, Andante, ...) are Italian terms in every language and
// are not translated.
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "MetronomiQ",
		KeyStart:              "Start",
		KeyStop:               "Stop",
		KeyCurrentTempo:       "Current tempo:",
		KeyBeatsPerMinute:     "beats per minute",
		KeyTraditionalMarking: "Traditional tempo marking:",
		KeyMode:               "Mode",
		KeyModeMaelzel:        "Maelzel's metronome",
		KeyModePrecise:        "Precise tempo",
		KeyTempoPrompt:        "Input integer BPM (20–300):",
		KeyFile:               "File",
		KeySwitchMode:         "Switch mode",
		KeySettings:           "Settings",
		KeyQuit:               "Quit",
		KeyLanguage:           "Language",
		KeyBeatsPerMeasure:    "Beats per measure",
		KeyClickVolume:        "Click volume",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "MetronomiQ",
		KeyStart:              "Старт",
		KeyStop:               "Стоп",
		KeyCurrentTempo:       "Текущий темп:",
		KeyBeatsPerMinute:     "ударов в минуту",
		KeyTraditionalMarking: "Традиционное обозначение темпа:",
		KeyMode:               "Режим",
		KeyModeMaelzel:        "Метроном Мельцеля",
		KeyModePrecise:        "Точный темп",
		KeyTempoPrompt:        "Введите целый BPM (20–300):",
		KeyFile:               "Файл",
		KeySwitchMode:         "Переключить режим",
		KeySettings:           "Настройки",
		KeyQuit:               "Выход",
		KeyLanguage:           "Язык",
		KeyBeatsPerMeasure:    "Долей в такте",
		KeyClickVolume:        "Громкость щелчка",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "MetronomiQ",
		KeyStart:              "Iniciar",
		KeyStop:               "Parar",
		KeyCurrentTempo:       "Andamento atual:",
		KeyBeatsPerMinute:     "batidas por minuto",
		KeyTraditionalMarking: "Marcação tradicional de andamento:",
		KeyMode:               "Modo",
		KeyModeMaelzel:        "Metrônomo de Maelzel",
		KeyModePrecise:        "Andamento preciso",
		KeyTempoPrompt:        "Digite BPM inteiro (20–300):",
		KeyFile:               "Arquivo",
		KeySwitchMode:         "Trocar modo",
		KeySettings:           "Configurações",
		KeyQuit:               "Sair",
		KeyLanguage:           "Idioma",
		KeyBeatsPerMeasure:    "Batidas por compasso",
		KeyClickVolume:        "Volume do clique",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
	}
}
