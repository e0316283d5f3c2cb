package ui

import "github.com/ytget/adaptive-nav/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyBack           = "back"
	KeyResetNav       = "reset_navigation"
	KeyLanguage       = "language"
	KeySave           = "save"
	KeySettingsSaved  = "settings_saved"
	KeyLayout         = "layout"
	KeyColumns        = "columns"
	KeyWidth          = "width"
	KeyItem           = "item"
	KeyWelcome        = "welcome"
	KeyProfileName    = "profile_name"
	KeyProfileHint    = "profile_hint"
	KeyAboutBody      = "about_body"
	KeyVersion        = "version"
	KeyPageNotFound   = "page_not_found"
	KeyGoHome         = "go_home"
	KeyInterface      = "interface"
	KeySwipeHint      = "swipe_hint"
	KeyDeviceMobile   = "device_mobile"
	KeyDeviceTablet   = "device_tablet"
	KeyDeviceDesktop  = "device_desktop"
	navTitleKeyPrefix = "nav_"
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
	if text, found := l.lookup(key); found {
		return text
	}

	// Final fallback - return key itself
	return key
}

// EntryTitle returns the localized title of a navigation entry, falling back to its own title
func (l *Localization) EntryTitle(entry model.NavigationEntry) string {
	if text, found := l.lookup(navTitleKeyPrefix + entry.ID); found {
		return text
	}
	return entry.Title
}

// DeviceName returns the localized name of a device class
func (l *Localization) DeviceName(device model.DeviceType) string {
	switch device {
	case model.DeviceMobile:
		return l.GetText(KeyDeviceMobile)
	case model.DeviceTablet:
		return l.GetText(KeyDeviceTablet)
	default:
		return l.GetText(KeyDeviceDesktop)
	}
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

func (l *Localization) lookup(key string) (string, bool) {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text, true
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text, true
		}
	}
	return "", false
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:      "Adaptive Nav",
		KeyBack:          "Back",
		KeyResetNav:      "Reset navigation",
		KeyLanguage:      "Language",
		KeySave:          "Save",
		KeySettingsSaved: "Settings saved successfully!",
		KeyLayout:        "Layout",
		KeyColumns:       "Columns",
		KeyWidth:         "Width",
		KeyItem:          "Item %d",
		KeyWelcome:       "Resize the window to switch between layouts.",
		KeyProfileName:   "Guest user",
		KeyProfileHint:   "Profile details would appear here.",
		KeyAboutBody:     "A responsive navigation template for phones, tablets and desktops.",
		KeyVersion:       "Version",
		KeyPageNotFound:  "Page not found",
		KeyGoHome:        "Go home",
		KeyInterface:     "Interface Settings",
		KeySwipeHint:     "Swipe left or right to change page",
		KeyDeviceMobile:  "Mobile",
		KeyDeviceTablet:  "Tablet",
		KeyDeviceDesktop: "Desktop",
		"nav_home":       "Home",
		"nav_profile":    "Profile",
		"nav_settings":   "Settings",
		"nav_about":      "About",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:      "Адаптивная навигация",
		KeyBack:          "Назад",
		KeyResetNav:      "Сбросить навигацию",
		KeyLanguage:      "Язык",
		KeySave:          "Сохранить",
		KeySettingsSaved: "Настройки успешно сохранены!",
		KeyLayout:        "Макет",
		KeyColumns:       "Колонки",
		KeyWidth:         "Ширина",
		KeyItem:          "Элемент %d",
		KeyWelcome:       "Измените размер окна, чтобы переключить макет.",
		KeyProfileName:   "Гость",
		KeyProfileHint:   "Здесь будут данные профиля.",
		KeyAboutBody:     "Шаблон адаптивной навигации для телефонов, планшетов и компьютеров.",
		KeyVersion:       "Версия",
		KeyPageNotFound:  "Страница не найдена",
		KeyGoHome:        "На главную",
		KeyInterface:     "Настройки интерфейса",
		KeySwipeHint:     "Проведите влево или вправо для смены страницы",
		KeyDeviceMobile:  "Телефон",
		KeyDeviceTablet:  "Планшет",
		KeyDeviceDesktop: "Компьютер",
		"nav_home":       "Главная",
		"nav_profile":    "Профиль",
		"nav_settings":   "Настройки",
		"nav_about":      "О программе",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:      "Navegação Adaptativa",
		KeyBack:          "Voltar",
		KeyResetNav:      "Redefinir navegação",
		KeyLanguage:      "Idioma",
		KeySave:          "Salvar",
		KeySettingsSaved: "Configurações salvas com sucesso!",
		KeyLayout:        "Layout",
		KeyColumns:       "Colunas",
		KeyWidth:         "Largura",
		KeyItem:          "Item %d",
		KeyWelcome:       "Redimensione a janela para alternar entre layouts.",
		KeyProfileName:   "Usuário convidado",
		KeyProfileHint:   "Os detalhes do perfil apareceriam aqui.",
		KeyAboutBody:     "Um modelo de navegação responsiva para celulares, tablets e desktops.",
		KeyVersion:       "Versão",
		KeyPageNotFound:  "Página não encontrada",
		KeyGoHome:        "Ir para o início",
		KeyInterface:     "Configurações de Interface",
		KeySwipeHint:     "Deslize para a esquerda ou direita para mudar de página",
		KeyDeviceMobile:  "Celular",
		KeyDeviceTablet:  "Tablet",
		KeyDeviceDesktop: "Desktop",
		"nav_home":       "Início",
		"nav_profile":    "Perfil",
		"nav_settings":   "Configurações",
		"nav_about":      "Sobre",
	}
}
