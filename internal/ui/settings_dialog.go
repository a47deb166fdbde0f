package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/translator/internal/config"
	"github.com/ytget/translator/internal/translate"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	engineSelect   *widget.Select
	libreURLEntry  *widget.Entry
	apiKeyEntry    *widget.Entry
	lambdaEntry    *widget.Entry
	timeoutEntry   *widget.Entry
	honorSource    *widget.Check
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values have been written to settings.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	engineOptions := []string{}
	for _, engine := range sd.settings.GetEngineOptions() {
		engineOptions = append(engineOptions, string(engine))
	}
	sd.engineSelect = widget.NewSelect(engineOptions, nil)

	sd.libreURLEntry = widget.NewEntry()
	sd.libreURLEntry.SetPlaceHolder(translate.DefaultLibreTranslateURL)

	sd.apiKeyEntry = widget.NewPasswordEntry()

	sd.lambdaEntry = widget.NewEntry()
	sd.lambdaEntry.SetPlaceHolder(translate.DefaultLambdaFunction)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder("0-" + strconv.Itoa(config.MaxRequestTimeout))

	sd.honorSource = widget.NewCheck(l.GetText(KeyHonorSource), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyTranslation)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyEngine)+":"),
		sd.engineSelect,

		widget.NewLabel(l.GetText(KeyLibreTranslateURL)+":"),
		sd.libreURLEntry,

		widget.NewLabel(l.GetText(KeyAPIKey)+":"),
		sd.apiKeyEntry,

		widget.NewLabel(l.GetText(KeyLambdaFunction)+":"),
		sd.lambdaEntry,

		widget.NewLabel(l.GetText(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		sd.honorSource,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyInterface)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.engineSelect.SetSelected(string(sd.settings.GetEngine()))
	sd.libreURLEntry.SetText(sd.settings.GetLibreTranslateURL())
	sd.apiKeyEntry.SetText(sd.settings.GetLibreTranslateAPIKey())
	sd.lambdaEntry.SetText(sd.settings.GetLambdaFunction())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout().Seconds())))
	sd.honorSource.SetChecked(sd.settings.GetHonorSource())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// save writes the form values to settings
func (sd *SettingsDialog) save() {
	if sd.engineSelect.Selected != "" {
		if engine, err := translate.ParseEngineType(sd.engineSelect.Selected); err == nil {
			sd.settings.SetEngine(engine)
		}
	}

	sd.settings.SetLibreTranslateURL(strings.TrimSpace(sd.libreURLEntry.Text))
	sd.settings.SetLibreTranslateAPIKey(strings.TrimSpace(sd.apiKeyEntry.Text))
	sd.settings.SetLambdaFunction(strings.TrimSpace(sd.lambdaEntry.Text))

	// Validate and save timeout
	timeoutStr := strings.TrimSpace(sd.timeoutEntry.Text)
	if timeoutStr != "" {
		if seconds, err := strconv.Atoi(timeoutStr); err == nil {
			sd.settings.SetRequestTimeout(seconds)
		}
	}

	sd.settings.SetHonorSource(sd.honorSource.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}

// ShowSettingsDialog builds and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, window, localization, onSaved).Show()
}
