package ui

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/translator/internal/config"
	"github.com/ytget/translator/internal/model"
	"github.com/ytget/translator/internal/platform"
	"github.com/ytget/translator/internal/translate"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	translateSvc translate.Dispatcher
	settings     *config.Settings
	localization *Localization
	logger       *logrus.Logger
	logPath      string

	// Panes
	titleLabel   *widget.Label
	inputHeader  *widget.Label
	outputHeader *widget.Label
	inputEntry   *sourceEntry
	outputLabel  *widget.Label

	// Controls
	sourceSelect *widget.Select
	destSelect   *widget.Select
	swapBtn      *widget.Button
	translateBtn *widget.Button
	copyBtn      *widget.Button
	settingsBtn  *widget.Button

	// Status line
	statusLabel *widget.Label
	progress    *widget.ProgressBarInfinite

	selection model.Selection
	status    model.TranslationStatus
	lastText  string

	// runOnMain posts f onto the UI thread
	runOnMain func(f func())
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, translateSvc translate.Dispatcher, settings *config.Settings, logger *logrus.Logger, logPath string) *RootUI {
	if logger == nil {
		logger = logrus.New()
	}

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		translateSvc: translateSvc,
		settings:     settings,
		localization: localization,
		logger:       logger,
		logPath:      logPath,
		selection:    settings.GetSelection(),
		status:       model.TranslationStatusIdle,
		runOnMain:    fyne.Do,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Outcomes arrive on the worker goroutine
	ui.translateSvc.SetOutcomeCallback(ui.onOutcome)

	ui.setupUI()

	ui.logger.WithFields(logrus.Fields{
		"engine":      translateSvc.EngineName(),
		"source":      ui.selection.Source.Name,
		"destination": ui.selection.Destination.Name,
	}).Info("UI initialized")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	l := ui.localization

	// Create menu
	ui.createMenu()

	ui.titleLabel = widget.NewLabelWithStyle(l.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	var header fyne.CanvasObject
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewBorder(nil, nil, container.NewHBox(logoImage, ui.titleLabel), ui.settingsBtn)
	} else {
		header = container.NewBorder(nil, nil, ui.titleLabel, ui.settingsBtn)
	}

	// Input pane
	ui.inputHeader = widget.NewLabelWithStyle(l.GetText(KeyInputHeader), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.inputEntry = newSourceEntry(ui.onTranslateClick)
	ui.inputEntry.SetPlaceHolder(l.GetText(KeyInputPlaceholder))
	inputCard := newCard(container.NewBorder(ui.inputHeader, nil, nil, nil, ui.inputEntry))

	// Output pane
	ui.outputHeader = widget.NewLabelWithStyle(l.GetText(KeyOutputHeader), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.outputLabel = widget.NewLabel("")
	ui.outputLabel.Wrapping = fyne.TextWrapWord
	ui.outputLabel.Selectable = true
	ui.copyBtn = widget.NewButton(IconCopy+" "+l.GetText(KeyCopy), ui.onCopy)
	ui.copyBtn.Importance = widget.LowImportance
	ui.copyBtn.Disable()
	outputCard := newCard(container.NewBorder(
		ui.outputHeader,
		container.NewHBox(layout.NewSpacer(), ui.copyBtn),
		nil,
		nil,
		container.NewVScroll(ui.outputLabel),
	))

	// Language pickers
	ui.sourceSelect = widget.NewSelect(model.SourceLanguageNames(), ui.onSourceChanged)
	ui.destSelect = widget.NewSelect(model.DestinationLanguageNames(), ui.onDestinationChanged)
	ui.syncPickers()

	ui.swapBtn = widget.NewButton(IconSwap, ui.onSwap)
	ui.swapBtn.Importance = widget.LowImportance

	pickers := container.NewHBox(
		layout.NewSpacer(),
		container.NewGridWrap(fyne.NewSize(PickerWidth, ui.sourceSelect.MinSize().Height), ui.sourceSelect),
		container.NewGridWrap(fyne.NewSize(SwapButtonWidth, ui.swapBtn.MinSize().Height), ui.swapBtn),
		container.NewGridWrap(fyne.NewSize(PickerWidth, ui.destSelect.MinSize().Height), ui.destSelect),
		layout.NewSpacer(),
	)

	// Bottom row
	ui.translateBtn = widget.NewButton(l.GetText(KeyTranslate), ui.onTranslateClick)
	ui.translateBtn.Importance = widget.HighImportance
	ui.statusLabel = widget.NewLabel(l.GetText(KeyReady))
	ui.statusLabel.Wrapping = fyne.TextWrapWord
	ui.progress = widget.NewProgressBarInfinite()
	ui.progress.Hide()
	bottom := container.NewBorder(
		nil,
		nil,
		container.NewGridWrap(fyne.NewSize(TranslateBtnWidth, ui.translateBtn.MinSize().Height), ui.translateBtn),
		ui.progress,
		ui.statusLabel,
	)

	panes := container.NewGridWithColumns(2, inputCard, outputCard)
	content := container.NewBorder(
		container.NewVBox(header, pickers), // top
		bottom,                             // bottom
		nil,                                // left
		nil,                                // right
		panes,                              // center
	)

	background := canvas.NewVerticalGradient(LightBgTopColor, LightBgBottomColor)
	ui.window.SetContent(container.NewStack(background, container.NewPadded(content)))

	ui.logger.Debug("UI setup completed")
}

// newCard wraps content in a rounded translucent panel
func newCard(content fyne.CanvasObject) fyne.CanvasObject {
	bg := canvas.NewRectangle(CardBackgroundColor)
	bg.StrokeColor = BorderColor
	bg.StrokeWidth = CardBorderWidth
	bg.CornerRadius = CardCornerRadius
	return container.NewStack(bg, container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	showLogItem := fyne.NewMenuItem(ui.localization.GetText(KeyShowLog), ui.onShowLog)
	if ui.logPath == "" {
		showLogItem.Disabled = true
	}

	// Language submenu
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for _, code := range []string{"en", "ru", "pt"} {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, showLogItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization

	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.titleLabel.SetText(l.GetText(KeyAppTitle))
	ui.inputHeader.SetText(l.GetText(KeyInputHeader))
	ui.outputHeader.SetText(l.GetText(KeyOutputHeader))
	ui.inputEntry.SetPlaceHolder(l.GetText(KeyInputPlaceholder))
	ui.translateBtn.SetText(l.GetText(KeyTranslate))
	ui.copyBtn.SetText(IconCopy + " " + l.GetText(KeyCopy))

	if ui.status == model.TranslationStatusIdle {
		ui.statusLabel.SetText(l.GetText(KeyReady))
	}
}

// syncPickers shows the current selection in both pickers
func (ui *RootUI) syncPickers() {
	ui.sourceSelect.SetSelected(ui.selection.Source.String())
	ui.destSelect.SetSelected(ui.selection.Destination.String())
}

// onSourceChanged handles source picker changes
func (ui *RootUI) onSourceChanged(name string) {
	lang, ok := model.LanguageByName(name)
	if !ok {
		return
	}
	ui.selection.Source = lang
	ui.settings.SetSelection(ui.selection)
}

// onDestinationChanged handles destination picker changes
func (ui *RootUI) onDestinationChanged(name string) {
	lang, ok := model.LanguageByName(name)
	if !ok || lang.IsAutoDetect() {
		ui.selection.Destination = model.Language{}
		return
	}
	ui.selection.Destination = lang
	ui.settings.SetSelection(ui.selection)
}

// onSwap exchanges the source and destination languages
func (ui *RootUI) onSwap() {
	if ui.selection.Destination.IsZero() {
		return
	}
	ui.selection = ui.selection.Swap()
	ui.syncPickers()
	ui.settings.SetSelection(ui.selection)

	ui.logger.WithFields(logrus.Fields{
		"source":      ui.selection.Source.Name,
		"destination": ui.selection.Destination.Name,
	}).Debug("Languages swapped")
}

// onTranslateClick validates the input and hands the request to the worker
func (ui *RootUI) onTranslateClick() {
	if !ui.status.AcceptsSubmit() {
		return
	}

	req, err := model.NewTranslationRequest(ui.inputEntry.Text, ui.selection)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyText):
			ui.setStatus(ui.localization.GetText(KeyPleaseEnterText))
		case errors.Is(err, model.ErrNoDestination):
			ui.setStatus(ui.localization.GetText(KeyPleaseSelectTarget))
		default:
			ui.setStatus(ui.localization.Textf(KeyErrorFormat, err.Error()))
		}
		return
	}

	ui.setTranslating(true)
	ui.setStatus(ui.localization.GetText(KeyTranslating))

	if err := ui.translateSvc.Submit(req); err != nil {
		ui.logger.WithError(err).WithField("request_id", req.ID).Warn("Submit rejected")
		ui.setTranslating(false)
		if errors.Is(err, translate.ErrBusy) {
			ui.setStatus(ui.localization.GetText(KeyBusy))
			return
		}
		ui.status = model.TranslationStatusError
		ui.setStatus(ui.localization.Textf(KeyErrorFormat, err.Error()))
		return
	}

	ui.status = model.TranslationStatusTranslating
	ui.logger.WithFields(logrus.Fields{
		"request_id":  req.ID,
		"source":      req.Source.Code(),
		"destination": req.Destination.Code(),
		"chars":       len(req.Text),
	}).Info("Translation submitted")
}

// onOutcome is called on the worker goroutine
func (ui *RootUI) onOutcome(outcome *model.TranslationOutcome) {
	ui.runOnMain(func() {
		ui.applyOutcome(outcome)
	})
}

// applyOutcome renders an outcome; must run on the UI thread
func (ui *RootUI) applyOutcome(outcome *model.TranslationOutcome) {
	if outcome == nil {
		return
	}

	if outcome.Succeeded() {
		ui.lastText = outcome.Text
		ui.outputLabel.SetText(outcome.Text)
		ui.copyBtn.Enable()
		ui.setStatus(ui.localization.Textf(KeyDonePoweredBy, outcome.Engine))
	} else {
		ui.lastText = ""
		ui.outputLabel.SetText("")
		ui.copyBtn.Disable()
		ui.setStatus(ui.localization.Textf(KeyErrorFormat, outcome.ErrorMessage()))
	}

	ui.status = outcome.Status()
	ui.setTranslating(false)
}

// setTranslating toggles the busy state of the submit controls
func (ui *RootUI) setTranslating(active bool) {
	if active {
		ui.translateBtn.Disable()
		ui.progress.Show()
		return
	}
	ui.progress.Hide()
	ui.translateBtn.Enable()
}

// setStatus updates the status line
func (ui *RootUI) setStatus(message string) {
	ui.statusLabel.SetText(message)
}

// onCopy copies the last translation to the clipboard
func (ui *RootUI) onCopy() {
	if ui.lastText == "" {
		return
	}
	ui.app.Clipboard().SetContent(ui.lastText)
	ui.setStatus(ui.localization.GetText(KeyCopied))
}

// onShowLog reveals the log file in the system file manager
func (ui *RootUI) onShowLog() {
	if ui.logPath == "" {
		return
	}
	if err := platform.OpenFileInManager(ui.logPath); err != nil {
		ui.logger.WithError(err).WithField("path", ui.logPath).Error("Failed to reveal log file")
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies saved settings to the running service and UI
func (ui *RootUI) onSettingsSaved() {
	if err := ConfigureService(context.Background(), ui.settings, ui.translateSvc, ui.logger); err != nil {
		ui.logger.WithError(err).Error("Failed to apply settings")
		ui.setStatus(ui.localization.Textf(KeySettingsFailed, err.Error()))
	} else {
		ui.setStatus(ui.localization.GetText(KeySettingsSaved))
	}

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}

// ConfigureService builds the engine selected in settings and applies the
// per-request options. On error the service keeps its current engine.
func ConfigureService(ctx context.Context, settings *config.Settings, svc translate.Dispatcher, logger *logrus.Logger) error {
	translator, err := translate.NewTranslator(ctx, settings.TranslatorConfig(logger))
	if err != nil {
		return fmt.Errorf("create %s translator: %w", settings.GetEngine(), err)
	}

	svc.SetTranslator(translator)
	svc.SetTimeout(settings.GetRequestTimeout())
	svc.SetHonorSource(settings.GetHonorSource())

	if logger != nil {
		logger.WithFields(logrus.Fields{
			"engine":       translator.Name(),
			"timeout":      settings.GetRequestTimeout().String(),
			"honor_source": settings.GetHonorSource(),
		}).Info("Translation service configured")
	}
	return nil
}
