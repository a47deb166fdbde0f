package config

import (
	"time"

	"fyne.io/fyne/v2"
	"github.com/sirupsen/logrus"

	"github.com/ytget/translator/internal/model"
	"github.com/ytget/translator/internal/translate"
)

// Settings keys for Fyne preferences
const (
	KeyEngine              = "translation_engine"
	KeyLibreTranslateURL   = "libretranslate_url"
	KeyLibreTranslateKey   = "libretranslate_api_key"
	KeyLambdaFunction      = "lambda_function"
	KeySourceLanguage      = "source_language"
	KeyDestinationLanguage = "destination_language"
	KeyRequestTimeout      = "request_timeout_seconds"
	KeyHonorSource         = "honor_source_language"
	KeyLanguage            = "app_language"
	KeyLogLevel            = "log_level"
)

// Default values
const (
	DefaultEngine          = translate.EngineGoogle
	DefaultRequestTimeout  = 0 // no limit
	MaxRequestTimeout      = 600
	DefaultHonorSource     = false
	DefaultLanguage        = "system"
	DefaultLogLevel        = "info"
	defaultSourceName      = model.AutoDetectName
	defaultDestinationName = "english"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetEngine returns the configured translation engine
func (s *Settings) GetEngine() translate.EngineType {
	value := s.app.Preferences().String(KeyEngine)
	engine, err := translate.ParseEngineType(value)
	if err != nil {
		s.SetEngine(DefaultEngine)
		return DefaultEngine
	}
	return engine
}

// SetEngine sets the translation engine
func (s *Settings) SetEngine(engine translate.EngineType) {
	s.app.Preferences().SetString(KeyEngine, string(engine))
}

// GetLibreTranslateURL returns the LibreTranslate base URL
func (s *Settings) GetLibreTranslateURL() string {
	return s.app.Preferences().StringWithFallback(KeyLibreTranslateURL, translate.DefaultLibreTranslateURL)
}

// SetLibreTranslateURL sets the LibreTranslate base URL; empty restores the default
func (s *Settings) SetLibreTranslateURL(url string) {
	if url == "" {
		url = translate.DefaultLibreTranslateURL
	}
	s.app.Preferences().SetString(KeyLibreTranslateURL, url)
}

// GetLibreTranslateAPIKey returns the optional LibreTranslate API key
func (s *Settings) GetLibreTranslateAPIKey() string {
	return s.app.Preferences().String(KeyLibreTranslateKey)
}

// SetLibreTranslateAPIKey sets the LibreTranslate API key
func (s *Settings) SetLibreTranslateAPIKey(key string) {
	s.app.Preferences().SetString(KeyLibreTranslateKey, key)
}

// GetLambdaFunction returns the Lambda function name
func (s *Settings) GetLambdaFunction() string {
	return s.app.Preferences().StringWithFallback(KeyLambdaFunction, translate.DefaultLambdaFunction)
}

// SetLambdaFunction sets the Lambda function name; empty restores the default
func (s *Settings) SetLambdaFunction(name string) {
	if name == "" {
		name = translate.DefaultLambdaFunction
	}
	s.app.Preferences().SetString(KeyLambdaFunction, name)
}

// GetSelection returns the last used language pair
func (s *Settings) GetSelection() model.Selection {
	sel := model.DefaultSelection()

	if source, ok := model.LanguageByName(s.app.Preferences().StringWithFallback(KeySourceLanguage, defaultSourceName)); ok {
		sel.Source = source
	}
	if dest, ok := model.LanguageByName(s.app.Preferences().StringWithFallback(KeyDestinationLanguage, defaultDestinationName)); ok && !dest.IsAutoDetect() {
		sel.Destination = dest
	}
	return sel
}

// SetSelection stores the language pair
func (s *Settings) SetSelection(sel model.Selection) {
	if !sel.Source.IsZero() {
		s.app.Preferences().SetString(KeySourceLanguage, sel.Source.Name)
	}
	if !sel.Destination.IsZero() && !sel.Destination.IsAutoDetect() {
		s.app.Preferences().SetString(KeyDestinationLanguage, sel.Destination.Name)
	}
}

// GetRequestTimeout returns the per-request limit, zero meaning none
func (s *Settings) GetRequestTimeout() time.Duration {
	value := s.app.Preferences().IntWithFallback(KeyRequestTimeout, DefaultRequestTimeout)
	if value < 0 {
		value = 0
	}
	return time.Duration(value) * time.Second
}

// SetRequestTimeout sets the per-request limit in seconds
func (s *Settings) SetRequestTimeout(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	if seconds > MaxRequestTimeout {
		seconds = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetHonorSource returns whether the selected source language is sent to the engine
func (s *Settings) GetHonorSource() bool {
	return s.app.Preferences().BoolWithFallback(KeyHonorSource, DefaultHonorSource)
}

// SetHonorSource sets whether the selected source language is sent to the engine
func (s *Settings) SetHonorSource(honor bool) {
	s.app.Preferences().SetBool(KeyHonorSource, honor)
}

// GetLanguage returns the configured interface language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the interface language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level logrus.Level) {
	s.app.Preferences().SetString(KeyLogLevel, level.String())
}

// TranslatorConfig builds the engine configuration from the stored settings
func (s *Settings) TranslatorConfig(logger *logrus.Logger) translate.Config {
	cfg := translate.Config{
		Engine: s.GetEngine(),
		Logger: logger,
	}
	switch cfg.Engine {
	case translate.EngineLibreTranslate:
		cfg.BaseURL = s.GetLibreTranslateURL()
		cfg.APIKey = s.GetLibreTranslateAPIKey()
	case translate.EngineLambda:
		cfg.FunctionName = s.GetLambdaFunction()
	}
	return cfg
}

// GetEngineOptions returns the available engines
func (s *Settings) GetEngineOptions() []translate.EngineType {
	return translate.Engines
}

// GetLanguageOptions returns available interface language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
