package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/sirupsen/logrus"

	"github.com/ytget/translator/internal/model"
	"github.com/ytget/translator/internal/translate"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestEngine(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if engine := settings.GetEngine(); engine != DefaultEngine {
		t.Errorf("Expected default engine %s, got %s", DefaultEngine, engine)
	}

	// Test setting custom value
	settings.SetEngine(translate.EngineLibreTranslate)
	if engine := settings.GetEngine(); engine != translate.EngineLibreTranslate {
		t.Errorf("Expected engine %s, got %s", translate.EngineLibreTranslate, engine)
	}

	// Unknown values fall back to the default
	app.Preferences().SetString(KeyEngine, "deepl")
	if engine := settings.GetEngine(); engine != DefaultEngine {
		t.Errorf("Unknown engine should fall back to %s, got %s", DefaultEngine, engine)
	}
}

func TestEndpoints(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if url := settings.GetLibreTranslateURL(); url != translate.DefaultLibreTranslateURL {
		t.Errorf("Expected default URL %s, got %s", translate.DefaultLibreTranslateURL, url)
	}
	settings.SetLibreTranslateURL("https://lt.example.com")
	if url := settings.GetLibreTranslateURL(); url != "https://lt.example.com" {
		t.Errorf("Expected custom URL, got %s", url)
	}
	settings.SetLibreTranslateURL("")
	if url := settings.GetLibreTranslateURL(); url != translate.DefaultLibreTranslateURL {
		t.Errorf("Empty URL should restore default, got %s", url)
	}

	if fn := settings.GetLambdaFunction(); fn != translate.DefaultLambdaFunction {
		t.Errorf("Expected default function %s, got %s", translate.DefaultLambdaFunction, fn)
	}
	settings.SetLambdaFunction("prod-translator")
	if fn := settings.GetLambdaFunction(); fn != "prod-translator" {
		t.Errorf("Expected custom function, got %s", fn)
	}
}

func TestSelection(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	sel := settings.GetSelection()
	if !sel.Source.IsAutoDetect() || sel.Destination != model.English {
		t.Errorf("Expected default selection auto-detect -> english, got %s -> %s", sel.Source, sel.Destination)
	}

	// Test setting custom value
	settings.SetSelection(model.Selection{Source: model.German, Destination: model.Spanish})
	sel = settings.GetSelection()
	if sel.Source != model.German || sel.Destination != model.Spanish {
		t.Errorf("Expected german -> spanish, got %s -> %s", sel.Source, sel.Destination)
	}

	// Auto-detect is never stored as destination
	settings.SetSelection(model.Selection{Source: model.French, Destination: model.AutoDetect})
	sel = settings.GetSelection()
	if sel.Destination != model.Spanish {
		t.Errorf("Destination should stay spanish, got %s", sel.Destination)
	}

	// Corrupted values fall back to defaults
	app.Preferences().SetString(KeyDestinationLanguage, "klingon")
	if sel = settings.GetSelection(); sel.Destination != model.English {
		t.Errorf("Unknown destination should fall back to english, got %s", sel.Destination)
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if timeout := settings.GetRequestTimeout(); timeout != 0 {
		t.Errorf("Expected no timeout by default, got %v", timeout)
	}

	settings.SetRequestTimeout(30)
	if timeout := settings.GetRequestTimeout(); timeout != 30*time.Second {
		t.Errorf("Expected 30s, got %v", timeout)
	}

	// Test boundary values
	settings.SetRequestTimeout(-5)
	if settings.GetRequestTimeout() != 0 {
		t.Error("Timeout should be clamped to minimum 0")
	}

	settings.SetRequestTimeout(10000)
	if settings.GetRequestTimeout() != MaxRequestTimeout*time.Second {
		t.Errorf("Timeout should be clamped to maximum %d", MaxRequestTimeout)
	}
}

func TestHonorSource(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetHonorSource() != DefaultHonorSource {
		t.Error("Unexpected default for honor source")
	}
	settings.SetHonorSource(true)
	if !settings.GetHonorSource() {
		t.Error("Expected honor source to be enabled")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestLogLevel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if level := settings.GetLogLevel(); level != logrus.InfoLevel {
		t.Errorf("Expected info level by default, got %s", level)
	}
	settings.SetLogLevel(logrus.DebugLevel)
	if level := settings.GetLogLevel(); level != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %s", level)
	}
	app.Preferences().SetString(KeyLogLevel, "chatty")
	if level := settings.GetLogLevel(); level != logrus.InfoLevel {
		t.Errorf("Invalid level should fall back to info, got %s", level)
	}
}

func TestTranslatorConfig(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	logger := logrus.New()

	cfg := settings.TranslatorConfig(logger)
	if cfg.Engine != translate.EngineGoogle || cfg.BaseURL != "" || cfg.Logger != logger {
		t.Errorf("Unexpected default config: %+v", cfg)
	}

	settings.SetEngine(translate.EngineLibreTranslate)
	settings.SetLibreTranslateURL("http://lt:5000")
	settings.SetLibreTranslateAPIKey("key")
	cfg = settings.TranslatorConfig(logger)
	if cfg.BaseURL != "http://lt:5000" || cfg.APIKey != "key" {
		t.Errorf("Unexpected LibreTranslate config: %+v", cfg)
	}

	settings.SetEngine(translate.EngineLambda)
	settings.SetLambdaFunction("fn")
	cfg = settings.TranslatorConfig(logger)
	if cfg.FunctionName != "fn" || cfg.BaseURL != "" {
		t.Errorf("Unexpected Lambda config: %+v", cfg)
	}
}

func TestGetEngineOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetEngineOptions()
	expectedOptions := []translate.EngineType{translate.EngineGoogle, translate.EngineLibreTranslate, translate.EngineLambda}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d engine options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Engine option %d: expected %s, got %s", i, expected, options[i])
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
