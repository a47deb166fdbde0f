package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// EngineType represents the type of translation engine to use.
type EngineType string

const (
	// EngineGoogle uses the free Google Translate endpoint.
	EngineGoogle EngineType = "google"
	// EngineLibreTranslate uses a LibreTranslate server.
	EngineLibreTranslate EngineType = "libretranslate"
	// EngineLambda invokes an AWS Lambda translation manager.
	EngineLambda EngineType = "lambda"
)

// Engines lists the selectable engines in display order
var Engines = []EngineType{EngineGoogle, EngineLibreTranslate, EngineLambda}

// Config holds configuration for creating a Translator instance.
type Config struct {
	Engine EngineType
	// BaseURL overrides the engine endpoint (Google and LibreTranslate).
	BaseURL string
	// APIKey is sent to LibreTranslate when set.
	APIKey string
	// FunctionName is the Lambda function to invoke.
	FunctionName string
	// Logger is the logger instance to use. If nil, a default logger is created.
	Logger *logrus.Logger
}

// NewTranslator creates a new Translator instance based on the configuration.
func NewTranslator(ctx context.Context, cfg Config) (Translator, error) {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}

	cfg.Logger.WithFields(logrus.Fields{
		"engine":   cfg.Engine,
		"base_url": cfg.BaseURL,
	}).Info("Creating translator instance")

	switch cfg.Engine {
	case EngineGoogle, "":
		return NewGoogleClient(cfg.BaseURL, cfg.Logger), nil
	case EngineLibreTranslate:
		return NewLibreTranslateClient(cfg.BaseURL, cfg.APIKey, cfg.Logger), nil
	case EngineLambda:
		client, err := NewLambdaClient(ctx, cfg.FunctionName, cfg.Logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown translation engine: %s", cfg.Engine)
	}
}

// ParseEngineType parses a string into an EngineType.
func ParseEngineType(s string) (EngineType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "google":
		return EngineGoogle, nil
	case "libretranslate":
		return EngineLibreTranslate, nil
	case "lambda", "aws":
		return EngineLambda, nil
	default:
		return "", fmt.Errorf("unknown engine type: %s (supported: google, libretranslate, lambda)", s)
	}
}
