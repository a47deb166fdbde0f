package translate

import (
	"context"
	"time"

	"github.com/ytget/translator/internal/model"
)

// Translator is the external translation capability.
type Translator interface {
	// Translate translates text into targetLang. sourceLang is an ISO 639-1
	// code or "auto" for detection.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)

	// Name is a human readable engine name shown in the status line.
	Name() string
}

// Dispatcher defines the interface for the translation service.
type Dispatcher interface {
	SetOutcomeCallback(func(*model.TranslationOutcome))
	Submit(req *model.TranslationRequest) error
	InFlight() (string, bool)
	EngineName() string

	SetTranslator(translator Translator)
	SetTimeout(timeout time.Duration)
	SetHonorSource(honor bool)
}
