package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validation errors returned by NewTranslationRequest
var (
	ErrEmptyText     = errors.New("text to translate is empty")
	ErrNoDestination = errors.New("no destination language selected")
)

// Selection holds the current picker values
type Selection struct {
	Source      Language
	Destination Language
}

// DefaultSelection returns auto-detect to english
func DefaultSelection() Selection {
	return Selection{Source: AutoDetect, Destination: English}
}

// Swap exchanges source and destination. Auto-detect is never a valid
// destination, so when the source is auto-detect the destination is kept.
func (s Selection) Swap() Selection {
	swapped := Selection{Source: s.Destination, Destination: s.Destination}
	if !s.Source.IsAutoDetect() && !s.Source.IsZero() {
		swapped.Destination = s.Source
	}
	return swapped
}

// TranslationRequest is created for a single press of the translate control
type TranslationRequest struct {
	ID          string
	Text        string
	Source      Language
	Destination Language
	CreatedAt   time.Time
}

// NewTranslationRequest validates user input and builds a request
func NewTranslationRequest(text string, sel Selection) (*TranslationRequest, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if sel.Destination.IsZero() || sel.Destination.IsAutoDetect() {
		return nil, ErrNoDestination
	}

	source := sel.Source
	if source.IsZero() {
		source = AutoDetect
	}

	return &TranslationRequest{
		ID:          generateRequestID(),
		Text:        text,
		Source:      source,
		Destination: sel.Destination,
		CreatedAt:   time.Now(),
	}, nil
}

// TranslationOutcome is the single result produced for a request.
// Exactly one of Text or Err is meaningful.
type TranslationOutcome struct {
	RequestID string
	Text      string
	Err       error
	Engine    string
	Duration  time.Duration
}

// Succeeded reports whether the outcome carries a translation
func (o *TranslationOutcome) Succeeded() bool {
	return o.Err == nil
}

// Status maps the outcome to the final status of the translate control
func (o *TranslationOutcome) Status() TranslationStatus {
	if o.Succeeded() {
		return TranslationStatusDone
	}
	return TranslationStatusError
}

// ErrorMessage returns the failure text, or "" on success
func (o *TranslationOutcome) ErrorMessage() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

func generateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("req-%d", time.Now().UnixNano())
	}
	return "req-" + id.String()
}
