package translate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ytget/translator/internal/model"
)

// ErrBusy is returned by Submit while another request is in flight.
var ErrBusy = errors.New("a translation is already in progress")

// Service handles translation requests
type Service struct {
	mu          sync.Mutex
	translator  Translator
	inFlight    *model.TranslationRequest
	timeout     time.Duration
	honorSource bool
	onOutcome   func(*model.TranslationOutcome) // callback for UI updates
	logger      *logrus.Logger
}

var _ Dispatcher = (*Service)(nil)

// NewService creates a new translation service
func NewService(translator Translator, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{
		translator: translator,
		logger:     logger,
	}
}

// SetOutcomeCallback sets the function receiving every outcome. It is called
// on the worker goroutine.
func (s *Service) SetOutcomeCallback(callback func(*model.TranslationOutcome)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onOutcome = callback
}

// SetTranslator replaces the engine used by subsequent requests
func (s *Service) SetTranslator(translator Translator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.translator = translator
}

// SetTimeout bounds each request. Zero disables the limit.
func (s *Service) SetTimeout(timeout time.Duration) {
	if timeout < 0 {
		timeout = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeout = timeout
}

// SetHonorSource makes the worker pass the selected source language instead
// of always asking the engine to detect it.
func (s *Service) SetHonorSource(honor bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.honorSource = honor
}

// EngineName returns the name of the current engine
func (s *Service) EngineName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.translator == nil {
		return ""
	}
	return s.translator.Name()
}

// InFlight returns the ID of the running request, if any
func (s *Service) InFlight() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight == nil {
		return "", false
	}
	return s.inFlight.ID, true
}

// Submit starts a worker for req and returns immediately. Only one request
// may be in flight at a time.
func (s *Service) Submit(req *model.TranslationRequest) error {
	if req == nil {
		return errors.New("nil translation request")
	}

	s.mu.Lock()
	if s.inFlight != nil {
		id := s.inFlight.ID
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrBusy, id)
	}
	if s.translator == nil {
		s.mu.Unlock()
		return errors.New("no translation engine configured")
	}
	s.inFlight = req
	translator := s.translator
	timeout := s.timeout
	honorSource := s.honorSource
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"request_id":  req.ID,
		"engine":      translator.Name(),
		"source":      req.Source.Code(),
		"destination": req.Destination.Code(),
		"text_length": len(req.Text),
	}).Debug("Submitting translation request")

	go s.run(req, translator, timeout, honorSource)
	return nil
}

// run performs the outward call and reports exactly one outcome
func (s *Service) run(req *model.TranslationRequest, translator Translator, timeout time.Duration, honorSource bool) {
	outcome := &model.TranslationOutcome{
		RequestID: req.ID,
		Engine:    translator.Name(),
	}
	startTime := time.Now()

	defer func() {
		if r := recover(); r != nil {
			outcome.Text = ""
			outcome.Err = fmt.Errorf("translation engine panicked: %v", r)
		}
		outcome.Duration = time.Since(startTime)

		s.mu.Lock()
		if s.inFlight == req {
			s.inFlight = nil
		}
		s.mu.Unlock()

		s.logOutcome(outcome)
		s.notifyOutcome(outcome)
	}()

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	source := model.AutoDetectCode
	if honorSource {
		source = req.Source.Code()
	}

	text, err := translator.Translate(ctx, req.Text, source, req.Destination.Code())
	if err != nil {
		outcome.Err = err
		return
	}
	outcome.Text = text
}

func (s *Service) logOutcome(outcome *model.TranslationOutcome) {
	entry := s.logger.WithFields(logrus.Fields{
		"request_id":  outcome.RequestID,
		"engine":      outcome.Engine,
		"duration_ms": outcome.Duration.Milliseconds(),
	})
	if outcome.Err != nil {
		entry.WithError(outcome.Err).Warn("Translation failed")
		return
	}
	entry.Info("Translation completed")
}

// notifyOutcome calls the outcome callback if set
func (s *Service) notifyOutcome(outcome *model.TranslationOutcome) {
	s.mu.Lock()
	callback := s.onOutcome
	s.mu.Unlock()
	if callback != nil {
		callback(outcome)
	}
}
