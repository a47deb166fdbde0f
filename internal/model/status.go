package model

// TranslationStatus represents the state of the translate control
type TranslationStatus string

const (
	// TranslationStatusIdle means no request has been submitted yet
	TranslationStatusIdle TranslationStatus = "Idle"

	// TranslationStatusTranslating means a request is in flight
	TranslationStatusTranslating TranslationStatus = "Translating"

	// TranslationStatusDone means the last request finished successfully
	TranslationStatusDone TranslationStatus = "Done"

	// TranslationStatusError means the last request failed
	TranslationStatusError TranslationStatus = "Error"
)

// String returns the string representation of TranslationStatus
func (ts TranslationStatus) String() string {
	return string(ts)
}

// IsActive returns true while a request is in flight
func (ts TranslationStatus) IsActive() bool {
	return ts == TranslationStatusTranslating
}

// IsFinished returns true if the last request produced an outcome
func (ts TranslationStatus) IsFinished() bool {
	return ts == TranslationStatusDone || ts == TranslationStatusError
}

// AcceptsSubmit reports whether a new request may be started from this state.
// Finished states behave like idle.
func (ts TranslationStatus) AcceptsSubmit() bool {
	return !ts.IsActive()
}
