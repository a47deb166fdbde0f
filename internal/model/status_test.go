package model

import "testing"

func TestTranslationStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   TranslationStatus
		expected bool
	}{
		{TranslationStatusIdle, false},
		{TranslationStatusTranslating, true},
		{TranslationStatusDone, false},
		{TranslationStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("TranslationStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestTranslationStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   TranslationStatus
		expected bool
	}{
		{TranslationStatusIdle, false},
		{TranslationStatusTranslating, false},
		{TranslationStatusDone, true},
		{TranslationStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("TranslationStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestTranslationStatus_AcceptsSubmit(t *testing.T) {
	for _, status := range []TranslationStatus{TranslationStatusIdle, TranslationStatusDone, TranslationStatusError} {
		if !status.AcceptsSubmit() {
			t.Errorf("TranslationStatus(%s).AcceptsSubmit() = false, expected true", status)
		}
	}
	if TranslationStatusTranslating.AcceptsSubmit() {
		t.Error("TranslationStatusTranslating should not accept a new submit")
	}
}

func TestTranslationStatus_String(t *testing.T) {
	status := TranslationStatusTranslating
	expected := "Translating"
	result := status.String()

	if result != expected {
		t.Errorf("TranslationStatus.String() = %s, expected %s", result, expected)
	}
}
