package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_Swap(t *testing.T) {
	tests := []struct {
		name     string
		in       Selection
		expected Selection
	}{
		{
			name:     "auto-detect keeps destination",
			in:       Selection{Source: AutoDetect, Destination: French},
			expected: Selection{Source: French, Destination: French},
		},
		{
			name:     "concrete languages are exchanged",
			in:       Selection{Source: German, Destination: Spanish},
			expected: Selection{Source: Spanish, Destination: German},
		},
		{
			name:     "same language",
			in:       Selection{Source: English, Destination: English},
			expected: Selection{Source: English, Destination: English},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Swap()
			assert.Equal(t, tt.expected, got)
			assert.False(t, got.Destination.IsAutoDetect())
		})
	}
}

func TestSelection_SwapTwiceRestoresConcretePair(t *testing.T) {
	sel := Selection{Source: Japanese, Destination: Arabic}
	assert.Equal(t, sel, sel.Swap().Swap())
}

func TestDefaultSelection(t *testing.T) {
	sel := DefaultSelection()
	assert.True(t, sel.Source.IsAutoDetect())
	assert.Equal(t, English, sel.Destination)
}

func TestNewTranslationRequest(t *testing.T) {
	req, err := NewTranslationRequest("  hello world \n", Selection{Source: AutoDetect, Destination: French})
	require.NoError(t, err)

	assert.Equal(t, "hello world", req.Text)
	assert.Equal(t, French, req.Destination)
	assert.True(t, req.Source.IsAutoDetect())
	assert.True(t, strings.HasPrefix(req.ID, "req-"), req.ID)
	assert.False(t, req.CreatedAt.IsZero())
}

func TestNewTranslationRequest_Validation(t *testing.T) {
	tests := []struct {
		name string
		text string
		sel  Selection
		err  error
	}{
		{"empty text", "", DefaultSelection(), ErrEmptyText},
		{"whitespace only", " \t\n ", DefaultSelection(), ErrEmptyText},
		{"no destination", "hello", Selection{Source: AutoDetect}, ErrNoDestination},
		{"auto-detect destination", "hello", Selection{Source: English, Destination: AutoDetect}, ErrNoDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewTranslationRequest(tt.text, tt.sel)
			assert.Nil(t, req)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNewTranslationRequest_UniqueIDs(t *testing.T) {
	a, err := NewTranslationRequest("hello", DefaultSelection())
	require.NoError(t, err)
	b, err := NewTranslationRequest("hello", DefaultSelection())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestTranslationOutcome(t *testing.T) {
	ok := &TranslationOutcome{RequestID: "req-1", Text: "bonjour"}
	assert.True(t, ok.Succeeded())
	assert.Equal(t, TranslationStatusDone, ok.Status())
	assert.Empty(t, ok.ErrorMessage())

	failed := &TranslationOutcome{RequestID: "req-2", Err: errors.New("network timeout")}
	assert.False(t, failed.Succeeded())
	assert.Equal(t, TranslationStatusError, failed.Status())
	assert.Equal(t, "network timeout", failed.ErrorMessage())
}
