package translate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEngineType(t *testing.T) {
	tests := []struct {
		in       string
		expected EngineType
		wantErr  bool
	}{
		{"google", EngineGoogle, false},
		{"Google", EngineGoogle, false},
		{"libretranslate", EngineLibreTranslate, false},
		{" LIBRETRANSLATE ", EngineLibreTranslate, false},
		{"lambda", EngineLambda, false},
		{"aws", EngineLambda, false},
		{"deepl", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEngineType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewTranslator(t *testing.T) {
	ctx := context.Background()

	tr, err := NewTranslator(ctx, Config{Engine: EngineGoogle, Logger: newTestLogger()})
	require.NoError(t, err)
	assert.IsType(t, &GoogleClient{}, tr)

	tr, err = NewTranslator(ctx, Config{Logger: newTestLogger()})
	require.NoError(t, err)
	assert.IsType(t, &GoogleClient{}, tr)

	tr, err = NewTranslator(ctx, Config{Engine: EngineLibreTranslate, BaseURL: "http://lt:5000", Logger: newTestLogger()})
	require.NoError(t, err)
	require.IsType(t, &LibreTranslateClient{}, tr)
	assert.Equal(t, "http://lt:5000", tr.(*LibreTranslateClient).baseURL)

	_, err = NewTranslator(ctx, Config{Engine: "deepl", Logger: newTestLogger()})
	assert.Error(t, err)
}
