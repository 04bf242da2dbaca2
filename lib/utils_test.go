package qaa

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"empty", "", true},
		{"single character", "?", false},
		{"at limit", strings.Repeat("a", MaxTextLength), false},
		{"over limit", strings.Repeat("a", MaxTextLength+1), true},
		{"multibyte counted by character", strings.Repeat("é", MaxTextLength), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText("question", tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID(1))
	assert.ErrorIs(t, ValidateID(0), ErrValidation)
	assert.ErrorIs(t, ValidateID(-4), ErrValidation)
}

func TestTypedErrors(t *testing.T) {
	auth := &AuthConfigError{Provider: "OpenAI", Setting: "API key"}
	assert.True(t, errors.Is(auth, ErrAuthConfig))
	assert.Equal(t, "Invalid or missing OpenAI API key", auth.Detail())

	cause := errors.New("rate limited")
	perr := &ProviderError{Provider: "OpenAI", Err: cause}
	assert.True(t, errors.Is(perr, ErrProvider))
	assert.True(t, errors.Is(perr, cause))
	assert.Equal(t, "Error with OpenAI API: rate limited", perr.Detail())
}
