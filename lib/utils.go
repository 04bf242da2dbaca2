package qaa

import (
	"fmt"
	"unicode/utf8"
)

const (
	MinTextLength = 1
	MaxTextLength = 500
)

// ValidateText checks that text holds between MinTextLength and
// MaxTextLength characters.
func ValidateText(field, text string) error {
	n := utf8.RuneCountInString(text)
	if n < MinTextLength || n > MaxTextLength {
		return fmt.Errorf("%w: %s must be between %d and %d characters, got %d",
			ErrValidation, field, MinTextLength, MaxTextLength, n)
	}
	return nil
}

// ValidateID checks that id is a usable record identifier.
func ValidateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be greater than 0, got %d", ErrValidation, id)
	}
	return nil
}
