package qaa

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("question and answer not found")
	ErrValidation = errors.New("validation failed")
	ErrAuthConfig = errors.New("provider credential missing or invalid")
	ErrProvider   = errors.New("provider call failed")
)

// AuthConfigError reports a provider that cannot be called because its
// credential or endpoint is missing or malformed.
type AuthConfigError struct {
	Provider string
	Setting  string
}

func (e *AuthConfigError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrAuthConfig, e.Provider, e.Setting)
}

func (e *AuthConfigError) Is(target error) bool {
	return target == ErrAuthConfig
}

// Detail is the caller facing description of the failure.
func (e *AuthConfigError) Detail() string {
	return fmt.Sprintf("Invalid or missing %s %s", e.Provider, e.Setting)
}

// ProviderError wraps a failed text completion call.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrProvider, e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}

// Detail is the caller facing description of the failure, carrying the
// provider's own message.
func (e *ProviderError) Detail() string {
	return fmt.Sprintf("Error with %s API: %v", e.Provider, e.Err)
}
