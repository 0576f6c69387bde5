package banner

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel every ConfigError unwraps to.
var ErrInvalidConfig = errors.New("invalid banner configuration")

// ConfigError describes why Build rejected a configuration.
type ConfigError struct {
	Reason string
	// Char is the offending character, or zero when the error is not about
	// a specific character.
	Char rune
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidConfig, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func emptyTextError() error {
	return &ConfigError{Reason: "text cannot be empty"}
}

func unsupportedCharError(r rune) error {
	return &ConfigError{
		Reason: fmt.Sprintf("unsupported character %q", r),
		Char:   r,
	}
}
