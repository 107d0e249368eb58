package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable marks network failures, timeouts, throttling, and
	// malformed responses from the popularity provider.
	ErrProviderUnavailable = errors.New("popularity provider unavailable")

	// ErrInvalidTerm marks a term the provider rejected or has no regional data for.
	ErrInvalidTerm = errors.New("invalid search term")

	ErrUnknownCharacteristic = errors.New("unknown state characteristic")
	ErrDegenerateFit         = errors.New("trendline needs at least two distinct x values")
	ErrPositionalMismatch    = errors.New("positional abbreviations need exactly one record per state")
	ErrUnknownSolution       = errors.New("unknown climate solution")
)

// ProviderError wraps a popularity provider failure with the term that caused it
// and whether retrying the same request could succeed.
type ProviderError struct {
	Term      string
	Retryable bool
	Err       error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("popularity provider: term %q: %v", e.Term, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// IsRetryable reports whether err is a provider failure worth retrying.
func IsRetryable(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Retryable
}
