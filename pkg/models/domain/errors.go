package domain

import "fmt"

// ConfigurationError means a credential or API key the caller needs is
// absent or malformed. Callers degrade to synthetic data or the fallback
// catalog; it is never surfaced to the user as an error state.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// TransientFetchError wraps a failed live cost/usage call. The pipeline
// logs it and falls back to synthetic data for the cycle.
type TransientFetchError struct {
	Op  string
	Err error
}

func (e *TransientFetchError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *TransientFetchError) Unwrap() error { return e.Err }
