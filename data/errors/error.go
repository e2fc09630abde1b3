package errors

import "fmt"

// wrap attaches context to one of the data sentinels, keeping it reachable
// through errors.Is. The optional cause is appended after the sentinel.
func wrap(sentinel error, cause error, format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if cause != nil {
		return fmt.Errorf("%w: %s: %w", sentinel, text, cause)
	}

	return fmt.Errorf("%w: %s", sentinel, text)
}
