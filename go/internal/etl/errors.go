package etl

import "errors"

// The pipeline fails in exactly three ways; every stage error is wrapped with
// one of these so main can pick an exit code without string matching.
var (
	// ErrConfig covers a missing/malformed credential or config file.
	ErrConfig = errors.New("configuration error")

	// ErrAuth covers a rejected token exchange or refresh.
	ErrAuth = errors.New("authentication error")

	// ErrFetch covers network failures and non-2xx API responses.
	ErrFetch = errors.New("fetch error")
)

// ExitCode maps a pipeline error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrConfig):
		return 1
	case errors.Is(err, ErrAuth):
		return 2
	case errors.Is(err, ErrFetch):
		return 3
	default:
		return 1
	}
}
