package loader

import (
	"fmt"
	"strings"
)

// FetchError reports a failed dataset download: either the request itself
// failed (Err set) or the server answered with a non-200 status.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("loader: fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("loader: fetch %s: unexpected status %d", e.URL, e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a dataset that downloaded fine but could not be
// decoded: malformed CSV (Err set) or required columns missing.
type ParseError struct {
	URL     string
	Missing []string
	Err     error
}

func (e *ParseError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("loader: parse %s: missing columns: %s",
			e.URL, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("loader: parse %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
