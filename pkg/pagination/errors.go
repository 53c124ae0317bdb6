package pagination

import (
	"errors"
	"fmt"
)

// ErrMalformedURL is returned when a base URL for link generation cannot be parsed
var ErrMalformedURL = errors.New("malformed url")

type MalformedURLError struct {
	URL string
	Err error
}

func (e *MalformedURLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", ErrMalformedURL, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %q", ErrMalformedURL, e.URL)
}

func (e *MalformedURLError) Unwrap() error {
	return e.Err
}

func (e *MalformedURLError) Is(target error) bool {
	return target == ErrMalformedURL
}
