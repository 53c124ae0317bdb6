package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

// Request carries pagination input exactly as the client sent it.
// Empty fields mean the parameter was absent.
type Request struct {
	Number string `json:"number,omitempty"`
	Size   string `json:"size,omitempty"`
}

// NewRequest builds a Request from already parsed integers
func NewRequest(number, size int) Request {
	return Request{
		Number: strconv.Itoa(number),
		Size:   strconv.Itoa(size),
	}
}

// RequestFromQuery extracts page[number] and page[size] from query values
func RequestFromQuery(q url.Values) Request {
	return Request{
		Number: q.Get(PageNumberParam),
		Size:   q.Get(PageSizeParam),
	}
}

// parsePositive returns the value of s when it is a positive integer, otherwise fallback
func parsePositive(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
