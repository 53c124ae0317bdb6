package pagination

import (
	"math"
)

// PageMetadata is the normalized outcome of a pagination request against a collection
// of TotalCount items. PageNumber is never clamped to PageCount: a page past the end
// yields an Offset beyond the collection and therefore an empty slice.
type PageMetadata struct {
	TotalCount int64 `json:"total_count"`
	PageNumber int   `json:"page_number"`
	PageSize   int   `json:"page_size"`
	PageCount  int   `json:"page_count"`
	Offset     int   `json:"offset"`
	Limit      int   `json:"limit"`
}

// Meta is the JSON:API top-level meta object for a paginated collection
type Meta struct {
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func (m PageMetadata) Meta() Meta {
	return Meta{
		Total: m.TotalCount,
		Pages: m.PageCount,
	}
}

// HasPrev reports whether a page precedes the current one
func (m PageMetadata) HasPrev() bool {
	return m.PageNumber > 1
}

// HasNext reports whether a page follows the current one
func (m PageMetadata) HasNext() bool {
	return m.PageNumber < m.PageCount
}

type CalculatorOption func(*Calculator)

// WithDefaultSize sets the page size used when the request has none or an invalid one
func WithDefaultSize(size int) CalculatorOption {
	return func(c *Calculator) {
		if size > 0 {
			c.defaultSize = size
		}
	}
}

// WithMaxSize caps the page size. Zero or a negative value disables the cap.
func WithMaxSize(size int) CalculatorOption {
	return func(c *Calculator) {
		c.maxSize = size
	}
}

// Calculator turns raw pagination input into PageMetadata.
// It holds only configuration and is safe for concurrent use.
type Calculator struct {
	defaultSize int
	maxSize     int
}

func NewCalculator(opts ...CalculatorOption) *Calculator {
	c := &Calculator{
		defaultSize: PageDefaultSize,
		maxSize:     PageMaxSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compute normalizes req and derives page count, offset and limit for a collection
// holding total items. Malformed input is replaced with defaults, never rejected.
func (c *Calculator) Compute(total int64, req Request) PageMetadata {
	number := parsePositive(req.Number, 1)
	size := parsePositive(req.Size, c.defaultSize)
	if c.maxSize > 0 && size > c.maxSize {
		size = c.maxSize
	}

	if total < 0 {
		total = 0
	}

	return PageMetadata{
		TotalCount: total,
		PageNumber: number,
		PageSize:   size,
		PageCount:  pageCount(total, size),
		Offset:     offset(number, size),
		Limit:      size,
	}
}

// Compute is a shorthand for a Calculator with the default page size and the given cap
func Compute(total int64, req Request, maxPageSize int) PageMetadata {
	return NewCalculator(WithMaxSize(maxPageSize)).Compute(total, req)
}

func pageCount(total int64, size int) int {
	if total == 0 {
		return 0
	}
	s := int64(size)
	pages := total / s
	if total%s != 0 {
		pages++
	}
	if pages > math.MaxInt {
		return math.MaxInt
	}
	return int(pages)
}

// offset saturates at MaxInt so absurd page numbers still land past the end
func offset(number, size int) int {
	if number-1 > math.MaxInt/size {
		return math.MaxInt
	}
	return (number - 1) * size
}
