package pagination

// PageDefaultSize is the default page size if not specified
const PageDefaultSize = 20

// PageMaxSize is the maximum allowed page size
const PageMaxSize = 100

const (
	// PageNumberParam is the JSON:API query parameter holding the 1-based page index
	PageNumberParam = "page[number]"
	// PageSizeParam is the JSON:API query parameter holding the number of items per page
	PageSizeParam = "page[size]"
)
