package pagination

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	LinkSelf  = "self"
	LinkFirst = "first"
	LinkPrev  = "prev"
	LinkNext  = "next"
	LinkLast  = "last"
)

// LinkSet holds the navigation links of a page. Empty fields are absent links.
// Field order is the serialization order: self, first, prev, next, last.
type LinkSet struct {
	Self  string `json:"self"`
	First string `json:"first,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
	Last  string `json:"last,omitempty"`
}

type Link struct {
	Rel  string
	Href string
}

// All returns the present links in serialization order
func (l LinkSet) All() []Link {
	candidates := []Link{
		{Rel: LinkSelf, Href: l.Self},
		{Rel: LinkFirst, Href: l.First},
		{Rel: LinkPrev, Href: l.Prev},
		{Rel: LinkNext, Href: l.Next},
		{Rel: LinkLast, Href: l.Last},
	}

	links := make([]Link, 0, len(candidates))
	for _, link := range candidates {
		if link.Href != "" {
			links = append(links, link)
		}
	}
	return links
}

// Get returns the link named rel and whether it is present
func (l LinkSet) Get(rel string) (string, bool) {
	for _, link := range l.All() {
		if link.Rel == rel {
			return link.Href, true
		}
	}
	return "", false
}

// Header renders the links as an RFC 8288 Link header value
func (l LinkSet) Header() string {
	links := l.All()
	parts := make([]string, 0, len(links))
	for _, link := range links {
		parts = append(parts, fmt.Sprintf(`<%s>; rel="%s"`, link.Href, link.Rel))
	}
	return strings.Join(parts, ", ")
}

// BuildLinks derives the navigation links for meta from the URL the page was requested with.
// Every query parameter except page[number] and page[size] is carried over unchanged.
//
// Rules:
//   - self always points at the requested page, even past the last one
//   - first and last exist only when there is at least one page
//   - prev exists when the page number is above 1
//   - next exists when the page number is below the page count
func BuildLinks(meta PageMetadata, baseURL string) (LinkSet, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return LinkSet{}, &MalformedURLError{URL: baseURL, Err: err}
	}

	b := &linkBuilder{
		base:  *u,
		query: parseRawQuery(u.RawQuery),
	}
	b.base.Fragment = ""
	b.base.RawFragment = ""
	b.base.ForceQuery = false

	var links LinkSet
	if links.Self, err = b.page(meta.PageNumber, meta.PageSize); err != nil {
		return LinkSet{}, err
	}

	if meta.PageCount >= 1 {
		if links.First, err = b.page(1, meta.PageSize); err != nil {
			return LinkSet{}, err
		}
		if links.Last, err = b.page(meta.PageCount, meta.PageSize); err != nil {
			return LinkSet{}, err
		}
	}

	if meta.HasPrev() {
		if links.Prev, err = b.page(meta.PageNumber-1, meta.PageSize); err != nil {
			return LinkSet{}, err
		}
	}

	if meta.HasNext() {
		if links.Next, err = b.page(meta.PageNumber+1, meta.PageSize); err != nil {
			return LinkSet{}, err
		}
	}

	return links, nil
}

type linkBuilder struct {
	base  url.URL
	query rawQuery
}

func (b *linkBuilder) page(number, size int) (string, error) {
	rq, err := b.query.withPage(number, size)
	if err != nil {
		return "", err
	}
	u := b.base
	u.RawQuery = rq
	return u.String(), nil
}
