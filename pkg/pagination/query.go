package pagination

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
)

// pageQuery is the JSON:API page family as it appears in a query string
type pageQuery struct {
	Number int `url:"page[number]"`
	Size   int `url:"page[size]"`
}

// pageValues encodes the page family for one target page
func pageValues(number, size int) (url.Values, error) {
	v, err := query.Values(pageQuery{Number: number, Size: size})
	if err != nil {
		return nil, fmt.Errorf("failed to encode page query: %w", err)
	}
	return v, nil
}

// rawQuery is a query string split into its raw key=value pairs, kept in their
// original order and encoding so that rewriting page parameters leaves everything
// else byte-for-byte intact.
type rawQuery struct {
	pairs []string
	// numberAt and sizeAt are the positions of the first page[number] / page[size]
	// pairs, -1 when absent
	numberAt int
	sizeAt   int
}

func parseRawQuery(raw string) rawQuery {
	q := rawQuery{numberAt: -1, sizeAt: -1}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		switch pairKey(pair) {
		case PageNumberParam:
			if q.numberAt >= 0 {
				continue
			}
			q.numberAt = len(q.pairs)
		case PageSizeParam:
			if q.sizeAt >= 0 {
				continue
			}
			q.sizeAt = len(q.pairs)
		}
		q.pairs = append(q.pairs, pair)
	}
	return q
}

// pairKey decodes the key of a raw pair. Undecodable keys are returned as-is and
// can therefore never match a page parameter.
func pairKey(pair string) string {
	key, _, _ := strings.Cut(pair, "=")
	decoded, err := url.QueryUnescape(key)
	if err != nil {
		return key
	}
	return decoded
}

// withPage renders the query with the page family pointed at number/size
func (q rawQuery) withPage(number, size int) (string, error) {
	v, err := pageValues(number, size)
	if err != nil {
		return "", err
	}
	numberPair := url.Values{PageNumberParam: v[PageNumberParam]}.Encode()
	sizePair := url.Values{PageSizeParam: v[PageSizeParam]}.Encode()

	out := make([]string, 0, len(q.pairs)+2)
	for i, pair := range q.pairs {
		switch i {
		case q.numberAt:
			out = append(out, numberPair)
		case q.sizeAt:
			out = append(out, sizePair)
		default:
			out = append(out, pair)
		}
	}
	if q.numberAt < 0 {
		out = append(out, numberPair)
	}
	if q.sizeAt < 0 {
		out = append(out, sizePair)
	}

	return strings.Join(out, "&"), nil
}
