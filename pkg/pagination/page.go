package pagination

import (
	"context"
	"fmt"
)

// Collection is an ordered collection that can be counted and sliced.
// Slice must return an empty result, not an error, when offset is past the end.
type Collection[T any] interface {
	Count(ctx context.Context) (int64, error)
	Slice(ctx context.Context, offset, limit int) ([]T, error)
}

// Page is one page of a collection together with its metadata and navigation links
type Page[T any] struct {
	Items    []T          `json:"items"`
	Metadata PageMetadata `json:"metadata"`
	Links    LinkSet      `json:"links"`
}

// Paginate counts the collection, computes the requested page, builds its links
// relative to baseURL and slices the items. Links are built before the slice is fetched.
func Paginate[T any](ctx context.Context, calc *Calculator, coll Collection[T], req Request, baseURL string) (*Page[T], error) {
	total, err := coll.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count collection: %w", err)
	}

	meta := calc.Compute(total, req)

	links, err := BuildLinks(meta, baseURL)
	if err != nil {
		return nil, err
	}

	items, err := coll.Slice(ctx, meta.Offset, meta.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to slice collection: %w", err)
	}
	if items == nil {
		items = make([]T, 0)
	}

	return &Page[T]{
		Items:    items,
		Metadata: meta,
		Links:    links,
	}, nil
}
