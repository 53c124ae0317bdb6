package pagination_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/article-feed/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceCollection[T any] struct {
	items    []T
	countErr error
	sliceErr error
	slices   int
}

func (c *sliceCollection[T]) Count(_ context.Context) (int64, error) {
	if c.countErr != nil {
		return 0, c.countErr
	}
	return int64(len(c.items)), nil
}

func (c *sliceCollection[T]) Slice(_ context.Context, offset, limit int) ([]T, error) {
	c.slices++
	if c.sliceErr != nil {
		return nil, c.sliceErr
	}
	if offset >= len(c.items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(c.items) || end < offset {
		end = len(c.items)
	}
	return c.items[offset:end], nil
}

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate_ScenarioA(t *testing.T) {
	coll := &sliceCollection[string]{items: []string{"a", "b", "c"}}

	page, err := pagination.Paginate[string](context.Background(), pagination.NewCalculator(), coll, pagination.NewRequest(2, 1), articlesURL)
	require.NoError(t, err)

	assert.Equal(t, []string{"b"}, page.Items)
	assert.Equal(t, 3, page.Metadata.PageCount)
	assert.Len(t, page.Links.All(), 5)
}

func TestPaginate_EmptyCollectionReturnsEmptyItems(t *testing.T) {
	coll := &sliceCollection[string]{}

	page, err := pagination.Paginate[string](context.Background(), pagination.NewCalculator(), coll, pagination.Request{}, articlesURL)
	require.NoError(t, err)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, pagination.Meta{Total: 0, Pages: 0}, page.Metadata.Meta())
	assert.Len(t, page.Links.All(), 1)
}

func TestPaginate_PageBeyondLast(t *testing.T) {
	coll := &sliceCollection[int]{items: numbers(10)}

	page, err := pagination.Paginate[int](context.Background(), pagination.NewCalculator(), coll, pagination.NewRequest(9, 5), articlesURL)
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, 9, page.Metadata.PageNumber)
	assert.NotEmpty(t, page.Links.Prev)
	assert.Empty(t, page.Links.Next)
}

func TestPaginate_PartitionsCollection(t *testing.T) {
	for total := 0; total <= 30; total++ {
		for size := 1; size <= 7; size++ {
			coll := &sliceCollection[int]{items: numbers(total)}
			calc := pagination.NewCalculator()

			first, err := pagination.Paginate[int](context.Background(), calc, coll, pagination.NewRequest(1, size), articlesURL)
			require.NoError(t, err)

			var seen []int
			seen = append(seen, first.Items...)
			for n := 2; n <= first.Metadata.PageCount; n++ {
				page, err := pagination.Paginate[int](context.Background(), calc, coll, pagination.NewRequest(n, size), articlesURL)
				require.NoError(t, err)
				assert.LessOrEqual(t, len(page.Items), size)
				seen = append(seen, page.Items...)
			}

			if total == 0 {
				assert.Empty(t, seen)
				continue
			}
			assert.Equal(t, numbers(total), seen, "total=%d size=%d", total, size)
		}
	}
}

func TestPaginate_CountError(t *testing.T) {
	boom := errors.New("boom")
	coll := &sliceCollection[int]{countErr: boom}

	page, err := pagination.Paginate[int](context.Background(), pagination.NewCalculator(), coll, pagination.Request{}, articlesURL)

	assert.Nil(t, page)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, coll.slices)
}

func TestPaginate_SliceError(t *testing.T) {
	boom := errors.New("boom")
	coll := &sliceCollection[int]{items: numbers(3), sliceErr: boom}

	page, err := pagination.Paginate[int](context.Background(), pagination.NewCalculator(), coll, pagination.Request{}, articlesURL)

	assert.Nil(t, page)
	assert.ErrorIs(t, err, boom)
}

func TestPaginate_MalformedURLSkipsSlice(t *testing.T) {
	coll := &sliceCollection[int]{items: numbers(3)}

	page, err := pagination.Paginate[int](context.Background(), pagination.NewCalculator(), coll, pagination.Request{}, "http://[::1")

	assert.Nil(t, page)
	assert.ErrorIs(t, err, pagination.ErrMalformedURL)
	assert.Zero(t, coll.slices)
}
