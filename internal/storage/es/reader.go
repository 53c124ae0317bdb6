package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/article-feed/internal/domain"
	"github.com/DjordjeVuckovic/article-feed/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

// DefaultMaxResultWindow mirrors the index.max_result_window default of Elasticsearch
const DefaultMaxResultWindow = 10_000

// Reader serves an index as an ordered article collection using from/size paging
type Reader struct {
	client          *elasticsearch.TypedClient
	indexName       string
	maxResultWindow int
}

func NewReader(config ClientConfig) (*Reader, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Reader{
		client:          client,
		indexName:       config.IndexName,
		maxResultWindow: DefaultMaxResultWindow,
	}, nil
}

func (r *Reader) Count(ctx context.Context) (int64, error) {
	res, err := r.client.Count().Index(r.indexName).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return res.Count, nil
}

// Slice reads one window of the collection. Windows reaching past
// index.max_result_window are cut there, so pages beyond it come back empty.
func (r *Reader) Slice(ctx context.Context, offset, limit int) ([]domain.Article, error) {
	size, ok := sliceWindow(offset, limit, r.maxResultWindow)
	if !ok {
		slog.Debug("Es slice outside result window", "offset", offset, "limit", limit, "window", r.maxResultWindow)
		return []domain.Article{}, nil
	}

	sortOrderDesc := sortorder.Desc
	res, err := r.client.Search().
		Index(r.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		From(offset).
		Size(size).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"created_at": {Order: &sortOrderDesc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &sortOrderDesc},
				},
			},
		).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch slice query failed", "error", err, "offset", offset, "limit", limit)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	return mapHits(res.Hits.Hits)
}

func sliceWindow(offset, limit, window int) (int, bool) {
	if limit <= 0 || offset < 0 || offset >= window {
		return 0, false
	}
	if limit > window-offset {
		limit = window - offset
	}
	return limit, true
}

func mapHits(hits []types.Hit) ([]domain.Article, error) {
	articles := make([]domain.Article, 0, len(hits))
	for _, hit := range hits {
		var doc ArticleDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}

		article, err := doc.toDomain()
		if err != nil {
			return nil, fmt.Errorf("invalid document id %q: %w", doc.ID, err)
		}
		articles = append(articles, article)
	}
	return articles, nil
}

var _ storage.ArticleCollection = (*Reader)(nil)
