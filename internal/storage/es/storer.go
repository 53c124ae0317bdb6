package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/article-feed/internal/domain"
	"github.com/DjordjeVuckovic/article-feed/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
)

type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	storer := &Storer{
		client:    client,
		indexName: config.IndexName,
	}

	if err := storer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return storer, nil
}

func (e *Storer) Save(ctx context.Context, article domain.Article) (uuid.UUID, error) {
	article = article.WithDefaults(time.Now())
	doc := toDocument(article, time.Now())

	res, err := e.client.Index(e.indexName).Id(doc.ID).Document(doc).Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index document: %w", err)
	}

	slog.Info("document indexed successfully", "id", doc.ID, "index", e.indexName, "result", res.Result)
	return article.ID, nil
}

func (e *Storer) SaveBulk(ctx context.Context, articles []domain.Article) error {
	if len(articles) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         e.indexName,
		Client:        e.client,
		NumWorkers:    4,
		FlushBytes:    5e+6, // 5MB
		FlushInterval: 30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64
	now := time.Now()

	for _, article := range articles {
		doc := toDocument(article.WithDefaults(now), now)

		docBytes, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "id", doc.ID)
			failed.Add(1)
			continue
		}

		err = bi.Add(
			ctx,
			esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: doc.ID,
				Body:       bytes.NewReader(docBytes),
				OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
					successful.Add(1)
				},
				OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
					failed.Add(1)
					if err != nil {
						slog.Error("bulk index error", "error", err, "id", item.DocumentID)
					} else {
						slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
					}
				},
			},
		)
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add document to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	// make the new documents visible to count and search right away
	if _, err := e.client.Indices.Refresh().Index(e.indexName).Do(ctx); err != nil {
		return fmt.Errorf("failed to refresh index: %w", err)
	}

	slog.Info("Bulk indexing completed",
		"successful", successful.Load(),
		"failed", failed.Load(),
		"total", len(articles),
		"index", e.indexName)

	if failed.Load() > 0 {
		return fmt.Errorf("failed to index %d out of %d articles", failed.Load(), len(articles))
	}

	return nil
}

func (e *Storer) EnsureIndex(ctx context.Context) error {
	exists, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":           types.NewKeywordProperty(),
			"title":        textWithKeyword(),
			"subtitle":     types.NewTextProperty(),
			"description":  types.NewTextProperty(),
			"content":      types.NewTextProperty(),
			"author":       textWithKeyword(),
			"url":          types.NewKeywordProperty(),
			"language":     types.NewKeywordProperty(),
			"created_at":   types.NewDateProperty(),
			"source_id":    types.NewKeywordProperty(),
			"source_name":  textWithKeyword(),
			"published_at": types.NewDateProperty(),
			"category":     types.NewKeywordProperty(),
			"imported_at":  types.NewDateProperty(),
			"indexed_at":   types.NewDateProperty(),
		},
	}

	createRes, err := e.client.Indices.Create(e.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}

func textWithKeyword() types.Property {
	textProp := types.NewTextProperty()
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}

var _ storage.Storer = (*Storer)(nil)
