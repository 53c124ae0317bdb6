package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/article-feed/internal/domain"
	"github.com/DjordjeVuckovic/article-feed/internal/storage"
)

// importArticles saves articles in batches of bulkSize and returns how many were stored
func importArticles(ctx context.Context, storer storage.Storer, articles []domain.Article, bulkSize int) (int, error) {
	imported := 0
	for start := 0; start < len(articles); start += bulkSize {
		if err := ctx.Err(); err != nil {
			return imported, err
		}

		end := min(start+bulkSize, len(articles))
		if err := storer.SaveBulk(ctx, articles[start:end]); err != nil {
			return imported, fmt.Errorf("failed to save batch [%d, %d): %w", start, end, err)
		}
		imported = end

		slog.Info("Batch imported", "from", start, "to", end, "total", len(articles))
	}
	return imported, nil
}
