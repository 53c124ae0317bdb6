package pg

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/article-feed/internal/domain"
	"github.com/DjordjeVuckovic/article-feed/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	countArticlesSQL = `SELECT count(*) FROM articles`

	sliceArticlesSQL = `
		SELECT
			id, title, subtitle, content, author, description, url, language, created_at, metadata
		FROM articles
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
)

// Reader serves the articles table as an ordered collection
type Reader struct {
	db *pgxpool.Pool
}

func NewReader(pool *ConnectionPool) (*Reader, error) {
	return &Reader{db: pool.conn}, nil
}

func (r *Reader) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, countArticlesSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}

// Slice reads one window of the collection. Postgres returns no rows for an
// offset past the end, so out-of-range pages come back empty.
func (r *Reader) Slice(ctx context.Context, offset, limit int) ([]domain.Article, error) {
	slog.Debug("Executing pg article slice", "offset", offset, "limit", limit)

	rows, err := r.db.Query(ctx, sliceArticlesSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute slice query: %w", err)
	}

	articles, err := pgx.CollectRows(rows, scanArticle)
	if err != nil {
		return nil, fmt.Errorf("failed to scan articles: %w", err)
	}

	return articles, nil
}

func scanArticle(row pgx.CollectableRow) (domain.Article, error) {
	var article domain.Article
	var metadataJSON []byte

	if err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Subtitle,
		&article.Content,
		&article.Author,
		&article.Description,
		&article.URL,
		&article.Language,
		&article.CreatedAt,
		&metadataJSON,
	); err != nil {
		return domain.Article{}, err
	}

	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &article.Metadata); err != nil {
			return domain.Article{}, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}

	return article, nil
}

var _ storage.ArticleCollection = (*Reader)(nil)
