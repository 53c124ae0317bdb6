package pg

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/article-feed/internal/domain"
	"github.com/DjordjeVuckovic/article-feed/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var articleColumns = []string{
	"id", "title", "subtitle", "content", "author", "description", "url", "language", "created_at", "metadata",
}

type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	return &Storer{db: pool.conn}, nil
}

func (s *Storer) Save(ctx context.Context, article domain.Article) (uuid.UUID, error) {
	article = article.WithDefaults(time.Now())

	metadataJSON, err := json.Marshal(article.Metadata)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}

	cmd := `
        INSERT INTO articles (id, title, subtitle, content, author, description, url, language, created_at, metadata)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id;
    `
	var id uuid.UUID
	err = s.db.QueryRow(
		ctx,
		cmd,
		article.ID,
		article.Title,
		article.Subtitle,
		article.Content,
		article.Author,
		article.Description,
		article.URL,
		article.Language,
		article.CreatedAt,
		metadataJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert article: %w", err)
	}

	return id, nil
}

// SaveBulk loads articles with COPY in a single round trip
func (s *Storer) SaveBulk(ctx context.Context, articles []domain.Article) error {
	if len(articles) == 0 {
		return nil
	}

	rows := make([][]any, len(articles))
	now := time.Now()

	for i, a := range articles {
		a = a.WithDefaults(now)

		metadataJSON, err := json.Marshal(a.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata for article %s: %w", a.ID, err)
		}

		rows[i] = []any{
			a.ID,
			a.Title,
			a.Subtitle,
			a.Content,
			a.Author,
			a.Description,
			a.URL,
			a.Language,
			a.CreatedAt,
			metadataJSON,
		}
	}

	copied, err := s.db.CopyFrom(ctx, pgx.Identifier{"articles"}, articleColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to copy articles: %w", err)
	}

	slog.Info("Bulk insert completed", "inserted", copied, "total", len(articles))
	return nil
}

var _ storage.Storer = (*Storer)(nil)
