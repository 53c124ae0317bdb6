package es

import (
	"time"

	"github.com/DjordjeVuckovic/article-feed/internal/domain"
	"github.com/google/uuid"
)

// ArticleDocument represents the document structure for Elasticsearch
type ArticleDocument struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	URL         string    `json:"url"`
	Language    string    `json:"language"`
	CreatedAt   time.Time `json:"created_at"`
	SourceId    string    `json:"source_id"`
	SourceName  string    `json:"source_name"`
	PublishedAt time.Time `json:"published_at"`
	Category    string    `json:"category"`
	ImportedAt  time.Time `json:"imported_at"`
	IndexedAt   time.Time `json:"indexed_at"`
}

func toDocument(article domain.Article, indexedAt time.Time) ArticleDocument {
	return ArticleDocument{
		ID:          article.ID.String(),
		Title:       article.Title,
		Subtitle:    article.Subtitle,
		Description: article.Description,
		Content:     article.Content,
		Author:      article.Author,
		URL:         article.URL,
		Language:    article.Language,
		CreatedAt:   article.CreatedAt,
		SourceId:    article.Metadata.SourceId,
		SourceName:  article.Metadata.SourceName,
		PublishedAt: article.Metadata.PublishedAt,
		Category:    article.Metadata.Category,
		ImportedAt:  article.Metadata.ImportedAt,
		IndexedAt:   indexedAt,
	}
}

func (d ArticleDocument) toDomain() (domain.Article, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Article{}, err
	}

	return domain.Article{
		ID:          id,
		Title:       d.Title,
		Subtitle:    d.Subtitle,
		Content:     d.Content,
		Author:      d.Author,
		Description: d.Description,
		Language:    d.Language,
		CreatedAt:   d.CreatedAt,
		URL:         d.URL,
		Metadata: domain.ArticleMetadata{
			SourceId:    d.SourceId,
			SourceName:  d.SourceName,
			PublishedAt: d.PublishedAt,
			Category:    d.Category,
			ImportedAt:  d.ImportedAt,
		},
	}, nil
}
