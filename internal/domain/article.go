package domain

import (
	"time"

	"github.com/google/uuid"
)

const ArticleDefaultLanguage = "english"

type Article struct {
	ID          uuid.UUID       `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Subtitle    string          `json:"subtitle,omitempty" yaml:"subtitle"`
	Content     string          `json:"content" yaml:"content"`
	Author      string          `json:"author,omitempty" yaml:"author"`
	Description string          `json:"description,omitempty" yaml:"description"`
	Language    string          `json:"language,omitempty" yaml:"language"`
	CreatedAt   time.Time       `json:"createdAt" yaml:"created_at"`
	URL         string          `json:"url,omitempty" yaml:"url"`
	Metadata    ArticleMetadata `json:"metadata" yaml:"metadata"`
}

type ArticleMetadata struct {
	// Essential source tracking
	SourceId    string    `json:"sourceId,omitempty" yaml:"source_id"`
	SourceName  string    `json:"sourceName,omitempty" yaml:"source_name"`
	PublishedAt time.Time `json:"publishedAt,omitempty" yaml:"published_at"`
	// Content metadata
	Category string `json:"category,omitempty" yaml:"category"`

	// System metadata
	ImportedAt time.Time `json:"importedAt,omitempty" yaml:"imported_at"`
}

// WithDefaults fills the fields every store expects to be set
func (a Article) WithDefaults(now time.Time) Article {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Language == "" {
		a.Language = ArticleDefaultLanguage
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.Metadata.ImportedAt.IsZero() {
		a.Metadata.ImportedAt = now
	}
	return a
}

// Newer reports whether a sorts before b in collection order: newest first, ties by id descending
func Newer(a, b Article) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID.String() > b.ID.String()
}
