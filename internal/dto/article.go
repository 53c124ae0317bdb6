package dto

import (
	"time"

	"github.com/DjordjeVuckovic/article-feed/internal/domain"
)

// ArticleResourceType is the JSON:API type of article resources
const ArticleResourceType = "articles"

// ArticleAttributes is the attributes object of an article resource
type ArticleAttributes struct {
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle,omitempty"`
	Content     string          `json:"content"`
	Author      string          `json:"author,omitempty"`
	Description string          `json:"description,omitempty"`
	Language    string          `json:"language,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	URL         string          `json:"url,omitempty"`
	Metadata    ArticleMetadata `json:"metadata"`
}

type ArticleMetadata struct {
	SourceId    string     `json:"sourceId,omitempty"`
	SourceName  string     `json:"sourceName,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Category    string     `json:"category,omitempty"`
	ImportedAt  *time.Time `json:"importedAt,omitempty"`
}

// ArticleResource adapts a domain article to the JSON:API resource contract
type ArticleResource struct {
	domain.Article
}

func (r ArticleResource) ResourceID() string {
	return r.ID.String()
}

func (r ArticleResource) ResourceType() string {
	return ArticleResourceType
}

func (r ArticleResource) ResourceAttributes() any {
	return ArticleAttributes{
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		Content:     r.Content,
		Author:      r.Author,
		Description: r.Description,
		Language:    r.Language,
		CreatedAt:   r.CreatedAt,
		URL:         r.URL,
		Metadata: ArticleMetadata{
			SourceId:    r.Metadata.SourceId,
			SourceName:  r.Metadata.SourceName,
			PublishedAt: timeOrNil(r.Metadata.PublishedAt),
			Category:    r.Metadata.Category,
			ImportedAt:  timeOrNil(r.Metadata.ImportedAt),
		},
	}
}

func NewArticleResources(articles []domain.Article) []ArticleResource {
	resources := make([]ArticleResource, len(articles))
	for i, a := range articles {
		resources[i] = ArticleResource{Article: a}
	}
	return resources
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
