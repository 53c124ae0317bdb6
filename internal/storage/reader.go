package storage

import (
	"github.com/DjordjeVuckovic/article-feed/internal/domain"
	"github.com/DjordjeVuckovic/article-feed/pkg/pagination"
)

// ArticleCollection is the ordered article collection served by the API.
// Every implementation orders by created_at DESC, id DESC so that consecutive
// offset/limit slices partition the collection.
type ArticleCollection = pagination.Collection[domain.Article]
