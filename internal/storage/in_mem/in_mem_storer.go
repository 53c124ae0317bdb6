package in_mem

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/article-feed/internal/domain"
	"github.com/DjordjeVuckovic/article-feed/internal/storage"
	"github.com/google/uuid"
)

// InMemStorer keeps articles in memory, sorted in collection order
type InMemStorer struct {
	storageLock sync.RWMutex
	byID        map[uuid.UUID]int
	articles    []domain.Article
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		byID: make(map[uuid.UUID]int),
	}
}

func (s *InMemStorer) Save(ctx context.Context, article domain.Article) (uuid.UUID, error) {
	article = article.WithDefaults(time.Now())

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	s.put(article)
	s.reindex()

	slog.Debug("Saved article to in-memory storage", "title", article.Title, "id", article.ID)
	return article.ID, nil
}

func (s *InMemStorer) SaveBulk(ctx context.Context, articles []domain.Article) error {
	now := time.Now()

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, article := range articles {
		s.put(article.WithDefaults(now))
	}
	s.reindex()

	slog.Info("Saved articles to in-memory storage", "count", len(articles), "total", len(s.articles))
	return nil
}

func (s *InMemStorer) Count(ctx context.Context) (int64, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	return int64(len(s.articles)), nil
}

// Slice returns a copy of the articles in [offset, offset+limit)
func (s *InMemStorer) Slice(ctx context.Context, offset, limit int) ([]domain.Article, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= len(s.articles) {
		return []domain.Article{}, nil
	}

	end := len(s.articles)
	if limit < end-offset {
		end = offset + limit
	}

	return slices.Clone(s.articles[offset:end]), nil
}

// put inserts or replaces article; callers must hold the write lock and reindex afterwards
func (s *InMemStorer) put(article domain.Article) {
	if i, ok := s.byID[article.ID]; ok {
		s.articles[i] = article
		return
	}
	s.byID[article.ID] = len(s.articles)
	s.articles = append(s.articles, article)
}

func (s *InMemStorer) reindex() {
	slices.SortFunc(s.articles, func(a, b domain.Article) int {
		switch {
		case domain.Newer(a, b):
			return -1
		case domain.Newer(b, a):
			return 1
		default:
			return 0
		}
	})
	for i, a := range s.articles {
		s.byID[a.ID] = i
	}
}

var _ storage.Storer = (*InMemStorer)(nil)
var _ storage.ArticleCollection = (*InMemStorer)(nil)
