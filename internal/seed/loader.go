// Package seed reads article fixtures from YAML files.
package seed

import (
	"fmt"
	"io"
	"os"

	"github.com/DjordjeVuckovic/article-feed/internal/domain"
	"gopkg.in/yaml.v3"
)

// File is the layout of a seed file:
//
//	articles:
//	  - title: ...
//	    created_at: 2024-05-01T10:00:00Z
//	    metadata:
//	      source_name: ...
type File struct {
	Articles []domain.Article `yaml:"articles"`
}

type Loader struct {
	r io.Reader
}

func NewLoader(r io.Reader) *Loader {
	return &Loader{r: r}
}

// Load decodes every article of the seed. Articles without a title are rejected.
func (l *Loader) Load() ([]domain.Article, error) {
	var f File
	dec := yaml.NewDecoder(l.r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return []domain.Article{}, nil
		}
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}

	for i, a := range f.Articles {
		if a.Title == "" {
			return nil, fmt.Errorf("seed article %d: title is required", i)
		}
	}

	if f.Articles == nil {
		f.Articles = []domain.Article{}
	}
	return f.Articles, nil
}

// LoadFile opens path and loads its articles
func LoadFile(path string) ([]domain.Article, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	return NewLoader(file).Load()
}
