// Package jsonapi renders collections as JSON:API top-level documents.
package jsonapi

import (
	"github.com/DjordjeVuckovic/article-feed/pkg/pagination"
)

// MediaType is the JSON:API media type
const MediaType = "application/vnd.api+json"

// Resource is implemented by anything that can be rendered as a JSON:API resource object
type Resource interface {
	ResourceID() string
	ResourceType() string
	ResourceAttributes() any
}

type ResourceObject struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes any    `json:"attributes"`
}

// Document is a top-level JSON:API document for a resource collection
type Document struct {
	Data  []ResourceObject    `json:"data"`
	Meta  *pagination.Meta    `json:"meta,omitempty"`
	Links *pagination.LinkSet `json:"links,omitempty"`
}

// Options carries the top-level members added next to data
type Options struct {
	Meta  *pagination.Meta
	Links *pagination.LinkSet
}

// SerializeCollection renders items as resource objects in their original order.
// Data is always an array, empty when there are no items.
func SerializeCollection[T Resource](items []T, opts Options) Document {
	data := make([]ResourceObject, 0, len(items))
	for _, item := range items {
		data = append(data, NewResourceObject(item))
	}

	return Document{
		Data:  data,
		Meta:  opts.Meta,
		Links: opts.Links,
	}
}

// SerializePage renders a page with its meta and links
func SerializePage[T Resource](page *pagination.Page[T]) Document {
	meta := page.Metadata.Meta()
	links := page.Links
	return SerializeCollection(page.Items, Options{
		Meta:  &meta,
		Links: &links,
	})
}

func NewResourceObject(r Resource) ResourceObject {
	return ResourceObject{
		ID:         r.ResourceID(),
		Type:       r.ResourceType(),
		Attributes: r.ResourceAttributes(),
	}
}
