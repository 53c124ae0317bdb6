package jsonapi

import (
	"net/http"
	"strconv"
)

// ErrorObject is a JSON:API error object
type ErrorObject struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}

// NewError builds a single-error document for an HTTP status
func NewError(status int, detail string) ErrorDocument {
	return ErrorDocument{
		Errors: []ErrorObject{
			{
				Status: strconv.Itoa(status),
				Title:  http.StatusText(status),
				Detail: detail,
			},
		},
	}
}
