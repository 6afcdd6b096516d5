package pocket

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ListParams are the query parameters of a paginated list call.
type ListParams struct {
	Page    int
	PerPage int
	Filter  string
	Sort    string
	Expand  []string
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("perPage", strconv.Itoa(p.PerPage))
	}
	if p.Filter != "" {
		q.Set("filter", p.Filter)
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if len(p.Expand) > 0 {
		q.Set("expand", strings.Join(p.Expand, ","))
	}
	return q
}

// ListResult is one page of records of a collection.
type ListResult[T any] struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
	Items      []T `json:"items"`
}

// List fetches one page of a collection.
func List[T any](ctx context.Context, c *Client, token, collection string, p ListParams) (*ListResult[T], error) {
	var out ListResult[T]
	if err := c.do(ctx, http.MethodGet, recordsPath(collection), token, p.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOne fetches a record by id, optionally expanding relation fields.
func GetOne[T any](ctx context.Context, c *Client, token, collection, id string, expand []string) (T, error) {
	var out T
	q := url.Values{}
	if len(expand) > 0 {
		q.Set("expand", strings.Join(expand, ","))
	}
	path := recordsPath(collection) + "/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodGet, path, token, q, nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Create inserts a new record and returns it as stored, including the
// server-assigned id and timestamps.
func Create[T any](ctx context.Context, c *Client, token, collection string, body T) (T, error) {
	var out T
	if err := c.do(ctx, http.MethodPost, recordsPath(collection), token, nil, body, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Update patches a record. Fields absent from body keep their stored
// values.
func Update[T any](ctx context.Context, c *Client, token, collection, id string, body any) (T, error) {
	var out T
	path := recordsPath(collection) + "/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPatch, path, token, nil, body, &out); err != nil {
		return out, err
	}
	return out, nil
}
