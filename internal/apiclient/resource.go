package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// Resource is one collection of the store API, e.g. /Clientes.
type Resource[T any] struct {
	client     *Client
	collection string
}

// NewResource binds a collection name to client.
func NewResource[T any](client *Client, collection string) *Resource[T] {
	return &Resource[T]{client: client, collection: collection}
}

// Collection returns the collection name.
func (r *Resource[T]) Collection() string {
	return r.collection
}

// List fetches the full collection.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.Do(ctx, http.MethodGet, r.collection, r.path(""), nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Create posts a new entity.
func (r *Resource[T]) Create(ctx context.Context, payload map[string]any) error {
	return r.client.Do(ctx, http.MethodPost, r.collection, r.path(""), payload, nil)
}

// Update replaces the entity identified by id.
func (r *Resource[T]) Update(ctx context.Context, id string, payload map[string]any) error {
	return r.client.Do(ctx, http.MethodPut, r.collection, r.path(id), payload, nil)
}

// Delete removes the entity identified by id.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodDelete, r.collection, r.path(id), nil, nil)
}

func (r *Resource[T]) path(id string) string {
	p := "/" + url.PathEscape(r.collection)
	if id != "" {
		p += "/" + url.PathEscape(id)
	}
	return p
}
