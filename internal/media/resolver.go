// Package media resolves stored image references to retrievable URLs.
// Image upload and storage are delegated to the blob store; the catalogue
// only records the object key and derives a locator from it.
package media

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// Resolver turns an image object key into a URL a client can fetch.
type Resolver interface {
	URL(ctx context.Context, key string) (string, error)
}

// baseURLResolver builds URLs against a static base, for deployments that
// serve media from a local directory behind a file server.
type baseURLResolver struct {
	base   string
	logger zerolog.Logger
}

// NewBaseURLResolver creates a resolver that joins keys onto a base URL.
func NewBaseURLResolver(base string, logger zerolog.Logger) Resolver {
	return &baseURLResolver{
		base:   strings.TrimSuffix(base, "/"),
		logger: logger.With().Str("component", "media-base-url").Logger(),
	}
}

// URL joins the key onto the configured base URL.
func (r *baseURLResolver) URL(_ context.Context, key string) (string, error) {
	return r.base + "/" + strings.TrimPrefix(key, "/"), nil
}
