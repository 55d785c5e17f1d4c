package repositories

import (
	"context"
	"fmt"
	"strings"
)

// NewRepositoryFromURL picks a backend from the scheme of databaseURL.
// Supported schemes are sqlite://, postgres://, postgresql:// and memory://.
// An empty URL selects the in-memory repository.
func NewRepositoryFromURL(ctx context.Context, databaseURL string) (Repository, error) {
	switch {
	case databaseURL == "", strings.HasPrefix(databaseURL, "memory://"):
		return NewInMemoryRepository(), nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		if path == "" {
			return nil, fmt.Errorf("sqlite database URL is missing a path")
		}
		return NewSQLiteRepository(ctx, path)
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return NewPostgresRepository(ctx, databaseURL)
	default:
		return nil, fmt.Errorf("unsupported database URL: %s", databaseURL)
	}
}
