package server

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ayush7932singh/HealthEase/internal/storage"
	"github.com/ayush7932singh/HealthEase/internal/storage/memory"
	"github.com/ayush7932singh/HealthEase/internal/storage/mysql"
	"github.com/ayush7932singh/HealthEase/internal/storage/postgres"
)

// OpenStore picks a storage backend from the DATABASE_URL scheme.
func OpenStore(ctx context.Context, databaseURL string) (storage.Store, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	switch u.Scheme {
	case "postgres", "postgresql":
		s, err := postgres.New(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "mysql":
		s, err := mysql.New(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
}
