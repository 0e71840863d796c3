package catalog

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"groeipaden_app/internal/services"
)

// CachePrefix namespaces the dataset keys in Redis
const CachePrefix = "groeipaden:"

// Options selects where the dataset is read from. A database wins over a
// file; without either the embedded dataset is used.
type Options struct {
	DataPath    string
	DatabaseURL string
	RedisURL    string
	CacheTTL    time.Duration
	Debug       bool
}

// OpenSource connects the configured backends and returns the matching
// Source. The returned func releases the connections.
func OpenSource(opts Options, logger *zap.Logger) (Source, func(), error) {
	switch {
	case opts.DatabaseURL != "":
		db, err := services.InitDB(opts.DatabaseURL, opts.Debug, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}

		var src Source = DBSource{DB: db}
		if opts.RedisURL == "" {
			return src, closeDB, nil
		}

		cache, err := services.NewRedisCache(opts.RedisURL, CachePrefix, logger)
		if err != nil {
			// The database alone still serves the dataset
			logger.Warn("redis unavailable, reading routes without cache", zap.Error(err))
			return src, closeDB, nil
		}
		return CachedSource{Cache: cache, Inner: src, TTL: opts.CacheTTL}, func() {
			_ = cache.Close()
			closeDB()
		}, nil

	case opts.DataPath != "":
		return FileSource{Path: opts.DataPath}, func() {}, nil

	default:
		return EmbeddedSource{}, func() {}, nil
	}
}
