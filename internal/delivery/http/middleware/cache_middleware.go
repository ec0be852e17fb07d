package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"cashreap/config"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// CacheMiddleware caches successful GET responses in redis. When the
// client is nil (cache disabled) every method is a passthrough.
type CacheMiddleware struct {
	client *redis.Client
	cfg    *config.CacheConfig
	logger *slog.Logger
}

// NewCacheMiddleware is the constructor for CacheMiddleware. Client may be
// nil when the cache is disabled in config.
func NewCacheMiddleware(client *redis.Client, cfg *config.Config, logger *slog.Logger) *CacheMiddleware {
	return &CacheMiddleware{
		client: client,
		cfg:    cfg.Cache,
		logger: logger,
	}
}

// bodyCapturer tees the response body so a successful reply can be stored
// after it has been sent.
type bodyCapturer struct {
	http.ResponseWriter
	body   bytes.Buffer
	status int
}

func (w *bodyCapturer) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *bodyCapturer) Write(b []byte) (int, error) {
	w.body.Write(b)

	return w.ResponseWriter.Write(b)
}

// Cache serves GET requests from redis when a fresh copy exists and stores
// 200 responses on miss. Non-GET requests pass through untouched.
func (m *CacheMiddleware) Cache(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.client == nil || c.Request().Method != http.MethodGet {
			return next(c)
		}

		ctx := c.Request().Context()
		key := m.cacheKey(c)

		cached, err := m.client.Get(ctx, key).Bytes()
		if err == nil {
			return c.JSONBlob(http.StatusOK, cached)
		}
		if err != redis.Nil {
			m.logger.Warn("response cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		capturer := &bodyCapturer{ResponseWriter: c.Response().Writer, status: http.StatusOK}
		c.Response().Writer = capturer

		if err := next(c); err != nil {
			return err
		}

		if capturer.status == http.StatusOK && capturer.body.Len() > 0 {
			if err := m.client.Set(ctx, key, capturer.body.Bytes(), m.cfg.TTL).Err(); err != nil {
				m.logger.Warn("response cache write failed", slog.String("key", key), slog.Any("error", err))
			}
		}

		return nil
	}
}

// Invalidate drops every cached response under the configured prefix.
// Catalog writes (seeding, at startup) call this so stale cached reads
// never outlive the rows they were built from.
func (m *CacheMiddleware) Invalidate(ctx context.Context) {
	if m.client == nil {
		return
	}

	iter := m.client.Scan(ctx, 0, m.cfg.Prefix+":*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		m.logger.Warn("response cache scan failed", slog.Any("error", err))

		return
	}

	if len(keys) > 0 {
		if err := m.client.Del(ctx, keys...).Err(); err != nil {
			m.logger.Warn("response cache invalidation failed", slog.Any("error", err))
		}
	}
}

func (m *CacheMiddleware) cacheKey(c echo.Context) string {
	key := m.cfg.Prefix + ":" + c.Request().URL.Path
	if query := c.Request().URL.RawQuery; query != "" {
		key += "?" + query
	}

	return key
}
