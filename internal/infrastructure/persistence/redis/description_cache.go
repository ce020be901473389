package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/luismlg/casfid-technical-test/internal/domain/book"
)

const descriptionKeyPrefix = "book:description:"

// DescriptionCache decorates a DescriptionProvider with a Redis cache so
// repeated creates for the same ISBN do not hit the external service.
// Empty results are cached too, shielding the service from ISBNs it does
// not know. Cache failures degrade to a direct provider call.
type DescriptionCache struct {
	client *redis.Client
	next   book.DescriptionProvider
	ttl    time.Duration
	logger *slog.Logger
}

func NewDescriptionCache(client *redis.Client, next book.DescriptionProvider, ttl time.Duration, logger *slog.Logger) *DescriptionCache {
	return &DescriptionCache{
		client: client,
		next:   next,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *DescriptionCache) DescriptionByISBN(ctx context.Context, isbn book.ISBN) book.Description {
	key := descriptionKeyPrefix + isbn.String()

	cached, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		description, parseErr := parseDescription(cached)
		if parseErr == nil {
			return description
		}
		c.logger.WarnContext(ctx, "discarding invalid cached description",
			slog.String("isbn", isbn.String()), slog.Any("error", parseErr))
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "description cache read failed",
			slog.String("isbn", isbn.String()), slog.Any("error", err))
	}

	description := c.next.DescriptionByISBN(ctx, isbn)

	if err := c.client.Set(ctx, key, description.String(), c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "description cache write failed",
			slog.String("isbn", isbn.String()), slog.Any("error", err))
	}

	return description
}

func parseDescription(value string) (book.Description, error) {
	if value == "" {
		return book.EmptyDescription(), nil
	}
	return book.NewDescription(value)
}
