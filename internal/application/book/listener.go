package book

import (
	"context"
	"log/slog"

	"github.com/luismlg/casfid-technical-test/internal/domain/book"
)

// listeners fans a modification event out to every registered callback.
// Callbacks run synchronously after the repository write has succeeded.
type listeners []book.ModifiedListener

func (ls listeners) notify(ctx context.Context, event book.Modified) {
	for _, l := range ls {
		l(ctx, event)
	}
}

// NewLogListener returns a listener that records every book modification
// through the given structured logger.
func NewLogListener(logger *slog.Logger) book.ModifiedListener {
	return func(ctx context.Context, event book.Modified) {
		logger.InfoContext(ctx, "book modified",
			slog.String("action", string(event.Action)),
			slog.String("isbn", event.ISBN.String()),
			slog.String("title", event.Title.String()),
		)
	}
}
