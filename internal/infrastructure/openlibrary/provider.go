package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/luismlg/casfid-technical-test/internal/domain/book"
)

const defaultTimeout = 5 * time.Second

// Provider fetches book descriptions from the Open Library Books API.
// It implements book.DescriptionProvider: every failure mode (network,
// HTTP status, malformed payload, unknown ISBN) is logged and answered
// with the empty description, never an error.
type Provider struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

func NewProvider(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Provider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// record mirrors the subset of the Books API payload we read. The
// description field is either a bare string or {"value": "..."}.
type record struct {
	Title       string          `json:"title"`
	Description json.RawMessage `json:"description"`
}

func (p *Provider) DescriptionByISBN(ctx context.Context, isbn book.ISBN) book.Description {
	bibkey := "ISBN:" + isbn.String()

	query := url.Values{}
	query.Set("bibkeys", bibkey)
	query.Set("format", "json")
	query.Set("jscmd", "data")
	endpoint := fmt.Sprintf("%s/api/books?%s", p.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		p.warn(ctx, isbn, "build request", err)
		return book.EmptyDescription()
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.warn(ctx, isbn, "call open library", err)
		return book.EmptyDescription()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.warn(ctx, isbn, "call open library", fmt.Errorf("unexpected status %d", resp.StatusCode))
		return book.EmptyDescription()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		p.warn(ctx, isbn, "read response", err)
		return book.EmptyDescription()
	}

	var payload map[string]record
	if err := json.Unmarshal(body, &payload); err != nil {
		p.warn(ctx, isbn, "decode response", err)
		return book.EmptyDescription()
	}

	rec, ok := payload[bibkey]
	if !ok {
		// Open Library knows nothing about this ISBN.
		return book.EmptyDescription()
	}

	text := descriptionText(rec)
	if text == "" {
		return book.EmptyDescription()
	}

	description, err := book.NewDescription(text)
	if err != nil {
		p.warn(ctx, isbn, "validate description", err)
		return book.EmptyDescription()
	}

	return description
}

// descriptionText extracts the synopsis, unwrapping the {"value": ...}
// variant, and falls back to the record title when no synopsis exists.
func descriptionText(rec record) string {
	if len(rec.Description) > 0 {
		var plain string
		if err := json.Unmarshal(rec.Description, &plain); err == nil {
			return plain
		}

		var wrapped struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(rec.Description, &wrapped); err == nil && wrapped.Value != "" {
			return wrapped.Value
		}
	}

	return rec.Title
}

func (p *Provider) warn(ctx context.Context, isbn book.ISBN, op string, err error) {
	p.logger.WarnContext(ctx, "description lookup failed",
		slog.String("isbn", isbn.String()),
		slog.String("op", op),
		slog.Any("error", err),
	)
}
