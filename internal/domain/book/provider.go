package book

import "context"

// DescriptionProvider enriches a book with a synopsis fetched from an
// external metadata service. Enrichment is strictly best-effort: when the
// service is down, slow, or knows nothing about the ISBN, implementations
// log and return the empty description instead of an error.
type DescriptionProvider interface {
	DescriptionByISBN(ctx context.Context, isbn ISBN) Description
}
