package book

import "context"

// Action classifies a book lifecycle change.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Modified is the domain event produced once per successful mutation. It is
// an immutable record of what happened to which book.
type Modified struct {
	Title  Title
	ISBN   ISBN
	Action Action
}

// Created builds the event for a freshly created book.
func Created(title Title, isbn ISBN) Modified {
	return Modified{Title: title, ISBN: isbn, Action: ActionCreated}
}

// Updated builds the event for an updated book.
func Updated(title Title, isbn ISBN) Modified {
	return Modified{Title: title, ISBN: isbn, Action: ActionUpdated}
}

// Deleted builds the event for a deleted book. The title is the one the book
// carried before deletion.
func Deleted(title Title, isbn ISBN) Modified {
	return Modified{Title: title, ISBN: isbn, Action: ActionDeleted}
}

// ModifiedListener is a post-mutation callback. The single consumer today is
// a structured-log listener; use cases take an explicit slice of these rather
// than a publish/subscribe bus.
type ModifiedListener func(ctx context.Context, event Modified)
