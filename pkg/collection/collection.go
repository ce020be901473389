// Package collection provides a generic ordered container with optional
// per-item validation at insertion time.
package collection

// Validator checks an item before it enters a collection. A nil Validator
// accepts everything.
type Validator[T any] func(item T) error

// Collection is an ordered sequence of homogeneous items. Insertion order is
// preserved. When constructed with a validator, invalid items are rejected at
// add time rather than surfacing later during iteration.
type Collection[T any] struct {
	items    []T
	validate Validator[T]
}

// New creates a collection containing the given items.
func New[T any](items ...T) *Collection[T] {
	c := &Collection[T]{items: make([]T, 0, len(items))}
	c.items = append(c.items, items...)
	return c
}

// NewValidated creates a collection that runs validate on every item, both the
// initial ones and any added later. The first invalid item aborts construction.
func NewValidated[T any](validate Validator[T], items ...T) (*Collection[T], error) {
	c := &Collection[T]{
		items:    make([]T, 0, len(items)),
		validate: validate,
	}
	for _, item := range items {
		if err := c.Add(item); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends an item, validating it first when a validator is set.
func (c *Collection[T]) Add(item T) error {
	if c.validate != nil {
		if err := c.validate(item); err != nil {
			return err
		}
	}
	c.items = append(c.items, item)
	return nil
}

// Items returns the items in insertion order. The returned slice is shared;
// callers must not mutate it.
func (c *Collection[T]) Items() []T {
	return c.items
}

// Count returns the number of items.
func (c *Collection[T]) Count() int {
	return len(c.items)
}

// IsEmpty reports whether the collection holds no items.
func (c *Collection[T]) IsEmpty() bool {
	return len(c.items) == 0
}

// Each calls fn for every item in insertion order.
func (c *Collection[T]) Each(fn func(item T)) {
	for _, item := range c.items {
		fn(item)
	}
}
