package core

import "context"

// Repository defines the contract for loading and persisting a Document.
// Adhering to this interface keeps File independent of the on-disk format
// and of how the original layout is retained between saves.
type Repository interface {
	// Load reads the backing store and returns a fresh Document.
	// A missing store yields an empty Document, not an error.
	Load() (*Document, error)

	// Save persists doc. Implementations decide how to merge it with what
	// they previously loaded.
	Save(doc *Document) error
}

// Watchable defines an interface for repositories that can report external changes.
type Watchable interface {
	// Watch emits an Event whenever the backing store changes, until ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}
