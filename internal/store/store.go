package store

import "context"

// Message represents a persisted chat message.
// Messages are immutable: they are never updated or deleted once stored.
type Message struct {
	ID   int64
	Text string
}

// MessageLog is the durable, append-only message store.
//
// IDs are assigned by the store on insert and are strictly increasing, so
// they define the total order of the log. ListHistory returns the log in
// reverse insertion order (most recent first).
type MessageLog interface {
	// AppendMessage durably stores text as a new record and returns its id.
	// The write is committed before AppendMessage returns.
	AppendMessage(ctx context.Context, text string) (int64, error)

	// ListHistory returns every stored message text, most recent first.
	// An empty log yields an empty slice, not an error.
	ListHistory(ctx context.Context) ([]string, error)

	// Close closes the underlying database connection.
	Close() error
}
