// Package store persists the append-only food log.
package store

import "unitlog/internal/model"

// EntryStore is the outbound port for the food log. The log is append-only:
// implementations never expose edit or delete.
type EntryStore interface {
	// ReadAll returns a snapshot of every logged entry, oldest first.
	ReadAll() ([]model.LogEntry, error)
	// Append durably adds one validated entry. All-or-nothing: on error
	// the store is unchanged.
	Append(e model.LogEntry) error
	Close() error
}
