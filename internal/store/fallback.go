package store

import (
	"fmt"

	"unitlog/internal/model"
)

// Unavailable is the degraded EntryStore used when the log database cannot
// be opened. Reads present an empty log so reports still render; appends
// fail with the original open error so no entry is ever silently dropped.
type Unavailable struct {
	err error
}

// NewUnavailable wraps the open error that made the real store unreachable.
func NewUnavailable(err error) *Unavailable {
	return &Unavailable{err: err}
}

// ReadAll returns no entries and the open error, so callers can tell a
// degraded empty log from a genuinely empty one.
func (u *Unavailable) ReadAll() ([]model.LogEntry, error) {
	return nil, fmt.Errorf("log store unavailable: %w", u.err)
}

// Append always fails. The append contract is all-or-nothing and durable;
// an in-memory write that evaporates at exit would break it.
func (u *Unavailable) Append(model.LogEntry) error {
	return fmt.Errorf("log store unavailable: %w", u.err)
}

// Close is a no-op.
func (u *Unavailable) Close() error {
	return nil
}
