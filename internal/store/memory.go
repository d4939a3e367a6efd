package store

import "unitlog/internal/model"

// Memory is an in-memory EntryStore backing tests.
type Memory struct {
	entries []model.LogEntry
}

// NewMemory returns a Memory store seeded with the given entries.
func NewMemory(entries ...model.LogEntry) *Memory {
	return &Memory{entries: append([]model.LogEntry(nil), entries...)}
}

// ReadAll returns a copy of the stored entries.
func (m *Memory) ReadAll() ([]model.LogEntry, error) {
	return append([]model.LogEntry(nil), m.entries...), nil
}

// Append adds one entry.
func (m *Memory) Append(e model.LogEntry) error {
	m.entries = append(m.entries, e)
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
