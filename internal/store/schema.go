package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS entries (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    date      TEXT NOT NULL,
    meal      TEXT NOT NULL,
    category  TEXT NOT NULL,
    food      TEXT NOT NULL,
    units     REAL NOT NULL,
    notes     TEXT NOT NULL DEFAULT '',
    logged_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
`
