package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS settings (
    key                  TEXT PRIMARY KEY,
    value                TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS obligations (
    id                   TEXT PRIMARY KEY,
    kind                 TEXT NOT NULL,
    label                TEXT NOT NULL,
    enabled              INTEGER NOT NULL DEFAULT 0,
    amount               TEXT NOT NULL DEFAULT '',
    frequency            TEXT NOT NULL DEFAULT 'monthly',
    anchor               TEXT NOT NULL DEFAULT '',
    position             INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS vehicle_items (
    slot                 TEXT PRIMARY KEY,
    label                TEXT NOT NULL,
    amount               TEXT NOT NULL DEFAULT '',
    frequency            TEXT NOT NULL DEFAULT 'monthly',
    due                  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS spending (
    id                   TEXT PRIMARY KEY,
    date                 TEXT NOT NULL,
    amount               TEXT NOT NULL,
    note                 TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS goals (
    id                   TEXT PRIMARY KEY,
    name                 TEXT NOT NULL,
    target_amount        TEXT NOT NULL DEFAULT '',
    target_date          TEXT NOT NULL DEFAULT '',
    include_in_calc      INTEGER NOT NULL DEFAULT 0,
    position             INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_spending_date ON spending(date);
CREATE INDEX IF NOT EXISTS idx_obligations_kind ON obligations(kind);
`
